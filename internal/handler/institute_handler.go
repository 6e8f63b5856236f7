package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/academically/academically-api/internal/service"
	appErrors "github.com/academically/academically-api/pkg/errors"
	"github.com/academically/academically-api/pkg/response"
)

// InstituteHandler exposes the institute read endpoints.
type InstituteHandler struct {
	service *service.InstituteService
}

// NewInstituteHandler constructs an institute handler.
func NewInstituteHandler(svc *service.InstituteService) *InstituteHandler {
	return &InstituteHandler{service: svc}
}

// List godoc
// @Summary List institutes
// @Description List every institute with its careers
// @Tags Institutes
// @Produce json
// @Success 200 {object} models.InstituteListResponse
// @Router /institutes [get]
func (h *InstituteHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Search godoc
// @Summary Search institutes
// @Description Case-insensitive substring search on name or acronym
// @Tags Institutes
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} models.InstituteSearchResponse
// @Failure 400 {object} response.ErrorBody
// @Router /institutes/search [get]
func (h *InstituteHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "query parameter 'q' is required"))
		return
	}
	result, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Stats godoc
// @Summary Institute statistics
// @Tags Institutes
// @Produce json
// @Success 200 {object} models.InstituteStats
// @Router /institutes/stats [get]
func (h *InstituteHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}

// Get godoc
// @Summary Get one institute
// @Tags Institutes
// @Produce json
// @Param id path int true "Institute id"
// @Success 200 {object} models.Institute
// @Failure 404 {object} response.ErrorBody
// @Router /institutes/{id} [get]
func (h *InstituteHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid institute id"))
		return
	}
	institute, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, institute)
}
