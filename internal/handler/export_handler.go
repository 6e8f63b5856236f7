package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/academically/academically-api/internal/service"
	"github.com/academically/academically-api/pkg/response"
)

// ExportHandler serves downloadable listings.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler constructs an export handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// UpcomingEvents godoc
// @Summary Export the upcoming-events agenda
// @Tags Exports
// @Produce application/pdf
// @Param format query string false "pdf or csv" default(pdf)
// @Success 200 {file} binary
// @Router /events/export [get]
func (h *ExportHandler) UpcomingEvents(c *gin.Context) {
	result, err := h.service.UpcomingEventsExport(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveDownload(c, result)
}

// Institutes godoc
// @Summary Export the institute directory
// @Tags Exports
// @Produce application/pdf
// @Param format query string false "pdf or csv" default(pdf)
// @Success 200 {file} binary
// @Router /institutes/export [get]
func (h *ExportHandler) Institutes(c *gin.Context) {
	result, err := h.service.InstituteDirectoryExport(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveDownload(c, result)
}

func serveDownload(c *gin.Context, result *service.ExportResult) {
	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
