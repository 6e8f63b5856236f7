package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/academically/academically-api/internal/dto"
	"github.com/academically/academically-api/internal/models"
	"github.com/academically/academically-api/internal/service"
	appErrors "github.com/academically/academically-api/pkg/errors"
	"github.com/academically/academically-api/pkg/response"
)

// EventHandler exposes the blog event endpoints.
type EventHandler struct {
	service *service.EventService
}

// NewEventHandler constructs an event handler.
func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{service: svc}
}

// List godoc
// @Summary List events
// @Description List active events ordered by start date
// @Tags Events
// @Produce json
// @Success 200 {object} models.EventsListResponse
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Search godoc
// @Summary Search events
// @Description Substring search on title and descriptions
// @Tags Events
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} models.EventSearchResponse
// @Failure 400 {object} response.ErrorBody
// @Router /events/search [get]
func (h *EventHandler) Search(c *gin.Context) {
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

// ByCategory godoc
// @Summary Events by category
// @Description Filter active events by category, upper-cased before matching
// @Tags Events
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} models.EventsByCategoryResponse
// @Router /events/category/{category} [get]
func (h *EventHandler) ByCategory(c *gin.Context) {
	category := c.Param("category")
	if strings.TrimSpace(category) == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "category is required"))
		return
	}
	result, err := h.service.ByCategory(c.Request.Context(), category)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Upcoming godoc
// @Summary Upcoming events
// @Description Active events starting within the next 30 days
// @Tags Events
// @Produce json
// @Success 200 {object} models.UpcomingEventsResponse
// @Router /events/upcoming [get]
func (h *EventHandler) Upcoming(c *gin.Context) {
	result, err := h.service.Upcoming(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Stats godoc
// @Summary Event statistics
// @Tags Events
// @Produce json
// @Success 200 {object} models.EventStats
// @Router /events/stats [get]
func (h *EventHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}

// Get godoc
// @Summary Get one event
// @Description Returns the event regardless of its active flag
// @Tags Events
// @Produce json
// @Param id path int true "Event id"
// @Success 200 {object} models.EventRecord
// @Failure 404 {object} response.ErrorBody
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid event id"))
		return
	}
	event, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, event)
}

// ByInstitute godoc
// @Summary Events of one institute
// @Description Active events bundled with the owning institute record
// @Tags Events
// @Produce json
// @Param id path int true "Institute id"
// @Success 200 {object} models.InstituteEventsResponse
// @Router /institutes/{id}/events [get]
func (h *EventHandler) ByInstitute(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid institute id"))
		return
	}
	result, err := h.service.ByInstitute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Create godoc
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body dto.CreateEventRequest true "Event payload"
// @Success 201 {object} models.EventRecord
// @Failure 400 {object} response.ErrorBody
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload"))
		return
	}
	event, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// Update godoc
// @Summary Update an event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path int true "Event id"
// @Param payload body dto.UpdateEventRequest true "Event payload"
// @Success 200 {object} models.EventRecord
// @Failure 404 {object} response.ErrorBody
// @Router /events/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid event id"))
		return
	}
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload"))
		return
	}
	event, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, event)
}

// Delete godoc
// @Summary Delete an event
// @Description Soft delete: the row is deactivated, never removed
// @Tags Events
// @Produce json
// @Param id path int true "Event id"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} response.ErrorBody
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid event id"))
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, models.MessageResponse{Message: "event deleted"})
}
