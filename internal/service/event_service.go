package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/academically/academically-api/internal/dto"
	"github.com/academically/academically-api/internal/models"
	appErrors "github.com/academically/academically-api/pkg/errors"
)

// UpcomingWindowDays is the size of the upcoming-events window.
const UpcomingWindowDays = 30

type eventRepository interface {
	ListActive(ctx context.Context) ([]models.BlogEvent, error)
	Search(ctx context.Context, query string) ([]models.BlogEvent, error)
	ByCategory(ctx context.Context, category string) ([]models.BlogEvent, error)
	Upcoming(ctx context.Context, from, to time.Time) ([]models.BlogEvent, error)
	ByInstitute(ctx context.Context, instituteID int) ([]models.BlogEvent, error)
	GetByID(ctx context.Context, id int) (*models.BlogEvent, error)
	Create(ctx context.Context, event *models.BlogEvent) error
	Update(ctx context.Context, event *models.BlogEvent) (int64, error)
	SoftDelete(ctx context.Context, id int) (int64, error)
	Stats(ctx context.Context) (int64, map[string]int64, error)
}

type eventInstituteRepository interface {
	GetByID(ctx context.Context, id int) (*models.Institute, error)
}

// EventService handles the blog event use cases.
type EventService struct {
	repo       eventRepository
	institutes eventInstituteRepository
	validator  *validator.Validate
	logger     *zap.Logger
	now        func() time.Time
}

// NewEventService constructs the service. The clock is injectable for the
// upcoming-window tests.
func NewEventService(repo eventRepository, institutes eventInstituteRepository, validate *validator.Validate, logger *zap.Logger) *EventService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &EventService{repo: repo, institutes: institutes, validator: validate, logger: logger, now: time.Now}
	_ = svc.validator.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return svc
}

// List returns every active event.
func (s *EventService) List(ctx context.Context) (*models.EventsListResponse, error) {
	events, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
	}
	records := models.NewEventRecords(events)
	return &models.EventsListResponse{Events: records, Total: len(records)}, nil
}

// Search matches title or descriptions by substring, compared as stored.
func (s *EventService) Search(ctx context.Context, query string) (*models.EventSearchResponse, error) {
	events, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to search events")
	}
	records := models.NewEventRecords(events)
	return &models.EventSearchResponse{Events: records, Total: len(records), Query: query}, nil
}

// ByCategory returns active events with an exact category match. Matching is
// upper-cased; the response echoes the category exactly as requested.
func (s *EventService) ByCategory(ctx context.Context, category string) (*models.EventsByCategoryResponse, error) {
	events, err := s.repo.ByCategory(ctx, strings.ToUpper(category))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get events by category")
	}
	records := models.NewEventRecords(events)
	return &models.EventsByCategoryResponse{Events: records, Total: len(records), Category: category}, nil
}

// Upcoming returns active events starting within the next thirty days,
// today included.
func (s *EventService) Upcoming(ctx context.Context) (*models.UpcomingEventsResponse, error) {
	today := s.today()
	to := today.AddDate(0, 0, UpcomingWindowDays)
	events, err := s.repo.Upcoming(ctx, today, to)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get upcoming events")
	}
	records := models.NewEventRecords(events)
	return &models.UpcomingEventsResponse{
		Events:      records,
		Total:       len(records),
		Description: "Eventos próximos (siguientes 30 días)",
	}, nil
}

// ByInstitute bundles an institute's active events with the institute record
// itself; instituteInfo is null when the id does not resolve.
func (s *EventService) ByInstitute(ctx context.Context, instituteID int) (*models.InstituteEventsResponse, error) {
	institute, err := s.institutes.GetByID(ctx, instituteID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load institute")
		}
		institute = nil
	}
	events, err := s.repo.ByInstitute(ctx, instituteID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get institute events")
	}
	records := models.NewEventRecords(events)
	return &models.InstituteEventsResponse{Events: records, Total: len(records), InstituteInfo: institute}, nil
}

// Get returns one event by id regardless of its active flag.
func (s *EventService) Get(ctx context.Context, id int) (*models.EventRecord, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get event")
	}
	record := models.NewEventRecord(*event)
	return &record, nil
}

// Create validates the payload, stores the event and returns it re-read by
// id. A blank title is rejected before anything is written; unparsable dates
// are stored as null.
func (s *EventService) Create(ctx context.Context, req dto.CreateEventRequest) (*models.EventRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "title is required")
	}
	category := req.Category
	if category == "" {
		category = models.CategoryInstitutional
	}
	event := &models.BlogEvent{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		Location:         req.Location,
		StartDate:        models.ParseDate(req.StartDate),
		EndDate:          models.ParseDate(req.EndDate),
		Category:         category,
		ImagePath:        req.ImagePath,
		InstituteID:      req.InstituteID,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create event")
	}
	return s.Get(ctx, event.ID)
}

// Update overwrites the mutable fields of an existing event. The active flag
// and the owning institute are never touched. An omitted category falls back
// to INSTITUTIONAL, same as create.
func (s *EventService) Update(ctx context.Context, id int, req dto.UpdateEventRequest) (*models.EventRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "title is required")
	}
	category := req.Category
	if category == "" {
		category = models.CategoryInstitutional
	}
	event := &models.BlogEvent{
		ID:               id,
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		Location:         req.Location,
		StartDate:        models.ParseDate(req.StartDate),
		EndDate:          models.ParseDate(req.EndDate),
		Category:         category,
		ImagePath:        req.ImagePath,
	}
	affected, err := s.repo.Update(ctx, event)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update event")
	}
	if affected == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
	}
	return s.Get(ctx, id)
}

// Delete soft-deletes an event. Deleting an already inactive or unknown id
// reports not found.
func (s *EventService) Delete(ctx context.Context, id int) error {
	affected, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete event")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "event not found")
	}
	return nil
}

// Stats counts active events globally and per category.
func (s *EventService) Stats(ctx context.Context) (*models.EventStats, error) {
	total, byCategory, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute event stats")
	}
	return &models.EventStats{
		TotalEvents:      total,
		EventsByCategory: byCategory,
		LastUpdated:      s.now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *EventService) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
