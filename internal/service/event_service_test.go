package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academically/academically-api/internal/dto"
	"github.com/academically/academically-api/internal/models"
	appErrors "github.com/academically/academically-api/pkg/errors"
)

type eventRepoStub struct {
	events      []models.BlogEvent
	getEvent    *models.BlogEvent
	listErr     error
	getErr      error
	createErr   error
	updateErr   error
	affected    int64
	total       int64
	byCategory  map[string]int64
	createCalls int
	upcomingArg [2]time.Time
	categoryArg string
	created     *models.BlogEvent
	updated     *models.BlogEvent
}

func (s *eventRepoStub) ListActive(ctx context.Context) ([]models.BlogEvent, error) {
	return s.events, s.listErr
}

func (s *eventRepoStub) Search(ctx context.Context, query string) ([]models.BlogEvent, error) {
	return s.events, s.listErr
}

func (s *eventRepoStub) ByCategory(ctx context.Context, category string) ([]models.BlogEvent, error) {
	s.categoryArg = category
	return s.events, s.listErr
}

func (s *eventRepoStub) Upcoming(ctx context.Context, from, to time.Time) ([]models.BlogEvent, error) {
	s.upcomingArg = [2]time.Time{from, to}
	return s.events, s.listErr
}

func (s *eventRepoStub) ByInstitute(ctx context.Context, instituteID int) ([]models.BlogEvent, error) {
	return s.events, s.listErr
}

func (s *eventRepoStub) GetByID(ctx context.Context, id int) (*models.BlogEvent, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.getEvent, nil
}

func (s *eventRepoStub) Create(ctx context.Context, event *models.BlogEvent) error {
	s.createCalls++
	if s.createErr != nil {
		return s.createErr
	}
	event.ID = 42
	s.created = event
	return nil
}

func (s *eventRepoStub) Update(ctx context.Context, event *models.BlogEvent) (int64, error) {
	s.updated = event
	return s.affected, s.updateErr
}

func (s *eventRepoStub) SoftDelete(ctx context.Context, id int) (int64, error) {
	return s.affected, s.updateErr
}

func (s *eventRepoStub) Stats(ctx context.Context) (int64, map[string]int64, error) {
	return s.total, s.byCategory, s.listErr
}

type instituteRepoStub struct {
	institutes map[int]*models.Institute
	err        error
}

func (s instituteRepoStub) List(ctx context.Context) ([]models.Institute, error) {
	out := []models.Institute{}
	for _, inst := range s.institutes {
		out = append(out, *inst)
	}
	return out, s.err
}

func (s instituteRepoStub) Search(ctx context.Context, query string) ([]models.Institute, error) {
	return []models.Institute{}, s.err
}

func (s instituteRepoStub) GetByID(ctx context.Context, id int) (*models.Institute, error) {
	if s.err != nil {
		return nil, s.err
	}
	if inst, ok := s.institutes[id]; ok {
		return inst, nil
	}
	return nil, sql.ErrNoRows
}

func (s instituteRepoStub) Stats(ctx context.Context) (*models.InstituteStats, error) {
	return &models.InstituteStats{}, s.err
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func datePtr(s string) *string { return &s }

func TestEventServiceListEmptyIsNotNull(t *testing.T) {
	repo := &eventRepoStub{}
	svc := NewEventService(repo, instituteRepoStub{}, nil, nil)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, resp.Events)
	assert.Empty(t, resp.Events)
	assert.Equal(t, 0, resp.Total)
}

func TestEventServiceUpcomingWindowBounds(t *testing.T) {
	repo := &eventRepoStub{}
	svc := NewEventService(repo, instituteRepoStub{}, nil, nil)
	svc.now = fixedClock(time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC))

	resp, err := svc.Upcoming(context.Background())
	require.NoError(t, err)

	from := repo.upcomingArg[0]
	to := repo.upcomingArg[1]
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), to)
	assert.Equal(t, "Eventos próximos (siguientes 30 días)", resp.Description)
}

func TestEventServiceByInstituteUnknownInstitute(t *testing.T) {
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	repo := &eventRepoStub{events: []models.BlogEvent{{ID: 1, Title: "Feria", StartDate: &start, IsActive: true}}}
	svc := NewEventService(repo, instituteRepoStub{}, nil, nil)

	resp, err := svc.ByInstitute(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, resp.InstituteInfo)
	assert.Equal(t, 1, resp.Total)
}

func TestEventServiceByInstituteKnownInstitute(t *testing.T) {
	institutes := instituteRepoStub{institutes: map[int]*models.Institute{
		1: {InstituteID: 1, Acronym: "ITP", Careers: []models.Career{}},
	}}
	repo := &eventRepoStub{}
	svc := NewEventService(repo, institutes, nil, nil)

	resp, err := svc.ByInstitute(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, resp.InstituteInfo)
	assert.Equal(t, "ITP", resp.InstituteInfo.Acronym)
}

func TestEventServiceGetNotFound(t *testing.T) {
	repo := &eventRepoStub{getErr: sql.ErrNoRows}
	svc := NewEventService(repo, instituteRepoStub{}, nil, nil)

	_, err := svc.Get(context.Background(), 99)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "event not found", appErr.Message)
}

func TestEventServiceCreateBlankTitleRejectedBeforeWrite(t *testing.T) {
	repo := &eventRepoStub{}
	svc := NewEventService(repo, instituteRepoStub{}, nil, nil)

	_, err := svc.Create(context.Background(), dto.CreateEventRequest{Title: "   ", InstituteID: 1})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "title is required", appErr.Message)
	assert.Equal(t, 0, repo.createCalls)
}

func TestEventServiceCreateDefaultsAndDates(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	repo := &eventRepoStub{getEvent: &models.BlogEvent{
		ID: 42, Title: "Congreso", Category: models.CategoryInstitutional,
		InstituteID: 1, CreatedAt: now, UpdatedAt: now, IsActive: true,
	}}
	svc := NewEventService(repo, instituteRepoStub{}, nil, nil)

	record, err := svc.Create(context.Background(), dto.CreateEventRequest{
		Title:       "Congreso",
		InstituteID: 1,
		StartDate:   datePtr("2026-09-15"),
		EndDate:     datePtr("not-a-date"),
	})
	require.NoError(t, err)
	assert.Equal(t, 42, record.ID)

	require.NotNil(t, repo.created)
	assert.Equal(t, models.CategoryInstitutional, repo.created.Category)
	require.NotNil(t, repo.created.StartDate)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), *repo.created.StartDate)
	assert.Nil(t, repo.created.EndDate)
}

func TestEventServiceByCategoryEchoesRawCategory(t *testing.T) {
	repo := &eventRepoStub{}
	svc := NewEventService(repo, instituteRepoStub{}, nil, nil)

	resp, err := svc.ByCategory(context.Background(), "institutional")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryInstitutional, repo.categoryArg)
	assert.Equal(t, "institutional", resp.Category)
}

func TestEventServiceUpdateDefaultsCategory(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	repo := &eventRepoStub{affected: 1, getEvent: &models.BlogEvent{
		ID: 7, Title: "Nuevo", Category: models.CategoryInstitutional,
		InstituteID: 1, CreatedAt: now, UpdatedAt: now, IsActive: true,
	}}
	svc := NewEventService(repo, instituteRepoStub{}, nil, nil)

	_, err := svc.Update(context.Background(), 7, dto.UpdateEventRequest{Title: "Nuevo"})
	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	assert.Equal(t, models.CategoryInstitutional, repo.updated.Category)
}

func TestEventServiceUpdateUnknownIDIsNotFound(t *testing.T) {
	repo := &eventRepoStub{affected: 0}
	svc := NewEventService(repo, instituteRepoStub{}, nil, nil)

	_, err := svc.Update(context.Background(), 99, dto.UpdateEventRequest{Title: "Nuevo"})
	require.Error(t, err)
	assert.Equal(t, 404, appErrors.FromError(err).Status)
}

func TestEventServiceUpdateKeepsOwnershipOut(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	repo := &eventRepoStub{affected: 1, getEvent: &models.BlogEvent{
		ID: 7, Title: "Nuevo", Category: models.CategoryCareer,
		InstituteID: 3, CreatedAt: now, UpdatedAt: now, IsActive: true,
	}}
	svc := NewEventService(repo, instituteRepoStub{}, nil, nil)

	record, err := svc.Update(context.Background(), 7, dto.UpdateEventRequest{Title: "Nuevo", Category: models.CategoryCareer})
	require.NoError(t, err)
	assert.Equal(t, 3, record.InstituteID)
	assert.True(t, record.IsActive)
	// The row sent to the repository never carries ownership or activity.
	assert.Equal(t, 0, repo.updated.InstituteID)
	assert.False(t, repo.updated.IsActive)
}

func TestEventServiceDeleteTwiceIsNotFound(t *testing.T) {
	repo := &eventRepoStub{affected: 1}
	svc := NewEventService(repo, instituteRepoStub{}, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), 7))

	repo.affected = 0
	err := svc.Delete(context.Background(), 7)
	require.Error(t, err)
	assert.Equal(t, 404, appErrors.FromError(err).Status)
}

func TestEventServiceStats(t *testing.T) {
	repo := &eventRepoStub{total: 5, byCategory: map[string]int64{models.CategoryInstitutional: 3, models.CategoryCareer: 2}}
	svc := NewEventService(repo, instituteRepoStub{}, nil, nil)
	svc.now = fixedClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalEvents)
	assert.Equal(t, int64(3), stats.EventsByCategory[models.CategoryInstitutional])
	assert.Equal(t, "2026-09-01T12:00:00Z", stats.LastUpdated)
}
