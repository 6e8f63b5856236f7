package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/academically/academically-api/internal/models"
	appErrors "github.com/academically/academically-api/pkg/errors"
)

type instituteRepository interface {
	List(ctx context.Context) ([]models.Institute, error)
	Search(ctx context.Context, query string) ([]models.Institute, error)
	GetByID(ctx context.Context, id int) (*models.Institute, error)
	Stats(ctx context.Context) (*models.InstituteStats, error)
}

// InstituteService exposes the read-only institute use cases.
type InstituteService struct {
	repo   instituteRepository
	logger *zap.Logger
}

// NewInstituteService constructs the service.
func NewInstituteService(repo instituteRepository, logger *zap.Logger) *InstituteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstituteService{repo: repo, logger: logger}
}

// List returns every institute with its careers.
func (s *InstituteService) List(ctx context.Context) (*models.InstituteListResponse, error) {
	institutes, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list institutes")
	}
	if institutes == nil {
		institutes = []models.Institute{}
	}
	return &models.InstituteListResponse{Institutes: institutes, Total: len(institutes)}, nil
}

// Search matches name or acronym case-insensitively. Blank queries are
// rejected at the request layer, not here.
func (s *InstituteService) Search(ctx context.Context, query string) (*models.InstituteSearchResponse, error) {
	institutes, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to search institutes")
	}
	if institutes == nil {
		institutes = []models.Institute{}
	}
	return &models.InstituteSearchResponse{Institutes: institutes, Total: len(institutes), Query: query}, nil
}

// Get returns one institute by id.
func (s *InstituteService) Get(ctx context.Context, id int) (*models.Institute, error) {
	institute, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "institute not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get institute")
	}
	return institute, nil
}

// Stats returns the aggregate counters.
func (s *InstituteService) Stats(ctx context.Context) (*models.InstituteStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute institute stats")
	}
	return stats, nil
}
