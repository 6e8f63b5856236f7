package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academically/academically-api/internal/models"
	appErrors "github.com/academically/academically-api/pkg/errors"
)

type failingInstituteRepo struct {
	err error
}

func (s failingInstituteRepo) List(ctx context.Context) ([]models.Institute, error) {
	return nil, s.err
}

func (s failingInstituteRepo) Search(ctx context.Context, query string) ([]models.Institute, error) {
	return nil, s.err
}

func (s failingInstituteRepo) GetByID(ctx context.Context, id int) (*models.Institute, error) {
	return nil, s.err
}

func (s failingInstituteRepo) Stats(ctx context.Context) (*models.InstituteStats, error) {
	return nil, s.err
}

func TestInstituteServiceListEmptyIsNotNull(t *testing.T) {
	svc := NewInstituteService(instituteRepoStub{}, nil)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, resp.Institutes)
	assert.Empty(t, resp.Institutes)
	assert.Equal(t, 0, resp.Total)
}

func TestInstituteServiceSearchEchoesQuery(t *testing.T) {
	svc := NewInstituteService(instituteRepoStub{}, nil)

	resp, err := svc.Search(context.Background(), "puebla")
	require.NoError(t, err)
	assert.Equal(t, "puebla", resp.Query)
	assert.NotNil(t, resp.Institutes)
}

func TestInstituteServiceGet(t *testing.T) {
	svc := NewInstituteService(instituteRepoStub{institutes: map[int]*models.Institute{
		1: {InstituteID: 1, Acronym: "ITP", Careers: []models.Career{{CareerID: 1, Name: "ISC"}}},
	}}, nil)

	institute, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "ITP", institute.Acronym)
	require.Len(t, institute.Careers, 1)
}

func TestInstituteServiceGetNotFound(t *testing.T) {
	svc := NewInstituteService(instituteRepoStub{}, nil)

	_, err := svc.Get(context.Background(), 99)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "institute not found", appErr.Message)
}

func TestInstituteServiceRepoFailureIsInternal(t *testing.T) {
	svc := NewInstituteService(failingInstituteRepo{err: errors.New("boom")}, nil)

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, 500, appErrors.FromError(err).Status)

	_, err = svc.Get(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, 500, appErrors.FromError(err).Status)
}

func TestInstituteServiceStats(t *testing.T) {
	svc := NewInstituteService(statsInstituteRepo{stats: &models.InstituteStats{
		TotalInstitutes: 5, TotalCareers: 14, TotalStudents: 132500, TotalTeachers: 7180,
	}}, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalInstitutes)
	assert.Equal(t, int64(14), stats.TotalCareers)
}

type statsInstituteRepo struct {
	instituteRepoStub
	stats *models.InstituteStats
}

func (s statsInstituteRepo) Stats(ctx context.Context) (*models.InstituteStats, error) {
	return s.stats, nil
}
