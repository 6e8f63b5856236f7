package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/academically/academically-api/internal/models"
)

const instituteColumns = "id, acronym, name, address, email, phone, student_number, teacher_number, website, facebook, instagram, twitter, youtube"

// InstituteRepository provides read-only persistence for institutes and
// their careers.
type InstituteRepository struct {
	db      *sqlx.DB
	metrics QueryObserver
}

// NewInstituteRepository creates the repository.
func NewInstituteRepository(db *sqlx.DB, metrics QueryObserver) *InstituteRepository {
	return &InstituteRepository{db: db, metrics: metrics}
}

// List returns every institute in insertion order, careers populated by a
// per-institute lookup.
func (r *InstituteRepository) List(ctx context.Context) ([]models.Institute, error) {
	defer observe(r.metrics, "institutes_list", time.Now())
	query := fmt.Sprintf("SELECT %s FROM institutes ORDER BY id", instituteColumns)
	var institutes []models.Institute
	if err := r.db.SelectContext(ctx, &institutes, query); err != nil {
		return nil, fmt.Errorf("list institutes: %w", err)
	}
	for i := range institutes {
		careers, err := r.careersByInstitute(ctx, institutes[i].InstituteID)
		if err != nil {
			return nil, err
		}
		institutes[i].Careers = careers
	}
	return institutes, nil
}

// Search matches the query case-insensitively against name or acronym.
// Note the contrast with event search, which compares as stored.
func (r *InstituteRepository) Search(ctx context.Context, query string) ([]models.Institute, error) {
	defer observe(r.metrics, "institutes_search", time.Now())
	stmt := fmt.Sprintf(
		"SELECT %s FROM institutes WHERE LOWER(name) LIKE LOWER($1) OR LOWER(acronym) LIKE LOWER($1) ORDER BY id",
		instituteColumns)
	pattern := "%" + query + "%"
	var institutes []models.Institute
	if err := r.db.SelectContext(ctx, &institutes, stmt, pattern); err != nil {
		return nil, fmt.Errorf("search institutes: %w", err)
	}
	for i := range institutes {
		careers, err := r.careersByInstitute(ctx, institutes[i].InstituteID)
		if err != nil {
			return nil, err
		}
		institutes[i].Careers = careers
	}
	return institutes, nil
}

// GetByID returns one institute with its careers. sql.ErrNoRows passes
// through untouched as the not-found signal.
func (r *InstituteRepository) GetByID(ctx context.Context, id int) (*models.Institute, error) {
	defer observe(r.metrics, "institutes_get", time.Now())
	query := fmt.Sprintf("SELECT %s FROM institutes WHERE id = $1", instituteColumns)
	var institute models.Institute
	if err := r.db.GetContext(ctx, &institute, query, id); err != nil {
		return nil, err
	}
	careers, err := r.careersByInstitute(ctx, institute.InstituteID)
	if err != nil {
		return nil, err
	}
	institute.Careers = careers
	return &institute, nil
}

// Stats aggregates global counters. Sums coalesce to zero on an empty table.
func (r *InstituteRepository) Stats(ctx context.Context) (*models.InstituteStats, error) {
	defer observe(r.metrics, "institutes_stats", time.Now())
	const query = `SELECT
	(SELECT COUNT(*) FROM institutes) AS total_institutes,
	(SELECT COUNT(*) FROM careers) AS total_careers,
	(SELECT COALESCE(SUM(student_number), 0) FROM institutes) AS total_students,
	(SELECT COALESCE(SUM(teacher_number), 0) FROM institutes) AS total_teachers`
	var row struct {
		TotalInstitutes int64 `db:"total_institutes"`
		TotalCareers    int64 `db:"total_careers"`
		TotalStudents   int64 `db:"total_students"`
		TotalTeachers   int64 `db:"total_teachers"`
	}
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		return nil, fmt.Errorf("institute stats: %w", err)
	}
	return &models.InstituteStats{
		TotalInstitutes: row.TotalInstitutes,
		TotalCareers:    row.TotalCareers,
		TotalStudents:   row.TotalStudents,
		TotalTeachers:   row.TotalTeachers,
	}, nil
}

func (r *InstituteRepository) careersByInstitute(ctx context.Context, instituteID int) ([]models.Career, error) {
	defer observe(r.metrics, "careers_by_institute", time.Now())
	const query = `SELECT id, career_id, name, acronym, email, phone, institute_id
FROM careers WHERE institute_id = $1 ORDER BY career_id`
	careers := []models.Career{}
	if err := r.db.SelectContext(ctx, &careers, query, instituteID); err != nil {
		return nil, fmt.Errorf("careers for institute %d: %w", instituteID, err)
	}
	return careers, nil
}
