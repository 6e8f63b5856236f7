package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/academically/academically-api/internal/models"
)

const eventColumns = "id, title, short_description, long_description, location, start_date, end_date, category, image_path, institute_id, created_at, updated_at, is_active"

// Active listings read as an agenda: dated events first, undated last.
const eventOrder = "ORDER BY start_date ASC NULLS LAST, id ASC"

// EventRepository provides persistence for blog events.
type EventRepository struct {
	db      *sqlx.DB
	metrics QueryObserver
}

// NewEventRepository creates the repository.
func NewEventRepository(db *sqlx.DB, metrics QueryObserver) *EventRepository {
	return &EventRepository{db: db, metrics: metrics}
}

// ListActive returns all active events.
func (r *EventRepository) ListActive(ctx context.Context) ([]models.BlogEvent, error) {
	defer observe(r.metrics, "events_list", time.Now())
	query := fmt.Sprintf("SELECT %s FROM blog_events WHERE is_active = TRUE %s", eventColumns, eventOrder)
	var events []models.BlogEvent
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// Search matches active events whose title or either description contains
// the query substring, compared as stored.
func (r *EventRepository) Search(ctx context.Context, query string) ([]models.BlogEvent, error) {
	defer observe(r.metrics, "events_search", time.Now())
	stmt := fmt.Sprintf(`SELECT %s FROM blog_events
WHERE is_active = TRUE AND (title LIKE $1 OR short_description LIKE $1 OR long_description LIKE $1) %s`,
		eventColumns, eventOrder)
	pattern := "%" + query + "%"
	var events []models.BlogEvent
	if err := r.db.SelectContext(ctx, &events, stmt, pattern); err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	return events, nil
}

// ByCategory returns active events with an exact category match.
func (r *EventRepository) ByCategory(ctx context.Context, category string) ([]models.BlogEvent, error) {
	defer observe(r.metrics, "events_by_category", time.Now())
	stmt := fmt.Sprintf("SELECT %s FROM blog_events WHERE is_active = TRUE AND category = $1 %s", eventColumns, eventOrder)
	var events []models.BlogEvent
	if err := r.db.SelectContext(ctx, &events, stmt, category); err != nil {
		return nil, fmt.Errorf("events by category: %w", err)
	}
	return events, nil
}

// Upcoming returns active events whose start date lies in [from, to], both
// ends inclusive.
func (r *EventRepository) Upcoming(ctx context.Context, from, to time.Time) ([]models.BlogEvent, error) {
	defer observe(r.metrics, "events_upcoming", time.Now())
	stmt := fmt.Sprintf(`SELECT %s FROM blog_events
WHERE is_active = TRUE AND start_date >= $1 AND start_date <= $2 %s`, eventColumns, eventOrder)
	var events []models.BlogEvent
	if err := r.db.SelectContext(ctx, &events, stmt, from, to); err != nil {
		return nil, fmt.Errorf("upcoming events: %w", err)
	}
	return events, nil
}

// ByInstitute returns active events owned by the institute.
func (r *EventRepository) ByInstitute(ctx context.Context, instituteID int) ([]models.BlogEvent, error) {
	defer observe(r.metrics, "events_by_institute", time.Now())
	stmt := fmt.Sprintf("SELECT %s FROM blog_events WHERE is_active = TRUE AND institute_id = $1 %s", eventColumns, eventOrder)
	var events []models.BlogEvent
	if err := r.db.SelectContext(ctx, &events, stmt, instituteID); err != nil {
		return nil, fmt.Errorf("events by institute: %w", err)
	}
	return events, nil
}

// GetByID returns an event regardless of its active flag. sql.ErrNoRows
// passes through as the not-found signal.
func (r *EventRepository) GetByID(ctx context.Context, id int) (*models.BlogEvent, error) {
	defer observe(r.metrics, "events_get", time.Now())
	stmt := fmt.Sprintf("SELECT %s FROM blog_events WHERE id = $1", eventColumns)
	var event models.BlogEvent
	if err := r.db.GetContext(ctx, &event, stmt, id); err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts a new event, stamping both timestamps and activating it.
// The generated id is written back onto the struct.
func (r *EventRepository) Create(ctx context.Context, event *models.BlogEvent) error {
	defer observe(r.metrics, "events_create", time.Now())
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now
	event.IsActive = true
	const stmt = `INSERT INTO blog_events (title, short_description, long_description, location, start_date, end_date, category, image_path, institute_id, created_at, updated_at, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, stmt,
		event.Title, event.ShortDescription, event.LongDescription, event.Location,
		event.StartDate, event.EndDate, event.Category, event.ImagePath,
		event.InstituteID, event.CreatedAt, event.UpdatedAt, event.IsActive,
	).Scan(&event.ID); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// Update overwrites the mutable fields and refreshes updated_at. The active
// flag and the owning institute are left untouched. Returns the number of
// rows matched.
func (r *EventRepository) Update(ctx context.Context, event *models.BlogEvent) (int64, error) {
	defer observe(r.metrics, "events_update", time.Now())
	event.UpdatedAt = time.Now().UTC()
	const stmt = `UPDATE blog_events
SET title = $2, short_description = $3, long_description = $4, location = $5,
	start_date = $6, end_date = $7, category = $8, image_path = $9, updated_at = $10
WHERE id = $1`
	res, err := r.db.ExecContext(ctx, stmt,
		event.ID, event.Title, event.ShortDescription, event.LongDescription,
		event.Location, event.StartDate, event.EndDate, event.Category,
		event.ImagePath, event.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("update event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update event rows: %w", err)
	}
	return affected, nil
}

// SoftDelete deactivates an event. The is_active guard makes a second delete
// of the same id report zero rows.
func (r *EventRepository) SoftDelete(ctx context.Context, id int) (int64, error) {
	defer observe(r.metrics, "events_delete", time.Now())
	const stmt = `UPDATE blog_events SET is_active = FALSE, updated_at = $2 WHERE id = $1 AND is_active = TRUE`
	res, err := r.db.ExecContext(ctx, stmt, id, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("delete event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete event rows: %w", err)
	}
	return affected, nil
}

// Stats counts active events in total and per category.
func (r *EventRepository) Stats(ctx context.Context) (int64, map[string]int64, error) {
	defer observe(r.metrics, "events_stats", time.Now())
	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM blog_events WHERE is_active = TRUE"); err != nil {
		return 0, nil, fmt.Errorf("count events: %w", err)
	}
	rows, err := r.db.QueryxContext(ctx, "SELECT category, COUNT(*) FROM blog_events WHERE is_active = TRUE GROUP BY category")
	if err != nil {
		return 0, nil, fmt.Errorf("count events by category: %w", err)
	}
	defer rows.Close()

	byCategory := map[string]int64{}
	for rows.Next() {
		var category string
		var count int64
		if err := rows.Scan(&category, &count); err != nil {
			return 0, nil, fmt.Errorf("scan category count: %w", err)
		}
		byCategory[category] = count
	}
	if err := rows.Err(); err != nil {
		return 0, nil, fmt.Errorf("iterate category counts: %w", err)
	}
	return total, byCategory, nil
}
