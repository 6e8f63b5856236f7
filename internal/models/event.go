package models

import "time"

// Event categories. The column is an open string enumeration; these are the
// conventional values used by callers.
const (
	CategoryInstitutional = "INSTITUTIONAL"
	CategoryCareer        = "CAREER"
	CategoryPersonal      = "PERSONAL"
)

// DateLayout is the calendar-date wire format for event start/end dates.
const DateLayout = "2006-01-02"

// BlogEvent is the persisted shape of a blog event row.
type BlogEvent struct {
	ID               int        `db:"id"`
	Title            string     `db:"title"`
	ShortDescription string     `db:"short_description"`
	LongDescription  string     `db:"long_description"`
	Location         string     `db:"location"`
	StartDate        *time.Time `db:"start_date"`
	EndDate          *time.Time `db:"end_date"`
	Category         string     `db:"category"`
	ImagePath        string     `db:"image_path"`
	InstituteID      int        `db:"institute_id"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
	IsActive         bool       `db:"is_active"`
}

// EventRecord is the response shape of a blog event: calendar dates become
// `YYYY-MM-DD` strings or null.
type EventRecord struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	ShortDescription string  `json:"shortDescription"`
	LongDescription  string  `json:"longDescription"`
	Location         string  `json:"location"`
	StartDate        *string `json:"startDate"`
	EndDate          *string `json:"endDate"`
	Category         string  `json:"category"`
	ImagePath        string  `json:"imagePath"`
	InstituteID      int     `json:"instituteId"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
	IsActive         bool    `json:"isActive"`
}

// NewEventRecord maps a persisted row into its response record.
func NewEventRecord(e BlogEvent) EventRecord {
	return EventRecord{
		ID:               e.ID,
		Title:            e.Title,
		ShortDescription: e.ShortDescription,
		LongDescription:  e.LongDescription,
		Location:         e.Location,
		StartDate:        FormatDate(e.StartDate),
		EndDate:          FormatDate(e.EndDate),
		Category:         e.Category,
		ImagePath:        e.ImagePath,
		InstituteID:      e.InstituteID,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        e.UpdatedAt.Format(time.RFC3339),
		IsActive:         e.IsActive,
	}
}

// NewEventRecords maps a slice of rows, never returning nil so collection
// responses serialize as [] instead of null.
func NewEventRecords(events []BlogEvent) []EventRecord {
	records := make([]EventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, NewEventRecord(e))
	}
	return records
}

// FormatDate renders a calendar date or nil.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// ParseDate parses a `YYYY-MM-DD` string. Unparsable or empty input yields
// nil: a bad date is stored as null, not rejected.
func ParseDate(raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, *raw)
	if err != nil {
		return nil
	}
	return &t
}

// EventsListResponse wraps a plain collection read.
type EventsListResponse struct {
	Events []EventRecord `json:"events"`
	Total  int           `json:"total"`
}

// EventSearchResponse echoes the query term alongside the matches.
type EventSearchResponse struct {
	Events []EventRecord `json:"events"`
	Total  int           `json:"total"`
	Query  string        `json:"query"`
}

// EventsByCategoryResponse echoes the requested category.
type EventsByCategoryResponse struct {
	Events   []EventRecord `json:"events"`
	Total    int           `json:"total"`
	Category string        `json:"category"`
}

// UpcomingEventsResponse carries a human description of the window.
type UpcomingEventsResponse struct {
	Events      []EventRecord `json:"events"`
	Total       int           `json:"total"`
	Description string        `json:"description"`
}

// InstituteEventsResponse bundles an institute's active events with the
// owning institute record, which is null when the institute does not exist.
type InstituteEventsResponse struct {
	Events        []EventRecord `json:"events"`
	Total         int           `json:"total"`
	InstituteInfo *Institute    `json:"instituteInfo"`
}

// EventStats counts active events globally and per category.
type EventStats struct {
	TotalEvents      int64            `json:"totalEvents"`
	EventsByCategory map[string]int64 `json:"eventsByCategory"`
	LastUpdated      string           `json:"lastUpdated"`
}

// MessageResponse is the generic confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}
