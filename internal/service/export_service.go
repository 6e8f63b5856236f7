package service

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/academically/academically-api/pkg/export"
	appErrors "github.com/academically/academically-api/pkg/errors"
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportResult is a rendered download.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders the upcoming-events agenda and the institute
// directory as downloadable files.
type ExportService struct {
	events     *EventService
	institutes *InstituteService
	csv        csvRenderer
	pdf        pdfRenderer
	logger     *zap.Logger
}

// NewExportService constructs the service.
func NewExportService(events *EventService, institutes *InstituteService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		events:     events,
		institutes: institutes,
		csv:        export.NewCSVExporter(),
		pdf:        export.NewPDFExporter(),
		logger:     logger,
	}
}

// UpcomingEventsExport renders the next-30-days agenda. Format is "pdf" or
// "csv"; anything else is a validation error.
func (s *ExportService) UpcomingEventsExport(ctx context.Context, format string) (*ExportResult, error) {
	upcoming, err := s.events.Upcoming(ctx)
	if err != nil {
		return nil, err
	}

	headers := []string{"Title", "Category", "Start", "End", "Location"}
	rows := make([]map[string]string, 0, len(upcoming.Events))
	for _, ev := range upcoming.Events {
		rows = append(rows, map[string]string{
			"Title":    ev.Title,
			"Category": ev.Category,
			"Start":    derefOr(ev.StartDate, ""),
			"End":      derefOr(ev.EndDate, ""),
			"Location": ev.Location,
		})
	}
	return s.render(export.Dataset{Headers: headers, Rows: rows}, "Próximos eventos", "upcoming-events", format)
}

// InstituteDirectoryExport renders the institute directory.
func (s *ExportService) InstituteDirectoryExport(ctx context.Context, format string) (*ExportResult, error) {
	list, err := s.institutes.List(ctx)
	if err != nil {
		return nil, err
	}

	headers := []string{"Acronym", "Name", "Email", "Phone", "Students", "Teachers", "Careers"}
	rows := make([]map[string]string, 0, len(list.Institutes))
	for _, inst := range list.Institutes {
		rows = append(rows, map[string]string{
			"Acronym":  inst.Acronym,
			"Name":     inst.Name,
			"Email":    inst.Email,
			"Phone":    inst.Phone,
			"Students": strconv.Itoa(inst.StudentNumber),
			"Teachers": strconv.Itoa(inst.TeacherNumber),
			"Careers":  strconv.Itoa(len(inst.Careers)),
		})
	}
	return s.render(export.Dataset{Headers: headers, Rows: rows}, "Directorio de institutos", "institutes", format)
}

func (s *ExportService) render(data export.Dataset, title, basename, format string) (*ExportResult, error) {
	switch strings.ToLower(format) {
	case "", "pdf":
		content, err := s.pdf.Render(data, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{Content: content, ContentType: "application/pdf", Filename: basename + ".pdf"}, nil
	case "csv":
		content, err := s.csv.Render(data)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{Content: content, ContentType: "text/csv", Filename: basename + ".csv"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format: "+format)
	}
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
