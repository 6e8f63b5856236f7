package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academically/academically-api/internal/service"
)

func newExportHandler() *ExportHandler {
	eventSvc := service.NewEventService(newEventRepoStub(), &instituteRepoStub{}, nil, nil)
	instituteSvc := service.NewInstituteService(&instituteRepoStub{}, nil)
	return NewExportHandler(service.NewExportService(eventSvc, instituteSvc, nil))
}

func TestExportHandlerUpcomingEventsCSV(t *testing.T) {
	c, w := testContext(t, http.MethodGet, "/events/export?format=csv")

	newExportHandler().UpcomingEvents(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="upcoming-events.csv"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "Title,Category,Start,End,Location"))
}

func TestExportHandlerInstitutesDefaultsToPDF(t *testing.T) {
	c, w := testContext(t, http.MethodGet, "/institutes/export")

	newExportHandler().Institutes(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestExportHandlerUnsupportedFormat(t *testing.T) {
	c, w := testContext(t, http.MethodGet, "/events/export?format=docx")

	newExportHandler().UpcomingEvents(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorMessage(t, w), "docx")
}
