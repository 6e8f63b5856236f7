package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academically/academically-api/internal/models"
	"github.com/academically/academically-api/internal/service"
	"github.com/academically/academically-api/pkg/response"
)

type instituteRepoStub struct {
	institutes []models.Institute
	err        error
}

func (s *instituteRepoStub) List(ctx context.Context) ([]models.Institute, error) {
	return s.institutes, s.err
}

func (s *instituteRepoStub) Search(ctx context.Context, query string) ([]models.Institute, error) {
	return s.institutes, s.err
}

func (s *instituteRepoStub) GetByID(ctx context.Context, id int) (*models.Institute, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.institutes {
		if s.institutes[i].InstituteID == id {
			return &s.institutes[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *instituteRepoStub) Stats(ctx context.Context) (*models.InstituteStats, error) {
	return &models.InstituteStats{TotalInstitutes: int64(len(s.institutes))}, s.err
}

func newInstituteHandler(repo *instituteRepoStub) *InstituteHandler {
	return NewInstituteHandler(service.NewInstituteService(repo, nil))
}

func testContext(t *testing.T, method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(method, target, nil)
	require.NoError(t, err)
	c.Request = req
	return c, w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestInstituteHandlerList(t *testing.T) {
	repo := &instituteRepoStub{institutes: []models.Institute{
		{InstituteID: 1, Acronym: "ITP", Name: "Instituto Tecnológico de Puebla", Careers: []models.Career{}},
	}}
	c, w := testContext(t, http.MethodGet, "/institutes")

	newInstituteHandler(repo).List(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.InstituteListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "ITP", resp.Institutes[0].Acronym)
}

func TestInstituteHandlerSearchMissingQuery(t *testing.T) {
	for _, target := range []string{"/institutes/search", "/institutes/search?q=", "/institutes/search?q=%20%20"} {
		c, w := testContext(t, http.MethodGet, target)

		newInstituteHandler(&instituteRepoStub{}).Search(c)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "query parameter 'q' is required", errorMessage(t, w))
	}
}

func TestInstituteHandlerSearchEchoesQuery(t *testing.T) {
	c, w := testContext(t, http.MethodGet, "/institutes/search?q=puebla")

	newInstituteHandler(&instituteRepoStub{}).Search(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.InstituteSearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "puebla", resp.Query)
	assert.Equal(t, 0, resp.Total)
}

func TestInstituteHandlerGetInvalidID(t *testing.T) {
	c, w := testContext(t, http.MethodGet, "/institutes/abc")
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	newInstituteHandler(&instituteRepoStub{}).Get(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid institute id", errorMessage(t, w))
}

func TestInstituteHandlerGetNotFound(t *testing.T) {
	c, w := testContext(t, http.MethodGet, "/institutes/99")
	c.Params = gin.Params{{Key: "id", Value: "99"}}

	newInstituteHandler(&instituteRepoStub{}).Get(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "institute not found", errorMessage(t, w))
}

func TestInstituteHandlerGetSerializesCareerList(t *testing.T) {
	repo := &instituteRepoStub{institutes: []models.Institute{
		{InstituteID: 1, Acronym: "ITP", Careers: []models.Career{{CareerID: 2, Name: "ISC", InstituteID: 1, RowID: 10}}},
	}}
	c, w := testContext(t, http.MethodGet, "/institutes/1")
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	newInstituteHandler(repo).Get(c)

	require.Equal(t, http.StatusOK, w.Code)
	raw := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Contains(t, raw, "instituteID")
	assert.Contains(t, raw, "listCareer")
	// Storage identifiers stay out of the payload.
	assert.NotContains(t, string(w.Body.Bytes()), "RowID")
}
