package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sahradeniz/Astrologi-Ai-sub000/customerrors"
	"github.com/sahradeniz/Astrologi-Ai-sub000/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChartService struct {
	chart *model.ChartResult
	err   error
}

func (s *stubChartService) SubmitBirthChart(context.Context, model.BirthInputRaw) (*model.ChartResult, error) {
	return s.chart, s.err
}

func (s *stubChartService) SubmitNatalChart(context.Context, model.BirthInputRaw) (*model.NatalChartResult, error) {
	return nil, s.err
}

func (s *stubChartService) SavedChart(context.Context) (*model.ChartResult, error) {
	return s.chart, s.err
}

func chartRouter(svc *stubChartService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewChartController(svc).RegisterRoutes(r.Group("/api"))
	return r
}

func TestSubmitBirthChart_OK(t *testing.T) {
	r := chartRouter(&stubChartService{chart: &model.ChartResult{
		PlanetPositions: map[string]model.PlanetPosition{"Sun": {Longitude: 15.5, Sign: "Koç"}},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chart", strings.NewReader(
		`{"name":"Ayşe","birth_date":"07.04.1993","birth_time":"09:05","birth_place":"İstanbul"}`,
	))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp model.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Doğum haritanız hazırlandı", resp.Message)
}

func TestSubmitBirthChart_ErrorEnvelope(t *testing.T) {
	r := chartRouter(&stubChartService{err: customerrors.NewValidationError("birth_time", "Geçersiz saat formatı. Lütfen SS:DD formatında girin")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chart", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp model.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Geçersiz saat formatı. Lütfen SS:DD formatında girin", resp.Error)
}

func TestSubmitBirthChart_MalformedBody(t *testing.T) {
	r := chartRouter(&stubChartService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chart", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSavedChart_NotFound(t *testing.T) {
	r := chartRouter(&stubChartService{err: customerrors.ErrChartNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chart", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
