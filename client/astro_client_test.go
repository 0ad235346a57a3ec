package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sahradeniz/Astrologi-Ai-sub000/customerrors"
	"github.com/sahradeniz/Astrologi-Ai-sub000/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (*AstroClient, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewAstroClient(srv.URL, 5*time.Second), srv
}

func TestCalculateBirthChart_Success(t *testing.T) {
	var gotBody model.BirthChartRequest
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/calculate-birth-chart", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"planet_positions": {
				"Sun": {"longitude": 15.5, "speed_longitude": 1.0}
			},
			"interpretation": "metin"
		}`))
	}))
	defer srv.Close()

	chart, err := c.CalculateBirthChart(context.Background(), model.BirthChartRequest{
		BirthDate:  "07.04.1993",
		BirthTime:  "09:05",
		BirthPlace: "İstanbul",
	})
	require.NoError(t, err)
	assert.Equal(t, "07.04.1993", gotBody.BirthDate)
	assert.Equal(t, "09:05", gotBody.BirthTime)
	assert.InDelta(t, 15.5, chart.PlanetPositions["Sun"].Longitude, 1e-9)
	assert.Equal(t, "metin", chart.Interpretation)
}

// A remote error payload travels through verbatim, never reworded.
func TestCalculateBirthChart_ApiErrorPassthrough(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "bad request"}`))
	}))
	defer srv.Close()

	_, err := c.CalculateBirthChart(context.Background(), model.BirthChartRequest{})
	var apiErr *customerrors.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "bad request", apiErr.Message)
}

func TestCalculateBirthChart_ApiErrorFallbackMessage(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>Internal Server Error</html>`))
	}))
	defer srv.Close()

	_, err := c.CalculateBirthChart(context.Background(), model.BirthChartRequest{})
	var apiErr *customerrors.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Bir hata oluştu. Lütfen tekrar dene.", apiErr.Message)
}

func TestCalculateBirthChart_DetailsAndMessageShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"details", `{"details": "ephemeris failure"}`, "ephemeris failure"},
		{"message", `{"message": "rate limited"}`, "rate limited"},
		{"error wins over message", `{"error": "a", "message": "b"}`, "a"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := tc.body
			c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte(body))
			}))
			defer srv.Close()

			_, err := c.CalculateBirthChart(context.Background(), model.BirthChartRequest{})
			var apiErr *customerrors.ApiError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.want, apiErr.Message)
		})
	}
}

// A 2xx reply missing planet_positions is a malformed response, not a chart.
func TestCalculateBirthChart_MissingPositions(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"interpretation": "yorum"}`))
	}))
	defer srv.Close()

	_, err := c.CalculateBirthChart(context.Background(), model.BirthChartRequest{})
	var malformed *customerrors.MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "planet_positions", malformed.Missing)
}

func TestCalculateBirthChart_NonJSONBody(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	_, err := c.CalculateBirthChart(context.Background(), model.BirthChartRequest{})
	var malformed *customerrors.MalformedResponseError
	assert.ErrorAs(t, err, &malformed)
}

func TestCalculateBirthChart_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := NewAstroClient(srv.URL, 5*time.Second)
	srv.Close()

	_, err := c.CalculateBirthChart(context.Background(), model.BirthChartRequest{})
	var transport *customerrors.TransportError
	require.ErrorAs(t, err, &transport)
}

func TestCalculateSynastry_Success(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/calculate-synastry", r.URL.Path)
		w.Write([]byte(`{
			"person1": {"positions": {"Sun": 10.0}},
			"person2": {"positions": {"Sun": 200.0}},
			"aspects": [{"planet1": "Sun", "planet2": "Sun", "aspect": "opposition", "degree_diff": 170}]
		}`))
	}))
	defer srv.Close()

	result, err := c.CalculateSynastry(context.Background(), model.SynastryRequest{})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, result.Person1.Positions["Sun"], 1e-9)
	require.Len(t, result.Aspects, 1)
	assert.Equal(t, "opposition", result.Aspects[0].Aspect)
	assert.InDelta(t, 170.0, result.Aspects[0].DegreeDiff, 1e-9)
}

func TestCalculateSynastry_MissingPerson(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"person1": {"positions": {}}}`))
	}))
	defer srv.Close()

	_, err := c.CalculateSynastry(context.Background(), model.SynastryRequest{})
	var malformed *customerrors.MalformedResponseError
	assert.ErrorAs(t, err, &malformed)
}

func TestGetHoroscope_Success(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "Ayşe", "birthdate": "1993-04-07", "zodiacSign": "Koç", "message": "Bugün enerjin yüksek!"}`))
	}))
	defer srv.Close()

	result, err := c.GetHoroscope(context.Background(), model.HoroscopeRequest{Name: "Ayşe", Birthdate: "1993-04-07"})
	require.NoError(t, err)
	assert.Equal(t, "Koç", result.ZodiacSign)
}

func TestNormalize_NilResponse(t *testing.T) {
	err := normalize(nil, errors.New("dial tcp: connection refused"))
	var transport *customerrors.TransportError
	require.ErrorAs(t, err, &transport)
}
