package client

import (
	"context"
	"time"

	"github.com/sahradeniz/Astrologi-Ai-sub000/customerrors"
	"github.com/sahradeniz/Astrologi-Ai-sub000/middleware"
	"github.com/sahradeniz/Astrologi-Ai-sub000/model"

	"github.com/go-resty/resty/v2"
)

// AstroClient talks to the chart-computation endpoints of the remote
// astrology service. It performs exactly one POST per call: a failed call
// surfaces immediately, nothing is retried here.
type AstroClient struct {
	RestyClient *resty.Client
}

func NewAstroClient(baseURL string, timeout time.Duration) *AstroClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeaders(map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		})
	c.OnAfterResponse(middleware.DecompressMiddleware)

	return &AstroClient{RestyClient: c}
}

// CalculateBirthChart posts the split-field payload and returns the planet
// position map. A 2xx body without planet_positions is a remote defect and
// comes back as MalformedResponseError, never as chart data.
func (c *AstroClient) CalculateBirthChart(ctx context.Context, req model.BirthChartRequest) (*model.ChartResult, error) {
	resp, err := c.RestyClient.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/calculate-birth-chart")
	if err := normalize(resp, err); err != nil {
		return nil, err
	}

	var result model.ChartResult
	if err := decode(resp, &result); err != nil {
		return nil, err
	}
	if result.PlanetPositions == nil {
		return nil, &customerrors.MalformedResponseError{Missing: "planet_positions"}
	}

	return &result, nil
}

// CalculateNatalChart posts the combined date/time payload of the older
// /natal-chart endpoint.
func (c *AstroClient) CalculateNatalChart(ctx context.Context, req model.NatalChartRequest) (*model.NatalChartResult, error) {
	resp, err := c.RestyClient.R().
		SetContext(ctx).
		SetBody(req).
		Post("/natal-chart")
	if err := normalize(resp, err); err != nil {
		return nil, err
	}

	var result model.NatalChartResult
	if err := decode(resp, &result); err != nil {
		return nil, err
	}
	if result.Positions == nil {
		return nil, &customerrors.MalformedResponseError{Missing: "positions"}
	}

	return &result, nil
}

// CalculateSynastry compares two natal charts.
func (c *AstroClient) CalculateSynastry(ctx context.Context, req model.SynastryRequest) (*model.SynastryResult, error) {
	resp, err := c.RestyClient.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/calculate-synastry")
	if err := normalize(resp, err); err != nil {
		return nil, err
	}

	var result model.SynastryResult
	if err := decode(resp, &result); err != nil {
		return nil, err
	}
	if result.Person1.Positions == nil || result.Person2.Positions == nil {
		return nil, &customerrors.MalformedResponseError{Missing: "person1/person2"}
	}

	return &result, nil
}

// GetHoroscope fetches the playful horoscope message for a name and an ISO
// birthdate.
func (c *AstroClient) GetHoroscope(ctx context.Context, req model.HoroscopeRequest) (*model.HoroscopeResult, error) {
	resp, err := c.RestyClient.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/horoscope")
	if err := normalize(resp, err); err != nil {
		return nil, err
	}

	var result model.HoroscopeResult
	if err := decode(resp, &result); err != nil {
		return nil, err
	}
	if result.ZodiacSign == "" {
		return nil, &customerrors.MalformedResponseError{Missing: "zodiacSign"}
	}

	return &result, nil
}
