package service

import (
	"context"
	"sync/atomic"

	"github.com/sahradeniz/Astrologi-Ai-sub000/client"
	"github.com/sahradeniz/Astrologi-Ai-sub000/customerrors"
	"github.com/sahradeniz/Astrologi-Ai-sub000/model"
	"github.com/sahradeniz/Astrologi-Ai-sub000/store"
	"github.com/sahradeniz/Astrologi-Ai-sub000/validator"

	"github.com/rs/zerolog/log"
)

// ChartService runs the birth-data intake workflow: validate, compose the
// payload, call the remote service, persist the result. Submits move through
// Idle -> Validating -> Submitting -> Success/Failure; invalid input fails
// before the network, and the in-flight guard keeps at most one outstanding
// chart request per service instance.
type ChartService interface {
	SubmitBirthChart(ctx context.Context, raw model.BirthInputRaw) (*model.ChartResult, error)
	SubmitNatalChart(ctx context.Context, raw model.BirthInputRaw) (*model.NatalChartResult, error)
	SavedChart(ctx context.Context) (*model.ChartResult, error)
}

type ChartServiceImpl struct {
	client   *client.AstroClient
	store    store.Store
	inFlight atomic.Bool
}

func NewChartService(c *client.AstroClient, st store.Store) ChartService {
	return &ChartServiceImpl{client: c, store: st}
}

// SubmitBirthChart handles the GG.AA.YYYY entry point. On success the chart
// (with locally derived signs) is persisted under the natalChart key together
// with a profile snapshot of the input; on any failure nothing is persisted.
func (s *ChartServiceImpl) SubmitBirthChart(ctx context.Context, raw model.BirthInputRaw) (*model.ChartResult, error) {
	input, err := validator.ValidateBirthInput(raw)
	if err != nil {
		return nil, err
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, customerrors.ErrSubmitInFlight
	}
	defer s.inFlight.Store(false)

	chart, err := s.client.CalculateBirthChart(ctx, input.ToBirthChartRequest())
	if err != nil {
		log.Warn().Err(err).Str("place", input.Place).Msg("birth chart submit failed")
		return nil, err
	}

	chart.DeriveSigns()

	if err := s.store.Save(ctx, store.KeyNatalChart, chart); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, store.KeyBirthProfile, input.ToProfile()); err != nil {
		return nil, err
	}

	return chart, nil
}

// SubmitNatalChart handles the ISO entry point against the older
// /natal-chart endpoint. The result lands under its own key; the two chart
// shapes are not interchangeable.
func (s *ChartServiceImpl) SubmitNatalChart(ctx context.Context, raw model.BirthInputRaw) (*model.NatalChartResult, error) {
	input, err := validator.ValidateISOBirthInput(raw)
	if err != nil {
		return nil, err
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, customerrors.ErrSubmitInFlight
	}
	defer s.inFlight.Store(false)

	chart, err := s.client.CalculateNatalChart(ctx, input.ToNatalChartRequest())
	if err != nil {
		log.Warn().Err(err).Str("place", input.Place).Msg("natal chart submit failed")
		return nil, err
	}

	if err := s.store.Save(ctx, store.KeyUserChart, chart); err != nil {
		return nil, err
	}

	return chart, nil
}

// SavedChart reads the last persisted birth chart without touching the
// network.
func (s *ChartServiceImpl) SavedChart(ctx context.Context) (*model.ChartResult, error) {
	var chart model.ChartResult
	found, err := s.store.Load(ctx, store.KeyNatalChart, &chart)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, customerrors.ErrChartNotFound
	}
	return &chart, nil
}
