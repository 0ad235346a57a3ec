package service

import (
	"context"
	"sync/atomic"

	"github.com/sahradeniz/Astrologi-Ai-sub000/client"
	"github.com/sahradeniz/Astrologi-Ai-sub000/customerrors"
	"github.com/sahradeniz/Astrologi-Ai-sub000/model"
	"github.com/sahradeniz/Astrologi-Ai-sub000/store"
	"github.com/sahradeniz/Astrologi-Ai-sub000/util"
	"github.com/sahradeniz/Astrologi-Ai-sub000/validator"

	"github.com/rs/zerolog/log"
)

// SynastryService compares two natal charts. Like the chart service it keeps
// at most one remote request in flight per instance.
type SynastryService interface {
	Compare(ctx context.Context, person1, person2 model.BirthInputRaw) (*model.SynastryResult, error)
	CompareWithFriend(ctx context.Context, friendName string) (*model.SynastryResult, error)
	SavedResult(ctx context.Context) (*model.SynastryResult, error)
}

type SynastryServiceImpl struct {
	client   *client.AstroClient
	store    store.Store
	friends  FriendService
	inFlight atomic.Bool
}

func NewSynastryService(c *client.AstroClient, st store.Store, fs FriendService) SynastryService {
	return &SynastryServiceImpl{client: c, store: st, friends: fs}
}

// Compare validates both people (ISO entry point), composes the pair payload
// and fetches the comparison. The result is persisted for the results view.
func (s *SynastryServiceImpl) Compare(ctx context.Context, person1, person2 model.BirthInputRaw) (*model.SynastryResult, error) {
	in1, err := validator.ValidateISOBirthInput(person1)
	if err != nil {
		return nil, err
	}
	in2, err := validator.ValidateISOBirthInput(person2)
	if err != nil {
		return nil, err
	}

	req := model.SynastryRequest{
		Person1: in1.ToSynastryPerson(),
		Person2: in2.ToSynastryPerson(),
	}

	return s.submit(ctx, req)
}

// CompareWithFriend runs the stored profile against a saved friend.
func (s *SynastryServiceImpl) CompareWithFriend(ctx context.Context, friendName string) (*model.SynastryResult, error) {
	var profile model.BirthProfile
	found, err := s.store.Load(ctx, store.KeyBirthProfile, &profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, customerrors.ErrChartNotFound
	}

	friend, err := s.friends.Get(ctx, friendName)
	if err != nil {
		return nil, err
	}

	person1, err := util.ProfileToPerson(profile)
	if err != nil {
		return nil, err
	}
	person2, err := util.FriendToPerson(*friend)
	if err != nil {
		return nil, err
	}

	req := model.SynastryRequest{Person1: person1, Person2: person2}

	return s.submit(ctx, req)
}

func (s *SynastryServiceImpl) submit(ctx context.Context, req model.SynastryRequest) (*model.SynastryResult, error) {
	if req.Person1 == req.Person2 {
		return nil, customerrors.NewValidationError("person2", "İki kişinin doğum bilgileri aynı olamaz")
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, customerrors.ErrSubmitInFlight
	}
	defer s.inFlight.Store(false)

	result, err := s.client.CalculateSynastry(ctx, req)
	if err != nil {
		log.Warn().Err(err).Msg("synastry submit failed")
		return nil, err
	}

	if err := s.store.Save(ctx, store.KeySynastry, result); err != nil {
		return nil, err
	}

	return result, nil
}

// SavedResult reads the last persisted comparison.
func (s *SynastryServiceImpl) SavedResult(ctx context.Context) (*model.SynastryResult, error) {
	var result model.SynastryResult
	found, err := s.store.Load(ctx, store.KeySynastry, &result)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, customerrors.ErrChartNotFound
	}
	return &result, nil
}
