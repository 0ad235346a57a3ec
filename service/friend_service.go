package service

import (
	"context"
	"strings"

	"github.com/sahradeniz/Astrologi-Ai-sub000/customerrors"
	"github.com/sahradeniz/Astrologi-Ai-sub000/model"
	"github.com/sahradeniz/Astrologi-Ai-sub000/store"
	"github.com/sahradeniz/Astrologi-Ai-sub000/validator"
)

// FriendService manages the saved people whose birth data can prefill the
// second side of a synastry form. The whole list lives under one store key.
type FriendService interface {
	List(ctx context.Context) ([]model.Friend, error)
	Add(ctx context.Context, f model.Friend) ([]model.Friend, error)
	Remove(ctx context.Context, name string) ([]model.Friend, error)
	Get(ctx context.Context, name string) (*model.Friend, error)
}

type FriendServiceImpl struct {
	store store.Store
}

func NewFriendService(st store.Store) FriendService {
	return &FriendServiceImpl{store: st}
}

func (s *FriendServiceImpl) List(ctx context.Context) ([]model.Friend, error) {
	friends := make([]model.Friend, 0)
	if _, err := s.store.Load(ctx, store.KeyFriends, &friends); err != nil {
		return nil, err
	}
	return friends, nil
}

// Add validates the friend's birth fields and upserts by name, replacing an
// existing entry with the same name.
func (s *FriendServiceImpl) Add(ctx context.Context, f model.Friend) ([]model.Friend, error) {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return nil, customerrors.NewValidationError("name", "İsim gerekli")
	}

	input, err := validator.ValidateISOBirthInput(model.BirthInputRaw{
		Name:  f.Name,
		Date:  f.BirthDate,
		Time:  f.BirthTime,
		Place: f.BirthPlace,
	})
	if err != nil {
		return nil, err
	}

	f.BirthDate = input.ISODateString()
	f.BirthTime = input.TimeString()
	f.BirthPlace = input.Place

	friends, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i := range friends {
		if friends[i].Name == f.Name {
			friends[i] = f
			replaced = true
			break
		}
	}
	if !replaced {
		friends = append(friends, f)
	}

	if err := s.store.Save(ctx, store.KeyFriends, friends); err != nil {
		return nil, err
	}
	return friends, nil
}

func (s *FriendServiceImpl) Remove(ctx context.Context, name string) ([]model.Friend, error) {
	friends, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	kept := friends[:0]
	found := false
	for _, f := range friends {
		if f.Name == name {
			found = true
			continue
		}
		kept = append(kept, f)
	}
	if !found {
		return nil, customerrors.ErrFriendNotFound
	}

	if err := s.store.Save(ctx, store.KeyFriends, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *FriendServiceImpl) Get(ctx context.Context, name string) (*model.Friend, error) {
	friends, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range friends {
		if f.Name == name {
			return &f, nil
		}
	}
	return nil, customerrors.ErrFriendNotFound
}
