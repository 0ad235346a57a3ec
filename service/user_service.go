package service

import (
	"context"

	"github.com/sahradeniz/Astrologi-Ai-sub000/auth"
	"github.com/sahradeniz/Astrologi-Ai-sub000/client"
	"github.com/sahradeniz/Astrologi-Ai-sub000/customerrors"
	"github.com/sahradeniz/Astrologi-Ai-sub000/model"
	"github.com/sahradeniz/Astrologi-Ai-sub000/store"

	"github.com/rs/zerolog/log"
)

// UserService forwards credentials to the remote user service and keeps the
// returned identity in the local store: the bearer token under its own key,
// the profile fields under theirs. No credential is stored or hashed locally.
type UserService interface {
	Login(ctx context.Context, req model.LoginDto) (*model.UserProfile, string, error)
	Register(ctx context.Context, req model.RegisterDto) (*model.UserProfile, string, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*model.UserProfile, error)
}

type UserServiceImpl struct {
	client *client.UserClient
	store  store.Store
}

func NewUserService(c *client.UserClient, st store.Store) UserService {
	return &UserServiceImpl{client: c, store: st}
}

func (s *UserServiceImpl) Login(ctx context.Context, req model.LoginDto) (*model.UserProfile, string, error) {
	authResp, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, "", err
	}
	return s.openSession(ctx, authResp)
}

func (s *UserServiceImpl) Register(ctx context.Context, req model.RegisterDto) (*model.UserProfile, string, error) {
	authResp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, "", err
	}
	return s.openSession(ctx, authResp)
}

func (s *UserServiceImpl) openSession(ctx context.Context, authResp *model.AuthResponse) (*model.UserProfile, string, error) {
	profile := authResp.ToProfile()

	if err := s.store.Save(ctx, store.KeyUserID, authResp.UserID); err != nil {
		return nil, "", err
	}
	if err := s.store.Save(ctx, store.KeyToken, authResp.Token); err != nil {
		return nil, "", err
	}
	if err := s.store.Save(ctx, store.KeyUserProfile, profile); err != nil {
		return nil, "", err
	}

	sessionToken, err := auth.GenerateToken(profile)
	if err != nil {
		return nil, "", err
	}

	return &profile, sessionToken, nil
}

// Logout wipes every session key. This is the only path that clears the
// persisted chart.
func (s *UserServiceImpl) Logout(ctx context.Context) error {
	for _, key := range store.SessionKeys {
		if err := s.store.Clear(ctx, key); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to clear session key")
			return err
		}
	}
	return nil
}

func (s *UserServiceImpl) Profile(ctx context.Context) (*model.UserProfile, error) {
	var profile model.UserProfile
	found, err := s.store.Load(ctx, store.KeyUserProfile, &profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, customerrors.ErrNotAuthenticated
	}
	return &profile, nil
}
