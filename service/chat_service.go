package service

import (
	"context"
	"strings"

	"github.com/sahradeniz/Astrologi-Ai-sub000/client"
	"github.com/sahradeniz/Astrologi-Ai-sub000/customerrors"
	"github.com/sahradeniz/Astrologi-Ai-sub000/model"
	"github.com/sahradeniz/Astrologi-Ai-sub000/store"
)

// ChatService relays chat messages to the remote AI endpoint with the stored
// bearer token.
type ChatService interface {
	Send(ctx context.Context, message string) (string, error)
}

type ChatServiceImpl struct {
	client *client.UserClient
	store  store.Store
}

func NewChatService(c *client.UserClient, st store.Store) ChatService {
	return &ChatServiceImpl{client: c, store: st}
}

func (s *ChatServiceImpl) Send(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", customerrors.NewValidationError("message", "Mesaj boş olamaz")
	}

	var token string
	found, err := s.store.Load(ctx, store.KeyToken, &token)
	if err != nil {
		return "", err
	}
	if !found || token == "" {
		return "", customerrors.ErrNotAuthenticated
	}

	reply, err := s.client.SendChatMessage(ctx, token, model.ChatRequest{Message: message})
	if err != nil {
		return "", err
	}

	return reply.Response, nil
}
