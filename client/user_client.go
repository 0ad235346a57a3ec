package client

import (
	"context"
	"time"

	"github.com/sahradeniz/Astrologi-Ai-sub000/customerrors"
	"github.com/sahradeniz/Astrologi-Ai-sub000/middleware"
	"github.com/sahradeniz/Astrologi-Ai-sub000/model"

	"github.com/go-resty/resty/v2"
)

// UserClient talks to the account and chat endpoints of the remote service.
type UserClient struct {
	RestyClient *resty.Client
}

func NewUserClient(baseURL string, timeout time.Duration) *UserClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeaders(map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		})
	c.OnAfterResponse(middleware.DecompressMiddleware)

	return &UserClient{RestyClient: c}
}

func (c *UserClient) Login(ctx context.Context, req model.LoginDto) (*model.AuthResponse, error) {
	return c.postAuth(ctx, "/api/user/login", req)
}

func (c *UserClient) Register(ctx context.Context, req model.RegisterDto) (*model.AuthResponse, error) {
	return c.postAuth(ctx, "/api/user/register", req)
}

func (c *UserClient) postAuth(ctx context.Context, path string, body any) (*model.AuthResponse, error) {
	resp, err := c.RestyClient.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err := normalize(resp, err); err != nil {
		return nil, err
	}

	var result model.AuthResponse
	if err := decode(resp, &result); err != nil {
		return nil, err
	}
	if result.UserID == "" || result.Token == "" {
		return nil, &customerrors.MalformedResponseError{Missing: "userId/token"}
	}

	return &result, nil
}

// SendChatMessage forwards a chat message with the user's bearer token.
func (c *UserClient) SendChatMessage(ctx context.Context, token string, req model.ChatRequest) (*model.ChatReply, error) {
	resp, err := c.RestyClient.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(req).
		Post("/api/chat/message")
	if err := normalize(resp, err); err != nil {
		return nil, err
	}

	var result model.ChatReply
	if err := decode(resp, &result); err != nil {
		return nil, err
	}
	if result.Response == "" {
		return nil, &customerrors.MalformedResponseError{Missing: "response"}
	}

	return &result, nil
}
