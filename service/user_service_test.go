package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sahradeniz/Astrologi-Ai-sub000/client"
	"github.com/sahradeniz/Astrologi-Ai-sub000/customerrors"
	"github.com/sahradeniz/Astrologi-Ai-sub000/model"
	"github.com/sahradeniz/Astrologi-Ai-sub000/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const authBody = `{
	"userId": "u-123",
	"token": "remote-bearer-token",
	"name": "Ayşe",
	"email": "ayse@example.com"
}`

func newUserService(handler http.Handler) (UserService, store.Store, *httptest.Server) {
	srv := httptest.NewServer(handler)
	st := store.NewMemoryStore()
	c := client.NewUserClient(srv.URL, 5*time.Second)
	return NewUserService(c, st), st, srv
}

func TestLogin_OpensSession(t *testing.T) {
	svc, st, srv := newUserService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/login", r.URL.Path)
		w.Write([]byte(authBody))
	}))
	defer srv.Close()
	ctx := context.Background()

	profile, sessionToken, err := svc.Login(ctx, model.LoginDto{Email: "ayse@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "u-123", profile.UserID)
	assert.NotEmpty(t, sessionToken)

	var token string
	found, err := st.Load(ctx, store.KeyToken, &token)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "remote-bearer-token", token)

	var stored model.UserProfile
	found, err = st.Load(ctx, store.KeyUserProfile, &stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, *profile, stored)
}

// Logout wipes every session key, the saved chart included.
func TestLogout_ClearsSessionKeys(t *testing.T) {
	svc, st, srv := newUserService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(authBody))
	}))
	defer srv.Close()
	ctx := context.Background()

	_, _, err := svc.Login(ctx, model.LoginDto{Email: "ayse@example.com", Password: "secret"})
	require.NoError(t, err)

	require.NoError(t, st.Save(ctx, store.KeyNatalChart, model.ChartResult{
		PlanetPositions: map[string]model.PlanetPosition{"Sun": {Longitude: 15.5, Sign: "Koç"}},
	}))
	require.NoError(t, st.Save(ctx, store.KeyFriends, []model.Friend{
		{Name: "Mehmet", BirthDate: "1990-11-21", BirthTime: "22:40", BirthPlace: "Ankara"},
	}))

	require.NoError(t, svc.Logout(ctx))

	for _, key := range store.SessionKeys {
		var raw map[string]any
		found, err := st.Load(ctx, key, &raw)
		require.NoError(t, err)
		assert.False(t, found, "key %q should be absent after logout", key)
	}

	_, err = svc.Profile(ctx)
	assert.ErrorIs(t, err, customerrors.ErrNotAuthenticated)
}

func TestLogin_RemoteFailure(t *testing.T) {
	svc, st, srv := newUserService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "Geçersiz e-posta veya şifre"}`))
	}))
	defer srv.Close()
	ctx := context.Background()

	_, _, err := svc.Login(ctx, model.LoginDto{Email: "ayse@example.com", Password: "wrong"})
	var apiErr *customerrors.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Geçersiz e-posta veya şifre", apiErr.Message)

	var token string
	found, err := st.Load(ctx, store.KeyToken, &token)
	require.NoError(t, err)
	assert.False(t, found)
}
