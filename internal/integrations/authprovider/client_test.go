package authprovider

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "anon-key", 5*time.Second, nil, nopLogger{})
}

func TestSignInWithPassword_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"access_token": "opaque-token",
			"token_type": "bearer",
			"expires_in": 3600,
			"refresh_token": "refresh-1",
			"user": {"id": "u-1", "email": "me@example.com", "user_metadata": {"name": "Me"}}
		}`))
	})

	session, err := client.SignInWithPassword(context.Background(), "me@example.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, "me@example.com", session.Email)
	assert.Equal(t, "opaque-token", session.AccessToken)
	assert.Equal(t, "refresh-1", session.RefreshToken)
	assert.Equal(t, "Me", session.Metadata["name"])
	// Токен не JWT: срок берется из expires_in
	assert.False(t, session.ExpiresAt.IsZero())
}

func TestSignInWithPassword_InvalidCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "invalid_grant", "error_description": "Invalid login credentials"}`))
	})

	_, err := client.SignInWithPassword(context.Background(), "me@example.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUser_SendsBearerToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "u-1", "email": "me@example.com"}`))
	})

	user, err := client.GetUser(context.Background(), "session-token")
	require.NoError(t, err)

	assert.Equal(t, "me@example.com", user.Email)
}

func TestGetUser_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.GetUser(context.Background(), "stale-token")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUploadFile_ReturnsPublicURL(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"Key": "car-images/img.png"}`))
	}))
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, "anon-key", 5*time.Second, nil, nopLogger{})

	url, err := client.UploadFile(context.Background(), "token", "car-images", "img.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "/storage/v1/object/car-images/img.png", gotPath)
	assert.Equal(t, "image/png", gotContentType)
	assert.Equal(t, []byte("png-bytes"), gotBody)
	assert.Equal(t, srv.URL+"/storage/v1/object/public/car-images/img.png", url)
}

func TestUploadFile_Failure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"msg": "bucket not found"}`))
	})

	_, err := client.UploadFile(context.Background(), "token", "missing", "img.png", "image/png", []byte("x"))

	assert.ErrorIs(t, err, ErrUploadFailed)
}

func TestToSession_PrefersTokenExpClaim(t *testing.T) {
	// JWT c exp=1700000000 (unix), собран вручную без подписи
	// header {"alg":"none"} payload {"exp":1700000000}
	token := "eyJhbGciOiJub25lIn0.eyJleHAiOjE3MDAwMDAwMDB9."

	resp := &TokenResponse{
		AccessToken: token,
		ExpiresIn:   3600,
		User:        User{Email: "me@example.com"},
	}

	session := resp.ToSession(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Unix(1700000000, 0).UTC(), session.ExpiresAt.UTC())
}
