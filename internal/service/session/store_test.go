package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SURA-RentalService/internal/domain"
	"github.com/m04kA/SURA-RentalService/internal/integrations/authprovider"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time { return p.now }

type mockAuthClient struct {
	user *authprovider.User
	err  error
}

func (m *mockAuthClient) GetUser(ctx context.Context, token string) (*authprovider.User, error) {
	return m.user, m.err
}

func newTestStore(authClient AuthProviderClient, now time.Time) (*Store, *fakeTimeProvider) {
	store := NewStore("admin@example.com", authClient, nopLogger{})
	tp := &fakeTimeProvider{now: now}
	store.timeProvider = tp
	return store, tp
}

func TestSetAndGet(t *testing.T) {
	store, _ := newTestStore(&mockAuthClient{}, time.Now())

	session := &domain.Session{Email: "me@example.com", AccessToken: "token-1"}
	store.Set(session)

	got, ok := store.Get("token-1")
	require.True(t, ok)
	assert.Equal(t, "me@example.com", got.Email)

	_, ok = store.Get("unknown")
	assert.False(t, ok)
}

func TestGet_ExpiredSessionIsDropped(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store, tp := newTestStore(&mockAuthClient{}, now)

	store.Set(&domain.Session{
		Email:       "me@example.com",
		AccessToken: "token-1",
		ExpiresAt:   now.Add(time.Hour),
	})

	_, ok := store.Get("token-1")
	require.True(t, ok)

	tp.now = now.Add(2 * time.Hour)

	_, ok = store.Get("token-1")
	assert.False(t, ok)
}

func TestDelete_NotifiesListeners(t *testing.T) {
	store, _ := newTestStore(&mockAuthClient{}, time.Now())

	var gotToken string
	var gotSession *domain.Session
	notified := 0
	store.Subscribe(func(token string, session *domain.Session) {
		notified++
		gotToken = token
		gotSession = session
	})

	store.Set(&domain.Session{Email: "me@example.com", AccessToken: "token-1"})
	require.Equal(t, 1, notified)
	assert.Equal(t, "token-1", gotToken)
	require.NotNil(t, gotSession)

	store.Delete("token-1")
	require.Equal(t, 2, notified)
	// Выход передается подписчикам как nil-сессия
	assert.Nil(t, gotSession)

	// Повторное удаление не уведомляет
	store.Delete("token-1")
	assert.Equal(t, 2, notified)
}

func TestResolve_KnownToken(t *testing.T) {
	store, _ := newTestStore(&mockAuthClient{err: errors.New("should not be called")}, time.Now())
	store.Set(&domain.Session{Email: "me@example.com", AccessToken: "token-1"})

	got, err := store.Resolve(context.Background(), "token-1")

	require.NoError(t, err)
	assert.Equal(t, "me@example.com", got.Email)
}

func TestResolve_UnknownTokenRecoversViaProvider(t *testing.T) {
	client := &mockAuthClient{
		user: &authprovider.User{
			ID:    "u-1",
			Email: "me@example.com",
		},
	}
	store, _ := newTestStore(client, time.Now())

	got, err := store.Resolve(context.Background(), "fresh-token")
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", got.Email)

	// Восстановленная сессия сохранена в хранилище
	_, ok := store.Get("fresh-token")
	assert.True(t, ok)
}

func TestResolve_RejectedToken(t *testing.T) {
	client := &mockAuthClient{err: authprovider.ErrUnauthorized}
	store, _ := newTestStore(client, time.Now())

	_, err := store.Resolve(context.Background(), "bad-token")

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolve_EmptyToken(t *testing.T) {
	store, _ := newTestStore(&mockAuthClient{}, time.Now())

	_, err := store.Resolve(context.Background(), "")

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestIsAdmin(t *testing.T) {
	store, _ := newTestStore(&mockAuthClient{}, time.Now())

	assert.True(t, store.IsAdmin(&domain.Session{Email: "admin@example.com"}))
	assert.False(t, store.IsAdmin(&domain.Session{Email: "user@example.com"}))
	assert.False(t, store.IsAdmin(nil))
}
