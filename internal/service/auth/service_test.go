package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SURA-RentalService/internal/domain"
	"github.com/m04kA/SURA-RentalService/internal/integrations/authprovider"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockProvider struct {
	session    *domain.Session
	signInErr  error
	signUpErr  error
	resetErr   error
	updateErr  error
	signOutErr error

	signUpCalls  int
	signOutCalls int
	gotUpdate    *authprovider.UpdateUserRequest
}

func (m *mockProvider) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	if m.signInErr != nil {
		return nil, m.signInErr
	}
	return m.session, nil
}

func (m *mockProvider) SignUp(ctx context.Context, email, password string) error {
	m.signUpCalls++
	return m.signUpErr
}

func (m *mockProvider) ResetPassword(ctx context.Context, email string) error {
	return m.resetErr
}

func (m *mockProvider) UpdateUser(ctx context.Context, token string, req *authprovider.UpdateUserRequest) error {
	m.gotUpdate = req
	return m.updateErr
}

func (m *mockProvider) SignOut(ctx context.Context, token string) error {
	m.signOutCalls++
	return m.signOutErr
}

type mockStore struct {
	set     []*domain.Session
	deleted []string
}

func (m *mockStore) Set(session *domain.Session) {
	m.set = append(m.set, session)
}

func (m *mockStore) Delete(token string) {
	m.deleted = append(m.deleted, token)
}

func TestSignIn_StoresSession(t *testing.T) {
	session := &domain.Session{Email: "me@example.com", AccessToken: "token-1"}
	provider := &mockProvider{session: session}
	store := &mockStore{}
	svc := NewService(provider, store, nopLogger{})

	got, err := svc.SignIn(context.Background(), "me@example.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, session, got)
	require.Len(t, store.set, 1)
	assert.Equal(t, "token-1", store.set[0].AccessToken)
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	provider := &mockProvider{signInErr: authprovider.ErrInvalidCredentials}
	store := &mockStore{}
	svc := NewService(provider, store, nopLogger{})

	_, err := svc.SignIn(context.Background(), "me@example.com", "wrong-pass")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, store.set)
}

func TestSignIn_ValidatesInput(t *testing.T) {
	svc := NewService(&mockProvider{}, &mockStore{}, nopLogger{})

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "empty email", email: "  ", password: "secret1"},
		{name: "short password", email: "me@example.com", password: "12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignIn(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSignUp_NoSessionCreated(t *testing.T) {
	provider := &mockProvider{}
	store := &mockStore{}
	svc := NewService(provider, store, nopLogger{})

	err := svc.SignUp(context.Background(), "new@example.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, 1, provider.signUpCalls)
	// Сессия появится только после подтверждения email и входа
	assert.Empty(t, store.set)
}

func TestSignOut_DeletesLocallyEvenOnProviderError(t *testing.T) {
	provider := &mockProvider{signOutErr: errors.New("provider down")}
	store := &mockStore{}
	svc := NewService(provider, store, nopLogger{})

	err := svc.SignOut(context.Background(), &domain.Session{Email: "me@example.com", AccessToken: "token-1"})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, []string{"token-1"}, store.deleted)
}

func TestSignOut_StaleTokenIsSuccess(t *testing.T) {
	provider := &mockProvider{signOutErr: authprovider.ErrUnauthorized}
	store := &mockStore{}
	svc := NewService(provider, store, nopLogger{})

	err := svc.SignOut(context.Background(), &domain.Session{Email: "me@example.com", AccessToken: "stale"})

	require.NoError(t, err)
	assert.Equal(t, []string{"stale"}, store.deleted)
}

func TestSignOut_Unauthenticated(t *testing.T) {
	svc := NewService(&mockProvider{}, &mockStore{}, nopLogger{})

	err := svc.SignOut(context.Background(), nil)

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResetPassword_RequiresEmail(t *testing.T) {
	svc := NewService(&mockProvider{}, &mockStore{}, nopLogger{})

	err := svc.ResetPassword(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateProfile_MergesMetadataIntoSession(t *testing.T) {
	provider := &mockProvider{}
	store := &mockStore{}
	svc := NewService(provider, store, nopLogger{})

	session := &domain.Session{
		Email:       "me@example.com",
		AccessToken: "token-1",
		Metadata:    map[string]string{"name": "Old Name", "phone": "123"},
	}

	err := svc.UpdateProfile(context.Background(), session, "", map[string]string{"name": "New Name"})
	require.NoError(t, err)

	require.NotNil(t, provider.gotUpdate)
	assert.Nil(t, provider.gotUpdate.Password)
	assert.Equal(t, "New Name", provider.gotUpdate.Data["name"])

	// Метаданные слились, нетронутые ключи сохранились
	assert.Equal(t, "New Name", session.Metadata["name"])
	assert.Equal(t, "123", session.Metadata["phone"])
	require.Len(t, store.set, 1)
}

func TestUpdateProfile_PasswordOnly(t *testing.T) {
	provider := &mockProvider{}
	store := &mockStore{}
	svc := NewService(provider, store, nopLogger{})

	session := &domain.Session{Email: "me@example.com", AccessToken: "token-1"}

	err := svc.UpdateProfile(context.Background(), session, "newsecret", nil)
	require.NoError(t, err)

	require.NotNil(t, provider.gotUpdate)
	require.NotNil(t, provider.gotUpdate.Password)
	assert.Equal(t, "newsecret", *provider.gotUpdate.Password)
	// Без метаданных сессию перезаписывать не нужно
	assert.Empty(t, store.set)
}

func TestUpdateProfile_Validation(t *testing.T) {
	svc := NewService(&mockProvider{}, &mockStore{}, nopLogger{})
	session := &domain.Session{Email: "me@example.com", AccessToken: "token-1"}

	err := svc.UpdateProfile(context.Background(), session, "", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.UpdateProfile(context.Background(), session, "123", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.UpdateProfile(context.Background(), nil, "newsecret", nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestUpdateProfile_StaleToken(t *testing.T) {
	provider := &mockProvider{updateErr: authprovider.ErrUnauthorized}
	svc := NewService(provider, &mockStore{}, nopLogger{})

	err := svc.UpdateProfile(context.Background(), &domain.Session{AccessToken: "stale"}, "newsecret", nil)

	assert.ErrorIs(t, err, ErrUnauthenticated)
}
