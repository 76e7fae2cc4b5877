package wishlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SURA-RentalService/internal/domain"
	"github.com/m04kA/SURA-RentalService/internal/integrations/resourceapi"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockClient struct {
	entries   []*domain.WishlistEntry
	listErr   error
	createErr error
	deleteErr error

	createCalls int
	deleteCalls int
	gotDeleteID int64
	nextID      int64
}

func (m *mockClient) ListWishlists(ctx context.Context) ([]*domain.WishlistEntry, error) {
	return m.entries, m.listErr
}

func (m *mockClient) CreateWishlistEntry(ctx context.Context, entry *domain.WishlistEntry) (*domain.WishlistEntry, error) {
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.nextID++
	created := *entry
	created.ID = m.nextID
	m.entries = append(m.entries, &created)
	return &created, nil
}

func (m *mockClient) DeleteWishlistEntry(ctx context.Context, id int64) error {
	m.deleteCalls++
	m.gotDeleteID = id
	return m.deleteErr
}

func session(email string) *domain.Session {
	return &domain.Session{Email: email, AccessToken: "token"}
}

func TestLoad_FiltersByOwnerAndCollapsesDuplicates(t *testing.T) {
	client := &mockClient{
		entries: []*domain.WishlistEntry{
			{ID: 1, CarID: 10, OwnerEmail: "me@example.com"},
			{ID: 2, CarID: 20, OwnerEmail: "other@example.com"},
			{ID: 3, CarID: 10, OwnerEmail: "me@example.com"}, // дубликат
			{ID: 4, CarID: 30, OwnerEmail: "me@example.com"},
		},
	}
	svc := NewService(client, nopLogger{})

	mine, err := svc.Load(context.Background(), "me@example.com")
	require.NoError(t, err)

	require.Len(t, mine, 2)
	assert.Equal(t, int64(1), mine[0].ID)
	assert.Equal(t, int64(4), mine[1].ID)
	assert.True(t, svc.IsLiked("me@example.com", 10))
	assert.True(t, svc.IsLiked("me@example.com", 30))
	assert.False(t, svc.IsLiked("me@example.com", 20))
}

func TestToggle_CreateAndDelete(t *testing.T) {
	client := &mockClient{}
	svc := NewService(client, nopLogger{})

	liked, err := svc.Toggle(context.Background(), session("me@example.com"), 10)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.True(t, svc.IsLiked("me@example.com", 10))
	assert.Equal(t, 1, client.createCalls)

	liked, err = svc.Toggle(context.Background(), session("me@example.com"), 10)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.False(t, svc.IsLiked("me@example.com", 10))
	assert.Equal(t, 1, client.deleteCalls)
}

func TestToggle_CreateFailureRollsBack(t *testing.T) {
	client := &mockClient{createErr: resourceapi.ErrSaveFailed}
	svc := NewService(client, nopLogger{})

	liked, err := svc.Toggle(context.Background(), session("me@example.com"), 10)

	assert.ErrorIs(t, err, ErrSaveFailed)
	assert.False(t, liked)
	// Оптимистичное состояние откачено
	assert.False(t, svc.IsLiked("me@example.com", 10))
}

func TestToggle_DuplicateCreateIsIdempotentSuccess(t *testing.T) {
	client := &mockClient{createErr: resourceapi.ErrConflict}
	svc := NewService(client, nopLogger{})

	// Прогреваем кэш пустым списком
	_, err := svc.Load(context.Background(), "me@example.com")
	require.NoError(t, err)

	// Запись уже появилась на сервере (например, из другой вкладки)
	client.entries = []*domain.WishlistEntry{
		{ID: 77, CarID: 10, OwnerEmail: "me@example.com"},
	}

	liked, err := svc.Toggle(context.Background(), session("me@example.com"), 10)

	require.NoError(t, err)
	assert.True(t, liked)
	assert.True(t, svc.IsLiked("me@example.com", 10))

	// Повторное переключение снимает лайк по ID существующей записи
	liked, err = svc.Toggle(context.Background(), session("me@example.com"), 10)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(77), client.gotDeleteID)
}

func TestToggle_DeleteFailureRollsBack(t *testing.T) {
	client := &mockClient{
		entries: []*domain.WishlistEntry{
			{ID: 1, CarID: 10, OwnerEmail: "me@example.com"},
		},
		deleteErr: resourceapi.ErrSaveFailed,
	}
	svc := NewService(client, nopLogger{})

	liked, err := svc.Toggle(context.Background(), session("me@example.com"), 10)

	assert.ErrorIs(t, err, ErrSaveFailed)
	assert.True(t, liked)
	// Запись осталась liked после отката
	assert.True(t, svc.IsLiked("me@example.com", 10))
}

func TestToggle_DeleteNotFoundIsSuccess(t *testing.T) {
	client := &mockClient{
		entries: []*domain.WishlistEntry{
			{ID: 1, CarID: 10, OwnerEmail: "me@example.com"},
		},
		deleteErr: resourceapi.ErrNotFound,
	}
	svc := NewService(client, nopLogger{})

	// Запись уже удалена на сервере: снятие лайка считается успешным
	liked, err := svc.Toggle(context.Background(), session("me@example.com"), 10)

	require.NoError(t, err)
	assert.False(t, liked)
	assert.False(t, svc.IsLiked("me@example.com", 10))
}

func TestToggle_Unauthenticated(t *testing.T) {
	svc := NewService(&mockClient{}, nopLogger{})

	_, err := svc.Toggle(context.Background(), nil, 10)

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestToggle_IndependentPerUser(t *testing.T) {
	client := &mockClient{}
	svc := NewService(client, nopLogger{})

	_, err := svc.Toggle(context.Background(), session("a@example.com"), 10)
	require.NoError(t, err)

	assert.True(t, svc.IsLiked("a@example.com", 10))
	assert.False(t, svc.IsLiked("b@example.com", 10))
}
