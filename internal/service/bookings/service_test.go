package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SURA-RentalService/internal/domain"
	"github.com/m04kA/SURA-RentalService/internal/integrations/resourceapi"
	"github.com/m04kA/SURA-RentalService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockClient struct {
	bookings  []*domain.Booking
	listErr   error
	createErr error
	deleteErr error

	deleteCalls int
	gotToken    string
}

func (m *mockClient) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	return m.bookings, m.listErr
}

func (m *mockClient) CreateBooking(ctx context.Context, token string, booking *domain.Booking) (*domain.Booking, error) {
	m.gotToken = token
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *booking
	created.ID = 42
	return &created, nil
}

func (m *mockClient) DeleteBooking(ctx context.Context, id int64) error {
	m.deleteCalls++
	return m.deleteErr
}

func session(email string) *domain.Session {
	return &domain.Session{Email: email, AccessToken: "bearer-token"}
}

func TestListMine_FiltersAndSortsByStartDateDesc(t *testing.T) {
	client := &mockClient{
		bookings: []*domain.Booking{
			{ID: 1, UserEmail: "me@example.com", StartDate: types.DateString("2024-01-10")},
			{ID: 2, UserEmail: "other@example.com", StartDate: types.DateString("2024-05-01")},
			{ID: 3, UserEmail: "me@example.com", StartDate: types.DateString("2024-03-15")},
			{ID: 4, UserEmail: "me@example.com", StartDate: types.DateString("2024-02-20")},
		},
	}
	svc := NewService(client, nopLogger{})

	got, err := svc.ListMine(context.Background(), session("me@example.com"))
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(4), got[1].ID)
	assert.Equal(t, int64(1), got[2].ID)
}

func TestListMine_Unauthenticated(t *testing.T) {
	svc := NewService(&mockClient{}, nopLogger{})

	_, err := svc.ListMine(context.Background(), nil)

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCreate_PassesBearerTokenAndCaches(t *testing.T) {
	client := &mockClient{}
	svc := NewService(client, nopLogger{})

	// Прогреваем кэш, чтобы созданная запись в него попала
	_, err := svc.ListMine(context.Background(), session("me@example.com"))
	require.NoError(t, err)

	created, err := svc.Create(context.Background(), session("me@example.com"), &domain.Booking{
		CarID:      7,
		StartDate:  types.DateString("2024-06-01"),
		EndDate:    types.DateString("2024-06-03"),
		TotalPrice: 200,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "bearer-token", client.gotToken)
	assert.Equal(t, domain.StatusPending, created.Status)

	got, err := svc.ListMine(context.Background(), session("me@example.com"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(42), got[0].ID)
}

func TestCancel_OwnerOnly(t *testing.T) {
	client := &mockClient{
		bookings: []*domain.Booking{
			{ID: 1, UserEmail: "me@example.com", StartDate: types.DateString("2024-01-10")},
		},
	}
	svc := NewService(client, nopLogger{})

	err := svc.Cancel(context.Background(), session("me@example.com"), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, client.deleteCalls)

	got, err := svc.ListMine(context.Background(), session("me@example.com"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCancel_NotFoundForForeignBooking(t *testing.T) {
	client := &mockClient{
		bookings: []*domain.Booking{
			{ID: 1, UserEmail: "other@example.com", StartDate: types.DateString("2024-01-10")},
		},
	}
	svc := NewService(client, nopLogger{})

	// Чужие бронирования не видны пользователю вовсе
	err := svc.Cancel(context.Background(), session("me@example.com"), 1)

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Zero(t, client.deleteCalls)
}

func TestCancel_FailureKeepsBooking(t *testing.T) {
	client := &mockClient{
		bookings: []*domain.Booking{
			{ID: 1, UserEmail: "me@example.com", StartDate: types.DateString("2024-01-10")},
		},
		deleteErr: resourceapi.ErrSaveFailed,
	}
	svc := NewService(client, nopLogger{})

	err := svc.Cancel(context.Background(), session("me@example.com"), 1)
	assert.ErrorIs(t, err, ErrSaveFailed)

	got, err := svc.ListMine(context.Background(), session("me@example.com"))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCancel_AlreadyDeletedOnServer(t *testing.T) {
	client := &mockClient{
		bookings: []*domain.Booking{
			{ID: 1, UserEmail: "me@example.com", StartDate: types.DateString("2024-01-10")},
		},
		deleteErr: resourceapi.ErrNotFound,
	}
	svc := NewService(client, nopLogger{})

	err := svc.Cancel(context.Background(), session("me@example.com"), 1)
	require.NoError(t, err)

	got, err := svc.ListMine(context.Background(), session("me@example.com"))
	require.NoError(t, err)
	assert.Empty(t, got)
}
