package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/m04kA/SURA-RentalService/internal/domain"
	"github.com/m04kA/SURA-RentalService/internal/integrations/resourceapi"
	"github.com/m04kA/SURA-RentalService/pkg/inflight"
)

// Service сервис бронирований текущего пользователя
// Внешний API хранит все бронирования; сервис отбирает записи
// владельца и кэширует их по email
type Service struct {
	client ResourceAPIClient
	guard  *inflight.Guard
	logger Logger

	mu     sync.Mutex
	byUser map[string][]*domain.Booking
	loaded map[string]bool
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(client ResourceAPIClient, logger Logger) *Service {
	return &Service{
		client: client,
		guard:  inflight.NewGuard(),
		logger: logger,
		byUser: make(map[string][]*domain.Booking),
		loaded: make(map[string]bool),
	}
}

// ListMine возвращает бронирования текущей сессии,
// отсортированные по дате начала, новые первыми
func (s *Service) ListMine(ctx context.Context, session *domain.Session) ([]*domain.Booking, error) {
	if session == nil {
		return nil, ErrUnauthenticated
	}

	if err := s.ensureLoaded(ctx, session.Email); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Booking, len(s.byUser[session.Email]))
	copy(out, s.byUser[session.Email])
	return out, nil
}

// Create сохраняет бронирование во внешнем API от имени сессии
// Запись попадает в локальный кэш только после подтверждения
func (s *Service) Create(ctx context.Context, session *domain.Session, booking *domain.Booking) (*domain.Booking, error) {
	if session == nil {
		return nil, ErrUnauthenticated
	}

	booking.UserEmail = session.Email
	booking.Status = domain.StatusPending

	created, err := s.client.CreateBooking(ctx, session.AccessToken, booking)
	if err != nil {
		s.logger.Warn("Bookings.Create: create failed (car=%d, user=%s): %v", booking.CarID, session.Email, err)
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	if ctx.Err() != nil {
		return created, ctx.Err()
	}

	s.mu.Lock()
	if s.loaded[session.Email] {
		s.byUser[session.Email] = append(s.byUser[session.Email], created)
		sortByStartDesc(s.byUser[session.Email])
	}
	s.mu.Unlock()

	s.logger.Info("Bookings.Create: created booking id=%d (car=%d, user=%s)", created.ID, created.CarID, session.Email)
	return created, nil
}

// Cancel отменяет бронирование текущей сессии
// Разрешено только владельцу; повторная отмена той же записи до
// завершения предыдущей отклоняется (ErrCancelPending)
func (s *Service) Cancel(ctx context.Context, session *domain.Session, bookingID int64) error {
	if session == nil {
		return ErrUnauthenticated
	}

	booking, err := s.find(ctx, session, bookingID)
	if err != nil {
		return err
	}

	if !booking.CanBeCancelledBy(session.Email) {
		s.logger.Warn("Bookings.Cancel: access denied (booking=%d, user=%s)", bookingID, session.Email)
		return ErrAccessDenied
	}

	key := fmt.Sprintf("bookings:cancel:%d", bookingID)
	err = s.guard.Do(ctx, key, func(ctx context.Context) error {
		if err := s.client.DeleteBooking(ctx, bookingID); err != nil {
			if errors.Is(err, resourceapi.ErrNotFound) {
				// Уже отменено на сервере, локально тоже убираем
				s.removeLocal(session.Email, bookingID)
				return nil
			}
			s.logger.Warn("Bookings.Cancel: delete failed (booking=%d): %v", bookingID, err)
			return fmt.Errorf("%w: %v", ErrSaveFailed, err)
		}

		s.removeLocal(session.Email, bookingID)
		return nil
	})

	if errors.Is(err, inflight.ErrAlreadyPending) {
		return ErrCancelPending
	}
	if err != nil {
		return err
	}

	s.logger.Info("Bookings.Cancel: cancelled booking id=%d by %s", bookingID, session.Email)
	return nil
}

// Вспомогательные методы

func (s *Service) ensureLoaded(ctx context.Context, email string) error {
	s.mu.Lock()
	loaded := s.loaded[email]
	s.mu.Unlock()

	if loaded {
		return nil
	}
	return s.load(ctx, email)
}

func (s *Service) load(ctx context.Context, email string) error {
	all, err := s.client.ListBookings(ctx)
	if err != nil {
		s.logger.Error("Bookings.load: failed to list bookings: %v", err)
		return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	mine := make([]*domain.Booking, 0)
	for _, b := range all {
		if b.IsOwnedBy(email) {
			mine = append(mine, b)
		}
	}
	sortByStartDesc(mine)

	s.mu.Lock()
	s.byUser[email] = mine
	s.loaded[email] = true
	s.mu.Unlock()

	s.logger.Info("Bookings.load: %d bookings for %s", len(mine), email)
	return nil
}

func (s *Service) find(ctx context.Context, session *domain.Session, bookingID int64) (*domain.Booking, error) {
	if err := s.ensureLoaded(ctx, session.Email); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.byUser[session.Email] {
		if b.ID == bookingID {
			return b, nil
		}
	}
	return nil, ErrBookingNotFound
}

func (s *Service) removeLocal(email string, bookingID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.byUser[email]
	for i, b := range list {
		if b.ID == bookingID {
			s.byUser[email] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

func sortByStartDesc(list []*domain.Booking) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[j].StartDate.IsBefore(list[i].StartDate)
	})
}
