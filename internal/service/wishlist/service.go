package wishlist

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SURA-RentalService/internal/domain"
	"github.com/m04kA/SURA-RentalService/internal/integrations/resourceapi"
	"github.com/m04kA/SURA-RentalService/pkg/inflight"
)

// Service reconciler избранного
// Сервер остаётся источником истины; сервис держит локальную копию
// liked-состояния и применяет оптимистичные мутации с компенсирующим
// откатом при отказе внешнего API
type Service struct {
	client ResourceAPIClient
	guard  *inflight.Guard
	logger Logger

	mu sync.Mutex
	// liked[email][carID] = ID записи избранного во внешнем API
	liked  map[string]map[int64]int64
	loaded map[string]bool
}

// NewService создает новый экземпляр сервиса избранного
func NewService(client ResourceAPIClient, logger Logger) *Service {
	return &Service{
		client: client,
		guard:  inflight.NewGuard(),
		logger: logger,
		liked:  make(map[string]map[int64]int64),
		loaded: make(map[string]bool),
	}
}

// Load загружает избранное пользователя из внешнего API
// Локальная копия для этого пользователя замещается целиком;
// дубликаты по одному автомобилю схлопываются в первую запись
func (s *Service) Load(ctx context.Context, email string) ([]*domain.WishlistEntry, error) {
	if email == "" {
		return nil, ErrUnauthenticated
	}

	all, err := s.client.ListWishlists(ctx)
	if err != nil {
		s.logger.Error("Wishlist.Load: failed to list wishlists: %v", err)
		return nil, fmt.Errorf("%w: failed to list wishlists: %v", ErrInternal, err)
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	mine := make([]*domain.WishlistEntry, 0)
	byCar := make(map[int64]int64)
	for _, entry := range all {
		if !entry.IsOwnedBy(email) {
			continue
		}
		if _, dup := byCar[entry.CarID]; dup {
			continue
		}
		byCar[entry.CarID] = entry.ID
		mine = append(mine, entry)
	}

	s.mu.Lock()
	s.liked[email] = byCar
	s.loaded[email] = true
	s.mu.Unlock()

	s.logger.Info("Wishlist.Load: %d entries for %s", len(mine), email)
	return mine, nil
}

// IsLiked возвращает текущее liked-состояние автомобиля для пользователя
func (s *Service) IsLiked(email string, carID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.liked[email][carID]
	return ok
}

// Toggle переключает liked-состояние автомобиля
// Оптимистичное обновление: состояние меняется сразу, затем выполняется
// вызов API; при отказе состояние откатывается к прежнему. Повторное
// переключение той же пары до завершения отклоняется (ErrTogglePending)
func (s *Service) Toggle(ctx context.Context, session *domain.Session, carID int64) (bool, error) {
	if session == nil {
		return false, ErrUnauthenticated
	}
	email := session.Email

	if err := s.ensureLoaded(ctx, email); err != nil {
		return false, err
	}

	key := fmt.Sprintf("wishlist:%s:%d", email, carID)
	var likedAfter bool

	err := s.guard.Do(ctx, key, func(ctx context.Context) error {
		entryID, wasLiked := s.currentEntry(email, carID)

		if wasLiked {
			// Оптимистично снимаем лайк, удаляем запись
			s.setLiked(email, carID, 0, false)
			likedAfter = false

			err := s.client.DeleteWishlistEntry(ctx, entryID)
			if err != nil && !errors.Is(err, resourceapi.ErrNotFound) {
				// Откат: запись осталась на сервере
				s.setLiked(email, carID, entryID, true)
				likedAfter = true
				s.logger.Warn("Wishlist.Toggle: delete failed, rolled back (car=%d, user=%s): %v", carID, email, err)
				return fmt.Errorf("%w: %v", ErrSaveFailed, err)
			}
			return nil
		}

		// Оптимистично ставим лайк, создаем запись
		s.setLiked(email, carID, 0, true)
		likedAfter = true

		created, err := s.client.CreateWishlistEntry(ctx, &domain.WishlistEntry{
			CarID:      carID,
			OwnerEmail: email,
		})
		if errors.Is(err, resourceapi.ErrConflict) {
			// Запись уже есть на сервере: лайк остаётся, ID записи
			// подтягиваем повторной загрузкой
			if _, lerr := s.Load(ctx, email); lerr != nil {
				s.logger.Warn("Wishlist.Toggle: duplicate entry, resync failed (car=%d, user=%s): %v", carID, email, lerr)
			}
			return nil
		}
		if err != nil {
			// Откат: записи на сервере нет
			s.setLiked(email, carID, 0, false)
			likedAfter = false
			s.logger.Warn("Wishlist.Toggle: create failed, rolled back (car=%d, user=%s): %v", carID, email, err)
			return fmt.Errorf("%w: %v", ErrSaveFailed, err)
		}

		s.setLiked(email, carID, created.ID, true)
		return nil
	})

	if errors.Is(err, inflight.ErrAlreadyPending) {
		return s.IsLiked(email, carID), ErrTogglePending
	}
	if err != nil {
		return likedAfter, err
	}

	s.logger.Info("Wishlist.Toggle: car=%d user=%s liked=%t", carID, email, likedAfter)
	return likedAfter, nil
}

// Вспомогательные методы

func (s *Service) ensureLoaded(ctx context.Context, email string) error {
	s.mu.Lock()
	loaded := s.loaded[email]
	s.mu.Unlock()

	if loaded {
		return nil
	}
	_, err := s.Load(ctx, email)
	return err
}

func (s *Service) currentEntry(email string, carID int64) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.liked[email][carID]
	return id, ok
}

func (s *Service) setLiked(email string, carID, entryID int64, liked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byCar, ok := s.liked[email]
	if !ok {
		byCar = make(map[int64]int64)
		s.liked[email] = byCar
	}

	if liked {
		byCar[carID] = entryID
	} else {
		delete(byCar, carID)
	}
}
