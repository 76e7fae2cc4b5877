package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/m04kA/SURA-RentalService/internal/domain"
	"github.com/m04kA/SURA-RentalService/internal/integrations/resourceapi"
	"github.com/m04kA/SURA-RentalService/pkg/inflight"
)

// Service reconciler отзывов
// Создание не оптимистично: отзыв попадает в локальный список только
// после подтверждения внешним API, чтобы не показывать несохранённое.
// Удаление убирает запись локально тоже только после подтверждения
type Service struct {
	client ResourceAPIClient
	admin  AdminChecker
	guard  *inflight.Guard
	logger Logger

	mu sync.Mutex
	// byCar[carID] - отзывы автомобиля, новые первыми
	byCar  map[int64][]*domain.Review
	carOf  map[int64]int64 // reviewID -> carID
	loaded map[int64]bool
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(client ResourceAPIClient, admin AdminChecker, logger Logger) *Service {
	return &Service{
		client: client,
		admin:  admin,
		guard:  inflight.NewGuard(),
		logger: logger,
		byCar:  make(map[int64][]*domain.Review),
		carOf:  make(map[int64]int64),
		loaded: make(map[int64]bool),
	}
}

// ListForCar возвращает отзывы автомобиля, новые первыми
// При первом обращении список загружается из внешнего API
func (s *Service) ListForCar(ctx context.Context, carID int64) ([]*domain.Review, error) {
	s.mu.Lock()
	loaded := s.loaded[carID]
	s.mu.Unlock()

	if !loaded {
		if err := s.load(ctx, carID); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Review, len(s.byCar[carID]))
	copy(out, s.byCar[carID])
	return out, nil
}

// Post создает отзыв от имени текущей сессии
// Handle автора выводится из email; запись добавляется в начало
// локального списка только после успеха API
func (s *Service) Post(ctx context.Context, session *domain.Session, carID int64, rating int, text string) (*domain.Review, error) {
	if session == nil {
		return nil, ErrUnauthenticated
	}

	if rating < domain.MinRating || rating > domain.MaxRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}

	review := &domain.Review{
		CarID:        carID,
		AuthorHandle: session.Handle(),
		Rating:       rating,
		Text:         text,
	}

	created, err := s.client.CreateReview(ctx, review)
	if err != nil {
		s.logger.Warn("Reviews.Post: create failed (car=%d, author=%s): %v", carID, review.AuthorHandle, err)
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	if ctx.Err() != nil {
		// Поздний ответ после отмены: сервер запись сохранил,
		// но локальное состояние уже никому не нужно
		return created, ctx.Err()
	}

	s.mu.Lock()
	if s.loaded[carID] {
		s.byCar[carID] = append([]*domain.Review{created}, s.byCar[carID]...)
	}
	s.carOf[created.ID] = carID
	s.mu.Unlock()

	s.logger.Info("Reviews.Post: created review id=%d (car=%d, author=%s)", created.ID, carID, created.AuthorHandle)
	return created, nil
}

// Delete удаляет отзыв от имени текущей сессии
// Разрешено автору и администратору; это display gate, решающую
// проверку выполняет внешний API. Локальный список меняется только
// после подтверждения; при отказе остаётся как был
func (s *Service) Delete(ctx context.Context, session *domain.Session, reviewID int64) error {
	if session == nil {
		return ErrUnauthenticated
	}

	review, err := s.find(ctx, reviewID)
	if err != nil {
		return err
	}

	if !review.CanBeDeletedBy(session.Handle(), s.admin.IsAdmin(session)) {
		s.logger.Warn("Reviews.Delete: access denied (review=%d, user=%s)", reviewID, session.Email)
		return ErrAccessDenied
	}

	key := fmt.Sprintf("reviews:delete:%d", reviewID)
	err = s.guard.Do(ctx, key, func(ctx context.Context) error {
		if err := s.client.DeleteReview(ctx, reviewID); err != nil {
			if errors.Is(err, resourceapi.ErrNotFound) {
				// Уже удалён на сервере, локально тоже убираем
				s.removeLocal(reviewID)
				return nil
			}
			s.logger.Warn("Reviews.Delete: delete failed (review=%d): %v", reviewID, err)
			return fmt.Errorf("%w: %v", ErrSaveFailed, err)
		}

		s.removeLocal(reviewID)
		return nil
	})

	if errors.Is(err, inflight.ErrAlreadyPending) {
		return ErrDeletePending
	}
	if err != nil {
		return err
	}

	s.logger.Info("Reviews.Delete: deleted review id=%d by %s", reviewID, session.Email)
	return nil
}

// CanDelete возвращает true, если текущая сессия может удалить отзыв
// Используется display-слоем, чтобы решить, вооружать ли press gate
func (s *Service) CanDelete(session *domain.Session, review *domain.Review) bool {
	if session == nil || review == nil {
		return false
	}
	return review.CanBeDeletedBy(session.Handle(), s.admin.IsAdmin(session))
}

// Вспомогательные методы

// load перечитывает отзывы автомобиля из внешнего API
// API отдаёт все отзывы новыми первыми; отбор по автомобилю локальный
func (s *Service) load(ctx context.Context, carID int64) error {
	all, err := s.client.ListReviews(ctx)
	if err != nil {
		s.logger.Error("Reviews.load: failed to list reviews: %v", err)
		return fmt.Errorf("%w: failed to list reviews: %v", ErrInternal, err)
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	mine := make([]*domain.Review, 0)
	s.mu.Lock()
	for _, r := range all {
		if r.CarID != carID {
			continue
		}
		mine = append(mine, r)
		s.carOf[r.ID] = carID
	}
	s.byCar[carID] = mine
	s.loaded[carID] = true
	s.mu.Unlock()

	s.logger.Info("Reviews.load: %d reviews for car=%d", len(mine), carID)
	return nil
}

func (s *Service) find(ctx context.Context, reviewID int64) (*domain.Review, error) {
	s.mu.Lock()
	carID, ok := s.carOf[reviewID]
	if ok {
		for _, r := range s.byCar[carID] {
			if r.ID == reviewID {
				s.mu.Unlock()
				return r, nil
			}
		}
	}
	s.mu.Unlock()

	// Отзыв мог быть создан вне этого процесса; ищем по всему списку
	all, err := s.client.ListReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list reviews: %v", ErrInternal, err)
	}
	for _, r := range all {
		if r.ID == reviewID {
			return r, nil
		}
	}
	return nil, ErrReviewNotFound
}

func (s *Service) removeLocal(reviewID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	carID, ok := s.carOf[reviewID]
	if !ok {
		return
	}
	delete(s.carOf, reviewID)

	list := s.byCar[carID]
	for i, r := range list {
		if r.ID == reviewID {
			s.byCar[carID] = append(list[:i], list[i+1:]...)
			return
		}
	}
}
