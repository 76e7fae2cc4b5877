package fleet

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SURA-RentalService/internal/domain"
	"github.com/m04kA/SURA-RentalService/internal/integrations/resourceapi"
)

// Service сервис каталога автомобилей
// Держит in-memory снапшот fleet, полученный из внешнего API;
// снапшот может быть неактуальным и полностью замещается при Refresh
type Service struct {
	client ResourceAPIClient
	admin  AdminChecker
	logger Logger

	mu       sync.RWMutex
	snapshot []*domain.Vehicle
	loaded   bool
}

// NewService создает новый экземпляр сервиса fleet
func NewService(client ResourceAPIClient, admin AdminChecker, logger Logger) *Service {
	return &Service{
		client: client,
		admin:  admin,
		logger: logger,
	}
}

// Refresh перечитывает список автомобилей из внешнего API
// Снапшот замещается целиком, порядок записей - порядок ответа API
func (s *Service) Refresh(ctx context.Context) error {
	vehicles, err := s.client.ListCars(ctx)
	if err != nil {
		s.logger.Error("Fleet.Refresh: failed to list cars: %v", err)
		return fmt.Errorf("%w: failed to list cars: %v", ErrInternal, err)
	}

	// Поздний ответ после отмены контекста не должен замещать снапшот
	if ctx.Err() != nil {
		s.logger.Warn("Fleet.Refresh: context cancelled, discarding %d cars", len(vehicles))
		return ctx.Err()
	}

	s.mu.Lock()
	s.snapshot = vehicles
	s.loaded = true
	s.mu.Unlock()

	s.logger.Info("Fleet.Refresh: loaded %d cars", len(vehicles))
	return nil
}

// List возвращает автомобили, отфильтрованные по поиску и категории
// При первом обращении снапшот загружается из API
func (s *Service) List(ctx context.Context, searchTerm string, category domain.Category) ([]*domain.Vehicle, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	if category != domain.CategoryAll && !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, category)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return Filter(s.snapshot, searchTerm, category), nil
}

// GetByID возвращает автомобиль из снапшота по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.snapshot {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, ErrVehicleNotFound
}

// CreateCar создает автомобиль от имени администратора
// Проверка прав здесь - display gate; решающая проверка выполняется
// внешним API по bearer-токену
func (s *Service) CreateCar(ctx context.Context, session *domain.Session, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	if !s.admin.IsAdmin(session) {
		s.logger.Warn("Fleet.CreateCar: access denied for %s", sessionEmail(session))
		return nil, ErrAccessDenied
	}

	if err := validateVehicle(vehicle); err != nil {
		return nil, err
	}

	created, err := s.client.CreateCar(ctx, session.AccessToken, vehicle)
	if err != nil {
		s.logger.Error("Fleet.CreateCar: %v", err)
		return nil, err
	}

	s.appendToSnapshot(created)
	s.logger.Info("Fleet.CreateCar: created car id=%d (%s)", created.ID, created.DisplayName())
	return created, nil
}

// UpdateCar обновляет автомобиль от имени администратора
func (s *Service) UpdateCar(ctx context.Context, session *domain.Session, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	if !s.admin.IsAdmin(session) {
		s.logger.Warn("Fleet.UpdateCar: access denied for %s", sessionEmail(session))
		return nil, ErrAccessDenied
	}

	if err := validateVehicle(vehicle); err != nil {
		return nil, err
	}

	updated, err := s.client.UpdateCar(ctx, session.AccessToken, vehicle)
	if err != nil {
		if errors.Is(err, resourceapi.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("Fleet.UpdateCar: %v", err)
		return nil, err
	}

	s.replaceInSnapshot(updated)
	s.logger.Info("Fleet.UpdateCar: updated car id=%d", updated.ID)
	return updated, nil
}

// DeleteCar удаляет автомобиль от имени администратора
func (s *Service) DeleteCar(ctx context.Context, session *domain.Session, id int64) error {
	if !s.admin.IsAdmin(session) {
		s.logger.Warn("Fleet.DeleteCar: access denied for %s", sessionEmail(session))
		return ErrAccessDenied
	}

	if err := s.client.DeleteCar(ctx, session.AccessToken, id); err != nil {
		if errors.Is(err, resourceapi.ErrNotFound) {
			return ErrVehicleNotFound
		}
		s.logger.Error("Fleet.DeleteCar: %v", err)
		return err
	}

	s.removeFromSnapshot(id)
	s.logger.Info("Fleet.DeleteCar: deleted car id=%d", id)
	return nil
}

// Вспомогательные методы

func (s *Service) ensureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if loaded {
		return nil
	}
	return s.Refresh(ctx)
}

func (s *Service) appendToSnapshot(v *domain.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		s.snapshot = append(s.snapshot, v)
	}
}

func (s *Service) replaceInSnapshot(v *domain.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, old := range s.snapshot {
		if old.ID == v.ID {
			s.snapshot[i] = v
			return
		}
	}
}

func (s *Service) removeFromSnapshot(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, old := range s.snapshot {
		if old.ID == id {
			s.snapshot = append(s.snapshot[:i], s.snapshot[i+1:]...)
			return
		}
	}
}

func validateVehicle(v *domain.Vehicle) error {
	if v.Brand == "" || v.Model == "" {
		return fmt.Errorf("%w: brand and model are required", ErrInvalidInput)
	}
	if v.DailyRate <= 0 {
		return fmt.Errorf("%w: dailyRate must be positive", ErrInvalidInput)
	}
	if !v.Category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, v.Category)
	}
	return nil
}

func sessionEmail(session *domain.Session) string {
	if session == nil {
		return "<no session>"
	}
	return session.Email
}
