package create_booking

import (
	"github.com/m04kA/SURA-RentalService/internal/domain"
	"github.com/m04kA/SURA-RentalService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Session   *domain.Session  // Текущая сессия пользователя
	CarID     int64            // ID автомобиля
	StartDate types.DateString // Дата получения (например, "2024-01-01")
	EndDate   types.DateString // Дата возврата
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64            // ID созданного бронирования
	CarID     int64            // ID автомобиля
	UserEmail string           // Email владельца
	StartDate types.DateString // Дата получения
	EndDate   types.DateString // Дата возврата
	Days      int              // Количество оплачиваемых дней
	DailyRate float64          // Суточная ставка на момент бронирования
	Total     float64          // Итоговая стоимость
	Status    string           // Статус бронирования
}
