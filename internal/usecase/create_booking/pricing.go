package create_booking

import (
	"github.com/m04kA/SURA-RentalService/pkg/types"
)

// Quote расчет стоимости аренды за выбранный период
type Quote struct {
	Days  int     // Количество оплачиваемых дней
	Total float64 // Итоговая стоимость
	Valid bool    // false, если период некорректен
}

// ComputePrice считает стоимость аренды по суточной ставке
// Каждый начатый день оплачивается целиком; период корректен, только
// когда дата возврата строго позже даты получения. Для некорректного
// периода возвращается нулевая стоимость
func ComputePrice(dailyRate float64, start, end types.DateString) Quote {
	if start.IsZero() || end.IsZero() {
		return Quote{}
	}

	days, err := start.DaysUntil(end)
	if err != nil || days <= 0 {
		return Quote{}
	}

	return Quote{
		Days:  days,
		Total: float64(days) * dailyRate,
		Valid: true,
	}
}
