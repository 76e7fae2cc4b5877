package fleet

import (
	"strings"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

// Filter отбирает автомобили по поисковой строке и категории
// Чистая функция: пересчитывается целиком при каждом изменении ввода.
// Совпадение: (brand или model содержит searchTerm без учёта регистра)
// И (category == All ИЛИ категория автомобиля совпадает).
// Относительный порядок входного списка сохраняется
func Filter(vehicles []*domain.Vehicle, searchTerm string, category domain.Category) []*domain.Vehicle {
	needle := strings.ToLower(strings.TrimSpace(searchTerm))

	matched := make([]*domain.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if !matchesSearch(v, needle) {
			continue
		}
		if category != domain.CategoryAll && v.Category != category {
			continue
		}
		matched = append(matched, v)
	}

	return matched
}

func matchesSearch(v *domain.Vehicle, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(v.Brand), needle) ||
		strings.Contains(strings.ToLower(v.Model), needle)
}
