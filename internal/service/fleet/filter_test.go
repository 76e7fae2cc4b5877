package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

func testFleet() []*domain.Vehicle {
	return []*domain.Vehicle{
		{ID: 1, Brand: "Porsche", Model: "911 Carrera", Category: domain.CategorySports},
		{ID: 2, Brand: "Tesla", Model: "Model S", Category: domain.CategoryEV},
		{ID: 3, Brand: "Ford", Model: "Mustang 1967", Category: domain.CategoryVintage},
		{ID: 4, Brand: "Porsche", Model: "Cayenne", Category: domain.CategorySUV},
		{ID: 5, Brand: "Mercedes-Benz", Model: "S-Class", Category: domain.CategoryPremium},
	}
}

func ids(vehicles []*domain.Vehicle) []int64 {
	out := make([]int64, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, v.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		category domain.Category
		wantIDs  []int64
	}{
		{
			name:     "empty input is identity",
			search:   "",
			category: domain.CategoryAll,
			wantIDs:  []int64{1, 2, 3, 4, 5},
		},
		{
			name:     "search matches brand case-insensitively",
			search:   "porsche",
			category: domain.CategoryAll,
			wantIDs:  []int64{1, 4},
		},
		{
			name:     "search matches model substring",
			search:   "model s",
			category: domain.CategoryAll,
			wantIDs:  []int64{2},
		},
		{
			name:     "category alone",
			search:   "",
			category: domain.CategoryVintage,
			wantIDs:  []int64{3},
		},
		{
			name:     "search and category are conjunctive",
			search:   "porsche",
			category: domain.CategorySUV,
			wantIDs:  []int64{4},
		},
		{
			name:     "no matches",
			search:   "lada",
			category: domain.CategoryAll,
			wantIDs:  []int64{},
		},
		{
			name:     "surrounding whitespace is ignored",
			search:   "  tesla  ",
			category: domain.CategoryAll,
			wantIDs:  []int64{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(testFleet(), tt.search, tt.category)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	fleet := testFleet()

	once := Filter(fleet, "porsche", domain.CategoryAll)
	twice := Filter(once, "porsche", domain.CategoryAll)

	assert.Equal(t, ids(once), ids(twice))
}

func TestFilter_PreservesInputOrder(t *testing.T) {
	fleet := testFleet()

	got := Filter(fleet, "", domain.CategoryAll)

	// Порядок входного списка не меняется и не пересортировывается
	assert.Equal(t, ids(fleet), ids(got))
}
