package domain

// Category represents the fleet category of a vehicle
type Category string

const (
	CategoryPremium Category = "Premium"
	CategoryVintage Category = "Vintage"
	CategoryEV      Category = "EV"
	CategorySUV     Category = "SUV"
	CategorySports  Category = "Sports"

	// CategoryAll специальное значение фильтра, пропускающее все категории
	// Не является категорией автомобиля
	CategoryAll Category = "All"
)

// Categories список допустимых категорий автомобиля
var Categories = []Category{
	CategoryPremium,
	CategoryVintage,
	CategoryEV,
	CategorySUV,
	CategorySports,
}

// IsValid returns true if the category is a real vehicle category
func (c Category) IsValid() bool {
	for _, valid := range Categories {
		if c == valid {
			return true
		}
	}
	return false
}

// Vehicle represents a rentable vehicle in the fleet
// Записи принадлежат внешнему Resource API; сервис держит
// read-only копию, которая может быть неактуальной
type Vehicle struct {
	ID            int64
	Brand         string
	Model         string
	Category      Category
	DailyRate     float64
	ImageURL      string
	Description   string
	AverageRating float64
	IsAvailable   bool
}

// DisplayName returns the human-readable vehicle name
func (v *Vehicle) DisplayName() string {
	return v.Brand + " " + v.Model
}
