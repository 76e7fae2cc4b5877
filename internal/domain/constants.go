package domain

// Business validation constants
const (
	MinRating = 1
	MaxRating = 5

	// DefaultAverageRating возвращается внешним API для автомобилей без отзывов
	DefaultAverageRating = 5.0

	MinPasswordLength = 6
)
