package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DateFormat формат календарной даты (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// ErrInvalidDateFormat возвращается при некорректном формате даты
var ErrInvalidDateFormat = errors.New("invalid date string format, expected YYYY-MM-DD")

// DateString календарная дата в формате YYYY-MM-DD
// Используется как wire-формат дат бронирования: внешний API оперирует
// именно календарными датами, без времени и часового пояса
type DateString string

// NewDateString создает DateString из time.Time (время отбрасывается)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// NewDateStringFromString создает DateString из строки с валидацией
func NewDateStringFromString(s string) (DateString, error) {
	d := DateString(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// IsZero возвращает true для пустой даты
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate проверяет формат даты
func (d DateString) Validate() error {
	if _, err := time.Parse(DateFormat, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return nil
}

// Time конвертирует дату в time.Time (полночь UTC)
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return t, nil
}

// IsBefore возвращает true, если дата строго раньше other
// Некорректные даты считаются не раньше
func (d DateString) IsBefore(other DateString) bool {
	t1, err1 := d.Time()
	t2, err2 := other.Time()
	if err1 != nil || err2 != nil {
		return false
	}
	return t1.Before(t2)
}

// DaysUntil возвращает количество целых дней от d до other
// Отрицательное значение означает, что other раньше d
func (d DateString) DaysUntil(other DateString) (int, error) {
	t1, err := d.Time()
	if err != nil {
		return 0, err
	}
	t2, err := other.Time()
	if err != nil {
		return 0, err
	}
	return int(t2.Sub(t1).Hours() / 24), nil
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}

// MarshalJSON сериализует дату в JSON строку
func (d DateString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(d))
}

// UnmarshalJSON десериализует дату из JSON строки
func (d *DateString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*d = DateString(s)
	return nil
}
