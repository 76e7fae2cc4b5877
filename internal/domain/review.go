package domain

import (
	"strings"
	"time"
)

// Review represents a user review of a vehicle
type Review struct {
	ID           int64
	CarID        int64
	AuthorHandle string // локальная часть email автора (до @)
	Rating       int    // 1..5
	Text         string
	CreatedAt    time.Time
}

// IsAuthoredBy returns true if the review was written by the given handle
func (r *Review) IsAuthoredBy(handle string) bool {
	return r.AuthorHandle == handle
}

// CanBeDeletedBy returns true if the given identity may delete the review
// Удалить отзыв может автор или администратор. Это только подсказка
// для отображения: настоящая проверка прав выполняется внешним API
func (r *Review) CanBeDeletedBy(handle string, isAdmin bool) bool {
	return isAdmin || r.IsAuthoredBy(handle)
}

// HandleFromEmail derives the public author handle from an email address
func HandleFromEmail(email string) string {
	if i := strings.IndexByte(email, '@'); i >= 0 {
		return email[:i]
	}
	return email
}
