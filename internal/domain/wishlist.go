package domain

// WishlistEntry represents a saved vehicle in a user's wishlist
// Уникальность пары (car, owner) обеспечивается внешним API;
// reconciler трактует повторное создание как идемпотентный успех
type WishlistEntry struct {
	ID         int64
	CarID      int64
	OwnerEmail string
}

// IsOwnedBy returns true if the entry belongs to the given identity
func (w *WishlistEntry) IsOwnedBy(email string) bool {
	return w.OwnerEmail == email
}
