package toggle_wishlist

// ToggleResponse HTTP response model
type ToggleResponse struct {
	CarID int64 `json:"carId"`
	Liked bool  `json:"liked"`
}
