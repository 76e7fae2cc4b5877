package update_profile

// UpdateProfileRequest HTTP request model
// Поля опциональны: обновляется только то, что передано
type UpdateProfileRequest struct {
	Password *string           `json:"password,omitempty" validate:"omitempty,min=6"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// UpdateProfileResponse HTTP response model
type UpdateProfileResponse struct {
	Message string `json:"message"`
}
