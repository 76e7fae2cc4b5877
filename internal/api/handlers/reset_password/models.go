package reset_password

// ResetPasswordRequest HTTP request model
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordResponse HTTP response model
type ResetPasswordResponse struct {
	Message string `json:"message"`
}
