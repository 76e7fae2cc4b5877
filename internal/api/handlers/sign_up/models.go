package sign_up

// SignUpRequest HTTP request model
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignUpResponse HTTP response model
type SignUpResponse struct {
	Message string `json:"message"`
}
