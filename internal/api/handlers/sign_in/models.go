package sign_in

import (
	"time"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

// SignInRequest HTTP request model
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	Email        string            `json:"email"`
	Handle       string            `json:"handle"`
	AccessToken  string            `json:"accessToken"`
	RefreshToken string            `json:"refreshToken,omitempty"`
	ExpiresAt    string            `json:"expiresAt,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// FromDomain конвертирует domain сессию в HTTP response
func FromDomain(session *domain.Session) *SessionResponse {
	resp := &SessionResponse{
		Email:        session.Email,
		Handle:       session.Handle(),
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		Metadata:     session.Metadata,
	}
	if !session.ExpiresAt.IsZero() {
		resp.ExpiresAt = session.ExpiresAt.Format(time.RFC3339)
	}
	return resp
}
