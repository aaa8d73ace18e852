package dto

import (
	"time"

	"github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/auth/domain"
)

// UserOutput is the sanitized user view: no password hash, no refresh
// tokens, no reset token.
type UserOutput struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Username      string    `json:"username,omitempty"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SanitizeUser strips every secret from a user record before it leaves the
// service layer.
func SanitizeUser(u *domain.User) *UserOutput {
	return &UserOutput{
		ID:            u.ID,
		Email:         u.Email,
		Username:      u.Username,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// AuthTokens is the token pair returned by login, register and refresh.
// ExpiresIn is the access-token lifetime in milliseconds.
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// AuthResponse pairs the sanitized user with freshly minted tokens.
type AuthResponse struct {
	User   *UserOutput `json:"user"`
	Tokens *AuthTokens `json:"tokens"`
}

// MessageResponse carries operations that only return a status message
// (logout, password-reset initiation and confirmation).
type MessageResponse struct {
	Message string `json:"message"`
}

// SessionInfo carries per-request session metadata into token minting.
type SessionInfo struct {
	DeviceInfo string
	IPAddress  string
}
