package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/auth/domain UserRepository,AuditLogger

// UserRepository is the external document store for auth records. Not-found
// conditions surface as a taxonomy NotFound error, never as (nil, nil).
type UserRepository interface {
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, user *User) error

	// UpdateUser persists the mutable auth block of the record (identity
	// fields, password hash, reset fields, refresh tokens, timestamps).
	// The security block is owned by UpdateUserSecurity and is not written.
	UpdateUser(ctx context.Context, id string, user *User) error

	// UpdateUserSecurity persists only the security state block.
	UpdateUserSecurity(ctx context.Context, id string, security *SecurityState) error
}

// Severity levels for audit events.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// AuditLogger is the security-event sink. Implementations are
// fire-and-forget: they must never block or fail the calling operation.
type AuditLogger interface {
	LogSecurityEvent(event string, fields map[string]any, severity Severity)
}
