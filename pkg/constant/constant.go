// Package constant holds shared auth constants.
package constant

// Security audit event names.
const (
	EventUserRegistered         = "USER_REGISTERED"
	EventUserLoginSuccess       = "USER_LOGIN_SUCCESS"
	EventUserLogout             = "USER_LOGOUT"
	EventTokenRefreshed         = "TOKEN_REFRESHED"
	EventPasswordResetInitiated = "PASSWORD_RESET_INITIATED"
	EventPasswordChanged        = "PASSWORD_CHANGED"
	EventFailedLoginAttempt     = "FAILED_LOGIN_ATTEMPT"
	EventAccountLocked          = "ACCOUNT_LOCKED"
	EventAccountUnlocked        = "ACCOUNT_UNLOCKED"
)

// MaxSuspiciousActivityEntries bounds the per-user suspicious-activity log.
const MaxSuspiciousActivityEntries = 10

// MinPasswordLength is the password strength floor.
const MinPasswordLength = 8

// TokenTypeBearer is the token_type value returned with every token pair.
const TokenTypeBearer = "Bearer"

// Token type claims.
const (
	TokenTypeAccess        = "access"
	TokenTypeRefresh       = "refresh"
	TokenTypePasswordReset = "password_reset"
)
