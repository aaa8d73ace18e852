package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/auth/domain"
	"github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/auth/dto"
	autherrors "github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/errors"
	"github.com/julianjjo/linguaflip-english-flashcards-sub002/pkg/constant"
)

// Enumeration-safe messages. Credential and reset failures always surface
// one of these regardless of the underlying cause.
const (
	msgInvalidCredentials = "Invalid email or password"
	msgInvalidResetToken  = "Invalid or expired reset token"
	msgResetInitiated     = "If an account with that email exists, a password reset link has been sent"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Options carries the lockout policy knobs.
type Options struct {
	MaxLoginAttempts int
	LockoutDuration  time.Duration
	ResetTokenTTL    time.Duration
}

// UserService orchestrates credential verification, token issuance, lockout
// tracking and the password-reset lifecycle. Each public operation attaches
// operation/collection context to every error it propagates.
type UserService struct {
	repo     domain.UserRepository
	tokens   TokenGenerator
	password *PasswordService
	security *SecurityService
	audit    domain.AuditLogger
	opts     Options
}

func NewUserService(
	repo domain.UserRepository,
	tokens TokenGenerator,
	password *PasswordService,
	security *SecurityService,
	audit domain.AuditLogger,
	opts Options,
) *UserService {
	if opts.MaxLoginAttempts <= 0 {
		opts.MaxLoginAttempts = 5
	}
	if opts.LockoutDuration <= 0 {
		opts.LockoutDuration = 30 * time.Minute
	}
	if opts.ResetTokenTTL <= 0 {
		opts.ResetTokenTTL = time.Hour
	}
	return &UserService{
		repo:     repo,
		tokens:   tokens,
		password: password,
		security: security,
		audit:    audit,
		opts:     opts,
	}
}

// Register creates an account and logs the new user in. Duplicate emails
// fail with a duplicate error; a not-found during the duplicate check is
// the success path.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error) {
	const op = "auth.register"

	if input.Email == "" || input.Password == "" || input.ConfirmPassword == "" {
		return nil, autherrors.WithOp(op, "users", autherrors.Validation("Email, password and password confirmation are required"))
	}

	email := sanitizeEmail(input.Email)
	if !emailPattern.MatchString(email) {
		return nil, autherrors.WithOp(op, "users", autherrors.Validation("Invalid email format"))
	}

	if err := s.password.EnsureStrength(input.Password); err != nil {
		return nil, autherrors.WithOp(op, "users", err)
	}

	if input.Password != input.ConfirmPassword {
		return nil, autherrors.WithOp(op, "users", autherrors.Validation("Passwords do not match"))
	}

	username := strings.TrimSpace(input.Username)

	// A not-found here is the success path; any other lookup failure
	// propagates untouched.
	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil && !autherrors.IsKind(err, autherrors.KindNotFound) {
		return nil, autherrors.WithOp(op, "users", err)
	}
	if existing != nil {
		return nil, autherrors.WithOp(op, "users", autherrors.Duplicate("users", "An account with this email already exists"))
	}

	hash, err := s.password.Hash(input.Password)
	if err != nil {
		return nil, autherrors.WithOp(op, "users", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           s.tokens.GenerateUserID(),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		// The default factory seeds verified accounts in this deployment;
		// unverified records only arrive through other channels.
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, autherrors.WithOp(op, "users", err)
	}

	tokens, err := s.tokens.GenerateTokens(ctx, user, dto.SessionInfo{DeviceInfo: input.DeviceInfo, IPAddress: input.IPAddress})
	if err != nil {
		return nil, autherrors.WithOp(op, "users", err)
	}

	s.audit.LogSecurityEvent(constant.EventUserRegistered, map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
		"ip":      input.IPAddress,
	}, domain.SeverityInfo)

	return &dto.AuthResponse{User: dto.SanitizeUser(user), Tokens: tokens}, nil
}

// Login verifies credentials under the lockout state machine and mints a
// token pair. Absent users and wrong passwords return the same generic
// validation error to prevent account enumeration.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	const op = "auth.login"

	if input.Email == "" || input.Password == "" {
		return nil, autherrors.WithOp(op, "users", autherrors.Validation("Email and password are required"))
	}

	email := sanitizeEmail(input.Email)

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if autherrors.IsKind(err, autherrors.KindNotFound) {
			return nil, autherrors.WithOp(op, "users", autherrors.Validation(msgInvalidCredentials))
		}
		return nil, autherrors.WithOp(op, "users", err)
	}

	// Lock gate first: a live lock denies the attempt regardless of
	// credential correctness; an expired lock is cleared lazily here.
	if user.Security.IsLocked() {
		return nil, autherrors.WithOp(op, "users", autherrors.Permission("Account is temporarily locked. Try again later"))
	}
	if user.Security.LockExpired() {
		if err := s.security.UnlockAccount(ctx, user.ID); err != nil {
			return nil, autherrors.WithOp(op, "users", err)
		}
		user.Security.AccountLocked = false
		user.Security.AccountLockedUntil = nil
		user.Security.LoginAttempts = 0
	}

	if !s.password.Verify(input.Password, user.PasswordHash) {
		attempts, incErr := s.security.IncrementLoginAttempts(ctx, user.ID, input.IPAddress)
		if incErr != nil {
			return nil, autherrors.WithOp(op, "users", incErr)
		}
		if attempts >= s.opts.MaxLoginAttempts {
			if lockErr := s.security.LockAccount(ctx, user.ID, s.opts.LockoutDuration); lockErr != nil {
				return nil, autherrors.WithOp(op, "users", lockErr)
			}
			s.audit.LogSecurityEvent(constant.EventAccountLocked, map[string]any{
				"user_id":  user.ID,
				"ip":       input.IPAddress,
				"attempts": attempts,
			}, domain.SeverityWarning)
			return nil, autherrors.WithOp(op, "users", autherrors.Permission("Account locked due to too many failed login attempts"))
		}
		return nil, autherrors.WithOp(op, "users", autherrors.Validation(msgInvalidCredentials))
	}

	if !user.EmailVerified {
		return nil, autherrors.WithOp(op, "users", autherrors.Permission("Email address is not verified"))
	}

	if err := s.security.ResetLoginAttempts(ctx, user.ID); err != nil {
		return nil, autherrors.WithOp(op, "users", err)
	}
	if err := s.security.UpdateLastLogin(ctx, user.ID, input.IPAddress); err != nil {
		return nil, autherrors.WithOp(op, "users", err)
	}

	tokens, err := s.tokens.GenerateTokens(ctx, user, dto.SessionInfo{DeviceInfo: input.DeviceInfo, IPAddress: input.IPAddress})
	if err != nil {
		return nil, autherrors.WithOp(op, "users", err)
	}

	s.audit.LogSecurityEvent(constant.EventUserLoginSuccess, map[string]any{
		"user_id": user.ID,
		"ip":      input.IPAddress,
	}, domain.SeverityInfo)

	return &dto.AuthResponse{User: dto.SanitizeUser(user), Tokens: tokens}, nil
}

// Logout removes exactly the matching refresh-token entry; other sessions
// for the same user stay usable.
func (s *UserService) Logout(ctx context.Context, userID, refreshToken string) (*dto.MessageResponse, error) {
	const op = "auth.logout"

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, autherrors.WithOp(op, "users", err)
	}

	kept := user.RefreshTokens[:0]
	for _, entry := range user.RefreshTokens {
		if entry.Token != refreshToken {
			kept = append(kept, entry)
		}
	}
	user.RefreshTokens = kept
	user.UpdatedAt = time.Now()

	if err := s.repo.UpdateUser(ctx, user.ID, user); err != nil {
		return nil, autherrors.WithOp(op, "users", err)
	}

	s.audit.LogSecurityEvent(constant.EventUserLogout, map[string]any{
		"user_id": user.ID,
	}, domain.SeverityInfo)

	return &dto.MessageResponse{Message: "Logged out successfully"}, nil
}

// Refresh exchanges a refresh token for a new pair. The presented token
// must exist verbatim in the user's session list, which rejects tokens
// issued to a session that has since been logged out or evicted.
func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.AuthTokens, error) {
	const op = "auth.refreshToken"

	if input.RefreshToken == "" {
		return nil, autherrors.WithOp(op, "users", autherrors.Validation("Refresh token is required"))
	}

	claims, err := s.tokens.DecodeRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, autherrors.WithOp(op, "users", err)
	}

	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if autherrors.IsKind(err, autherrors.KindNotFound) {
			return nil, autherrors.WithOp(op, "users", autherrors.Validation("Invalid or expired token"))
		}
		return nil, autherrors.WithOp(op, "users", err)
	}

	if !user.HasRefreshToken(input.RefreshToken) {
		return nil, autherrors.WithOp(op, "users", autherrors.Validation("Invalid or expired token"))
	}

	tokens, err := s.tokens.GenerateTokens(ctx, user, dto.SessionInfo{DeviceInfo: input.DeviceInfo, IPAddress: input.IPAddress})
	if err != nil {
		return nil, autherrors.WithOp(op, "users", err)
	}

	s.audit.LogSecurityEvent(constant.EventTokenRefreshed, map[string]any{
		"user_id": user.ID,
		"ip":      input.IPAddress,
	}, domain.SeverityInfo)

	return tokens, nil
}

// InitiatePasswordReset issues a reset token for the account. The response
// is identical whether or not the email exists.
func (s *UserService) InitiatePasswordReset(ctx context.Context, input dto.PasswordResetInput) (*dto.MessageResponse, error) {
	const op = "auth.initiatePasswordReset"

	if input.Email == "" {
		return nil, autherrors.WithOp(op, "users", autherrors.Validation("Email is required"))
	}

	email := sanitizeEmail(input.Email)

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if autherrors.IsKind(err, autherrors.KindNotFound) {
			// No enumeration signal: same message as the success path.
			return &dto.MessageResponse{Message: msgResetInitiated}, nil
		}
		return nil, autherrors.WithOp(op, "users", err)
	}

	token, err := s.tokens.GeneratePasswordResetToken(user.ID)
	if err != nil {
		return nil, autherrors.WithOp(op, "users", err)
	}

	expires := time.Now().Add(s.opts.ResetTokenTTL)
	user.PasswordResetToken = &token
	user.PasswordResetExpires = &expires
	user.UpdatedAt = time.Now()

	if err := s.repo.UpdateUser(ctx, user.ID, user); err != nil {
		return nil, autherrors.WithOp(op, "users", err)
	}

	s.audit.LogSecurityEvent(constant.EventPasswordResetInitiated, map[string]any{
		"user_id": user.ID,
	}, domain.SeverityInfo)

	return &dto.MessageResponse{Message: msgResetInitiated}, nil
}

// ConfirmPasswordReset consumes a reset token at most once: the stored
// token must match the presented one and still be unexpired, and both
// fields are cleared the moment the new password is written.
func (s *UserService) ConfirmPasswordReset(ctx context.Context, input dto.PasswordResetConfirmInput) (*dto.MessageResponse, error) {
	const op = "auth.confirmPasswordReset"

	if input.Token == "" || input.NewPassword == "" || input.ConfirmPassword == "" {
		return nil, autherrors.WithOp(op, "users", autherrors.Validation("Token, new password and confirmation are required"))
	}

	if err := s.password.EnsureStrength(input.NewPassword); err != nil {
		return nil, autherrors.WithOp(op, "users", err)
	}

	if input.NewPassword != input.ConfirmPassword {
		return nil, autherrors.WithOp(op, "users", autherrors.Validation("Passwords do not match"))
	}

	userID, err := s.tokens.DecodePasswordResetToken(input.Token)
	if err != nil {
		return nil, autherrors.WithOp(op, "users", err)
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if autherrors.IsKind(err, autherrors.KindNotFound) {
			return nil, autherrors.WithOp(op, "users", autherrors.Validation(msgInvalidResetToken))
		}
		return nil, autherrors.WithOp(op, "users", err)
	}

	if !user.HasResetTokenValid(input.Token) {
		return nil, autherrors.WithOp(op, "users", autherrors.Validation(msgInvalidResetToken))
	}

	hash, err := s.password.Hash(input.NewPassword)
	if err != nil {
		return nil, autherrors.WithOp(op, "users", err)
	}

	now := time.Now()
	user.PasswordHash = hash
	user.PasswordResetToken = nil
	user.PasswordResetExpires = nil
	user.PasswordChangedAt = &now
	user.UpdatedAt = now

	if err := s.repo.UpdateUser(ctx, user.ID, user); err != nil {
		return nil, autherrors.WithOp(op, "users", err)
	}

	s.audit.LogSecurityEvent(constant.EventPasswordChanged, map[string]any{
		"user_id": user.ID,
	}, domain.SeverityInfo)

	return &dto.MessageResponse{Message: "Password has been reset successfully"}, nil
}

// VerifyAccessToken resolves an access token to its sanitized user.
func (s *UserService) VerifyAccessToken(ctx context.Context, token string) (*dto.UserOutput, error) {
	const op = "auth.verifyAccessToken"

	claims, err := s.tokens.DecodeAccessToken(token)
	if err != nil {
		return nil, autherrors.WithOp(op, "users", err)
	}

	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if autherrors.IsKind(err, autherrors.KindNotFound) {
			return nil, autherrors.WithOp(op, "users", autherrors.Validation("Invalid or expired token"))
		}
		return nil, autherrors.WithOp(op, "users", err)
	}

	return dto.SanitizeUser(user), nil
}

func sanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
