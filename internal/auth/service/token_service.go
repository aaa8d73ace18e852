package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/auth/service TokenGenerator

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/auth/domain"
	"github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/auth/dto"
	autherrors "github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/errors"
	"github.com/julianjjo/linguaflip-english-flashcards-sub002/pkg/constant"
)

// fallbackExpiryMs is used when a configured TTL string does not parse.
// Documented fallback, not silent failure: the parse error is visible in
// the returned ExpiresIn being exactly 15 minutes.
const fallbackExpiryMs = int64(15 * 60 * 1000)

var expiryPattern = regexp.MustCompile(`^(\d+)([smhd])$`)

// TokenGenerator abstracts signed-token minting so any signed-token
// primitive can satisfy the contract.
type TokenGenerator interface {
	GenerateTokens(ctx context.Context, user *domain.User, session dto.SessionInfo) (*dto.AuthTokens, error)
	DecodeAccessToken(token string) (*AccessClaims, error)
	DecodeRefreshToken(token string) (*RefreshClaims, error)
	GeneratePasswordResetToken(userID string) (string, error)
	DecodePasswordResetToken(token string) (string, error)
	GenerateSecureToken() (string, error)
	GenerateUserID() string
}

// AccessClaims is the payload of an access token.
type AccessClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Type   string `json:"type"`
}

// RefreshClaims is the payload of a refresh token.
type RefreshClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Type   string `json:"type"`
}

// resetClaims is the payload of a password-reset token. The user id rides
// in the token so confirmation can find the record without an email lookup.
type resetClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Type   string `json:"type"`
}

// TokenService signs and verifies access/refresh tokens with distinct
// secrets and persists refresh-token entries on the user record.
type TokenService struct {
	repo               domain.UserRepository
	accessTokenSecret  string
	refreshTokenSecret string
	accessTokenTTL     string
	refreshTokenTTL    string
	resetTokenTTL      time.Duration
	maxActiveSessions  int
}

func NewTokenService(
	repo domain.UserRepository,
	accessSecret, refreshSecret string,
	accessTTL, refreshTTL string,
	resetTTLHours, maxActiveSessions int,
) *TokenService {
	if resetTTLHours <= 0 {
		resetTTLHours = 1
	}
	if maxActiveSessions <= 0 {
		maxActiveSessions = 5
	}
	return &TokenService{
		repo:               repo,
		accessTokenSecret:  accessSecret,
		refreshTokenSecret: refreshSecret,
		accessTokenTTL:     accessTTL,
		refreshTokenTTL:    refreshTTL,
		resetTokenTTL:      time.Duration(resetTTLHours) * time.Hour,
		maxActiveSessions:  maxActiveSessions,
	}
}

// GenerateTokens mints a new access/refresh pair for the user, records the
// refresh token as a session entry (newest first, oldest evicted beyond the
// session cap) and persists the updated record.
func (ts *TokenService) GenerateTokens(ctx context.Context, user *domain.User, session dto.SessionInfo) (*dto.AuthTokens, error) {
	if user.Email == "" {
		return nil, autherrors.Database("cannot generate tokens for user without email", nil)
	}

	now := time.Now()
	accessTTL := ts.AccessTokenExpiryMs()
	refreshTTL := parseExpiryMs(ts.refreshTokenTTL)

	accessClaims := AccessClaims{
		UserID: user.ID,
		Email:  user.Email,
		Type:   constant.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(accessTTL) * time.Millisecond)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	refreshExpiresAt := now.Add(time.Duration(refreshTTL) * time.Millisecond)
	refreshClaims := RefreshClaims{
		UserID: user.ID,
		Type:   constant.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			// jti keeps two tokens minted within the same second distinct.
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(refreshExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(ts.accessTokenSecret))
	if err != nil {
		return nil, autherrors.Database("failed to sign access token", err)
	}

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(ts.refreshTokenSecret))
	if err != nil {
		return nil, autherrors.Database("failed to sign refresh token", err)
	}

	entry := domain.RefreshTokenEntry{
		Token:      refreshToken,
		CreatedAt:  now,
		ExpiresAt:  refreshExpiresAt,
		DeviceInfo: session.DeviceInfo,
		IPAddress:  session.IPAddress,
	}
	user.RefreshTokens = append([]domain.RefreshTokenEntry{entry}, user.RefreshTokens...)
	if len(user.RefreshTokens) > ts.maxActiveSessions {
		user.RefreshTokens = user.RefreshTokens[:ts.maxActiveSessions]
	}
	user.UpdatedAt = now

	if err := ts.repo.UpdateUser(ctx, user.ID, user); err != nil {
		return nil, autherrors.Database("failed to persist refresh token", err)
	}

	return &dto.AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    accessTTL,
		TokenType:    constant.TokenTypeBearer,
	}, nil
}

// DecodeAccessToken verifies signature, expiry and the type claim. Every
// failure mode collapses into the same validation error so callers cannot
// distinguish malformed from expired tokens.
func (ts *TokenService) DecodeAccessToken(token string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := ts.parse(token, ts.accessTokenSecret, claims); err != nil {
		return nil, autherrors.Validation("Invalid or expired token")
	}
	if claims.Type != constant.TokenTypeAccess {
		return nil, autherrors.Validation("Invalid or expired token")
	}
	return claims, nil
}

// DecodeRefreshToken verifies a refresh token the same way.
func (ts *TokenService) DecodeRefreshToken(token string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := ts.parse(token, ts.refreshTokenSecret, claims); err != nil {
		return nil, autherrors.Validation("Invalid or expired token")
	}
	if claims.Type != constant.TokenTypeRefresh {
		return nil, autherrors.Validation("Invalid or expired token")
	}
	return claims, nil
}

// GeneratePasswordResetToken mints a signed single-purpose token carrying
// the user id, valid for the configured reset window.
func (ts *TokenService) GeneratePasswordResetToken(userID string) (string, error) {
	now := time.Now()
	claims := resetClaims{
		UserID: userID,
		Type:   constant.TokenTypePasswordReset,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.resetTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.accessTokenSecret))
	if err != nil {
		return "", autherrors.Database("failed to sign reset token", err)
	}
	return token, nil
}

// DecodePasswordResetToken recovers the user id from a reset token. Any
// cryptographic, expiry or type failure yields the generic reset error.
func (ts *TokenService) DecodePasswordResetToken(token string) (string, error) {
	claims := &resetClaims{}
	if err := ts.parse(token, ts.accessTokenSecret, claims); err != nil {
		return "", autherrors.Validation("Invalid or expired reset token")
	}
	if claims.Type != constant.TokenTypePasswordReset {
		return "", autherrors.Validation("Invalid or expired reset token")
	}
	return claims.UserID, nil
}

// GenerateSecureToken returns a cryptographically random opaque string,
// used for email-verification tokens.
func (ts *TokenService) GenerateSecureToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", autherrors.Database("failed to generate secure token", err)
	}
	return hex.EncodeToString(buf), nil
}

// GenerateUserID returns a time-seeded identifier with a random suffix.
// Collisions are not checked here; duplicate detection happens at creation.
func (ts *TokenService) GenerateUserID() string {
	return ulid.Make().String()
}

// AccessTokenExpiryMs returns the configured access-token lifetime in
// milliseconds.
func (ts *TokenService) AccessTokenExpiryMs() int64 {
	return parseExpiryMs(ts.accessTokenTTL)
}

func (ts *TokenService) parse(token, secret string, claims jwt.Claims) error {
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}
	if !parsed.Valid {
		return fmt.Errorf("invalid token")
	}
	return nil
}

// parseExpiryMs converts a duration string of the form \d+[smhd] to
// milliseconds, falling back to 15 minutes when the value does not parse.
func parseExpiryMs(ttl string) int64 {
	m := expiryPattern.FindStringSubmatch(ttl)
	if m == nil {
		return fallbackExpiryMs
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return fallbackExpiryMs
	}
	switch m[2] {
	case "s":
		return n * 1000
	case "m":
		return n * 60 * 1000
	case "h":
		return n * 60 * 60 * 1000
	case "d":
		return n * 24 * 60 * 60 * 1000
	}
	return fallbackExpiryMs
}

var _ TokenGenerator = (*TokenService)(nil)
