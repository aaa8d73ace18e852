package service

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"

	autherrors "github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/errors"
	"github.com/julianjjo/linguaflip-english-flashcards-sub002/pkg/constant"
)

var (
	hasLowercase = regexp.MustCompile(`[a-z]`)
	hasUppercase = regexp.MustCompile(`[A-Z]`)
	hasDigit     = regexp.MustCompile(`[0-9]`)
)

// PasswordService hashes and verifies credentials and enforces the
// strength policy. Strength runs before any hashing or repository I/O.
type PasswordService struct {
	cost int
}

func NewPasswordService(cost int) *PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordService{cost: cost}
}

// Hash produces a one-way bcrypt hash of the password.
func (s *PasswordService) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", autherrors.Database("failed to hash password", err)
	}
	return string(hashed), nil
}

// Verify reports whether the password matches the stored hash using
// bcrypt's own comparison primitive.
func (s *PasswordService) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// EnsureStrength fails with a validation error unless the password is at
// least 8 characters and contains a lowercase letter, an uppercase letter
// and a digit.
func (s *PasswordService) EnsureStrength(password string) error {
	if len(password) < constant.MinPasswordLength {
		return autherrors.Validation("Password must be at least 8 characters long")
	}
	if !hasLowercase.MatchString(password) || !hasUppercase.MatchString(password) || !hasDigit.MatchString(password) {
		return autherrors.Validation("Password must contain at least one lowercase letter, one uppercase letter, and one number")
	}
	return nil
}
