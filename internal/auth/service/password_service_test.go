package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/auth/service"
	autherrors "github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/errors"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	s := service.NewPasswordService(bcrypt.MinCost)

	hash, err := s.Hash("Abc12345")
	require.NoError(t, err)
	assert.NotEqual(t, "Abc12345", hash)

	assert.True(t, s.Verify("Abc12345", hash))
	assert.False(t, s.Verify("abc12345", hash))
	assert.False(t, s.Verify("", hash))
}

func TestPasswordService_EnsureStrength(t *testing.T) {
	s := service.NewPasswordService(bcrypt.MinCost)

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"valid", "Abc12345", true},
		{"valid long", "SuperSecret99", true},
		{"too short", "Ab1", false},
		{"seven chars", "Abc1234", false},
		{"no uppercase", "abc12345", false},
		{"no lowercase", "ABC12345", false},
		{"no digit", "Abcdefgh", false},
		{"empty", "", false},
		{"digits only", "12345678", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.EnsureStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, autherrors.IsKind(err, autherrors.KindValidation))
		})
	}
}

func TestPasswordService_InvalidCostFallsBack(t *testing.T) {
	s := service.NewPasswordService(99)

	hash, err := s.Hash("Abc12345")
	require.NoError(t, err)
	assert.True(t, s.Verify("Abc12345", hash))
}
