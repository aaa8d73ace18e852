package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseExpiryMs(t *testing.T) {
	tests := []struct {
		name string
		ttl  string
		want int64
	}{
		{"seconds", "30s", 30 * 1000},
		{"minutes", "15m", 15 * 60 * 1000},
		{"hours", "2h", 2 * 60 * 60 * 1000},
		{"days", "7d", 7 * 24 * 60 * 60 * 1000},
		{"empty falls back", "", fallbackExpiryMs},
		{"garbage falls back", "soon", fallbackExpiryMs},
		{"unknown unit falls back", "10w", fallbackExpiryMs},
		{"missing number falls back", "m", fallbackExpiryMs},
		{"negative falls back", "-5m", fallbackExpiryMs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseExpiryMs(tt.ttl))
		})
	}
}
