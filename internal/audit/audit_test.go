package audit_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/audit"
	"github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/auth/domain"
)

func TestLogger_LogSecurityEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := audit.NewLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	logger.LogSecurityEvent("USER_LOGIN_SUCCESS", map[string]any{
		"user_id": "u1",
		"ip":      "10.0.0.1",
	}, domain.SeverityInfo)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "USER_LOGIN_SUCCESS", record["event"])
	assert.Equal(t, "u1", record["user_id"])
	assert.Equal(t, "10.0.0.1", record["ip"])
}

func TestLogger_SeverityMapping(t *testing.T) {
	tests := []struct {
		severity domain.Severity
		level    string
	}{
		{domain.SeverityInfo, "INFO"},
		{domain.SeverityWarning, "WARN"},
		{domain.SeverityCritical, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			var buf bytes.Buffer
			logger := audit.NewLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

			logger.LogSecurityEvent("ACCOUNT_LOCKED", nil, tt.severity)

			var record map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
			assert.Equal(t, tt.level, record["level"])
		})
	}
}

func TestLogger_NilLoggerUsesDefault(t *testing.T) {
	logger := audit.NewLogger(nil)

	// Must not panic and must never fail the caller.
	logger.LogSecurityEvent("USER_LOGOUT", map[string]any{"user_id": "u1"}, domain.SeverityInfo)
}
