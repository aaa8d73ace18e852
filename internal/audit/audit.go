// Package audit emits security events as structured JSON log records.
// The sink is fire-and-forget: a failed or slow log write must never
// affect the auth operation that produced the event.
package audit

import (
	"log/slog"

	"github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/auth/domain"
)

// Logger writes security events through slog.
type Logger struct {
	log *slog.Logger
}

// NewLogger wraps an slog.Logger as an audit sink. Passing nil uses
// slog.Default().
func NewLogger(log *slog.Logger) *Logger {
	if log == nil {
		log = slog.Default()
	}
	return &Logger{log: log}
}

// LogSecurityEvent records one event with its context fields. Panics from
// handler misconfiguration are swallowed so the caller never fails.
func (l *Logger) LogSecurityEvent(event string, fields map[string]any, severity domain.Severity) {
	defer func() {
		_ = recover()
	}()

	attrs := make([]any, 0, 2*len(fields)+2)
	attrs = append(attrs, slog.String("event", event))
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}

	switch severity {
	case domain.SeverityCritical:
		l.log.Error("security event", attrs...)
	case domain.SeverityWarning:
		l.log.Warn("security event", attrs...)
	default:
		l.log.Info("security event", attrs...)
	}
}

var _ domain.AuditLogger = (*Logger)(nil)
