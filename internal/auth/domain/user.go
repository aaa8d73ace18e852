package domain

import (
	"time"

	"github.com/julianjjo/linguaflip-english-flashcards-sub002/pkg/constant"
)

// User is the authentication record for one account. The repository owns
// storage; every mutation goes through the auth services, which read the
// whole record, change it in memory and write it back.
type User struct {
	ID                   string
	Email                string
	Username             string
	PasswordHash         string
	EmailVerified        bool
	PasswordChangedAt    *time.Time
	PasswordResetToken   *string
	PasswordResetExpires *time.Time
	RefreshTokens        []RefreshTokenEntry
	Security             SecurityState
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// RefreshTokenEntry is one active session. Entries are kept newest first;
// the list never exceeds the configured max active sessions after a write.
type RefreshTokenEntry struct {
	Token      string    `json:"token"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	DeviceInfo string    `json:"device_info,omitempty"`
	IPAddress  string    `json:"ip_address,omitempty"`
}

// SecurityState tracks brute-force counters and the account lock.
type SecurityState struct {
	LoginAttempts      int                       `json:"login_attempts"`
	AccountLocked      bool                      `json:"account_locked"`
	AccountLockedUntil *time.Time                `json:"account_locked_until,omitempty"`
	LastLogin          *time.Time                `json:"last_login,omitempty"`
	LastLoginIP        string                    `json:"last_login_ip,omitempty"`
	SuspiciousActivity []SuspiciousActivityEntry `json:"suspicious_activity,omitempty"`
}

// SuspiciousActivityEntry is one recorded security incident. The per-user
// log keeps the 10 most recent entries, newest first.
type SuspiciousActivityEntry struct {
	Type      string    `json:"type"`
	IPAddress string    `json:"ip_address,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// IsLocked reports whether the account lock is still in force. A lock whose
// deadline has passed no longer counts, even before the lazy unlock runs.
func (s *SecurityState) IsLocked() bool {
	if !s.AccountLocked {
		return false
	}
	if s.AccountLockedUntil == nil {
		return true
	}
	return s.AccountLockedUntil.After(time.Now())
}

// LockExpired reports whether the account carries a lock whose deadline
// has already passed.
func (s *SecurityState) LockExpired() bool {
	return s.AccountLocked && s.AccountLockedUntil != nil && !s.AccountLockedUntil.After(time.Now())
}

// RecordFailure increments the attempt counter and appends a suspicious
// activity entry, keeping only the most recent entries.
func (s *SecurityState) RecordFailure(activityType, ip string) {
	s.LoginAttempts++
	s.SuspiciousActivity = append([]SuspiciousActivityEntry{{
		Type:      activityType,
		IPAddress: ip,
		Timestamp: time.Now(),
	}}, s.SuspiciousActivity...)
	if len(s.SuspiciousActivity) > constant.MaxSuspiciousActivityEntries {
		s.SuspiciousActivity = s.SuspiciousActivity[:constant.MaxSuspiciousActivityEntries]
	}
}

// HasResetTokenValid reports whether the stored reset token matches the
// presented one and has not expired. Consuming the token clears both fields.
func (u *User) HasResetTokenValid(token string) bool {
	if u.PasswordResetToken == nil || u.PasswordResetExpires == nil {
		return false
	}
	if *u.PasswordResetToken != token {
		return false
	}
	return u.PasswordResetExpires.After(time.Now())
}

// HasRefreshToken reports whether the exact token string is an active
// session on this record.
func (u *User) HasRefreshToken(token string) bool {
	for _, entry := range u.RefreshTokens {
		if entry.Token == token {
			return true
		}
	}
	return false
}
