package service

import (
	"context"
	"time"

	"github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/auth/domain"
	autherrors "github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/errors"
	"github.com/julianjjo/linguaflip-english-flashcards-sub002/pkg/constant"
)

// SecurityService maintains per-user login-attempt counters, the account
// lock and the bounded suspicious-activity log. Every mutation is a
// read-record, modify, write-security-block cycle against the repository;
// concurrent requests for the same user can race (last writer wins), which
// matches the storage contract documented in the package.
type SecurityService struct {
	repo domain.UserRepository
}

func NewSecurityService(repo domain.UserRepository) *SecurityService {
	return &SecurityService{repo: repo}
}

// IncrementLoginAttempts bumps the failure counter, records a
// FAILED_LOGIN_ATTEMPT entry and returns the post-increment count so the
// caller can decide whether the lock threshold was reached.
func (s *SecurityService) IncrementLoginAttempts(ctx context.Context, userID, ip string) (int, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return 0, autherrors.WithOp("security.incrementLoginAttempts", "users", err)
	}

	user.Security.RecordFailure(constant.EventFailedLoginAttempt, ip)

	if err := s.repo.UpdateUserSecurity(ctx, userID, &user.Security); err != nil {
		return 0, autherrors.WithOp("security.incrementLoginAttempts", "users", err)
	}
	return user.Security.LoginAttempts, nil
}

// ResetLoginAttempts zeroes the failure counter.
func (s *SecurityService) ResetLoginAttempts(ctx context.Context, userID string) error {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return autherrors.WithOp("security.resetLoginAttempts", "users", err)
	}

	user.Security.LoginAttempts = 0

	if err := s.repo.UpdateUserSecurity(ctx, userID, &user.Security); err != nil {
		return autherrors.WithOp("security.resetLoginAttempts", "users", err)
	}
	return nil
}

// LockAccount puts the account in the Locked state until now + duration.
func (s *SecurityService) LockAccount(ctx context.Context, userID string, duration time.Duration) error {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return autherrors.WithOp("security.lockAccount", "users", err)
	}

	until := time.Now().Add(duration)
	user.Security.AccountLocked = true
	user.Security.AccountLockedUntil = &until

	if err := s.repo.UpdateUserSecurity(ctx, userID, &user.Security); err != nil {
		return autherrors.WithOp("security.lockAccount", "users", err)
	}
	return nil
}

// UnlockAccount clears the lock and resets the failure counter.
func (s *SecurityService) UnlockAccount(ctx context.Context, userID string) error {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return autherrors.WithOp("security.unlockAccount", "users", err)
	}

	user.Security.AccountLocked = false
	user.Security.AccountLockedUntil = nil
	user.Security.LoginAttempts = 0

	if err := s.repo.UpdateUserSecurity(ctx, userID, &user.Security); err != nil {
		return autherrors.WithOp("security.unlockAccount", "users", err)
	}
	return nil
}

// UpdateLastLogin stamps the successful-login time and source IP.
func (s *SecurityService) UpdateLastLogin(ctx context.Context, userID, ip string) error {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return autherrors.WithOp("security.updateLastLogin", "users", err)
	}

	now := time.Now()
	user.Security.LastLogin = &now
	user.Security.LastLoginIP = ip

	if err := s.repo.UpdateUserSecurity(ctx, userID, &user.Security); err != nil {
		return autherrors.WithOp("security.updateLastLogin", "users", err)
	}
	return nil
}
