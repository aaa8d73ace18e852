package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/auth/domain"
	"github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/auth/service"
	autherrors "github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/errors"
	"github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/mocks"
	"github.com/julianjjo/linguaflip-english-flashcards-sub002/pkg/constant"
)

func securityUser(attempts int) *domain.User {
	return &domain.User{
		ID:    "user-1",
		Email: "a@x.com",
		Security: domain.SecurityState{
			LoginAttempts: attempts,
		},
	}
}

func TestSecurityService_IncrementLoginAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s := service.NewSecurityService(mockRepo)

	user := securityUser(2)
	var written *domain.SecurityState

	mockRepo.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(user, nil)
	mockRepo.EXPECT().UpdateUserSecurity(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, sec *domain.SecurityState) error {
			written = sec
			return nil
		})

	count, err := s.IncrementLoginAttempts(context.Background(), "user-1", "10.0.0.9")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NotNil(t, written)
	assert.Equal(t, 3, written.LoginAttempts)
	require.NotEmpty(t, written.SuspiciousActivity)
	assert.Equal(t, constant.EventFailedLoginAttempt, written.SuspiciousActivity[0].Type)
	assert.Equal(t, "10.0.0.9", written.SuspiciousActivity[0].IPAddress)
}

func TestSecurityService_IncrementLoginAttempts_BoundsActivityLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s := service.NewSecurityService(mockRepo)

	user := securityUser(11)
	for i := 0; i < constant.MaxSuspiciousActivityEntries; i++ {
		user.Security.SuspiciousActivity = append(user.Security.SuspiciousActivity, domain.SuspiciousActivityEntry{
			Type:      constant.EventFailedLoginAttempt,
			IPAddress: "10.0.0.1",
			Timestamp: time.Now().Add(-time.Duration(i) * time.Minute),
		})
	}

	var written *domain.SecurityState
	mockRepo.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(user, nil)
	mockRepo.EXPECT().UpdateUserSecurity(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, sec *domain.SecurityState) error {
			written = sec
			return nil
		})

	_, err := s.IncrementLoginAttempts(context.Background(), "user-1", "10.0.0.2")
	require.NoError(t, err)

	require.Len(t, written.SuspiciousActivity, constant.MaxSuspiciousActivityEntries)
	// Newest entry is first; the oldest fell off the end.
	assert.Equal(t, "10.0.0.2", written.SuspiciousActivity[0].IPAddress)
}

func TestSecurityService_IncrementLoginAttempts_UserMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s := service.NewSecurityService(mockRepo)

	mockRepo.EXPECT().GetUserByID(gomock.Any(), "ghost").Return(nil, autherrors.NotFound("users", "user not found"))

	_, err := s.IncrementLoginAttempts(context.Background(), "ghost", "10.0.0.1")
	require.Error(t, err)
	assert.True(t, autherrors.IsKind(err, autherrors.KindNotFound))
}

func TestSecurityService_ResetLoginAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s := service.NewSecurityService(mockRepo)

	user := securityUser(4)
	var written *domain.SecurityState

	mockRepo.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(user, nil)
	mockRepo.EXPECT().UpdateUserSecurity(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, sec *domain.SecurityState) error {
			written = sec
			return nil
		})

	require.NoError(t, s.ResetLoginAttempts(context.Background(), "user-1"))
	assert.Equal(t, 0, written.LoginAttempts)
}

func TestSecurityService_LockAndUnlockAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s := service.NewSecurityService(mockRepo)

	user := securityUser(5)
	var written *domain.SecurityState
	capture := func(_ context.Context, _ string, sec *domain.SecurityState) error {
		written = sec
		return nil
	}

	mockRepo.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(user, nil)
	mockRepo.EXPECT().UpdateUserSecurity(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(capture)

	require.NoError(t, s.LockAccount(context.Background(), "user-1", 30*time.Minute))
	assert.True(t, written.AccountLocked)
	require.NotNil(t, written.AccountLockedUntil)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), *written.AccountLockedUntil, 5*time.Second)
	assert.True(t, written.IsLocked())

	locked := securityUser(5)
	locked.Security = *written

	mockRepo.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(locked, nil)
	mockRepo.EXPECT().UpdateUserSecurity(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(capture)

	require.NoError(t, s.UnlockAccount(context.Background(), "user-1"))
	assert.False(t, written.AccountLocked)
	assert.Nil(t, written.AccountLockedUntil)
	assert.Equal(t, 0, written.LoginAttempts)
}

func TestSecurityService_UpdateLastLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s := service.NewSecurityService(mockRepo)

	user := securityUser(0)
	var written *domain.SecurityState

	mockRepo.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(user, nil)
	mockRepo.EXPECT().UpdateUserSecurity(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, sec *domain.SecurityState) error {
			written = sec
			return nil
		})

	require.NoError(t, s.UpdateLastLogin(context.Background(), "user-1", "192.168.1.5"))
	require.NotNil(t, written.LastLogin)
	assert.WithinDuration(t, time.Now(), *written.LastLogin, 5*time.Second)
	assert.Equal(t, "192.168.1.5", written.LastLoginIP)
}

func TestSecurityState_LockExpiry(t *testing.T) {
	past := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Minute)

	active := domain.SecurityState{AccountLocked: true, AccountLockedUntil: &future}
	assert.True(t, active.IsLocked())
	assert.False(t, active.LockExpired())

	expired := domain.SecurityState{AccountLocked: true, AccountLockedUntil: &past}
	assert.False(t, expired.IsLocked())
	assert.True(t, expired.LockExpired())

	unlocked := domain.SecurityState{}
	assert.False(t, unlocked.IsLocked())
	assert.False(t, unlocked.LockExpired())
}
