package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/auth/domain"
	repo "github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/auth/repository/postgres"
	autherrors "github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/errors"
)

var userColumns = []string{
	"id", "email", "username", "password_hash", "email_verified",
	"password_changed_at", "password_reset_token", "password_reset_expires",
	"refresh_tokens", "security", "created_at", "updated_at",
}

func TestGetUserByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()

	t.Run("success decodes jsonb blocks", func(t *testing.T) {
		tokens := []byte(`[{"token":"rt-1","created_at":"2026-08-01T10:00:00Z","expires_at":"2026-08-08T10:00:00Z","ip_address":"10.0.0.1"}]`)
		security := []byte(`{"login_attempts":2,"account_locked":false}`)

		mock.ExpectQuery("SELECT id, email").
			WithArgs("a@x.com").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow("u1", "a@x.com", "ann", "hash", true, nil, nil, nil, tokens, security, time.Now(), time.Now()))

		user, err := r.GetUserByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.True(t, user.EmailVerified)
		require.Len(t, user.RefreshTokens, 1)
		assert.Equal(t, "rt-1", user.RefreshTokens[0].Token)
		assert.Equal(t, 2, user.Security.LoginAttempts)
	})

	t.Run("not found maps to taxonomy kind", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs("ghost@x.com").
			WillReturnError(pgx.ErrNoRows)

		_, err := r.GetUserByEmail(ctx, "ghost@x.com")
		require.Error(t, err)
		assert.True(t, autherrors.IsKind(err, autherrors.KindNotFound))
	})

	t.Run("query failure maps to database kind", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs("a@x.com").
			WillReturnError(assert.AnError)

		_, err := r.GetUserByEmail(ctx, "a@x.com")
		require.Error(t, err)
		assert.True(t, autherrors.IsKind(err, autherrors.KindDatabase))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByID_EmptyBlocks(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)

	mock.ExpectQuery("SELECT id, email").
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow("u1", "a@x.com", "", "hash", true, nil, nil, nil, []byte(nil), []byte(nil), time.Now(), time.Now()))

	user, err := r.GetUserByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, user.RefreshTokens)
	assert.Equal(t, 0, user.Security.LoginAttempts)

	require.NoError(t, mock.ExpectationsWereMet())
}

func newUser() *domain.User {
	now := time.Now()
	return &domain.User{
		ID:            "u1",
		Email:         "a@x.com",
		PasswordHash:  "hash",
		EmailVerified: true,
		RefreshTokens: []domain.RefreshTokenEntry{{Token: "rt-1", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestCreateUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs("u1", "a@x.com", "", "hash", true,
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, r.CreateUser(ctx, newUser()))
	})

	t.Run("unique violation maps to duplicate", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs("u1", "a@x.com", "", "hash", true,
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := r.CreateUser(ctx, newUser())
		require.Error(t, err)
		assert.True(t, autherrors.IsKind(err, autherrors.KindDuplicate))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs("u1", "a@x.com", "", "hash", true,
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, r.UpdateUser(ctx, "u1", newUser()))
	})

	t.Run("zero rows maps to not found", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs("ghost", "a@x.com", "", "hash", true,
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := r.UpdateUser(ctx, "ghost", newUser())
		require.Error(t, err)
		assert.True(t, autherrors.IsKind(err, autherrors.KindNotFound))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserSecurity(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)

	mock.ExpectExec("UPDATE users SET security").
		WithArgs("u1", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	sec := &domain.SecurityState{LoginAttempts: 3, AccountLocked: false}
	require.NoError(t, r.UpdateUserSecurity(context.Background(), "u1", sec))

	require.NoError(t, mock.ExpectationsWereMet())
}
