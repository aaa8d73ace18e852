// Package postgres persists auth records in a single users table. The
// refresh-token list and security state are stored as JSONB blocks and
// written whole, matching the service layer's read-modify-write contract:
// concurrent writers for the same user are last-writer-wins by design.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/auth/domain"
	autherrors "github.com/julianjjo/linguaflip-english-flashcards-sub002/internal/errors"
)

const pgUniqueViolation = "23505"

// DB is the subset of pgxpool.Pool the repository uses. pgxmock satisfies
// it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	db DB
}

func NewUserRepository(db DB) *Repository {
	return &Repository{db: db}
}

const userColumns = `id, email, username, password_hash, email_verified,
		password_changed_at, password_reset_token, password_reset_expires,
		refresh_tokens, security, created_at, updated_at`

func (r *Repository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 LIMIT 1;`, userColumns)
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1 LIMIT 1;`, userColumns)
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *Repository) CreateUser(ctx context.Context, user *domain.User) error {
	tokens, security, err := marshalBlocks(user)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO users (id, email, username, password_hash, email_verified,
			password_changed_at, password_reset_token, password_reset_expires,
			refresh_tokens, security, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, user.ID, user.Email, user.Username, user.PasswordHash, user.EmailVerified,
		user.PasswordChangedAt, user.PasswordResetToken, user.PasswordResetExpires,
		tokens, security, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return autherrors.Duplicate("users", "An account with this email already exists")
		}
		return autherrors.Database("failed to create user", err)
	}
	return nil
}

// UpdateUser writes the mutable auth block of the record: identity fields,
// password hash, reset fields and the refresh-token list. The security
// block is deliberately excluded; it belongs to UpdateUserSecurity, so a
// login that just reset its attempt counter is not clobbered by the token
// write that follows it.
func (r *Repository) UpdateUser(ctx context.Context, id string, user *domain.User) error {
	tokens, err := json.Marshal(user.RefreshTokens)
	if err != nil {
		return autherrors.Database("failed to encode refresh tokens", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET email = $2, username = $3, password_hash = $4, email_verified = $5,
			password_changed_at = $6, password_reset_token = $7,
			password_reset_expires = $8, refresh_tokens = $9, updated_at = $10
		WHERE id = $1
	`, id, user.Email, user.Username, user.PasswordHash, user.EmailVerified,
		user.PasswordChangedAt, user.PasswordResetToken, user.PasswordResetExpires,
		tokens, user.UpdatedAt)
	if err != nil {
		return autherrors.Database("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return autherrors.NotFound("users", "user not found")
	}
	return nil
}

// UpdateUserSecurity writes only the security-state block.
func (r *Repository) UpdateUserSecurity(ctx context.Context, id string, security *domain.SecurityState) error {
	blob, err := json.Marshal(security)
	if err != nil {
		return autherrors.Database("failed to encode security state", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE users SET security = $2, updated_at = now() WHERE id = $1
	`, id, blob)
	if err != nil {
		return autherrors.Database("failed to update user security", err)
	}
	if tag.RowsAffected() == 0 {
		return autherrors.NotFound("users", "user not found")
	}
	return nil
}

func (r *Repository) scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user     domain.User
		tokens   []byte
		security []byte
	)

	err := row.Scan(&user.ID, &user.Email, &user.Username, &user.PasswordHash,
		&user.EmailVerified, &user.PasswordChangedAt, &user.PasswordResetToken,
		&user.PasswordResetExpires, &tokens, &security, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, autherrors.NotFound("users", "user not found")
		}
		return nil, autherrors.Database("failed to get user", err)
	}

	if len(tokens) > 0 {
		if err := json.Unmarshal(tokens, &user.RefreshTokens); err != nil {
			return nil, autherrors.Database("failed to decode refresh tokens", err)
		}
	}
	if len(security) > 0 {
		if err := json.Unmarshal(security, &user.Security); err != nil {
			return nil, autherrors.Database("failed to decode security state", err)
		}
	}

	return &user, nil
}

func marshalBlocks(user *domain.User) (tokens, security []byte, err error) {
	tokens, err = json.Marshal(user.RefreshTokens)
	if err != nil {
		return nil, nil, autherrors.Database("failed to encode refresh tokens", err)
	}
	security, err = json.Marshal(&user.Security)
	if err != nil {
		return nil, nil, autherrors.Database("failed to encode security state", err)
	}
	return tokens, security, nil
}

var _ domain.UserRepository = (*Repository)(nil)
