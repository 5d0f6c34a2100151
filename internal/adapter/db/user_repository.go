package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/domain"
	"github.com/amanshinde1/ai-productivity-dashboard/internal/core/ports"
)

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID           uint64    `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type passwordResetRow struct {
	ID        uint64    `db:"id"`
	UserID    uint64    `db:"user_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	Consumed  bool      `db:"consumed"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, username, email, passwordHash string) (domain.User, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?);",
		username, email, passwordHash)
	if err != nil {
		if isDuplicateEntry(err) {
			// The unique key name tells us which column clashed.
			if strings.Contains(err.Error(), "uq_users_email") {
				return domain.User{}, domain.ErrDuplicateEmail
			}
			return domain.User{}, domain.ErrDuplicateUsername
		}
		return domain.User{}, err
	}

	userID, err := result.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}

	return r.GetByID(ctx, uint64(userID))
}

func (r *UserRepository) GetByID(ctx context.Context, userID uint64) (domain.User, error) {
	return r.getBy(ctx, "id = ?", userID)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.getBy(ctx, "username = ?", username)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getBy(ctx, "email = ?", email)
}

func (r *UserRepository) getBy(ctx context.Context, where string, arg any) (domain.User, error) {
	var row userRow
	query := "SELECT id, username, email, password_hash, created_at, updated_at FROM users WHERE " + where + ";"
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return mapUserRow(row), nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT id, username, email, password_hash, created_at, updated_at FROM users ORDER BY id;")
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRow(row))
	}
	return users, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID uint64, input domain.UpdateProfileInput) (domain.User, error) {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if input.Username != nil {
		sets = append(sets, "username = ?")
		args = append(args, *input.Username)
	}
	if input.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *input.Email)
	}

	if len(sets) > 0 {
		query := "UPDATE users SET " + strings.Join(sets, ", ") + " WHERE id = ?;"
		args = append(args, userID)
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			if isDuplicateEntry(err) {
				if strings.Contains(err.Error(), "uq_users_email") {
					return domain.User{}, domain.ErrDuplicateEmail
				}
				return domain.User{}, domain.ErrDuplicateUsername
			}
			return domain.User{}, err
		}
	}

	return r.GetByID(ctx, userID)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID uint64, passwordHash string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE users SET password_hash = ? WHERE id = ?;", passwordHash, userID)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		if _, getErr := r.GetByID(ctx, userID); getErr != nil {
			return getErr
		}
	}
	return nil
}

func (r *UserRepository) CreatePasswordReset(ctx context.Context, userID uint64, token string, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO password_resets (user_id, token, expires_at) VALUES (?, ?, ?);",
		userID, token, expiresAt)
	return err
}

func (r *UserRepository) GetPasswordReset(ctx context.Context, token string) (domain.PasswordReset, error) {
	var row passwordResetRow
	err := r.db.GetContext(ctx, &row,
		"SELECT id, user_id, token, expires_at, consumed, created_at FROM password_resets WHERE token = ?;", token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.PasswordReset{}, domain.ErrInvalidToken
		}
		return domain.PasswordReset{}, err
	}

	return domain.PasswordReset{
		ID:        row.ID,
		UserID:    row.UserID,
		Token:     row.Token,
		ExpiresAt: row.ExpiresAt,
		Consumed:  row.Consumed,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (r *UserRepository) ConsumePasswordReset(ctx context.Context, token string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE password_resets SET consumed = 1 WHERE token = ? AND consumed = 0;", token)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrInvalidToken
	}
	return nil
}

func mapUserRow(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
