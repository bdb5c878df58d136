package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/budget-tracker/backend/internal/models"
)

type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository создает репозиторий пользователей.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create создает пользователя. Дубликат имени или email дает ErrConflict.
func (r *UserRepository) Create(ctx context.Context, username, email, passwordHash string) (models.User, error) {
	var user models.User

	err := r.db.QueryRow(ctx,
		`INSERT INTO users (id, username, email, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, username, email, password_hash, email_verified, created_at, updated_at`,
		uuid.New(), username, email, passwordHash,
	).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.EmailVerified, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return user, ErrConflict
		}
		return user, err
	}

	return user, nil
}

// GetByID возвращает пользователя по идентификатору.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	var user models.User

	err := r.db.QueryRow(ctx,
		`SELECT id, username, email, password_hash, email_verified, created_at, updated_at
		 FROM users
		 WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.EmailVerified, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user, ErrNotFound
		}
		return user, err
	}

	return user, nil
}

// Exists проверяет наличие счета с заданным идентификатором.
func (r *UserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// MarkVerified помечает email пользователя подтвержденным.
func (r *UserRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE users
		 SET email_verified = TRUE,
		     updated_at = NOW()
		 WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
