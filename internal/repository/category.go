package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/budget-tracker/backend/internal/models"
)

type CategoryRepository struct {
	db *pgxpool.Pool
}

// NewCategoryRepository создает реестр категорий.
func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create регистрирует метку категории для вида записей. Метки уникальны
// внутри своего вида; повтор дает ErrConflict.
func (r *CategoryRepository) Create(ctx context.Context, accountID uuid.UUID, kind models.EntryKind, label string) (models.Category, error) {
	var category models.Category

	err := r.db.QueryRow(ctx,
		`INSERT INTO categories (id, account_id, kind, label)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, account_id, kind, label, position, created_at`,
		uuid.New(), accountID, kind, label,
	).Scan(&category.ID, &category.AccountID, &category.Kind, &category.Label, &category.Position, &category.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return category, ErrConflict
			case pgForeignKeyViolation:
				return category, ErrNotFound
			}
		}
		return category, err
	}

	return category, nil
}

// ListByKind возвращает метки вида в порядке регистрации.
func (r *CategoryRepository) ListByKind(ctx context.Context, accountID uuid.UUID, kind models.EntryKind) ([]models.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, account_id, kind, label, position, created_at
		 FROM categories
		 WHERE account_id = $1 AND kind = $2
		 ORDER BY position`,
		accountID, kind,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var category models.Category
		err := rows.Scan(&category.ID, &category.AccountID, &category.Kind, &category.Label, &category.Position, &category.CreatedAt)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
