package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/budget-tracker/backend/internal/models"
)

type WishlistRepository struct {
	db *pgxpool.Pool
}

// NewWishlistRepository создает репозиторий списка желаний.
func NewWishlistRepository(db *pgxpool.Pool) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// Create добавляет позицию в список желаний.
func (r *WishlistRepository) Create(ctx context.Context, accountID uuid.UUID, description string) (models.WishlistItem, error) {
	var item models.WishlistItem

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return item, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := ensureAccount(ctx, tx, accountID); err != nil {
		return item, err
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO wishlist_items (id, account_id, description)
		 VALUES ($1, $2, $3)
		 RETURNING id, account_id, description, purchased, position, created_at`,
		uuid.New(), accountID, description,
	).Scan(&item.ID, &item.AccountID, &item.Description, &item.Purchased, &item.Position, &item.CreatedAt)
	if err != nil {
		return item, err
	}

	if err := tx.Commit(ctx); err != nil {
		return item, err
	}

	return item, nil
}

// List возвращает список желаний в порядке добавления.
func (r *WishlistRepository) List(ctx context.Context, accountID uuid.UUID) ([]models.WishlistItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, account_id, description, purchased, position, created_at
		 FROM wishlist_items
		 WHERE account_id = $1
		 ORDER BY position`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.WishlistItem, 0)
	for rows.Next() {
		var item models.WishlistItem
		err := rows.Scan(&item.ID, &item.AccountID, &item.Description, &item.Purchased, &item.Position, &item.CreatedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// TogglePurchased переключает отметку о покупке.
func (r *WishlistRepository) TogglePurchased(ctx context.Context, accountID, itemID uuid.UUID) (models.WishlistItem, error) {
	var item models.WishlistItem

	err := r.db.QueryRow(ctx,
		`UPDATE wishlist_items
		 SET purchased = NOT purchased
		 WHERE id = $1 AND account_id = $2
		 RETURNING id, account_id, description, purchased, position, created_at`,
		itemID, accountID,
	).Scan(&item.ID, &item.AccountID, &item.Description, &item.Purchased, &item.Position, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return item, ErrNotFound
		}
		return item, err
	}

	return item, nil
}

// Delete удаляет позицию по идентификатору.
func (r *WishlistRepository) Delete(ctx context.Context, accountID, itemID uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM wishlist_items
		 WHERE id = $1 AND account_id = $2`,
		itemID, accountID,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
