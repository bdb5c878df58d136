package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/budget-tracker/backend/internal/models"
)

type EntryRepository struct {
	db *pgxpool.Pool
}

// NewEntryRepository создает репозиторий записей журнала.
func NewEntryRepository(db *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{db: db}
}

const entryColumns = `id, account_id, kind, description, amount_cents, entry_date, category, position, created_at`

func scanEntry(row pgx.Row) (models.LedgerEntry, error) {
	var entry models.LedgerEntry
	err := row.Scan(&entry.ID, &entry.AccountID, &entry.Kind, &entry.Description,
		&entry.AmountCents, &entry.EntryDate, &entry.Category, &entry.Position, &entry.CreatedAt)
	return entry, err
}

// Create добавляет запись дохода или расхода в журнал счета.
func (r *EntryRepository) Create(ctx context.Context, accountID uuid.UUID, kind models.EntryKind, description string, amountCents int64, entryDate time.Time, category string) (models.LedgerEntry, error) {
	var entry models.LedgerEntry

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entry, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := ensureAccount(ctx, tx, accountID); err != nil {
		return entry, err
	}

	entry, err = scanEntry(tx.QueryRow(ctx,
		`INSERT INTO ledger_entries (id, account_id, kind, description, amount_cents, entry_date, category)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+entryColumns,
		uuid.New(), accountID, kind, description, amountCents, entryDate, category,
	))
	if err != nil {
		return entry, err
	}

	if err := tx.Commit(ctx); err != nil {
		return entry, err
	}

	return entry, nil
}

// Delete удаляет запись по идентификатору. Отсутствие записи — ErrNotFound;
// повторное удаление наблюдаемое состояние не меняет.
func (r *EntryRepository) Delete(ctx context.Context, accountID, entryID uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM ledger_entries
		 WHERE id = $1 AND account_id = $2`,
		entryID, accountID,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// ListByKind возвращает записи одного вида в порядке добавления.
func (r *EntryRepository) ListByKind(ctx context.Context, accountID uuid.UUID, kind models.EntryKind) ([]models.LedgerEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+entryColumns+`
		 FROM ledger_entries
		 WHERE account_id = $1 AND kind = $2
		 ORDER BY position`,
		accountID, kind,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEntries(rows)
}

// ListAll возвращает все записи счета в порядке добавления. Снимок для
// агрегатора: суммы и лента считаются поверх него чистыми функциями.
func (r *EntryRepository) ListAll(ctx context.Context, accountID uuid.UUID) ([]models.LedgerEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+entryColumns+`
		 FROM ledger_entries
		 WHERE account_id = $1
		 ORDER BY position`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]models.LedgerEntry, error) {
	entries := make([]models.LedgerEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func ensureAccount(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) error {
	var exists bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`,
		accountID,
	).Scan(&exists)
	if err != nil {
		return err
	}

	if !exists {
		return ErrNotFound
	}

	return nil
}
