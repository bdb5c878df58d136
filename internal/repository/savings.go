package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/budget-tracker/backend/internal/models"
)

type SavingsRepository struct {
	db *pgxpool.Pool
}

// NewSavingsRepository создает репозиторий накопительного счета.
func NewSavingsRepository(db *pgxpool.Pool) *SavingsRepository {
	return &SavingsRepository{db: db}
}

// EnsureAccount возвращает накопительный счет, создавая его при первом
// обращении с валютой по умолчанию.
func (r *SavingsRepository) EnsureAccount(ctx context.Context, accountID uuid.UUID) (models.SavingsAccount, error) {
	var account models.SavingsAccount

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return account, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := ensureAccount(ctx, tx, accountID); err != nil {
		return account, err
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO savings_accounts (account_id)
		 VALUES ($1)
		 ON CONFLICT (account_id) DO UPDATE SET account_id = EXCLUDED.account_id
		 RETURNING account_id, currency, created_at, updated_at`,
		accountID,
	).Scan(&account.AccountID, &account.Currency, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return account, err
	}

	if err := tx.Commit(ctx); err != nil {
		return account, err
	}

	return account, nil
}

// SetCurrency меняет метку валюты счета. Суммы истории не пересчитываются.
func (r *SavingsRepository) SetCurrency(ctx context.Context, accountID uuid.UUID, currency string) (models.SavingsAccount, error) {
	var account models.SavingsAccount

	err := r.db.QueryRow(ctx,
		`UPDATE savings_accounts
		 SET currency = $2,
		     updated_at = NOW()
		 WHERE account_id = $1
		 RETURNING account_id, currency, created_at, updated_at`,
		accountID, currency,
	).Scan(&account.AccountID, &account.Currency, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account, ErrNotFound
		}
		return account, err
	}

	return account, nil
}

// AddTransaction дописывает операцию в историю счета.
func (r *SavingsRepository) AddTransaction(ctx context.Context, accountID uuid.UUID, kind models.TransactionKind, amountCents int64, txDate time.Time) (models.SavingsTransaction, error) {
	var savingsTx models.SavingsTransaction

	err := r.db.QueryRow(ctx,
		`INSERT INTO savings_transactions (id, account_id, kind, amount_cents, tx_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, account_id, kind, amount_cents, tx_date, position, created_at`,
		uuid.New(), accountID, kind, amountCents, txDate,
	).Scan(&savingsTx.ID, &savingsTx.AccountID, &savingsTx.Kind, &savingsTx.AmountCents,
		&savingsTx.TxDate, &savingsTx.Position, &savingsTx.CreatedAt)
	if err != nil {
		return savingsTx, err
	}

	return savingsTx, nil
}

// ListTransactions возвращает историю операций в порядке добавления.
func (r *SavingsRepository) ListTransactions(ctx context.Context, accountID uuid.UUID) ([]models.SavingsTransaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, account_id, kind, amount_cents, tx_date, position, created_at
		 FROM savings_transactions
		 WHERE account_id = $1
		 ORDER BY position`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]models.SavingsTransaction, 0)
	for rows.Next() {
		var savingsTx models.SavingsTransaction
		err := rows.Scan(&savingsTx.ID, &savingsTx.AccountID, &savingsTx.Kind, &savingsTx.AmountCents,
			&savingsTx.TxDate, &savingsTx.Position, &savingsTx.CreatedAt)
		if err != nil {
			return nil, err
		}
		history = append(history, savingsTx)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
