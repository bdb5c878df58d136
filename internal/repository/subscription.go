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

type SubscriptionRepository struct {
	db *pgxpool.Pool
}

// NewSubscriptionRepository создает репозиторий подписок.
func NewSubscriptionRepository(db *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

const subscriptionSelect = `
	SELECT e.id, e.account_id, e.description, e.amount_cents, e.entry_date,
	       s.payment_type, s.frequency, s.status, e.position, e.created_at
	FROM subscriptions s
	JOIN ledger_entries e ON e.id = s.entry_id`

func scanSubscription(row pgx.Row) (models.Subscription, error) {
	var sub models.Subscription
	err := row.Scan(&sub.ID, &sub.AccountID, &sub.Description, &sub.AmountCents,
		&sub.EntryDate, &sub.PaymentType, &sub.Frequency, &sub.Status, &sub.Position, &sub.CreatedAt)
	return sub, err
}

// Create добавляет подписку: запись расхода в журнал и строку подписки
// в одной транзакции, чтобы подписка без записи существовать не могла.
func (r *SubscriptionRepository) Create(ctx context.Context, accountID uuid.UUID, description string, amountCents int64, entryDate time.Time, paymentType string, frequency models.Frequency) (models.Subscription, error) {
	var sub models.Subscription

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return sub, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := ensureAccount(ctx, tx, accountID); err != nil {
		return sub, err
	}

	entryID := uuid.New()
	_, err = tx.Exec(ctx,
		`INSERT INTO ledger_entries (id, account_id, kind, description, amount_cents, entry_date, category)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entryID, accountID, models.EntryKindExpense, description, amountCents, entryDate, "subscription",
	)
	if err != nil {
		return sub, err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO subscriptions (entry_id, payment_type, frequency, status)
		 VALUES ($1, $2, $3, $4)`,
		entryID, paymentType, frequency, models.SubscriptionStatusActive,
	)
	if err != nil {
		return sub, err
	}

	sub, err = scanSubscription(tx.QueryRow(ctx,
		subscriptionSelect+` WHERE e.id = $1`,
		entryID,
	))
	if err != nil {
		return sub, err
	}

	if err := tx.Commit(ctx); err != nil {
		return sub, err
	}

	return sub, nil
}

// List возвращает подписки счета в порядке добавления.
func (r *SubscriptionRepository) List(ctx context.Context, accountID uuid.UUID) ([]models.Subscription, error) {
	rows, err := r.db.Query(ctx,
		subscriptionSelect+`
		 WHERE e.account_id = $1
		 ORDER BY e.position`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := make([]models.Subscription, 0)
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subs, nil
}

// GetByID возвращает подписку по идентификатору записи.
func (r *SubscriptionRepository) GetByID(ctx context.Context, accountID, subscriptionID uuid.UUID) (models.Subscription, error) {
	sub, err := scanSubscription(r.db.QueryRow(ctx,
		subscriptionSelect+` WHERE e.id = $1 AND e.account_id = $2`,
		subscriptionID, accountID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sub, ErrNotFound
		}
		return sub, err
	}

	return sub, nil
}

// SetStatus переводит подписку между состояниями active и confirming_cancel.
func (r *SubscriptionRepository) SetStatus(ctx context.Context, accountID, subscriptionID uuid.UUID, status models.SubscriptionStatus) (models.Subscription, error) {
	var sub models.Subscription

	cmd, err := r.db.Exec(ctx,
		`UPDATE subscriptions s
		 SET status = $3
		 FROM ledger_entries e
		 WHERE s.entry_id = $1
		   AND e.id = s.entry_id
		   AND e.account_id = $2`,
		subscriptionID, accountID, status,
	)
	if err != nil {
		return sub, err
	}

	if cmd.RowsAffected() == 0 {
		return sub, ErrNotFound
	}

	return r.GetByID(ctx, accountID, subscriptionID)
}

// Cancel удаляет подписку по идентификатору. Удаление сквозное: уходит
// запись расхода из журнала, строка подписки каскадируется. Защита от
// случайного удаления: подписка должна быть в состоянии confirming_cancel,
// иначе возвращается ErrInvalid.
func (r *SubscriptionRepository) Cancel(ctx context.Context, accountID, subscriptionID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var status models.SubscriptionStatus
	err = tx.QueryRow(ctx,
		`SELECT s.status
		 FROM subscriptions s
		 JOIN ledger_entries e ON e.id = s.entry_id
		 WHERE s.entry_id = $1 AND e.account_id = $2
		 FOR UPDATE OF s`,
		subscriptionID, accountID,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if status != models.SubscriptionStatusConfirmingCancel {
		return ErrInvalid
	}

	cmd, err := tx.Exec(ctx,
		`DELETE FROM ledger_entries
		 WHERE id = $1 AND account_id = $2`,
		subscriptionID, accountID,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(ctx)
}
