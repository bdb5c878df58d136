package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/budget-tracker/backend/internal/models"
)

type StatsRepository struct {
	db *pgxpool.Pool
}

// CategorySpend — суммарные расходы по одной метке категории.
type CategorySpend struct {
	Category   string
	SpentCents int64
}

// NewStatsRepository создает репозиторий статистики.
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// ExpensesByCategory группирует расходы счета по меткам категорий.
// Записи без метки попадают в группу uncategorized. Источник данных для
// круговой диаграммы расходов.
func (r *StatsRepository) ExpensesByCategory(ctx context.Context, accountID uuid.UUID) ([]CategorySpend, error) {
	rows, err := r.db.Query(ctx,
		`SELECT COALESCE(NULLIF(category, ''), 'uncategorized') AS label,
		        COALESCE(SUM(amount_cents), 0) AS spent_cents
		 FROM ledger_entries
		 WHERE account_id = $1 AND kind = $2
		 GROUP BY label
		 ORDER BY spent_cents DESC, label`,
		accountID, models.EntryKindExpense,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	spending := make([]CategorySpend, 0)
	for rows.Next() {
		var row CategorySpend
		if err := rows.Scan(&row.Category, &row.SpentCents); err != nil {
			return nil, err
		}
		spending = append(spending, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return spending, nil
}
