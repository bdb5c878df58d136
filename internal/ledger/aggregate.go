// Package ledger содержит чистую доменную логику журнала бюджета:
// разбор сумм, агрегаты, ленту транзакций, накопительный счет и
// календарный экспорт подписок. Пакет не трогает ни базу, ни сеть —
// все функции работают над снимками, которые им передали.
package ledger

import (
	"sort"
	"time"

	"example.com/budget-tracker/backend/internal/models"
)

// Totals — производные суммы по текущему снимку журнала.
type Totals struct {
	IncomeCents  int64
	ExpenseCents int64
}

// BalanceCents возвращает баланс: доходы минус расходы.
func (t Totals) BalanceCents() int64 {
	return t.IncomeCents - t.ExpenseCents
}

// SumCents складывает суммы записей одного вида.
func SumCents(entries []models.LedgerEntry) int64 {
	var total int64
	for _, entry := range entries {
		total += entry.AmountCents
	}
	return total
}

// ComputeTotals считает доходы и расходы за один проход по снимку.
// Записи чужого вида на счетчик другого вида не влияют.
func ComputeTotals(entries []models.LedgerEntry) Totals {
	var totals Totals
	for _, entry := range entries {
		switch entry.Kind {
		case models.EntryKindIncome:
			totals.IncomeCents += entry.AmountCents
		case models.EntryKindExpense:
			totals.ExpenseCents += entry.AmountCents
		}
	}
	return totals
}

// RecentTransactions возвращает объединенную ленту доходов и расходов,
// отсортированную по дате по убыванию. Для записей с одинаковой датой
// сохраняется порядок добавления — сортировка стабильная, лента
// детерминирована.
func RecentTransactions(entries []models.LedgerEntry) []models.LedgerEntry {
	feed := make([]models.LedgerEntry, len(entries))
	copy(feed, entries)

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].EntryDate.After(feed[j].EntryDate)
	})

	return feed
}

// FilterByDate возвращает подписки, дата которых точно равна заданной
// (строковое сравнение по формату 2006-01-02, не по календарному месяцу).
// Пустая дата означает отсутствие фильтра: возвращается весь список.
func FilterByDate(subs []models.Subscription, date string) []models.Subscription {
	if date == "" {
		return subs
	}

	filtered := make([]models.Subscription, 0, len(subs))
	for _, sub := range subs {
		if sub.EntryDate.Format(dateLayout) == date {
			filtered = append(filtered, sub)
		}
	}

	return filtered
}

// SubscriptionTotalCents складывает суммы по отфильтрованному списку подписок.
func SubscriptionTotalCents(subs []models.Subscription) int64 {
	var total int64
	for _, sub := range subs {
		total += sub.AmountCents
	}
	return total
}

const dateLayout = "2006-01-02"

// ParseEntryDate разбирает дату записи из текстового поля формы.
func ParseEntryDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, ErrEmptyField
	}

	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return parsed, nil
}
