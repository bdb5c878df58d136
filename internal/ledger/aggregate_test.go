package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"example.com/budget-tracker/backend/internal/models"
)

func entry(kind models.EntryKind, description string, cents int64, date string, position int64) models.LedgerEntry {
	parsed, _ := time.Parse("2006-01-02", date)
	return models.LedgerEntry{
		ID:          uuid.New(),
		Kind:        kind,
		Description: description,
		AmountCents: cents,
		EntryDate:   parsed,
		Position:    position,
	}
}

// TestComputeTotals проверяет сценарий: зарплата 4000, аренда 1500.
func TestComputeTotals(t *testing.T) {
	entries := []models.LedgerEntry{
		entry(models.EntryKindIncome, "Salary", 400000, "2024-03-01", 1),
		entry(models.EntryKindExpense, "Rent", 150000, "2024-03-01", 2),
	}

	totals := ComputeTotals(entries)
	if totals.IncomeCents != 400000 {
		t.Fatalf("expected income 400000, got %d", totals.IncomeCents)
	}
	if totals.ExpenseCents != 150000 {
		t.Fatalf("expected expenses 150000, got %d", totals.ExpenseCents)
	}
	if totals.BalanceCents() != 250000 {
		t.Fatalf("expected balance 250000, got %d", totals.BalanceCents())
	}
}

// TestComputeTotalsKindsIndependent проверяет, что расходы не влияют на
// сумму доходов и наоборот.
func TestComputeTotalsKindsIndependent(t *testing.T) {
	entries := []models.LedgerEntry{
		entry(models.EntryKindIncome, "Salary", 100000, "2024-01-01", 1),
	}

	before := ComputeTotals(entries).IncomeCents

	entries = append(entries,
		entry(models.EntryKindExpense, "Groceries", 5000, "2024-01-02", 2),
		entry(models.EntryKindExpense, "Transport", 3000, "2024-01-03", 3),
	)

	totals := ComputeTotals(entries)
	if totals.IncomeCents != before {
		t.Fatalf("expected income unchanged at %d, got %d", before, totals.IncomeCents)
	}
	if totals.ExpenseCents != 8000 {
		t.Fatalf("expected expenses 8000, got %d", totals.ExpenseCents)
	}
}

// TestComputeTotalsEmpty проверяет агрегаты на пустом журнале.
func TestComputeTotalsEmpty(t *testing.T) {
	totals := ComputeTotals(nil)
	if totals.IncomeCents != 0 || totals.ExpenseCents != 0 || totals.BalanceCents() != 0 {
		t.Fatalf("expected zero totals, got %+v", totals)
	}
}

// TestRecentTransactionsOrder проверяет сортировку по дате по убыванию
// и сохранение порядка добавления при равных датах.
func TestRecentTransactionsOrder(t *testing.T) {
	entries := []models.LedgerEntry{
		entry(models.EntryKindIncome, "first", 100, "2024-03-01", 1),
		entry(models.EntryKindExpense, "newer", 200, "2024-04-01", 2),
		entry(models.EntryKindExpense, "second", 300, "2024-03-01", 3),
	}

	feed := RecentTransactions(entries)
	if len(feed) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(feed))
	}

	if feed[0].Description != "newer" {
		t.Fatalf("expected newest first, got %s", feed[0].Description)
	}
	if feed[1].Description != "first" || feed[2].Description != "second" {
		t.Fatalf("expected stable order for equal dates, got %s then %s", feed[1].Description, feed[2].Description)
	}
}

// TestRecentTransactionsDoesNotMutate проверяет, что исходный снимок
// не переупорядочивается.
func TestRecentTransactionsDoesNotMutate(t *testing.T) {
	entries := []models.LedgerEntry{
		entry(models.EntryKindIncome, "old", 100, "2023-01-01", 1),
		entry(models.EntryKindIncome, "new", 200, "2024-01-01", 2),
	}

	_ = RecentTransactions(entries)

	if entries[0].Description != "old" {
		t.Fatalf("expected source snapshot untouched, got %s first", entries[0].Description)
	}
}

func subscription(description string, cents int64, date string, frequency models.Frequency) models.Subscription {
	parsed, _ := time.Parse("2006-01-02", date)
	return models.Subscription{
		ID:          uuid.New(),
		Description: description,
		AmountCents: cents,
		EntryDate:   parsed,
		PaymentType: "Credit Card",
		Frequency:   frequency,
		Status:      models.SubscriptionStatusActive,
	}
}

// TestFilterByDate проверяет точное совпадение даты при фильтрации.
func TestFilterByDate(t *testing.T) {
	subs := []models.Subscription{
		subscription("Streaming", 1500, "2024-04-01", models.FrequencyMonthly),
		subscription("Hosting", 500, "2024-04-15", models.FrequencyYearly),
	}

	filtered := FilterByDate(subs, "2024-04-01")
	if len(filtered) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(filtered))
	}
	if filtered[0].Description != "Streaming" {
		t.Fatalf("expected Streaming, got %s", filtered[0].Description)
	}
}

// TestFilterByDateEmpty проверяет, что пустая дата возвращает весь список.
func TestFilterByDateEmpty(t *testing.T) {
	subs := []models.Subscription{
		subscription("Streaming", 1500, "2024-04-01", models.FrequencyMonthly),
		subscription("Hosting", 500, "2024-04-15", models.FrequencyYearly),
	}

	if got := FilterByDate(subs, ""); len(got) != len(subs) {
		t.Fatalf("expected full list, got %d of %d", len(got), len(subs))
	}
}

// TestSubscriptionTotalCents проверяет сумму по отфильтрованному списку.
func TestSubscriptionTotalCents(t *testing.T) {
	subs := []models.Subscription{
		subscription("Streaming", 1500, "2024-04-01", models.FrequencyMonthly),
		subscription("Music", 999, "2024-04-01", models.FrequencyMonthly),
	}

	if got := SubscriptionTotalCents(subs); got != 2499 {
		t.Fatalf("expected total 2499, got %d", got)
	}
}

// TestParseEntryDate проверяет разбор даты и отклонение мусора.
func TestParseEntryDate(t *testing.T) {
	parsed, err := ParseEntryDate("2024-03-01")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.Format("2006-01-02") != "2024-03-01" {
		t.Fatalf("unexpected date: %s", parsed)
	}

	if _, err := ParseEntryDate(""); err == nil {
		t.Fatal("expected error for empty date")
	}
	if _, err := ParseEntryDate("01/03/2024"); err == nil {
		t.Fatal("expected error for wrong format")
	}
}
