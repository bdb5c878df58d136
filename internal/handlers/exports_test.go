package handlers

import (
	"strings"
	"testing"
	"time"

	"example.com/budget-tracker/backend/internal/models"
)

// TestEntriesCSV проверяет заголовок и строки экспортируемого файла.
func TestEntriesCSV(t *testing.T) {
	entries := []models.LedgerEntry{
		{
			Kind:        models.EntryKindIncome,
			Description: "Salary",
			AmountCents: 400000,
			EntryDate:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			Category:    "salary",
		},
		{
			Kind:        models.EntryKindExpense,
			Description: "Rent, April",
			AmountCents: 150000,
			EntryDate:   time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	data, err := entriesCSV(entries)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Kind,Description,Amount,Date,Category" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if lines[1] != "income,Salary,4000.00,2024-04-01,salary" {
		t.Fatalf("unexpected income row: %s", lines[1])
	}
	if lines[2] != `expense,"Rent, April",1500.00,2024-04-02,` {
		t.Fatalf("unexpected expense row: %s", lines[2])
	}
}

// TestEntriesCSVEmpty проверяет экспорт пустого журнала.
func TestEntriesCSVEmpty(t *testing.T) {
	data, err := entriesCSV(nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if strings.TrimSpace(string(data)) != "Kind,Description,Amount,Date,Category" {
		t.Fatalf("expected header only, got %q", string(data))
	}
}
