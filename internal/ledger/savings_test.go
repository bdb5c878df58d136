package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"example.com/budget-tracker/backend/internal/models"
)

func savingsTx(kind models.TransactionKind, cents int64) models.SavingsTransaction {
	return models.SavingsTransaction{
		ID:          uuid.New(),
		Kind:        kind,
		AmountCents: cents,
		TxDate:      time.Now(),
	}
}

// TestReplayBalance проверяет инвариант: баланс равен начальному значению
// плюс пополнения минус снятия.
func TestReplayBalance(t *testing.T) {
	history := []models.SavingsTransaction{
		savingsTx(models.TransactionKindDeposit, 10000),
		savingsTx(models.TransactionKindWithdraw, 2500),
		savingsTx(models.TransactionKindDeposit, 500),
	}

	if got := ReplayBalance(0, history); got != 8000 {
		t.Fatalf("expected balance 8000, got %d", got)
	}

	if got := ReplayBalance(1000, history); got != 9000 {
		t.Fatalf("expected balance 9000 with initial 1000, got %d", got)
	}
}

// TestReplayBalanceEmpty проверяет баланс без истории.
func TestReplayBalanceEmpty(t *testing.T) {
	if got := ReplayBalance(4200, nil); got != 4200 {
		t.Fatalf("expected initial balance 4200, got %d", got)
	}
}

// TestReplayBalanceOverdraft проверяет, что снятие сверх остатка уводит
// баланс в минус, а не отклоняется.
func TestReplayBalanceOverdraft(t *testing.T) {
	history := []models.SavingsTransaction{
		savingsTx(models.TransactionKindWithdraw, 500),
	}

	if got := ReplayBalance(0, history); got != -500 {
		t.Fatalf("expected balance -500, got %d", got)
	}
}

// TestValidateCurrency проверяет фиксированный набор валют.
func TestValidateCurrency(t *testing.T) {
	for _, code := range []string{"USD", "EUR", "GBP"} {
		if err := ValidateCurrency(code); err != nil {
			t.Fatalf("expected %s to be supported, got %v", code, err)
		}
	}

	if err := ValidateCurrency("JPY"); err == nil {
		t.Fatal("expected error for unsupported currency")
	}
}
