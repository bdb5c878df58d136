package ledger

import (
	"example.com/budget-tracker/backend/internal/models"
)

// ReplayBalance воспроизводит баланс накопительного счета из истории.
// Баланс нигде не хранится отдельно: он всегда равен начальному значению
// плюс сумма пополнений минус сумма снятий, поэтому разойтись с историей
// не может. Снятие сверх остатка не блокируется — баланс может уйти в минус.
func ReplayBalance(initialCents int64, history []models.SavingsTransaction) int64 {
	balance := initialCents
	for _, tx := range history {
		switch tx.Kind {
		case models.TransactionKindDeposit:
			balance += tx.AmountCents
		case models.TransactionKindWithdraw:
			balance -= tx.AmountCents
		}
	}
	return balance
}

// ValidateCurrency проверяет, что код валюты входит в фиксированный набор.
func ValidateCurrency(code string) error {
	for _, supported := range models.SupportedCurrencies {
		if code == supported {
			return nil
		}
	}
	return ErrInvalidCurrency
}
