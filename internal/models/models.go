package models

import (
	"time"

	"github.com/google/uuid"
)

type EntryKind string

type Frequency string

type SubscriptionStatus string

type TransactionKind string

const (
	EntryKindIncome  EntryKind = "income"
	EntryKindExpense EntryKind = "expense"

	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"

	SubscriptionStatusActive           SubscriptionStatus = "active"
	SubscriptionStatusConfirmingCancel SubscriptionStatus = "confirming_cancel"

	TransactionKindDeposit  TransactionKind = "deposit"
	TransactionKindWithdraw TransactionKind = "withdraw"
)

// SupportedCurrencies перечисляет допустимые коды валют накопительного счета.
// Смена валюты — только смена метки, без пересчета сумм.
var SupportedCurrencies = []string{"USD", "EUR", "GBP"}

type User struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type LedgerEntry struct {
	ID          uuid.UUID `json:"id"`
	AccountID   uuid.UUID `json:"account_id"`
	Kind        EntryKind `json:"kind"`
	Description string    `json:"description"`
	AmountCents int64     `json:"amount_cents"`
	EntryDate   time.Time `json:"entry_date"`
	Category    string    `json:"category,omitempty"`
	Position    int64     `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// Subscription — повторяющийся расход поверх записи журнала.
// ID совпадает с идентификатором записи расхода, поэтому отмена подписки
// удаляет и саму запись из журнала.
type Subscription struct {
	ID          uuid.UUID          `json:"id"`
	AccountID   uuid.UUID          `json:"account_id"`
	Description string             `json:"description"`
	AmountCents int64              `json:"amount_cents"`
	EntryDate   time.Time          `json:"entry_date"`
	PaymentType string             `json:"payment_type"`
	Frequency   Frequency          `json:"frequency"`
	Status      SubscriptionStatus `json:"status"`
	Position    int64              `json:"-"`
	CreatedAt   time.Time          `json:"created_at"`
}

type Category struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	Kind      EntryKind `json:"kind"`
	Label     string    `json:"label"`
	Position  int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type SavingsAccount struct {
	AccountID uuid.UUID `json:"account_id"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SavingsTransaction struct {
	ID          uuid.UUID       `json:"id"`
	AccountID   uuid.UUID       `json:"account_id"`
	Kind        TransactionKind `json:"kind"`
	AmountCents int64           `json:"amount_cents"`
	TxDate      time.Time       `json:"tx_date"`
	Position    int64           `json:"-"`
	CreatedAt   time.Time       `json:"created_at"`
}

type WishlistItem struct {
	ID          uuid.UUID `json:"id"`
	AccountID   uuid.UUID `json:"account_id"`
	Description string    `json:"description"`
	Purchased   bool      `json:"purchased"`
	Position    int64     `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
