package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/budget-tracker/backend/internal/ledger"
	"example.com/budget-tracker/backend/internal/models"
	"example.com/budget-tracker/backend/internal/notifications"
	"example.com/budget-tracker/backend/internal/repository"
)

type SavingsHandler struct {
	Savings *repository.SavingsRepository
	Hub     *notifications.Hub
}

// NewSavingsHandler создает обработчик накопительного счета.
func NewSavingsHandler(savings *repository.SavingsRepository, hub *notifications.Hub) *SavingsHandler {
	return &SavingsHandler{Savings: savings, Hub: hub}
}

type SavingsResponse struct {
	Account      models.SavingsAccount       `json:"account"`
	BalanceCents int64                       `json:"balance_cents"`
	Balance      string                      `json:"balance"`
	History      []models.SavingsTransaction `json:"history"`
}

// Дата операции опциональна: без нее берется текущая дата.
type SavingsTransactionRequest struct {
	Amount string `json:"amount" validate:"required"`
	Date   string `json:"date"`
}

type CurrencyRequest struct {
	Currency string `json:"currency" validate:"required"`
}

// Get возвращает накопительный счет с балансом, воспроизведенным из
// истории операций. Счет создается при первом обращении.
func (h *SavingsHandler) Get(c echo.Context) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	account, err := h.Savings.EnsureAccount(c.Request().Context(), accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "account not found")
		}
		return serverError(c)
	}

	return h.respond(c, http.StatusOK, account)
}

// Deposit дописывает пополнение в историю счета.
func (h *SavingsHandler) Deposit(c echo.Context) error {
	return h.addTransaction(c, models.TransactionKindDeposit)
}

// Withdraw дописывает снятие в историю счета. Снятие сверх остатка
// не блокируется.
func (h *SavingsHandler) Withdraw(c echo.Context) error {
	return h.addTransaction(c, models.TransactionKindWithdraw)
}

func (h *SavingsHandler) addTransaction(c echo.Context, kind models.TransactionKind) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	var req SavingsTransactionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "missing required fields")
	}

	amountCents, err := ledger.ParseAmountCents(req.Amount)
	if err != nil {
		return badRequest(c, "amount must be a positive number")
	}

	txDate := time.Now().UTC()
	if req.Date != "" {
		txDate, err = ledger.ParseEntryDate(req.Date)
		if err != nil {
			return badRequest(c, "date must be in YYYY-MM-DD format")
		}
	}

	account, err := h.Savings.EnsureAccount(c.Request().Context(), accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "account not found")
		}
		return serverError(c)
	}

	if _, err := h.Savings.AddTransaction(c.Request().Context(), accountID, kind, amountCents, txDate); err != nil {
		return serverError(c)
	}

	publishEvent(h.Hub, accountID, "savings_updated", nil)

	return h.respond(c, http.StatusCreated, account)
}

// SetCurrency меняет метку валюты счета. Суммы в истории остаются как есть.
func (h *SavingsHandler) SetCurrency(c echo.Context) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	var req CurrencyRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "missing required fields")
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if err := ledger.ValidateCurrency(currency); err != nil {
		return badRequest(c, "currency must be one of USD, EUR, GBP")
	}

	if _, err := h.Savings.EnsureAccount(c.Request().Context(), accountID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "account not found")
		}
		return serverError(c)
	}

	account, err := h.Savings.SetCurrency(c.Request().Context(), accountID, currency)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "savings account not found")
		}
		return serverError(c)
	}

	publishEvent(h.Hub, accountID, "savings_updated", nil)

	return h.respond(c, http.StatusOK, account)
}

func (h *SavingsHandler) respond(c echo.Context, status int, account models.SavingsAccount) error {
	history, err := h.Savings.ListTransactions(c.Request().Context(), account.AccountID)
	if err != nil {
		return serverError(c)
	}

	balance := ledger.ReplayBalance(0, history)

	return c.JSON(status, SavingsResponse{
		Account:      account,
		BalanceCents: balance,
		Balance:      ledger.FormatCents(balance),
		History:      history,
	})
}
