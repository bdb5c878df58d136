package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/budget-tracker/backend/internal/ledger"
	"example.com/budget-tracker/backend/internal/models"
	"example.com/budget-tracker/backend/internal/notifications"
	"example.com/budget-tracker/backend/internal/repository"
)

type SubscriptionHandler struct {
	Subscriptions *repository.SubscriptionRepository
	Hub           *notifications.Hub
}

// NewSubscriptionHandler создает обработчик подписок.
func NewSubscriptionHandler(subscriptions *repository.SubscriptionRepository, hub *notifications.Hub) *SubscriptionHandler {
	return &SubscriptionHandler{Subscriptions: subscriptions, Hub: hub}
}

type SubscriptionRequest struct {
	Description string `json:"description" validate:"required"`
	Amount      string `json:"amount" validate:"required"`
	Date        string `json:"date" validate:"required"`
	PaymentType string `json:"payment_type" validate:"required"`
	Frequency   string `json:"frequency" validate:"required,oneof=monthly yearly"`
}

type SubscriptionListResponse struct {
	Subscriptions []models.Subscription `json:"subscriptions"`
	TotalCents    int64                 `json:"total_cents"`
	Total         string                `json:"total"`
}

// Create добавляет подписку: расход в журнале плюс атрибуты подписки.
func (h *SubscriptionHandler) Create(c echo.Context) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	var req SubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "missing required fields")
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return badRequest(c, "description is required")
	}

	amountCents, err := ledger.ParseAmountCents(req.Amount)
	if err != nil {
		return badRequest(c, "amount must be a positive number")
	}

	entryDate, err := ledger.ParseEntryDate(req.Date)
	if err != nil {
		return badRequest(c, "date must be in YYYY-MM-DD format")
	}

	sub, err := h.Subscriptions.Create(c.Request().Context(), accountID,
		description, amountCents, entryDate, strings.TrimSpace(req.PaymentType), models.Frequency(req.Frequency))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "account not found")
		}
		return serverError(c)
	}

	publishLedgerUpdate(h.Hub, accountID, sub)

	return c.JSON(http.StatusCreated, sub)
}

// List возвращает подписки счета с суммой по списку. Параметр date
// оставляет только подписки с точно совпадающей датой платежа.
func (h *SubscriptionHandler) List(c echo.Context) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	date := c.QueryParam("date")
	if date != "" {
		if _, err := ledger.ParseEntryDate(date); err != nil {
			return badRequest(c, "date must be in YYYY-MM-DD format")
		}
	}

	subs, err := h.Subscriptions.List(c.Request().Context(), accountID)
	if err != nil {
		return serverError(c)
	}

	filtered := ledger.FilterByDate(subs, date)
	totalCents := ledger.SubscriptionTotalCents(filtered)

	return c.JSON(http.StatusOK, SubscriptionListResponse{
		Subscriptions: filtered,
		TotalCents:    totalCents,
		Total:         ledger.FormatCents(totalCents),
	})
}

// RequestCancel переводит подписку в состояние подтверждения отмены.
// Само удаление происходит отдельным запросом после подтверждения.
func (h *SubscriptionHandler) RequestCancel(c echo.Context) error {
	return h.setStatus(c, models.SubscriptionStatusConfirmingCancel)
}

// Keep возвращает подписку из состояния подтверждения в активное.
func (h *SubscriptionHandler) Keep(c echo.Context) error {
	return h.setStatus(c, models.SubscriptionStatusActive)
}

func (h *SubscriptionHandler) setStatus(c echo.Context, status models.SubscriptionStatus) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	subscriptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid subscription id")
	}

	sub, err := h.Subscriptions.SetStatus(c.Request().Context(), accountID, subscriptionID, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "subscription not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, sub)
}

// Delete удаляет подписку вместе с ее записью расхода. Требует, чтобы
// отмена была предварительно подтверждена, иначе отвечает конфликтом.
func (h *SubscriptionHandler) Delete(c echo.Context) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	subscriptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid subscription id")
	}

	if err := h.Subscriptions.Cancel(c.Request().Context(), accountID, subscriptionID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return notFound(c, "subscription not found")
		case errors.Is(err, repository.ErrInvalid):
			return conflict(c, "cancellation is not confirmed")
		}
		return serverError(c)
	}

	publishEvent(h.Hub, accountID, "subscription_cancelled", nil)

	return c.NoContent(http.StatusNoContent)
}

type CalendarResponse struct {
	Event ledger.CalendarEvent `json:"event"`
	URL   string               `json:"url"`
}

// Calendar собирает событие внешнего календаря для платежа подписки.
func (h *SubscriptionHandler) Calendar(c echo.Context) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	subscriptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid subscription id")
	}

	sub, err := h.Subscriptions.GetByID(c.Request().Context(), accountID, subscriptionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "subscription not found")
		}
		return serverError(c)
	}

	event := ledger.BuildCalendarExport(sub)

	return c.JSON(http.StatusOK, CalendarResponse{
		Event: event,
		URL:   event.RenderURL(),
	})
}
