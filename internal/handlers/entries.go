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

type EntryHandler struct {
	Entries *repository.EntryRepository
	Hub     *notifications.Hub
}

// NewEntryHandler создает обработчик записей журнала.
func NewEntryHandler(entries *repository.EntryRepository, hub *notifications.Hub) *EntryHandler {
	return &EntryHandler{Entries: entries, Hub: hub}
}

type EntryRequest struct {
	Kind        string `json:"kind" validate:"required,oneof=income expense"`
	Description string `json:"description" validate:"required"`
	Amount      string `json:"amount" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Category    string `json:"category"`
}

// Create добавляет запись дохода или расхода в журнал счета.
func (h *EntryHandler) Create(c echo.Context) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	var req EntryRequest
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

	entry, err := h.Entries.Create(c.Request().Context(), accountID,
		models.EntryKind(req.Kind), description, amountCents, entryDate, strings.TrimSpace(req.Category))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "account not found")
		}
		return serverError(c)
	}

	publishLedgerUpdate(h.Hub, accountID, entry)

	return c.JSON(http.StatusCreated, entry)
}

// List возвращает записи счета, опционально по одному виду.
func (h *EntryHandler) List(c echo.Context) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	kind := c.QueryParam("kind")

	var entries []models.LedgerEntry
	switch kind {
	case "":
		entries, err = h.Entries.ListAll(c.Request().Context(), accountID)
	case string(models.EntryKindIncome), string(models.EntryKindExpense):
		entries, err = h.Entries.ListByKind(c.Request().Context(), accountID, models.EntryKind(kind))
	default:
		return badRequest(c, "kind must be income or expense")
	}
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, entries)
}

// Delete удаляет запись журнала по идентификатору.
func (h *EntryHandler) Delete(c echo.Context) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid entry id")
	}

	if err := h.Entries.Delete(c.Request().Context(), accountID, entryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "entry not found")
		}
		return serverError(c)
	}

	publishLedgerUpdate(h.Hub, accountID, nil)

	return c.NoContent(http.StatusNoContent)
}

func publishLedgerUpdate(hub *notifications.Hub, accountID uuid.UUID, data interface{}) {
	publishEvent(hub, accountID, "ledger_updated", data)
}

func publishEvent(hub *notifications.Hub, accountID uuid.UUID, eventType string, data interface{}) {
	if hub == nil {
		return
	}
	hub.Publish(accountID, notifications.Event{Type: eventType, Data: data})
}
