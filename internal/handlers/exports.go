package handlers

import (
	"bytes"
	"encoding/csv"
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/budget-tracker/backend/internal/ledger"
	"example.com/budget-tracker/backend/internal/models"
	"example.com/budget-tracker/backend/internal/repository"
)

type ExportHandler struct {
	Entries *repository.EntryRepository
}

// NewExportHandler создает обработчик экспорта журнала.
func NewExportHandler(entries *repository.EntryRepository) *ExportHandler {
	return &ExportHandler{Entries: entries}
}

// EntriesCSV отдает журнал счета файлом CSV.
func (h *ExportHandler) EntriesCSV(c echo.Context) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	entries, err := h.Entries.ListAll(c.Request().Context(), accountID)
	if err != nil {
		return serverError(c)
	}

	data, err := entriesCSV(entries)
	if err != nil {
		return serverError(c)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="entries.csv"`)
	return c.Blob(http.StatusOK, "text/csv", data)
}

func entriesCSV(entries []models.LedgerEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Kind", "Description", "Amount", "Date", "Category"}); err != nil {
		return nil, err
	}

	for _, entry := range entries {
		record := []string{
			string(entry.Kind),
			entry.Description,
			ledger.FormatCents(entry.AmountCents),
			entry.EntryDate.Format("2006-01-02"),
			entry.Category,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
