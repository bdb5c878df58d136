package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	chart "github.com/wcharczuk/go-chart/v2"

	"example.com/budget-tracker/backend/internal/ledger"
	"example.com/budget-tracker/backend/internal/repository"
)

type StatsHandler struct {
	Entries *repository.EntryRepository
	Stats   *repository.StatsRepository
}

// NewStatsHandler создает обработчик агрегатов журнала.
func NewStatsHandler(entries *repository.EntryRepository, stats *repository.StatsRepository) *StatsHandler {
	return &StatsHandler{Entries: entries, Stats: stats}
}

type OverviewResponse struct {
	IncomeCents  int64  `json:"income_cents"`
	ExpenseCents int64  `json:"expense_cents"`
	BalanceCents int64  `json:"balance_cents"`
	Income       string `json:"income"`
	Expense      string `json:"expense"`
	Balance      string `json:"balance"`
}

// Overview возвращает суммарные доходы, расходы и баланс счета.
// Суммы считаются по снимку журнала, а не хранятся отдельно.
func (h *StatsHandler) Overview(c echo.Context) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	entries, err := h.Entries.ListAll(c.Request().Context(), accountID)
	if err != nil {
		return serverError(c)
	}

	totals := ledger.ComputeTotals(entries)

	return c.JSON(http.StatusOK, OverviewResponse{
		IncomeCents:  totals.IncomeCents,
		ExpenseCents: totals.ExpenseCents,
		BalanceCents: totals.BalanceCents(),
		Income:       ledger.FormatCents(totals.IncomeCents),
		Expense:      ledger.FormatCents(totals.ExpenseCents),
		Balance:      ledger.FormatCents(totals.BalanceCents()),
	})
}

// Recent возвращает объединенную ленту транзакций по дате по убыванию.
// Параметр limit ограничивает длину ленты.
func (h *StatsHandler) Recent(c echo.Context) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	entries, err := h.Entries.ListAll(c.Request().Context(), accountID)
	if err != nil {
		return serverError(c)
	}

	feed := ledger.RecentTransactions(entries)

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return badRequest(c, "limit must be a positive integer")
		}
		if limit < len(feed) {
			feed = feed[:limit]
		}
	}

	return c.JSON(http.StatusOK, feed)
}

type CategorySpendResponse struct {
	Category   string `json:"category"`
	SpentCents int64  `json:"spent_cents"`
	Spent      string `json:"spent"`
}

// SpendingByCategory возвращает расходы, сгруппированные по категориям.
func (h *StatsHandler) SpendingByCategory(c echo.Context) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	spending, err := h.Stats.ExpensesByCategory(c.Request().Context(), accountID)
	if err != nil {
		return serverError(c)
	}

	response := make([]CategorySpendResponse, 0, len(spending))
	for _, row := range spending {
		response = append(response, CategorySpendResponse{
			Category:   row.Category,
			SpentCents: row.SpentCents,
			Spent:      ledger.FormatCents(row.SpentCents),
		})
	}

	return c.JSON(http.StatusOK, response)
}

// ExpensesChart отдает круговую диаграмму расходов по категориям как PNG.
func (h *StatsHandler) ExpensesChart(c echo.Context) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	spending, err := h.Stats.ExpensesByCategory(c.Request().Context(), accountID)
	if err != nil {
		return serverError(c)
	}
	if len(spending) == 0 {
		return notFound(c, "no expenses recorded")
	}

	values := make([]chart.Value, 0, len(spending))
	for _, row := range spending {
		values = append(values, chart.Value{
			Value: float64(row.SpentCents) / 100,
			Label: fmt.Sprintf("%s (%s)", row.Category, ledger.FormatCents(row.SpentCents)),
		})
	}

	pie := chart.PieChart{
		Width:  512,
		Height: 512,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return serverError(c)
	}

	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}
