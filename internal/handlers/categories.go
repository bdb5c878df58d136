package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"example.com/budget-tracker/backend/internal/models"
	"example.com/budget-tracker/backend/internal/repository"
)

type CategoryHandler struct {
	Categories *repository.CategoryRepository
}

// NewCategoryHandler создает обработчик реестра категорий.
func NewCategoryHandler(categories *repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{Categories: categories}
}

type CategoryRequest struct {
	Kind  string `json:"kind" validate:"required,oneof=income expense"`
	Label string `json:"label" validate:"required"`
}

// Create регистрирует метку категории. Пустая метка отклоняется,
// повторная в пределах вида дает конфликт.
func (h *CategoryHandler) Create(c echo.Context) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "missing required fields")
	}

	label := strings.TrimSpace(req.Label)
	if label == "" {
		return badRequest(c, "label is required")
	}

	category, err := h.Categories.Create(c.Request().Context(), accountID, models.EntryKind(req.Kind), label)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrConflict):
			return conflict(c, "category already exists")
		case errors.Is(err, repository.ErrNotFound):
			return notFound(c, "account not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, category)
}

// List возвращает метки категорий одного вида.
func (h *CategoryHandler) List(c echo.Context) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	kind := c.QueryParam("kind")
	if kind != string(models.EntryKindIncome) && kind != string(models.EntryKindExpense) {
		return badRequest(c, "kind must be income or expense")
	}

	categories, err := h.Categories.ListByKind(c.Request().Context(), accountID, models.EntryKind(kind))
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, categories)
}
