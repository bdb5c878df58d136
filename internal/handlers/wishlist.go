package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/budget-tracker/backend/internal/repository"
)

type WishlistHandler struct {
	Wishlist *repository.WishlistRepository
}

// NewWishlistHandler создает обработчик списка желаний.
func NewWishlistHandler(wishlist *repository.WishlistRepository) *WishlistHandler {
	return &WishlistHandler{Wishlist: wishlist}
}

type WishlistRequest struct {
	Description string `json:"description" validate:"required"`
}

// Create добавляет позицию в список желаний.
func (h *WishlistHandler) Create(c echo.Context) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	var req WishlistRequest
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

	item, err := h.Wishlist.Create(c.Request().Context(), accountID, description)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "account not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, item)
}

// List возвращает список желаний в порядке добавления.
func (h *WishlistHandler) List(c echo.Context) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	items, err := h.Wishlist.List(c.Request().Context(), accountID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, items)
}

// Toggle переключает отметку о покупке позиции.
func (h *WishlistHandler) Toggle(c echo.Context) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid item id")
	}

	item, err := h.Wishlist.TogglePurchased(c.Request().Context(), accountID, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "item not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, item)
}

// Delete удаляет позицию из списка желаний.
func (h *WishlistHandler) Delete(c echo.Context) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid item id")
	}

	if err := h.Wishlist.Delete(c.Request().Context(), accountID, itemID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "item not found")
		}
		return serverError(c)
	}

	return c.NoContent(http.StatusNoContent)
}
