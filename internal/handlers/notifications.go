package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/budget-tracker/backend/internal/notifications"
)

type NotificationHandler struct {
	Hub *notifications.Hub
}

// NewNotificationHandler создает обработчик SSE-потока событий.
func NewNotificationHandler(hub *notifications.Hub) *NotificationHandler {
	return &NotificationHandler{Hub: hub}
}

// Stream держит открытое SSE-соединение и пишет в него события счета,
// пока клиент не отключится.
func (h *NotificationHandler) Stream(c echo.Context) error {
	accountID, err := accountIDFromPath(c)
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	events, unsubscribe := h.Hub.Subscribe(accountID)
	defer unsubscribe()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}

			payload, err := json.Marshal(event)
			if err != nil {
				continue
			}

			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
