package notifications

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const streamBuffer = 10

// Event — событие изменения счета, доставляемое открытым SSE-потокам.
type Event struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// Hub раздает события по подписчикам счета. Несколько открытых вкладок
// одного счета получают события независимо.
type Hub struct {
	mu      sync.RWMutex
	streams map[uuid.UUID]map[chan Event]struct{}
}

// NewHub создает хаб для SSE-подписок.
func NewHub() *Hub {
	return &Hub{
		streams: make(map[uuid.UUID]map[chan Event]struct{}),
	}
}

// Subscribe подписывает счет на события и возвращает канал и функцию отписки.
func (h *Hub) Subscribe(accountID uuid.UUID) (<-chan Event, func()) {
	ch := make(chan Event, streamBuffer)

	h.mu.Lock()
	defer h.mu.Unlock()

	accountStreams, ok := h.streams[accountID]
	if !ok {
		accountStreams = make(map[chan Event]struct{})
		h.streams[accountID] = accountStreams
	}
	accountStreams[ch] = struct{}{}

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if streams, exists := h.streams[accountID]; exists {
			delete(streams, ch)
			if len(streams) == 0 {
				delete(h.streams, accountID)
			}
		}
		close(ch)
	}
}

// Publish отправляет событие всем подписчикам счета. Медленный подписчик
// с заполненным буфером событие пропускает, остальных не тормозит.
func (h *Hub) Publish(accountID uuid.UUID, event Event) {
	event.Timestamp = time.Now().UTC()

	h.mu.RLock()
	defer h.mu.RUnlock()

	streams, ok := h.streams[accountID]
	if !ok {
		return
	}

	for ch := range streams {
		select {
		case ch <- event:
		default:
		}
	}
}
