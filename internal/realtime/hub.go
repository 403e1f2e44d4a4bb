// Package realtime fans wall activity out to connected websocket
// clients. Services publish through the ports.Notifier interface; the
// websocket handler subscribes per user.
package realtime

import (
	"sync"
	"time"

	"github.com/userdash/dashboard-backend/internal/domain/entities"
	"github.com/userdash/dashboard-backend/internal/domain/ports"
)

// Event is one wall activity item pushed to subscribers.
type Event struct {
	Kind        string    `json:"kind"` // "message" or "comment"
	ID          string    `json:"id"`
	MessageID   string    `json:"message_id"`
	SenderID    string    `json:"sender_id"`
	SenderName  string    `json:"sender_name,omitempty"`
	ReceiverID  string    `json:"receiver_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Hub implements ports.Notifier. Subscribers are keyed by the receiving
// user; publishing never blocks the request that triggered it.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
	logger      ports.Logger
}

// NewHub creates an empty hub.
func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a listener for events addressed to userID. The
// returned cancel func must be called when the client disconnects.
func (h *Hub) Subscribe(userID string) (<-chan Event, func()) {
	ch := make(chan Event, 16)

	h.mu.Lock()
	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[chan Event]struct{})
	}
	h.subscribers[userID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if subs, ok := h.subscribers[userID]; ok {
			delete(subs, ch)
			if len(subs) == 0 {
				delete(h.subscribers, userID)
			}
		}
		h.mu.Unlock()
		close(ch)
	}
	return ch, cancel
}

// MessageCreated pushes a new wall message to the receiver's listeners.
func (h *Hub) MessageCreated(message *entities.Message) {
	event := Event{
		Kind:        "message",
		ID:          message.ID,
		MessageID:   message.ID,
		SenderID:    message.SenderID,
		ReceiverID:  message.ReceiverID,
		Description: message.Description,
		CreatedAt:   message.CreatedAt,
	}
	if message.Sender != nil {
		event.SenderName = message.Sender.FullName()
	}
	h.publish(message.ReceiverID, event)
}

// CommentCreated pushes a new comment to the wall owner's listeners.
func (h *Hub) CommentCreated(comment *entities.Comment) {
	event := Event{
		Kind:        "comment",
		ID:          comment.ID,
		MessageID:   comment.MessageID,
		SenderID:    comment.SenderID,
		ReceiverID:  comment.ReceiverID,
		Description: comment.Description,
		CreatedAt:   comment.CreatedAt,
	}
	if comment.Sender != nil {
		event.SenderName = comment.Sender.FullName()
	}
	h.publish(comment.ReceiverID, event)
}

func (h *Hub) publish(userID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers[userID] {
		select {
		case ch <- event:
		default:
			// Slow consumer; drop rather than stall the request.
			h.logger.Warn("realtime event dropped", "user_id", userID, "kind", event.Kind)
		}
	}
}
