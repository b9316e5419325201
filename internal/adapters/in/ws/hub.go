// Package ws provides the live order-tracking WebSocket surface. A single hub
// fans status and driver-update events out to every connected client; there is
// no per-order subscription, clients filter on order_id themselves.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// Connection is the transport a subscriber listens on. *gorilla/websocket.Conn
// satisfies it; tests substitute in-memory fakes.
type Connection interface {
	// WriteJSON marshals v and sends it as a single text frame.
	WriteJSON(v interface{}) error

	// Close tears the connection down.
	Close() error
}

// Hub is an in-process EventBroadcaster pushing events to live WebSocket
// subscribers. Connections that fail a write are dropped and closed; a dead
// phone in a pocket must not stall everyone else's updates.
type Hub struct {
	mu          sync.Mutex
	connections map[Connection]struct{}
	logger      *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		connections: make(map[Connection]struct{}),
		logger:      logger.With("component", "ws_hub"),
	}
}

// Register adds a subscriber to the fan-out set.
func (h *Hub) Register(conn Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.connections[conn] = struct{}{}
	h.logger.Debug("subscriber registered", "subscribers", len(h.connections))
}

// Unregister removes a subscriber from the fan-out set. Safe to call for
// connections that were already dropped.
func (h *Hub) Unregister(conn Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.connections, conn)
	h.logger.Debug("subscriber unregistered", "subscribers", len(h.connections))
}

// Broadcast sends event to every live subscriber. The event is validated as
// JSON once up front; per-connection write failures prune the connection and
// never fail the broadcast.
func (h *Hub) Broadcast(_ context.Context, event any) error {
	if _, err := json.Marshal(event); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.connections {
		if err := conn.WriteJSON(event); err != nil {
			h.logger.Warn("dropping dead subscriber", "error", err)
			delete(h.connections, conn)
			_ = conn.Close()
		}
	}

	return nil
}

// SubscriberCount returns the number of live subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.connections)
}
