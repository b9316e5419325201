package ws

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// Handler upgrades HTTP requests to WebSocket connections and keeps them
// registered with the hub for the connection's lifetime.
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHandler creates a WebSocket upgrade handler feeding the given hub.
func NewHandler(hub *Hub, logger *slog.Logger) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Tracking pages are served from app webviews with varying
			// origins; events carry no secrets beyond what the order API
			// already exposes.
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		logger: logger.With("component", "ws_handler"),
	}
}

// ServeHTTP upgrades the request and blocks reading the connection until the
// client goes away. Inbound frames are drained and discarded; the tracking
// channel is push only.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	h.hub.Register(conn)
	defer func() {
		h.hub.Unregister(conn)
		_ = conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
