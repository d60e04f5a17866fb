package websocket

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// Handler upgrades HTTP requests to websocket connections and hands them
// to the hub.
type Handler struct {
	hub      *Hub
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates a new websocket upgrade handler. The dashboard is
// served from the same origin, so cross-origin upgrades are rejected
// unless allowAllOrigins is set (development mode).
func NewHandler(hub *Hub, logger *slog.Logger, allowAllOrigins bool) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	if allowAllOrigins {
		upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}

	return &Handler{
		hub:      hub,
		logger:   logger.With(slog.String("component", "websocket.handler")),
		upgrader: upgrader,
	}
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed",
			slog.String("error", err.Error()),
			slog.String("remote_addr", r.RemoteAddr))
		return
	}

	ServeWS(h.hub, conn, h.logger)
}
