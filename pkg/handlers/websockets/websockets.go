package websockets

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/chris/pooled-savings/pkg/middleware"
	"github.com/chris/pooled-savings/pkg/websockets"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Handler upgrades requests to a live event feed for the calling user.
type Handler struct {
	hub    *websockets.Hub
	logger *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(hub *websockets.Hub, logger *slog.Logger) *Handler {
	return &Handler{hub: hub, logger: logger}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Browsers cannot set custom headers on the handshake; the gateway
		// in front of the service owns origin and identity checks.
		return true
	},
}

// userID reads the caller from the identity header, falling back to the
// user_id query parameter for browser clients.
func userID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(middleware.UserHeader)); id != "" {
		return id
	}
	return strings.TrimSpace(r.URL.Query().Get("user_id"))
}

// ServeHTTP holds the connection open until the client goes away.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		http.Error(w, "missing user", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		h.logger.Warn("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	connectionID := uuid.New().String()
	h.hub.Add(user, connectionID, conn)
	h.logger.Info("client connected", "connection_id", connectionID, "user_id", user)
	defer func() {
		h.hub.Remove(user, connectionID)
		h.logger.Info("client disconnected", "connection_id", connectionID, "user_id", user)
	}()

	// Clients never send anything; reading is how a close is noticed.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("unexpected close", "connection_id", connectionID, "error", err)
			}
			return
		}
	}
}
