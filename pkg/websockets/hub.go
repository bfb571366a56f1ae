// Package websockets pushes notify events to the live connections of each
// user, so an open client sees level ups and pool activity as they happen.
package websockets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/chris/pooled-savings/pkg/notify"
	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

// client serializes writes; a websocket connection allows one writer at a time.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) send(event notify.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return c.conn.WriteJSON(event)
}

// Hub tracks connections by user and implements notify.Publisher.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[string]*client
	logger  *slog.Logger
}

// NewHub creates an empty Hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{clients: make(map[string]map[string]*client), logger: logger}
}

var _ notify.Publisher = (*Hub)(nil)

// Add registers a connection for userID.
func (h *Hub) Add(userID, connectionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[string]*client)
	}
	h.clients[userID][connectionID] = &client{conn: conn}
}

// Remove forgets a connection. It does not close it.
func (h *Hub) Remove(userID, connectionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients[userID], connectionID)
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
	}
}

// Connections returns how many connections userID has open.
func (h *Hub) Connections(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Publish sends the event to every connection of its user. Connections
// that fail to take the write are closed and dropped.
func (h *Hub) Publish(ctx context.Context, event notify.Event) error {
	h.mu.RLock()
	targets := make(map[string]*client, len(h.clients[event.UserID]))
	for id, c := range h.clients[event.UserID] {
		targets[id] = c
	}
	h.mu.RUnlock()

	var errs []error
	for id, c := range targets {
		if err := c.send(event); err != nil {
			h.logger.InfoContext(ctx, "dropping stale connection", "connection_id", id, "user_id", event.UserID, "error", err)
			h.Remove(event.UserID, id)
			_ = c.conn.Close()
			errs = append(errs, fmt.Errorf("connection %s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}
