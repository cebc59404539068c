// services/hub.go - WebSocket notification hub
package services

import (
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
)

// Hub fans notification payloads out to a user's open WebSocket
// connections. Push is best-effort: a dead connection is dropped, never
// retried, and a user with no connections is a silent no-op.
type Hub struct {
	mu    sync.Mutex
	conns map[uint]map[*websocket.Conn]bool
}

var notificationHub = &Hub{
	conns: make(map[uint]map[*websocket.Conn]bool),
}

// GetHub returns the shared notification hub.
func GetHub() *Hub {
	return notificationHub
}

// Register adds a connection for a user.
func (h *Hub) Register(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.conns[userID] == nil {
		h.conns[userID] = make(map[*websocket.Conn]bool)
	}
	h.conns[userID][conn] = true
}

// Unregister removes a connection for a user.
func (h *Hub) Unregister(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if set, ok := h.conns[userID]; ok {
		delete(set, conn)
		if len(set) == 0 {
			delete(h.conns, userID)
		}
	}
}

// Push writes a JSON payload to every open connection of the user.
func (h *Hub) Push(userID uint, payload interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns[userID] {
		if err := conn.WriteJSON(payload); err != nil {
			log.Printf("Dropping dead websocket for user %d: %v", userID, err)
			conn.Close()
			delete(h.conns[userID], conn)
		}
	}
}
