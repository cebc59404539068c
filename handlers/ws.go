// handlers/ws.go
package handlers

import (
	"ideahub/middleware"
	"ideahub/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade gates /ws/notifications: only proper upgrade
// requests with a valid token proceed to the websocket handler.
func WebSocketUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	userID, err := middleware.UserIDFromToken(c.Query("token"))
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid token"})
	}

	c.Locals("wsUserID", userID)
	return c.Next()
}

// NotificationSocket holds a connection open and streams achievement
// unlock events pushed through the hub. The read loop exists only to
// detect the client going away.
var NotificationSocket = websocket.New(func(conn *websocket.Conn) {
	userID, ok := conn.Locals("wsUserID").(uint)
	if !ok {
		conn.Close()
		return
	}

	hub := services.GetHub()
	hub.Register(userID, conn)
	defer hub.Unregister(userID, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
})
