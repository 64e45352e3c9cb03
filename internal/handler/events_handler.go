package handler

import (
	"gamereviews/backend/internal/hub"

	"github.com/gin-gonic/gin"
)

const eventBuffer = 16

// Events godoc
// @Summary      Stream game events
// @Description  Server-Sent Events stream of game.added, game.updated and game.deleted events.
// @Tags         events
// @Produce      text/event-stream
// @Success      200 {object} hub.Event
// @Router       /events [get]
func Events(h *hub.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		client := h.Subscribe(eventBuffer)
		defer h.Unsubscribe(client)

		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Writer.Flush()

		for {
			select {
			case <-c.Request.Context().Done():
				return
			case message, ok := <-client:
				if !ok {
					return
				}
				c.SSEvent("game", string(message))
				c.Writer.Flush()
			}
		}
	}
}
