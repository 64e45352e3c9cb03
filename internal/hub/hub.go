package hub

import (
	"log"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Event types published after a successful game mutation.
const (
	EventGameAdded   = "game.added"
	EventGameUpdated = "game.updated"
	EventGameDeleted = "game.deleted"
)

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Publisher is implemented by anything that can fan out events.
type Publisher interface {
	Publish(event Event)
}

// Client represents a single subscriber connection.
// It's essentially a channel that the SSE handler will listen to.
type Client chan []byte

// Hub fans game events out to all subscribed clients.
type Hub struct {
	clients map[Client]bool
	mu      sync.RWMutex
}

var _ Publisher = (*Hub)(nil)

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[Client]bool),
	}
}

// Subscribe registers a new client with room for buffer pending messages.
func (h *Hub) Subscribe(buffer int) Client {
	client := make(Client, buffer)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
	return client
}

// Unsubscribe removes a client and closes its channel.
func (h *Hub) Unsubscribe(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client) // Close the channel to signal the SSE handler to stop.
	}
}

// Len returns the number of subscribed clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish sends an event to every subscribed client.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.clients) == 0 {
		return
	}

	messageBytes, err := json.Marshal(event)
	if err != nil {
		log.Printf("hub: failed to encode %s event: %v", event.Type, err)
		return
	}

	for client := range h.clients {
		// Use a non-blocking send to prevent a slow client from blocking the hub.
		select {
		case client <- messageBytes:
		default:
			// Client is full; it misses this event.
		}
	}
}
