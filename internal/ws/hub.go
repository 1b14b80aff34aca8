package ws

import (
	"encoding/json"
	"log"

	"github.com/brewpos/terminal/internal/orders"
)

// Event is a WebSocket message pushed to connected dashboards.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub maintains the set of connected dashboard clients and fans events out
// to them. A single terminal has one room; everyone sees every event.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

// NewHub creates a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
	}
}

// Run starts the hub's main loop.
// This should be called as a goroutine: go hub.Run()
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Client's send buffer is full, close and drop it.
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// OrderEvent pushes an online-order lifecycle event to every connected
// client. Satisfies orders.Broadcaster. Queues without blocking the caller.
func (h *Hub) OrderEvent(eventType string, order orders.Order) {
	payload, err := json.Marshal(order)
	if err != nil {
		log.Printf("ERROR: marshal %s event: %v", eventType, err)
		return
	}
	message, err := json.Marshal(Event{Type: eventType, Payload: payload})
	if err != nil {
		log.Printf("ERROR: marshal %s envelope: %v", eventType, err)
		return
	}

	select {
	case h.broadcast <- message:
	default:
		log.Printf("ERROR: ws broadcast buffer full, dropping %s event", eventType)
	}
}
