package services

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // admin dashboard is served from the same origin in production
	},
}

// Client represents a connected admin dashboard
type Client struct {
	AdminID uint
	Email   string
	Conn    *websocket.Conn
	Send    chan []byte
	Hub     *Hub
}

// Hub maintains the set of connected admin dashboards and pushes
// booking lifecycle events to them.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	mutex      sync.RWMutex
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
	}
}

// Run starts the hub
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			log.Printf("Admin %d connected to booking feed", client.AdminID)

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mutex.Unlock()
			log.Printf("Admin %d disconnected from booking feed", client.AdminID)

		case message := <-h.broadcast:
			h.mutex.RLock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.mutex.RUnlock()
		}
	}
}

// GetConnectedClients returns the number of connected dashboards
func (h *Hub) GetConnectedClients() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// WebSocket message types
type WebSocketMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// BookingEvent is the payload pushed to dashboards when a booking is
// created or allotted.
type BookingEvent struct {
	BookingID string `json:"bookingId"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phone"`
	CarType   string `json:"carType"`
	Status    string `json:"status"`
}

// BroadcastBookingEvent pushes a booking lifecycle event to every
// connected dashboard. Safe to call from request goroutines.
func (h *Hub) BroadcastBookingEvent(eventType string, booking *models.Booking) {
	message := WebSocketMessage{
		Type: eventType,
		Data: BookingEvent{
			BookingID: booking.BookingID,
			FullName:  booking.FullName,
			Phone:     booking.Phone,
			CarType:   booking.CarType,
			Status:    string(booking.Status),
		},
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("Failed to marshal booking event: %v", err)
		return
	}

	h.broadcast <- data
}

// HandleWebSocket upgrades an admin request and subscribes it to the feed
func HandleWebSocket(hub *Hub, w http.ResponseWriter, r *http.Request, adminID uint, email string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := &Client{
		AdminID: adminID,
		Email:   email,
		Conn:    conn,
		Send:    make(chan []byte, 256),
		Hub:     hub,
	}

	hub.register <- client

	go client.writePump()
	go client.readPump()
}

func (c *Client) writePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	// The feed is one-way; reads only service control frames and detect
	// the peer going away.
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
