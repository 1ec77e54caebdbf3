package feed

import (
	"sync"
	"time"

	"heiwahouse/internal/domain"

	"github.com/gorilla/websocket"
)

// Event is a booking change pushed to connected admin dashboards.
type Event struct {
	Type      string    `json:"type"`
	BookingID int64     `json:"booking_id"`
	Reference string    `json:"reference"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	At        time.Time `json:"at"`
}

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// client wraps a connection with a write lock: gorilla/websocket allows at
// most one concurrent writer per connection, and broadcasts fire from
// whatever request goroutine created the booking.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (cl *client) writeJSON(v interface{}) error {
	cl.writeMu.Lock()
	defer cl.writeMu.Unlock()
	return cl.conn.WriteJSON(v)
}

// Hub tracks one websocket connection per signed-in admin and fans booking
// events out to all of them. Satisfies booking.FeedNotifier.
type Hub struct {
	clients map[int64]*client
	mutex   sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[int64]*client),
	}
}

func (h *Hub) Register(adminID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.clients[adminID]; exists && old != nil {
		_ = old.conn.Close()
	}

	h.clients[adminID] = &client{conn: conn}
}

func (h *Hub) Unregister(adminID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if cl, exists := h.clients[adminID]; exists && cl != nil {
		_ = cl.conn.Close()
		delete(h.clients, adminID)
	}
}

func (h *Hub) Broadcast(event Event) {
	h.mutex.RLock()
	clients := make(map[int64]*client, len(h.clients))
	for id, cl := range h.clients {
		clients[id] = cl
	}
	h.mutex.RUnlock()

	for id, cl := range clients {
		if err := cl.writeJSON(event); err != nil {
			h.Unregister(id)
		}
	}
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.clients)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, cl := range h.clients {
		if cl != nil {
			_ = cl.conn.Close()
		}
		delete(h.clients, id)
	}
}

func (h *Hub) NotifyBookingCreated(b *domain.Booking) {
	h.Broadcast(Event{
		Type:      EventBookingCreated,
		BookingID: b.ID,
		Reference: b.Reference,
		Status:    string(b.Status),
		Total:     b.Total,
		At:        time.Now().UTC(),
	})
}

func (h *Hub) NotifyBookingCancelled(b *domain.Booking) {
	h.Broadcast(Event{
		Type:      EventBookingCancelled,
		BookingID: b.ID,
		Reference: b.Reference,
		Status:    string(b.Status),
		Total:     b.Total,
		At:        time.Now().UTC(),
	})
}
