// Package relay is an example host adapter for the core's frame output
// boundary. It is not part of the core: it implements the scanline hook
// by hashing each line, batching a frame, skipping the broadcast of frames
// in which no line changed, compressing the rest whole, and pushing the
// result to every subscriber of a websocket hub. There is no client roster and no input-event relay --
// just a single unauthenticated broadcast stream.
package relay

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024 * 4,
	WriteBufferSize: 1024 * 16,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans a stream of broadcast messages out to every connected websocket
// client.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}

	broadcast  chan []byte
	register   chan *client
	unregister chan *client
}

// NewHub returns an unstarted Hub. Call Run to start its event loop, and
// Handler to obtain the http.HandlerFunc that upgrades incoming
// connections.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]struct{}),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *client),
		unregister: make(chan *client),
	}
}

// Handler upgrades an incoming HTTP request to a websocket connection and
// registers the resulting client with the hub.
func (h *Hub) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		c := newClient(h, conn)
		h.register <- c
		go c.writePump()
		go c.readPump()
	}
}

// Run drives the hub's registration and broadcast loop. It has no stop
// signal and never returns, so call it from its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			h.mu.Unlock()
		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
		case msg := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// slow client: drop rather than block the frame loop.
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues msg for delivery to every currently connected client.
// It never blocks on a slow or absent client.
func (h *Hub) Broadcast(msg []byte) {
	select {
	case h.broadcast <- msg:
	default:
		// hub loop backed up; drop this frame rather than stall the core.
	}
}
