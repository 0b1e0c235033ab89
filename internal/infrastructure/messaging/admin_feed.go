package messaging

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	"github.com/gorilla/websocket"
)

// AdminFeedClient represents a single connected back-office dashboard client.
type AdminFeedClient struct {
	Conn *websocket.Conn
	Send chan []byte
}

// AdminFeed pushes every catalog change to connected admin dashboards over
// websocket, so open editor screens refresh without polling.
type AdminFeed struct {
	clients    map[*AdminFeedClient]bool
	register   chan *AdminFeedClient
	unregister chan *AdminFeedClient
	bus        ChangeSubscriber
	logger     *logging.ChanneledLogger
	mu         sync.RWMutex
}

func NewAdminFeed(bus ChangeSubscriber, logger *logging.ChanneledLogger) *AdminFeed {
	return &AdminFeed{
		clients:    make(map[*AdminFeedClient]bool),
		register:   make(chan *AdminFeedClient),
		unregister: make(chan *AdminFeedClient),
		bus:        bus,
		logger:     logger,
	}
}

// Run starts the feed's main loop. This should be run as a goroutine.
func (f *AdminFeed) Run() {
	changes, cancel := f.bus.Subscribe(WildcardTable)
	defer cancel()

	for {
		select {
		case client := <-f.register:
			f.mu.Lock()
			f.clients[client] = true
			count := len(f.clients)
			f.mu.Unlock()
			f.logger.SSE().Info("Admin feed client registered", "active", count)

		case client := <-f.unregister:
			f.mu.Lock()
			if _, ok := f.clients[client]; ok {
				delete(f.clients, client)
				close(client.Send)
			}
			count := len(f.clients)
			f.mu.Unlock()
			f.logger.SSE().Info("Admin feed client unregistered", "active", count)

		case change, ok := <-changes:
			if !ok {
				return
			}
			f.broadcast(change)
		}
	}
}

// Register queues a client for registration.
func (f *AdminFeed) Register(client *AdminFeedClient) {
	f.register <- client
}

// Unregister queues a client for unregistration.
func (f *AdminFeed) Unregister(client *AdminFeedClient) {
	f.unregister <- client
}

func (f *AdminFeed) broadcast(change Change) {
	payload, err := json.Marshal(change)
	if err != nil {
		f.logger.SSE().Error("Failed to marshal change for admin feed", "error", err.Error())
		return
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	for client := range f.clients {
		select {
		case client.Send <- payload:
		default:
			f.logger.SSE().Warn("Admin feed client send buffer full, message dropped")
		}
	}
}

// WritePump drains a client's send channel onto its websocket connection.
// Run one per connection; it exits when the send channel closes.
func (f *AdminFeed) WritePump(client *AdminFeedClient) {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case payload, ok := <-client.Send:
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ReadPump consumes (and discards) inbound frames so pings and close frames
// are processed, unregistering the client when the connection drops.
func (f *AdminFeed) ReadPump(client *AdminFeedClient) {
	defer func() {
		f.Unregister(client)
		client.Conn.Close()
	}()

	client.Conn.SetReadLimit(512)
	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
