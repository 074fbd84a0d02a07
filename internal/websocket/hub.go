// internal/websocket/hub.go
package websocket

import (
	"context"
	"errors"
	"sync"

	"mehndi-service/internal/domain/booking"
	"mehndi-service/internal/domain/contact"
	wstypes "mehndi-service/internal/domain/websocket"
	"mehndi-service/internal/notify"

	"go.uber.org/zap"
)

var ErrHubClosed = errors.New("live feed is shut down")

// Hub fans booking and contact events out to the admins watching the live
// feed. It also satisfies notify.Notifier.
type Hub struct {
	// Registered clients by admin ID
	clients map[string]map[*Client]bool
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client
	broadcast  chan *BroadcastMessage
	done       chan struct{}
	closeOnce  sync.Once

	logger *zap.Logger
}

type BroadcastMessage struct {
	Channel wstypes.ChannelType
	Message *wstypes.WSMessage
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *BroadcastMessage, 256),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer h.shutdown()
	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case msg := <-h.broadcast:
			h.BroadcastMessage(msg)
		}
	}
}

// Add hands a connected client to the run loop.
func (h *Hub) Add(client *Client) error {
	select {
	case h.register <- client:
		return nil
	case <-h.done:
		return ErrHubClosed
	}
}

func (h *Hub) remove(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[client.identity.ID] == nil {
		h.clients[client.identity.ID] = make(map[*Client]bool)
	}
	h.clients[client.identity.ID][client] = true

	h.logger.Info("live client connected",
		zap.String("admin_id", client.identity.ID),
		zap.Int("total", h.totalClients()),
	)

	client.Send(wstypes.EventTypeConnected, map[string]interface{}{
		"adminId":  client.identity.ID,
		"username": client.identity.Username,
		"channels": client.Channels(),
	})
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[client.identity.ID]
	if !ok {
		return
	}
	if _, exists := clients[client]; !exists {
		return
	}
	delete(clients, client)
	client.Close()
	if len(clients) == 0 {
		delete(h.clients, client.identity.ID)
	}

	h.logger.Info("live client disconnected",
		zap.String("admin_id", client.identity.ID),
		zap.Int("total", h.totalClients()),
	)
}

// BroadcastMessage delivers msg to every client subscribed to its channel.
func (h *Hub) BroadcastMessage(msg *BroadcastMessage) {
	data, err := msg.Message.ToJSON()
	if err != nil {
		h.logger.Error("failed to encode live message", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, clients := range h.clients {
		for client := range clients {
			if client.IsSubscribed(msg.Channel) {
				client.enqueue(data)
			}
		}
	}
}

func (h *Hub) TotalClients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.totalClients()
}

// ConnectedAdmins returns how many distinct admins are watching.
func (h *Hub) ConnectedAdmins() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ========== Notifier ==========

func (h *Hub) BookingCreated(ctx context.Context, b *booking.Booking) error {
	return h.publish(ctx, wstypes.ChannelBookings, wstypes.EventTypeBookingCreated, notify.NewBookingCreatedEvent(b))
}

func (h *Hub) ContactCreated(ctx context.Context, c *contact.Contact) error {
	return h.publish(ctx, wstypes.ChannelContacts, wstypes.EventTypeContactCreated, notify.NewContactCreatedEvent(c))
}

func (h *Hub) publish(ctx context.Context, channel wstypes.ChannelType, event wstypes.EventType, data interface{}) error {
	select {
	case <-h.done:
		return ErrHubClosed
	default:
	}

	msg, err := wstypes.NewMessage(event, data)
	if err != nil {
		return err
	}

	select {
	case h.broadcast <- &BroadcastMessage{Channel: channel, Message: msg}:
		return nil
	case <-h.done:
		return ErrHubClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Hub) totalClients() int {
	total := 0
	for _, clients := range h.clients {
		total += len(clients)
	}
	return total
}

func (h *Hub) shutdown() {
	h.closeOnce.Do(func() { close(h.done) })

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, clients := range h.clients {
		for client := range clients {
			client.Close()
		}
		delete(h.clients, id)
	}
}
