// internal/domain/websocket/types.go
package websocket

import (
	"encoding/json"
	"time"

	"mehndi-service/internal/pkg/ids"
)

// EventType represents different real-time event types
type EventType string

const (
	// Connection events
	EventTypePing      EventType = "ping"
	EventTypePong      EventType = "pong"
	EventTypeConnected EventType = "connected"
	EventTypeError     EventType = "error"

	// Subscription events
	EventTypeSubscribe   EventType = "subscribe"
	EventTypeUnsubscribe EventType = "unsubscribe"

	// Feed events (server -> client)
	EventTypeBookingCreated EventType = "booking:created"
	EventTypeContactCreated EventType = "contact:created"
)

// WSMessage is the universal message format
type WSMessage struct {
	Type      EventType       `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	ID        string          `json:"id,omitempty"`
}

// ChannelType is a feed a client can subscribe to.
type ChannelType string

const (
	ChannelBookings ChannelType = "bookings"
	ChannelContacts ChannelType = "contacts"
)

// DefaultChannels are subscribed on connect.
var DefaultChannels = []ChannelType{ChannelBookings, ChannelContacts}

func (c ChannelType) Valid() bool {
	return c == ChannelBookings || c == ChannelContacts
}

// SubscribeRequest is sent by the client for subscribe and unsubscribe.
type SubscribeRequest struct {
	Channels []ChannelType `json:"channels"`
}

// ErrorData for error events
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NewMessage wraps data in a message envelope with a fresh id.
func NewMessage(eventType EventType, data interface{}) (*WSMessage, error) {
	msg := &WSMessage{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		ID:        ids.New(),
	}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		msg.Data = raw
	}
	return msg, nil
}

func (m *WSMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ParseMessage(data []byte) (*WSMessage, error) {
	var msg WSMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
