package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mehndi-service/internal/domain/admin"
	"mehndi-service/internal/domain/booking"
	"mehndi-service/internal/domain/contact"
	wstypes "mehndi-service/internal/domain/websocket"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func startHub(t *testing.T) (*Hub, context.CancelFunc, string) {
	t.Helper()

	hub := NewHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(hub, conn, admin.Identity{ID: r.URL.Query().Get("admin"), Username: "owner", Role: "admin"})
		if err := hub.Add(client); err != nil {
			_ = conn.Close()
			return
		}
		go client.WritePump()
		go client.ReadPump()
	}))
	t.Cleanup(srv.Close)

	return hub, cancel, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url, adminID string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url+"?admin="+adminID, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	msg := read(t, conn)
	require.Equal(t, wstypes.EventTypeConnected, msg.Type)
	return conn
}

func read(t *testing.T, conn *websocket.Conn) *wstypes.WSMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	msg, err := wstypes.ParseMessage(data)
	require.NoError(t, err)
	return msg
}

func send(t *testing.T, conn *websocket.Conn, event wstypes.EventType, data interface{}) {
	t.Helper()
	msg, err := wstypes.NewMessage(event, data)
	require.NoError(t, err)
	raw, err := msg.ToJSON()
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, raw))
}

func sampleBooking() *booking.Booking {
	return &booking.Booking{
		ID:        "01JBOOKING",
		BookingID: "BK-20261016-0001",
		Name:      "Asha",
		Phone:     "9876543210",
		Service:   "Bridal Mehndi",
		Date:      time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		Time:      "10:00",
		Guests:    1,
		CreatedAt: time.Now(),
	}
}

func TestConnectedClientReceivesBookingEvents(t *testing.T) {
	hub, _, url := startHub(t)
	conn := dial(t, url, "a1")

	require.NoError(t, hub.BookingCreated(context.Background(), sampleBooking()))

	msg := read(t, conn)
	assert.Equal(t, wstypes.EventTypeBookingCreated, msg.Type)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Data, &payload))
	assert.Equal(t, "BK-20261016-0001", payload["bookingId"])
	assert.Equal(t, "2026-11-02", payload["date"])
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	hub, _, url := startHub(t)
	conn := dial(t, url, "a1")

	send(t, conn, wstypes.EventTypeUnsubscribe, wstypes.SubscribeRequest{Channels: []wstypes.ChannelType{wstypes.ChannelBookings}})
	ack := read(t, conn)
	require.Equal(t, wstypes.EventTypeUnsubscribe, ack.Type)
	assert.JSONEq(t, `{"channels":["contacts"]}`, string(ack.Data))

	ctx := context.Background()
	require.NoError(t, hub.BookingCreated(ctx, sampleBooking()))
	require.NoError(t, hub.ContactCreated(ctx, &contact.Contact{ID: "c1", Name: "Riya", Message: "Do you travel?"}))

	// Events are broadcast in order, so the booking would have arrived first.
	msg := read(t, conn)
	assert.Equal(t, wstypes.EventTypeContactCreated, msg.Type)
}

func TestSubscribeIgnoresUnknownChannels(t *testing.T) {
	_, _, url := startHub(t)
	conn := dial(t, url, "a1")

	send(t, conn, wstypes.EventTypeSubscribe, wstypes.SubscribeRequest{Channels: []wstypes.ChannelType{"payments"}})
	ack := read(t, conn)
	require.Equal(t, wstypes.EventTypeSubscribe, ack.Type)
	assert.JSONEq(t, `{"channels":["bookings","contacts"]}`, string(ack.Data))
}

func TestPingAndUnsupportedEvents(t *testing.T) {
	_, _, url := startHub(t)
	conn := dial(t, url, "a1")

	send(t, conn, wstypes.EventTypePing, nil)
	assert.Equal(t, wstypes.EventTypePong, read(t, conn).Type)

	send(t, conn, wstypes.EventTypeBookingCreated, nil)
	msg := read(t, conn)
	require.Equal(t, wstypes.EventTypeError, msg.Type)

	var errData wstypes.ErrorData
	require.NoError(t, json.Unmarshal(msg.Data, &errData))
	assert.Equal(t, "unsupported_event", errData.Code)
}

func TestCountsClientsPerAdmin(t *testing.T) {
	hub, _, url := startHub(t)
	dial(t, url, "a1")
	dial(t, url, "a1")
	dial(t, url, "a2")

	assert.Equal(t, 3, hub.TotalClients())
	assert.Equal(t, 2, hub.ConnectedAdmins())
}

func TestClosedHubRejectsWork(t *testing.T) {
	hub, cancel, url := startHub(t)
	conn := dial(t, url, "a1")

	cancel()
	<-hub.done

	assert.ErrorIs(t, hub.BookingCreated(context.Background(), sampleBooking()), ErrHubClosed)
	assert.ErrorIs(t, hub.Add(&Client{}), ErrHubClosed)
	assert.Equal(t, 0, hub.TotalClients())

	// The write pump sends a close frame once the hub drops the client.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
}
