package notify

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"mehndi-service/internal/domain/booking"
	"mehndi-service/internal/domain/contact"

	"github.com/emersion/go-sasl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recorder struct {
	mu       sync.Mutex
	bookings []string
	contacts []string
	err      error
}

func (r *recorder) BookingCreated(_ context.Context, b *booking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, b.BookingID)
	return r.err
}

func (r *recorder) ContactCreated(_ context.Context, c *contact.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contacts = append(r.contacts, c.ID)
	return r.err
}

func TestFanoutDeliversToAllAndJoinsErrors(t *testing.T) {
	ok := &recorder{}
	failing := &recorder{err: errors.New("smtp down")}

	err := Fanout{failing, ok}.BookingCreated(context.Background(), &booking.Booking{BookingID: "BK-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp down")
	assert.Equal(t, []string{"BK-1"}, ok.bookings)
	assert.Equal(t, []string{"BK-1"}, failing.bookings)

	assert.NoError(t, Fanout{ok}.ContactCreated(context.Background(), &contact.Contact{ID: "c1"}))
}

func TestDispatcherSwallowsFailures(t *testing.T) {
	rec := &recorder{err: errors.New("broker unreachable")}
	d := NewDispatcher(rec, time.Second, zap.NewNop())

	b := &booking.Booking{BookingID: "BK-2"}
	done := d.BookingCreated(b)
	b.BookingID = "changed"

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch did not finish")
	}
	assert.Equal(t, []string{"BK-2"}, rec.bookings)
}

type panicky struct{ Noop }

func (panicky) ContactCreated(context.Context, *contact.Contact) error { panic("boom") }

func TestDispatcherRecoversPanics(t *testing.T) {
	d := NewDispatcher(panicky{}, time.Second, zap.NewNop())

	select {
	case <-d.ContactCreated(&contact.Contact{ID: "c1"}):
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch did not finish")
	}
}

func TestMailerBuildsHTMLMessage(t *testing.T) {
	m := NewMailer(MailConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "studio@example.com",
		Password: "secret",
		FromName: "Mehndi Studio",
		To:       "artist@example.com",
	})
	m.now = func() time.Time { return time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC) }

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg string
	m.send = func(addr string, a sasl.Client, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, string(msg)
		return nil
	}

	err := m.BookingCreated(context.Background(), &booking.Booking{
		BookingID: "BK-01ABC",
		Name:      "Asha <script>",
		Service:   "Bridal Mehndi",
		Date:      time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
		Time:      "10:30",
		Guests:    3,
	})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "studio@example.com", gotFrom)
	assert.Equal(t, []string{"artist@example.com"}, gotTo)
	assert.Contains(t, gotMsg, "To: artist@example.com\r\n")
	assert.Contains(t, gotMsg, "Content-Type: text/html")
	assert.Contains(t, gotMsg, "BK-01ABC")
	assert.Contains(t, gotMsg, "Asha &lt;script&gt;")
	assert.False(t, strings.Contains(gotMsg, "<th align=\"left\">Location</th>"), "empty rows are skipped")
}

func TestMailerHonoursContext(t *testing.T) {
	m := NewMailer(MailConfig{Host: "localhost", Port: 25, To: "a@example.com"})
	m.send = func(string, sasl.Client, string, []string, []byte) error {
		time.Sleep(time.Second)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := m.ContactCreated(ctx, &contact.Contact{Name: "Riya"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEventsCarryReference(t *testing.T) {
	ev := NewBookingCreatedEvent(&booking.Booking{
		ID:        "01H",
		BookingID: "BK-01H",
		Date:      time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, "BK-01H", ev.BookingID)
	assert.Equal(t, "2026-06-20", ev.Date)
}
