package notify

import (
	"time"

	"mehndi-service/internal/domain/booking"
	"mehndi-service/internal/domain/contact"
)

const (
	QueueBookingCreated = "booking.created"
	QueueContactCreated = "contact.created"
)

// BookingCreatedEvent is the broker payload for a new booking.
type BookingCreatedEvent struct {
	ID         string    `json:"id"`
	BookingID  string    `json:"bookingId"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Service    string    `json:"service"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Guests     int       `json:"guests"`
	Location   string    `json:"location"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewBookingCreatedEvent(b *booking.Booking) BookingCreatedEvent {
	return BookingCreatedEvent{
		ID:         b.ID,
		BookingID:  b.BookingID,
		Name:       b.Name,
		Phone:      b.Phone,
		Email:      b.Email,
		Service:    b.Service,
		Date:       b.Date.Format("2006-01-02"),
		Time:       b.Time,
		Guests:     b.Guests,
		Location:   b.Location,
		OccurredAt: b.CreatedAt.UTC(),
	}
}

// ContactCreatedEvent is the broker payload for a new contact message.
type ContactCreatedEvent struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Service    string    `json:"service"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewContactCreatedEvent(c *contact.Contact) ContactCreatedEvent {
	return ContactCreatedEvent{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Service:    c.Service,
		Message:    c.Message,
		OccurredAt: c.CreatedAt.UTC(),
	}
}
