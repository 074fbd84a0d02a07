// Package notify tells the artist about new bookings and contact messages.
// Delivery is best-effort: failures are logged and never reach the caller
// that created the record.
package notify

import (
	"context"
	"errors"
	"time"

	"mehndi-service/internal/domain/booking"
	"mehndi-service/internal/domain/contact"

	"go.uber.org/zap"
)

type Notifier interface {
	BookingCreated(ctx context.Context, b *booking.Booking) error
	ContactCreated(ctx context.Context, c *contact.Contact) error
}

// Noop drops every notification.
type Noop struct{}

func (Noop) BookingCreated(context.Context, *booking.Booking) error { return nil }
func (Noop) ContactCreated(context.Context, *contact.Contact) error { return nil }

// Fanout delivers to every notifier and joins their errors.
type Fanout []Notifier

func (f Fanout) BookingCreated(ctx context.Context, b *booking.Booking) error {
	var errs []error
	for _, n := range f {
		if err := n.BookingCreated(ctx, b); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f Fanout) ContactCreated(ctx context.Context, c *contact.Contact) error {
	var errs []error
	for _, n := range f {
		if err := n.ContactCreated(ctx, c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

const defaultTimeout = 15 * time.Second

// Dispatcher runs notifications in the background, detached from the
// request that triggered them.
type Dispatcher struct {
	notifier Notifier
	timeout  time.Duration
	logger   *zap.Logger
}

func NewDispatcher(n Notifier, timeout time.Duration, logger *zap.Logger) *Dispatcher {
	if n == nil {
		n = Noop{}
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Dispatcher{notifier: n, timeout: timeout, logger: logger}
}

// BookingCreated schedules the booking notification and returns immediately.
// The booking is copied so later edits by the caller are not observed.
func (d *Dispatcher) BookingCreated(b *booking.Booking) <-chan struct{} {
	snapshot := *b
	return d.run("booking.created", zap.String("booking_id", snapshot.BookingID), func(ctx context.Context) error {
		return d.notifier.BookingCreated(ctx, &snapshot)
	})
}

// ContactCreated schedules the contact notification and returns immediately.
func (d *Dispatcher) ContactCreated(c *contact.Contact) <-chan struct{} {
	snapshot := *c
	return d.run("contact.created", zap.String("contact_id", snapshot.ID), func(ctx context.Context) error {
		return d.notifier.ContactCreated(ctx, &snapshot)
	})
}

func (d *Dispatcher) run(event string, field zap.Field, fn func(ctx context.Context) error) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				d.logger.Error("notification panicked", zap.String("event", event), field, zap.Any("panic", r))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			d.logger.Warn("notification failed", zap.String("event", event), field, zap.Error(err))
			return
		}
		d.logger.Debug("notification sent", zap.String("event", event), field)
	}()
	return done
}
