// internal/service/booking/booking.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mehndi-service/internal/domain/booking"
	"mehndi-service/internal/domain/bulk"
	xerrors "mehndi-service/internal/pkg/errors"
	"mehndi-service/internal/pkg/ids"
	"mehndi-service/internal/pkg/money"
	"mehndi-service/internal/pkg/pagination"
	"mehndi-service/internal/pkg/validation"
	"mehndi-service/internal/repository/postgres"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id string) (*booking.Booking, error)
	FindByBookingID(ctx context.Context, ref string) (*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q postgres.BookingQuery) ([]booking.Booking, int64, error)
	GetStats(ctx context.Context, today time.Time) (*booking.Stats, error)
}

// Notifier is told about every booking created through the public form.
type Notifier interface {
	BookingCreated(b *booking.Booking) <-chan struct{}
}

const createAttempts = 3

type BookingService struct {
	bookingRepo Repository
	notifier    Notifier
	logger      *zap.Logger
	today       func() time.Time
}

func NewBookingService(bookingRepo Repository, notifier Notifier, logger *zap.Logger) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
		today:       validation.Today,
	}
}

// CreateBooking stores a public booking request as Pending under a fresh
// BK- reference.
func (s *BookingService) CreateBooking(ctx context.Context, req *booking.CreateBookingRequest) (*booking.Booking, error) {
	date, err := validation.NormalizeDate(req.Date)
	if err != nil {
		return nil, xerrors.NewValidationError("date", "must be a date in YYYY-MM-DD format")
	}

	guests := req.Guests
	if guests < 1 {
		guests = 1
	}

	b := &booking.Booking{
		ID:       ids.New(),
		Name:     strings.TrimSpace(req.Name),
		Phone:    strings.TrimSpace(req.Phone),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Service:  req.Service,
		Date:     date,
		Time:     req.Time,
		Guests:   guests,
		Location: strings.TrimSpace(req.Location),
		Message:  strings.TrimSpace(req.Message),
		Status:   booking.StatusPending,
	}

	for attempt := 1; ; attempt++ {
		b.BookingID = ids.BookingReference()
		err = s.bookingRepo.Create(ctx, b)
		if err == nil {
			break
		}
		if !errors.Is(err, xerrors.ErrConflict) || attempt == createAttempts {
			s.logger.Error("failed to create booking", zap.Error(err))
			return nil, fmt.Errorf("failed to create booking: %w", err)
		}
		b.ID = ids.New()
	}

	s.logger.Info("booking created",
		zap.String("id", b.ID),
		zap.String("booking_id", b.BookingID),
		zap.String("service", b.Service),
		zap.Time("date", b.Date),
	)

	if s.notifier != nil {
		s.notifier.BookingCreated(b)
	}
	return b, nil
}

// GetBooking accepts either the record id or the public BK- reference.
func (s *BookingService) GetBooking(ctx context.Context, idOrRef string) (*booking.Booking, error) {
	if ids.IsID(idOrRef) {
		return s.bookingRepo.FindByID(ctx, ids.Normalize(idOrRef))
	}
	return s.bookingRepo.FindByBookingID(ctx, strings.ToUpper(idOrRef))
}

// UpdateBooking merges the set fields of req onto the booking. The booking
// reference never changes.
func (s *BookingService) UpdateBooking(ctx context.Context, idOrRef string, req *booking.UpdateBookingRequest) (*booking.Booking, error) {
	b, err := s.GetBooking(ctx, idOrRef)
	if err != nil {
		return nil, err
	}

	if err := applyUpdate(b, req); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("booking updated", zap.String("id", b.ID), zap.String("booking_id", b.BookingID))
	return b, nil
}

func applyUpdate(b *booking.Booking, req *booking.UpdateBookingRequest) error {
	if req.Name != nil {
		b.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		b.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		b.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Service != nil {
		b.Service = *req.Service
	}
	if req.Date != nil {
		d, err := validation.NormalizeDate(*req.Date)
		if err != nil {
			return xerrors.NewValidationError("date", "must be a date in YYYY-MM-DD format")
		}
		b.Date = d
	}
	if req.Time != nil {
		b.Time = *req.Time
	}
	if req.Guests != nil {
		b.Guests = *req.Guests
	}
	if req.Location != nil {
		b.Location = strings.TrimSpace(*req.Location)
	}
	if req.Message != nil {
		b.Message = strings.TrimSpace(*req.Message)
	}
	if req.Status != nil {
		b.Status = *req.Status
	}
	if req.Amount != nil {
		b.Amount = money.Round(*req.Amount)
	}
	if req.Advance != nil {
		b.Advance = money.Round(*req.Advance)
	}
	if req.Notes != nil {
		b.Notes = strings.TrimSpace(*req.Notes)
	}

	if b.Advance > b.Amount {
		return xerrors.NewValidationError("advance", "must not exceed amount")
	}
	return nil
}

func (s *BookingService) UpdateStatus(ctx context.Context, idOrRef string, req *booking.UpdateStatusRequest) (*booking.Booking, error) {
	b, err := s.GetBooking(ctx, idOrRef)
	if err != nil {
		return nil, err
	}

	from := b.Status
	b.Status = req.Status
	if req.Notes != nil {
		b.Notes = strings.TrimSpace(*req.Notes)
	}

	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("booking status changed",
		zap.String("booking_id", b.BookingID),
		zap.String("from", from),
		zap.String("to", b.Status),
	)
	return b, nil
}

func (s *BookingService) DeleteBooking(ctx context.Context, idOrRef string) error {
	b, err := s.GetBooking(ctx, idOrRef)
	if err != nil {
		return err
	}
	if err := s.bookingRepo.Delete(ctx, b.ID); err != nil {
		return err
	}

	s.logger.Info("booking deleted", zap.String("id", b.ID), zap.String("booking_id", b.BookingID))
	return nil
}

func (s *BookingService) ListBookings(ctx context.Context, f *booking.ListFilters) (*pagination.Result[booking.Booking], error) {
	f.Normalize()

	q := postgres.BookingQuery{
		Status:  f.Status,
		Service: f.Service,
		Search:  f.Search,
		SortBy:  f.SortBy,
		Order:   f.Order,
		Limit:   f.Limit,
		Offset:  f.Offset(),
	}

	var err error
	if q.Day, err = parseDay("date", f.Date); err != nil {
		return nil, err
	}
	if q.From, err = parseDay("from", f.From); err != nil {
		return nil, err
	}
	if q.To, err = parseDay("to", f.To); err != nil {
		return nil, err
	}

	items, total, err := s.bookingRepo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return &pagination.Result[booking.Booking]{Items: items, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

func parseDay(field, v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	d, err := validation.NormalizeDate(v)
	if err != nil {
		return nil, xerrors.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return &d, nil
}

func (s *BookingService) GetStats(ctx context.Context) (*booking.Stats, error) {
	stats, err := s.bookingRepo.GetStats(ctx, s.today())
	if err != nil {
		return nil, fmt.Errorf("failed to get booking stats: %w", err)
	}
	return stats, nil
}

// Bulk deletes or updates many bookings. Each id is handled on its own.
func (s *BookingService) Bulk(ctx context.Context, req *booking.BulkRequest) (*bulk.Result, error) {
	var fn func(ctx context.Context, id string) error

	switch req.Action {
	case bulk.ActionDelete:
		fn = s.DeleteBooking
	case bulk.ActionUpdate:
		if req.Data == nil {
			return nil, xerrors.NewValidationError("data", "is required")
		}
		fn = func(ctx context.Context, id string) error {
			_, err := s.UpdateBooking(ctx, id, req.Data)
			return err
		}
	default:
		return nil, xerrors.NewValidationError("action", "must be one of: delete update")
	}

	res := bulk.Run(ctx, req.Action, req.IDs, fn)
	s.logger.Info("bulk booking action",
		zap.String("action", res.Action),
		zap.Int("succeeded", res.Succeeded),
		zap.Int("failed", len(res.Failed)),
	)
	return &res, nil
}
