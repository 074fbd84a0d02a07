// internal/service/dashboard/dashboard.go
package dashboard

import (
	"context"
	"fmt"
	"time"

	"mehndi-service/internal/domain/booking"
	"mehndi-service/internal/domain/contact"
	"mehndi-service/internal/domain/dashboard"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	trendMonths = 6
	recentLimit = 5
)

type SummaryRepository interface {
	Summary(ctx context.Context, today time.Time) (*dashboard.Overview, error)
}

type BookingRepository interface {
	MonthlyTrend(ctx context.Context, since time.Time, months int) ([]booking.MonthCount, error)
	Recent(ctx context.Context, limit int) ([]booking.Booking, error)
}

type ContactRepository interface {
	Recent(ctx context.Context, limit int) ([]contact.Contact, error)
}

type DashboardService struct {
	summaryRepo SummaryRepository
	bookingRepo BookingRepository
	contactRepo ContactRepository
	logger      *zap.Logger
	today       func() time.Time
}

func NewDashboardService(summaryRepo SummaryRepository, bookingRepo BookingRepository, contactRepo ContactRepository, today func() time.Time, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		summaryRepo: summaryRepo,
		bookingRepo: bookingRepo,
		contactRepo: contactRepo,
		logger:      logger,
		today:       today,
	}
}

// Overview gathers the counters, the six-month booking trend and the most
// recent bookings and contacts concurrently.
func (s *DashboardService) Overview(ctx context.Context) (*dashboard.Overview, error) {
	today := s.today()
	since := time.Date(today.Year(), today.Month()-(trendMonths-1), 1, 0, 0, 0, 0, time.UTC)

	var (
		out      *dashboard.Overview
		trend    []booking.MonthCount
		bookings []booking.Booking
		contacts []contact.Contact
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out, err = s.summaryRepo.Summary(gctx, today)
		return err
	})
	g.Go(func() error {
		var err error
		trend, err = s.bookingRepo.MonthlyTrend(gctx, since, trendMonths)
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = s.bookingRepo.Recent(gctx, recentLimit)
		return err
	})
	g.Go(func() error {
		var err error
		contacts, err = s.contactRepo.Recent(gctx, recentLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("failed to build dashboard", zap.Error(err))
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	out.BookingTrend = trend
	out.RecentBookings = bookings
	out.RecentContacts = contacts
	return out, nil
}
