package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"mehndi-service/internal/domain/booking"
	"mehndi-service/internal/domain/contact"
	"mehndi-service/internal/domain/dashboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepos struct {
	since   time.Time
	months  int
	summary error
}

func (f *fakeRepos) Summary(context.Context, time.Time) (*dashboard.Overview, error) {
	if f.summary != nil {
		return nil, f.summary
	}
	return &dashboard.Overview{Bookings: dashboard.BookingSummary{Total: 3}}, nil
}

func (f *fakeRepos) MonthlyTrend(_ context.Context, since time.Time, months int) ([]booking.MonthCount, error) {
	f.since, f.months = since, months
	return []booking.MonthCount{{Month: "2026-01", Bookings: 2}}, nil
}

func (f *fakeRepos) Recent(_ context.Context, limit int) ([]booking.Booking, error) {
	return []booking.Booking{{ID: "B1"}}, nil
}

type contacts struct{}

func (contacts) Recent(_ context.Context, limit int) ([]contact.Contact, error) {
	return []contact.Contact{{ID: "C1"}}, nil
}

func TestOverview(t *testing.T) {
	repos := &fakeRepos{}
	today := func() time.Time { return time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC) }
	s := NewDashboardService(repos, repos, contacts{}, today, zap.NewNop())

	out, err := s.Overview(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, out.Bookings.Total)
	assert.Len(t, out.BookingTrend, 1)
	assert.Len(t, out.RecentBookings, 1)
	assert.Len(t, out.RecentContacts, 1)

	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), repos.since)
	assert.Equal(t, 6, repos.months)
}

func TestOverviewFailsWhenAnyPartFails(t *testing.T) {
	repos := &fakeRepos{summary: errors.New("db down")}
	s := NewDashboardService(repos, repos, contacts{}, time.Now, zap.NewNop())

	_, err := s.Overview(context.Background())
	assert.Error(t, err)
}
