// internal/repository/postgres/dashboard_repo.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"mehndi-service/internal/domain/dashboard"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DashboardRepository struct {
	db *pgxpool.Pool
}

func NewDashboardRepository(db *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Summary gathers every dashboard counter in one round trip.
func (r *DashboardRepository) Summary(ctx context.Context, today time.Time) (*dashboard.Overview, error) {
	start, end := dayRange(today)
	query := `
		SELECT
			b.total, b.pending, b.confirmed, b.completed, b.cancelled, b.today, b.upcoming, b.revenue, b.advance,
			c.total, c.new, c.unreplied,
			s.total, s.active,
			g.total, g.featured,
			p.total, p.published, p.views
		FROM
		(SELECT
			COUNT(*) AS total,
			COUNT(CASE WHEN status = 'Pending' THEN 1 END) AS pending,
			COUNT(CASE WHEN status = 'Confirmed' THEN 1 END) AS confirmed,
			COUNT(CASE WHEN status = 'Completed' THEN 1 END) AS completed,
			COUNT(CASE WHEN status = 'Cancelled' THEN 1 END) AS cancelled,
			COUNT(CASE WHEN date >= $1 AND date < $2 THEN 1 END) AS today,
			COUNT(CASE WHEN date >= $1 AND status IN ('Pending', 'Confirmed') THEN 1 END) AS upcoming,
			COALESCE(SUM(CASE WHEN status = 'Completed' THEN amount END), 0)::float8 AS revenue,
			COALESCE(SUM(CASE WHEN status <> 'Cancelled' THEN advance END), 0)::float8 AS advance
		 FROM bookings) b,
		(SELECT
			COUNT(*) AS total,
			COUNT(CASE WHEN status = 'New' THEN 1 END) AS new,
			COUNT(CASE WHEN replied = FALSE AND status <> 'Closed' THEN 1 END) AS unreplied
		 FROM contacts) c,
		(SELECT COUNT(*) AS total, COUNT(CASE WHEN active THEN 1 END) AS active FROM services) s,
		(SELECT COUNT(*) AS total, COUNT(CASE WHEN featured THEN 1 END) AS featured FROM gallery_items) g,
		(SELECT
			COUNT(*) AS total,
			COUNT(CASE WHEN published THEN 1 END) AS published,
			COALESCE(SUM(views), 0)::bigint AS views
		 FROM blog_posts) p
	`

	var o dashboard.Overview
	err := r.db.QueryRow(ctx, query, start, end).Scan(
		&o.Bookings.Total, &o.Bookings.Pending, &o.Bookings.Confirmed, &o.Bookings.Completed,
		&o.Bookings.Cancelled, &o.Bookings.Today, &o.Bookings.Upcoming, &o.Bookings.Revenue, &o.Bookings.Advance,
		&o.Contacts.Total, &o.Contacts.New, &o.Contacts.Unreplied,
		&o.Content.Services, &o.Content.ActiveServices,
		&o.Content.GalleryItems, &o.Content.FeaturedGallery,
		&o.Content.BlogPosts, &o.Content.PublishedPosts, &o.Content.BlogViews,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard summary: %w", err)
	}
	return &o, nil
}
