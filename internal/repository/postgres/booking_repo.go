// internal/repository/postgres/booking_repo.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"mehndi-service/internal/domain/booking"
	xerrors "mehndi-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, booking_id, name, phone, email, service, date, time, guests,
	location, message, status, amount, advance, notes, created_at, updated_at`

var bookingSort = sortSpec{
	columns: map[string]string{
		"createdAt": "created_at",
		"date":      "date",
		"amount":    "amount",
		"name":      "name",
		"status":    "status",
	},
}

// BookingQuery is the repository form of booking.ListFilters with dates
// already resolved.
type BookingQuery struct {
	Status  string
	Service string
	Day     *time.Time
	From    *time.Time
	To      *time.Time
	Search  string
	SortBy  string
	Order   string
	Limit   int
	Offset  int
}

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func scanBooking(row interface{ Scan(...interface{}) error }, b *booking.Booking) error {
	return row.Scan(
		&b.ID, &b.BookingID, &b.Name, &b.Phone, &b.Email, &b.Service, &b.Date, &b.Time, &b.Guests,
		&b.Location, &b.Message, &b.Status, &b.Amount, &b.Advance, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
	)
}

// Create creates a new booking
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	query := `
		INSERT INTO bookings (
			id, booking_id, name, phone, email, service, date, time, guests,
			location, message, status, amount, advance, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		b.ID, b.BookingID, b.Name, b.Phone, b.Email, b.Service, b.Date, b.Time, b.Guests,
		b.Location, b.Message, b.Status, b.Amount, b.Advance, b.Notes,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: booking reference collision", xerrors.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

// FindByID retrieves a booking by ID
func (r *BookingRepository) FindByID(ctx context.Context, id string) (*booking.Booking, error) {
	return r.findOne(ctx, "id", id)
}

// FindByBookingID retrieves a booking by its public reference
func (r *BookingRepository) FindByBookingID(ctx context.Context, ref string) (*booking.Booking, error) {
	return r.findOne(ctx, "booking_id", ref)
}

func (r *BookingRepository) findOne(ctx context.Context, column, value string) (*booking.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE %s = $1`, bookingColumns, column)

	var b booking.Booking
	if err := scanBooking(r.db.QueryRow(ctx, query, value), &b); err != nil {
		return nil, notFound(err, "booking")
	}
	return &b, nil
}

// Update writes every mutable column. booking_id is never written.
func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	query := `
		UPDATE bookings SET
			name = $2, phone = $3, email = $4, service = $5, date = $6, time = $7,
			guests = $8, location = $9, message = $10, status = $11, amount = $12,
			advance = $13, notes = $14, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		b.ID, b.Name, b.Phone, b.Email, b.Service, b.Date, b.Time,
		b.Guests, b.Location, b.Message, b.Status, b.Amount,
		b.Advance, b.Notes,
	).Scan(&b.UpdatedAt)
	if err != nil {
		return notFound(err, "booking")
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *BookingRepository) List(ctx context.Context, q BookingQuery) ([]booking.Booking, int64, error) {
	var w where
	if q.Status != "" {
		w.and("status = " + w.arg(q.Status))
	}
	if q.Service != "" {
		w.and("service = " + w.arg(q.Service))
	}
	if q.Day != nil {
		w.onDay("date", *q.Day)
	}
	if q.From != nil {
		w.and("date >= " + w.arg(*q.From))
	}
	if q.To != nil {
		_, end := dayRange(*q.To)
		w.and("date < " + w.arg(end))
	}
	w.search(q.Search, "", "name", "email", "phone", "booking_id")

	whereClause := w.clause()

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM bookings %s", whereClause)
	if err := r.db.QueryRow(ctx, countQuery, w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM bookings %s %s %s`,
		bookingColumns, whereClause, bookingSort.orderBy(q.SortBy, q.Order), w.paginate(q.Limit, q.Offset))

	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	bookings := []booking.Booking{}
	for rows.Next() {
		var b booking.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, 0, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, total, rows.Err()
}

// GetStats aggregates bookings. today is the current business day.
func (r *BookingRepository) GetStats(ctx context.Context, today time.Time) (*booking.Stats, error) {
	start, end := dayRange(today)
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(CASE WHEN status = 'Pending' THEN 1 END) AS pending,
			COUNT(CASE WHEN status = 'Confirmed' THEN 1 END) AS confirmed,
			COUNT(CASE WHEN status = 'Completed' THEN 1 END) AS completed,
			COUNT(CASE WHEN status = 'Cancelled' THEN 1 END) AS cancelled,
			COUNT(CASE WHEN date >= $1 AND status IN ('Pending', 'Confirmed') THEN 1 END) AS upcoming,
			COUNT(CASE WHEN date >= $1 AND date < $2 THEN 1 END) AS today,
			COALESCE(SUM(CASE WHEN status = 'Completed' THEN amount END), 0)::float8 AS revenue,
			COALESCE(SUM(CASE WHEN status <> 'Cancelled' THEN advance END), 0)::float8 AS advance,
			COALESCE(AVG(CASE WHEN amount > 0 THEN amount END), 0)::float8 AS average_amount
		FROM bookings
	`

	var s booking.Stats
	err := r.db.QueryRow(ctx, query, start, end).Scan(
		&s.Total, &s.Pending, &s.Confirmed, &s.Completed, &s.Cancelled,
		&s.Upcoming, &s.Today, &s.Revenue, &s.Advance, &s.AverageAmount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking stats: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT service, COUNT(*) FROM bookings GROUP BY service ORDER BY COUNT(*) DESC, service ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking service stats: %w", err)
	}
	defer rows.Close()

	s.ByService = []booking.ServiceCount{}
	for rows.Next() {
		var sc booking.ServiceCount
		if err := rows.Scan(&sc.Service, &sc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan booking service stats: %w", err)
		}
		s.ByService = append(s.ByService, sc)
	}
	return &s, rows.Err()
}

// MonthlyTrend returns booking counts and completed revenue per month since
// the given month start, oldest first. Months without bookings are included.
func (r *BookingRepository) MonthlyTrend(ctx context.Context, since time.Time, months int) ([]booking.MonthCount, error) {
	query := `
		SELECT to_char(m.month, 'YYYY-MM'),
		       COUNT(b.id),
		       COALESCE(SUM(CASE WHEN b.status = 'Completed' THEN b.amount END), 0)::float8
		FROM generate_series($1::timestamptz, $1::timestamptz + ($2::int - 1) * INTERVAL '1 month', INTERVAL '1 month') AS m(month)
		LEFT JOIN bookings b
		       ON b.created_at >= m.month AND b.created_at < m.month + INTERVAL '1 month'
		GROUP BY m.month
		ORDER BY m.month ASC
	`

	rows, err := r.db.Query(ctx, query, since, months)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking trend: %w", err)
	}
	defer rows.Close()

	trend := []booking.MonthCount{}
	for rows.Next() {
		var mc booking.MonthCount
		if err := rows.Scan(&mc.Month, &mc.Bookings, &mc.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan booking trend: %w", err)
		}
		trend = append(trend, mc)
	}
	return trend, rows.Err()
}

func (r *BookingRepository) Recent(ctx context.Context, limit int) ([]booking.Booking, error) {
	items, _, err := r.List(ctx, BookingQuery{Limit: limit})
	return items, err
}
