// internal/repository/postgres/contact_repo.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"mehndi-service/internal/domain/contact"
	xerrors "mehndi-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

const contactColumns = `id, name, email, phone, service, message, status, replied,
	reply_message, replied_at, created_at, updated_at`

var contactSort = sortSpec{
	columns: map[string]string{
		"createdAt": "created_at",
		"name":      "name",
		"status":    "status",
	},
}

type ContactQuery struct {
	Status  string
	Service string
	Replied *bool
	Day     *time.Time
	Search  string
	SortBy  string
	Order   string
	Limit   int
	Offset  int
}

type ContactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{db: db}
}

func scanContact(row interface{ Scan(...interface{}) error }, c *contact.Contact) error {
	return row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Service, &c.Message, &c.Status, &c.Replied,
		&c.ReplyMessage, &c.RepliedAt, &c.CreatedAt, &c.UpdatedAt,
	)
}

// Create creates a new contact message
func (r *ContactRepository) Create(ctx context.Context, c *contact.Contact) error {
	query := `
		INSERT INTO contacts (id, name, email, phone, service, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.Service, c.Message, c.Status,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*contact.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`

	var c contact.Contact
	if err := scanContact(r.db.QueryRow(ctx, query, id), &c); err != nil {
		return nil, notFound(err, "contact")
	}
	return &c, nil
}

// MarkRead moves a New message to Read. It reports whether a row changed.
func (r *ContactRepository) MarkRead(ctx context.Context, id string) (bool, error) {
	result, err := r.db.Exec(ctx, `
		UPDATE contacts SET status = 'Read', updated_at = NOW()
		WHERE id = $1 AND status = 'New'
	`, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark contact read: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// UpdateStatus writes the status and reply columns of c.
func (r *ContactRepository) UpdateStatus(ctx context.Context, c *contact.Contact) error {
	query := `
		UPDATE contacts SET
			status = $2, replied = $3, reply_message = $4, replied_at = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query, c.ID, c.Status, c.Replied, c.ReplyMessage, c.RepliedAt).Scan(&c.UpdatedAt)
	if err != nil {
		return notFound(err, "contact")
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *ContactRepository) List(ctx context.Context, q ContactQuery) ([]contact.Contact, int64, error) {
	var w where
	if q.Status != "" {
		w.and("status = " + w.arg(q.Status))
	}
	if q.Service != "" {
		w.and("service = " + w.arg(q.Service))
	}
	if q.Replied != nil {
		w.and("replied = " + w.arg(*q.Replied))
	}
	if q.Day != nil {
		w.onDay("created_at", *q.Day)
	}
	w.search(q.Search, "", "name", "email", "phone", "message")

	whereClause := w.clause()

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM contacts %s", whereClause)
	if err := r.db.QueryRow(ctx, countQuery, w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM contacts %s %s %s`,
		contactColumns, whereClause, contactSort.orderBy(q.SortBy, q.Order), w.paginate(q.Limit, q.Offset))

	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	contacts := []contact.Contact{}
	for rows.Next() {
		var c contact.Contact
		if err := scanContact(rows, &c); err != nil {
			return nil, 0, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, total, rows.Err()
}

// GetStats aggregates contact messages. today is the current business day.
func (r *ContactRepository) GetStats(ctx context.Context, today time.Time) (*contact.Stats, error) {
	start, end := dayRange(today)
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(CASE WHEN status = 'New' THEN 1 END) AS new,
			COUNT(CASE WHEN status = 'Read' THEN 1 END) AS read,
			COUNT(CASE WHEN status = 'Replied' THEN 1 END) AS replied,
			COUNT(CASE WHEN status = 'Closed' THEN 1 END) AS closed,
			COUNT(CASE WHEN replied = FALSE AND status <> 'Closed' THEN 1 END) AS unreplied,
			COUNT(CASE WHEN created_at >= $1 AND created_at < $2 THEN 1 END) AS today,
			COUNT(CASE WHEN created_at >= $2::timestamptz - INTERVAL '7 days' THEN 1 END) AS this_week
		FROM contacts
	`

	var s contact.Stats
	err := r.db.QueryRow(ctx, query, start, end).Scan(
		&s.Total, &s.New, &s.Read, &s.Replied, &s.Closed, &s.Unreplied, &s.Today, &s.ThisWeek,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact stats: %w", err)
	}
	return &s, nil
}

func (r *ContactRepository) Recent(ctx context.Context, limit int) ([]contact.Contact, error) {
	items, _, err := r.List(ctx, ContactQuery{Limit: limit})
	return items, err
}
