// internal/repository/postgres/service_repo.go
package postgres

import (
	"context"
	"fmt"

	"mehndi-service/internal/domain/catalog"
	xerrors "mehndi-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

const serviceColumns = `id, title, description, min_price, max_price, duration, category, features,
	active, popular, image, sort_order, created_at, updated_at`

var serviceSort = sortSpec{
	columns: map[string]string{
		"sortOrder": "sort_order",
		"createdAt": "created_at",
		"title":     "title",
		"minPrice":  "min_price",
	},
	defaults: "popular DESC, sort_order ASC",
}

type ServiceQuery struct {
	Active   *bool
	Category string
	Popular  *bool
	Search   string
	SortBy   string
	Order    string
	Limit    int
	Offset   int
}

type ServiceRepository struct {
	db *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func scanService(row interface{ Scan(...interface{}) error }, s *catalog.Service) error {
	return row.Scan(
		&s.ID, &s.Title, &s.Description, &s.MinPrice, &s.MaxPrice, &s.Duration, &s.Category,
		(*[]string)(&s.Features), &s.Active, &s.Popular, &s.Image, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt,
	)
}

// Create creates a new service
func (r *ServiceRepository) Create(ctx context.Context, s *catalog.Service) error {
	query := `
		INSERT INTO services (
			id, title, description, min_price, max_price, duration, category,
			features, active, popular, image, sort_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		s.ID, s.Title, s.Description, s.MinPrice, s.MaxPrice, s.Duration, s.Category,
		textArray(s.Features), s.Active, s.Popular, s.Image, s.SortOrder,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*catalog.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

	var s catalog.Service
	if err := scanService(r.db.QueryRow(ctx, query, id), &s); err != nil {
		return nil, notFound(err, "service")
	}
	return &s, nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *catalog.Service) error {
	query := `
		UPDATE services SET
			title = $2, description = $3, min_price = $4, max_price = $5, duration = $6,
			category = $7, features = $8, active = $9, popular = $10, image = $11,
			sort_order = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		s.ID, s.Title, s.Description, s.MinPrice, s.MaxPrice, s.Duration,
		s.Category, textArray(s.Features), s.Active, s.Popular, s.Image,
		s.SortOrder,
	).Scan(&s.UpdatedAt)
	if err != nil {
		return notFound(err, "service")
	}
	return nil
}

// SetActive updates the active flag.
func (r *ServiceRepository) SetActive(ctx context.Context, id string, active bool) error {
	result, err := r.db.Exec(ctx, `UPDATE services SET active = $2, updated_at = NOW() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("failed to update service status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *ServiceRepository) List(ctx context.Context, q ServiceQuery) ([]catalog.Service, int64, error) {
	var w where
	if q.Active != nil {
		w.and("active = " + w.arg(*q.Active))
	}
	if q.Category != "" {
		w.and("category = " + w.arg(q.Category))
	}
	if q.Popular != nil {
		w.and("popular = " + w.arg(*q.Popular))
	}
	w.search(q.Search, "", "title", "description")

	whereClause := w.clause()

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM services %s", whereClause)
	if err := r.db.QueryRow(ctx, countQuery, w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count services: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM services %s %s %s`,
		serviceColumns, whereClause, serviceSort.orderBy(q.SortBy, q.Order), w.paginate(q.Limit, q.Offset))

	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	services := []catalog.Service{}
	for rows.Next() {
		var s catalog.Service
		if err := scanService(rows, &s); err != nil {
			return nil, 0, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, s)
	}
	return services, total, rows.Err()
}

func (r *ServiceRepository) GetStats(ctx context.Context) (*catalog.Stats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(CASE WHEN active = TRUE THEN 1 END) AS active,
			COUNT(CASE WHEN active = FALSE THEN 1 END) AS inactive,
			COUNT(CASE WHEN popular = TRUE THEN 1 END) AS popular,
			COALESCE(AVG(min_price), 0)::float8 AS avg_min_price,
			COALESCE(AVG(max_price), 0)::float8 AS avg_max_price
		FROM services
	`

	var s catalog.Stats
	err := r.db.QueryRow(ctx, query).Scan(
		&s.Total, &s.Active, &s.Inactive, &s.Popular, &s.AvgMinPrice, &s.AvgMaxPrice,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get service stats: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT category, COUNT(*) FROM services GROUP BY category ORDER BY COUNT(*) DESC, category ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get service category stats: %w", err)
	}
	defer rows.Close()

	s.ByCategory = []catalog.CategoryCount{}
	for rows.Next() {
		var cc catalog.CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan service category stats: %w", err)
		}
		s.ByCategory = append(s.ByCategory, cc)
	}
	return &s, rows.Err()
}
