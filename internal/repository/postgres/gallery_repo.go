// internal/repository/postgres/gallery_repo.go
package postgres

import (
	"context"
	"fmt"
	"strings"

	"mehndi-service/internal/domain/gallery"
	xerrors "mehndi-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

const galleryColumns = `id, title, category, description, tags, featured, sort_order, status,
	filename, url, thumbnail_url, size, mimetype, created_at, updated_at`

var gallerySort = sortSpec{
	columns: map[string]string{
		"sortOrder": "sort_order",
		"createdAt": "created_at",
		"title":     "title",
	},
	defaults: "featured DESC, sort_order ASC",
}

type GalleryQuery struct {
	Category string
	Featured *bool
	Status   string
	Search   string
	Tag      string
	SortBy   string
	Order    string
	Limit    int
	Offset   int
}

type GalleryRepository struct {
	db *pgxpool.Pool
}

func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func scanGalleryItem(row interface{ Scan(...interface{}) error }, g *gallery.Item) error {
	return row.Scan(
		&g.ID, &g.Title, &g.Category, &g.Description, (*[]string)(&g.Tags), &g.Featured, &g.SortOrder, &g.Status,
		&g.Filename, &g.URL, &g.ThumbnailURL, &g.Size, &g.MimeType, &g.CreatedAt, &g.UpdatedAt,
	)
}

// Create creates a new gallery item
func (r *GalleryRepository) Create(ctx context.Context, g *gallery.Item) error {
	query := `
		INSERT INTO gallery_items (
			id, title, category, description, tags, featured, sort_order, status,
			filename, url, thumbnail_url, size, mimetype
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		g.ID, g.Title, g.Category, g.Description, textArray(g.Tags), g.Featured, g.SortOrder, g.Status,
		g.Filename, g.URL, g.ThumbnailURL, g.Size, g.MimeType,
	).Scan(&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create gallery item: %w", err)
	}
	return nil
}

func (r *GalleryRepository) FindByID(ctx context.Context, id string) (*gallery.Item, error) {
	query := `SELECT ` + galleryColumns + ` FROM gallery_items WHERE id = $1`

	var g gallery.Item
	if err := scanGalleryItem(r.db.QueryRow(ctx, query, id), &g); err != nil {
		return nil, notFound(err, "gallery item")
	}
	return &g, nil
}

// Update writes the editable columns. File metadata is fixed at creation.
func (r *GalleryRepository) Update(ctx context.Context, g *gallery.Item) error {
	query := `
		UPDATE gallery_items SET
			title = $2, category = $3, description = $4, tags = $5, featured = $6,
			sort_order = $7, status = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		g.ID, g.Title, g.Category, g.Description, textArray(g.Tags), g.Featured,
		g.SortOrder, g.Status,
	).Scan(&g.UpdatedAt)
	if err != nil {
		return notFound(err, "gallery item")
	}
	return nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM gallery_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete gallery item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *GalleryRepository) List(ctx context.Context, q GalleryQuery) ([]gallery.Item, int64, error) {
	var w where
	if q.Category != "" {
		w.and("category = " + w.arg(q.Category))
	}
	if q.Featured != nil {
		w.and("featured = " + w.arg(*q.Featured))
	}
	if q.Status != "" {
		w.and("status = " + w.arg(q.Status))
	}
	if tag := strings.TrimSpace(q.Tag); tag != "" {
		w.and(w.arg(strings.ToLower(tag)) + " = ANY(tags)")
	}
	w.search(q.Search, "tags", "title", "description")

	whereClause := w.clause()

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM gallery_items %s", whereClause)
	if err := r.db.QueryRow(ctx, countQuery, w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count gallery items: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM gallery_items %s %s %s`,
		galleryColumns, whereClause, gallerySort.orderBy(q.SortBy, q.Order), w.paginate(q.Limit, q.Offset))

	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list gallery items: %w", err)
	}
	defer rows.Close()

	items := []gallery.Item{}
	for rows.Next() {
		var g gallery.Item
		if err := scanGalleryItem(rows, &g); err != nil {
			return nil, 0, fmt.Errorf("failed to scan gallery item: %w", err)
		}
		items = append(items, g)
	}
	return items, total, rows.Err()
}

// CategoryCounts counts items per category. activeOnly limits the count to
// what the public can see.
func (r *GalleryRepository) CategoryCounts(ctx context.Context, activeOnly bool) ([]gallery.CategoryCount, error) {
	query := `SELECT category, COUNT(*) FROM gallery_items`
	if activeOnly {
		query += ` WHERE status = 'active'`
	}
	query += ` GROUP BY category ORDER BY COUNT(*) DESC, category ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count gallery categories: %w", err)
	}
	defer rows.Close()

	counts := []gallery.CategoryCount{}
	for rows.Next() {
		var cc gallery.CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan gallery category: %w", err)
		}
		counts = append(counts, cc)
	}
	return counts, rows.Err()
}

func (r *GalleryRepository) GetStats(ctx context.Context) (*gallery.Stats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(CASE WHEN status = 'active' THEN 1 END) AS active,
			COUNT(CASE WHEN status = 'inactive' THEN 1 END) AS inactive,
			COUNT(CASE WHEN featured = TRUE THEN 1 END) AS featured,
			COALESCE(SUM(size), 0)::bigint AS total_size
		FROM gallery_items
	`

	var s gallery.Stats
	err := r.db.QueryRow(ctx, query).Scan(&s.Total, &s.Active, &s.Inactive, &s.Featured, &s.TotalSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get gallery stats: %w", err)
	}

	s.ByCategory, err = r.CategoryCounts(ctx, false)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
