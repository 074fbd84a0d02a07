// internal/repository/postgres/page_repo.go
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"mehndi-service/internal/domain/page"
	xerrors "mehndi-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

const pageColumns = `id, slug, title, sections, status, meta_title, meta_description, updated_by, created_at, updated_at`

type PageQuery struct {
	Status string
	Search string
	Limit  int
	Offset int
}

type PageRepository struct {
	db *pgxpool.Pool
}

func NewPageRepository(db *pgxpool.Pool) *PageRepository {
	return &PageRepository{db: db}
}

func scanPage(row interface{ Scan(...interface{}) error }, p *page.Page) error {
	var sectionsJSON []byte
	err := row.Scan(
		&p.ID, &p.Slug, &p.Title, &sectionsJSON, &p.Status, &p.MetaTitle, &p.MetaDescription,
		&p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return err
	}

	p.Sections = []page.Section{}
	if len(sectionsJSON) > 0 {
		if err := json.Unmarshal(sectionsJSON, &p.Sections); err != nil {
			return fmt.Errorf("failed to unmarshal sections: %w", err)
		}
	}
	return nil
}

// Upsert writes the page at p.Slug, inserting it when absent. p.ID is used
// only on insert; the stored id is written back.
func (r *PageRepository) Upsert(ctx context.Context, p *page.Page) (bool, error) {
	sectionsJSON, err := json.Marshal(p.Sections)
	if err != nil {
		return false, fmt.Errorf("failed to marshal sections: %w", err)
	}

	query := `
		INSERT INTO pages (id, slug, title, sections, status, meta_title, meta_description, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (slug) DO UPDATE SET
			title = EXCLUDED.title,
			sections = EXCLUDED.sections,
			status = EXCLUDED.status,
			meta_title = EXCLUDED.meta_title,
			meta_description = EXCLUDED.meta_description,
			updated_by = EXCLUDED.updated_by,
			updated_at = NOW()
		RETURNING id, created_at, updated_at, (xmax = 0) AS inserted
	`

	var inserted bool
	err = r.db.QueryRow(ctx, query,
		p.ID, p.Slug, p.Title, sectionsJSON, p.Status, p.MetaTitle, p.MetaDescription, p.UpdatedBy,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt, &inserted)
	if err != nil {
		return false, fmt.Errorf("failed to upsert page: %w", err)
	}
	return inserted, nil
}

func (r *PageRepository) FindBySlug(ctx context.Context, slug string) (*page.Page, error) {
	query := `SELECT ` + pageColumns + ` FROM pages WHERE slug = $1`

	var p page.Page
	if err := scanPage(r.db.QueryRow(ctx, query, slug), &p); err != nil {
		return nil, notFound(err, "page")
	}
	return &p, nil
}

func (r *PageRepository) SetStatus(ctx context.Context, slug, status string, updatedBy *string) error {
	result, err := r.db.Exec(ctx, `
		UPDATE pages SET status = $2, updated_by = $3, updated_at = NOW() WHERE slug = $1
	`, slug, status, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update page status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *PageRepository) Delete(ctx context.Context, slug string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM pages WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *PageRepository) List(ctx context.Context, q PageQuery) ([]page.Page, int64, error) {
	var w where
	if q.Status != "" {
		w.and("status = " + w.arg(q.Status))
	}
	w.search(q.Search, "", "slug", "title")

	whereClause := w.clause()

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM pages %s", whereClause)
	if err := r.db.QueryRow(ctx, countQuery, w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count pages: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM pages %s ORDER BY slug ASC, created_at DESC, id DESC %s`,
		pageColumns, whereClause, w.paginate(q.Limit, q.Offset))

	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pages: %w", err)
	}
	defer rows.Close()

	pages := []page.Page{}
	for rows.Next() {
		var p page.Page
		if err := scanPage(rows, &p); err != nil {
			return nil, 0, fmt.Errorf("failed to scan page: %w", err)
		}
		pages = append(pages, p)
	}
	return pages, total, rows.Err()
}
