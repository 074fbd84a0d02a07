// internal/repository/postgres/blog_repo.go
package postgres

import (
	"context"
	"fmt"
	"strings"

	"mehndi-service/internal/domain/blog"
	xerrors "mehndi-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

const blogColumns = `id, title, slug, excerpt, content, content_format, content_html, category, tags,
	featured_image, author, published, published_at, featured, views, likes, read_time,
	created_at, updated_at`

var blogSort = sortSpec{
	columns: map[string]string{
		"publishedAt": "published_at",
		"createdAt":   "created_at",
		"title":       "title",
		"views":       "views",
		"likes":       "likes",
	},
	defaults: "featured DESC, published_at DESC NULLS LAST",
}

type BlogQuery struct {
	Published *bool
	Category  string
	Tag       string
	Featured  *bool
	Search    string
	SortBy    string
	Order     string
	Limit     int
	Offset    int
}

type BlogRepository struct {
	db *pgxpool.Pool
}

func NewBlogRepository(db *pgxpool.Pool) *BlogRepository {
	return &BlogRepository{db: db}
}

func scanPost(row interface{ Scan(...interface{}) error }, p *blog.Post) error {
	return row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.ContentFormat, &p.ContentHTML, &p.Category, (*[]string)(&p.Tags),
		&p.FeaturedImage, &p.Author, &p.Published, &p.PublishedAt, &p.Featured, &p.Views, &p.Likes, &p.ReadTime,
		&p.CreatedAt, &p.UpdatedAt,
	)
}

// Create creates a new post. A taken slug is ErrConflict.
func (r *BlogRepository) Create(ctx context.Context, p *blog.Post) error {
	query := `
		INSERT INTO blog_posts (
			id, title, slug, excerpt, content, content_format, content_html, category, tags,
			featured_image, author, published, published_at, featured, read_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.ContentFormat, p.ContentHTML, p.Category, textArray(p.Tags),
		p.FeaturedImage, p.Author, p.Published, p.PublishedAt, p.Featured, p.ReadTime,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: slug %q is already in use", xerrors.ErrConflict, p.Slug)
	}
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*blog.Post, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE id = $1`

	var p blog.Post
	if err := scanPost(r.db.QueryRow(ctx, query, id), &p); err != nil {
		return nil, notFound(err, "post")
	}
	return &p, nil
}

func (r *BlogRepository) FindBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE slug = $1`

	var p blog.Post
	if err := scanPost(r.db.QueryRow(ctx, query, slug), &p); err != nil {
		return nil, notFound(err, "post")
	}
	return &p, nil
}

// ViewBySlug increments the view counter of a published post and returns
// the post as stored after the increment.
func (r *BlogRepository) ViewBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	query := `
		UPDATE blog_posts SET views = views + 1
		WHERE slug = $1 AND published = TRUE
		RETURNING ` + blogColumns

	var p blog.Post
	if err := scanPost(r.db.QueryRow(ctx, query, slug), &p); err != nil {
		return nil, notFound(err, "post")
	}
	return &p, nil
}

// Like increments the like counter of a published post.
func (r *BlogRepository) Like(ctx context.Context, id string) (int64, error) {
	var likes int64
	err := r.db.QueryRow(ctx, `
		UPDATE blog_posts SET likes = likes + 1
		WHERE id = $1 AND published = TRUE
		RETURNING likes
	`, id).Scan(&likes)
	if err != nil {
		return 0, notFound(err, "post")
	}
	return likes, nil
}

func (r *BlogRepository) SlugTaken(ctx context.Context, slug, exceptID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM blog_posts WHERE slug = $1 AND id <> $2)`, slug, exceptID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

func (r *BlogRepository) Update(ctx context.Context, p *blog.Post) error {
	query := `
		UPDATE blog_posts SET
			title = $2, slug = $3, excerpt = $4, content = $5, content_format = $6,
			content_html = $7, category = $8, tags = $9, featured_image = $10, author = $11,
			published = $12, published_at = $13, featured = $14, read_time = $15, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.ContentFormat,
		p.ContentHTML, p.Category, textArray(p.Tags), p.FeaturedImage, p.Author,
		p.Published, p.PublishedAt, p.Featured, p.ReadTime,
	).Scan(&p.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: slug %q is already in use", xerrors.ErrConflict, p.Slug)
	}
	if err != nil {
		return notFound(err, "post")
	}
	return nil
}

// SetPublished publishes or unpublishes a post. published_at is set the
// first time a post is published and kept afterwards.
func (r *BlogRepository) SetPublished(ctx context.Context, id string, published bool) error {
	result, err := r.db.Exec(ctx, `
		UPDATE blog_posts SET
			published = $2,
			published_at = CASE WHEN $2 AND published_at IS NULL THEN NOW() ELSE published_at END,
			updated_at = NOW()
		WHERE id = $1
	`, id, published)
	if err != nil {
		return fmt.Errorf("failed to update post status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *BlogRepository) List(ctx context.Context, q BlogQuery) ([]blog.Post, int64, error) {
	var w where
	if q.Published != nil {
		w.and("published = " + w.arg(*q.Published))
	}
	if q.Category != "" {
		w.and("category = " + w.arg(q.Category))
	}
	if q.Featured != nil {
		w.and("featured = " + w.arg(*q.Featured))
	}
	if tag := strings.TrimSpace(q.Tag); tag != "" {
		w.and(w.arg(strings.ToLower(tag)) + " = ANY(tags)")
	}
	w.search(q.Search, "tags", "title", "excerpt", "content")

	whereClause := w.clause()

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM blog_posts %s", whereClause)
	if err := r.db.QueryRow(ctx, countQuery, w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM blog_posts %s %s %s`,
		blogColumns, whereClause, blogSort.orderBy(q.SortBy, q.Order), w.paginate(q.Limit, q.Offset))

	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := []blog.Post{}
	for rows.Next() {
		var p blog.Post
		if err := scanPost(rows, &p); err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, total, rows.Err()
}

func (r *BlogRepository) GetStats(ctx context.Context) (*blog.Stats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(CASE WHEN published = TRUE THEN 1 END) AS published,
			COUNT(CASE WHEN published = FALSE THEN 1 END) AS drafts,
			COUNT(CASE WHEN featured = TRUE THEN 1 END) AS featured,
			COALESCE(SUM(views), 0)::bigint AS total_views,
			COALESCE(SUM(likes), 0)::bigint AS total_likes
		FROM blog_posts
	`

	var s blog.Stats
	err := r.db.QueryRow(ctx, query).Scan(&s.Total, &s.Published, &s.Drafts, &s.Featured, &s.TotalViews, &s.TotalLikes)
	if err != nil {
		return nil, fmt.Errorf("failed to get blog stats: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT category, COUNT(*) FROM blog_posts GROUP BY category ORDER BY COUNT(*) DESC, category ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get blog category stats: %w", err)
	}
	defer rows.Close()

	s.ByCategory = []blog.CategoryCount{}
	for rows.Next() {
		var cc blog.CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan blog category stats: %w", err)
		}
		s.ByCategory = append(s.ByCategory, cc)
	}
	return &s, rows.Err()
}
