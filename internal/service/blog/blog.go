// internal/service/blog/blog.go
package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mehndi-service/internal/domain/blog"
	"mehndi-service/internal/domain/bulk"
	xerrors "mehndi-service/internal/pkg/errors"
	"mehndi-service/internal/pkg/ids"
	"mehndi-service/internal/pkg/pagination"
	"mehndi-service/internal/pkg/richtext"
	"mehndi-service/internal/pkg/slug"
	"mehndi-service/internal/repository/postgres"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const defaultAuthor = "Admin"

type Repository interface {
	Create(ctx context.Context, p *blog.Post) error
	FindByID(ctx context.Context, id string) (*blog.Post, error)
	FindBySlug(ctx context.Context, slug string) (*blog.Post, error)
	ViewBySlug(ctx context.Context, slug string) (*blog.Post, error)
	Like(ctx context.Context, id string) (int64, error)
	SlugTaken(ctx context.Context, slug, exceptID string) (bool, error)
	Update(ctx context.Context, p *blog.Post) error
	SetPublished(ctx context.Context, id string, published bool) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q postgres.BlogQuery) ([]blog.Post, int64, error)
	GetStats(ctx context.Context) (*blog.Stats, error)
}

type FileRemover interface {
	DeleteByRef(ref string) error
}

type BlogService struct {
	blogRepo Repository
	files    FileRemover
	logger   *zap.Logger
	now      func() time.Time
}

func NewBlogService(blogRepo Repository, files FileRemover, logger *zap.Logger) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		files:    files,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *BlogService) CreatePost(ctx context.Context, req *blog.CreatePostRequest) (*blog.Post, error) {
	postSlug, err := s.resolveSlug(ctx, req.Slug, req.Title, "")
	if err != nil {
		return nil, err
	}

	p := &blog.Post{
		ID:            ids.New(),
		Title:         strings.TrimSpace(req.Title),
		Slug:          postSlug,
		Excerpt:       strings.TrimSpace(req.Excerpt),
		Content:       req.Content,
		ContentFormat: req.ContentFormat,
		Category:      req.Category,
		Tags:          normalizeTags(req.Tags),
		FeaturedImage: strings.TrimSpace(req.FeaturedImage),
		Author:        strings.TrimSpace(req.Author),
		Published:     req.Published,
		Featured:      req.Featured,
	}
	if p.ContentFormat == "" {
		p.ContentFormat = blog.FormatHTML
	}
	if p.Category == "" {
		p.Category = "other"
	}
	if p.Author == "" {
		p.Author = defaultAuthor
	}
	if p.Published {
		at := s.now().UTC()
		p.PublishedAt = &at
	}
	if err := render(p); err != nil {
		return nil, err
	}

	if err := s.blogRepo.Create(ctx, p); err != nil {
		if errors.Is(err, xerrors.ErrConflict) {
			return nil, err
		}
		s.logger.Error("failed to create post", zap.Error(err))
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("post created",
		zap.String("id", p.ID),
		zap.String("slug", p.Slug),
		zap.Bool("published", p.Published),
	)
	return p, nil
}

// GetPost resolves a ULID id or a slug. A slug read by the public counts one
// view; id reads and admin reads never do. Drafts are hidden from the public.
func (s *BlogService) GetPost(ctx context.Context, idOrSlug string, isAdmin bool) (*blog.Post, error) {
	var (
		p   *blog.Post
		err error
	)

	switch {
	case ids.IsID(idOrSlug):
		p, err = s.blogRepo.FindByID(ctx, ids.Normalize(idOrSlug))
	case isAdmin:
		p, err = s.blogRepo.FindBySlug(ctx, strings.ToLower(idOrSlug))
	default:
		return s.blogRepo.ViewBySlug(ctx, strings.ToLower(idOrSlug))
	}
	if err != nil {
		return nil, err
	}
	if !p.Published && !isAdmin {
		return nil, xerrors.ErrNotFound
	}
	return p, nil
}

// LikePost adds one like to a published post and returns the new total.
func (s *BlogService) LikePost(ctx context.Context, idOrSlug string) (int64, error) {
	id := ids.Normalize(idOrSlug)
	if !ids.IsID(idOrSlug) {
		p, err := s.blogRepo.FindBySlug(ctx, strings.ToLower(idOrSlug))
		if err != nil {
			return 0, err
		}
		id = p.ID
	}
	return s.blogRepo.Like(ctx, id)
}

func (s *BlogService) UpdatePost(ctx context.Context, id string, req *blog.UpdatePostRequest) (*blog.Post, error) {
	p, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		p.Title = strings.TrimSpace(*req.Title)
	}
	if req.Slug != nil && *req.Slug != p.Slug {
		postSlug, err := s.resolveSlug(ctx, *req.Slug, p.Title, p.ID)
		if err != nil {
			return nil, err
		}
		p.Slug = postSlug
	}
	if req.Excerpt != nil {
		p.Excerpt = strings.TrimSpace(*req.Excerpt)
	}
	if req.Content != nil {
		p.Content = *req.Content
	}
	if req.ContentFormat != nil {
		p.ContentFormat = *req.ContentFormat
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Tags != nil {
		p.Tags = normalizeTags(*req.Tags)
	}
	if req.FeaturedImage != nil {
		p.FeaturedImage = strings.TrimSpace(*req.FeaturedImage)
	}
	if req.Author != nil {
		p.Author = strings.TrimSpace(*req.Author)
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.Published != nil {
		p.Published = *req.Published
		if p.Published && p.PublishedAt == nil {
			at := s.now().UTC()
			p.PublishedAt = &at
		}
	}
	if err := render(p); err != nil {
		return nil, err
	}

	if err := s.blogRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("post updated", zap.String("id", p.ID), zap.String("slug", p.Slug))
	return p, nil
}

func (s *BlogService) SetPublished(ctx context.Context, id string, published bool) error {
	if err := s.blogRepo.SetPublished(ctx, id, published); err != nil {
		return err
	}
	s.logger.Info("post publish state changed", zap.String("id", id), zap.Bool("published", published))
	return nil
}

// DeletePost removes the featured image when it is one of our uploads, then
// the post.
func (s *BlogService) DeletePost(ctx context.Context, id string) error {
	p, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if p.FeaturedImage != "" {
		if err := s.files.DeleteByRef(p.FeaturedImage); err != nil && !errors.Is(err, xerrors.ErrNotFound) {
			return fmt.Errorf("failed to delete featured image: %w", err)
		}
	}

	if err := s.blogRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("post deleted", zap.String("id", id), zap.String("slug", p.Slug))
	return nil
}

func (s *BlogService) ListPosts(ctx context.Context, f *blog.ListFilters, isAdmin bool) (*pagination.Result[blog.Post], error) {
	f.Normalize()

	q := postgres.BlogQuery{
		Category: f.Category,
		Tag:      f.Tag,
		Featured: f.Featured,
		Search:   f.Search,
		SortBy:   f.SortBy,
		Order:    f.Order,
		Limit:    f.Limit,
		Offset:   f.Offset(),
	}

	published := true
	switch {
	case !isAdmin, f.Published == "true":
		q.Published = &published
	case f.Published == "false":
		published = false
		q.Published = &published
	case f.Published == "all":
	default:
		q.Published = &published
	}

	posts, total, err := s.blogRepo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return &pagination.Result[blog.Post]{Items: posts, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

func (s *BlogService) GetStats(ctx context.Context) (*blog.Stats, error) {
	stats, err := s.blogRepo.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get blog stats: %w", err)
	}
	return stats, nil
}

// Bulk: activate publishes, deactivate unpublishes.
func (s *BlogService) Bulk(ctx context.Context, req *blog.BulkRequest) (*bulk.Result, error) {
	var fn func(ctx context.Context, id string) error

	switch req.Action {
	case bulk.ActionDelete:
		fn = s.DeletePost
	case bulk.ActionUpdate:
		if req.Data == nil {
			return nil, xerrors.NewValidationError("data", "is required")
		}
		if req.Data.Slug != nil && len(req.IDs) > 1 {
			return nil, xerrors.NewValidationError("data.slug", "cannot be set on more than one post")
		}
		fn = func(ctx context.Context, id string) error {
			_, err := s.UpdatePost(ctx, id, req.Data)
			return err
		}
	case bulk.ActionActivate:
		fn = func(ctx context.Context, id string) error { return s.SetPublished(ctx, id, true) }
	case bulk.ActionDeactivate:
		fn = func(ctx context.Context, id string) error { return s.SetPublished(ctx, id, false) }
	default:
		return nil, xerrors.NewValidationError("action", "must be one of: delete update activate deactivate")
	}

	res := bulk.Run(ctx, req.Action, req.IDs, fn)
	s.logger.Info("bulk post action",
		zap.String("action", res.Action),
		zap.Int("succeeded", res.Succeeded),
		zap.Int("failed", len(res.Failed)),
	)
	return &res, nil
}

// maxSlugLength is the width of blog_posts.slug.
const maxSlugLength = 220

// resolveSlug derives the slug from the title when none is given and makes
// sure no other post holds it. Derived slugs are cut to maxSlugLength.
func (s *BlogService) resolveSlug(ctx context.Context, requested, title, exceptID string) (string, error) {
	postSlug := slug.Make(requested)
	if postSlug == "" {
		postSlug = slug.Make(title)
		if len(postSlug) > maxSlugLength {
			postSlug = strings.TrimRight(postSlug[:maxSlugLength], "-")
		}
	}
	if postSlug == "" {
		return "", xerrors.NewValidationError("slug", "cannot be derived from the title")
	}

	taken, err := s.blogRepo.SlugTaken(ctx, postSlug, exceptID)
	if err != nil {
		return "", err
	}
	if taken {
		return "", fmt.Errorf("%w: slug %q is already in use", xerrors.ErrConflict, postSlug)
	}
	return postSlug, nil
}

func render(p *blog.Post) error {
	out, err := richtext.Render(p.ContentFormat, p.Content)
	if err != nil {
		return xerrors.NewValidationError("contentFormat", "must be one of: html markdown")
	}
	p.ContentHTML = out
	p.ReadTime = richtext.ReadTime(out)
	return nil
}

func normalizeTags(in []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, t := range in {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
