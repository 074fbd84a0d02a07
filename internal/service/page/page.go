// internal/service/page/page.go
package page

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"mehndi-service/internal/domain/page"
	xerrors "mehndi-service/internal/pkg/errors"
	"mehndi-service/internal/pkg/ids"
	"mehndi-service/internal/pkg/pagination"
	"mehndi-service/internal/pkg/richtext"
	"mehndi-service/internal/pkg/slug"
	"mehndi-service/internal/repository/postgres"

	"go.uber.org/zap"
)

type Repository interface {
	Upsert(ctx context.Context, p *page.Page) (bool, error)
	FindBySlug(ctx context.Context, slug string) (*page.Page, error)
	SetStatus(ctx context.Context, slug, status string, updatedBy *string) error
	Delete(ctx context.Context, slug string) error
	List(ctx context.Context, q postgres.PageQuery) ([]page.Page, int64, error)
}

type PageService struct {
	pageRepo Repository
	logger   *zap.Logger
}

func NewPageService(pageRepo Repository, logger *zap.Logger) *PageService {
	return &PageService{
		pageRepo: pageRepo,
		logger:   logger,
	}
}

// UpsertPage replaces the page stored at pageSlug, creating it when absent.
// The bool result reports whether the page was created.
func (s *PageService) UpsertPage(ctx context.Context, pageSlug string, req *page.UpsertPageRequest, adminID string) (*page.Page, bool, error) {
	pageSlug, err := cleanSlug(pageSlug)
	if err != nil {
		return nil, false, err
	}

	sections, err := buildSections(req.Sections)
	if err != nil {
		return nil, false, err
	}

	status := req.Status
	if status == "" {
		status = page.StatusDraft
		existing, err := s.pageRepo.FindBySlug(ctx, pageSlug)
		switch {
		case err == nil:
			status = existing.Status
		case !errors.Is(err, xerrors.ErrNotFound):
			return nil, false, err
		}
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = slug.Title(pageSlug)
	}

	p := &page.Page{
		ID:              ids.New(),
		Slug:            pageSlug,
		Title:           title,
		Sections:        sections,
		Status:          status,
		MetaTitle:       strings.TrimSpace(req.MetaTitle),
		MetaDescription: strings.TrimSpace(req.MetaDescription),
	}
	if adminID != "" {
		p.UpdatedBy = &adminID
	}

	created, err := s.pageRepo.Upsert(ctx, p)
	if err != nil {
		s.logger.Error("failed to save page", zap.String("slug", pageSlug), zap.Error(err))
		return nil, false, fmt.Errorf("failed to save page: %w", err)
	}

	s.logger.Info("page saved",
		zap.String("slug", p.Slug),
		zap.Bool("created", created),
		zap.Int("sections", len(p.Sections)),
	)
	return p, created, nil
}

// GetPage hides drafts from the public.
func (s *PageService) GetPage(ctx context.Context, pageSlug string, isAdmin bool) (*page.Page, error) {
	pageSlug, err := cleanSlug(pageSlug)
	if err != nil {
		return nil, xerrors.ErrNotFound
	}
	p, err := s.pageRepo.FindBySlug(ctx, pageSlug)
	if err != nil {
		return nil, err
	}
	if p.Status != page.StatusPublished && !isAdmin {
		return nil, xerrors.ErrNotFound
	}
	return p, nil
}

func (s *PageService) ListPages(ctx context.Context, f *page.ListFilters) (*pagination.Result[page.Page], error) {
	f.Normalize()

	pages, total, err := s.pageRepo.List(ctx, postgres.PageQuery{
		Status: f.Status,
		Search: f.Search,
		Limit:  f.Limit,
		Offset: f.Offset(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	return &pagination.Result[page.Page]{Items: pages, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

func (s *PageService) SetStatus(ctx context.Context, pageSlug, status, adminID string) (*page.Page, error) {
	pageSlug, err := cleanSlug(pageSlug)
	if err != nil {
		return nil, err
	}

	var updatedBy *string
	if adminID != "" {
		updatedBy = &adminID
	}
	if err := s.pageRepo.SetStatus(ctx, pageSlug, status, updatedBy); err != nil {
		return nil, err
	}

	s.logger.Info("page status updated", zap.String("slug", pageSlug), zap.String("status", status))
	return s.pageRepo.FindBySlug(ctx, pageSlug)
}

func (s *PageService) DeletePage(ctx context.Context, pageSlug string) error {
	pageSlug, err := cleanSlug(pageSlug)
	if err != nil {
		return err
	}
	if err := s.pageRepo.Delete(ctx, pageSlug); err != nil {
		return err
	}
	s.logger.Info("page deleted", zap.String("slug", pageSlug))
	return nil
}

// maxSlugLength is the width of pages.slug.
const maxSlugLength = 100

func cleanSlug(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) > maxSlugLength {
		return "", xerrors.NewValidationError("slug", fmt.Sprintf("must be at most %d characters", maxSlugLength))
	}
	if !slug.IsValid(s) {
		return "", xerrors.NewValidationError("slug", "must contain only lowercase letters, numbers and single hyphens")
	}
	return s, nil
}

// buildSections fills section defaults, sanitises markup inside content and
// returns the sections ordered by their order field.
func buildSections(in []page.SectionInput) ([]page.Section, error) {
	out := make([]page.Section, 0, len(in))
	seen := make(map[string]bool, len(in))

	for i, si := range in {
		sec := page.Section{
			ID:      strings.TrimSpace(si.ID),
			Type:    si.Type,
			Title:   strings.TrimSpace(si.Title),
			Order:   i,
			Visible: true,
		}
		if sec.ID == "" {
			sec.ID = strings.ToLower(ids.New())
		}
		if seen[sec.ID] {
			return nil, xerrors.NewValidationError(fmt.Sprintf("sections[%d].id", i), "must be unique within the page")
		}
		seen[sec.ID] = true
		if si.Order != nil {
			sec.Order = *si.Order
		}
		if si.Visible != nil {
			sec.Visible = *si.Visible
		}

		content, err := sanitizeContent(si.Content)
		if err != nil {
			return nil, xerrors.NewValidationError(fmt.Sprintf("sections[%d].content", i), "must be valid JSON")
		}
		sec.Content = content
		out = append(out, sec)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

// sanitizeContent walks free-form section content and sanitises every string
// that carries markup. Plain strings are left untouched.
func sanitizeContent(raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return json.Marshal(sanitizeValue(v))
}

func sanitizeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case string:
		if strings.ContainsAny(t, "<>") {
			return richtext.Sanitize(t)
		}
		return t
	case []interface{}:
		for i := range t {
			t[i] = sanitizeValue(t[i])
		}
		return t
	case map[string]interface{}:
		for k := range t {
			t[k] = sanitizeValue(t[k])
		}
		return t
	default:
		return v
	}
}
