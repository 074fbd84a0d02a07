package page

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"mehndi-service/internal/domain/page"
	xerrors "mehndi-service/internal/pkg/errors"
	"mehndi-service/internal/repository/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memPages struct {
	mu   sync.Mutex
	rows map[string]*page.Page
}

func (m *memPages) Upsert(_ context.Context, p *page.Page) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.rows[p.Slug]
	if ok {
		p.ID = existing.ID
	}
	cp := *p
	m.rows[p.Slug] = &cp
	return !ok, nil
}

func (m *memPages) FindBySlug(_ context.Context, slug string) (*page.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[slug]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memPages) SetStatus(_ context.Context, slug, status string, updatedBy *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[slug]
	if !ok {
		return xerrors.ErrNotFound
	}
	p.Status = status
	p.UpdatedBy = updatedBy
	return nil
}

func (m *memPages) Delete(_ context.Context, slug string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[slug]; !ok {
		return xerrors.ErrNotFound
	}
	delete(m.rows, slug)
	return nil
}

func (m *memPages) List(context.Context, postgres.PageQuery) ([]page.Page, int64, error) {
	return []page.Page{}, 0, nil
}

func newService() (*PageService, *memPages) {
	repo := &memPages{rows: map[string]*page.Page{}}
	return NewPageService(repo, zap.NewNop()), repo
}

func intPtr(i int) *int    { return &i }
func boolPtr(b bool) *bool { return &b }

func TestUpsertDefaults(t *testing.T) {
	s, _ := newService()

	p, created, err := s.UpsertPage(context.Background(), "about-us", &page.UpsertPageRequest{
		Sections: []page.SectionInput{
			{Type: "text", Order: intPtr(2), Content: json.RawMessage(`{"body":"<p>Hi</p><script>x()</script>","link":"a?b=1&c=2"}`)},
			{Type: "hero", Order: intPtr(1), Visible: boolPtr(false)},
		},
	}, "ADMIN1")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "About Us", p.Title)
	assert.Equal(t, page.StatusDraft, p.Status)
	require.NotNil(t, p.UpdatedBy)

	require.Len(t, p.Sections, 2)
	assert.Equal(t, "hero", p.Sections[0].Type)
	assert.False(t, p.Sections[0].Visible)
	assert.True(t, p.Sections[1].Visible)
	assert.NotEmpty(t, p.Sections[1].ID)

	var content map[string]string
	require.NoError(t, json.Unmarshal(p.Sections[1].Content, &content))
	assert.Equal(t, "<p>Hi</p>", content["body"])
	assert.Equal(t, "a?b=1&c=2", content["link"])
}

func TestUpsertKeepsStatusWhenOmitted(t *testing.T) {
	s, _ := newService()
	_, _, err := s.UpsertPage(context.Background(), "home", &page.UpsertPageRequest{Status: page.StatusPublished}, "")
	require.NoError(t, err)

	p, created, err := s.UpsertPage(context.Background(), "home", &page.UpsertPageRequest{Title: "Welcome"}, "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, page.StatusPublished, p.Status)
	assert.Equal(t, "Welcome", p.Title)
}

func TestUpsertRejectsDuplicateSectionIDs(t *testing.T) {
	s, repo := newService()
	_, _, err := s.UpsertPage(context.Background(), "faq", &page.UpsertPageRequest{
		Sections: []page.SectionInput{{ID: "a", Type: "faq"}, {ID: "a", Type: "faq"}},
	}, "")
	ve, ok := xerrors.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "sections[1].id", ve.Fields[0].Field)
	assert.Empty(t, repo.rows)
}

func TestUpsertRejectsOverlongSlug(t *testing.T) {
	s, repo := newService()

	_, _, err := s.UpsertPage(context.Background(), strings.Repeat("a", 101), &page.UpsertPageRequest{}, "")
	ve, ok := xerrors.AsValidation(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, "slug", ve.Fields[0].Field)
	assert.Empty(t, repo.rows)

	_, created, err := s.UpsertPage(context.Background(), strings.Repeat("a", 100), &page.UpsertPageRequest{}, "")
	require.NoError(t, err)
	assert.True(t, created)
}

func TestDraftHiddenFromPublic(t *testing.T) {
	s, _ := newService()
	_, _, err := s.UpsertPage(context.Background(), "pricing", &page.UpsertPageRequest{}, "")
	require.NoError(t, err)

	_, err = s.GetPage(context.Background(), "pricing", false)
	assert.ErrorIs(t, err, xerrors.ErrNotFound)

	_, err = s.SetStatus(context.Background(), "pricing", page.StatusPublished, "ADMIN1")
	require.NoError(t, err)

	p, err := s.GetPage(context.Background(), "PRICING", false)
	require.NoError(t, err)
	assert.Equal(t, "Pricing", p.Title)

	_, err = s.GetPage(context.Background(), "../etc", false)
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestDeletePage(t *testing.T) {
	s, repo := newService()
	_, _, err := s.UpsertPage(context.Background(), "contact", &page.UpsertPageRequest{}, "")
	require.NoError(t, err)

	require.NoError(t, s.DeletePage(context.Background(), "contact"))
	assert.Empty(t, repo.rows)
	assert.ErrorIs(t, s.DeletePage(context.Background(), "contact"), xerrors.ErrNotFound)
}
