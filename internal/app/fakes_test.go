package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"mehndi-service/internal/domain/admin"
	"mehndi-service/internal/domain/blog"
	"mehndi-service/internal/domain/gallery"
	xerrors "mehndi-service/internal/pkg/errors"
	"mehndi-service/internal/repository/postgres"
)

type memAdmins struct {
	mu   sync.Mutex
	byID map[string]*admin.Admin
}

func (m *memAdmins) Create(_ context.Context, a *admin.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.byID {
		if strings.EqualFold(x.Username, a.Username) || x.Email == a.Email {
			return xerrors.ErrConflict
		}
	}
	cp := *a
	cp.CreatedAt = time.Now()
	m.byID[a.ID] = &cp
	return nil
}

func (m *memAdmins) FindByID(_ context.Context, id string) (*admin.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memAdmins) FindByIdentifier(_ context.Context, identifier string) (*admin.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.byID {
		if strings.EqualFold(a.Username, identifier) || strings.EqualFold(a.Email, identifier) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (m *memAdmins) List(context.Context) ([]admin.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []admin.Admin{}
	for _, a := range m.byID {
		out = append(out, *a)
	}
	return out, nil
}

func (m *memAdmins) UpdateLastLogin(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return xerrors.ErrNotFound
	}
	now := time.Now()
	a.LastLogin = &now
	return nil
}

func (m *memAdmins) UpdatePassword(_ context.Context, id, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return xerrors.ErrNotFound
	}
	a.PasswordHash = hash
	return nil
}

func (m *memAdmins) SetActive(_ context.Context, id string, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return xerrors.ErrNotFound
	}
	a.IsActive = active
	return nil
}

func (m *memAdmins) CountByRole(_ context.Context, role string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, a := range m.byID {
		if a.Role == role {
			n++
		}
	}
	return n, nil
}

type memGallery struct {
	mu   sync.Mutex
	rows map[string]*gallery.Item
}

func (m *memGallery) Create(_ context.Context, g *gallery.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *g
	m.rows[g.ID] = &cp
	return nil
}

func (m *memGallery) FindByID(_ context.Context, id string) (*gallery.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.rows[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (m *memGallery) Update(_ context.Context, g *gallery.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[g.ID]; !ok {
		return xerrors.ErrNotFound
	}
	cp := *g
	m.rows[g.ID] = &cp
	return nil
}

func (m *memGallery) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memGallery) List(_ context.Context, q postgres.GalleryQuery) ([]gallery.Item, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []gallery.Item{}
	for _, g := range m.rows {
		if q.Status != "" && g.Status != q.Status {
			continue
		}
		out = append(out, *g)
	}
	return out, int64(len(out)), nil
}

func (m *memGallery) CategoryCounts(context.Context, bool) ([]gallery.CategoryCount, error) {
	return []gallery.CategoryCount{}, nil
}

func (m *memGallery) GetStats(context.Context) (*gallery.Stats, error) {
	return &gallery.Stats{}, nil
}

type memPosts struct {
	mu   sync.Mutex
	rows map[string]*blog.Post
}

func (m *memPosts) Create(_ context.Context, p *blog.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *memPosts) find(match func(*blog.Post) bool) (*blog.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.rows {
		if match(p) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (m *memPosts) FindByID(_ context.Context, id string) (*blog.Post, error) {
	return m.find(func(p *blog.Post) bool { return p.ID == id })
}

func (m *memPosts) FindBySlug(_ context.Context, slug string) (*blog.Post, error) {
	return m.find(func(p *blog.Post) bool { return p.Slug == slug })
}

func (m *memPosts) ViewBySlug(_ context.Context, slug string) (*blog.Post, error) {
	return m.find(func(p *blog.Post) bool {
		if p.Slug != slug || !p.Published {
			return false
		}
		p.Views++
		return true
	})
}

func (m *memPosts) Like(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok || !p.Published {
		return 0, xerrors.ErrNotFound
	}
	p.Likes++
	return p.Likes, nil
}

func (m *memPosts) SlugTaken(_ context.Context, slug, exceptID string) (bool, error) {
	_, err := m.find(func(p *blog.Post) bool { return p.Slug == slug && p.ID != exceptID })
	return err == nil, nil
}

func (m *memPosts) Update(_ context.Context, p *blog.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[p.ID]; !ok {
		return xerrors.ErrNotFound
	}
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *memPosts) SetPublished(_ context.Context, id string, published bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return xerrors.ErrNotFound
	}
	p.Published = published
	return nil
}

func (m *memPosts) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memPosts) List(context.Context, postgres.BlogQuery) ([]blog.Post, int64, error) {
	return []blog.Post{}, 0, nil
}

func (m *memPosts) GetStats(context.Context) (*blog.Stats, error) {
	return &blog.Stats{}, nil
}
