// internal/service/gallery/gallery.go
package gallery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mehndi-service/internal/domain/bulk"
	"mehndi-service/internal/domain/gallery"
	xerrors "mehndi-service/internal/pkg/errors"
	"mehndi-service/internal/pkg/ids"
	"mehndi-service/internal/pkg/pagination"
	"mehndi-service/internal/pkg/storage"
	"mehndi-service/internal/repository/postgres"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, g *gallery.Item) error
	FindByID(ctx context.Context, id string) (*gallery.Item, error)
	Update(ctx context.Context, g *gallery.Item) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q postgres.GalleryQuery) ([]gallery.Item, int64, error)
	CategoryCounts(ctx context.Context, activeOnly bool) ([]gallery.CategoryCount, error)
	GetStats(ctx context.Context) (*gallery.Stats, error)
}

// Files is the part of the upload store the gallery needs.
type Files interface {
	Stat(kind storage.Kind, filename string) (*storage.Stored, error)
	Delete(kind storage.Kind, filename string) error
}

type GalleryService struct {
	galleryRepo Repository
	files       Files
	logger      *zap.Logger
}

func NewGalleryService(galleryRepo Repository, files Files, logger *zap.Logger) *GalleryService {
	return &GalleryService{
		galleryRepo: galleryRepo,
		files:       files,
		logger:      logger,
	}
}

// CreateItem registers a file previously uploaded to the gallery directory.
func (s *GalleryService) CreateItem(ctx context.Context, req *gallery.CreateItemRequest) (*gallery.Item, error) {
	stored, err := s.files.Stat(storage.KindGallery, strings.TrimSpace(req.Filename))
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.NewValidationError("filename", "no uploaded gallery image has this name")
		}
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = gallery.StatusActive
	}

	item := &gallery.Item{
		ID:           ids.New(),
		Title:        strings.TrimSpace(req.Title),
		Category:     req.Category,
		Description:  strings.TrimSpace(req.Description),
		Tags:         normalizeTags(req.Tags),
		Featured:     req.Featured,
		SortOrder:    req.SortOrder,
		Status:       status,
		Filename:     stored.Filename,
		URL:          stored.Path,
		ThumbnailURL: stored.ThumbnailPath,
		Size:         stored.Size,
		MimeType:     stored.MimeType,
	}

	if err := s.galleryRepo.Create(ctx, item); err != nil {
		s.logger.Error("failed to create gallery item", zap.Error(err))
		return nil, fmt.Errorf("failed to create gallery item: %w", err)
	}

	s.logger.Info("gallery item created",
		zap.String("id", item.ID),
		zap.String("filename", item.Filename),
		zap.String("category", item.Category),
	)
	return item, nil
}

// GetItem hides inactive items from the public.
func (s *GalleryService) GetItem(ctx context.Context, id string, isAdmin bool) (*gallery.Item, error) {
	item, err := s.galleryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Status != gallery.StatusActive && !isAdmin {
		return nil, xerrors.ErrNotFound
	}
	return item, nil
}

func (s *GalleryService) UpdateItem(ctx context.Context, id string, req *gallery.UpdateItemRequest) (*gallery.Item, error) {
	item, err := s.galleryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		item.Title = strings.TrimSpace(*req.Title)
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Description != nil {
		item.Description = strings.TrimSpace(*req.Description)
	}
	if req.Tags != nil {
		item.Tags = normalizeTags(*req.Tags)
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}
	if req.SortOrder != nil {
		item.SortOrder = *req.SortOrder
	}
	if req.Status != nil {
		item.Status = *req.Status
	}

	if err := s.galleryRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("gallery item updated", zap.String("id", item.ID))
	return item, nil
}

// DeleteItem removes the image and its thumbnail, then the record. A file
// that is already gone does not block the delete.
func (s *GalleryService) DeleteItem(ctx context.Context, id string) error {
	item, err := s.galleryRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.files.Delete(storage.KindGallery, item.Filename); err != nil {
		if !errors.Is(err, xerrors.ErrNotFound) {
			return fmt.Errorf("failed to delete gallery file: %w", err)
		}
		s.logger.Warn("gallery file already missing", zap.String("id", id), zap.String("filename", item.Filename))
	}

	if err := s.galleryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("gallery item deleted", zap.String("id", id), zap.String("filename", item.Filename))
	return nil
}

func (s *GalleryService) ListItems(ctx context.Context, f *gallery.ListFilters, isAdmin bool) (*pagination.Result[gallery.Item], error) {
	f.Normalize()

	q := postgres.GalleryQuery{
		Category: f.Category,
		Featured: f.Featured,
		Search:   f.Search,
		Tag:      strings.ToLower(strings.TrimSpace(f.Tag)),
		SortBy:   f.SortBy,
		Order:    f.Order,
		Limit:    f.Limit,
		Offset:   f.Offset(),
	}

	switch {
	case !isAdmin:
		q.Status = gallery.StatusActive
	case f.Status == "all":
	case f.Status != "":
		q.Status = f.Status
	}

	items, total, err := s.galleryRepo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery items: %w", err)
	}
	return &pagination.Result[gallery.Item]{Items: items, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

// Categories counts items per category; the public only sees active items.
func (s *GalleryService) Categories(ctx context.Context, isAdmin bool) ([]gallery.CategoryCount, error) {
	counts, err := s.galleryRepo.CategoryCounts(ctx, !isAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to count gallery categories: %w", err)
	}
	return counts, nil
}

func (s *GalleryService) GetStats(ctx context.Context) (*gallery.Stats, error) {
	stats, err := s.galleryRepo.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get gallery stats: %w", err)
	}
	return stats, nil
}

func (s *GalleryService) Bulk(ctx context.Context, req *gallery.BulkRequest) (*bulk.Result, error) {
	var fn func(ctx context.Context, id string) error

	switch req.Action {
	case bulk.ActionDelete:
		fn = s.DeleteItem
	case bulk.ActionUpdate:
		if req.Data == nil {
			return nil, xerrors.NewValidationError("data", "is required")
		}
		fn = func(ctx context.Context, id string) error {
			_, err := s.UpdateItem(ctx, id, req.Data)
			return err
		}
	case bulk.ActionActivate, bulk.ActionDeactivate:
		status := gallery.StatusActive
		if req.Action == bulk.ActionDeactivate {
			status = gallery.StatusInactive
		}
		data := &gallery.UpdateItemRequest{Status: &status}
		fn = func(ctx context.Context, id string) error {
			_, err := s.UpdateItem(ctx, id, data)
			return err
		}
	default:
		return nil, xerrors.NewValidationError("action", "must be one of: delete update activate deactivate")
	}

	res := bulk.Run(ctx, req.Action, req.IDs, fn)
	s.logger.Info("bulk gallery action",
		zap.String("action", res.Action),
		zap.Int("succeeded", res.Succeeded),
		zap.Int("failed", len(res.Failed)),
	)
	return &res, nil
}

// normalizeTags lowercases, trims and de-duplicates tags, keeping order.
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
