// internal/service/catalog/catalog.go
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mehndi-service/internal/domain/bulk"
	"mehndi-service/internal/domain/catalog"
	xerrors "mehndi-service/internal/pkg/errors"
	"mehndi-service/internal/pkg/ids"
	"mehndi-service/internal/pkg/money"
	"mehndi-service/internal/pkg/pagination"
	"mehndi-service/internal/repository/postgres"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, s *catalog.Service) error
	FindByID(ctx context.Context, id string) (*catalog.Service, error)
	Update(ctx context.Context, s *catalog.Service) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q postgres.ServiceQuery) ([]catalog.Service, int64, error)
	GetStats(ctx context.Context) (*catalog.Stats, error)
}

// FileRemover deletes an uploaded file by the public path stored on a record.
type FileRemover interface {
	DeleteByRef(ref string) error
}

type CatalogService struct {
	serviceRepo Repository
	files       FileRemover
	logger      *zap.Logger
}

func NewCatalogService(serviceRepo Repository, files FileRemover, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		serviceRepo: serviceRepo,
		files:       files,
		logger:      logger,
	}
}

func (s *CatalogService) CreateService(ctx context.Context, req *catalog.CreateServiceRequest) (*catalog.Service, error) {
	minPrice, maxPrice := money.Round(req.MinPrice), money.Round(req.MaxPrice)
	if maxPrice <= minPrice {
		return nil, xerrors.NewValidationError("maxPrice", "must be greater than minPrice")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	category := req.Category
	if category == "" {
		category = "other"
	}

	svc := &catalog.Service{
		ID:          ids.New(),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
		Duration:    strings.TrimSpace(req.Duration),
		Category:    category,
		Features:    cleanList(req.Features),
		Active:      active,
		Popular:     req.Popular,
		Image:       strings.TrimSpace(req.Image),
		SortOrder:   req.SortOrder,
	}

	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		s.logger.Error("failed to create service", zap.Error(err))
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	s.logger.Info("service created", zap.String("id", svc.ID), zap.String("title", svc.Title))
	return svc, nil
}

// GetService hides inactive services from the public.
func (s *CatalogService) GetService(ctx context.Context, id string, isAdmin bool) (*catalog.Service, error) {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !svc.Active && !isAdmin {
		return nil, xerrors.ErrNotFound
	}
	return svc, nil
}

// UpdateService merges req onto the service and re-checks the price range
// on the merged values.
func (s *CatalogService) UpdateService(ctx context.Context, id string, req *catalog.UpdateServiceRequest) (*catalog.Service, error) {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		svc.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		svc.Description = strings.TrimSpace(*req.Description)
	}
	if req.MinPrice != nil {
		svc.MinPrice = money.Round(*req.MinPrice)
	}
	if req.MaxPrice != nil {
		svc.MaxPrice = money.Round(*req.MaxPrice)
	}
	if req.Duration != nil {
		svc.Duration = strings.TrimSpace(*req.Duration)
	}
	if req.Category != nil {
		svc.Category = *req.Category
	}
	if req.Features != nil {
		svc.Features = cleanList(*req.Features)
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}
	if req.Popular != nil {
		svc.Popular = *req.Popular
	}
	if req.Image != nil {
		svc.Image = strings.TrimSpace(*req.Image)
	}
	if req.SortOrder != nil {
		svc.SortOrder = *req.SortOrder
	}

	if svc.MaxPrice <= svc.MinPrice {
		return nil, xerrors.NewValidationError("maxPrice", "must be greater than minPrice")
	}

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}

	s.logger.Info("service updated", zap.String("id", svc.ID))
	return svc, nil
}

// ToggleService flips the active flag.
func (s *CatalogService) ToggleService(ctx context.Context, id string) (*catalog.Service, error) {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	svc.Active = !svc.Active
	if err := s.serviceRepo.SetActive(ctx, id, svc.Active); err != nil {
		return nil, err
	}

	s.logger.Info("service toggled", zap.String("id", id), zap.Bool("active", svc.Active))
	return svc, nil
}

// DeleteService removes the service image first, then the record.
func (s *CatalogService) DeleteService(ctx context.Context, id string) error {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if svc.Image != "" && s.files != nil {
		if err := s.files.DeleteByRef(svc.Image); err != nil && !errors.Is(err, xerrors.ErrNotFound) {
			return fmt.Errorf("failed to delete service image: %w", err)
		}
	}

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("service deleted", zap.String("id", id), zap.String("title", svc.Title))
	return nil
}

// ListServices shows only active services to the public. Admins may ask for
// inactive ones or all of them.
func (s *CatalogService) ListServices(ctx context.Context, f *catalog.ListFilters, isAdmin bool) (*pagination.Result[catalog.Service], error) {
	f.Normalize()

	q := postgres.ServiceQuery{
		Category: f.Category,
		Popular:  f.Popular,
		Search:   f.Search,
		SortBy:   f.SortBy,
		Order:    f.Order,
		Limit:    f.Limit,
		Offset:   f.Offset(),
	}

	active := true
	switch {
	case !isAdmin:
		q.Active = &active
	case f.Active == "all":
	case f.Active == "false":
		inactive := false
		q.Active = &inactive
	default:
		q.Active = &active
	}

	items, total, err := s.serviceRepo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return &pagination.Result[catalog.Service]{Items: items, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

func (s *CatalogService) GetStats(ctx context.Context) (*catalog.Stats, error) {
	stats, err := s.serviceRepo.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get service stats: %w", err)
	}
	return stats, nil
}

func (s *CatalogService) Bulk(ctx context.Context, req *catalog.BulkRequest) (*bulk.Result, error) {
	var fn func(ctx context.Context, id string) error

	switch req.Action {
	case bulk.ActionDelete:
		fn = s.DeleteService
	case bulk.ActionUpdate:
		if req.Data == nil {
			return nil, xerrors.NewValidationError("data", "is required")
		}
		fn = func(ctx context.Context, id string) error {
			_, err := s.UpdateService(ctx, id, req.Data)
			return err
		}
	case bulk.ActionActivate, bulk.ActionDeactivate:
		active := req.Action == bulk.ActionActivate
		fn = func(ctx context.Context, id string) error {
			return s.serviceRepo.SetActive(ctx, id, active)
		}
	default:
		return nil, xerrors.NewValidationError("action", "must be one of: delete update activate deactivate")
	}

	res := bulk.Run(ctx, req.Action, req.IDs, fn)
	s.logger.Info("bulk service action",
		zap.String("action", res.Action),
		zap.Int("succeeded", res.Succeeded),
		zap.Int("failed", len(res.Failed)),
	)
	return &res, nil
}

// cleanList trims entries and drops blanks.
func cleanList(in []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
