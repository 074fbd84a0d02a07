// internal/domain/admin/repository.go
package admin

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, a *Admin) error
	FindByID(ctx context.Context, id string) (*Admin, error)
	// FindByIdentifier matches username or email, case-insensitively.
	FindByIdentifier(ctx context.Context, identifier string) (*Admin, error)
	List(ctx context.Context) ([]Admin, error)
	UpdateLastLogin(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	SetActive(ctx context.Context, id string, active bool) error
	CountByRole(ctx context.Context, role string) (int64, error)
}
