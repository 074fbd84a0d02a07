// internal/service/auth/admin_create.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mehndi-service/internal/domain/admin"
	xerrors "mehndi-service/internal/pkg/errors"
	"mehndi-service/internal/pkg/ids"

	"go.uber.org/zap"
)

// EnsureSuperAdmin creates the super admin account unless one already
// exists. It reports whether an account was created.
func (s *AuthService) EnsureSuperAdmin(ctx context.Context, username, email, password string) (bool, error) {
	count, err := s.adminRepo.CountByRole(ctx, admin.RoleSuperAdmin)
	if err != nil {
		return false, fmt.Errorf("failed to check super admin existence: %w", err)
	}
	if count > 0 {
		s.logger.Info("super admin already exists, skipping creation")
		return false, nil
	}

	if username == "" || email == "" || password == "" {
		return false, errors.New("super admin username, email and password must be provided")
	}
	if len(password) < 8 {
		return false, errors.New("super admin password must be at least 8 characters")
	}

	a, err := s.createAdmin(ctx, username, email, password, admin.RoleSuperAdmin)
	if err != nil {
		return false, err
	}

	s.logger.Info("super admin created successfully",
		zap.String("admin_id", a.ID),
		zap.String("username", a.Username),
		zap.String("email", a.Email),
	)
	return true, nil
}

// CreateAdmin adds an admin account. Only super admins reach it.
func (s *AuthService) CreateAdmin(ctx context.Context, req *admin.CreateAdminRequest) (*admin.AdminInfo, error) {
	role := req.Role
	if role == "" {
		role = admin.RoleAdmin
	}

	a, err := s.createAdmin(ctx, req.Username, req.Email, req.Password, role)
	if err != nil {
		return nil, err
	}

	s.logger.Info("admin created",
		zap.String("admin_id", a.ID),
		zap.String("username", a.Username),
		zap.String("role", a.Role),
	)

	info := a.Info()
	return &info, nil
}

func (s *AuthService) createAdmin(ctx context.Context, username, email, password, role string) (*admin.Admin, error) {
	hashed, err := s.hash("password", password)
	if err != nil {
		return nil, err
	}

	a := &admin.Admin{
		ID:           ids.New(),
		Username:     strings.TrimSpace(username),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hashed,
		Role:         role,
		IsActive:     true,
	}
	if err := s.adminRepo.Create(ctx, a); err != nil {
		if errors.Is(err, xerrors.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return a, nil
}

func (s *AuthService) ListAdmins(ctx context.Context) ([]admin.AdminInfo, error) {
	admins, err := s.adminRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	out := make([]admin.AdminInfo, 0, len(admins))
	for i := range admins {
		out = append(out, admins[i].Info())
	}
	return out, nil
}

// SetAdminActive activates or deactivates an account. An admin cannot
// deactivate their own account.
func (s *AuthService) SetAdminActive(ctx context.Context, actorID, adminID string, active bool) (*admin.AdminInfo, error) {
	if actorID == adminID && !active {
		return nil, xerrors.NewValidationError("isActive", "cannot deactivate your own account")
	}

	if err := s.adminRepo.SetActive(ctx, adminID, active); err != nil {
		return nil, err
	}

	a, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("admin status changed",
		zap.String("admin_id", a.ID),
		zap.Bool("is_active", active),
		zap.String("by", actorID),
	)

	info := a.Info()
	return &info, nil
}
