// internal/service/auth/auth.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mehndi-service/internal/domain/admin"
	xerrors "mehndi-service/internal/pkg/errors"
	"mehndi-service/internal/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// LoginLimiter throttles login attempts per client and identifier.
type LoginLimiter interface {
	CheckLoginAttempt(ctx context.Context, ip, identifier string) (bool, int64, error)
	ResetLoginAttempts(ctx context.Context, ip, identifier string) error
}

type AuthService struct {
	adminRepo   admin.Repository
	jwtManager  *jwt.Manager
	rateLimiter LoginLimiter
	logger      *zap.Logger

	cost      int
	dummyHash []byte
}

// NewAuthService builds the service. rateLimiter may be nil, in which case
// login attempts are not throttled.
func NewAuthService(
	adminRepo admin.Repository,
	jwtManager *jwt.Manager,
	rateLimiter LoginLimiter,
	logger *zap.Logger,
) *AuthService {
	return newAuthService(adminRepo, jwtManager, rateLimiter, logger, bcrypt.DefaultCost)
}

func newAuthService(repo admin.Repository, m *jwt.Manager, rl LoginLimiter, logger *zap.Logger, cost int) *AuthService {
	// Compared against when the identifier is unknown so both paths cost one bcrypt round.
	dummy, _ := bcrypt.GenerateFromPassword([]byte("mehndi-service-dummy-password"), cost)
	return &AuthService{
		adminRepo:   repo,
		jwtManager:  m,
		rateLimiter: rl,
		logger:      logger,
		cost:        cost,
		dummyHash:   dummy,
	}
}

// maxPasswordBytes is the most bcrypt will hash.
const maxPasswordBytes = 72

func (s *AuthService) hash(field, password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", xerrors.NewValidationError(field, fmt.Sprintf("must be at most %d bytes", maxPasswordBytes))
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(h), nil
}

// ========== Login ==========

// Login checks the credentials and issues a token. Unknown identifiers,
// inactive accounts and wrong passwords all yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req *admin.LoginRequest, ip string) (*admin.LoginResponse, error) {
	identifier := req.Identifier()

	if s.rateLimiter != nil {
		allowed, _, err := s.rateLimiter.CheckLoginAttempt(ctx, ip, identifier)
		if err != nil {
			s.logger.Warn("login rate limiter unavailable", zap.Error(err))
		} else if !allowed {
			return nil, fmt.Errorf("%w: too many login attempts, try again later", xerrors.ErrRateLimited)
		}
	}

	a, err := s.adminRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if !errors.Is(err, xerrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to find admin: %w", err)
		}
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(req.Password))
		return nil, xerrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		return nil, xerrors.ErrInvalidCredentials
	}
	if !a.IsActive {
		return nil, xerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtManager.Generator.Generate(a.ID, a.Username, a.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.adminRepo.UpdateLastLogin(ctx, a.ID); err != nil {
		s.logger.Error("failed to update last login", zap.String("admin_id", a.ID), zap.Error(err))
	}
	if s.rateLimiter != nil {
		if err := s.rateLimiter.ResetLoginAttempts(ctx, ip, identifier); err != nil {
			s.logger.Warn("failed to reset login attempts", zap.Error(err))
		}
	}

	s.logger.Info("admin logged in",
		zap.String("admin_id", a.ID),
		zap.String("username", a.Username),
		zap.String("ip", ip),
	)

	return &admin.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     a.Info(),
	}, nil
}

// ========== Token Validation ==========

// Authenticate verifies the token and reloads the admin it names, so a
// deleted or deactivated account is rejected even with a valid token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*admin.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, xerrors.ErrMissingToken
	}

	claims, err := s.jwtManager.Verifier.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xerrors.ErrInvalidToken, err)
	}
	if !claims.IsAdmin() {
		return nil, fmt.Errorf("%w: unexpected role %q", xerrors.ErrInvalidToken, claims.Role)
	}

	a, err := s.adminRepo.FindByID(ctx, claims.AdminID)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.ErrInactiveAccount
		}
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}
	if !a.IsActive {
		return nil, xerrors.ErrInactiveAccount
	}

	return &admin.Identity{ID: a.ID, Username: a.Username, Role: a.Role}, nil
}

// ========== Profile ==========

func (s *AuthService) Me(ctx context.Context, adminID string) (*admin.AdminInfo, error) {
	a, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	info := a.Info()
	return &info, nil
}

// ========== Password Management ==========

// ChangePassword replaces the password after checking the current one.
func (s *AuthService) ChangePassword(ctx context.Context, adminID string, req *admin.ChangePasswordRequest) error {
	a, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return xerrors.NewValidationError("currentPassword", "is incorrect")
	}

	hashed, err := s.hash("newPassword", req.NewPassword)
	if err != nil {
		return err
	}

	if err := s.adminRepo.UpdatePassword(ctx, a.ID, hashed); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Info("admin password changed", zap.String("admin_id", a.ID))
	return nil
}
