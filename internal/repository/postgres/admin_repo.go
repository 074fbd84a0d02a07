// internal/repository/postgres/admin_repo.go
package postgres

import (
	"context"
	"fmt"

	"mehndi-service/internal/domain/admin"
	xerrors "mehndi-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

const adminColumns = `id, username, email, password_hash, role, is_active, last_login, created_at, updated_at`

type AdminRepository struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

func scanAdmin(row interface{ Scan(...interface{}) error }, a *admin.Admin) error {
	return row.Scan(
		&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.Role,
		&a.IsActive, &a.LastLogin, &a.CreatedAt, &a.UpdatedAt,
	)
}

// Create creates a new admin
func (r *AdminRepository) Create(ctx context.Context, a *admin.Admin) error {
	query := `
		INSERT INTO admins (id, username, email, password_hash, role, is_active)
		VALUES ($1, $2, LOWER($3), $4, $5, $6)
		RETURNING email, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		a.ID, a.Username, a.Email, a.PasswordHash, a.Role, a.IsActive,
	).Scan(&a.Email, &a.CreatedAt, &a.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: username or email already in use", xerrors.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	return nil
}

// FindByID retrieves an admin by ID
func (r *AdminRepository) FindByID(ctx context.Context, id string) (*admin.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`

	var a admin.Admin
	if err := scanAdmin(r.db.QueryRow(ctx, query, id), &a); err != nil {
		return nil, notFound(err, "admin")
	}
	return &a, nil
}

// FindByIdentifier retrieves an admin by username or email
func (r *AdminRepository) FindByIdentifier(ctx context.Context, identifier string) (*admin.Admin, error) {
	query := `
		SELECT ` + adminColumns + `
		FROM admins
		WHERE LOWER(username) = LOWER($1) OR email = LOWER($1)
		LIMIT 1
	`

	var a admin.Admin
	if err := scanAdmin(r.db.QueryRow(ctx, query, identifier), &a); err != nil {
		return nil, notFound(err, "admin")
	}
	return &a, nil
}

func (r *AdminRepository) List(ctx context.Context) ([]admin.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	admins := []admin.Admin{}
	for rows.Next() {
		var a admin.Admin
		if err := scanAdmin(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id string) error {
	return r.exec(ctx, "update last login", `UPDATE admins SET last_login = NOW(), updated_at = NOW() WHERE id = $1`, id)
}

func (r *AdminRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return r.exec(ctx, "update password", `UPDATE admins SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, passwordHash)
}

func (r *AdminRepository) SetActive(ctx context.Context, id string, active bool) error {
	return r.exec(ctx, "update admin status", `UPDATE admins SET is_active = $2, updated_at = NOW() WHERE id = $1`, id, active)
}

func (r *AdminRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admins WHERE role = $1`, role).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return n, nil
}

func (r *AdminRepository) exec(ctx context.Context, what, query string, args ...interface{}) error {
	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", what, err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
