package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/joshuarp/withdraw-review/internal/domain"
)

type AuthAdminRoleRepository struct {
	db *sqlx.DB
}

func NewAuthAdminRoleRepository(db *sqlx.DB) *AuthAdminRoleRepository {
	return &AuthAdminRoleRepository{db: db}
}

// GetAdminRole loads the authorization record keyed by the identity id.
// A missing record is not an error.
func (r *AuthAdminRoleRepository) GetAdminRole(ctx context.Context, uid string) (domain.AdminRole, error) {
	const query = `SELECT role FROM admins WHERE uid = $1`

	var role sql.NullString
	if err := r.db.GetContext(ctx, &role, query, uid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.AdminRole{}, nil
		}
		return domain.AdminRole{}, fmt.Errorf("repository: get admin role failed: %w", err)
	}

	return domain.AdminRole{Exists: true, Role: role.String}, nil
}
