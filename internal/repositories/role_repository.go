package repositories

import (
	"database/sql"

	intconfig "bennyevents/internal/config"
	"bennyevents/internal/domain"
)

// RoleRepository reads the identity-to-role mapping. The mapping is data
// seeded by migration, not code, so granting or revoking the operator seat is
// a row change that needs no deploy.
type RoleRepository struct {
	DB *sql.DB
}

func (r RoleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetRole returns the stored role for an email, or "" when the identity has
// no explicit mapping.
func (r RoleRepository) GetRole(email string) (string, error) {
	var role string
	err := r.db().QueryRow(`SELECT role FROM roles WHERE email = ? LIMIT 1`, email).Scan(&role)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", domain.InternalError{Msg: "get role", Err: err}
	}
	return role, nil
}
