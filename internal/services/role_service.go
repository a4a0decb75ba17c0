package services

import (
	"strings"

	"bennyevents/internal/domain"
	"bennyevents/internal/repositories"
)

// RoleService projects an authenticated identity onto its capability set.
// The mapping lives in the roles table; any identity without an explicit row
// is a client. This is the single policy point: it decides both the
// subscription scope a session opens and the mutation field set it may use.
type RoleService struct {
	Repo repositories.RoleRepository
}

func (s RoleService) Resolve(email string) (domain.Principal, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	role, err := s.Repo.GetRole(email)
	if err != nil {
		return domain.Principal{}, err
	}

	p := domain.Principal{Email: email, Role: domain.RoleClient}
	if role == string(domain.RoleOperator) {
		p.Role = domain.RoleOperator
	}
	return p, nil
}
