package services

import (
	"database/sql"
	"errors"
	"testing"

	"bennyevents/internal/domain"
	"bennyevents/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRoleService(t *testing.T) (RoleService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := RoleService{Repo: repositories.RoleRepository{DB: db}}
	return svc, mock, func() { db.Close() }
}

func TestResolveOperatorRow(t *testing.T) {
	svc, mock, done := newRoleService(t)
	defer done()

	mock.ExpectQuery("SELECT role FROM roles").
		WithArgs("admin@benny.com").
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("operator"))

	p, err := svc.Resolve("admin@benny.com")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if p.Role != domain.RoleOperator {
		t.Fatalf("expected operator, got %v", p.Role)
	}
}

func TestResolveDefaultsToClient(t *testing.T) {
	svc, mock, done := newRoleService(t)
	defer done()

	mock.ExpectQuery("SELECT role FROM roles").
		WithArgs("guest@benny.com").
		WillReturnError(sql.ErrNoRows)

	p, err := svc.Resolve("guest@benny.com")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if p.Role != domain.RoleClient {
		t.Fatalf("expected client fallback, got %v", p.Role)
	}
}

func TestResolveNormalizesEmail(t *testing.T) {
	svc, mock, done := newRoleService(t)
	defer done()

	// lookup runs against the lowercased trimmed address
	mock.ExpectQuery("SELECT role FROM roles").
		WithArgs("admin@benny.com").
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("operator"))

	p, err := svc.Resolve("  Admin@Benny.com ")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if p.Email != "admin@benny.com" {
		t.Fatalf("expected normalized email, got %q", p.Email)
	}
	if p.Role != domain.RoleOperator {
		t.Fatalf("expected operator, got %v", p.Role)
	}
}

func TestResolveStoreError(t *testing.T) {
	svc, mock, done := newRoleService(t)
	defer done()

	mock.ExpectQuery("SELECT role FROM roles").
		WillReturnError(errors.New("connection reset"))

	if _, err := svc.Resolve("admin@benny.com"); err == nil {
		t.Fatalf("expected store error to surface")
	}
}
