// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/scholarshipops/scholarshipops/internal/dbx"
	"github.com/scholarshipops/scholarshipops/internal/server/migrations"
	"github.com/scholarshipops/scholarshipops/internal/server/repositories/applications"
	"github.com/scholarshipops/scholarshipops/internal/server/repositories/criteria"
	"github.com/scholarshipops/scholarshipops/internal/server/repositories/leads"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Leads returns a leads.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Leads(db dbx.DBTX) leads.Repository {
	return leads.NewPostgresRepository(db)
}

// Applications returns an applications.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Applications(db dbx.DBTX) applications.Repository {
	return applications.NewPostgresRepository(db)
}

// Criteria returns a criteria.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Criteria(db dbx.DBTX) criteria.Repository {
	return criteria.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
