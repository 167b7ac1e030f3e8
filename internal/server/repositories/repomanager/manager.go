package repomanager

import (
	"context"
	"database/sql"

	"github.com/scholarshipops/scholarshipops/internal/dbx"
	"github.com/scholarshipops/scholarshipops/internal/server/repositories/applications"
	"github.com/scholarshipops/scholarshipops/internal/server/repositories/criteria"
	"github.com/scholarshipops/scholarshipops/internal/server/repositories/leads"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Leads(db dbx.DBTX) leads.Repository
	Applications(db dbx.DBTX) applications.Repository
	Criteria(db dbx.DBTX) criteria.Repository
}
