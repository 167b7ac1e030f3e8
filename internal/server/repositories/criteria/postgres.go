// Package criteria stores the single search-criteria row.
package criteria

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/scholarshipops/scholarshipops/internal/common"
	"github.com/scholarshipops/scholarshipops/internal/dbx"
	"github.com/scholarshipops/scholarshipops/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCriteria(row scanner) (*models.Criteria, error) {
	var c models.Criteria
	err := row.Scan(&c.ID, (*dbx.JSONDoc)(&c.CriteriaJSON), (*dbx.JSONDoc)(&c.ProfileJSON), &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Get returns the stored criteria. A row whose documents are both empty is
// reported as common.ErrorNotFound, the same as a missing row.
func (r *PostgresRepository) Get(ctx context.Context) (*models.Criteria, error) {
	query :=
		`SELECT id, criteria_json, profile_json, updated_at FROM criteria
		 WHERE id = $1
		 `

	c, err := scanCriteria(r.db.QueryRowContext(ctx, query, models.CriteriaID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if c.IsEmpty() {
		return nil, common.ErrorNotFound
	}

	return c, nil
}

// Upsert writes the singleton row in one statement. A nil document keeps the
// stored one.
func (r *PostgresRepository) Upsert(ctx context.Context, c *models.Criteria) (*models.Criteria, error) {
	query :=
		`INSERT INTO criteria (id, criteria_json, profile_json, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (id) DO UPDATE SET
		   criteria_json = COALESCE(EXCLUDED.criteria_json, criteria.criteria_json),
		   profile_json = COALESCE(EXCLUDED.profile_json, criteria.profile_json),
		   updated_at = now()
		 RETURNING id, criteria_json, profile_json, updated_at
		 `

	saved, err := scanCriteria(r.db.QueryRowContext(ctx, query,
		models.CriteriaID, dbx.JSONDoc(c.CriteriaJSON), dbx.JSONDoc(c.ProfileJSON)))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return saved, nil
}
