package applications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/scholarshipops/scholarshipops/internal/common"
	"github.com/scholarshipops/scholarshipops/internal/dbx"
	"github.com/scholarshipops/scholarshipops/internal/server/models"
)

const selectColumns = `id, name, deadline, status, current_stage, next_action, required_docs, progress, notes, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanApplication(row scanner) (*models.Application, error) {
	var a models.Application
	err := row.Scan(&a.ID, &a.Name, &a.Deadline, &a.Status, &a.CurrentStage, &a.NextAction,
		(*dbx.StringList)(&a.RequiredDocs), &a.Progress, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func inputArgs(in *models.ApplicationInput) []any {
	return []any{in.Name, in.Deadline, in.Status, in.CurrentStage, in.NextAction,
		dbx.StringList(in.RequiredDocs), in.Progress, in.Notes}
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Application, error) {
	query := `SELECT ` + selectColumns + ` FROM applications ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	query := `SELECT ` + selectColumns + ` FROM applications WHERE id = $1`

	a, err := scanApplication(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

// Create inserts an application after filling in the creation defaults.
func (r *PostgresRepository) Create(ctx context.Context, in *models.ApplicationInput) (*models.Application, error) {
	query :=
		`INSERT INTO applications (name, deadline, status, current_stage, next_action, required_docs, progress, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING ` + selectColumns

	withDefaults := in.WithDefaults()
	a, err := scanApplication(r.db.QueryRowContext(ctx, query, inputArgs(&withDefaults)...))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, in *models.ApplicationInput) (*models.Application, error) {
	query :=
		`UPDATE applications SET
		   name = COALESCE($2, name),
		   deadline = COALESCE($3, deadline),
		   status = COALESCE($4, status),
		   current_stage = COALESCE($5, current_stage),
		   next_action = COALESCE($6, next_action),
		   required_docs = COALESCE($7, required_docs),
		   progress = COALESCE($8, progress),
		   notes = COALESCE($9, notes),
		   updated_at = now()
		 WHERE id = $1
		 RETURNING ` + selectColumns

	args := append([]any{id}, inputArgs(in)...)
	a, err := scanApplication(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return n > 0, nil
}
