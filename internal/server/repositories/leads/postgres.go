package leads

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

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

// likeEscaper makes a search term match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// listQuery builds the SELECT for a filtered listing. Every filter is AND'ed;
// the search term is shared by the name and source conditions.
func listQuery(filter *models.LeadFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if !filter.IsZero() {
		if filter.Status != "" {
			args = append(args, filter.Status)
			conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
		}
		if filter.Bucket != "" {
			args = append(args, filter.Bucket)
			conds = append(conds, fmt.Sprintf("bucket = $%d", len(args)))
		}
		if filter.Search != "" {
			args = append(args, "%"+likeEscaper.Replace(filter.Search)+"%")
			n := len(args)
			conds = append(conds, fmt.Sprintf(`(name LIKE $%d ESCAPE '\' OR source LIKE $%d ESCAPE '\')`, n, n))
		}
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(selectColumns)
	sb.WriteString(" FROM leads")
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY match_score DESC NULLS LAST, created_at DESC, id DESC")

	return sb.String(), args
}

func (r *PostgresRepository) List(ctx context.Context, filter *models.LeadFilter) ([]*models.Lead, error) {
	query, args := listQuery(filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Lead, 0)
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Lead, error) {
	query := "SELECT " + selectColumns + " FROM leads WHERE id = $1"

	l, err := scanLead(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return l, nil
}

// Create inserts a lead after filling in the creation defaults.
func (r *PostgresRepository) Create(ctx context.Context, in *models.LeadInput) (*models.Lead, error) {
	withDefaults := in.WithDefaults()

	l, err := scanLead(r.db.QueryRowContext(ctx, insertQuery, inputArgs(&withDefaults)...))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return l, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, in *models.LeadInput) (*models.Lead, error) {
	args := append([]any{id}, inputArgs(in)...)

	l, err := scanLead(r.db.QueryRowContext(ctx, updateQuery, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return l, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM leads WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return n > 0, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM leads").Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
