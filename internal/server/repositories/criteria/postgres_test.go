package criteria

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/scholarshipops/scholarshipops/internal/common"
	"github.com/scholarshipops/scholarshipops/internal/server/migrations"
	"github.com/scholarshipops/scholarshipops/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var (
	columns   = []string{"id", "criteria_json", "profile_json", "updated_at"}
	fixedTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	selectQ   = `(?s)^SELECT\s+id,\s*criteria_json,\s*profile_json,\s*updated_at\s+FROM\s+criteria\s+WHERE\s+id\s*=\s*\$1\s*$`
	upsertQ   = `(?s)^INSERT\s+INTO\s+criteria.*ON\s+CONFLICT\s+\(id\)\s+DO\s+UPDATE\s+SET.*COALESCE\(EXCLUDED\.criteria_json,\s*criteria\.criteria_json\).*RETURNING`
)

func TestGet_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQ).
		WithArgs(int64(models.CriteriaID)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), []byte(`{"required":["taiwan"]}`), nil, fixedTime))

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"required":["taiwan"]}`, string(got.CriteriaJSON))
	assert.Nil(t, got.ProfileJSON)
	assert.Equal(t, fixedTime, got.UpdatedAt)
}

func TestGet_MissingOrEmpty(t *testing.T) {
	tests := []struct {
		name string
		rows *sqlmock.Rows
		err  error
	}{
		{name: "no row", err: sql.ErrNoRows},
		{name: "null documents", rows: sqlmock.NewRows(columns).AddRow(int64(1), nil, nil, fixedTime)},
		{name: "empty objects", rows: sqlmock.NewRows(columns).AddRow(int64(1), []byte(`{}`), []byte(`{}`), fixedTime)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()

			e := mock.ExpectQuery(selectQ).WithArgs(int64(models.CriteriaID))
			if tt.err != nil {
				e.WillReturnError(tt.err)
			} else {
				e.WillReturnRows(tt.rows)
			}

			_, err := repo.Get(context.Background())
			assert.ErrorIs(t, err, common.ErrorNotFound)
		})
	}
}

func TestGet_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQ).WillReturnError(errors.New("db down"))

	_, err := repo.Get(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
	assert.Contains(t, err.Error(), "db error: db down")
}

func TestUpsert_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(upsertQ).
		WithArgs(int64(models.CriteriaID), `{"required":[]}`, nil).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), []byte(`{"required":[]}`), []byte(`{"nationality":"TW"}`), fixedTime))

	got, err := repo.Upsert(context.Background(), &models.Criteria{CriteriaJSON: []byte(`{"required":[]}`)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.JSONEq(t, `{"nationality":"TW"}`, string(got.ProfileJSON))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_TwiceTargetsFixedRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(upsertQ).
		WithArgs(int64(models.CriteriaID), `{"required":["taiwan"]}`, nil).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), []byte(`{"required":["taiwan"]}`), nil, fixedTime))
	mock.ExpectQuery(upsertQ).
		WithArgs(int64(models.CriteriaID), nil, `{"nationality":"TW"}`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), []byte(`{"required":["taiwan"]}`), []byte(`{"nationality":"TW"}`), fixedTime))

	first, err := repo.Upsert(context.Background(), &models.Criteria{CriteriaJSON: []byte(`{"required":["taiwan"]}`)})
	require.NoError(t, err)

	// the caller's id is ignored; every write targets the fixed key
	second, err := repo.Upsert(context.Background(), &models.Criteria{ID: 7, ProfileJSON: []byte(`{"nationality":"TW"}`)})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.JSONEq(t, `{"required":["taiwan"]}`, string(second.CriteriaJSON))
	assert.JSONEq(t, `{"nationality":"TW"}`, string(second.ProfileJSON))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSchema_CriteriaIsSingleton(t *testing.T) {
	ddl, err := migrations.Migrations.ReadFile("00002_criteria.sql")
	require.NoError(t, err)

	assert.Regexp(t, `id\s+SMALLINT\s+PRIMARY\s+KEY\s+DEFAULT\s+1\s+CHECK\s+\(id\s*=\s*1\)`, string(ddl))
}

func TestUpsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(upsertQ).WillReturnError(errors.New("db down"))

	_, err := repo.Upsert(context.Background(), &models.Criteria{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: db down")
}
