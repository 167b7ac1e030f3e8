// Package dbx holds the small database/sql helpers shared by repositories:
// the DBTX handle implemented by both *sql.DB and *sql.Tx, a transaction
// runner, and column types for JSON-encoded values.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the repositories.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx begins a transaction, runs fn with the transactional handle and
// commits when fn returns nil. Any error or panic rolls back; panics are
// rethrown after the rollback.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    _, err := repomanager.Leads(tx).Create(ctx, in)
//	    return err
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
