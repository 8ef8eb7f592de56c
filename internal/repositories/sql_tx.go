package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

type txKey struct{}

type sqlTx interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func injectTx(ctx context.Context, db sqlTx) context.Context {
	return context.WithValue(ctx, txKey{}, db)
}

func (r *Repository) extractTxWrite(ctx context.Context) sqlTx {
	if db, ok := ctx.Value(txKey{}).(sqlTx); ok {
		return db
	}
	return r.dbWrite
}

func (r *Repository) extractTxRead(ctx context.Context) sqlTx {
	if db, ok := ctx.Value(txKey{}).(sqlTx); ok {
		return db
	}
	return r.dbRead
}

// WithinTx runs fn with a write transaction injected into the context, so
// every repository call inside fn joins the same transaction. Commit on nil,
// rollback otherwise.
func (r *Repository) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}

	if err := fn(injectTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
