// Package dbx provides tiny DB abstractions shared by repositories:
// a minimal interface (DBTX) implemented by *sqlx.DB, *sqlx.Conn and *sqlx.Tx,
// and a helper that scopes a single connection to one unit of work.
package dbx

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/croissant/internal/common"
	"github.com/jmoiron/sqlx"
)

// DBTX is the subset of sqlx used by our repos. It satisfies
// sqlx.QueryerContext, so repositories can use sqlx.GetContext and
// sqlx.SelectContext with it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryxContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error)
	QueryRowxContext(ctx context.Context, query string, args ...any) *sqlx.Row
}

// WithConn acquires one connection from db, runs fn with it and releases the
// connection on every exit path, panics included. An acquire failure is
// reported as a connection error and fn is not called. Errors returned by fn
// are passed through unchanged.
//
// Typical use:
//
//	err := dbx.WithConn(ctx, db, func(ctx context.Context, conn dbx.DBTX) error {
//	    _, err := conn.ExecContext(ctx, "DELETE FROM ...")
//	    return err
//	})
func WithConn(ctx context.Context, db *sqlx.DB, fn func(ctx context.Context, conn DBTX) error) error {
	conn, err := db.Connx(ctx)
	if err != nil {
		return common.ConnectionError(err)
	}
	defer func() {
		_ = conn.Close()
	}()

	return fn(ctx, conn)
}
