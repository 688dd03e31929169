package db

import (
	"context"

	"github.com/dmitrijs2005/croissant/internal/common"
	"github.com/dmitrijs2005/croissant/internal/dbx"
	"github.com/dmitrijs2005/croissant/internal/logging"
	"github.com/dmitrijs2005/croissant/internal/server/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/jmoiron/sqlx"
)

// openDB is a seam for tests; it must not dial anything by itself.
var openDB = func(cfg pgx.ConnConfig) *sqlx.DB {
	return sqlx.NewDb(stdlib.OpenDB(cfg), "pgx")
}

// PostgresProvider opens a fresh connection per operation. There is no pool:
// each call gets its own handle, limited to a single connection, which is
// closed when the operation ends.
type PostgresProvider struct {
	connConfig *pgx.ConnConfig
	err        error
	logger     logging.Logger
}

// NewPostgresProvider builds the descriptor once. A configuration problem,
// such as a missing secret, is remembered and returned by every WithConn
// call before any network attempt.
func NewPostgresProvider(c config.DatabaseConfig, logger logging.Logger) *PostgresProvider {
	p := &PostgresProvider{logger: logger.With("module", "db_provider")}

	d, err := BuildDescriptor(c)
	if err != nil {
		p.err = err
		return p
	}

	cc, err := pgx.ParseConfig(d.DSN())
	if err != nil {
		p.err = common.ConfigError(err)
		return p
	}

	cc.OnNotice = p.onNotice
	cc.Tracer = &tracelog.TraceLog{
		Logger:   tracelog.LoggerFunc(p.trace),
		LogLevel: tracelog.LogLevelDebug,
	}

	p.connConfig = cc
	p.logger.Debug(context.Background(), "connection descriptor built", "dsn", d.String())

	return p
}

// Err returns the configuration error remembered at construction, if any.
func (p *PostgresProvider) Err() error {
	return p.err
}

// OpenDB returns a single-connection handle. The caller must Close it.
func (p *PostgresProvider) OpenDB() (*sqlx.DB, error) {
	if p.err != nil {
		return nil, p.err
	}
	db := openDB(*p.connConfig)
	db.SetMaxOpenConns(1)
	return db, nil
}

func (p *PostgresProvider) WithConn(ctx context.Context, fn func(ctx context.Context, conn dbx.DBTX) error) error {
	db, err := p.OpenDB()
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			p.logger.Warn(ctx, "closing connection", "error", err)
		}
	}()

	return dbx.WithConn(ctx, db, fn)
}

// onNotice logs server notices that arrive on an open connection. They never
// affect the operation in flight.
func (p *PostgresProvider) onNotice(_ *pgconn.PgConn, n *pgconn.Notice) {
	p.logger.Warn(context.Background(), "connection notice",
		"severity", n.Severity, "code", n.Code, "message", n.Message)
}

// trace forwards pgx trace events. Statement arguments are dropped; they
// carry password hashes.
func (p *PostgresProvider) trace(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	delete(data, "args")
	switch level {
	case tracelog.LogLevelError:
		p.logger.Error(ctx, msg, "data", data)
	case tracelog.LogLevelWarn:
		p.logger.Warn(ctx, msg, "data", data)
	default:
		p.logger.Debug(ctx, msg, "data", data)
	}
}
