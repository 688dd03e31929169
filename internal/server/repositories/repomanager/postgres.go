package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/croissant/internal/dbx"
	"github.com/dmitrijs2005/croissant/internal/server/migrations"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/messages"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories and exposes
// the schema provisioning hook.
type PostgresRepositoryManager struct {
	accountSchema accounts.Schema
}

// NewPostgresRepositoryManager builds a manager whose account repositories
// use the given table preset.
func NewPostgresRepositoryManager(accountSchema accounts.Schema) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{accountSchema: accountSchema}
}

// Accounts returns an accounts.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewPostgresRepository(db, m.accountSchema)
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Messages returns a messages.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Messages(db dbx.DBTX) messages.Repository {
	return messages.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded schema. It is used by the provisioning
// command only; request handling never migrates.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
