package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/messages"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/users"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestManagers_SatisfyInterface(t *testing.T) {
	var _ RepositoryManager = NewPostgresRepositoryManager(accounts.LiveSchema)
	var _ RepositoryManager = NewInMemoryRepositoryManager()
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()
	conn := sqlx.NewDb(db, "sqlmock")

	m := NewPostgresRepositoryManager(accounts.DevSchema)

	assert.IsType(t, &accounts.PostgresRepository{}, m.Accounts(conn))
	assert.IsType(t, &users.PostgresRepository{}, m.Users(conn))
	assert.IsType(t, &messages.PostgresRepository{}, m.Messages(conn))
}

func TestInMemory_SharesStateAcrossCalls(t *testing.T) {
	m := NewInMemoryRepositoryManager()
	ctx := context.Background()

	_, err := m.Users(nil).Create(ctx, "Ann", "ann@x.com")
	require.NoError(t, err)

	list, err := m.Users(nil).List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1, "every call must see the same store")

	assert.Same(t, m.Accounts(nil), m.Accounts(nil))
	assert.Same(t, m.Messages(nil), m.Messages(nil))
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	m := NewPostgresRepositoryManager(accounts.LiveSchema)
	require.NoError(t, m.RunMigrations(context.Background(), db))
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("migration failed")
	}
	defer func() { gooseUpContext = orig }()

	err := NewPostgresRepositoryManager(accounts.LiveSchema).RunMigrations(context.Background(), db)
	require.EqualError(t, err, "migration failed")
}
