package services

import (
	"context"

	"github.com/dmitrijs2005/croissant/internal/dbx"
	"github.com/dmitrijs2005/croissant/internal/server/models"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/messages"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/users"
	"github.com/dmitrijs2005/croissant/internal/server/shared/db"
	"github.com/jmoiron/sqlx"
)

// -------- providers --------

// trackingProvider counts calls and exposes whether a connection is held.
type trackingProvider struct {
	inner db.Provider
	calls int
	inUse bool
}

func newTrackingProvider() *trackingProvider {
	return &trackingProvider{inner: db.NewMemoryProvider()}
}

func (p *trackingProvider) WithConn(ctx context.Context, fn func(ctx context.Context, conn dbx.DBTX) error) error {
	p.calls++
	p.inUse = true
	defer func() { p.inUse = false }()
	return p.inner.WithConn(ctx, fn)
}

// failingProvider never hands out a connection.
type failingProvider struct {
	err error
}

func (p failingProvider) WithConn(context.Context, func(ctx context.Context, conn dbx.DBTX) error) error {
	return p.err
}

// sqlProvider scopes connections of an existing handle, e.g. a sqlmock one.
type sqlProvider struct {
	db *sqlx.DB
}

func (p sqlProvider) WithConn(ctx context.Context, fn func(ctx context.Context, conn dbx.DBTX) error) error {
	return dbx.WithConn(ctx, p.db, fn)
}

// -------- repositories --------

type stubRepoManager struct {
	accounts accounts.Repository
	users    users.Repository
	messages messages.Repository
}

func (m *stubRepoManager) Accounts(dbx.DBTX) accounts.Repository { return m.accounts }
func (m *stubRepoManager) Users(dbx.DBTX) users.Repository       { return m.users }
func (m *stubRepoManager) Messages(dbx.DBTX) messages.Repository { return m.messages }

type errAccountsRepo struct{ err error }

func (r errAccountsRepo) Create(context.Context, *models.Account) error { return r.err }
func (r errAccountsRepo) GetByEmail(context.Context, string) (*models.Account, error) {
	return nil, r.err
}

type errUsersRepo struct{ err error }

func (r errUsersRepo) List(context.Context) ([]models.User, error) { return nil, r.err }
func (r errUsersRepo) Create(context.Context, string, string) (*models.User, error) {
	return nil, r.err
}
func (r errUsersRepo) Update(context.Context, int64, string, string) (*models.User, error) {
	return nil, r.err
}
func (r errUsersRepo) Delete(context.Context, int64) (bool, error) { return false, r.err }

type errMessagesRepo struct{ err error }

func (r errMessagesRepo) List(context.Context) ([]models.Message, error) { return nil, r.err }
func (r errMessagesRepo) Create(context.Context, *models.Message) (*models.Message, error) {
	return nil, r.err
}
func (r errMessagesRepo) Delete(context.Context, int64) (bool, error) { return false, r.err }
