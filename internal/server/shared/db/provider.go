package db

import (
	"context"

	"github.com/dmitrijs2005/croissant/internal/dbx"
)

// Provider scopes one store connection to one unit of work. fn receives a
// connection that is released when fn returns, whatever the outcome.
// Acquisition failures are returned as *common.Error of KindConfig or
// KindConnection and fn is not called; errors from fn are returned as is.
type Provider interface {
	WithConn(ctx context.Context, fn func(ctx context.Context, conn dbx.DBTX) error) error
}

// MemoryProvider backs Mock mode. There is no connection to acquire, so fn
// receives a nil DBTX; pair it with repomanager.InMemoryRepositoryManager.
type MemoryProvider struct{}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{}
}

func (p *MemoryProvider) WithConn(ctx context.Context, fn func(ctx context.Context, conn dbx.DBTX) error) error {
	return fn(ctx, nil)
}
