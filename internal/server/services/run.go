// Package services contains the business logic behind the command surface:
// AccountService (registration and login), UserService and MessageService.
// Every operation runs one statement on a connection scoped to that call.
package services

import (
	"context"

	"github.com/dmitrijs2005/croissant/internal/common"
	"github.com/dmitrijs2005/croissant/internal/dbx"
	"github.com/dmitrijs2005/croissant/internal/server/shared/db"
)

// run executes fn on a connection from p. A failure inside fn is reported as
// a store error at stage; acquisition errors are returned as they are.
func run(ctx context.Context, p db.Provider, stage string, fn func(ctx context.Context, conn dbx.DBTX) error) error {
	return p.WithConn(ctx, func(ctx context.Context, conn dbx.DBTX) error {
		if err := fn(ctx, conn); err != nil {
			return common.OpError(stage, err)
		}
		return nil
	})
}
