// Package repomanager vends repositories bound to a connection, so services
// stay unaware of whether they run against Postgres or process memory.
package repomanager

import (
	"github.com/dmitrijs2005/croissant/internal/dbx"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/messages"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/users"
)

type RepositoryManager interface {
	Accounts(db dbx.DBTX) accounts.Repository
	Users(db dbx.DBTX) users.Repository
	Messages(db dbx.DBTX) messages.Repository
}
