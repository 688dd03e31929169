package repomanager

import (
	"github.com/dmitrijs2005/croissant/internal/dbx"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/messages"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/users"
)

// InMemoryRepositoryManager hands out the same process-wide repositories
// regardless of the connection argument, which is nil in Mock mode.
type InMemoryRepositoryManager struct {
	accounts *accounts.MemoryRepository
	users    *users.MemoryRepository
	messages *messages.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		accounts: accounts.NewMemoryRepository(),
		users:    users.NewMemoryRepository(),
		messages: messages.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Accounts(dbx.DBTX) accounts.Repository {
	return m.accounts
}

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Messages(dbx.DBTX) messages.Repository {
	return m.messages
}
