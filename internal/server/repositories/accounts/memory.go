package accounts

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/croissant/internal/common"
	"github.com/dmitrijs2005/croissant/internal/server/models"
)

// MemoryRepository keeps accounts in process memory for Mock mode.
// Emails are unique, like the live table's constraint.
type MemoryRepository struct {
	mu     sync.RWMutex
	hashes map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{hashes: make(map[string]string)}
}

func (r *MemoryRepository) Create(ctx context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.hashes[account.Email]; ok {
		return common.ErrAlreadyExists
	}
	r.hashes[account.Email] = account.PasswordHash
	return nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hash, ok := r.hashes[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &models.Account{Email: email, PasswordHash: hash}, nil
}
