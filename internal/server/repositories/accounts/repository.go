// Package accounts stores login identities: an email and the bcrypt hash of
// its secret. Accounts are created and read, never updated or deleted.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/croissant/internal/server/models"
)

type Repository interface {
	// Create inserts an account. A duplicate email yields an error matching
	// common.ErrAlreadyExists.
	Create(ctx context.Context, account *models.Account) error
	// GetByEmail returns common.ErrNotFound when no account matches.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}
