package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/croissant/internal/common"
	"github.com/dmitrijs2005/croissant/internal/cryptox"
	"github.com/dmitrijs2005/croissant/internal/dbx"
	"github.com/dmitrijs2005/croissant/internal/server/models"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/croissant/internal/server/shared/db"
)

// PasswordHasher is satisfied by *cryptox.Hasher.
type PasswordHasher interface {
	Hash(secret []byte) (string, error)
	Verify(secret []byte, hash string) (bool, error)
}

// AccountService registers accounts and checks login credentials.
type AccountService struct {
	provider    db.Provider
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
}

func NewAccountService(p db.Provider, m repomanager.RepositoryManager, h PasswordHasher) *AccountService {
	return &AccountService{
		provider:    p,
		repomanager: m,
		hasher:      h,
	}
}

// Register hashes password and stores the account. There is no existence
// check beforehand: a duplicate email fails the insert with an error
// wrapping common.ErrAlreadyExists.
func (s *AccountService) Register(ctx context.Context, email, password string) (bool, error) {
	secret := []byte(password)
	hash, err := s.hasher.Hash(secret)
	cryptox.Wipe(secret)
	if err != nil {
		return false, err
	}

	err = run(ctx, s.provider, common.StageInsert, func(ctx context.Context, conn dbx.DBTX) error {
		return s.repomanager.Accounts(conn).Create(ctx, &models.Account{Email: email, PasswordHash: hash})
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

// CheckLogin reports whether email and password match a stored account.
// An unknown email and a wrong password both give (false, nil).
func (s *AccountService) CheckLogin(ctx context.Context, email, password string) (bool, error) {
	var account *models.Account

	err := run(ctx, s.provider, common.StageQuery, func(ctx context.Context, conn dbx.DBTX) error {
		a, err := s.repomanager.Accounts(conn).GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil
			}
			return err
		}
		account = a
		return nil
	})
	if err != nil {
		return false, err
	}

	if account == nil {
		return false, nil
	}

	// the connection is already released here
	secret := []byte(password)
	defer cryptox.Wipe(secret)

	return s.hasher.Verify(secret, account.PasswordHash)
}
