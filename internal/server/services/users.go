package services

import (
	"context"

	"github.com/dmitrijs2005/croissant/internal/common"
	"github.com/dmitrijs2005/croissant/internal/dbx"
	"github.com/dmitrijs2005/croissant/internal/server/models"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/croissant/internal/server/shared/db"
)

// UserService manages the user directory.
type UserService struct {
	provider    db.Provider
	repomanager repomanager.RepositoryManager
}

func NewUserService(p db.Provider, m repomanager.RepositoryManager) *UserService {
	return &UserService{provider: p, repomanager: m}
}

// List returns every user ordered by id.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := run(ctx, s.provider, common.StageQuery, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		users, err = s.repomanager.Users(conn).List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) Create(ctx context.Context, name, email string) (*models.User, error) {
	var user *models.User
	err := run(ctx, s.provider, common.StageInsert, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		user, err = s.repomanager.Users(conn).Create(ctx, name, email)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Update replaces name and email of user id. A missing id is an update
// error wrapping common.ErrNotFound.
func (s *UserService) Update(ctx context.Context, id int64, name, email string) (*models.User, error) {
	var user *models.User
	err := run(ctx, s.provider, common.StageUpdate, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		user, err = s.repomanager.Users(conn).Update(ctx, id, name, email)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Delete reports whether user id existed and was removed.
func (s *UserService) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := run(ctx, s.provider, common.StageDelete, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		deleted, err = s.repomanager.Users(conn).Delete(ctx, id)
		return err
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
