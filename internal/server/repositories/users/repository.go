// Package users stores the user directory: id, name and email.
package users

import (
	"context"

	"github.com/dmitrijs2005/croissant/internal/server/models"
)

type Repository interface {
	// List returns every user ordered by id.
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, name, email string) (*models.User, error)
	// Update returns common.ErrNotFound when id does not exist.
	Update(ctx context.Context, id int64, name, email string) (*models.User, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
