// Package messages stores content messages posted by accounts.
package messages

import (
	"context"

	"github.com/dmitrijs2005/croissant/internal/server/models"
)

type Repository interface {
	// List returns every message, newest first.
	List(ctx context.Context) ([]models.Message, error)
	// Create stores msg and returns it with ID and CreatedAt filled in.
	Create(ctx context.Context, msg *models.Message) (*models.Message, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
