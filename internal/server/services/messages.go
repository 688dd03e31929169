package services

import (
	"context"

	"github.com/dmitrijs2005/croissant/internal/common"
	"github.com/dmitrijs2005/croissant/internal/dbx"
	"github.com/dmitrijs2005/croissant/internal/server/models"
	"github.com/dmitrijs2005/croissant/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/croissant/internal/server/shared/db"
)

type MessageService struct {
	provider    db.Provider
	repomanager repomanager.RepositoryManager
}

func NewMessageService(p db.Provider, m repomanager.RepositoryManager) *MessageService {
	return &MessageService{provider: p, repomanager: m}
}

// List returns all messages, newest first.
func (s *MessageService) List(ctx context.Context) ([]models.Message, error) {
	var msgs []models.Message
	err := run(ctx, s.provider, common.StageQuery, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		msgs, err = s.repomanager.Messages(conn).List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// Create posts a message; the store assigns its id and creation time.
func (s *MessageService) Create(ctx context.Context, authorEmail, department, text, contentType string) (*models.Message, error) {
	in := &models.Message{
		AuthorEmail: authorEmail,
		Department:  department,
		Text:        text,
		ContentType: contentType,
	}

	var msg *models.Message
	err := run(ctx, s.provider, common.StageInsert, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		msg, err = s.repomanager.Messages(conn).Create(ctx, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// Delete reports whether message id existed and was removed.
func (s *MessageService) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := run(ctx, s.provider, common.StageDelete, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		deleted, err = s.repomanager.Messages(conn).Delete(ctx, id)
		return err
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
