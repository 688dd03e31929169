package messages

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/croissant/internal/dbx"
	"github.com/dmitrijs2005/croissant/internal/server/models"
	"github.com/jmoiron/sqlx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List orders by created_at and then id, so messages stored within the same
// clock tick still come back newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]models.Message, error) {
	query :=
		`SELECT id, master_email_address, department, text, content_type, created_at
		 FROM messages
		 ORDER BY created_at DESC, id DESC`

	msgs := []models.Message{}
	if err := sqlx.SelectContext(ctx, r.db, &msgs, query); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return msgs, nil
}

func (r *PostgresRepository) Create(ctx context.Context, msg *models.Message) (*models.Message, error) {
	query :=
		`INSERT INTO messages (master_email_address, department, text, content_type)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, master_email_address, department, text, content_type, created_at`

	out := &models.Message{}
	err := sqlx.GetContext(ctx, r.db, out, query,
		msg.AuthorEmail, msg.Department, msg.Text, msg.ContentType)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", dbx.MapError(err))
	}

	return out, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM messages WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("unexpected rows affected: %d", n)
	}
}
