package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/croissant/internal/common"
	"github.com/dmitrijs2005/croissant/internal/dbx"
	"github.com/dmitrijs2005/croissant/internal/server/models"
	"github.com/jmoiron/sqlx"
)

// PostgresRepository implements account storage over a dbx.DBTX. Table and
// column names come from a fixed Schema preset, never from user input.
type PostgresRepository struct {
	db          dbx.DBTX
	insertQuery string
	selectQuery string
}

func NewPostgresRepository(db dbx.DBTX, schema Schema) *PostgresRepository {
	return &PostgresRepository{
		db: db,
		insertQuery: fmt.Sprintf(
			`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
			schema.Table, schema.EmailColumn, schema.HashColumn),
		selectQuery: fmt.Sprintf(
			`SELECT %[2]s AS email, %[3]s AS password_hash FROM %[1]s WHERE %[2]s = $1`,
			schema.Table, schema.EmailColumn, schema.HashColumn),
	}
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) error {
	_, err := r.db.ExecContext(ctx, r.insertQuery, account.Email, account.PasswordHash)
	if err != nil {
		return fmt.Errorf("db error: %w", dbx.MapError(err))
	}
	return nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	account := &models.Account{}
	err := sqlx.GetContext(ctx, r.db, account, r.selectQuery, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return account, nil
}
