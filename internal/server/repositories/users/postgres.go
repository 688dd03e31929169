package users

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

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, name, email FROM dev_users ORDER BY id`

	users := []models.User{}
	if err := sqlx.SelectContext(ctx, r.db, &users, query); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return users, nil
}

func (r *PostgresRepository) Create(ctx context.Context, name, email string) (*models.User, error) {
	query :=
		`INSERT INTO dev_users (name, email)
		 VALUES ($1, $2)
		 RETURNING id, name, email`

	user := &models.User{}
	if err := sqlx.GetContext(ctx, r.db, user, query, name, email); err != nil {
		return nil, fmt.Errorf("db error: %w", dbx.MapError(err))
	}

	return user, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, name, email string) (*models.User, error) {
	query :=
		`UPDATE dev_users SET name = $1, email = $2
		 WHERE id = $3
		 RETURNING id, name, email`

	user := &models.User{}
	err := sqlx.GetContext(ctx, r.db, user, query, name, email, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", dbx.MapError(err))
	}

	return user, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM dev_users WHERE id = $1`

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
