package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"itemvault/internal/common"
	"itemvault/internal/dbx"
	"itemvault/internal/server/models"
)

const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.Item) (*models.Item, error) {

	query :=
		`INSERT INTO items (name, description, user_id)
         VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		item.Name, item.Description, item.UserID).Scan(&item.ID, &item.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*models.Item, error) {
	query :=
		`SELECT id, name, description, user_id, created_at FROM items
		 WHERE id = $1
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) FindByOwnerAndID(ctx context.Context, ownerID, id int64) (*models.Item, error) {
	query :=
		`SELECT id, name, description, user_id, created_at FROM items
		 WHERE user_id = $1 AND id = $2
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, ownerID, id))
}

func (r *PostgresRepository) FindByOwnerAndName(ctx context.Context, ownerID int64, name string) (*models.Item, error) {
	query :=
		`SELECT id, name, description, user_id, created_at FROM items
		 WHERE user_id = $1 AND name = $2
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, ownerID, name))
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Item, error) {
	query :=
		`SELECT id, name, description, user_id, created_at FROM items
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Item
	for rows.Next() {
		item := &models.Item{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.UserID, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*ItemWithOwner, error) {
	query :=
		`SELECT i.id, i.name, i.description, i.user_id, i.created_at, u.name
		 FROM items i
		 JOIN users u ON u.id = i.user_id
		 ORDER BY i.id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*ItemWithOwner
	for rows.Next() {
		row := &ItemWithOwner{}
		if err := rows.Scan(&row.Item.ID, &row.Item.Name, &row.Item.Description, &row.Item.UserID, &row.Item.CreatedAt, &row.OwnerName); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, ownerID int64) error {
	query :=
		`DELETE FROM items
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.Item, error) {
	item := &models.Item{}
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.UserID, &item.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}
