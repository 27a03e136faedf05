package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pontohub/ponto-backend-go/internal/domain/master/function"
	"github.com/pontohub/ponto-backend-go/internal/pkg/database"
)

type functionRepositoryImpl struct {
	db *database.DB
}

func NewFunctionRepository(db *database.DB) function.Repository {
	return &functionRepositoryImpl{db: db}
}

// Create implements function.Repository.
func (r *functionRepositoryImpl) Create(ctx context.Context, f *function.Function) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO functions (id, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
	`

	if _, err := q.Exec(ctx, query, f.ID, f.Name); err != nil {
		return fmt.Errorf("failed to create function: %w", err)
	}

	return nil
}

// GetByID implements function.Repository.
func (r *functionRepositoryImpl) GetByID(ctx context.Context, id string) (*function.Function, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM functions WHERE id = $1`

	var f function.Function
	err := q.QueryRow(ctx, query, id).Scan(&f.ID, &f.Name, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, function.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get function: %w", err)
	}

	return &f, nil
}

// GetByName implements function.Repository.
func (r *functionRepositoryImpl) GetByName(ctx context.Context, name string) (*function.Function, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM functions WHERE LOWER(name) = LOWER($1)`

	var f function.Function
	err := q.QueryRow(ctx, query, name).Scan(&f.ID, &f.Name, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, function.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get function by name: %w", err)
	}

	return &f, nil
}

// List implements function.Repository.
func (r *functionRepositoryImpl) List(ctx context.Context) ([]*function.Function, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, created_at, updated_at FROM functions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list functions: %w", err)
	}
	defer rows.Close()

	var items []*function.Function
	for rows.Next() {
		var f function.Function
		if err := rows.Scan(&f.ID, &f.Name, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan function: %w", err)
		}
		items = append(items, &f)
	}

	return items, rows.Err()
}

// Update implements function.Repository.
func (r *functionRepositoryImpl) Update(ctx context.Context, f *function.Function) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE functions SET name = $2, updated_at = NOW() WHERE id = $1`, f.ID, f.Name)
	if err != nil {
		return fmt.Errorf("failed to update function: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return function.ErrNotFound
	}

	return nil
}

// Delete implements function.Repository.
func (r *functionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM functions WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return function.ErrInUse
		}
		return fmt.Errorf("failed to delete function: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return function.ErrNotFound
	}

	return nil
}
