package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pontohub/ponto-backend-go/internal/domain/master/employmenttype"
	"github.com/pontohub/ponto-backend-go/internal/pkg/database"
)

type employmentTypeRepositoryImpl struct {
	db *database.DB
}

func NewEmploymentTypeRepository(db *database.DB) employmenttype.Repository {
	return &employmentTypeRepositoryImpl{db: db}
}

// Create implements employmenttype.Repository.
func (r *employmentTypeRepositoryImpl) Create(ctx context.Context, e *employmenttype.EmploymentType) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employment_types (id, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
	`

	if _, err := q.Exec(ctx, query, e.ID, e.Name); err != nil {
		return fmt.Errorf("failed to create employment type: %w", err)
	}

	return nil
}

// GetByID implements employmenttype.Repository.
func (r *employmentTypeRepositoryImpl) GetByID(ctx context.Context, id string) (*employmenttype.EmploymentType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM employment_types WHERE id = $1`

	var e employmenttype.EmploymentType
	err := q.QueryRow(ctx, query, id).Scan(&e.ID, &e.Name, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employmenttype.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get employment type: %w", err)
	}

	return &e, nil
}

// GetByName implements employmenttype.Repository.
func (r *employmentTypeRepositoryImpl) GetByName(ctx context.Context, name string) (*employmenttype.EmploymentType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM employment_types WHERE LOWER(name) = LOWER($1)`

	var e employmenttype.EmploymentType
	err := q.QueryRow(ctx, query, name).Scan(&e.ID, &e.Name, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employmenttype.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get employment type by name: %w", err)
	}

	return &e, nil
}

// List implements employmenttype.Repository.
func (r *employmentTypeRepositoryImpl) List(ctx context.Context) ([]*employmenttype.EmploymentType, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, created_at, updated_at FROM employment_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employment types: %w", err)
	}
	defer rows.Close()

	var items []*employmenttype.EmploymentType
	for rows.Next() {
		var e employmenttype.EmploymentType
		if err := rows.Scan(&e.ID, &e.Name, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employment type: %w", err)
		}
		items = append(items, &e)
	}

	return items, rows.Err()
}

// Update implements employmenttype.Repository.
func (r *employmentTypeRepositoryImpl) Update(ctx context.Context, e *employmenttype.EmploymentType) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employment_types SET name = $2, updated_at = NOW() WHERE id = $1`, e.ID, e.Name)
	if err != nil {
		return fmt.Errorf("failed to update employment type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employmenttype.ErrNotFound
	}

	return nil
}

// Delete implements employmenttype.Repository.
func (r *employmentTypeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employment_types WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return employmenttype.ErrInUse
		}
		return fmt.Errorf("failed to delete employment type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employmenttype.ErrNotFound
	}

	return nil
}
