package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pontohub/ponto-backend-go/internal/domain/master/department"
	"github.com/pontohub/ponto-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.Repository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements department.Repository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d *department.Department) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, name, manager_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`

	if _, err := q.Exec(ctx, query, d.ID, d.Name, d.ManagerID); err != nil {
		return fmt.Errorf("failed to create department: %w", err)
	}

	return nil
}

// GetByID implements department.Repository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (*department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, manager_id, created_at, updated_at
		FROM departments
		WHERE id = $1
	`

	var d department.Department
	err := q.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name, &d.ManagerID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, department.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	return &d, nil
}

// GetByName implements department.Repository.
func (r *departmentRepositoryImpl) GetByName(ctx context.Context, name string) (*department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, manager_id, created_at, updated_at
		FROM departments
		WHERE LOWER(name) = LOWER($1)
	`

	var d department.Department
	err := q.QueryRow(ctx, query, name).Scan(&d.ID, &d.Name, &d.ManagerID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, department.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get department by name: %w", err)
	}

	return &d, nil
}

// List implements department.Repository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]*department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, manager_id, created_at, updated_at
		FROM departments
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var items []*department.Department
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.ManagerID, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		items = append(items, &d)
	}

	return items, rows.Err()
}

// Update implements department.Repository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, d *department.Department) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = $2, manager_id = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, d.ID, d.Name, d.ManagerID)
	if err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrNotFound
	}

	return nil
}

// Delete implements department.Repository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return department.ErrInUse
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrNotFound
	}

	return nil
}
