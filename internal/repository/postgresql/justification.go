package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pontohub/ponto-backend-go/internal/domain/justification"
	"github.com/pontohub/ponto-backend-go/internal/pkg/database"
)

type justificationRepositoryImpl struct {
	db *database.DB
}

func NewJustificationRepository(db *database.DB) justification.Repository {
	return &justificationRepositoryImpl{db: db}
}

const justificationColumns = `
	id, user_id, date, type, status, description,
	reviewed_by, reviewed_at, review_note, created_at, updated_at
`

func scanJustification(row pgx.Row) (*justification.Justification, error) {
	var j justification.Justification
	var jType, status string
	err := row.Scan(
		&j.ID,
		&j.UserID,
		&j.Date,
		&jType,
		&status,
		&j.Description,
		&j.ReviewedBy,
		&j.ReviewedAt,
		&j.ReviewNote,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	j.Type = justification.Type(jType)
	j.Status = justification.Status(status)
	return &j, nil
}

// Create implements justification.Repository.
func (r *justificationRepositoryImpl) Create(ctx context.Context, j *justification.Justification) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO justifications (
			id, user_id, date, type, status, description, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`

	_, err := q.Exec(ctx, query,
		j.ID, j.UserID, j.Date, string(j.Type), string(j.Status), j.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to create justification: %w", err)
	}

	return nil
}

// GetByID implements justification.Repository.
func (r *justificationRepositoryImpl) GetByID(ctx context.Context, id string) (*justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + justificationColumns + `FROM justifications WHERE id = $1`

	j, err := scanJustification(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, justification.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get justification: %w", err)
	}

	return j, nil
}

// GetByUserAndDate implements justification.Repository.
func (r *justificationRepositoryImpl) GetByUserAndDate(ctx context.Context, userID, date string) (*justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + justificationColumns + `FROM justifications WHERE user_id = $1 AND date = $2`

	j, err := scanJustification(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, justification.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get justification: %w", err)
	}

	return j, nil
}

// ListByUser implements justification.Repository.
func (r *justificationRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]*justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + justificationColumns + `
		FROM justifications
		WHERE user_id = $1
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list justifications: %w", err)
	}
	defer rows.Close()

	return collectJustifications(rows)
}

// ListPendingByDepartment implements justification.Repository.
func (r *justificationRepositoryImpl) ListPendingByDepartment(ctx context.Context, departmentID string) ([]*justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT j.id, j.user_id, j.date, j.type, j.status, j.description,
			j.reviewed_by, j.reviewed_at, j.review_note, j.created_at, j.updated_at
		FROM justifications j
		JOIN users u ON u.id = j.user_id
		WHERE j.status = 'pending' AND u.department_id = $1
		ORDER BY j.date
	`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending justifications: %w", err)
	}
	defer rows.Close()

	return collectJustifications(rows)
}

// ListPending implements justification.Repository.
func (r *justificationRepositoryImpl) ListPending(ctx context.Context) ([]*justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + justificationColumns + `
		FROM justifications
		WHERE status = 'pending'
		ORDER BY date
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending justifications: %w", err)
	}
	defer rows.Close()

	return collectJustifications(rows)
}

func collectJustifications(rows pgx.Rows) ([]*justification.Justification, error) {
	var items []*justification.Justification
	for rows.Next() {
		j, err := scanJustification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan justification: %w", err)
		}
		items = append(items, j)
	}
	return items, rows.Err()
}

// Update implements justification.Repository.
func (r *justificationRepositoryImpl) Update(ctx context.Context, j *justification.Justification) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE justifications
		SET status = $2, reviewed_by = $3, reviewed_at = $4,
			review_note = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		j.ID, string(j.Status), j.ReviewedBy, j.ReviewedAt, j.ReviewNote,
	)
	if err != nil {
		return fmt.Errorf("failed to update justification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return justification.ErrNotFound
	}

	return nil
}
