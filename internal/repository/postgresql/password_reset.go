package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pontohub/ponto-backend-go/internal/domain/auth"
	"github.com/pontohub/ponto-backend-go/internal/pkg/database"
)

type passwordResetRepositoryImpl struct {
	db *database.DB
}

func NewPasswordResetRepository(db *database.DB) auth.PasswordResetRepository {
	return &passwordResetRepositoryImpl{db: db}
}

const passwordResetColumns = `
	id, user_id, status, requested_at, resolved_at, resolved_by
`

func scanPasswordReset(row pgx.Row) (*auth.PasswordResetRequest, error) {
	var req auth.PasswordResetRequest
	var status string
	err := row.Scan(
		&req.ID, &req.UserID, &status,
		&req.RequestedAt, &req.ResolvedAt, &req.ResolvedBy,
	)
	if err != nil {
		return nil, err
	}
	req.Status = auth.ResetStatus(status)
	return &req, nil
}

// Create implements auth.PasswordResetRepository.
func (r *passwordResetRepositoryImpl) Create(ctx context.Context, req *auth.PasswordResetRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO password_reset_requests (id, user_id, status, requested_at)
		VALUES ($1, $2, $3, NOW())
	`

	_, err := q.Exec(ctx, query, req.ID, req.UserID, string(req.Status))
	if err != nil {
		return fmt.Errorf("failed to create password reset request: %w", err)
	}

	return nil
}

// GetByID implements auth.PasswordResetRepository.
func (r *passwordResetRepositoryImpl) GetByID(ctx context.Context, id string) (*auth.PasswordResetRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + passwordResetColumns + `FROM password_reset_requests WHERE id = $1`

	req, err := scanPasswordReset(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrResetRequestNotFound
		}
		return nil, fmt.Errorf("failed to get password reset request: %w", err)
	}

	return req, nil
}

// GetPendingByUser implements auth.PasswordResetRepository.
func (r *passwordResetRepositoryImpl) GetPendingByUser(ctx context.Context, userID string) (*auth.PasswordResetRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + passwordResetColumns + `
		FROM password_reset_requests
		WHERE user_id = $1 AND status = 'pending'
		LIMIT 1
	`

	req, err := scanPasswordReset(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrResetRequestNotFound
		}
		return nil, fmt.Errorf("failed to get pending password reset request: %w", err)
	}

	return req, nil
}

// ListPending implements auth.PasswordResetRepository.
func (r *passwordResetRepositoryImpl) ListPending(ctx context.Context) ([]*auth.PasswordResetRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + passwordResetColumns + `
		FROM password_reset_requests
		WHERE status = 'pending'
		ORDER BY requested_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list password reset requests: %w", err)
	}
	defer rows.Close()

	var items []*auth.PasswordResetRequest
	for rows.Next() {
		req, err := scanPasswordReset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan password reset request: %w", err)
		}
		items = append(items, req)
	}

	return items, rows.Err()
}

// Update implements auth.PasswordResetRepository.
func (r *passwordResetRepositoryImpl) Update(ctx context.Context, req *auth.PasswordResetRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE password_reset_requests
		SET status = $2, resolved_at = $3, resolved_by = $4
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, string(req.Status), req.ResolvedAt, req.ResolvedBy)
	if err != nil {
		return fmt.Errorf("failed to update password reset request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrResetRequestNotFound
	}

	return nil
}
