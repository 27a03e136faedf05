package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pontohub/ponto-backend-go/internal/domain/hourbank"
	"github.com/pontohub/ponto-backend-go/internal/pkg/database"
)

type hourBankRepositoryImpl struct {
	db *database.DB
}

func NewHourBankRepository(db *database.DB) hourbank.Repository {
	return &hourBankRepositoryImpl{db: db}
}

// Upsert implements hourbank.Repository.
func (r *hourBankRepositoryImpl) Upsert(ctx context.Context, entry *hourbank.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO hour_bank_entries (
			id, user_id, month, worked_hours, expected_hours, balance, computed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (user_id, month) DO UPDATE
		SET worked_hours = EXCLUDED.worked_hours,
			expected_hours = EXCLUDED.expected_hours,
			balance = EXCLUDED.balance,
			computed_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		entry.ID, entry.UserID, entry.Month,
		entry.WorkedHours, entry.ExpectedHours, entry.Balance,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert hour bank entry: %w", err)
	}

	return nil
}

// GetByUserAndMonth implements hourbank.Repository.
func (r *hourBankRepositoryImpl) GetByUserAndMonth(ctx context.Context, userID, month string) (*hourbank.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, month, worked_hours, expected_hours, balance, computed_at
		FROM hour_bank_entries
		WHERE user_id = $1 AND month = $2
	`

	var e hourbank.Entry
	err := q.QueryRow(ctx, query, userID, month).Scan(
		&e.ID, &e.UserID, &e.Month,
		&e.WorkedHours, &e.ExpectedHours, &e.Balance, &e.ComputedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, hourbank.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get hour bank entry: %w", err)
	}

	return &e, nil
}

// ListByUser implements hourbank.Repository.
func (r *hourBankRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]*hourbank.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, month, worked_hours, expected_hours, balance, computed_at
		FROM hour_bank_entries
		WHERE user_id = $1
		ORDER BY month DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hour bank entries: %w", err)
	}
	defer rows.Close()

	var entries []*hourbank.Entry
	for rows.Next() {
		var e hourbank.Entry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Month,
			&e.WorkedHours, &e.ExpectedHours, &e.Balance, &e.ComputedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan hour bank entry: %w", err)
		}
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
