package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pontohub/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontohub/ponto-backend-go/internal/pkg/database"
)

type timeRecordRepositoryImpl struct {
	db *database.DB
}

func NewTimeRecordRepository(db *database.DB) timesheet.Repository {
	return &timeRecordRepositoryImpl{db: db}
}

const timeRecordColumns = `
	id, user_id, date, entry1, exit1, entry2, exit2,
	total_hours, is_adjusted, created_at, updated_at
`

func scanTimeRecord(row pgx.Row) (*timesheet.TimeRecord, error) {
	var rec timesheet.TimeRecord
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Date,
		&rec.Entry1,
		&rec.Exit1,
		&rec.Entry2,
		&rec.Exit2,
		&rec.TotalHours,
		&rec.IsAdjusted,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create implements timesheet.Repository.
func (r *timeRecordRepositoryImpl) Create(ctx context.Context, record *timesheet.TimeRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_records (
			id, user_id, date, entry1, exit1, entry2, exit2,
			total_hours, is_adjusted, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`

	_, err := q.Exec(ctx, query,
		record.ID, record.UserID, record.Date,
		record.Entry1, record.Exit1, record.Entry2, record.Exit2,
		record.TotalHours, record.IsAdjusted,
	)
	if err != nil {
		return fmt.Errorf("failed to create time record: %w", err)
	}

	return nil
}

// GetByID implements timesheet.Repository.
func (r *timeRecordRepositoryImpl) GetByID(ctx context.Context, id string) (*timesheet.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + timeRecordColumns + `FROM time_records WHERE id = $1`

	rec, err := scanTimeRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, timesheet.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get time record: %w", err)
	}

	return rec, nil
}

// GetByUserAndDate implements timesheet.Repository.
func (r *timeRecordRepositoryImpl) GetByUserAndDate(ctx context.Context, userID, date string) (*timesheet.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + timeRecordColumns + `FROM time_records WHERE user_id = $1 AND date = $2`

	rec, err := scanTimeRecord(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, timesheet.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get time record: %w", err)
	}

	return rec, nil
}

// GetByUserAndDateForUpdate implements timesheet.Repository. Must run
// inside a transaction; the row lock is released on commit or rollback.
func (r *timeRecordRepositoryImpl) GetByUserAndDateForUpdate(ctx context.Context, userID, date string) (*timesheet.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + timeRecordColumns + `FROM time_records WHERE user_id = $1 AND date = $2 FOR UPDATE`

	rec, err := scanTimeRecord(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, timesheet.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to lock time record: %w", err)
	}

	return rec, nil
}

// ListByUserAndRange implements timesheet.Repository.
func (r *timeRecordRepositoryImpl) ListByUserAndRange(ctx context.Context, userID, startDate, endDate string) ([]*timesheet.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + timeRecordColumns + `
		FROM time_records
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records: %w", err)
	}
	defer rows.Close()

	return collectTimeRecords(rows)
}

// ListByDate implements timesheet.Repository.
func (r *timeRecordRepositoryImpl) ListByDate(ctx context.Context, date string) ([]*timesheet.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + timeRecordColumns + `
		FROM time_records
		WHERE date = $1
		ORDER BY user_id
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records by date: %w", err)
	}
	defer rows.Close()

	return collectTimeRecords(rows)
}

func collectTimeRecords(rows pgx.Rows) ([]*timesheet.TimeRecord, error) {
	var records []*timesheet.TimeRecord
	for rows.Next() {
		rec, err := scanTimeRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Update implements timesheet.Repository.
func (r *timeRecordRepositoryImpl) Update(ctx context.Context, record *timesheet.TimeRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_records
		SET entry1 = $2, exit1 = $3, entry2 = $4, exit2 = $5,
			total_hours = $6, is_adjusted = $7, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		record.ID, record.Entry1, record.Exit1, record.Entry2, record.Exit2,
		record.TotalHours, record.IsAdjusted,
	)
	if err != nil {
		return fmt.Errorf("failed to update time record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrRecordNotFound
	}

	return nil
}
