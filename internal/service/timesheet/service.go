package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pontohub/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontohub/ponto-backend-go/internal/domain/user"
	"github.com/pontohub/ponto-backend-go/internal/pkg/clock"
	"github.com/pontohub/ponto-backend-go/internal/pkg/database"
	"github.com/pontohub/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontohub/ponto-backend-go/internal/pkg/metrics"
	"github.com/pontohub/ponto-backend-go/internal/repository/postgresql"
)

// txRunner wraps a unit of work in a database transaction.
type txRunner func(ctx context.Context, fn func(ctx context.Context) error) error

type TimesheetServiceImpl struct {
	runTx      txRunner
	recordRepo timesheet.Repository
	userRepo   user.Repository
	clock      clock.Clock
}

func NewTimesheetService(
	db *database.DB,
	recordRepo timesheet.Repository,
	userRepo user.Repository,
	clk clock.Clock,
) timesheet.Service {
	return &TimesheetServiceImpl{
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		recordRepo: recordRepo,
		userRepo:   userRepo,
		clock:      clk,
	}
}

// Punch implements timesheet.Service. The read-modify-write runs inside
// a transaction with the record row locked, so two devices punching at
// once cannot both land in the same slot.
func (s *TimesheetServiceImpl) Punch(ctx context.Context, req timesheet.PunchRequest) (*timesheet.RecordResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	date := now.Format("2006-01-02")

	clockTime := now.Format("15:04")
	if req.Time != nil {
		if _, err := timesheet.ParseClockTime(*req.Time); err != nil {
			return nil, err
		}
		clockTime = *req.Time
	}

	var record *timesheet.TimeRecord
	err = s.runTx(ctx, func(txCtx context.Context) error {
		existing, err := s.recordRepo.GetByUserAndDateForUpdate(txCtx, claims.UserID, date)
		if err != nil {
			if !errors.Is(err, timesheet.ErrRecordNotFound) {
				return err
			}
			fresh := &timesheet.TimeRecord{
				ID:     uuid.NewString(),
				UserID: claims.UserID,
				Date:   date,
			}
			if err := fresh.ApplyPunch(clockTime); err != nil {
				return err
			}
			record = fresh
			return s.recordRepo.Create(txCtx, fresh)
		}

		if err := existing.ApplyPunch(clockTime); err != nil {
			return err
		}
		record = existing
		return s.recordRepo.Update(txCtx, existing)
	})
	if err != nil {
		metrics.PunchesTotal.WithLabelValues(punchOutcome(err)).Inc()
		return nil, err
	}

	metrics.PunchesTotal.WithLabelValues("accepted").Inc()
	return timesheet.ToRecordResponse(record), nil
}

func punchOutcome(err error) string {
	switch {
	case errors.Is(err, timesheet.ErrPunchTooSoon):
		return "too_soon"
	case errors.Is(err, timesheet.ErrDayFull):
		return "day_full"
	}
	return "error"
}

// Today implements timesheet.Service.
func (s *TimesheetServiceImpl) Today(ctx context.Context) (*timesheet.RecordResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	date := s.clock.Now().Format("2006-01-02")

	record, err := s.recordRepo.GetByUserAndDate(ctx, claims.UserID, date)
	if err != nil {
		if errors.Is(err, timesheet.ErrRecordNotFound) {
			return timesheet.ToRecordResponse(&timesheet.TimeRecord{
				UserID: claims.UserID,
				Date:   date,
			}), nil
		}
		return nil, err
	}

	return timesheet.ToRecordResponse(record), nil
}

// ListMine implements timesheet.Service.
func (s *TimesheetServiceImpl) ListMine(ctx context.Context, startDate, endDate string) ([]*timesheet.RecordResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.listRange(ctx, claims.UserID, startDate, endDate)
}

// ListForUser implements timesheet.Service.
func (s *TimesheetServiceImpl) ListForUser(ctx context.Context, userID, startDate, endDate string) ([]*timesheet.RecordResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.canAccessUser(ctx, claims, userID); err != nil {
		return nil, err
	}
	return s.listRange(ctx, userID, startDate, endDate)
}

func (s *TimesheetServiceImpl) listRange(ctx context.Context, userID, startDate, endDate string) ([]*timesheet.RecordResponse, error) {
	for _, d := range []string{startDate, endDate} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", timesheet.ErrValidationFailed, d)
		}
	}

	records, err := s.recordRepo.ListByUserAndRange(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	return timesheet.ToRecordResponses(records), nil
}

// canAccessUser allows admins everywhere and managers within their own
// department.
func (s *TimesheetServiceImpl) canAccessUser(ctx context.Context, claims *jwt.Claims, userID string) error {
	if claims.Role == user.RoleAdmin {
		return nil
	}
	if claims.Role != user.RoleManager {
		return user.ErrPermissionDenied
	}

	target, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if claims.DepartmentID == nil || target.DepartmentID == nil || *claims.DepartmentID != *target.DepartmentID {
		return user.ErrPermissionDenied
	}
	return nil
}

// Adjust implements timesheet.Service. Same-day edits are rejected, and
// dates before the previous payroll window cannot be touched anymore.
func (s *TimesheetServiceImpl) Adjust(ctx context.Context, recordID string, req timesheet.AdjustRecordRequest) (*timesheet.RecordResponse, error) {
	record, err := s.adjust(ctx, recordID, req)
	if err != nil {
		metrics.AdjustmentsTotal.WithLabelValues(adjustOutcome(err)).Inc()
		return nil, err
	}

	metrics.AdjustmentsTotal.WithLabelValues("accepted").Inc()
	return timesheet.ToRecordResponse(record), nil
}

func (s *TimesheetServiceImpl) adjust(ctx context.Context, recordID string, req timesheet.AdjustRecordRequest) (*timesheet.TimeRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	record, err := s.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	if err := s.canAccessUser(ctx, claims, record.UserID); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if record.Date == now.Format("2006-01-02") {
		return nil, timesheet.ErrSameDayAdjustment
	}

	recordDate, err := time.Parse("2006-01-02", record.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse record date: %w", err)
	}
	if recordDate.Before(adjustmentFloor(now)) {
		return nil, timesheet.ErrAdjustmentWindowClosed
	}

	if err := record.SetPunches(req.Entry1, req.Exit1, req.Entry2, req.Exit2); err != nil {
		return nil, err
	}
	record.IsAdjusted = true

	if err := s.recordRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// adjustmentFloor returns the first date still open for adjustment: the
// start of the previous payroll window. Windows run from the 20th of one
// month through the 19th of the next.
func adjustmentFloor(now time.Time) time.Time {
	currentStart := time.Date(now.Year(), now.Month(), 20, 0, 0, 0, 0, now.Location())
	if now.Day() < 20 {
		currentStart = currentStart.AddDate(0, -1, 0)
	}
	return currentStart.AddDate(0, -1, 0)
}

func adjustOutcome(err error) string {
	switch {
	case errors.Is(err, timesheet.ErrSameDayAdjustment):
		return "same_day"
	case errors.Is(err, timesheet.ErrAdjustmentWindowClosed):
		return "window_closed"
	}
	return "error"
}
