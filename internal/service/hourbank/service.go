package hourbank

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/pontohub/ponto-backend-go/internal/domain/hourbank"
	"github.com/pontohub/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontohub/ponto-backend-go/internal/domain/user"
	"github.com/pontohub/ponto-backend-go/internal/pkg/clock"
	"github.com/pontohub/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontohub/ponto-backend-go/internal/pkg/metrics"
	"github.com/pontohub/ponto-backend-go/internal/pkg/validator"
)

type HourBankServiceImpl struct {
	entryRepo  hourbank.Repository
	recordRepo timesheet.Repository
	userRepo   user.Repository
	clock      clock.Clock
}

func NewHourBankService(
	entryRepo hourbank.Repository,
	recordRepo timesheet.Repository,
	userRepo user.Repository,
	clk clock.Clock,
) hourbank.Service {
	return &HourBankServiceImpl{
		entryRepo:  entryRepo,
		recordRepo: recordRepo,
		userRepo:   userRepo,
		clock:      clk,
	}
}

// Recalculate implements hourbank.Service. The result is an upsert, so
// running it twice for the same user and month changes nothing.
func (s *HourBankServiceImpl) Recalculate(ctx context.Context, userID, month string) (*hourbank.EntryResponse, error) {
	first, ok := validator.IsValidMonth(month)
	if !ok {
		return nil, hourbank.ErrInvalidMonth
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	last := first.AddDate(0, 1, -1)
	records, err := s.recordRepo.ListByUserAndRange(ctx, userID,
		first.Format("2006-01-02"), last.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	workedCents := 0
	for _, rec := range records {
		if rec.TotalHours == nil {
			continue
		}
		cents, err := parseHoursToCents(*rec.TotalHours)
		if err != nil {
			return nil, fmt.Errorf("record %s has invalid total: %w", rec.ID, err)
		}
		workedCents += cents
	}

	dailyCents, err := parseHoursToCents(u.DailyWorkHours)
	if err != nil {
		return nil, fmt.Errorf("user %s has invalid daily hours: %w", u.ID, err)
	}
	expectedCents := hourbank.WorkingDaysInMonth(first.Year(), first.Month()) * dailyCents

	entry := &hourbank.Entry{
		ID:            uuid.NewString(),
		UserID:        userID,
		Month:         month,
		WorkedHours:   formatCents(workedCents),
		ExpectedHours: formatCents(expectedCents),
		Balance:       formatCents(workedCents - expectedCents),
		ComputedAt:    s.clock.Now(),
	}

	if err := s.entryRepo.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	metrics.HourBankRecalcTotal.Inc()
	return hourbank.ToEntryResponse(entry), nil
}

// RecalculateAll implements hourbank.Service.
func (s *HourBankServiceImpl) RecalculateAll(ctx context.Context, month string) error {
	users, err := s.userRepo.List(ctx, user.ListFilter{ActiveOnly: true})
	if err != nil {
		return err
	}

	for _, u := range users {
		if _, err := s.Recalculate(ctx, u.ID, month); err != nil {
			return fmt.Errorf("failed to recalculate user %s: %w", u.ID, err)
		}
	}

	return nil
}

// Mine implements hourbank.Service.
func (s *HourBankServiceImpl) Mine(ctx context.Context) ([]*hourbank.EntryResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListByUser(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return hourbank.ToEntryResponses(entries), nil
}

// ForUser implements hourbank.Service.
func (s *HourBankServiceImpl) ForUser(ctx context.Context, userID string) ([]*hourbank.EntryResponse, error) {
	if err := s.canAccessUser(ctx, userID); err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return hourbank.ToEntryResponses(entries), nil
}

// ForUserMonth implements hourbank.Service. A missing snapshot is
// computed on the spot instead of returning not-found.
func (s *HourBankServiceImpl) ForUserMonth(ctx context.Context, userID, month string) (*hourbank.EntryResponse, error) {
	if _, ok := validator.IsValidMonth(month); !ok {
		return nil, hourbank.ErrInvalidMonth
	}
	if err := s.canAccessUser(ctx, userID); err != nil {
		return nil, err
	}

	entry, err := s.entryRepo.GetByUserAndMonth(ctx, userID, month)
	if err != nil {
		if errors.Is(err, hourbank.ErrEntryNotFound) {
			return s.Recalculate(ctx, userID, month)
		}
		return nil, err
	}

	return hourbank.ToEntryResponse(entry), nil
}

func (s *HourBankServiceImpl) canAccessUser(ctx context.Context, userID string) error {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	if claims.Role == user.RoleEmployee {
		return user.ErrPermissionDenied
	}
	if claims.Role == user.RoleManager {
		target, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if claims.DepartmentID == nil || target.DepartmentID == nil || *claims.DepartmentID != *target.DepartmentID {
			return user.ErrPermissionDenied
		}
	}
	return nil
}

// CurrentMonth returns the month the given moment falls in, formatted
// the way hour bank entries are keyed.
func CurrentMonth(now time.Time) string {
	return now.Format("2006-01")
}

// parseHoursToCents converts a two-decimal hour string to hundredths,
// keeping the arithmetic integral.
func parseHoursToCents(s string) (int, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(math.Round(f * 100)), nil
}

func formatCents(cents int) string {
	return strconv.FormatFloat(float64(cents)/100, 'f', 2, 64)
}
