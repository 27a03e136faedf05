package report

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/pontohub/ponto-backend-go/internal/domain/justification"
	"github.com/pontohub/ponto-backend-go/internal/domain/report"
	"github.com/pontohub/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontohub/ponto-backend-go/internal/domain/user"
	"github.com/pontohub/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontohub/ponto-backend-go/internal/pkg/validator"
)

type ReportServiceImpl struct {
	recordRepo timesheet.Repository
	userRepo   user.Repository
	justRepo   justification.Repository
}

func NewReportService(
	recordRepo timesheet.Repository,
	userRepo user.Repository,
	justRepo justification.Repository,
) report.Service {
	return &ReportServiceImpl{
		recordRepo: recordRepo,
		userRepo:   userRepo,
		justRepo:   justRepo,
	}
}

// Mine implements report.Service.
func (s *ReportServiceImpl) Mine(ctx context.Context, month string) (*report.MonthlyReport, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.build(ctx, claims.UserID, month)
}

// ForUser implements report.Service.
func (s *ReportServiceImpl) ForUser(ctx context.Context, userID, month string) (*report.MonthlyReport, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if claims.Role == user.RoleEmployee {
		return nil, user.ErrPermissionDenied
	}
	if claims.Role == user.RoleManager {
		target, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if claims.DepartmentID == nil || target.DepartmentID == nil || *claims.DepartmentID != *target.DepartmentID {
			return nil, user.ErrPermissionDenied
		}
	}

	return s.build(ctx, userID, month)
}

// build assembles the report line by line so absent days stay visible.
func (s *ReportServiceImpl) build(ctx context.Context, userID, month string) (*report.MonthlyReport, error) {
	period, err := report.ResolvePeriod(month)
	if err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.recordRepo.ListByUserAndRange(ctx, userID,
		period.Start.Format("2006-01-02"), period.End.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*timesheet.TimeRecord, len(records))
	for _, rec := range records {
		byDate[rec.Date] = rec
	}

	out := &report.MonthlyReport{
		UserID:       userID,
		UserName:     u.Name,
		CPF:          u.CPF,
		DepartmentID: u.DepartmentID,
		Month:        month,
		PeriodStart:  period.Start.Format("2006-01-02"),
		PeriodEnd:    period.End.Format("2006-01-02"),
	}

	totalCents := 0
	for _, date := range period.Days() {
		day, _ := time.Parse("2006-01-02", date)
		line := report.DayLine{
			Date:    date,
			Weekday: day.Weekday().String(),
		}

		if rec, ok := byDate[date]; ok {
			line.Entry1 = rec.Entry1
			line.Exit1 = rec.Exit1
			line.Entry2 = rec.Entry2
			line.Exit2 = rec.Exit2
			line.TotalHours = rec.TotalHours
			line.IsAdjusted = rec.IsAdjusted

			if rec.TotalHours != nil {
				if cents, err := parseHoursToCents(*rec.TotalHours); err == nil {
					totalCents += cents
				}
			}
		}

		out.Days = append(out.Days, line)
	}

	out.TotalWorked = formatCents(totalCents)

	// Dates are YYYY-MM-DD, so the window check is a string compare.
	justs, err := s.justRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, j := range justs {
		if j.Status == justification.StatusApproved &&
			j.Date >= out.PeriodStart && j.Date <= out.PeriodEnd {
			out.ApprovedJustifications++
		}
	}

	return out, nil
}

// Hour strings carry two decimals, so sums run in hundredths.
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

// Day implements report.Service.
func (s *ReportServiceImpl) Day(ctx context.Context, date string) (*report.DayOverview, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if claims.Role == user.RoleEmployee {
		return nil, user.ErrPermissionDenied
	}
	if _, ok := validator.IsValidDate(date); !ok {
		return nil, report.ErrInvalidDate
	}

	filter := user.ListFilter{ActiveOnly: true}
	if claims.Role == user.RoleManager {
		if claims.DepartmentID == nil {
			return nil, user.ErrDepartmentMissing
		}
		filter.DepartmentID = claims.DepartmentID
	}

	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	records, err := s.recordRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	byUser := make(map[string]*timesheet.TimeRecord, len(records))
	for _, rec := range records {
		byUser[rec.UserID] = rec
	}

	overview := &report.DayOverview{Date: date}
	for _, u := range users {
		line := report.DayOverviewLine{
			UserID:   u.ID,
			UserName: u.Name,
			State:    timesheet.StateEmpty.String(),
		}
		if rec, ok := byUser[u.ID]; ok {
			line.Entry1 = rec.Entry1
			line.Exit1 = rec.Exit1
			line.Entry2 = rec.Entry2
			line.Exit2 = rec.Exit2
			line.TotalHours = rec.TotalHours
			line.State = rec.State().String()
		}
		overview.Lines = append(overview.Lines, line)
	}

	var pending []*justification.Justification
	if filter.DepartmentID != nil {
		pending, err = s.justRepo.ListPendingByDepartment(ctx, *filter.DepartmentID)
	} else {
		pending, err = s.justRepo.ListPending(ctx)
	}
	if err != nil {
		return nil, err
	}
	overview.PendingJustifications = len(pending)

	return overview, nil
}
