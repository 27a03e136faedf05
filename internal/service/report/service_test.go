package report

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontohub/ponto-backend-go/internal/domain/justification"
	"github.com/pontohub/ponto-backend-go/internal/domain/report"
	"github.com/pontohub/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontohub/ponto-backend-go/internal/domain/user"
)

type fakeJustificationRepo struct {
	items []*justification.Justification
}

func (f *fakeJustificationRepo) Create(_ context.Context, j *justification.Justification) error {
	f.items = append(f.items, j)
	return nil
}

func (f *fakeJustificationRepo) GetByID(context.Context, string) (*justification.Justification, error) {
	return nil, justification.ErrNotFound
}

func (f *fakeJustificationRepo) GetByUserAndDate(context.Context, string, string) (*justification.Justification, error) {
	return nil, justification.ErrNotFound
}

func (f *fakeJustificationRepo) ListByUser(_ context.Context, userID string) ([]*justification.Justification, error) {
	var out []*justification.Justification
	for _, j := range f.items {
		if j.UserID == userID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJustificationRepo) ListPendingByDepartment(ctx context.Context, _ string) ([]*justification.Justification, error) {
	return f.ListPending(ctx)
}

func (f *fakeJustificationRepo) ListPending(context.Context) ([]*justification.Justification, error) {
	var out []*justification.Justification
	for _, j := range f.items {
		if j.Status == justification.StatusPending {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJustificationRepo) Update(context.Context, *justification.Justification) error {
	return nil
}

type fakeRecordRepo struct {
	records []*timesheet.TimeRecord
}

func (f *fakeRecordRepo) Create(_ context.Context, r *timesheet.TimeRecord) error {
	f.records = append(f.records, r)
	return nil
}

func (f *fakeRecordRepo) GetByID(context.Context, string) (*timesheet.TimeRecord, error) {
	return nil, timesheet.ErrRecordNotFound
}

func (f *fakeRecordRepo) GetByUserAndDate(context.Context, string, string) (*timesheet.TimeRecord, error) {
	return nil, timesheet.ErrRecordNotFound
}

func (f *fakeRecordRepo) GetByUserAndDateForUpdate(context.Context, string, string) (*timesheet.TimeRecord, error) {
	return nil, timesheet.ErrRecordNotFound
}

func (f *fakeRecordRepo) ListByUserAndRange(_ context.Context, userID, startDate, endDate string) ([]*timesheet.TimeRecord, error) {
	var out []*timesheet.TimeRecord
	for _, rec := range f.records {
		if rec.UserID == userID && rec.Date >= startDate && rec.Date <= endDate {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) ListByDate(_ context.Context, date string) ([]*timesheet.TimeRecord, error) {
	var out []*timesheet.TimeRecord
	for _, rec := range f.records {
		if rec.Date == date {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) Update(context.Context, *timesheet.TimeRecord) error {
	return nil
}

type fakeUserRepo struct {
	users map[string]*user.User
}

func newFakeUserRepo(users ...*user.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]*user.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(context.Context, string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(_ context.Context, filter user.ListFilter) ([]*user.User, error) {
	var out []*user.User
	for _, u := range f.users {
		if filter.ActiveOnly && !u.IsActive {
			continue
		}
		if filter.DepartmentID != nil {
			if u.DepartmentID == nil || *u.DepartmentID != *filter.DepartmentID {
				continue
			}
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func strPtr(s string) *string { return &s }

func authContext(t *testing.T, userID string, role user.Role, departmentID *string) context.Context {
	t.Helper()

	claims := map[string]interface{}{
		"user_id":  userID,
		"username": userID,
		"role":     string(role),
	}
	if departmentID != nil {
		claims["department_id"] = *departmentID
	}

	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(claims)
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestMineBuildsFullPeriod(t *testing.T) {
	records := &fakeRecordRepo{records: []*timesheet.TimeRecord{
		{
			ID: "r1", UserID: "u1", Date: "2024-01-22",
			Entry1: strPtr("08:00"), Exit1: strPtr("12:00"),
			Entry2: strPtr("13:00"), Exit2: strPtr("17:00"),
			TotalHours: strPtr("8.00"),
		},
		{
			ID: "r2", UserID: "u1", Date: "2024-02-05",
			Entry1: strPtr("09:00"), Exit1: strPtr("12:00"),
			Entry2: strPtr("13:00"), Exit2: strPtr("13:30"),
			TotalHours: strPtr("3.50"), IsAdjusted: true,
		},
	}}
	users := newFakeUserRepo(&user.User{ID: "u1", Name: "Joao Silva", IsActive: true})
	justs := &fakeJustificationRepo{items: []*justification.Justification{
		{ID: "j1", UserID: "u1", Date: "2024-02-01", Status: justification.StatusApproved},
		{ID: "j2", UserID: "u1", Date: "2024-02-02", Status: justification.StatusRejected},
		{ID: "j3", UserID: "u1", Date: "2024-03-01", Status: justification.StatusApproved},
	}}
	svc := NewReportService(records, users, justs)

	rep, err := svc.Mine(authContext(t, "u1", user.RoleEmployee, nil), "2024-03")
	require.NoError(t, err)

	assert.Equal(t, "Joao Silva", rep.UserName)
	assert.Equal(t, "2024-01-20", rep.PeriodStart)
	assert.Equal(t, "2024-02-19", rep.PeriodEnd)
	require.Len(t, rep.Days, 31)
	assert.Equal(t, "11.50", rep.TotalWorked)

	// Day 1 of the window is an absence: present in the report, no punches.
	assert.Equal(t, "2024-01-20", rep.Days[0].Date)
	assert.Nil(t, rep.Days[0].Entry1)

	third := rep.Days[2]
	assert.Equal(t, "2024-01-22", third.Date)
	assert.Equal(t, "Monday", third.Weekday)
	require.NotNil(t, third.TotalHours)
	assert.Equal(t, "8.00", *third.TotalHours)

	adjusted := rep.Days[16]
	assert.Equal(t, "2024-02-05", adjusted.Date)
	assert.True(t, adjusted.IsAdjusted)

	// Only approved justifications inside the window count.
	assert.Equal(t, 1, rep.ApprovedJustifications)
}

func TestMineRejectsBadMonth(t *testing.T) {
	svc := NewReportService(&fakeRecordRepo{}, newFakeUserRepo(&user.User{ID: "u1"}), &fakeJustificationRepo{})

	_, err := svc.Mine(authContext(t, "u1", user.RoleEmployee, nil), "2024/03")
	assert.ErrorIs(t, err, report.ErrInvalidMonth)
}

func TestForUserEnforcesDepartment(t *testing.T) {
	users := newFakeUserRepo(&user.User{ID: "u1", Name: "Joao", DepartmentID: strPtr("d1"), IsActive: true})
	svc := NewReportService(&fakeRecordRepo{}, users, &fakeJustificationRepo{})

	_, err := svc.ForUser(authContext(t, "mgr", user.RoleManager, strPtr("d2")), "u1", "2024-03")
	assert.ErrorIs(t, err, user.ErrPermissionDenied)

	_, err = svc.ForUser(authContext(t, "mgr", user.RoleManager, strPtr("d1")), "u1", "2024-03")
	assert.NoError(t, err)
}

func TestDayOverviewCoversDepartment(t *testing.T) {
	users := newFakeUserRepo(
		&user.User{ID: "u1", Name: "Joao", DepartmentID: strPtr("d1"), IsActive: true},
		&user.User{ID: "u2", Name: "Maria", DepartmentID: strPtr("d1"), IsActive: true},
		&user.User{ID: "u3", Name: "Ana", DepartmentID: strPtr("d2"), IsActive: true},
	)
	records := &fakeRecordRepo{records: []*timesheet.TimeRecord{
		{
			ID: "r1", UserID: "u1", Date: "2024-03-15",
			Entry1: strPtr("08:00"), Exit1: strPtr("12:00"),
		},
	}}
	justs := &fakeJustificationRepo{items: []*justification.Justification{
		{ID: "j1", UserID: "u2", Date: "2024-03-15", Status: justification.StatusPending},
	}}
	svc := NewReportService(records, users, justs)

	overview, err := svc.Day(authContext(t, "mgr", user.RoleManager, strPtr("d1")), "2024-03-15")
	require.NoError(t, err)

	require.Len(t, overview.Lines, 2)

	byUser := make(map[string]string)
	for _, line := range overview.Lines {
		byUser[line.UserID] = line.State
	}
	assert.Equal(t, "has_exit1", byUser["u1"])
	assert.Equal(t, "empty", byUser["u2"])
	assert.NotContains(t, byUser, "u3")
	assert.Equal(t, 1, overview.PendingJustifications)
}

func TestDayOverviewRejectsEmployee(t *testing.T) {
	svc := NewReportService(&fakeRecordRepo{}, newFakeUserRepo(), &fakeJustificationRepo{})

	_, err := svc.Day(authContext(t, "u1", user.RoleEmployee, nil), "2024-03-15")
	assert.ErrorIs(t, err, user.ErrPermissionDenied)
}
