package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontohub/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontohub/ponto-backend-go/internal/domain/user"
	"github.com/pontohub/ponto-backend-go/internal/pkg/clock"
)

type fakeRecordRepo struct {
	byID map[string]*timesheet.TimeRecord
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{byID: make(map[string]*timesheet.TimeRecord)}
}

func (f *fakeRecordRepo) Create(_ context.Context, record *timesheet.TimeRecord) error {
	cp := *record
	f.byID[record.ID] = &cp
	return nil
}

func (f *fakeRecordRepo) GetByID(_ context.Context, id string) (*timesheet.TimeRecord, error) {
	rec, ok := f.byID[id]
	if !ok {
		return nil, timesheet.ErrRecordNotFound
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeRecordRepo) GetByUserAndDate(_ context.Context, userID, date string) (*timesheet.TimeRecord, error) {
	for _, rec := range f.byID {
		if rec.UserID == userID && rec.Date == date {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, timesheet.ErrRecordNotFound
}

func (f *fakeRecordRepo) GetByUserAndDateForUpdate(ctx context.Context, userID, date string) (*timesheet.TimeRecord, error) {
	return f.GetByUserAndDate(ctx, userID, date)
}

func (f *fakeRecordRepo) ListByUserAndRange(_ context.Context, userID, startDate, endDate string) ([]*timesheet.TimeRecord, error) {
	var out []*timesheet.TimeRecord
	for _, rec := range f.byID {
		if rec.UserID == userID && rec.Date >= startDate && rec.Date <= endDate {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) ListByDate(_ context.Context, date string) ([]*timesheet.TimeRecord, error) {
	var out []*timesheet.TimeRecord
	for _, rec := range f.byID {
		if rec.Date == date {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) Update(_ context.Context, record *timesheet.TimeRecord) error {
	if _, ok := f.byID[record.ID]; !ok {
		return timesheet.ErrRecordNotFound
	}
	cp := *record
	f.byID[record.ID] = &cp
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

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
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
		if filter.Role != nil && u.Role != *filter.Role {
			continue
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

func newTestService(records *fakeRecordRepo, users *fakeUserRepo, now time.Time) *TimesheetServiceImpl {
	return &TimesheetServiceImpl{
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
		recordRepo: records,
		userRepo:   users,
		clock:      clock.Fixed(now),
	}
}

func strPtr(s string) *string { return &s }

func TestPunchCreatesRecordWithServerTime(t *testing.T) {
	records := newFakeRecordRepo()
	svc := newTestService(records, newFakeUserRepo(), time.Date(2024, 3, 15, 8, 3, 0, 0, time.UTC))

	ctx := authContext(t, "u1", user.RoleEmployee, nil)

	resp, err := svc.Punch(ctx, timesheet.PunchRequest{})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-15", resp.Date)
	require.NotNil(t, resp.Entry1)
	assert.Equal(t, "08:03", *resp.Entry1)
	assert.Equal(t, "has_entry1", resp.State)
	assert.Nil(t, resp.TotalHours)
}

func TestPunchFillsNextSlot(t *testing.T) {
	records := newFakeRecordRepo()
	require.NoError(t, records.Create(context.Background(), &timesheet.TimeRecord{
		ID: "r1", UserID: "u1", Date: "2024-03-15",
		Entry1: strPtr("08:00"),
	}))
	svc := newTestService(records, newFakeUserRepo(), time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))

	ctx := authContext(t, "u1", user.RoleEmployee, nil)

	resp, err := svc.Punch(ctx, timesheet.PunchRequest{})
	require.NoError(t, err)
	require.NotNil(t, resp.Exit1)
	assert.Equal(t, "12:00", *resp.Exit1)
	assert.Equal(t, "has_exit1", resp.State)
	// Half a day punched is not a worked day yet.
	assert.Nil(t, resp.TotalHours)
}

func TestPunchTotalOnlyOnFourthSlot(t *testing.T) {
	records := newFakeRecordRepo()
	require.NoError(t, records.Create(context.Background(), &timesheet.TimeRecord{
		ID: "r1", UserID: "u1", Date: "2024-03-15",
		Entry1: strPtr("08:00"), Exit1: strPtr("12:00"), Entry2: strPtr("13:00"),
	}))
	svc := newTestService(records, newFakeUserRepo(), time.Date(2024, 3, 15, 17, 0, 0, 0, time.UTC))

	ctx := authContext(t, "u1", user.RoleEmployee, nil)

	resp, err := svc.Punch(ctx, timesheet.PunchRequest{})
	require.NoError(t, err)
	assert.Equal(t, "complete", resp.State)
	require.NotNil(t, resp.TotalHours)
	assert.Equal(t, "8.00", *resp.TotalHours)
}

func TestPunchRejectsShortInterval(t *testing.T) {
	records := newFakeRecordRepo()
	require.NoError(t, records.Create(context.Background(), &timesheet.TimeRecord{
		ID: "r1", UserID: "u1", Date: "2024-03-15",
		Entry1: strPtr("08:00"),
	}))
	svc := newTestService(records, newFakeUserRepo(), time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC))

	ctx := authContext(t, "u1", user.RoleEmployee, nil)

	_, err := svc.Punch(ctx, timesheet.PunchRequest{})
	assert.ErrorIs(t, err, timesheet.ErrPunchTooSoon)
}

func TestPunchRejectsFullDay(t *testing.T) {
	records := newFakeRecordRepo()
	require.NoError(t, records.Create(context.Background(), &timesheet.TimeRecord{
		ID: "r1", UserID: "u1", Date: "2024-03-15",
		Entry1: strPtr("08:00"), Exit1: strPtr("12:00"),
		Entry2: strPtr("13:00"), Exit2: strPtr("17:00"),
	}))
	svc := newTestService(records, newFakeUserRepo(), time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC))

	ctx := authContext(t, "u1", user.RoleEmployee, nil)

	_, err := svc.Punch(ctx, timesheet.PunchRequest{})
	assert.ErrorIs(t, err, timesheet.ErrDayFull)
}

func TestPunchRejectsMalformedOverride(t *testing.T) {
	svc := newTestService(newFakeRecordRepo(), newFakeUserRepo(), time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC))

	ctx := authContext(t, "u1", user.RoleEmployee, nil)

	_, err := svc.Punch(ctx, timesheet.PunchRequest{Time: strPtr("26:99")})
	assert.ErrorIs(t, err, timesheet.ErrMalformedTime)
}

func TestTodayReturnsEmptyRecordWhenNoPunches(t *testing.T) {
	svc := newTestService(newFakeRecordRepo(), newFakeUserRepo(), time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC))

	ctx := authContext(t, "u1", user.RoleEmployee, nil)

	resp, err := svc.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", resp.Date)
	assert.Equal(t, "empty", resp.State)
	assert.Nil(t, resp.Entry1)
}

func TestAdjustRejectsSameDay(t *testing.T) {
	records := newFakeRecordRepo()
	require.NoError(t, records.Create(context.Background(), &timesheet.TimeRecord{
		ID: "r1", UserID: "u1", Date: "2024-03-15",
		Entry1: strPtr("08:00"),
	}))
	users := newFakeUserRepo(&user.User{ID: "u1", DepartmentID: strPtr("d1"), IsActive: true})
	svc := newTestService(records, users, time.Date(2024, 3, 15, 16, 0, 0, 0, time.UTC))

	ctx := authContext(t, "mgr", user.RoleManager, strPtr("d1"))

	_, err := svc.Adjust(ctx, "r1", timesheet.AdjustRecordRequest{
		Entry1: strPtr("08:00"), Exit1: strPtr("12:00"), Reason: "forgot punch",
	})
	assert.ErrorIs(t, err, timesheet.ErrSameDayAdjustment)
}

func TestAdjustRejectsClosedWindow(t *testing.T) {
	// On 2024-03-25 the open floor is 2024-02-20; 2024-02-10 is closed.
	records := newFakeRecordRepo()
	require.NoError(t, records.Create(context.Background(), &timesheet.TimeRecord{
		ID: "r1", UserID: "u1", Date: "2024-02-10",
		Entry1: strPtr("08:00"),
	}))
	users := newFakeUserRepo(&user.User{ID: "u1", DepartmentID: strPtr("d1"), IsActive: true})
	svc := newTestService(records, users, time.Date(2024, 3, 25, 10, 0, 0, 0, time.UTC))

	ctx := authContext(t, "mgr", user.RoleManager, strPtr("d1"))

	_, err := svc.Adjust(ctx, "r1", timesheet.AdjustRecordRequest{
		Entry1: strPtr("08:00"), Exit1: strPtr("12:00"), Reason: "forgot punch",
	})
	assert.ErrorIs(t, err, timesheet.ErrAdjustmentWindowClosed)
}

func TestAdjustRewritesRecord(t *testing.T) {
	records := newFakeRecordRepo()
	require.NoError(t, records.Create(context.Background(), &timesheet.TimeRecord{
		ID: "r1", UserID: "u1", Date: "2024-03-14",
		Entry1: strPtr("08:00"),
	}))
	users := newFakeUserRepo(&user.User{ID: "u1", DepartmentID: strPtr("d1"), IsActive: true})
	svc := newTestService(records, users, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))

	ctx := authContext(t, "mgr", user.RoleManager, strPtr("d1"))

	resp, err := svc.Adjust(ctx, "r1", timesheet.AdjustRecordRequest{
		Entry1: strPtr("08:00"), Exit1: strPtr("12:00"),
		Entry2: strPtr("13:00"), Exit2: strPtr("17:00"),
		Reason: "missed exit punches",
	})
	require.NoError(t, err)
	assert.True(t, resp.IsAdjusted)
	require.NotNil(t, resp.TotalHours)
	assert.Equal(t, "8.00", *resp.TotalHours)

	stored, err := records.GetByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.True(t, stored.IsAdjusted)
}

func TestAdjustRejectsEmployeeCaller(t *testing.T) {
	records := newFakeRecordRepo()
	require.NoError(t, records.Create(context.Background(), &timesheet.TimeRecord{
		ID: "r1", UserID: "u1", Date: "2024-03-14",
		Entry1: strPtr("08:00"),
	}))
	users := newFakeUserRepo(&user.User{ID: "u1", DepartmentID: strPtr("d1"), IsActive: true})
	svc := newTestService(records, users, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))

	ctx := authContext(t, "u1", user.RoleEmployee, strPtr("d1"))

	_, err := svc.Adjust(ctx, "r1", timesheet.AdjustRecordRequest{
		Entry1: strPtr("08:00"), Exit1: strPtr("12:00"), Reason: "fix",
	})
	assert.ErrorIs(t, err, user.ErrPermissionDenied)
}

func TestAdjustRejectsManagerFromOtherDepartment(t *testing.T) {
	records := newFakeRecordRepo()
	require.NoError(t, records.Create(context.Background(), &timesheet.TimeRecord{
		ID: "r1", UserID: "u1", Date: "2024-03-14",
		Entry1: strPtr("08:00"),
	}))
	users := newFakeUserRepo(&user.User{ID: "u1", DepartmentID: strPtr("d1"), IsActive: true})
	svc := newTestService(records, users, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))

	ctx := authContext(t, "mgr", user.RoleManager, strPtr("d2"))

	_, err := svc.Adjust(ctx, "r1", timesheet.AdjustRecordRequest{
		Entry1: strPtr("08:00"), Exit1: strPtr("12:00"), Reason: "fix",
	})
	assert.ErrorIs(t, err, user.ErrPermissionDenied)
}

func TestAdjustmentFloor(t *testing.T) {
	cases := []struct {
		now   string
		floor string
	}{
		{"2024-03-25", "2024-02-20"},
		{"2024-03-10", "2024-01-20"},
		{"2024-03-20", "2024-02-20"},
		{"2024-01-05", "2023-11-20"},
	}

	for _, c := range cases {
		now, err := time.Parse("2006-01-02", c.now)
		require.NoError(t, err)
		assert.Equal(t, c.floor, adjustmentFloor(now).Format("2006-01-02"), "now %s", c.now)
	}
}
