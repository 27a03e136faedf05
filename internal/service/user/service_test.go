package user

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pontohub/ponto-backend-go/internal/domain/master/department"
	"github.com/pontohub/ponto-backend-go/internal/domain/master/employmenttype"
	"github.com/pontohub/ponto-backend-go/internal/domain/master/function"
	"github.com/pontohub/ponto-backend-go/internal/domain/user"
)

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
		if filter.DepartmentID != nil {
			if u.DepartmentID == nil || *u.DepartmentID != *filter.DepartmentID {
				continue
			}
		}
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		if filter.ActiveOnly && !u.IsActive {
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
	if _, ok := f.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeDepartmentRepo struct {
	items map[string]*department.Department
}

func (f *fakeDepartmentRepo) Create(context.Context, *department.Department) error { return nil }
func (f *fakeDepartmentRepo) GetByID(_ context.Context, id string) (*department.Department, error) {
	d, ok := f.items[id]
	if !ok {
		return nil, department.ErrNotFound
	}
	return d, nil
}
func (f *fakeDepartmentRepo) GetByName(context.Context, string) (*department.Department, error) {
	return nil, department.ErrNotFound
}
func (f *fakeDepartmentRepo) List(context.Context) ([]*department.Department, error) {
	return nil, nil
}
func (f *fakeDepartmentRepo) Update(context.Context, *department.Department) error { return nil }
func (f *fakeDepartmentRepo) Delete(context.Context, string) error                 { return nil }

type fakeFunctionRepo struct{}

func (fakeFunctionRepo) Create(context.Context, *function.Function) error { return nil }
func (fakeFunctionRepo) GetByID(context.Context, string) (*function.Function, error) {
	return &function.Function{}, nil
}
func (fakeFunctionRepo) GetByName(context.Context, string) (*function.Function, error) {
	return nil, function.ErrNotFound
}
func (fakeFunctionRepo) List(context.Context) ([]*function.Function, error) { return nil, nil }
func (fakeFunctionRepo) Update(context.Context, *function.Function) error   { return nil }
func (fakeFunctionRepo) Delete(context.Context, string) error               { return nil }

type fakeEmploymentTypeRepo struct{}

func (fakeEmploymentTypeRepo) Create(context.Context, *employmenttype.EmploymentType) error {
	return nil
}
func (fakeEmploymentTypeRepo) GetByID(context.Context, string) (*employmenttype.EmploymentType, error) {
	return &employmenttype.EmploymentType{}, nil
}
func (fakeEmploymentTypeRepo) GetByName(context.Context, string) (*employmenttype.EmploymentType, error) {
	return nil, employmenttype.ErrNotFound
}
func (fakeEmploymentTypeRepo) List(context.Context) ([]*employmenttype.EmploymentType, error) {
	return nil, nil
}
func (fakeEmploymentTypeRepo) Update(context.Context, *employmenttype.EmploymentType) error {
	return nil
}
func (fakeEmploymentTypeRepo) Delete(context.Context, string) error { return nil }

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

func newTestService(repo *fakeUserRepo, depts map[string]*department.Department) user.Service {
	if depts == nil {
		depts = map[string]*department.Department{}
	}
	return NewUserService(repo, &fakeDepartmentRepo{items: depts}, fakeFunctionRepo{}, fakeEmploymentTypeRepo{})
}

func TestCreateUserHashesPasswordAndDefaultsHours(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, nil)

	resp, err := svc.Create(context.Background(), user.CreateUserRequest{
		Username: "alice", Password: "secret1", Name: "Alice", Role: "employee",
	})
	require.NoError(t, err)

	assert.Equal(t, "8.00", resp.DailyWorkHours)
	assert.True(t, resp.IsActive)

	stored := repo.users[resp.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestCreateUserRejectsTakenUsername(t *testing.T) {
	repo := newFakeUserRepo(&user.User{ID: "u1", Username: "alice"})
	svc := newTestService(repo, nil)

	_, err := svc.Create(context.Background(), user.CreateUserRequest{
		Username: "alice", Password: "secret1", Name: "Other", Role: "employee",
	})
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
}

func TestCreateManagerRequiresDepartment(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), nil)

	_, err := svc.Create(context.Background(), user.CreateUserRequest{
		Username: "bob", Password: "secret1", Name: "Bob", Role: "manager",
	})
	assert.ErrorIs(t, err, user.ErrDepartmentMissing)
}

func TestCreateUserRejectsUnknownDepartment(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), nil)

	_, err := svc.Create(context.Background(), user.CreateUserRequest{
		Username: "bob", Password: "secret1", Name: "Bob", Role: "employee",
		DepartmentID: strPtr("ghost"),
	})
	assert.ErrorIs(t, err, department.ErrNotFound)
}

func TestListScopesManagerToOwnDepartment(t *testing.T) {
	repo := newFakeUserRepo(
		&user.User{ID: "u1", Username: "a", DepartmentID: strPtr("d1"), Role: user.RoleEmployee},
		&user.User{ID: "u2", Username: "b", DepartmentID: strPtr("d2"), Role: user.RoleEmployee},
	)
	svc := newTestService(repo, nil)

	out, err := svc.List(authContext(t, "mgr", user.RoleManager, strPtr("d1")), user.ListFilter{})
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, "u1", out[0].ID)
}

func TestUpdateUserMergesFields(t *testing.T) {
	repo := newFakeUserRepo(&user.User{
		ID: "u1", Username: "alice", Name: "Alice",
		Role: user.RoleEmployee, DailyWorkHours: "8.00", IsActive: true,
	})
	svc := newTestService(repo, nil)

	resp, err := svc.Update(context.Background(), "u1", user.UpdateUserRequest{
		Name:           strPtr("Alice Souza"),
		DailyWorkHours: strPtr("6.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice Souza", resp.Name)
	assert.Equal(t, "6.00", resp.DailyWorkHours)
	assert.Equal(t, "alice", resp.Username)
}

func TestUpdateToManagerWithoutDepartmentFails(t *testing.T) {
	repo := newFakeUserRepo(&user.User{
		ID: "u1", Username: "alice", Name: "Alice",
		Role: user.RoleEmployee, DailyWorkHours: "8.00", IsActive: true,
	})
	svc := newTestService(repo, nil)

	_, err := svc.Update(context.Background(), "u1", user.UpdateUserRequest{Role: strPtr("manager")})
	assert.ErrorIs(t, err, user.ErrDepartmentMissing)
}

func TestDeleteRejectsOwnAccount(t *testing.T) {
	repo := newFakeUserRepo(&user.User{ID: "admin", Username: "admin"})
	svc := newTestService(repo, nil)

	err := svc.Delete(authContext(t, "admin", user.RoleAdmin, nil), "admin")
	assert.ErrorIs(t, err, user.ErrCannotDeleteSelf)
	assert.Contains(t, repo.users, "admin")
}

func TestDeleteRemovesOtherUser(t *testing.T) {
	repo := newFakeUserRepo(
		&user.User{ID: "admin", Username: "admin"},
		&user.User{ID: "u1", Username: "alice"},
	)
	svc := newTestService(repo, nil)

	require.NoError(t, svc.Delete(authContext(t, "admin", user.RoleAdmin, nil), "u1"))
	assert.NotContains(t, repo.users, "u1")
}

func TestMeReturnsCallerProfile(t *testing.T) {
	repo := newFakeUserRepo(&user.User{ID: "u1", Username: "alice", Name: "Alice"})
	svc := newTestService(repo, nil)

	resp, err := svc.Me(authContext(t, "u1", user.RoleEmployee, nil))
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
}
