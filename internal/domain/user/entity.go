package user

import "time"

// Role controls which parts of the API a user may reach.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// User is an account that can authenticate and punch time.
type User struct {
	ID               string
	Username         string
	PasswordHash     string
	Name             string
	CPF              *string
	Role             Role
	DepartmentID     *string
	FunctionID       *string
	EmploymentTypeID *string
	// DailyWorkHours is the contracted hours per working day, e.g. "8.00".
	DailyWorkHours string
	AdmissionDate  *time.Time
	BirthDate      *time.Time
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsManager reports whether the user holds manager or admin privileges.
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}
