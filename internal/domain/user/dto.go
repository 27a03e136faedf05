package user

import (
	"time"

	"github.com/pontohub/ponto-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Username         string  `json:"username"`
	Password         string  `json:"password"`
	Name             string  `json:"name"`
	CPF              *string `json:"cpf,omitempty"`
	Role             string  `json:"role"`
	DepartmentID     *string `json:"department_id,omitempty"`
	FunctionID       *string `json:"function_id,omitempty"`
	EmploymentTypeID *string `json:"employment_type_id,omitempty"`
	DailyWorkHours   string  `json:"daily_work_hours,omitempty"`
	AdmissionDate    *string `json:"admission_date,omitempty"`
	BirthDate        *string `json:"birth_date,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs.Add("username", "username is required")
	} else if !validator.IsValidUsername(r.Username) {
		errs.Add("username", "username must be 3-50 characters of letters, digits, dot, dash or underscore")
	}
	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	} else if len(r.Password) < 6 {
		errs.Add("password", "password must be at least 6 characters")
	}
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	if validator.IsEmpty(r.Role) {
		errs.Add("role", "role is required")
	} else if !Role(r.Role).Valid() {
		errs.Add("role", "role must be employee, manager or admin")
	}
	if r.CPF != nil && !validator.IsEmpty(*r.CPF) && !validator.IsValidCPF(*r.CPF) {
		errs.Add("cpf", "cpf must contain 11 digits")
	}
	if r.AdmissionDate != nil {
		if _, ok := validator.IsValidDate(*r.AdmissionDate); !ok {
			errs.Add("admission_date", "admission_date must be in YYYY-MM-DD format")
		}
	}
	if r.BirthDate != nil {
		if _, ok := validator.IsValidDate(*r.BirthDate); !ok {
			errs.Add("birth_date", "birth_date must be in YYYY-MM-DD format")
		}
	}
	if !validator.IsEmpty(r.DailyWorkHours) && !validator.IsValidDecimal(r.DailyWorkHours) {
		errs.Add("daily_work_hours", "daily_work_hours must be a decimal number")
	}

	if !errs.IsEmpty() {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	Username         *string `json:"username,omitempty"`
	Password         *string `json:"password,omitempty"`
	Name             *string `json:"name,omitempty"`
	CPF              *string `json:"cpf,omitempty"`
	Role             *string `json:"role,omitempty"`
	DepartmentID     *string `json:"department_id,omitempty"`
	FunctionID       *string `json:"function_id,omitempty"`
	EmploymentTypeID *string `json:"employment_type_id,omitempty"`
	DailyWorkHours   *string `json:"daily_work_hours,omitempty"`
	AdmissionDate    *string `json:"admission_date,omitempty"`
	BirthDate        *string `json:"birth_date,omitempty"`
	IsActive         *bool   `json:"is_active,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Username != nil && !validator.IsValidUsername(*r.Username) {
		errs.Add("username", "username must be 3-50 characters of letters, digits, dot, dash or underscore")
	}
	if r.Password != nil && len(*r.Password) < 6 {
		errs.Add("password", "password must be at least 6 characters")
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name cannot be empty")
	}
	if r.Role != nil && !Role(*r.Role).Valid() {
		errs.Add("role", "role must be employee, manager or admin")
	}
	if r.CPF != nil && !validator.IsEmpty(*r.CPF) && !validator.IsValidCPF(*r.CPF) {
		errs.Add("cpf", "cpf must contain 11 digits")
	}
	if r.AdmissionDate != nil {
		if _, ok := validator.IsValidDate(*r.AdmissionDate); !ok {
			errs.Add("admission_date", "admission_date must be in YYYY-MM-DD format")
		}
	}
	if r.BirthDate != nil {
		if _, ok := validator.IsValidDate(*r.BirthDate); !ok {
			errs.Add("birth_date", "birth_date must be in YYYY-MM-DD format")
		}
	}
	if r.DailyWorkHours != nil && !validator.IsValidDecimal(*r.DailyWorkHours) {
		errs.Add("daily_work_hours", "daily_work_hours must be a decimal number")
	}

	if !errs.IsEmpty() {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID               string  `json:"id"`
	Username         string  `json:"username"`
	Name             string  `json:"name"`
	CPF              *string `json:"cpf,omitempty"`
	Role             string  `json:"role"`
	DepartmentID     *string `json:"department_id,omitempty"`
	FunctionID       *string `json:"function_id,omitempty"`
	EmploymentTypeID *string `json:"employment_type_id,omitempty"`
	DailyWorkHours   string  `json:"daily_work_hours"`
	AdmissionDate    *string `json:"admission_date,omitempty"`
	BirthDate        *string `json:"birth_date,omitempty"`
	IsActive         bool    `json:"is_active"`
	CreatedAt        string  `json:"created_at"`
}

func ToUserResponse(u *User) *UserResponse {
	resp := &UserResponse{
		ID:               u.ID,
		Username:         u.Username,
		Name:             u.Name,
		CPF:              u.CPF,
		Role:             string(u.Role),
		DepartmentID:     u.DepartmentID,
		FunctionID:       u.FunctionID,
		EmploymentTypeID: u.EmploymentTypeID,
		DailyWorkHours:   u.DailyWorkHours,
		IsActive:         u.IsActive,
		CreatedAt:        u.CreatedAt.Format(time.RFC3339),
	}
	if u.AdmissionDate != nil {
		d := u.AdmissionDate.Format("2006-01-02")
		resp.AdmissionDate = &d
	}
	if u.BirthDate != nil {
		d := u.BirthDate.Format("2006-01-02")
		resp.BirthDate = &d
	}
	return resp
}

func ToUserResponses(users []*User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}
