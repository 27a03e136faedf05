package user

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUsernameTaken     = errors.New("username already in use")
	ErrUserInactive      = errors.New("user is inactive")
	ErrInvalidRole       = errors.New("invalid role")
	ErrCannotDeleteSelf  = errors.New("cannot delete own account")
	ErrValidationFailed  = errors.New("validation failed")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrDepartmentMissing = errors.New("manager requires a department")
)
