package response

import (
	"errors"
	"net/http"

	"github.com/pontohub/ponto-backend-go/internal/domain/auth"
	"github.com/pontohub/ponto-backend-go/internal/domain/hourbank"
	"github.com/pontohub/ponto-backend-go/internal/domain/justification"
	"github.com/pontohub/ponto-backend-go/internal/domain/master/department"
	"github.com/pontohub/ponto-backend-go/internal/domain/master/employmenttype"
	"github.com/pontohub/ponto-backend-go/internal/domain/master/function"
	"github.com/pontohub/ponto-backend-go/internal/domain/report"
	"github.com/pontohub/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontohub/ponto-backend-go/internal/domain/user"
	"github.com/pontohub/ponto-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidRefreshToken):
		Unauthorized(w, "Invalid or expired refresh token")
	case errors.Is(err, auth.ErrWrongPassword):
		BadRequest(w, "Current password is incorrect", nil)
	case errors.Is(err, auth.ErrResetRequestNotFound):
		NotFound(w, "Password reset request not found")
	case errors.Is(err, auth.ErrResetRequestResolved):
		Conflict(w, "Password reset request already resolved")

	// Users
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameTaken):
		Conflict(w, "Username already in use")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrPermissionDenied):
		Forbidden(w, "Permission denied")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		BadRequest(w, "Cannot delete own account", nil)
	case errors.Is(err, user.ErrDepartmentMissing):
		BadRequest(w, "A department is required for this operation", nil)

	// Time records
	case errors.Is(err, timesheet.ErrMalformedTime):
		BadRequest(w, "Malformed clock time, expected HH:MM", nil)
	case errors.Is(err, timesheet.ErrPunchTooSoon):
		Conflict(w, "Punch too soon after the previous one")
	case errors.Is(err, timesheet.ErrDayFull):
		Conflict(w, "All four punches already registered for this day")
	case errors.Is(err, timesheet.ErrPunchOutOfOrder):
		BadRequest(w, "Punches out of chronological order", nil)
	case errors.Is(err, timesheet.ErrRecordNotFound):
		NotFound(w, "Time record not found")
	case errors.Is(err, timesheet.ErrSameDayAdjustment):
		Conflict(w, "Records cannot be adjusted on the same day")
	case errors.Is(err, timesheet.ErrAdjustmentWindowClosed):
		Conflict(w, "Adjustment window for this date has closed")
	case errors.Is(err, timesheet.ErrValidationFailed):
		BadRequest(w, err.Error(), nil)

	// Hour bank and reports
	case errors.Is(err, hourbank.ErrInvalidMonth), errors.Is(err, report.ErrInvalidMonth):
		BadRequest(w, "Invalid month, expected YYYY-MM", nil)
	case errors.Is(err, report.ErrInvalidDate):
		BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
	case errors.Is(err, hourbank.ErrEntryNotFound):
		NotFound(w, "Hour bank entry not found")

	// Justifications
	case errors.Is(err, justification.ErrNotFound):
		NotFound(w, "Justification not found")
	case errors.Is(err, justification.ErrAlreadyReviewed):
		Conflict(w, "Justification already reviewed")
	case errors.Is(err, justification.ErrDuplicateForDate):
		Conflict(w, "A justification already exists for this date")

	// Master data
	case errors.Is(err, department.ErrNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrNameTaken):
		Conflict(w, "Department name already in use")
	case errors.Is(err, department.ErrInUse):
		Conflict(w, "Department still has users assigned")
	case errors.Is(err, function.ErrNotFound):
		NotFound(w, "Function not found")
	case errors.Is(err, function.ErrNameTaken):
		Conflict(w, "Function name already in use")
	case errors.Is(err, function.ErrInUse):
		Conflict(w, "Function still has users assigned")
	case errors.Is(err, employmenttype.ErrNotFound):
		NotFound(w, "Employment type not found")
	case errors.Is(err, employmenttype.ErrNameTaken):
		Conflict(w, "Employment type name already in use")
	case errors.Is(err, employmenttype.ErrInUse):
		Conflict(w, "Employment type still has users assigned")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
