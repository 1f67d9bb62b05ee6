package response

import (
	"errors"
	"net/http"

	"github.com/attenda/timeclock-backend-go/internal/domain/auth"
	"github.com/attenda/timeclock-backend-go/internal/domain/payroll"
	"github.com/attenda/timeclock-backend-go/internal/domain/punch"
	"github.com/attenda/timeclock-backend-go/internal/domain/user"
	"github.com/attenda/timeclock-backend-go/internal/domain/workhours"
	"github.com/attenda/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "User account is inactive")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameTaken):
		Conflict(w, "Username is already taken")
	case errors.Is(err, user.ErrCannotDeactivateAdmin):
		Conflict(w, "Admin accounts cannot be deactivated")
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, err.Error())

	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch record not found")
	case errors.Is(err, punch.ErrNothingToImport):
		BadRequest(w, "No importable records in payload", nil)

	// Calculation errors
	case errors.Is(err, workhours.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range", nil)
	case errors.Is(err, workhours.ErrEmptyEmployeeID):
		BadRequest(w, "Employee id is required", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrNegativeRate):
		BadRequest(w, "Rates must not be negative", nil)
	case errors.Is(err, payroll.ErrPayrollSettingsNotFound):
		NotFound(w, "Payroll settings not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
