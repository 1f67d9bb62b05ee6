package user

import "github.com/attenda/timeclock-backend-go/internal/pkg/validator"

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	// EmployeeID is the badge number the account punches under. Optional,
	// and always a bare base id without a work-type suffix.
	EmployeeID string `json:"employee_id,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters of letters, numbers, dots, underscores, or hyphens",
		})
	}

	errs = append(errs, validatePassword(r.Password)...)

	if !validator.IsInSlice(r.Role, AllRoles) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of admin, manager, employee",
		})
	}

	if r.EmployeeID != "" && !validator.IsNumeric(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must contain only digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ResetPasswordRequest struct {
	Password string `json:"password"`
}

func (r *ResetPasswordRequest) Validate() error {
	if errs := validatePassword(r.Password); len(errs) > 0 {
		return errs
	}
	return nil
}

type SetUserStatusRequest struct {
	Active bool `json:"active"`
}

type UserResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	EmployeeID string `json:"employee_id,omitempty"`
	IsActive   bool   `json:"is_active"`
	CreatedAt  string `json:"created_at"`
}

func validatePassword(password string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	} else if len(password) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 255 characters",
		})
	}

	return errs
}
