package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameTaken         = errors.New("username is already taken")
	ErrCannotDeactivateAdmin = errors.New("cannot deactivate an admin account")

	ErrAdminAccessRequired   = errors.New("admin access required")
	ErrManagerAccessRequired = errors.New("manager access required")
)
