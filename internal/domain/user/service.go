package user

import "context"

// UserService defines account management, an admin-only surface.
type UserService interface {
	// CreateUser provisions a new account with a hashed password
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// GetUser retrieves a single account by id
	GetUser(ctx context.Context, id string) (UserResponse, error)

	// ResetPassword replaces an account's password
	ResetPassword(ctx context.Context, id string, req ResetPasswordRequest) error

	// SetUserStatus activates or deactivates an account. Admin accounts
	// cannot be deactivated.
	SetUserStatus(ctx context.Context, id string, req SetUserStatusRequest) error
}
