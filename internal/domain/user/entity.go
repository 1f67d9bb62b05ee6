package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, manages rates and users
	RoleManager  Role = "manager"  // Can run reports for any employee
	RoleEmployee Role = "employee" // Can punch and view own report
)

// AllRoles lists every assignable role.
var AllRoles = []string{string(RoleAdmin), string(RoleManager), string(RoleEmployee)}

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	// EmployeeID links an account to its badge number. Empty for admin
	// accounts that never punch.
	EmployeeID string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsAdmin checks if user has full access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
