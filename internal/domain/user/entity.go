package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, can edit rates and profiles
	RoleOperator Role = "operator" // Can edit schedules and deductions
	RoleViewer   Role = "viewer"   // Read-only access to reports
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user can manage configuration
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanEdit checks if user can mutate schedules and deductions
func (u *User) CanEdit() bool {
	return u.Role == RoleAdmin || u.Role == RoleOperator
}
