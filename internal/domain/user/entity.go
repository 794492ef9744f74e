package user

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// CodePrefix returns the display-code prefix for a role (ADM001, INT001, ...).
func (r Role) CodePrefix() string {
	if r == RoleAdmin {
		return "ADM"
	}
	return "INT"
}

// FormatUserCode builds the human-facing display code from a role and a
// sequence number, e.g. FormatUserCode(RoleAdmin, 1) = "ADM001".
func FormatUserCode(role Role, seq int) string {
	return fmt.Sprintf("%s%03d", role.CodePrefix(), seq)
}

type User struct {
	ID              string
	UserCode        string
	FirstName       string
	LastName        string
	Email           string
	PasswordHash    string
	ContactNumber   *string
	DOB             *time.Time
	NIC             *string
	Role            Role
	ProfileImage    *string
	InternStartDate *time.Time
	InternEndDate   *time.Time
	Active          bool
	JobRoleID       *string
	TeamID          *string
	University      *string
	AddressLine1    *string
	AddressLine2    *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	JobRoleName *string
	TeamName    *string
}

// IsAdmin checks if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
