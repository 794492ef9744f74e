package user

import "errors"

// User domain errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailExists         = errors.New("email already registered")
	ErrNICExists           = errors.New("nic already registered")
	ErrUserCodeConflict    = errors.New("user code conflict")
	ErrAccountDeactivated  = errors.New("account is deactivated")
	ErrInvalidTeam         = errors.New("invalid team")
	ErrInvalidJobRole      = errors.New("invalid job role")
	ErrAdminAccessRequired = errors.New("admin access required")
)
