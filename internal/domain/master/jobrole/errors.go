package jobrole

import "errors"

var (
	ErrJobRoleNotFound   = errors.New("job role not found")
	ErrJobRoleNameExists = errors.New("a job role with this name already exists")
	ErrJobRoleInUse      = errors.New("cannot delete job role while users are assigned to it")
)
