package team

import "errors"

var (
	ErrTeamNotFound   = errors.New("team not found")
	ErrTeamNameExists = errors.New("a team with this name already exists")
	ErrTeamInUse      = errors.New("cannot delete team while users are assigned to it")
)
