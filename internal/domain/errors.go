package domain

import "errors"

var (
	ErrAlreadyMember  = errors.New("already a member of this team")
	ErrMemberNotFound = errors.New("team member not found")
	ErrTeamFull       = errors.New("team is full")
	ErrTeamNotFound   = errors.New("team not found")
)
