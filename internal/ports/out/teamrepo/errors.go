package teamrepo

import "errors"

var (
	// ErrNotFound indicates the requested team does not exist.
	ErrNotFound = errors.New("team not found")

	// ErrAlreadyExists indicates a team already exists with the provided ID.
	ErrAlreadyExists = errors.New("team already exists")
)
