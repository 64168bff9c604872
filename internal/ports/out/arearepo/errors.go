package arearepo

import "errors"

var (
	// ErrNotFound indicates the requested area does not exist.
	ErrNotFound = errors.New("adopted area not found")

	// ErrAlreadyExists indicates an area already exists with the provided ID.
	ErrAlreadyExists = errors.New("adopted area already exists")
)
