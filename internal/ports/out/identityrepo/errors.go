package identityrepo

import "errors"

var (
	// ErrNotFound indicates the requested identity does not exist.
	ErrNotFound = errors.New("identity not found")

	// ErrEmailAlreadyInUse indicates an identity already exists with the
	// provided email (case-insensitive).
	ErrEmailAlreadyInUse = errors.New("identity email already in use")

	// ErrAlreadyExists indicates an identity already exists with the
	// provided ID.
	ErrAlreadyExists = errors.New("identity already exists")
)
