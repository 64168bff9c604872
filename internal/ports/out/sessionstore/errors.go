package sessionstore

import "errors"

var (
	// ErrNotFound indicates the token does not map to a live session
	// (unknown, expired, or corrupt).
	ErrNotFound = errors.New("session not found")
)
