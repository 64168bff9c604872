package domain

import "time"

// Identity is the acting principal a session token resolves to.
//
// Email is canonical (lowercased); the identity store enforces
// case-insensitive uniqueness on it.
type Identity struct {
	ID       PrincipalID
	Email    string
	Username string

	CreatedAt time.Time
}
