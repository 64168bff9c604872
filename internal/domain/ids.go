package domain

// PrincipalID identifies an authenticated principal (a registered user).
// It is the value a session token resolves to; its format is controlled by
// the identity store.
type PrincipalID string

// AreaID is an internal identifier for an adopted-area record.
type AreaID string

// TeamID is an internal identifier for a team record.
type TeamID string
