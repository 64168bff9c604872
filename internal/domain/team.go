package domain

import "time"

// Team is a group of principals who steward cleanup sites together.
//
// Members and Leaders are sets (no duplicates). Storage does not force
// Leaders ⊆ Members; the governance service enforces it when leadership is
// granted and cascades leadership removal when membership is removed.
type Team struct {
	ID TeamID

	Name         string
	Description  string
	Headquarters GeoPoint
	City         string
	State        string
	Country      string

	Members []PrincipalID
	Leaders []PrincipalID

	CreatedAt time.Time
}

// IsMember reports whether p is in the team's member set.
func (t Team) IsMember(p PrincipalID) bool { return containsPrincipal(t.Members, p) }

// IsLeader reports whether p is in the team's leader set.
func (t Team) IsLeader(p PrincipalID) bool { return containsPrincipal(t.Leaders, p) }

func containsPrincipal(ps []PrincipalID, p PrincipalID) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}
