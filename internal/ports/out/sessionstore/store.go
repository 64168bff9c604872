package sessionstore

import (
	"context"

	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/domain"
)

// Store is a read-only view of the authentication subsystem's session store.
//
// The core never creates, renews, or deletes sessions; it only maps an opaque
// token to the principal the session was issued for. An expired session is
// reported as ErrNotFound, not as a distinct condition.
type Store interface {
	Lookup(ctx context.Context, token string) (domain.PrincipalID, error)
}
