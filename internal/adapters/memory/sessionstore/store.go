package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/domain"
	clockport "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/clock"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/sessionstore"
)

// Store is an in-memory implementation of sessionstore.Store.
// It is safe for concurrent use.
//
// The session-issuing side of the real authentication subsystem is out of
// scope; Put exists so tests and the dev backend can seed sessions.
type Store struct {
	mu  sync.RWMutex
	clk clockport.Clock

	byToken map[string]session
}

type session struct {
	principal domain.PrincipalID
	expiresAt time.Time
}

func NewStore(clk clockport.Clock) *Store {
	return &Store{
		clk:     clk,
		byToken: make(map[string]session),
	}
}

// Put seeds a session. A zero expiry means the session never expires.
func (s *Store) Put(token string, principal domain.PrincipalID, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byToken[token] = session{principal: principal, expiresAt: expiresAt}
}

// Revoke removes a session if present.
func (s *Store) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byToken, token)
}

func (s *Store) Lookup(ctx context.Context, token string) (domain.PrincipalID, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.byToken[token]
	if !ok {
		return "", sessionstore.ErrNotFound
	}
	if !sess.expiresAt.IsZero() && !sess.expiresAt.After(s.clk.Now()) {
		return "", sessionstore.ErrNotFound
	}
	return sess.principal, nil
}

var _ sessionstore.Store = (*Store)(nil)
