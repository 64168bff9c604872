package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/app/session"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/domain"
)

// NewSessionAuthMiddleware enforces X-Session-Token on the routes it wraps.
//
// On success it stores the resolved identity in request context. Every
// failure mode gets the same 401; the resolver already collapses them, and
// the response does not say which one it was.
func NewSessionAuthMiddleware(resolver *session.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := resolver.Resolve(r.Context(), r.Header.Get("X-Session-Token"))
			if err != nil {
				writeError(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required", nil)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// NewDevAuthMiddleware is a local/dev-only auth shim.
//
// It accepts an explicit principal via X-Debug-Principal and synthesizes an
// identity for it, falling back to defaultPrincipal when the header is
// absent. Intended for local Docker workflows where standing up the session
// subsystem is overkill. Do NOT use this in production deployments.
func NewDevAuthMiddleware(defaultPrincipal string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := strings.TrimSpace(r.Header.Get("X-Debug-Principal"))
			if principal == "" {
				principal = strings.TrimSpace(defaultPrincipal)
			}
			if principal == "" {
				writeError(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "missing principal (set X-Debug-Principal)", nil)
				return
			}

			identity := domain.Identity{
				ID:        domain.PrincipalID(principal),
				Email:     principal + "@dev.invalid",
				Username:  principal,
				CreatedAt: time.Now().UTC(),
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}
