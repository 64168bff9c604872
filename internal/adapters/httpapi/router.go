package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/platform/metrics"
)

// RouterOptions carries the cross-cutting pieces the router wires around the
// handlers. Auth is required; the rest is optional and skipped when nil.
type RouterOptions struct {
	// Auth guards the owner- and member-scoped routes.
	Auth func(http.Handler) http.Handler

	Metrics   *metrics.Collector
	RateLimit *RateLimiter
}

// NewRouter constructs the API HTTP router.
//
// The area layer and team reads are public: the map and the team directory
// render without an account. Everything that writes, and the caller's own
// area list, sits behind auth.
func NewRouter(s *Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	// Infra endpoints bypass rate limiting.
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	rateLimit := func(next http.Handler) http.Handler { return next }
	if opts.RateLimit != nil {
		rateLimit = opts.RateLimit.Middleware
	}

	// Public reads, rate limited by client IP.
	r.Group(func(r chi.Router) {
		r.Use(rateLimit)
		r.Get("/api/adopted-area-layer/", s.handleAreaLayer)
		r.Get("/api/teams/", s.handleListTeams)
		r.Get("/api/teams/{teamID}/", s.handleGetTeam)
	})

	// Authenticated routes, rate limited per principal.
	r.Group(func(r chi.Router) {
		r.Use(opts.Auth)
		r.Use(rateLimit)

		r.Post("/api/adopt-area/", s.handleCreateArea)
		r.Get("/api/adopted-areas/mine/", s.handleListMyAreas)
		r.Put("/api/adopt-area/{areaID}/", s.handleUpdateArea)
		r.Delete("/api/adopt-area/{areaID}/", s.handleDeleteArea)

		r.Post("/api/teams/", s.handleCreateTeam)
		r.Put("/api/teams/{teamID}/", s.handleUpdateTeam)
		r.Delete("/api/teams/{teamID}/", s.handleDeleteTeam)
		r.Post("/api/teams/{teamID}/join/", s.handleJoinTeam)
		r.Post("/api/teams/{teamID}/leave/", s.handleLeaveTeam)
		r.Post("/api/teams/{teamID}/leaders/add/", s.handleAddLeader)
		r.Post("/api/teams/{teamID}/leaders/remove/", s.handleRemoveLeader)
	})

	return r
}
