package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/httpapi"
	memarearepo "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/memory/arearepo"
	memidentityrepo "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/memory/identityrepo"
	memsessionstore "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/memory/sessionstore"
	memteamrepo "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/memory/teamrepo"
	postgres "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/postgres"
	pgarearepo "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/postgres/arearepo"
	pgidentityrepo "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/postgres/identityrepo"
	pgsessionstore "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/postgres/sessionstore"
	pgteamrepo "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/postgres/teamrepo"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/app/areas"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/app/session"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/app/teams"
	platformclock "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/platform/clock"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/platform/config"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/platform/metrics"
	arearepoport "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/arearepo"
	identityrepoport "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/identityrepo"
	sessionstoreport "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/sessionstore"
	teamrepoport "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/teamrepo"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadServerFromEnv()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	clk := platformclock.NewSystemClock()

	var (
		areaRepo     arearepoport.Repository
		teamRepo     teamrepoport.Repository
		identityRepo identityrepoport.Repository
		sessionStore sessionstoreport.Store
		cleanup      func()
	)

	switch cfg.StorageBackend {
	case config.StoragePostgres:
		if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
			logger.Error("migrations failed", "error", err)
			os.Exit(1)
		}
		pool, err := postgres.NewPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		cleanup = pool.Close

		areaRepo = pgarearepo.NewRepo(pool)
		teamRepo = pgteamrepo.NewRepo(pool)
		identityRepo = pgidentityrepo.NewRepo(pool)
		sessionStore = pgsessionstore.NewStore(pool)
	default:
		areaRepo = memarearepo.NewRepo()
		teamRepo = memteamrepo.NewRepo()
		identityRepo = memidentityrepo.NewRepo()
		sessionStore = memsessionstore.NewStore(clk)
	}

	if cleanup != nil {
		defer cleanup()
	}

	var authMW func(http.Handler) http.Handler
	switch cfg.AuthMode {
	case config.AuthModeSession:
		authMW = httpapi.NewSessionAuthMiddleware(session.NewResolver(sessionStore, identityRepo))
	default:
		logger.Warn("dev auth enabled; requests trust X-Debug-Principal")
		authMW = httpapi.NewDevAuthMiddleware(cfg.DevPrincipal)
	}

	collector := metrics.NewCollector()
	limiter := httpapi.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
	defer limiter.Stop()

	areasSvc := areas.NewService(areaRepo, clk)
	teamsSvc := teams.NewService(teamRepo, clk)

	api := httpapi.NewServer(areasSvc, teamsSvc, logger)
	handler := httpapi.NewRouter(api, httpapi.RouterOptions{
		Auth:      authMW,
		Metrics:   collector,
		RateLimit: limiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("api listening", "port", cfg.Port, "storage", cfg.StorageBackend, "auth", cfg.AuthMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
