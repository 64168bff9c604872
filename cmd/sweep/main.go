// Command sweep deactivates expired temporary adoptions and exits. It is
// meant to run on a schedule (cron or a container job), one shot per run.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	postgres "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/postgres"
	pgarearepo "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/adapters/postgres/arearepo"
	"github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/app/sweep"
	platformclock "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/platform/clock"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := postgres.RunMigrations(dsn); err != nil {
		logger.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, dsn)
	if err != nil {
		logger.Error("postgres connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	job := sweep.NewJob(pgarearepo.NewRepo(pool), platformclock.NewSystemClock(), logger, nil)
	n, err := job.Run(ctx)
	if err != nil {
		logger.Error("sweep failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("deactivated %d expired adoptions\n", n)
}
