// Package sweep deactivates temporary adoptions whose end date has passed.
// It is a batch unit of work; scheduling belongs to whoever invokes it
// (cmd/sweep, a cron entry, a test).
package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	clockport "github.com/Seaside-Sustainability-Web-GIS/CleanUpCoop-backend/internal/ports/out/clock"
)

// Deactivator is the slice of the area repository the sweep needs.
type Deactivator interface {
	DeactivateExpired(ctx context.Context, today time.Time) (int64, error)
}

// Recorder receives the per-run deactivation count for metrics.
type Recorder interface {
	RecordAreasDeactivated(n int64)
}

// Job flips is_active off on every expired temporary adoption, in one bulk
// write, and reports the affected count. Idempotent: a rerun with nothing
// newly expired affects zero records.
type Job struct {
	repo    Deactivator
	clk     clockport.Clock
	logger  *slog.Logger
	metrics Recorder // may be nil
}

func NewJob(repo Deactivator, clk clockport.Clock, logger *slog.Logger, metrics Recorder) *Job {
	return &Job{repo: repo, clk: clk, logger: logger, metrics: metrics}
}

// Run executes one sweep. A storage failure fails the whole invocation; the
// next scheduled run retries.
func (j *Job) Run(ctx context.Context) (int64, error) {
	start := time.Now()
	today := dateOnly(j.clk.Now())

	n, err := j.repo.DeactivateExpired(ctx, today)
	if err != nil {
		j.logger.Error("expiry sweep failed",
			slog.String("error", err.Error()),
		)
		return 0, fmt.Errorf("deactivate expired adoptions: %w", err)
	}

	if j.metrics != nil {
		j.metrics.RecordAreasDeactivated(n)
	}
	j.logger.Info("expiry sweep completed",
		slog.Int64("deactivated", n),
		slog.String("as_of", today.Format("2006-01-02")),
		slog.Float64("duration_ms", float64(time.Since(start).Milliseconds())),
	)
	return n, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
