package harness

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DefaultWindow is the sampling window used when none is configured.
const DefaultWindow = time.Second

// ErrInvalidConfig is returned by Run for a negative duration or a
// non-positive window.
var ErrInvalidConfig = errors.New("invalid run config")

// Workload is one repeatable unit of CPU work.
type Workload interface {
	Name() string
	// Unit labels the throughput figures, e.g. "GFLOP/s".
	Unit() string
	// OpsPerStep is the amount of work one Step counts for in Unit.
	OpsPerStep() float64
	Step()
	Metadata() []Field
}

// RunConfig holds parameters for a single benchmark run.
type RunConfig struct {
	Duration time.Duration
	Window   time.Duration
}

// Runner drives a Workload and samples its throughput.
type Runner struct {
	Name     string
	Workload Workload
	Logger   *slog.Logger

	now func() time.Time
}

// NewRunner creates a Runner for w.
func NewRunner(w Workload, logger *slog.Logger) *Runner {
	return &Runner{
		Name:     w.Name(),
		Workload: w,
		Logger:   logger.With(slog.String("workload", w.Name())),
		now:      time.Now,
	}
}

// Run invokes the workload repeatedly until cfg.Duration has elapsed.
// Execution is split into windows of cfg.Window; each window with a
// positive measured length contributes one throughput sample. Both
// deadlines are checked before every step, so a step is never
// interrupted and the run never starts one past its budget.
func (r *Runner) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	if cfg.Window <= 0 {
		return nil, fmt.Errorf("window %s: %w", cfg.Window, ErrInvalidConfig)
	}

	if cfg.Duration < 0 {
		return nil, fmt.Errorf("duration %s: %w", cfg.Duration, ErrInvalidConfig)
	}

	r.Logger.InfoContext(ctx, "starting benchmark",
		slog.Duration("duration", cfg.Duration),
		slog.Duration("window", cfg.Window),
	)

	var (
		series Series
		iters  uint64
	)

	ops := r.Workload.OpsPerStep()
	start := r.now()

	for r.now().Sub(start) < cfg.Duration {
		winStart := r.now()

		var winIters uint64

		for {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("benchmark %s: %w", r.Name, err)
			}

			t := r.now()
			if t.Sub(winStart) >= cfg.Window || t.Sub(start) >= cfg.Duration {
				break
			}

			r.Workload.Step()
			winIters++
			iters++
		}

		winElapsed := r.now().Sub(winStart)
		if winElapsed <= 0 {
			continue
		}

		sample := float64(winIters) * ops / winElapsed.Seconds()
		series.Add(sample)

		r.Logger.DebugContext(ctx, "window sampled",
			slog.Uint64("iterations", winIters),
			slog.Duration("elapsed", winElapsed),
			slog.Float64("throughput", sample),
		)
	}

	elapsed := r.now().Sub(start)

	var overall float64
	if iters > 0 && elapsed > 0 {
		overall = float64(iters) * ops / elapsed.Seconds()
	}

	minV, avg, maxV := series.Stats()

	result := &Result{
		Workload:   r.Name,
		Unit:       r.Workload.Unit(),
		Iterations: iters,
		Elapsed:    elapsed,
		Avg:        avg,
		Min:        minV,
		Max:        maxV,
		Overall:    overall,
		StdDev:     series.StdDev(),
		Samples:    series.Values(),
		Metadata:   r.Workload.Metadata(),
	}

	r.Logger.InfoContext(ctx, "benchmark finished",
		slog.Uint64("iterations", iters),
		slog.Duration("elapsed", elapsed),
		slog.Int("samples", series.Len()),
	)

	return result, nil
}
