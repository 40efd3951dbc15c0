// Package sweep runs the Monte Carlo model over a range of occupation
// probabilities and estimates the percolation threshold.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"percolate/internal/logging"
	"percolate/internal/model"
	"percolate/internal/results"
	"percolate/internal/telemetry"
)

// ErrNoProbabilities is returned for a sweep with nothing to run.
var ErrNoProbabilities = errors.New("sweep: no probabilities to run")

// Config describes a sweep: Trials lattices of side Size for every entry of
// Probabilities.
type Config struct {
	Size          int
	Trials        int
	Probabilities []float64
	Workers       int
	// Seed is the base seed; every probability gets its own derived seed.
	Seed uint64
	// Logger receives progress records. Nil uses slog.Default.
	Logger *slog.Logger
}

// SeedFor derives the seed of the i-th probability of a sweep.
func SeedFor(base uint64, i int) uint64 {
	z := base ^ (uint64(i+1) * 0x9E3779B97F4A7C15)
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Run executes model.Run for each probability in order and records every
// result to sink before starting the next. The first failure stops the
// sweep; results recorded so far are returned alongside the error.
func Run(ctx context.Context, cfg Config, sink results.Sink) ([]model.Result, error) {
	if len(cfg.Probabilities) == 0 {
		return nil, ErrNoProbabilities
	}
	if sink == nil {
		sink = results.Discard{}
	}
	logger := logging.Component(cfg.Logger, "sweep")

	ctx, span := telemetry.Tracer().Start(ctx, "sweep")
	span.SetAttributes(
		attribute.Int("lattice.size", cfg.Size),
		attribute.Int("sweep.trials", cfg.Trials),
		attribute.Int("sweep.points", len(cfg.Probabilities)),
	)
	defer span.End()

	logger.Info("sweep started",
		slog.Int("L", cfg.Size),
		slog.Int("T", cfg.Trials),
		slog.Int("points", len(cfg.Probabilities)),
		slog.Uint64("seed", cfg.Seed),
	)

	start := time.Now()
	out := make([]model.Result, 0, len(cfg.Probabilities))
	for i, p := range cfg.Probabilities {
		res, err := runPoint(ctx, cfg, i, p, sink)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return out, err
		}
		out = append(out, res)
		logger.Info("probability done",
			slog.String("p", fmt.Sprintf("%.3f", p)),
			slog.Int("point", i+1),
			slog.Int("of", len(cfg.Probabilities)),
			slog.Float64("spanning", res.SpanningProbability),
			slog.Float64("avg_max", res.AverageMaxCluster),
			slog.Duration("elapsed", res.Elapsed),
		)
	}
	logger.Info("sweep finished", slog.Duration("elapsed", time.Since(start)))
	return out, nil
}

func runPoint(ctx context.Context, cfg Config, i int, p float64, sink results.Sink) (model.Result, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "run")
	defer span.End()
	span.SetAttributes(attribute.Float64("percolation.p", p))

	params := model.Params{
		P:       p,
		Trials:  cfg.Trials,
		Size:    cfg.Size,
		Workers: cfg.Workers,
		Seed:    SeedFor(cfg.Seed, i),
	}
	res, err := model.Run(ctx, params)
	if err != nil {
		return model.Result{}, fmt.Errorf("run p=%.3f: %w", p, err)
	}
	span.SetAttributes(
		attribute.Float64("percolation.spanning_probability", res.SpanningProbability),
		attribute.Float64("percolation.average_max_cluster", res.AverageMaxCluster),
	)
	if err := sink.Record(ctx, res); err != nil {
		return model.Result{}, fmt.Errorf("record p=%.3f: %w", p, err)
	}
	return res, nil
}
