// Package percolate implements the percolate command: a probability sweep
// driven by a parameter file.
package percolate

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"percolate/internal/config"
	"percolate/internal/core"
	"percolate/internal/logging"
	"percolate/internal/results"
	"percolate/internal/sweep"
	"percolate/internal/telemetry"
)

// ParseConfig parses the environment then flags into a Config.
var ParseConfig = config.ParseConfig

// Run loads the parameter file named by cfg, sweeps every probability and
// records the results under cfg.OutputDir and, when set, cfg.DBPath.
func Run(ctx context.Context, cfg config.Config, errOut io.Writer) error {
	if errOut == nil {
		errOut = io.Discard
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(errOut, level)

	params, err := config.LoadSweep(cfg.ParamFile)
	if err != nil {
		return err
	}
	logger.Info("loaded parameters",
		slog.String("file", cfg.ParamFile),
		slog.Int("L", params.Size),
		slog.Int("T", params.Trials),
		slog.Float64("p0", params.P0),
		slog.Float64("pk", params.PK),
		slog.Float64("dp", params.DP),
	)

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = core.NewSeed(); err != nil {
			return err
		}
	}

	shutdown, err := telemetry.Setup(ctx, "percolate")
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("flush traces", slog.Any("error", err))
		}
	}()

	sink, err := openSinks(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := sink.Close(); err != nil {
			logger.Warn("close result sinks", slog.Any("error", err))
		}
	}()

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	_, err = sweep.Run(ctx, sweep.Config{
		Size:          params.Size,
		Trials:        params.Trials,
		Probabilities: params.Probabilities(),
		Workers:       cfg.Workers,
		Seed:          seed,
		Logger:        logger,
	}, sink)
	return err
}

func openSinks(ctx context.Context, cfg config.Config) (results.Sink, error) {
	text, err := results.NewTextSink(cfg.OutputDir, cfg.Distributions)
	if err != nil {
		return nil, err
	}
	if cfg.DBPath == "" {
		return text, nil
	}
	store, err := results.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return results.Multi{text, store}, nil
}
