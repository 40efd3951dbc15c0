// Package threshold implements the threshold command: a bisection estimate
// of the site percolation threshold for one lattice size.
package threshold

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"percolate/internal/core"
	"percolate/internal/logging"
	"percolate/internal/sweep"
)

// Config holds threshold command configuration.
type Config struct {
	Size      int     `env:"PERCOLATE_SIZE"      envDefault:"64"`
	Trials    int     `env:"PERCOLATE_TRIALS"    envDefault:"200"`
	Lo        float64 `env:"PERCOLATE_P_LO"      envDefault:"0.4"`
	Hi        float64 `env:"PERCOLATE_P_HI"      envDefault:"0.8"`
	Tolerance float64 `env:"PERCOLATE_TOLERANCE" envDefault:"0.001"`
	Workers   int     `env:"PERCOLATE_WORKERS"`
	Seed      uint64  `env:"PERCOLATE_SEED"`
	LogLevel  string  `env:"PERCOLATE_LOG_LEVEL" envDefault:"info"`
}

// ParseConfig parses the environment then flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.Size, "size", cfg.Size, "lattice side L")
	fs.IntVar(&cfg.Trials, "trials", cfg.Trials, "trials per evaluated probability")
	fs.Float64Var(&cfg.Lo, "lo", cfg.Lo, "lower end of the bracket")
	fs.Float64Var(&cfg.Hi, "hi", cfg.Hi, "upper end of the bracket")
	fs.Float64Var(&cfg.Tolerance, "tol", cfg.Tolerance, "stop once the bracket is narrower than this")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "worker goroutines (0 = number of CPUs)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = random)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run bisects the threshold and prints the evaluations and the estimate to
// out.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(errOut, level)

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = core.NewSeed(); err != nil {
			return err
		}
	}
	logger.Info("estimating threshold",
		slog.Int("L", cfg.Size),
		slog.Int("T", cfg.Trials),
		slog.Float64("lo", cfg.Lo),
		slog.Float64("hi", cfg.Hi),
		slog.Uint64("seed", seed),
	)

	th, err := sweep.EstimateThreshold(ctx, sweep.ThresholdConfig{
		Size:      cfg.Size,
		Trials:    cfg.Trials,
		Workers:   cfg.Workers,
		Seed:      seed,
		Lo:        cfg.Lo,
		Hi:        cfg.Hi,
		Tolerance: cfg.Tolerance,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Evaluations (L=%d, T=%d):\n", cfg.Size, cfg.Trials)
	for i, ev := range th.Evaluations {
		fmt.Fprintf(out, "  %2d: p=%.5f spanning=%.3f avg max=%.1f\n",
			i+1, ev.Params.P, ev.SpanningProbability, ev.AverageMaxCluster)
	}
	fmt.Fprintf(out, "\nThreshold estimate: p_c = %.5f (bracket [%.5f, %.5f])\n", th.P, th.Lo, th.Hi)
	return nil
}
