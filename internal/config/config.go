// Package config loads command configuration from the environment and
// command-line flags, and parses sweep parameter files.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrMissingParamFile is returned when no parameter file was named.
var ErrMissingParamFile = errors.New("config: parameter file is required")

// Config holds the percolate command configuration. Environment variables
// provide defaults which flags override.
type Config struct {
	ParamFile     string `env:"PERCOLATE_PARAM_FILE"`
	OutputDir     string `env:"PERCOLATE_OUTPUT_DIR"          envDefault:"data"`
	DBPath        string `env:"PERCOLATE_DB_PATH"`
	Workers       int    `env:"PERCOLATE_WORKERS"`
	Seed          uint64 `env:"PERCOLATE_SEED"`
	LogLevel      string `env:"PERCOLATE_LOG_LEVEL"           envDefault:"info"`
	Distributions bool   `env:"PERCOLATE_WRITE_DISTRIBUTIONS" envDefault:"true"`

	// Timeout bounds the whole sweep. Zero means no limit.
	Timeout time.Duration `env:"PERCOLATE_TIMEOUT"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseConfig parses the environment then flags into a Config. A single
// positional argument names the parameter file.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.ParamFile, "params", cfg.ParamFile, "path to the sweep parameter file (L T p0 pk dp)")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "directory receiving result files")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "optional SQLite database recording every run")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "worker goroutines per run (0 = number of CPUs)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = random)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.BoolVar(&cfg.Distributions, "dist", cfg.Distributions, "write a cluster-size distribution file per probability")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "abort the sweep after this long (0 = no limit)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.ParamFile = fs.Arg(0)
	default:
		return Config{}, fmt.Errorf("expected at most one parameter file, got %d arguments", fs.NArg())
	}
	if cfg.ParamFile == "" {
		return Config{}, ErrMissingParamFile
	}
	if cfg.Timeout < 0 {
		return Config{}, fmt.Errorf("timeout must not be negative, got %v", cfg.Timeout)
	}
	if cfg.Workers < 0 {
		return Config{}, fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	return cfg, nil
}
