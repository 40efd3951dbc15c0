package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"percolate/internal/logging"
	"percolate/internal/model"
)

// ErrInvalidBracket is returned when the threshold search cannot start.
var ErrInvalidBracket = errors.New("sweep: invalid threshold bracket")

// ThresholdConfig controls EstimateThreshold.
type ThresholdConfig struct {
	Size    int
	Trials  int
	Workers int
	Seed    uint64
	// Lo and Hi bracket the threshold. Zero values select [0, 1].
	Lo, Hi float64
	// Tolerance stops the search once Hi-Lo falls below it. Zero selects 1e-3.
	Tolerance float64
	// MaxIterations bounds the number of runs. Zero selects 64.
	MaxIterations int
	Logger        *slog.Logger
}

// Threshold is the outcome of a bisection.
type Threshold struct {
	// P is the midpoint of the final bracket.
	P      float64
	Lo, Hi float64
	// Evaluations lists every run in the order performed.
	Evaluations []model.Result
}

// EstimateThreshold bisects the occupation probability at which half of the
// trials span. Every evaluation reuses the same seed, so each trial sees the
// same uniform draws at every p and spanning is monotone in p.
func EstimateThreshold(ctx context.Context, cfg ThresholdConfig) (Threshold, error) {
	lo, hi := cfg.Lo, cfg.Hi
	if lo == 0 && hi == 0 {
		hi = 1
	}
	if lo < 0 || hi > 1 || lo >= hi {
		return Threshold{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidBracket, lo, hi)
	}
	tol := cfg.Tolerance
	if tol <= 0 {
		tol = 1e-3
	}
	maxIter := cfg.MaxIterations
	if maxIter <= 0 {
		maxIter = 64
	}
	logger := logging.Component(cfg.Logger, "threshold")

	out := Threshold{Lo: lo, Hi: hi}
	for iter := 0; iter < maxIter && out.Hi-out.Lo > tol; iter++ {
		mid := (out.Lo + out.Hi) / 2
		res, err := model.Run(ctx, model.Params{
			P:       mid,
			Trials:  cfg.Trials,
			Size:    cfg.Size,
			Workers: cfg.Workers,
			Seed:    cfg.Seed,
		})
		if err != nil {
			return out, fmt.Errorf("evaluate p=%.4f: %w", mid, err)
		}
		out.Evaluations = append(out.Evaluations, res)
		if res.SpanningProbability < 0.5 {
			out.Lo = mid
		} else {
			out.Hi = mid
		}
		logger.Debug("bisection step",
			slog.Int("iteration", iter+1),
			slog.Float64("p", mid),
			slog.Float64("spanning", res.SpanningProbability),
			slog.Float64("lo", out.Lo),
			slog.Float64("hi", out.Hi),
		)
	}
	out.P = (out.Lo + out.Hi) / 2
	return out, nil
}
