package results

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"percolate/internal/model"
)

// TextSink writes plain-text result files into Dir:
//
//	Dist_p{p}L{L}T{T}.txt   one "size<TAB>count" line per distinct cluster size
//	Ave_L{L}T{T}.txt        one "p<TAB>spanning probability<TAB>average max cluster" line per run
//
// p is printed with three decimals. Ave files are appended to, so repeated
// sweeps accumulate.
type TextSink struct {
	Dir string
	// Distributions enables the per-run Dist files.
	Distributions bool
}

// NewTextSink creates dir if needed.
func NewTextSink(dir string, distributions bool) (*TextSink, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &TextSink{Dir: dir, Distributions: distributions}, nil
}

// DistributionPath returns the Dist file of res.
func (s *TextSink) DistributionPath(res model.Result) string {
	p := res.Params
	return filepath.Join(s.Dir, fmt.Sprintf("Dist_p%.3fL%dT%d.txt", p.P, p.Size, p.Trials))
}

// AveragePath returns the Ave file shared by every run of the same L and T.
func (s *TextSink) AveragePath(res model.Result) string {
	p := res.Params
	return filepath.Join(s.Dir, fmt.Sprintf("Ave_L%dT%d.txt", p.Size, p.Trials))
}

// Record writes the distribution file of res and appends its summary line.
func (s *TextSink) Record(ctx context.Context, res model.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Distributions {
		if err := s.writeDistribution(res); err != nil {
			return err
		}
	}
	return s.appendAverage(res)
}

// Close is a no-op; every Record closes its files.
func (s *TextSink) Close() error { return nil }

func (s *TextSink) writeDistribution(res model.Result) error {
	path := s.DistributionPath(res)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create distribution file: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, bin := range res.Distribution() {
		fmt.Fprintf(w, "%d\t%d\n", bin.Size, bin.Count)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func (s *TextSink) appendAverage(res model.Result) error {
	path := s.AveragePath(res)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open average file: %w", err)
	}
	line := fmt.Sprintf("%.3f\t%s\t%s\n",
		res.Params.P, formatFloat(res.SpanningProbability), formatFloat(res.AverageMaxCluster))
	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// formatFloat prints the shortest representation of v, keeping a decimal
// point on integral values (1.0, not 1).
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEn") {
		s += ".0"
	}
	return s
}
