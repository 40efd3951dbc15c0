package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrInvalidParamFile is returned for parameter files that cannot describe a
// sweep.
var ErrInvalidParamFile = errors.New("config: invalid parameter file")

// Sweep describes a probability sweep: Trials lattices of side Size for
// every p in [P0, PK) with step DP.
type Sweep struct {
	Size   int
	Trials int
	P0     float64
	PK     float64
	DP     float64
}

// Count returns the number of probabilities in the sweep.
func (s Sweep) Count() int {
	if s.DP <= 0 || s.PK <= s.P0 {
		return 0
	}
	n := math.Ceil((s.PK - s.P0) / s.DP)
	// Guard against 0.3/0.1 style rounding producing an extra point.
	if s.P0+(n-1)*s.DP >= s.PK-1e-12*math.Max(1, math.Abs(s.PK)) {
		n--
	}
	return int(n)
}

// Probabilities lists P0, P0+DP, ... up to but excluding PK.
func (s Sweep) Probabilities() []float64 {
	n := s.Count()
	ps := make([]float64, n)
	for i := range ps {
		ps[i] = s.P0 + float64(i)*s.DP
	}
	return ps
}

// Validate checks the sweep describes at least one valid run.
func (s Sweep) Validate() error {
	switch {
	case s.Size <= 0:
		return fmt.Errorf("%w: lattice size %d must be positive", ErrInvalidParamFile, s.Size)
	case s.Trials <= 0:
		return fmt.Errorf("%w: trial count %d must be positive", ErrInvalidParamFile, s.Trials)
	case s.DP <= 0:
		return fmt.Errorf("%w: step %v must be positive", ErrInvalidParamFile, s.DP)
	case s.P0 < 0 || s.P0 >= s.PK:
		return fmt.Errorf("%w: probability range [%v, %v) invalid", ErrInvalidParamFile, s.P0, s.PK)
	}
	for _, p := range s.Probabilities() {
		if p > 1 {
			return fmt.Errorf("%w: probability %v above 1", ErrInvalidParamFile, p)
		}
	}
	return nil
}

// LoadSweep reads a parameter file from disk.
func LoadSweep(path string) (Sweep, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sweep{}, fmt.Errorf("open parameter file: %w", err)
	}
	defer f.Close()
	s, err := ParseSweep(f)
	if err != nil {
		return Sweep{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseSweep reads the five whitespace-separated values L T p0 pk dp. Text
// after '#' on a line is ignored and values may span several lines.
func ParseSweep(r io.Reader) (Sweep, error) {
	var fields []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields = append(fields, strings.Fields(line)...)
	}
	if err := sc.Err(); err != nil {
		return Sweep{}, fmt.Errorf("read parameter file: %w", err)
	}
	if len(fields) != 5 {
		return Sweep{}, fmt.Errorf("%w: expected 5 values (L T p0 pk dp), got %d", ErrInvalidParamFile, len(fields))
	}

	var vals [5]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Sweep{}, fmt.Errorf("%w: value %q is not a number", ErrInvalidParamFile, f)
		}
		vals[i] = v
	}
	for i, name := range []string{"L", "T"} {
		if vals[i] != math.Trunc(vals[i]) {
			return Sweep{}, fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidParamFile, name, vals[i])
		}
	}

	s := Sweep{
		Size:   int(vals[0]),
		Trials: int(vals[1]),
		P0:     vals[2],
		PK:     vals[3],
		DP:     vals[4],
	}
	if err := s.Validate(); err != nil {
		return Sweep{}, err
	}
	return s, nil
}
