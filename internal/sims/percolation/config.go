package percolation

import "strconv"

// Config holds the parameters of the interactive lattice.
type Config struct {
	// Size is the lattice side.
	Size int
	// P is the site occupation probability.
	P float64
	// Sweeps is the number of fire time steps advanced per Step call.
	Sweeps int
}

// DefaultConfig returns a lattice near the square-lattice site threshold.
func DefaultConfig() Config {
	return Config{Size: 128, P: 0.5927, Sweeps: 1}
}

// FromMap populates a Config from a string map. Unknown keys and invalid
// values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["p"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.P = parsed
		}
	}
	if v, ok := cfg["sweeps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Sweeps = parsed
		}
	}
	return c
}
