package app

import (
	"flag"
	"fmt"
	"strconv"

	"percolate/internal/config"
)

// Config holds viewer settings. Environment variables provide defaults which
// flags override.
type Config struct {
	Sim      string  `env:"PERCVIEW_SIM"       envDefault:"percolation"`
	Size     int     `env:"PERCVIEW_SIZE"      envDefault:"128"`
	P        float64 `env:"PERCVIEW_P"         envDefault:"0.5927"`
	Sweeps   int     `env:"PERCVIEW_SWEEPS"    envDefault:"1"`
	Scale    int     `env:"PERCVIEW_SCALE"     envDefault:"5"`
	TPS      int     `env:"PERCVIEW_TPS"       envDefault:"60"`
	FireTPS  int     `env:"PERCVIEW_FIRE_TPS"  envDefault:"30"`
	HUDWidth int     `env:"PERCVIEW_HUD_WIDTH" envDefault:"240"`
	Seed     int64   `env:"PERCVIEW_SEED"      envDefault:"1"`
}

// NewConfig returns the defaults.
func NewConfig() Config {
	return Config{
		Sim:      "percolation",
		Size:     128,
		P:        0.5927,
		Sweeps:   1,
		Scale:    5,
		TPS:      60,
		FireTPS:  30,
		HUDWidth: 240,
		Seed:     1,
	}
}

// Bind registers the viewer flags on fs, defaulting to the current values.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to display")
	fs.IntVar(&c.Size, "size", c.Size, "lattice side")
	fs.Float64Var(&c.P, "p", c.P, "site occupation probability")
	fs.IntVar(&c.Sweeps, "sweeps", c.Sweeps, "fire time steps per tick")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per site")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.FireTPS, "fire-tps", c.FireTPS, "fire ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel (0 hides it)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "lattice seed")
}

// Load reads the environment then parses args.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	var c Config
	if err := config.ParseEnv(&c); err != nil {
		return Config{}, err
	}
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the viewer cannot display.
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return fmt.Errorf("size must be positive, got %d", c.Size)
	case c.P < 0 || c.P > 1:
		return fmt.Errorf("p must be in [0, 1], got %v", c.P)
	case c.Scale <= 0:
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	case c.HUDWidth < 0:
		return fmt.Errorf("hud width must not be negative, got %d", c.HUDWidth)
	}
	return nil
}

// SimConfig returns the factory settings of the selected simulation.
func (c Config) SimConfig() map[string]string {
	return map[string]string{
		"size":   strconv.Itoa(c.Size),
		"p":      strconv.FormatFloat(c.P, 'g', -1, 64),
		"sweeps": strconv.Itoa(c.Sweeps),
	}
}
