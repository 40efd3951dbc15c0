package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is an interactive lattice the viewer can display and step.
type Sim interface {
	Name() string
	Size() Size
	// Reset rebuilds the state deterministically from seed.
	Reset(seed int64)
	Step()
	// Cells returns one palette index per site, row-major.
	Cells() []uint8
}

// Factory constructs a Sim from optional key/value settings.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under name. Empty names and nil
// factories are ignored.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists the registered simulations in alphabetical order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
