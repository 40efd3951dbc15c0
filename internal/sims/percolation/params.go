package percolation

import (
	"math"
	"strconv"

	"percolate/internal/core"
)

// Parameters returns the lattice tunables and the live fire and cluster
// statistics.
func (s *Percolation) Parameters() core.ParameterSnapshot {
	st := s.Stats()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				{Key: "p", Label: "Occupation p", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.cfg.P, 'f', 4, 64)},
				{Key: "size", Label: "Side L", Type: core.ParamTypeInt, Value: strconv.Itoa(s.cfg.Size)},
				{Key: "sweeps", Label: "Steps per tick", Type: core.ParamTypeInt, Value: strconv.Itoa(s.cfg.Sweeps)},
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(s.seed, 10)},
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				{Key: "time", Label: "Time", Type: core.ParamTypeInt, Value: strconv.Itoa(int(st.Time))},
				{Key: "burning", Label: "Burning", Type: core.ParamTypeBool, Value: strconv.FormatBool(st.Burning)},
				{Key: "spans", Label: "Spans", Type: core.ParamTypeBool, Value: strconv.FormatBool(st.Spans)},
				{Key: "steps", Label: "Shortest path", Type: core.ParamTypeInt, Value: strconv.Itoa(st.Steps)},
			},
		},
		{
			Name: "Clusters",
			Params: []core.Parameter{
				{Key: "occupied", Label: "Occupied", Type: core.ParamTypeInt, Value: strconv.Itoa(st.Occupied)},
				{Key: "clusters", Label: "Clusters", Type: core.ParamTypeInt, Value: strconv.Itoa(st.Clusters)},
				{Key: "largest", Label: "Largest", Type: core.ParamTypeInt, Value: strconv.Itoa(st.Largest)},
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *Percolation) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "p", Label: "Occupation p", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "size", Label: "Side L", Type: core.ParamTypeInt, Step: 16, Min: minSize, Max: maxSize, HasMin: true, HasMax: true},
		{Key: "sweeps", Label: "Steps per tick", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 64, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates p and redraws the lattice with the current seed.
func (s *Percolation) SetFloatParameter(key string, value float64) bool {
	if key != "p" || math.IsNaN(value) || value < 0 || value > 1 {
		return false
	}
	s.cfg.P = value
	s.Reset(s.seed)
	return true
}

// SetIntParameter updates the lattice side or the fire speed. Changing the
// side redraws the lattice.
func (s *Percolation) SetIntParameter(key string, value int) bool {
	switch key {
	case "size":
		if value < minSize || value > maxSize {
			return false
		}
		s.cfg.Size = value
		s.Reset(s.seed)
		return true
	case "sweeps":
		if value < 1 {
			return false
		}
		s.cfg.Sweeps = value
		return true
	}
	return false
}

var (
	_ core.Sim                       = (*Percolation)(nil)
	_ core.ParameterControlsProvider = (*Percolation)(nil)
	_ core.FloatParameterSetter      = (*Percolation)(nil)
	_ core.IntParameterSetter        = (*Percolation)(nil)
)
