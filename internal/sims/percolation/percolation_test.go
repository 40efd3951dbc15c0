package percolation

import (
	"strconv"
	"testing"

	"percolate/internal/burning"
	"percolate/internal/core"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"size": "64", "p": "0.4", "sweeps": "3"})
	if c.Size != 64 || c.P != 0.4 || c.Sweeps != 3 {
		t.Fatalf("unexpected config %+v", c)
	}
	d := FromMap(map[string]string{"size": "-1", "p": "2", "sweeps": "x"})
	if d != DefaultConfig() {
		t.Fatalf("invalid values must keep defaults, got %+v", d)
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["percolation"]
	if !ok {
		t.Fatalf("percolation sim not registered")
	}
	sim := factory(map[string]string{"size": "16"})
	if sim.Size() != (core.Size{W: 16, H: 16}) {
		t.Fatalf("got size %+v", sim.Size())
	}
}

func TestResetIsDeterministic(t *testing.T) {
	a := New(Config{Size: 32, P: 0.6})
	b := New(Config{Size: 32, P: 0.6})
	a.Reset(42)
	b.Reset(42)
	for i, v := range a.Grid().Cells() {
		if b.Grid().Cells()[i] != v {
			t.Fatalf("lattices differ at %d", i)
		}
	}
}

func TestFireRunsToCompletion(t *testing.T) {
	s := New(Config{Size: 16, P: 1})
	s.Reset(1)
	if s.Done() {
		t.Fatalf("full lattice must start burning")
	}
	for i := 0; i < 100 && !s.Done(); i++ {
		s.Step()
	}
	if !s.Done() {
		t.Fatalf("fire did not burn out")
	}
	st := s.Stats()
	if !st.Spans || st.Steps != 15 {
		t.Fatalf("got spans=%v steps=%d, expected spanning after 15 steps", st.Spans, st.Steps)
	}
	if st.Clusters != 1 || st.Largest != 256 || st.Occupied != 256 {
		t.Fatalf("unexpected cluster stats %+v", st)
	}
	for i, c := range s.Cells() {
		if c != CellSpanning {
			t.Fatalf("cell %d got %d, expected spanning colour", i, c)
		}
	}
}

func TestCellsTrackFire(t *testing.T) {
	s := New(Config{Size: 8, P: 0})
	s.Reset(3)
	for i, c := range s.Cells() {
		if c != CellEmpty {
			t.Fatalf("cell %d got %d on empty lattice", i, c)
		}
	}
	if !s.Done() || s.Stats().Spans {
		t.Fatalf("empty lattice must not burn")
	}

	s = New(Config{Size: 8, P: 1})
	s.Reset(3)
	for x := 0; x < 8; x++ {
		if s.Cells()[x] != CellFront {
			t.Fatalf("top row cell %d got %d, expected front", x, s.Cells()[x])
		}
	}
	if s.Cells()[8] != CellOccupied {
		t.Fatalf("second row must be unburned before the first step")
	}
	s.Step()
	if s.Cells()[0] != CellBurnt || s.Cells()[8] != CellFront {
		t.Fatalf("after one step got top=%d second=%d", s.Cells()[0], s.Cells()[8])
	}
}

func TestClusterLabelsMatchLattice(t *testing.T) {
	s := New(Config{Size: 24, P: 0.5})
	s.Reset(9)
	labels := s.ClusterLabels()
	for i, c := range s.Grid().Cells() {
		if (c == 0) != (labels[i] == 0) {
			t.Fatalf("site %d occupancy %d but label %d", i, c, labels[i])
		}
	}
}

func TestSetParameters(t *testing.T) {
	s := New(DefaultConfig())
	s.Reset(5)

	if !s.SetFloatParameter("p", 0) {
		t.Fatalf("p=0 should be accepted")
	}
	if s.Grid().Occupied() != 0 {
		t.Fatalf("lattice not redrawn after p change")
	}
	if s.SetFloatParameter("p", 1.5) || s.SetFloatParameter("q", 0.5) {
		t.Fatalf("invalid float parameter accepted")
	}

	if !s.SetIntParameter("size", 32) {
		t.Fatalf("size change rejected")
	}
	if s.Size().W != 32 || len(s.Cells()) != 32*32 || s.Grid().W != 32 {
		t.Fatalf("size change not applied: %+v", s.Size())
	}
	if s.SetIntParameter("size", 2) || s.SetIntParameter("sweeps", 0) {
		t.Fatalf("invalid int parameter accepted")
	}
	if !s.SetIntParameter("sweeps", 4) || s.Config().Sweeps != 4 {
		t.Fatalf("sweeps change rejected")
	}
}

func TestParametersReportStats(t *testing.T) {
	s := New(Config{Size: 8, P: 1})
	s.Reset(1)
	for !s.Done() {
		s.Step()
	}
	values := map[string]string{}
	for _, g := range s.Parameters().Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	if values["spans"] != "true" || values["steps"] != "7" || values["largest"] != "64" {
		t.Fatalf("unexpected parameter values %v", values)
	}
	if values["time"] != strconv.Itoa(int(burning.Ignition)+7) {
		t.Fatalf("time got %s", values["time"])
	}
}
