package results

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"percolate/internal/model"
)

func TestTextSink_WritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	sink, err := NewTextSink(dir, true)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}
	ctx := context.Background()

	first := sampleResult(0.4)
	second := sampleResult(0.5927)
	second.Spanning, second.SpanningProbability, second.AverageMaxCluster = 2, 1, 4

	for _, res := range []model.Result{first, second} {
		if err := sink.Record(ctx, res); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	dist, err := os.ReadFile(filepath.Join(dir, "Dist_p0.400L3T2.txt"))
	if err != nil {
		t.Fatalf("read distribution: %v", err)
	}
	if got, want := string(dist), "1\t3\n2\t1\n4\t1\n"; got != want {
		t.Fatalf("distribution got %q, expected %q", got, want)
	}
	if _, err := os.Stat(filepath.Join(dir, "Dist_p0.593L3T2.txt")); err != nil {
		t.Fatalf("second distribution missing: %v", err)
	}

	ave, err := os.ReadFile(filepath.Join(dir, "Ave_L3T2.txt"))
	if err != nil {
		t.Fatalf("read averages: %v", err)
	}
	if got, want := string(ave), "0.400\t0.5\t3.0\n0.593\t1.0\t4.0\n"; got != want {
		t.Fatalf("averages got %q, expected %q", got, want)
	}
}

func TestTextSink_WithoutDistributions(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewTextSink(dir, false)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}
	if err := sink.Record(context.Background(), sampleResult(0.3)); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := os.Stat(sink.DistributionPath(sampleResult(0.3))); !os.IsNotExist(err) {
		t.Fatalf("distribution file should not exist, stat err %v", err)
	}
	if _, err := os.Stat(sink.AveragePath(sampleResult(0.3))); err != nil {
		t.Fatalf("average file missing: %v", err)
	}
}

func TestFormatFloat(t *testing.T) {
	cases := map[float64]string{0: "0.0", 1: "1.0", 0.25: "0.25", 12.5: "12.5", 1e21: "1e+21"}
	for v, want := range cases {
		if got := formatFloat(v); got != want {
			t.Fatalf("formatFloat(%v) got %q, expected %q", v, got, want)
		}
	}
}

type recordingSink struct {
	records int
	fail    error
	closed  bool
}

func (r *recordingSink) Record(context.Context, model.Result) error {
	r.records++
	return r.fail
}

func (r *recordingSink) Close() error {
	r.closed = true
	return r.fail
}

func TestMulti(t *testing.T) {
	boom := errors.New("boom")
	a, b, c := &recordingSink{}, &recordingSink{fail: boom}, &recordingSink{}
	m := Multi{a, b, c}

	if err := m.Record(context.Background(), model.Result{}); !errors.Is(err, boom) {
		t.Fatalf("record got %v, expected boom", err)
	}
	if a.records != 1 || b.records != 1 || c.records != 0 {
		t.Fatalf("unexpected fan-out: %d %d %d", a.records, b.records, c.records)
	}
	if err := m.Close(); !errors.Is(err, boom) {
		t.Fatalf("close got %v, expected boom", err)
	}
	if !a.closed || !b.closed || !c.closed {
		t.Fatal("every sink must be closed")
	}
}
