package model

import (
	"sort"
	"time"

	"percolate/internal/lattice"
)

// Result aggregates every trial of a run.
type Result struct {
	Params Params

	// Spanning counts the trials with a spanning cluster.
	Spanning int
	// SpanningProbability is Spanning / Trials.
	SpanningProbability float64
	// AverageMaxCluster is the mean over trials of the largest cluster size.
	AverageMaxCluster float64
	// ClusterSizes holds one row per trial, cluster sizes left-aligned and
	// padded with 0 up to the widest trial.
	ClusterSizes [][]int

	Elapsed time.Duration
}

// SizeCount is one bin of the cluster-size distribution.
type SizeCount struct {
	Size  int
	Count int
}

// Reduce folds per-trial results into an aggregate. Rows keep the order of
// trials.
func Reduce(trials []lattice.Trial) Result {
	if len(trials) == 0 {
		return Result{}
	}

	width := 0
	for _, t := range trials {
		if len(t.Sizes) > width {
			width = len(t.Sizes)
		}
	}

	res := Result{ClusterSizes: make([][]int, len(trials))}
	backing := make([]int, len(trials)*width)
	var maxSum int
	for i, t := range trials {
		row := backing[i*width : (i+1)*width : (i+1)*width]
		copy(row, t.Sizes)
		res.ClusterSizes[i] = row
		if t.Spans {
			res.Spanning++
		}
		maxSum += t.Largest()
	}
	n := float64(len(trials))
	res.SpanningProbability = float64(res.Spanning) / n
	res.AverageMaxCluster = float64(maxSum) / n
	return res
}

// Trials returns the number of rows of the cluster-size matrix.
func (r Result) Trials() int { return len(r.ClusterSizes) }

// MaxClusters returns the width of the cluster-size matrix.
func (r Result) MaxClusters() int {
	if len(r.ClusterSizes) == 0 {
		return 0
	}
	return len(r.ClusterSizes[0])
}

// Distribution counts how often each non-zero cluster size occurs across all
// trials, sorted by size.
func (r Result) Distribution() []SizeCount {
	counts := map[int]int{}
	for _, row := range r.ClusterSizes {
		for _, s := range row {
			if s != 0 {
				counts[s]++
			}
		}
	}
	dist := make([]SizeCount, 0, len(counts))
	for size, count := range counts {
		dist = append(dist, SizeCount{Size: size, Count: count})
	}
	sort.Slice(dist, func(i, j int) bool { return dist[i].Size < dist[j].Size })
	return dist
}
