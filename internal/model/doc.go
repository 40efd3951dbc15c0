// Package model runs the Monte Carlo estimate for one occupation
// probability: it draws many independent lattices, analyses them across a
// bounded pool of workers, and reduces the per-trial results into the
// spanning probability, the average largest cluster and the full
// cluster-size matrix.
//
// Every trial draws its lattice from its own PCG stream (seed, trial index),
// so a run is reproducible for a given seed regardless of how many workers
// execute it or in which order trials finish. Results are collected by trial
// index and reduced only after all of them are in; a failing trial aborts
// the whole run rather than shrinking the sample.
package model
