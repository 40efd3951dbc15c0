// Package cluster labels the clusters of an occupancy lattice with the
// Hoshen-Kopelman algorithm.
//
// A single raster pass (row-major) gives every occupied site a provisional
// label taken from its left and upper neighbours. When those neighbours carry
// different labels the two clusters are merged in a union-find forest: the
// numerically smaller label survives as root and absorbs the mass of the
// other one. A second pass rewrites every site with the root of its label.
//
// Labels are allocated densely from FirstLabel upward, so the forest is an
// arena of nodes indexed by label instead of a map. Labels 0 and 1 are
// reserved: 0 marks an empty site (and "no neighbour"), 1 marks an occupied
// site that has not been labelled yet.
//
// Complexity: O(L²·α) time, O(L²) memory for an L×L lattice.
package cluster
