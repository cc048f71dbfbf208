// Package weightedstats computes weighted variants of Pearson's linear
// correlation and Spearman's rank correlation over paired observations that
// carry non-negative importance weights.
//
// Weights are renormalized on every call, so only their relative magnitudes
// matter. Caller slices are never mutated. All functions are pure and safe
// for concurrent use.
package weightedstats
