package weightedstats

import "errors"

// Common input validation errors
var (
	// ErrEmptyInput indicates an empty observation sequence
	ErrEmptyInput = errors.New("input sequences must not be empty")

	// ErrLengthMismatch indicates input sequences of differing lengths
	ErrLengthMismatch = errors.New("input sequences must have equal length")

	// ErrNegativeWeight indicates a negative observation weight
	ErrNegativeWeight = errors.New("weights must be non-negative")

	// ErrZeroWeightSum indicates the weights sum to zero
	ErrZeroWeightSum = errors.New("weight sum must be positive")
)
