package weightedstats

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// normalizeWeights validates weights against the expected observation count
// and returns a fresh slice scaled to sum to 1. The caller's slice is never
// touched.
func normalizeWeights(weights []float64, n int) ([]float64, error) {
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if len(weights) != n {
		return nil, fmt.Errorf("%w: %d weights for %d observations", ErrLengthMismatch, len(weights), n)
	}
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: weights[%d] = %g", ErrNegativeWeight, i, w)
		}
	}

	sum := floats.Sum(weights)
	if sum <= 0 {
		return nil, ErrZeroWeightSum
	}

	normalized := make([]float64, n)
	for i, w := range weights {
		normalized[i] = w / sum
	}
	return normalized, nil
}

// uniformWeights returns n weights of 1/n each.
func uniformWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1 / float64(n)
	}
	return w
}

// EffectiveSampleSize reports how many equally-weighted observations the
// weighted sample is statistically equivalent to: 1/Σw² over normalized
// weights. It equals len(weights) under uniform weights and 1 when all mass
// sits on a single observation.
func EffectiveSampleSize(weights []float64) (float64, error) {
	normalized, err := normalizeWeights(weights, len(weights))
	if err != nil {
		return 0, err
	}
	return 1 / floats.Dot(normalized, normalized), nil
}
