package weightedstats

import (
	"fmt"
	"math"
)

// WeightedPearson computes the Pearson correlation coefficient of x and y
// with each observation's contribution scaled by its normalized weight.
// Returns a value in [-1, 1], where 1 means perfect positive linear
// correlation.
//
// If either variable has zero weighted variance (a constant sequence), the
// correlation is mathematically undefined and NaN is returned with a nil
// error.
func WeightedPearson(x, y, weights []float64) (float64, error) {
	if len(y) != len(x) {
		return 0, fmt.Errorf("%w: len(x) = %d, len(y) = %d", ErrLengthMismatch, len(x), len(y))
	}
	w, err := normalizeWeights(weights, len(x))
	if err != nil {
		return 0, err
	}

	cov, varX, varY := centeredMoments(x, y, w)

	denominator := math.Sqrt(varX * varY)
	if denominator == 0 {
		return math.NaN(), nil
	}
	return cov / denominator, nil
}
