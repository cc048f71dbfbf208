package weightedstats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// SpearmanResult holds a Spearman rank correlation and its two-sided
// significance.
type SpearmanResult struct {
	// Correlation is the rank correlation coefficient in [-1, 1].
	Correlation float64

	// PValue is the two-sided significance of the correlation. For weighted
	// input it is a Fisher z-transform normal approximation (exact
	// significance for weighted rank correlation has no closed form) and
	// is NaN when EffectiveN < 3, where the approximation breaks down.
	PValue float64

	// EffectiveN is the effective sample size 1/Σw² over normalized
	// weights: the number of equally-weighted observations the sample is
	// statistically equivalent to. It equals the observation count for
	// unweighted input.
	EffectiveN float64
}

// WeightedSpearman computes Spearman's rank correlation over weighted
// observations. Both variables are ranked on the cumulative weight mass
// scale with tie groups sharing an averaged rank, and the correlation is
// the weighted Pearson correlation of the two rank vectors.
//
// A nil weights slice selects the unweighted computation: classical average
// ranks and the exact t-test for significance. With weights present the
// p-value is the Fisher z approximation described on SpearmanResult; a
// correlation of exactly ±1 saturates the z statistic to 0, so its reported
// p-value is 1.
//
// If all observations are tied in either variable, the correlation is
// defined as 0.
func WeightedSpearman(x, y, weights []float64) (SpearmanResult, error) {
	if len(y) != len(x) {
		return SpearmanResult{}, fmt.Errorf("%w: len(x) = %d, len(y) = %d", ErrLengthMismatch, len(x), len(y))
	}
	if weights == nil {
		return unweightedSpearman(x, y)
	}

	w, err := normalizeWeights(weights, len(x))
	if err != nil {
		return SpearmanResult{}, err
	}

	result := SpearmanResult{
		Correlation: rankCorrelation(x, y, w),
		EffectiveN:  1 / floats.Dot(w, w),
		PValue:      math.NaN(),
	}
	if result.EffectiveN >= 3 {
		z := fisherZ(result.Correlation)
		result.PValue = 2 * stdNormal.Survival(math.Abs(z)*math.Sqrt(result.EffectiveN-3))
	}
	return result, nil
}

// rankCorrelation is the weighted Pearson correlation of the two weighted
// rank vectors, defined as 0 when either rank vector is constant.
func rankCorrelation(x, y, w []float64) float64 {
	xRanks := weightedRank(x, w)
	yRanks := weightedRank(y, w)

	cov, varX, varY := centeredMoments(xRanks, yRanks, w)
	if varX <= 0 || varY <= 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}

// fisherZ maps a correlation in (-1, 1) to the real line. |r| >= 1
// saturates to 0 rather than infinity, keeping the downstream p-value
// finite.
func fisherZ(r float64) float64 {
	if math.Abs(r) >= 1 {
		return 0
	}
	return 0.5 * math.Log((1+r)/(1-r))
}

// unweightedSpearman ranks with uniform weights, which reduces the weighted
// tie rule to classical average ranks, and tests significance with the
// exact t-statistic on n-2 degrees of freedom.
func unweightedSpearman(x, y []float64) (SpearmanResult, error) {
	n := len(x)
	if n == 0 {
		return SpearmanResult{}, ErrEmptyInput
	}

	r := rankCorrelation(x, y, uniformWeights(n))

	result := SpearmanResult{
		Correlation: r,
		EffectiveN:  float64(n),
		PValue:      math.NaN(),
	}
	switch {
	case math.Abs(r) >= 1:
		result.PValue = 0
	case n > 2:
		t := r * math.Sqrt(float64(n-2)/(1-r*r))
		dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
		result.PValue = 2 * dist.Survival(math.Abs(t))
	}
	return result, nil
}
