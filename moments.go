package weightedstats

import "gonum.org/v1/gonum/floats"

// WeightedMean computes the mean of x with each value scaled by its
// observation's normalized weight.
func WeightedMean(x, weights []float64) (float64, error) {
	w, err := normalizeWeights(weights, len(x))
	if err != nil {
		return 0, err
	}
	return floats.Dot(w, x), nil
}

// WeightedVariance computes the variance of x with each squared deviation
// scaled by its observation's normalized weight instead of 1/n.
func WeightedVariance(x, weights []float64) (float64, error) {
	w, err := normalizeWeights(weights, len(x))
	if err != nil {
		return 0, err
	}
	_, variance, _ := centeredMoments(x, x, w)
	return variance, nil
}

// centeredMoments returns the weighted covariance of x and y and the
// weighted variance of each, all taken about the weighted means. Weights
// must already be normalized and match the input lengths.
func centeredMoments(x, y, w []float64) (cov, varX, varY float64) {
	meanX := floats.Dot(w, x)
	meanY := floats.Dot(w, y)

	for i := range w {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += w[i] * dx * dy
		varX += w[i] * dx * dx
		varY += w[i] * dy * dy
	}
	return cov, varX, varY
}
