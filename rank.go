package weightedstats

import "sort"

// weightedRank assigns each element of x a rank on the cumulative weight
// mass scale, generalizing the classical average-rank rule for ties to
// weighted observations. A lone value ranks at the weight mass strictly
// below it plus half its own weight; every member of a tie group receives
// the average of the group's midpoint-of-mass ranks. Ranks lie in [0, Σw].
//
// Weights must already be normalized; under uniform 1/n weights this
// reduces to classical average ranks scaled to [0, 1].
func weightedRank(x, w []float64) []float64 {
	n := len(x)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return x[order[a]] < x[order[b]] })

	// prefix[k] holds the weight mass strictly below sorted position k,
	// so each member's midpoint rank is an O(1) lookup.
	prefix := make([]float64, n+1)
	for k, idx := range order {
		prefix[k+1] = prefix[k] + w[idx]
	}

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i + 1
		for j < n && x[order[j]] == x[order[i]] {
			j++
		}

		var sum float64
		for k := i; k < j; k++ {
			sum += prefix[k] + w[order[k]]/2
		}
		rank := sum / float64(j-i)

		for k := i; k < j; k++ {
			ranks[order[k]] = rank
		}
		i = j
	}
	return ranks
}
