// ABOUTME: Strength-of-schedule tie-breaker computation
// ABOUTME: Only games consistent with the current order contribute to either side

package ranking

import "math"

// ComputeSOS derives a normalized strength-of-schedule value per
// competitor from order and games, considering only games that are
// consistent with order (winner ranked ahead of loser). Inconsistent
// games are excluded here even though they drive the primary loss — SOS
// is strictly a tie-breaker among otherwise-equivalent orderings.
func ComputeSOS(order Order, idx Index, games []Game, params Parameters) map[string]float64 {
	n := len(order)

	// Every competitor gets a zero entry up front, matching the source's
	// dict comprehension over all competitors: a competitor with no
	// consistent wins/losses contributes a real 0.0 to the max, it is not
	// simply absent from it.
	qWin := make(map[string]float64, n)
	qLoss := make(map[string]float64, n)
	for _, c := range order {
		qWin[c] = 0
		qLoss[c] = 0
	}

	for _, g := range games {
		rw, rl := idx[g.Winner]+1, idx[g.Loser]+1
		if rw < rl {
			qWin[g.Winner] += math.Pow(float64(n-rl+1), params.K)
			qLoss[g.Loser] += math.Pow(float64(rw), params.K)
		}
	}

	qMaxWin := maxOrDefault(qWin, 1.0)
	qMaxLoss := maxOrDefault(qLoss, 1.0)

	sosNorm := make(map[string]float64, n)
	for _, c := range order {
		sosNorm[c] = params.Lambda*qWin[c]/(qMaxWin+params.Epsilon) -
			(1-params.Lambda)*qLoss[c]/(qMaxLoss+params.Epsilon)
	}
	return sosNorm
}

// maxOrDefault returns the maximum value in m, or def if m is empty.
func maxOrDefault(m map[string]float64, def float64) float64 {
	if len(m) == 0 {
		return def
	}
	first := true
	var max float64
	for _, v := range m {
		if first || v > max {
			max = v
			first = false
		}
	}
	return max
}
