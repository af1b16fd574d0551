// ABOUTME: Simulated annealing phase of the ranking search
// ABOUTME: Swap moves with exponential cooling, seeded for reproducibility

package ranking

import (
	"math"
	"math/rand/v2"
)

// annealingCheckpoint is how often (in steps) the temperature cools, per
// spec section 4.4.
const annealingCheckpoint = 1000

// Anneal runs simulated annealing over swap-moves starting from order. It
// is equivalent to AnnealWithProgress with a nil progress callback.
func Anneal(order Order, games []Game, params Parameters, rng *rand.Rand) (Order, float64) {
	return AnnealWithProgress(order, games, params, rng, nil)
}

// AnnealWithProgress runs simulated annealing over swap-moves starting
// from order, which is mutated in place and left in an arbitrary (not
// necessarily best) state when this returns — callers want the returned
// best order, not the input slice. rng is consumed in the fixed sequence:
// for each step, two position draws, then (only when the swap is not an
// unconditional improvement) one acceptance draw.
//
// max_iter is a budget, not a convergence test: every step runs, there is
// no early exit. Temperature cools once immediately (step 0) and every
// annealingCheckpoint steps thereafter, checked before that step's swap is
// evaluated. If report is non-nil, it is called at each such checkpoint
// with the step count and the best loss seen so far — a hook for CLI
// progress output, not part of the search itself.
func AnnealWithProgress(order Order, games []Game, params Parameters, rng *rand.Rand, report func(step int, bestLoss float64)) (Order, float64) {
	n := len(order)
	if n <= 1 {
		return order.Clone(), 0
	}

	idx := BuildIndex(order)

	currentLoss := Loss(order, idx, games, params, true)
	bestOrder := order.Clone()
	bestLoss := currentLoss

	temperature := 1.0

	for step := 0; step < params.AnnealingIter; step++ {
		if step%annealingCheckpoint == 0 {
			temperature *= params.CoolingRate
			if report != nil {
				report(step, bestLoss)
			}
		}

		i := rng.IntN(n)
		j := rng.IntN(n - 1)
		if j >= i {
			j++
		}

		swapPositions(order, idx, i, j)
		newLoss := Loss(order, idx, games, params, true)
		delta := newLoss - currentLoss

		accept := delta < 0
		if !accept {
			exponent := -delta / temperature
			if exponent < -700 {
				exponent = -700 // guard against exp underflow, per spec section 7
			}
			accept = rng.Float64() < math.Exp(exponent)
		}

		if accept {
			currentLoss = newLoss
			if newLoss < bestLoss {
				bestLoss = newLoss
				bestOrder = order.Clone()
			}
		} else {
			swapPositions(order, idx, i, j) // revert
		}
	}

	return bestOrder, bestLoss
}

// swapPositions exchanges the competitors at positions i and j in place
// and keeps idx consistent with the new arrangement. Calling it twice with
// the same (i, j) is its own inverse.
func swapPositions(order Order, idx Index, i, j int) {
	order[i], order[j] = order[j], order[i]
	idx[order[i]] = i
	idx[order[j]] = j
}
