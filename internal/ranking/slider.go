// ABOUTME: Exhaustive sliding local search, the second phase of the ranking search
// ABOUTME: First-improvement moves with a restart, bounded by a window and a pass cap

package ranking

// Slide runs the deterministic local search: each sweep walks the
// permutation in rank order and, for the competitor at each position,
// tries relocating it to every position within window_search_size on
// either side — all "slide up" distances 1..window_search_size first,
// then all "slide down" distances, so ties between an up-candidate and a
// down-candidate favor the up-candidate. The best candidate found across
// the whole window is committed immediately and the sweep restarts from
// position 0 — this is a first-improvement search, not best-improvement,
// and it is intentionally sensitive to the starting order. Termination is
// either a full sweep with no improving move (a fixed point), or
// max_slide_passes sweeps.
func Slide(order Order, games []Game, params Parameters) (Order, float64, int) {
	n := len(order)
	if n <= 1 {
		return order.Clone(), 0, 0
	}

	idx := BuildIndex(order)
	improvements := 0

	for pass := 0; pass < params.MaxSlidePasses; pass++ {
		improvedThisSweep := false

		for p := 0; p < n; p++ {
			bestLoss := Loss(order, idx, games, params, true)
			bestPos := p

			for d := 1; d <= params.WindowSearchSize; d++ {
				candidate := p - d
				if candidate < 0 {
					continue
				}

				moveElement(order, idx, p, candidate)
				l := Loss(order, idx, games, params, true)
				moveElement(order, idx, candidate, p) // revert

				if l < bestLoss {
					bestLoss = l
					bestPos = candidate
				}
			}

			for d := 1; d <= params.WindowSearchSize; d++ {
				candidate := p + d
				if candidate >= n {
					continue
				}

				moveElement(order, idx, p, candidate)
				l := Loss(order, idx, games, params, true)
				moveElement(order, idx, candidate, p) // revert

				if l < bestLoss {
					bestLoss = l
					bestPos = candidate
				}
			}

			if bestPos != p {
				moveElement(order, idx, p, bestPos)
				improvements++
				improvedThisSweep = true
				break // restart the sweep from position 0
			}
		}

		if !improvedThisSweep {
			break
		}
	}

	return order, Loss(order, idx, games, params, true), improvements
}

// moveElement removes the competitor at position from and re-inserts it
// at position to, shifting only the competitors between the two
// positions by one slot. idx is updated for every shifted competitor.
// Calling moveElement(order, idx, to, from) immediately after undoes it.
func moveElement(order Order, idx Index, from, to int) {
	if from == to {
		return
	}

	c := order[from]
	if from < to {
		copy(order[from:to], order[from+1:to+1])
		order[to] = c
		for p := from; p <= to; p++ {
			idx[order[p]] = p
		}
		return
	}

	copy(order[to+1:from+1], order[to:from])
	order[to] = c
	for p := to; p <= from; p++ {
		idx[order[p]] = p
	}
}
