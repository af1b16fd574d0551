// ABOUTME: Primary inconsistency loss and the combined loss used by the search
// ABOUTME: SOS tie-breaker folds in here, bounded to never mask an integer loss change

package ranking

// PrimaryLoss sums ALPHA+(pos[winner]-pos[loser]) over every game whose
// winner is ranked worse than its loser. Consistent games contribute 0.
// It is a pure function of (order, games, params) and never allocates.
func PrimaryLoss(idx Index, games []Game, params Parameters) int {
	total := 0
	for _, g := range games {
		pw, pl := idx[g.Winner], idx[g.Loser]
		if pw > pl {
			total += params.Alpha + (pw - pl)
		}
	}
	return total
}

// Loss computes the total loss for order: the primary inconsistency loss
// plus, when includeSOS is true and there is more than one competitor, the
// bounded strength-of-schedule tie-breaker. The single-competitor case
// short-circuits to 0, per spec section 7.
func Loss(order Order, idx Index, games []Game, params Parameters, includeSOS bool) float64 {
	n := len(order)
	if n <= 1 {
		return 0
	}

	primary := float64(PrimaryLoss(idx, games, params))
	if !includeSOS {
		return primary
	}

	sos := ComputeSOS(order, idx, games, params)

	var tie float64
	for i, c := range order {
		tie += sos[c] * float64(i+1)
	}

	epsilonCoeff := 2.0 / (float64(n) * float64(n+1))
	return primary + epsilonCoeff*tie
}
