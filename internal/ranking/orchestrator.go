// ABOUTME: Top-level orchestration of the ranking pipeline
// ABOUTME: Shuffles, anneals, slides, then reports and filters the final order

package ranking

import (
	"math/rand/v2"
)

// Run drives the full pipeline: dedupe competitors, seed a random initial
// permutation, anneal, slide, then decorate the result with per-competitor
// diagnostics. If filter is non-empty, the final ranking is restricted to
// those competitors (entries not present in the current competitor set are
// silently ignored) and ranks are renumbered 1..M in the order induced by
// the full ranking; the kept entries' metrics are exactly those computed
// on the unfiltered final permutation.
func Run(games []Game, params Parameters, filter []string) Result {
	return RunWithProgress(games, params, filter, nil)
}

// RunWithProgress is Run, plus a callback invoked at each annealer cooling
// checkpoint with the step count and best loss seen so far. Pass nil for
// report to get Run's behavior exactly.
func RunWithProgress(games []Game, params Parameters, filter []string, report func(step int, bestLoss float64)) Result {
	competitors := CompetitorSet(games)
	n := len(competitors)

	if n == 0 {
		return Result{
			Parameters: params,
			Info:       Info{TotalGames: len(games)},
		}
	}

	rng := rand.New(rand.NewPCG(uint64(params.Seed), uint64(params.Seed)))

	order := make(Order, n)
	copy(order, competitors)
	rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })

	var lossAfterAnnealing float64
	if n > 1 {
		order, lossAfterAnnealing = AnnealWithProgress(order, games, params, rng, report)
	}

	finalOrder, finalLoss, improvements := Slide(order, games, params)

	idx := BuildIndex(finalOrder)
	reports := Report(finalOrder, idx, games, params)

	var sos map[string]float64
	if n > 1 {
		sos = ComputeSOS(finalOrder, idx, games, params)
	} else {
		sos = map[string]float64{finalOrder[0]: 0}
	}

	entries := make([]Entry, n)
	for i, c := range finalOrder {
		rep := reports[c]
		entries[i] = Entry{
			Rank:               i + 1,
			Competitor:         c,
			InconsistencyScore: rep.Score,
			SOS:                sos[c],
			InconsistentGames:  rep.Games,
		}
	}

	entries = applyFilter(entries, filter)

	return Result{
		Parameters: params,
		Info: Info{
			FinalLoss:             finalLoss,
			LossAfterAnnealing:    lossAfterAnnealing,
			SlideImprovementsMade: improvements,
			TotalGames:            len(games),
			TotalCompetitors:      n,
			RankedCompetitors:     len(entries),
		},
		Ranking: entries,
	}
}

// applyFilter keeps only entries whose competitor is in filter (unknown
// filter entries are ignored), preserves each surviving entry's metrics
// untouched, and renumbers rank sequentially starting at 1 in the order
// the entries already appear (the full-ranking order).
func applyFilter(entries []Entry, filter []string) []Entry {
	if len(filter) == 0 {
		return entries
	}

	want := make(map[string]bool, len(filter))
	for _, c := range filter {
		want[c] = true
	}

	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if want[e.Competitor] {
			e.Rank = len(kept) + 1
			kept = append(kept, e)
		}
	}
	return kept
}
