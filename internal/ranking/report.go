// ABOUTME: Per-competitor inconsistency reporting for a final order
// ABOUTME: Deliberately double-counts both sides of every violated game

package ranking

// Report enumerates, for every competitor appearing in order, which games
// contradict order and by how much. Each inconsistent game is charged to
// both sides — the winner is penalized for being ranked behind its victim,
// the loser for ranking ahead of someone it lost to — so the aggregate
// scores double-count by design.
func Report(order Order, idx Index, games []Game, params Parameters) map[string]*Inconsistency {
	out := make(map[string]*Inconsistency, len(order))
	for _, c := range order {
		out[c] = &Inconsistency{}
	}

	for _, g := range games {
		pw, pl := idx[g.Winner], idx[g.Loser]
		if pw <= pl {
			continue
		}

		magnitude := pw - pl
		contribution := params.Alpha + magnitude

		w := out[g.Winner]
		w.Score += contribution
		w.Games = append(w.Games, GameRecord{Type: "win", Opponent: g.Loser, Magnitude: magnitude})

		l := out[g.Loser]
		l.Score += contribution
		l.Games = append(l.Games, GameRecord{Type: "loss", Opponent: g.Winner, Magnitude: magnitude})
	}

	return out
}
