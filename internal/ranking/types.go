// ABOUTME: Core data model for the ranking optimizer: games, orders, and parameters
// ABOUTME: Defines the explicit Parameters record threaded through loss, annealer, and slider

// Package ranking implements the core win/loss ranking optimizer: the loss
// function, the annealer, the sliding local search, and the diagnostic
// reports built from a final ordering.
package ranking

// Game is an immutable observed result: winner beat loser. Multiple games
// between the same pair are allowed and each counts independently.
type Game struct {
	Winner string `json:"winner"`
	Loser  string `json:"loser"`
}

// Order is a permutation of competitors. Position 0 is rank 1 (best);
// position len(Order)-1 is the worst rank.
type Order []string

// Index maps a competitor to its zero-based position in an Order.
type Index map[string]int

// BuildIndex derives the index map for order. Callers that mutate order in
// place (swaps, window moves) must keep the returned map in sync themselves;
// see swapPositions and moveElement.
func BuildIndex(order Order) Index {
	idx := make(Index, len(order))
	for i, c := range order {
		idx[c] = i
	}
	return idx
}

// Clone returns an independent copy of order.
func (o Order) Clone() Order {
	c := make(Order, len(o))
	copy(c, o)
	return c
}

// Parameters holds the tunable, explicit configuration threaded through
// every core operation. There is no global/singleton configuration; every
// function that needs parameters takes one of these by value.
type Parameters struct {
	Alpha int `json:"alpha"` // per-inconsistency base penalty

	K       float64 `json:"k"`       // SOS quality exponent
	Lambda  float64 `json:"lambda"`  // SOS win/loss quality weight, in [0, 1]
	Epsilon float64 `json:"epsilon"` // SOS normalization regularizer

	Seed int64 `json:"seed"` // RNG seed

	AnnealingIter int     `json:"annealing_iter"` // annealer step budget
	CoolingRate   float64 `json:"cooling_rate"`    // multiplicative cooling every 1000 steps

	MaxSlidePasses   int `json:"max_slide_passes"`   // slider sweep cap
	WindowSearchSize int `json:"window_search_size"` // slider half-window
}

// DefaultParameters returns the parameter set specified as defaults in
// spec section 6.
func DefaultParameters() Parameters {
	return Parameters{
		Alpha:            1,
		K:                2.0,
		Lambda:           0.5,
		Epsilon:          0.001,
		Seed:             42,
		AnnealingIter:    100000,
		CoolingRate:      0.98,
		MaxSlidePasses:   1000,
		WindowSearchSize: 3,
	}
}

// GameRecord describes a single game that contradicts the final ordering,
// from the point of view of one competitor.
type GameRecord struct {
	Type      string `json:"type"` // "win" or "loss"
	Opponent  string `json:"opponent"`
	Magnitude int    `json:"magnitude"`
}

// Inconsistency is the per-competitor diagnostic built by the reporter.
type Inconsistency struct {
	Score int
	Games []GameRecord
}

// Entry is one row of the final ranking.
type Entry struct {
	Rank               int          `json:"rank"`
	Competitor         string       `json:"competitor"`
	InconsistencyScore int          `json:"inconsistency_score"`
	SOS                float64      `json:"SOS"`
	InconsistentGames  []GameRecord `json:"inconsistent_games"`
}

// Info carries the summary diagnostics that accompany a ranking.
type Info struct {
	FinalLoss             float64 `json:"final_loss"`
	LossAfterAnnealing    float64 `json:"loss_after_annealing"`
	SlideImprovementsMade int     `json:"slide_improvements_made"`
	TotalGames            int     `json:"total_games"`
	TotalCompetitors      int     `json:"total_competitors"`
	RankedCompetitors     int     `json:"ranked_competitors"`
}

// Result is the full output of the orchestrator.
type Result struct {
	Parameters Parameters `json:"parameters"`
	Info       Info       `json:"info"`
	Ranking    []Entry    `json:"ranking"`
}

// CompetitorSet derives the set of competitors from a game list, in order
// of first appearance (stable, not sorted), matching spec section 4.6 step
// 1's "preserve arbitrary order" phrasing.
func CompetitorSet(games []Game) []string {
	seen := make(map[string]bool)
	var out []string
	for _, g := range games {
		if !seen[g.Winner] {
			seen[g.Winner] = true
			out = append(out, g.Winner)
		}
		if !seen[g.Loser] {
			seen[g.Loser] = true
			out = append(out, g.Loser)
		}
	}
	return out
}
