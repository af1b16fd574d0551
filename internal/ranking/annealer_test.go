package ranking

import (
	"math/rand/v2"
	"testing"
)

func TestAnneal_SingleCompetitorShortCircuits(t *testing.T) {
	order := Order{"A"}
	rng := rand.New(rand.NewPCG(1, 1))
	got, loss := Anneal(order, nil, DefaultParameters(), rng)
	if loss != 0 || len(got) != 1 || got[0] != "A" {
		t.Fatalf("Anneal() = %v, %v; want [A], 0", got, loss)
	}
}

func TestAnneal_NeverWorseThanInitial(t *testing.T) {
	params := DefaultParameters()
	params.AnnealingIter = 2000
	g := games([2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "A"})

	order := Order{"D", "C", "B", "A"}
	idx := BuildIndex(order)
	initial := Loss(order, idx, g, params, true)

	rng := rand.New(rand.NewPCG(7, 7))
	_, best := Anneal(order.Clone(), g, params, rng)

	if best > initial {
		t.Fatalf("Anneal() best loss %v exceeds initial loss %v", best, initial)
	}
}

func TestAnneal_DeterministicGivenSeed(t *testing.T) {
	params := DefaultParameters()
	params.AnnealingIter = 500
	g := games([2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"}, [2]string{"A", "C"})
	start := Order{"C", "B", "A"}

	rng1 := rand.New(rand.NewPCG(99, 99))
	order1, loss1 := Anneal(start.Clone(), g, params, rng1)

	rng2 := rand.New(rand.NewPCG(99, 99))
	order2, loss2 := Anneal(start.Clone(), g, params, rng2)

	if loss1 != loss2 {
		t.Fatalf("best losses differ across runs with identical seed: %v vs %v", loss1, loss2)
	}
	for i := range order1 {
		if order1[i] != order2[i] {
			t.Fatalf("orders diverge at position %d: %v vs %v", i, order1, order2)
		}
	}
}

func TestAnneal_RunsFullIterationBudget(t *testing.T) {
	// max_iter is a budget, not a convergence test: a trivially consistent
	// two-competitor pair still has to run the full schedule without
	// panicking or short-circuiting early.
	params := DefaultParameters()
	params.AnnealingIter = 50
	g := games([2]string{"A", "B"})
	rng := rand.New(rand.NewPCG(3, 3))

	order, loss := Anneal(Order{"A", "B"}, g, params, rng)
	// A consistent pair has primary loss 0, so the loss is the (negative,
	// magnitude under 1) tie-breaker alone.
	if loss <= -1 {
		t.Fatalf("Anneal() loss = %v, want > -1", loss)
	}
	if len(order) != 2 {
		t.Fatalf("Anneal() order = %v, want length 2", order)
	}
}
