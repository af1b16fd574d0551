package ranking

import "testing"

func TestSlide_SingleCompetitorShortCircuits(t *testing.T) {
	order, loss, improvements := Slide(Order{"A"}, nil, DefaultParameters())
	if loss != 0 || improvements != 0 || len(order) != 1 || order[0] != "A" {
		t.Fatalf("Slide() = %v, %v, %v; want [A], 0, 0", order, loss, improvements)
	}
}

func TestSlide_FixedPointMakesNoImprovements(t *testing.T) {
	// Already-consistent order: no relocation within the window can lower
	// the primary loss below its current value of 0, so the first sweep
	// finds nothing and the search terminates immediately.
	params := DefaultParameters()
	g := games([2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"A", "C"})

	_, loss, improvements := Slide(Order{"A", "B", "C"}, g, params)
	if improvements != 0 {
		t.Fatalf("improvements = %d, want 0 for an already-optimal order", improvements)
	}
	if loss >= 1 {
		t.Fatalf("loss = %v, want < 1 (primary loss 0 plus bounded tie-breaker)", loss)
	}
}

func TestSlide_RelocatesToFixInconsistentOrder(t *testing.T) {
	// D beat everyone but starts last; within a window of 3 the slider can
	// walk it back to the front, driving the primary loss to 0.
	params := DefaultParameters()
	g := games([2]string{"D", "A"}, [2]string{"D", "B"}, [2]string{"D", "C"}, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"A", "C"})

	order := Order{"A", "B", "C", "D"}
	idx := BuildIndex(order)
	initial := PrimaryLoss(idx, g, params)
	if initial == 0 {
		t.Fatal("test setup invalid: expected a nonzero initial primary loss")
	}

	finalOrder, _, improvements := Slide(order, g, params)
	finalIdx := BuildIndex(finalOrder)
	final := PrimaryLoss(finalIdx, g, params)

	if final != 0 {
		t.Fatalf("PrimaryLoss after slide = %d, want 0; order = %v", final, finalOrder)
	}
	if improvements == 0 {
		t.Fatal("improvements = 0, want at least one relocation")
	}
}

func TestSlide_RespectsMaxPassesBudget(t *testing.T) {
	params := DefaultParameters()
	params.MaxSlidePasses = 1
	params.WindowSearchSize = 1
	g := games([2]string{"D", "A"}, [2]string{"D", "B"}, [2]string{"D", "C"}, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"A", "C"})

	_, _, improvements := Slide(Order{"A", "B", "C", "D"}, g, params)
	if improvements > params.MaxSlidePasses {
		t.Fatalf("improvements = %d, cannot exceed max_slide_passes = %d", improvements, params.MaxSlidePasses)
	}
}
