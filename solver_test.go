package dds

import "testing"

// handsFromSuits builds four hands, one card-string per seat in North,
// East, South, West order, via ParseCards.
func handsFromSuits(t *testing.T, nCards, eCards, sCards, wCards string) [NumSeats]CardTracker {
	t.Helper()
	var hands [NumSeats]CardTracker
	for seat, s := range []string{nCards, eCards, sCards, wCards} {
		cards, err := ParseCards(s)
		if err != nil {
			t.Fatalf("ParseCards(%q): %v", s, err)
		}
		hands[seat] = NewCardTracker(cards)
	}
	return hands
}

// TestSolverUnbeatableSuitNoTrump: North holds the only two cards of
// spades at the table (the rest are void in every other player's suit
// too), so in no-trump neither defender can ever follow suit or ruff:
// North's axis must win both tricks.
func TestSolverUnbeatableSuitNoTrump(t *testing.T) {
	hands := handsFromSuits(t, "SA SK", "H2 H3", "D2 D3", "C2 C3")
	vs := NewVirtualState(hands, North, NoTrump)
	s := NewSolver()
	got := s.SolveInitialPosition(vs)
	if want := 2; got != want {
		t.Fatalf("SolveInitialPosition() = %d, want %d (North-South unbeatable in NT)", got, want)
	}
}

// TestSolverRuffableSuitWithTrump: same deal, but hearts (East-West's
// suit) are trump, so East can ruff North's spade leads and East-West
// wins both tricks instead.
func TestSolverRuffableSuitWithTrump(t *testing.T) {
	hands := handsFromSuits(t, "SA SK", "H2 H3", "D2 D3", "C2 C3")
	vs := NewVirtualState(hands, North, Strain_Heart)
	s := NewSolver()
	got := s.SolveInitialPosition(vs)
	if want := 0; got != want {
		t.Fatalf("SolveInitialPosition() = %d, want %d (North-South get ruffed out of both tricks)", got, want)
	}
}

// TestSolverSingleTrickDeal checks the degenerate single-card-each deal.
func TestSolverSingleTrickDeal(t *testing.T) {
	hands := handsFromSuits(t, "SA", "HA", "CA", "DA")
	vs := NewVirtualState(hands, North, NoTrump)
	s := NewSolver()
	got := s.SolveInitialPosition(vs)
	// North leads the only spade; nobody else holds one, so North's
	// card automatically wins the only trick.
	if want := 1; got != want {
		t.Fatalf("SolveInitialPosition() = %d, want %d", got, want)
	}
}

// TestLosingTricksShortcutPrunesSearch checks that WithLosingTricks does
// more than seed QuickEvaluator's pre-estimate: it gates a real in-search
// shortcut in scoreAtLeast that can rule out an unreachable target without
// ever generating a move, which the equivalent default-configured solver
// cannot do.
//
// West holds the top club and the top diamond, so whichever suit North
// leads, East-West win the first trick: the losing-tricks bound alone
// proves 2 tricks are unreachable.
func TestLosingTricksShortcutPrunesSearch(t *testing.T) {
	hands := handsFromSuits(t, "C2 D2", "C3 D3", "C4 D4", "C5 D5")

	withShortcut := NewSolver(WithLosingTricks())
	if got := withShortcut.scoreAtLeast(NewVirtualState(hands, North, NoTrump), 2); got {
		t.Fatalf("scoreAtLeast(target=2) = true, want false (unreachable)")
	}
	if got := withShortcut.Statistics().TotalDecisions; got != 0 {
		t.Errorf("TotalDecisions = %d, want 0: the losing-tricks shortcut should have ruled out target=2 before generating any move", got)
	}

	withoutShortcut := NewSolver()
	if got := withoutShortcut.scoreAtLeast(NewVirtualState(hands, North, NoTrump), 2); got {
		t.Fatalf("scoreAtLeast(target=2) = true, want false (unreachable)")
	}
	if got := withoutShortcut.Statistics().TotalDecisions; got == 0 {
		t.Errorf("TotalDecisions = 0, want > 0: without the shortcut the solver must actually search moves to rule out target=2")
	}
}

// TestSolverAgreesAcrossConfigurations checks that disabling the
// transposition table and the estimators does not change the answer,
// only the work needed to reach it (spec §8: estimator/TT numbers never
// affect correctness).
func TestSolverAgreesAcrossConfigurations(t *testing.T) {
	hands := handsFromSuits(t, "SA SK S2", "H2 H3 H4", "D2 D3 D4", "C2 C3 C4")
	want := NewSolver().SolveInitialPosition(NewVirtualState(hands, North, NoTrump))

	configs := []*Solver{
		NewSolver(),
		NewSolver(func(c *Config) { c.useTranspositionTable = false }),
		NewSolver(func(c *Config) { c.useQuickTricks = false }),
		NewSolver(func(c *Config) { c.useQuickTricksSecondHand = false }),
		NewSolver(WithLosingTricks()),
	}
	for i, s := range configs {
		got := s.SolveInitialPosition(NewVirtualState(hands, North, NoTrump))
		if got != want {
			t.Errorf("config %d: SolveInitialPosition() = %d, want %d", i, got, want)
		}
	}
}
