package dds

import "testing"

// TestGenerateMovesCollapsesSequenceAtLead checks that a held sequence
// (North's AKQ of spades, the three top spades) produces a single
// representative move, not three.
func TestGenerateMovesCollapsesSequenceAtLead(t *testing.T) {
	hands := handsFromSuits(t, "SA SK SQ H2", "S2 S3 H3 D2", "S4 S5 H4 D3", "S6 S7 H5 D4")
	vs := NewVirtualState(hands, North, NoTrump)

	moves := GenerateMoves(vs, true)
	spadeMoves := 0
	for _, m := range moves {
		if m.Card.Suit == Spade {
			spadeMoves++
			if m.Card.Rank != Ace {
				t.Errorf("expected the spade sequence's representative to be the Ace, got %v", m.Card)
			}
		}
	}
	if spadeMoves != 1 {
		t.Errorf("expected 1 representative spade move for a held AKQ run, got %d", spadeMoves)
	}
	if got, want := len(moves), 2; got != want {
		t.Errorf("GenerateMoves() returned %d moves, want %d (spade run + lone heart)", got, want)
	}
}

// TestGenerateMovesNoEquivalenceAcrossGap checks that a gap held by
// another player breaks the equivalence class: holding the Ace and the
// Queen of a suit while an opponent holds the King between them yields
// two separate moves, not one.
func TestGenerateMovesNoEquivalenceAcrossGap(t *testing.T) {
	hands := handsFromSuits(t, "SA SQ H2", "SK H3 D2", "S2 H4 D3", "S3 H5 D4")
	vs := NewVirtualState(hands, North, NoTrump)

	spadeMoves := 0
	for _, m := range GenerateMoves(vs, true) {
		if m.Card.Suit == Spade {
			spadeMoves++
		}
	}
	if spadeMoves != 2 {
		t.Errorf("expected 2 separate spade moves (Ace and Queen, split by East's King), got %d", spadeMoves)
	}
}

// TestGenerateMovesRespectsSuitFollowing checks that once a suit has
// been led, only cards of that suit (when held) are offered.
func TestGenerateMovesRespectsSuitFollowing(t *testing.T) {
	hands := handsFromSuits(t, "SA H2", "SK H3", "S2 H4", "S3 H5")
	vs := NewVirtualState(hands, North, NoTrump)
	if err := vs.Play(Card{Suit: Spade, Rank: Ace}); err != nil {
		t.Fatalf("Play(SA): %v", err)
	}
	for _, m := range GenerateMoves(vs, true) {
		if m.Card.Suit != Spade {
			t.Errorf("expected only spade moves following a spade lead, got %v", m.Card)
		}
	}
}
