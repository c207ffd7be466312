package dds

import (
	"reflect"
	"testing"
)

func TestSuitFieldAddRemoveContains(t *testing.T) {
	f := EmptySuitField
	f = f.AddRank(Ace)
	f = f.AddRank(Two)
	if !f.ContainsRank(Ace) || !f.ContainsRank(Two) {
		t.Fatalf("expected Ace and Two set, got %013b", f)
	}
	if f.ContainsRank(King) {
		t.Fatalf("did not expect King set")
	}
	f = f.RemoveRank(Two)
	if f.ContainsRank(Two) {
		t.Fatalf("expected Two removed")
	}
	if got, want := f.CountCards(), 1; got != want {
		t.Fatalf("CountCards() = %d, want %d", got, want)
	}
}

func TestSuitFieldHighestLowest(t *testing.T) {
	f := EmptySuitField.AddRank(Two).AddRank(Nine).AddRank(Ace)
	if got, ok := f.HighestRank(); !ok || got != Ace {
		t.Errorf("HighestRank() = %v, %v, want Ace, true", got, ok)
	}
	if got, ok := f.LowestRank(); !ok || got != Two {
		t.Errorf("LowestRank() = %v, %v, want Two, true", got, ok)
	}
	if _, ok := EmptySuitField.HighestRank(); ok {
		t.Errorf("HighestRank() of empty field should report false")
	}
}

func TestSuitFieldAllContainedRanksAscending(t *testing.T) {
	f := EmptySuitField.AddRank(Ace).AddRank(Two).AddRank(King)
	got := f.AllContainedRanks()
	want := []Rank{Two, King, Ace}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AllContainedRanks() = %v, want %v", got, want)
	}
}

func TestSuitFieldOnlyTopsOfSequences(t *testing.T) {
	// A-K-Q run, then a gap, then a lone Nine.
	f := EmptySuitField.AddRank(Ace).AddRank(King).AddRank(Queen).AddRank(Nine)
	got := f.OnlyTopsOfSequences()
	want := EmptySuitField.AddRank(Ace).AddRank(Nine)
	if got != want {
		t.Errorf("OnlyTopsOfSequences() = %013b, want %013b", got, want)
	}
}

func TestSuitFieldCountHighCards(t *testing.T) {
	tests := []struct {
		ranks []Rank
		want  int
	}{
		{nil, 0},
		{[]Rank{King}, 0}, // no Ace, no run attached to the top
		{[]Rank{Ace}, 1},
		{[]Rank{Ace, King}, 2},
		{[]Rank{Ace, King, Jack}, 2}, // gap at Queen breaks the run
		{[]Rank{Ace, King, Queen, Jack, Ten}, 5},
	}
	for _, tt := range tests {
		f := EmptySuitField
		for _, r := range tt.ranks {
			f = f.AddRank(r)
		}
		if got := f.CountHighCards(); got != tt.want {
			t.Errorf("CountHighCards(%v) = %d, want %d", tt.ranks, got, tt.want)
		}
	}
}

func TestSuitFieldAllHigherLowerThan(t *testing.T) {
	f := AllRanksMask
	if got, want := f.AllHigherThan(King).CountCards(), 1; got != want {
		t.Errorf("AllHigherThan(King) has %d cards, want %d", got, want)
	}
	if got, want := f.AllLowerThan(Three).CountCards(), 1; got != want {
		t.Errorf("AllLowerThan(Three) has %d cards, want %d", got, want)
	}
	if got := f.AllHigherThan(Ace); got != EmptySuitField {
		t.Errorf("AllHigherThan(Ace) = %013b, want empty", got)
	}
}

func TestForNCardsPerSuit(t *testing.T) {
	f := ForNCardsPerSuit(4)
	if got, want := f.CountCards(), NumRanks-4; got != want {
		t.Errorf("ForNCardsPerSuit(4) has %d cards out of play, want %d", got, want)
	}
	for _, r := range []Rank{Ace, King, Queen, Jack} {
		if f.ContainsRank(r) {
			t.Errorf("ForNCardsPerSuit(4) should not mark %v out of play", r)
		}
	}
	if got := ForNCardsPerSuit(NumRanks); got != EmptySuitField {
		t.Errorf("ForNCardsPerSuit(NumRanks) = %013b, want empty", got)
	}
}
