package dds

// CardTracker is a set of cards, represented as four [SuitField]s, one per
// suit (C2 in the design: "hand bit-field").
type CardTracker [NumSuits]SuitField

// NewCardTracker builds a tracker from a list of cards.
func NewCardTracker(cards []Card) CardTracker {
	var t CardTracker
	for _, c := range cards {
		t[c.Suit] = t[c.Suit].AddRank(c.Rank)
	}
	return t
}

// NewCardTrackerForNCardsPerSuit returns a tracker representing the bottom
// (13-n) ranks of every suit as already out of play, for decks smaller
// than a full 13 cards per hand.
func NewCardTrackerForNCardsPerSuit(n int) CardTracker {
	var t CardTracker
	for s := range t {
		t[s] = ForNCardsPerSuit(n)
	}
	return t
}

// AddCard returns the tracker with card added.
func (t CardTracker) AddCard(c Card) CardTracker {
	t[c.Suit] = t[c.Suit].AddRank(c.Rank)
	return t
}

// RemoveCard returns the tracker with card removed.
func (t CardTracker) RemoveCard(c Card) CardTracker {
	t[c.Suit] = t[c.Suit].RemoveRank(c.Rank)
	return t
}

// ContainsCard reports whether card is held.
func (t CardTracker) ContainsCard(c Card) bool {
	return t[c.Suit].ContainsRank(c.Rank)
}

// CountCards returns the total number of cards held.
func (t CardTracker) CountCards() int {
	n := 0
	for _, f := range t {
		n += f.CountCards()
	}
	return n
}

// CountCardsPerSuit returns the card count of each suit, indexed by [Suit].
func (t CardTracker) CountCardsPerSuit() [NumSuits]int {
	var counts [NumSuits]int
	for s, f := range t {
		counts[s] = f.CountCards()
	}
	return counts
}

// CountHighCardsPerSuit returns [SuitField.CountHighCards] for each suit.
func (t CardTracker) CountHighCardsPerSuit() [NumSuits]int {
	var counts [NumSuits]int
	for s, f := range t {
		counts[s] = f.CountHighCards()
	}
	return counts
}

// IsVoidIn reports whether the tracker has no cards of suit.
func (t CardTracker) IsVoidIn(suit Suit) bool {
	return t[suit].IsEmpty()
}

// IsSingletonIn reports whether the tracker has exactly one card of suit.
func (t CardTracker) IsSingletonIn(suit Suit) bool {
	return t[suit].CountCards() == 1
}

// IsDoubletonIn reports whether the tracker has exactly two cards of suit.
func (t CardTracker) IsDoubletonIn(suit Suit) bool {
	return t[suit].CountCards() == 2
}

// AllContainedCards returns every held card, suits in display order and
// ranks ascending within each suit.
func (t CardTracker) AllContainedCards() []Card {
	var cards []Card
	for s, f := range t {
		for _, r := range f.AllContainedRanks() {
			cards = append(cards, Card{Suit: Suit(s), Rank: r})
		}
	}
	return cards
}

// ValidMoves returns the legal cards to play given the led suit. If ledSuit
// is nil (leading), or the tracker is void in the led suit, all held cards
// are legal (C5's suit-following rule).
func (t CardTracker) ValidMoves(ledSuit *Suit) []Card {
	if ledSuit != nil && !t.IsVoidIn(*ledSuit) {
		var cards []Card
		for _, r := range t[*ledSuit].AllContainedRanks() {
			cards = append(cards, Card{Suit: *ledSuit, Rank: r})
		}
		return cards
	}
	return t.AllContainedCards()
}
