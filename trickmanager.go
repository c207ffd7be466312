package dds

// TrickManager holds the append-only play log for a deal of n tricks (C4).
// Undo is the exact inverse of play for any valid play sequence.
type TrickManager struct {
	n             int
	playedCards   []Card
	openingLeader Seat
	nextToPlay    Seat
	trumps        Strain
	winners       []Seat
}

// NewTrickManager starts a trick manager for n tricks with the given
// opening leader and strain.
func NewTrickManager(n int, openingLeader Seat, trumps Strain) *TrickManager {
	return &TrickManager{
		n:             n,
		playedCards:   make([]Card, 0, 4*n),
		openingLeader: openingLeader,
		nextToPlay:    openingLeader,
		trumps:        trumps,
		winners:       make([]Seat, 0, n),
	}
}

// Trumps returns the strain.
func (m *TrickManager) Trumps() Strain {
	return m.trumps
}

// TrumpSuit returns the trump suit and whether the strain has one.
func (m *TrickManager) TrumpSuit() (Suit, bool) {
	return m.trumps.Trump()
}

// NextToPlay returns the seat to play next.
func (m *TrickManager) NextToPlay() Seat {
	return m.nextToPlay
}

// CountPlayedCards returns the total number of cards played so far.
func (m *TrickManager) CountPlayedCards() int {
	return len(m.playedCards)
}

// CountPlayedTricks returns the number of completed tricks.
func (m *TrickManager) CountPlayedTricks() int {
	return len(m.playedCards) / 4
}

// TricksLeft returns the number of tricks not yet completed.
func (m *TrickManager) TricksLeft() int {
	return m.n - m.CountPlayedTricks()
}

// CardPlayHasEnded reports whether every trick has been played.
func (m *TrickManager) CardPlayHasEnded() bool {
	return m.CountPlayedTricks() == m.n
}

// TrickComplete reports whether the play log currently ends on a trick
// boundary (including the very start).
func (m *TrickManager) TrickComplete() bool {
	return len(m.playedCards)%4 == 0
}

// CountCardsInCurrentTrick returns how many cards (0..3) have been played
// into the in-progress trick.
func (m *TrickManager) CountCardsInCurrentTrick() int {
	return len(m.playedCards) % 4
}

// CardsInCurrentTrick returns the cards played so far into the
// in-progress trick.
func (m *TrickManager) CardsInCurrentTrick() []Card {
	start := (len(m.playedCards) / 4) * 4
	return m.playedCards[start:]
}

// CardsInLastTrick returns the four cards of the most recently completed
// trick, or nil if no trick has completed.
func (m *TrickManager) CardsInLastTrick() []Card {
	nTricks := len(m.playedCards) / 4
	if nTricks == 0 {
		return nil
	}
	start := (nTricks - 1) * 4
	return m.playedCards[start : start+4]
}

// TrickLeader returns the seat that led the current trick.
func (m *TrickManager) TrickLeader() Seat {
	if len(m.winners) == 0 {
		return m.openingLeader
	}
	return m.winners[len(m.winners)-1]
}

// SuitToFollow returns the suit led in the current trick and true, or
// (InvalidSuit, false) if the player to move is leading.
func (m *TrickManager) SuitToFollow() (Suit, bool) {
	cards := m.CardsInCurrentTrick()
	if len(cards) == 0 {
		return InvalidSuit, false
	}
	return cards[0].Suit, true
}

// WouldWinOver reports whether card would beat previous as the running
// winner: a higher card of the same suit, or any trump over a non-trump
// (spec §4.4).
func (m *TrickManager) WouldWinOver(card Card, previous *Card) bool {
	if previous == nil {
		return true
	}
	if card.Suit == previous.Suit {
		return card.Rank > previous.Rank
	}
	trump, ok := m.TrumpSuit()
	return ok && card.Suit == trump
}

// CurrentlyWinningCard returns the card currently winning the in-progress
// trick, or nil if no card has been played into it.
func (m *TrickManager) CurrentlyWinningCard() *Card {
	cards := m.currentTrickSlice()
	var winner *Card
	for i := range cards {
		c := cards[i]
		if m.WouldWinOver(c, winner) {
			winner = &cards[i]
		}
	}
	return winner
}

// currentTrickSlice returns the cards of the trick currently in progress
// (1..4 cards, the same slice [play] just appended to).
func (m *TrickManager) currentTrickSlice() []Card {
	n := len(m.playedCards)
	if n == 0 {
		return nil
	}
	nInTrick := (n-1)%4 + 1
	return m.playedCards[n-nInTrick:]
}

// WouldWinOverCurrentWinner reports whether card would beat the card
// currently winning the in-progress trick.
func (m *TrickManager) WouldWinOverCurrentWinner(card Card) bool {
	return m.WouldWinOver(card, m.CurrentlyWinningCard())
}

// CurrentTrickWinner returns the seat currently winning the in-progress
// trick.
func (m *TrickManager) CurrentTrickWinner() Seat {
	cards := m.currentTrickSlice()
	winner := m.CurrentlyWinningCard()
	if winner == nil {
		return m.TrickLeader()
	}
	idx := -1
	for i, c := range cards {
		if c == *winner {
			idx = i
			break
		}
	}
	return m.TrickLeader().Add(idx)
}

// LastTrickWinner returns the seat that won the most recently completed
// trick, and true, or false if no trick has completed.
func (m *TrickManager) LastTrickWinner() (Seat, bool) {
	if len(m.winners) == 0 {
		return 0, false
	}
	return m.winners[len(m.winners)-1], true
}

// TricksWonBySeat returns the number of tricks won by seat.
func (m *TrickManager) TricksWonBySeat(seat Seat) int {
	n := 0
	for _, w := range m.winners {
		if w == seat {
			n++
		}
	}
	return n
}

// TricksWonByAxis returns the number of tricks won by seat's axis.
func (m *TrickManager) TricksWonByAxis(seat Seat) int {
	return m.TricksWonBySeat(seat) + m.TricksWonBySeat(seat.Partner())
}

// OutOfPlayCards returns the cards of every completed trick (not the
// in-progress one).
func (m *TrickManager) OutOfPlayCards() []Card {
	n := len(m.playedCards)
	inProgress := n % 4
	return m.playedCards[:n-inProgress]
}

// Play appends card to the log, advancing next-to-play or, if this
// completes a trick, recording the winner.
func (m *TrickManager) Play(card Card) {
	m.playedCards = append(m.playedCards, card)
	if m.TrickComplete() {
		winner := m.CurrentTrickWinner()
		m.nextToPlay = winner
		m.winners = append(m.winners, winner)
	} else {
		m.nextToPlay = m.nextToPlay.Add(1)
	}
}

// Undo pops the last played card and returns it, restoring next-to-play
// exactly as it was before the matching Play. Returns false if nothing has
// been played.
func (m *TrickManager) Undo() (Card, bool) {
	if len(m.playedCards) == 0 {
		return Card{}, false
	}
	if m.TrickComplete() {
		m.winners = m.winners[:len(m.winners)-1]
		m.nextToPlay = m.TrickLeader().Add(3)
	} else {
		m.nextToPlay = m.nextToPlay.Add(3)
	}
	last := m.playedCards[len(m.playedCards)-1]
	m.playedCards = m.playedCards[:len(m.playedCards)-1]
	return last, true
}
