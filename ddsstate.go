package dds

// DDSState composes the four hands with a [TrickManager] into the
// complete play state of a double-dummy problem (C5).
type DDSState struct {
	hands [NumSeats]CardTracker
	trick *TrickManager
}

// NewDDSState builds the initial state of a deal: the four hands, trumps,
// and the opening leader. tricks is the number of tricks to be played
// (the number of cards in each hand).
func NewDDSState(hands [NumSeats]CardTracker, openingLeader Seat, trumps Strain) *DDSState {
	tricks := hands[openingLeader].CountCards()
	return &DDSState{
		hands: hands,
		trick: NewTrickManager(tricks, openingLeader, trumps),
	}
}

// NextToPlay returns the seat to play next.
func (s *DDSState) NextToPlay() Seat {
	return s.trick.NextToPlay()
}

// HandOf returns the current holding of seat.
func (s *DDSState) HandOf(seat Seat) CardTracker {
	return s.hands[seat]
}

// Trumps returns the strain in play.
func (s *DDSState) Trumps() Strain {
	return s.trick.Trumps()
}

// TricksLeft returns the number of tricks not yet completed.
func (s *DDSState) TricksLeft() int {
	return s.trick.TricksLeft()
}

// TrickManager exposes the underlying trick manager, for components (move
// generation, estimators) that need direct access to the play log.
func (s *DDSState) TrickManager() *TrickManager {
	return s.trick
}

// IsLeading reports whether the player to move is leading the current
// trick.
func (s *DDSState) IsLeading() bool {
	return s.trick.TrickComplete()
}

// LegalMoves returns the cards the player to move may legally play,
// following suit if possible (C5's suit-following rule).
func (s *DDSState) LegalMoves() []Card {
	hand := s.hands[s.NextToPlay()]
	if s.IsLeading() {
		return hand.ValidMoves(nil)
	}
	suit, _ := s.trick.SuitToFollow()
	return hand.ValidMoves(&suit)
}

// IsLegal reports whether card is among the current legal moves.
func (s *DDSState) IsLegal(card Card) bool {
	for _, c := range s.LegalMoves() {
		if c == card {
			return true
		}
	}
	return false
}

// Play plays card for the player to move. It reports ErrIllegalPlay if the
// card is not held or does not follow suit.
func (s *DDSState) Play(card Card) error {
	seat := s.NextToPlay()
	if !s.hands[seat].ContainsCard(card) {
		return &ParseError{S: card.String(), Err: ErrIllegalPlay}
	}
	if !s.IsLegal(card) {
		return &ParseError{S: card.String(), Err: ErrIllegalPlay}
	}
	s.hands[seat] = s.hands[seat].RemoveCard(card)
	s.trick.Play(card)
	return nil
}

// Undo reverses the most recent Play, restoring the card to the hand that
// played it. Reports false if no card has been played.
func (s *DDSState) Undo() (Card, bool) {
	card, ok := s.trick.Undo()
	if !ok {
		return Card{}, false
	}
	seat := s.trick.NextToPlay()
	s.hands[seat] = s.hands[seat].AddCard(card)
	return card, true
}

// OutOfPlayCards returns every card played in a completed trick, across
// all seats.
func (s *DDSState) OutOfPlayCards() []Card {
	return s.trick.OutOfPlayCards()
}

// CardsInCurrentTrick returns the cards played so far in the in-progress
// trick.
func (s *DDSState) CardsInCurrentTrick() []Card {
	return s.trick.CardsInCurrentTrick()
}
