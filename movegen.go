package dds

import "sort"

// Move is one candidate move out of a [VirtualState]: an equivalence
// class of absolute cards represented by its highest (virtual) member,
// together with a move-ordering priority (C7).
type Move struct {
	Card        Card
	VirtualCard Card
	Priority    int
}

// trickPosition is how many cards have already been played into the
// current trick: 0 means leading, 3 means playing last.
func trickPosition(vs *VirtualState) int {
	return vs.state.TrickManager().CountCardsInCurrentTrick()
}

// GenerateMoves returns the legal moves for the player to move, one per
// equivalence class of interchangeable cards. If order is true, the
// moves are sorted with the most promising move first (spec §4.7 step
// D); ordering only affects how quickly the search converges, never the
// result, so callers that disable [WithMoveOrdering] get the same moves
// in generation order instead.
//
// Two held cards of the same suit that sit in the same run of
// consecutive virtual ranks (no gap, i.e. no in-play card of another seat
// between them)
// are interchangeable: playing either leaves the same residual holdings
// up to relabeling, so only the top of each run needs to be searched
// (spec §4.7).
func GenerateMoves(vs *VirtualState, order bool) []Move {
	legal := vs.state.LegalMoves()
	if len(legal) == 0 {
		return nil
	}

	var perSuit [NumSuits]SuitField
	absoluteOf := map[Card]Card{} // virtual card -> absolute card, per suit scope below
	for _, c := range legal {
		vc, ok := vs.ToVirtual(c)
		if !ok {
			continue
		}
		perSuit[c.Suit] = perSuit[c.Suit].AddRank(vc.Rank)
		absoluteOf[vc] = c
	}

	pos := trickPosition(vs)
	var moves []Move
	for suit := Suit(0); suit < NumSuits; suit++ {
		tops := perSuit[suit].OnlyTopsOfSequences()
		for _, vr := range tops.AllContainedRanks() {
			vc := Card{Suit: suit, Rank: vr}
			ac := absoluteOf[vc]
			moves = append(moves, Move{
				Card:        ac,
				VirtualCard: vc,
				Priority:    movePriority(vs, ac, vc, pos),
			})
		}
	}

	if order {
		sort.SliceStable(moves, func(i, j int) bool {
			return moves[i].Priority > moves[j].Priority
		})
	}
	return moves
}

// movePriority scores a candidate move for search ordering. Higher sorts
// first. Ordering never changes the result (GenerateMoves still returns
// every legal equivalence class either way), only how quickly the search
// converges, so the heuristics below are tuned for "usually searched
// first", not for soundness.
//
// The scoring follows seat position: a leader favors cashing its own
// quick tricks, drawing trump, and probing short side suits for a later
// ruff; second hand ducks low unless a cheap, safe ruff is available;
// third hand tries to win as cheaply as possible, weighing a ruff
// against the risk that a later seat still to play this trick can
// overruff it; fourth hand (playing last, so "safe" is moot) takes the
// cheapest card that wins and otherwise discards while preserving trump
// length and guarded honors.
func movePriority(vs *VirtualState, absolute, virtual Card, pos int) int {
	trump, hasTrump := vs.Trumps().Trump()
	isTrump := hasTrump && absolute.Suit == trump
	mover := vs.NextToPlay()
	tm := vs.state.TrickManager()

	switch pos {
	case 0:
		return leadPriority(vs, mover, absolute, virtual, hasTrump, trump, isTrump)
	case 1:
		return secondHandPriority(vs, mover, tm, trump, absolute, virtual, isTrump, pos)
	case 2:
		return thirdHandPriority(vs, mover, tm, trump, absolute, virtual, isTrump, pos)
	default:
		return fourthHandPriority(vs, mover, tm, absolute, virtual, isTrump)
	}
}

// leadPriority scores an opening lead: the base rank (sequence tops
// already sort high, since GenerateMoves only offers the top of each
// run), plus a bonus scaled by how many quick tricks the suit is worth,
// plus either a trump-length bonus for leading trump or a shortness
// bonus for probing a side suit that might later be ruffed, or a length
// bonus for a side suit long enough to set up as winners.
func leadPriority(vs *VirtualState, mover Seat, absolute, virtual Card, hasTrump bool, trump Suit, isTrump bool) int {
	hand := vs.state.HandOf(mover)
	field := hand[absolute.Suit]
	score := int(virtual.Rank) * 10
	score += field.CountHighCards() * 20

	switch {
	case isTrump:
		score += 100 + field.CountCards()*5 // drawing trump: the longer we hold it, the more urgent
	case hasTrump && field.CountCards() <= 2:
		score += 30 // short side suit: a candidate for a later ruff
	case field.CountCards() >= 5:
		score += 15 // long side suit: worth establishing
	}
	return score
}

// secondHandPriority ducks low by default. A ruff is only favored over
// ducking when no later seat still to play this trick holds a higher
// trump to overruff it with.
func secondHandPriority(vs *VirtualState, mover Seat, tm *TrickManager, trump Suit, absolute, virtual Card, isTrump bool, pos int) int {
	if discarding(tm, absolute.Suit) {
		if isTrump {
			if laterSeatCanOverruff(vs, tm, trump, absolute.Rank, pos) {
				return 50 - int(virtual.Rank)
			}
			return 700 - int(virtual.Rank) // a safe ruff beats ducking
		}
		return discardPriority(vs, mover, absolute, virtual)
	}
	return -int(virtual.Rank) * 10
}

// thirdHandPriority tries to win as cheaply as possible, ranking a
// winning ruff that no later seat can overruff above a plain win, and
// discounting a ruff that a later seat (fourth hand) can still overruff.
func thirdHandPriority(vs *VirtualState, mover Seat, tm *TrickManager, trump Suit, absolute, virtual Card, isTrump bool, pos int) int {
	wins := tm.WouldWinOverCurrentWinner(absolute)
	if discarding(tm, absolute.Suit) && isTrump {
		if laterSeatCanOverruff(vs, tm, trump, absolute.Rank, pos) {
			return 50 - int(virtual.Rank)
		}
		if wins {
			return 600 - int(virtual.Rank)
		}
	}
	if wins {
		return 500 - int(virtual.Rank)
	}
	return discardPriority(vs, mover, absolute, virtual)
}

// fourthHandPriority plays last: there is nobody left to overruff, so
// the only question is whether this card wins. If it can't, preserve
// trump and guarded honors the same way a non-winning discard would
// anywhere else in the trick.
func fourthHandPriority(vs *VirtualState, mover Seat, tm *TrickManager, absolute, virtual Card, isTrump bool) int {
	if tm.WouldWinOverCurrentWinner(absolute) {
		return 1000 - int(virtual.Rank)
	}
	if discarding(tm, absolute.Suit) && isTrump {
		return -1000 + int(virtual.Rank) // the trick is already lost: don't spend a trump on it
	}
	if discarding(tm, absolute.Suit) {
		return discardPriority(vs, mover, absolute, virtual)
	}
	return -int(virtual.Rank)
}

// discarding reports whether playing suit would be a discard (mover is
// following no suit, i.e. void in whatever was led) rather than simply
// following suit.
func discarding(tm *TrickManager, suit Suit) bool {
	led, following := tm.SuitToFollow()
	return following && suit != led
}

// discardPriority scores a non-winning discard: shorter, honor-free
// suits are pitched first, keeping length in suits where mover still
// holds a guarded honor worth protecting.
func discardPriority(vs *VirtualState, mover Seat, absolute, virtual Card) int {
	field := vs.state.HandOf(mover)[absolute.Suit]
	score := 200 - field.CountCards()*10
	if field.CountHighCards() > 0 {
		score -= 50
	}
	return score - int(virtual.Rank)
}

// laterSeatCanOverruff reports whether any seat still to play this
// trick after the current one holds a trump higher than rank. Since
// double-dummy search has perfect information, this is checked exactly
// rather than estimated.
func laterSeatCanOverruff(vs *VirtualState, tm *TrickManager, trump Suit, rank Rank, pos int) bool {
	leader := tm.TrickLeader()
	for i := pos + 1; i < 4; i++ {
		if higher, ok := vs.state.HandOf(leader.Add(i))[trump].HighestRank(); ok && higher > rank {
			return true
		}
	}
	return false
}
