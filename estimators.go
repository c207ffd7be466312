package dds

// Quick tricks and losing tricks are fast, non-exhaustive trick-count
// estimators (C8). The solver consults them only at lead boundaries (or,
// for the second-hand variant, after exactly one card has been played
// into the trick) to narrow the search window; they never have to be
// exact, only safe enough to be useful (spec §8).

// QuickTricksForLeader estimates the tricks the side on lead (the player
// to move, plus partner) can cash immediately without losing the lead,
// from the current position.
func QuickTricksForLeader(vs *VirtualState) int {
	trump, hasTrump := vs.Trumps().Trump()
	seat := vs.NextToPlay()
	partner := seat.Partner()
	if hasTrump {
		return trumpQuickTricksForLeader(vs, seat, partner, trump)
	}
	return ntQuickTricksForLeader(vs, seat, partner)
}

func ntQuickTricksForLeader(vs *VirtualState, seat, partner Seat) int {
	total := 0
	for suit := Suit(0); suit < NumSuits; suit++ {
		total += combinedHighCardTricks(vs, seat, partner, suit)
	}
	return total
}

func trumpQuickTricksForLeader(vs *VirtualState, seat, partner Seat, trump Suit) int {
	total := 0
	for suit := Suit(0); suit < NumSuits; suit++ {
		if suit == trump {
			total += combinedHighCardTricks(vs, seat, partner, suit)
			continue
		}
		// A side suit's high cards are only sure tricks if an opponent
		// cannot ruff them in; conservatively assume they can once
		// either opponent is shorter in the suit than the axis is long,
		// mirroring the original's conservative "opponent can ruff"
		// simplification rather than tracking exact trump counts here.
		lho, rho := seat.LHO(), seat.RHO()
		axisLen := vs.state.HandOf(seat).CountCardsPerSuit()[suit] + vs.state.HandOf(partner).CountCardsPerSuit()[suit]
		lhoLen := vs.state.HandOf(lho).CountCardsPerSuit()[suit]
		rhoLen := vs.state.HandOf(rho).CountCardsPerSuit()[suit]
		if (lhoLen > 0 && lhoLen >= axisLen) && (rhoLen > 0 && rhoLen >= axisLen) {
			total += combinedHighCardTricks(vs, seat, partner, suit)
		}
		// TODO: this drops all side-suit quick tricks once either
		// opponent is void or short enough to ruff, even when the axis
		// could instead draw trumps first.
	}
	return total
}

// combinedHighCardTricks counts the immediately cashable top-of-sequence
// tricks the axis (seat + partner) holds in suit, capped so a suit
// cannot yield more quick tricks than it has cards across both hands.
//
// If the top run is split across both hands, seat (on lead, or about to
// gain the lead) cashes its own share first; winning those tricks keeps
// the lead in seat's hand, so partner's share of the run is only
// reachable if partner holds an entry elsewhere (spec §9's blocked-tricks
// Open Question). Without one, only seat's own share is counted.
func combinedHighCardTricks(vs *VirtualState, seat, partner Seat, suit Suit) int {
	mine := vs.state.HandOf(seat)[suit]
	theirs := vs.state.HandOf(partner)[suit]
	combined := mine.Union(theirs)
	tricks := combined.CountHighCards()
	axisLen := mine.CountCards() + theirs.CountCards()
	if tricks > axisLen {
		tricks = axisLen
	}
	if tricks == 0 {
		return 0
	}

	ranks := combined.AllContainedRanks() // ascending; top run is the tail
	top := ranks[len(ranks)-tricks:]
	mineInRun := 0
	for _, r := range top {
		if mine.ContainsRank(r) {
			mineInRun++
		}
	}
	if mineInRun == tricks {
		return tricks // entirely seat's own cards: no entry needed to cash it
	}
	if hasOutsideEntry(vs, partner, suit) {
		return tricks // partner can be put on lead to cash its share
	}
	return mineInRun // partner's share is stuck behind a blocked entry
}

// hasOutsideEntry reports whether seat holds a high card (an immediate
// winner) in some suit other than excludeSuit, the simplest sufficient
// condition for "the lead can reach seat's hand".
func hasOutsideEntry(vs *VirtualState, seat Seat, excludeSuit Suit) bool {
	hand := vs.state.HandOf(seat)
	for suit := Suit(0); suit < NumSuits; suit++ {
		if suit == excludeSuit {
			continue
		}
		if hand[suit].CountHighCards() > 0 {
			return true
		}
	}
	return false
}

// QuickTricksForSecondHand estimates quick tricks available to the side
// of the player to move (second hand, and its partner in fourth seat)
// when exactly one card has already been played into the trick (the
// leader's card). It is far cheaper than a full leader
// estimate and only applies in that one position.
func QuickTricksForSecondHand(vs *VirtualState) int {
	if vs.state.TrickManager().CountCardsInCurrentTrick() != 1 {
		return 0
	}
	led := vs.state.TrickManager().CardsInCurrentTrick()[0]
	seat := vs.NextToPlay()
	partner := seat.Partner()
	trump, hasTrump := vs.Trumps().Trump()

	if !hasTrump || led.Suit == trump {
		return combinedHighCardTricks(vs, seat, partner, led.Suit)
	}

	// Trump branch: ruffing the led suit, or over-ruffing, counts as a
	// quick trick in its own right even without high cards.
	if vs.state.HandOf(seat).IsVoidIn(led.Suit) && !vs.state.HandOf(seat).IsVoidIn(trump) {
		return 1
	}
	if vs.state.HandOf(partner).IsVoidIn(led.Suit) && !vs.state.HandOf(partner).IsVoidIn(trump) {
		return 1
	}
	lho := seat.LHO()
	if !vs.state.HandOf(lho).IsVoidIn(led.Suit) {
		return combinedHighCardTricks(vs, seat, partner, led.Suit)
	}
	return 0
}

// LosingTricks estimates the losing-trick count (LTC) for seat's hand: in
// each suit, up to the first three cards count as losers, less the
// length of the unbroken run of top cards starting at the ace. An honor
// outside that run (a king without the ace, say) still counts as a loser.
func LosingTricks(vs *VirtualState, seat Seat) int {
	hand := vs.state.HandOf(seat)
	losers := 0
	for suit := Suit(0); suit < NumSuits; suit++ {
		field := hand[suit]
		length := field.CountCards()
		if length == 0 {
			continue
		}
		considered := length
		if considered > 3 {
			considered = 3
		}
		winners := field.CountHighCards()
		if winners > considered {
			winners = considered
		}
		losers += considered - winners
	}
	return losers
}
