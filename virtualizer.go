package dds

import "math/bits"

// virtualRankTableSize is 2^[NumRanks]: one entry per possible out-of-play
// mask for a suit.
const virtualRankTableSize = 1 << NumRanks

// toVirtualGivenOutOfPlay[mask][absoluteRank] is the virtual rank of
// absoluteRank when the ranks in mask are out of play, or -1 if
// absoluteRank itself is out of play.
var toVirtualGivenOutOfPlay [virtualRankTableSize][NumRanks]int8

// toAbsoluteGivenOutOfPlay[mask][virtualRank] is the absolute rank of
// virtualRank when the ranks in mask are out of play, or -1 if there is no
// such in-play rank.
var toAbsoluteGivenOutOfPlay [virtualRankTableSize][NumRanks]int8

func init() {
	for mask := 0; mask < virtualRankTableSize; mask++ {
		outOfPlay := SuitField(mask)
		v := 0
		for absolute := Rank(0); absolute < NumRanks; absolute++ {
			if outOfPlay.ContainsRank(absolute) {
				toVirtualGivenOutOfPlay[mask][absolute] = -1
				continue
			}
			toVirtualGivenOutOfPlay[mask][absolute] = int8(v)
			toAbsoluteGivenOutOfPlay[mask][v] = int8(absolute)
			v++
		}
		for ; v < NumRanks; v++ {
			toAbsoluteGivenOutOfPlay[mask][v] = -1
		}
	}
}

// virtualFromAbsolute returns the virtual rank of absolute given the
// out-of-play mask for its suit, and whether absolute is in play.
//
// This is the O(1), allocation-free core of the C3 virtualizer bijection:
// the virtual rank of an in-play card is its rank among the other in-play
// cards of the suit, counting from the bottom.
func virtualFromAbsolute(absolute Rank, outOfPlay SuitField) (Rank, bool) {
	v := toVirtualGivenOutOfPlay[outOfPlay][absolute]
	if v < 0 {
		return 0, false
	}
	return Rank(v), true
}

// absoluteFromVirtual returns the absolute rank corresponding to virtual
// rank given the out-of-play mask for its suit, and whether such a rank
// exists.
func absoluteFromVirtual(virtual Rank, outOfPlay SuitField) (Rank, bool) {
	a := toAbsoluteGivenOutOfPlay[outOfPlay][virtual]
	if a < 0 {
		return 0, false
	}
	return Rank(a), true
}

// popcountBelow is a slower reference form of the bijection: the number
// of in-play ranks below absolute. Nothing in the package calls it; the
// lookup tables are the hot path.
func popcountBelow(absolute Rank, outOfPlay SuitField) int {
	inPlayBelow := (AllRanksMask.AllLowerThan(absolute)) &^ outOfPlay
	return bits.OnesCount16(uint16(inPlayBelow))
}

// Virtualizer holds, per suit, the set of out-of-play ranks (ranks from
// completed tricks). It is refreshed only at trick boundaries (C3); within
// a trick the mapping is frozen.
type Virtualizer struct {
	outOfPlay [NumSuits]SuitField
}

// NewVirtualizer builds a virtualizer from the out-of-play cards of a deal
// (cards in completed tricks).
func NewVirtualizer(outOfPlay []Card) Virtualizer {
	var v Virtualizer
	for _, c := range outOfPlay {
		v.outOfPlay[c.Suit] = v.outOfPlay[c.Suit].AddRank(c.Rank)
	}
	return v
}

// ToVirtual maps an absolute card to its virtual card, and reports whether
// the card is still in play.
func (v Virtualizer) ToVirtual(c Card) (Card, bool) {
	r, ok := virtualFromAbsolute(c.Rank, v.outOfPlay[c.Suit])
	if !ok {
		return Card{}, false
	}
	return Card{Suit: c.Suit, Rank: r}, true
}

// ToAbsolute maps a virtual card back to its absolute card, and reports
// whether such an in-play card exists.
func (v Virtualizer) ToAbsolute(c Card) (Card, bool) {
	r, ok := absoluteFromVirtual(c.Rank, v.outOfPlay[c.Suit])
	if !ok {
		return Card{}, false
	}
	return Card{Suit: c.Suit, Rank: r}, true
}
