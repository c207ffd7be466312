package dds

import "math/bits"

// SuitField is a 13-bit set of ranks within one suit. Bit i corresponds to
// [Rank] i, so the lowest set bit is the lowest held rank and the highest
// set bit is the highest held rank (Ace, bit 12).
//
// All operations are constant time and allocation free.
type SuitField uint16

// AllRanksMask has all 13 rank bits set.
const AllRanksMask SuitField = (1 << NumRanks) - 1

// EmptySuitField is the empty set.
const EmptySuitField SuitField = 0

// ForNCardsPerSuit returns a field with the bottom (13-n) ranks marked, for
// building a "pre-removed" baseline when a deal carries fewer than 13 cards
// per hand (n < 13): those bottom ranks were never dealt, so they start out
// of play exactly like already-played cards.
func ForNCardsPerSuit(n int) SuitField {
	if n >= NumRanks {
		return EmptySuitField
	}
	return SuitField(1<<(NumRanks-n)) - 1
}

// AddRank returns the field with rank added.
func (f SuitField) AddRank(rank Rank) SuitField {
	return f | SuitField(rank.Bit())
}

// RemoveRank returns the field with rank removed.
func (f SuitField) RemoveRank(rank Rank) SuitField {
	return f &^ SuitField(rank.Bit())
}

// ContainsRank reports whether rank is set.
func (f SuitField) ContainsRank(rank Rank) bool {
	return f&SuitField(rank.Bit()) != 0
}

// CountCards returns the number of set ranks.
func (f SuitField) CountCards() int {
	return bits.OnesCount16(uint16(f))
}

// IsEmpty reports whether no ranks are set.
func (f SuitField) IsEmpty() bool {
	return f == 0
}

// HighestRank returns the highest set rank and true, or (0, false) if empty.
func (f SuitField) HighestRank() (Rank, bool) {
	if f == 0 {
		return 0, false
	}
	return Rank(15 - bits.LeadingZeros16(uint16(f))), true
}

// LowestRank returns the lowest set rank and true, or (0, false) if empty.
func (f SuitField) LowestRank() (Rank, bool) {
	if f == 0 {
		return 0, false
	}
	return Rank(bits.TrailingZeros16(uint16(f))), true
}

// AllContainedRanks returns every set rank, ascending.
func (f SuitField) AllContainedRanks() []Rank {
	ranks := make([]Rank, 0, f.CountCards())
	for rem := f; rem != 0; {
		lsb := rem & -rem
		ranks = append(ranks, Rank(bits.TrailingZeros16(uint16(lsb))))
		rem &^= lsb
	}
	return ranks
}

// OnlyTopsOfSequences keeps, for each maximal run of consecutive set ranks,
// only the highest rank in the run.
func (f SuitField) OnlyTopsOfSequences() SuitField {
	return ^(f >> 1) & f
}

// CountHighCards returns the length of the consecutive top run starting at
// the Ace (0 if the Ace is not held).
func (f SuitField) CountHighCards() int {
	shifted := uint16(f) << 3
	return bits.LeadingZeros16(^shifted)
}

// AllHigherThan returns the ranks of f strictly higher than rank.
func (f SuitField) AllHigherThan(rank Rank) SuitField {
	mask := AllRanksMask &^ SuitField((1<<(uint16(rank)+1))-1)
	return f & mask
}

// AllLowerThan returns the ranks of f strictly lower than rank.
func (f SuitField) AllLowerThan(rank Rank) SuitField {
	mask := SuitField((1 << uint16(rank)) - 1)
	return f & mask
}

// Union returns the union of f and other.
func (f SuitField) Union(other SuitField) SuitField {
	return f | other
}
