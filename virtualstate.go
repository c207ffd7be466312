package dds

// VirtualState wraps a [DDSState] with a [Virtualizer] that is refreshed
// only at trick boundaries (C6). The solver and move generator work in
// virtual ranks so that positions differing only in which specific
// already-played spot cards were used compress to the same search node.
type VirtualState struct {
	state *DDSState
	virt  Virtualizer
}

// NewVirtualState builds the initial virtual state of a deal.
func NewVirtualState(hands [NumSeats]CardTracker, openingLeader Seat, trumps Strain) *VirtualState {
	s := NewDDSState(hands, openingLeader, trumps)
	return &VirtualState{
		state: s,
		virt:  NewVirtualizer(s.OutOfPlayCards()),
	}
}

// State exposes the underlying absolute-rank state.
func (vs *VirtualState) State() *DDSState {
	return vs.state
}

// Virtualizer returns the virtualizer current for this position.
func (vs *VirtualState) Virtualizer() Virtualizer {
	return vs.virt
}

func (vs *VirtualState) refresh() {
	vs.virt = NewVirtualizer(vs.state.OutOfPlayCards())
}

// NextToPlay returns the seat to play next.
func (vs *VirtualState) NextToPlay() Seat {
	return vs.state.NextToPlay()
}

// TricksLeft returns the number of tricks not yet completed.
func (vs *VirtualState) TricksLeft() int {
	return vs.state.TricksLeft()
}

// Trumps returns the strain in play.
func (vs *VirtualState) Trumps() Strain {
	return vs.state.Trumps()
}

// IsLeading reports whether the player to move is leading the current
// trick.
func (vs *VirtualState) IsLeading() bool {
	return vs.state.IsLeading()
}

// ToVirtual maps an absolute card to its virtual card under the current
// virtualizer.
func (vs *VirtualState) ToVirtual(c Card) (Card, bool) {
	return vs.virt.ToVirtual(c)
}

// ToAbsolute maps a virtual card back to its absolute card under the
// current virtualizer.
func (vs *VirtualState) ToAbsolute(c Card) (Card, bool) {
	return vs.virt.ToAbsolute(c)
}

// Play plays an absolute card, refreshing the virtualizer if this
// completes a trick.
func (vs *VirtualState) Play(card Card) error {
	if err := vs.state.Play(card); err != nil {
		return err
	}
	if vs.state.TrickManager().TrickComplete() {
		vs.refresh()
	}
	return nil
}

// Undo reverses the most recent Play and refreshes the virtualizer.
func (vs *VirtualState) Undo() (Card, bool) {
	card, ok := vs.state.Undo()
	if !ok {
		return card, ok
	}
	vs.refresh()
	return card, true
}

// Distribution computes the current transposition key distribution
// descriptor.
func (vs *VirtualState) Distribution() Distribution {
	return ComputeDistribution(vs.hands(), vs.virt)
}

func (vs *VirtualState) hands() [NumSeats]CardTracker {
	var hands [NumSeats]CardTracker
	for seat := Seat(0); seat < NumSeats; seat++ {
		hands[seat] = vs.state.HandOf(seat)
	}
	return hands
}

// Key returns the full transposition table key for the current position.
func (vs *VirtualState) Key() TTKey {
	return TTKey{
		TricksLeft: vs.TricksLeft(),
		Trump:      vs.Trumps(),
		ToPlay:     vs.NextToPlay(),
		Dist:       vs.Distribution(),
	}
}
