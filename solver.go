package dds

// Statistics reports how much work a solve did, for callers that want to
// tune [Config] or just report on performance (not part of the core
// double-dummy contract, spec §9's statistics supplement).
type Statistics struct {
	NodesVisited     int
	FirstMoveBest    int
	TotalDecisions   int
	TranspositionHit int
}

// Solver computes double-dummy results: the number of tricks the side on
// lead can guarantee against optimal defense (C10). A Solver is
// single-use per strain: its transposition table is keyed relative to
// trumps, so reuse it across initial positions of the same strain only,
// and call [Solver.Reset] (or build a new Solver) before switching
// strain.
type Solver struct {
	cfg   Config
	tt    *TransTable
	stats Statistics
}

// NewSolver builds a solver with opts applied on top of [NewConfig]'s
// defaults.
func NewSolver(opts ...Option) *Solver {
	cfg := NewConfig(opts...)
	s := &Solver{cfg: cfg}
	if cfg.useTranspositionTable {
		s.tt = NewTransTable()
	}
	return s
}

// Statistics returns the statistics accumulated since the Solver was
// built or last reset.
func (s *Solver) Statistics() Statistics {
	return s.stats
}

// TranspositionTableLen returns the number of positions currently cached,
// or 0 if the transposition table is disabled.
func (s *Solver) TranspositionTableLen() int {
	if s.tt == nil {
		return 0
	}
	return s.tt.Len()
}

// Reset clears the transposition table and statistics, for reuse of the
// Solver on a new strain.
func (s *Solver) Reset() {
	if s.tt != nil {
		s.tt.Clear()
	}
	s.stats = Statistics{}
}

// SolveInitialPosition returns the number of tricks the side on lead
// (vs.NextToPlay()'s axis) can guarantee from vs under optimal defense.
//
// It binary searches the window [0, tricksLeft] using the pre-estimate
// in [Config] to pick a starting target, narrowing with zero-window
// calls to [Solver.scoreAtLeast] (spec §4.9's "score node" driver).
func (s *Solver) SolveInitialPosition(vs *VirtualState) int {
	n := vs.TricksLeft()
	if n == 0 {
		return 0
	}
	target := n
	if s.cfg.preEstimate != nil {
		target = s.cfg.preEstimate.Estimate(vs) + 1
		if target < 1 {
			target = 1
		}
		if target > n {
			target = n
		}
	}

	low, high := 0, n
	for {
		if s.scoreAtLeast(vs, target) {
			low = target
		} else {
			high = target - 1
		}
		if low == high {
			return low
		}
		target = low + (high-low)/2 + 1
	}
}

// scoreAtLeast reports whether vs.NextToPlay()'s axis can guarantee at
// least target of the tricksLeft(vs) tricks remaining, playing optimally
// on both sides. It is the zero-window negamax core of the solver: every
// recursive call asks the same kind of yes/no question,
// letting the axis-flip identity
//
//	value(child) = tricksLeft(child) - value(child, from the other axis)
//
// turn into a single recursive boolean test instead of two mutually
// recursive max/min searches.
func (s *Solver) scoreAtLeast(vs *VirtualState, target int) bool {
	n := vs.TricksLeft()
	if target <= 0 {
		return true
	}
	if target > n {
		return false
	}

	// The transposition key (TTKey/Distribution) encodes only remaining-
	// card ownership, not the led suit or the current trick's running
	// winner: two different mid-trick positions can collide on the same
	// key. Bounds are therefore only ever looked up or stored at lead
	// boundaries, where the key is unambiguous.
	leading := vs.IsLeading()
	var key TTKey
	if leading && s.tt != nil {
		key = vs.Key()
		if b, ok := s.tt.Lookup(key); ok {
			s.stats.TranspositionHit++
			if target <= b.AtLeast {
				return true
			}
			if b.AtMost >= 0 && target > b.AtMost {
				return false
			}
		}
	}

	s.stats.NodesVisited++

	if s.estimatorsReachTarget(vs, target) {
		if leading && s.tt != nil {
			s.tt.RaiseLowerBound(key, target)
		}
		return true
	}

	if leading && s.cfg.useLosingTricks {
		if upper := s.losingTricksUpperBound(vs); upper < target {
			if s.tt != nil {
				s.tt.LowerUpperBound(key, upper)
			}
			return false
		}
	}

	mover := vs.NextToPlay()
	moves := GenerateMoves(vs, s.cfg.orderMoves)
	result := false
	for i, mv := range moves {
		if err := vs.Play(mv.Card); err != nil {
			continue
		}
		satisfied := s.childSatisfies(vs, mover, target)
		vs.Undo()
		if satisfied {
			result = true
			if i == 0 {
				s.stats.FirstMoveBest++
			}
			s.stats.TotalDecisions++
			break
		}
		s.stats.TotalDecisions++
	}

	if leading && s.tt != nil {
		if result {
			s.tt.RaiseLowerBound(key, target)
		} else {
			s.tt.LowerUpperBound(key, target-1)
		}
	}
	return result
}

// losingTricksUpperBound bounds the tricks vs.NextToPlay()'s axis can
// possibly take from here, for a player on lead. If every suit the leader
// holds is headed by an opponent's card (and, in a trump contract, the
// leader's partner cannot ruff it), the opponents are sure to win the
// current trick and the bound is tricksLeft-1; otherwise it is
// tricksLeft. Only the current trick is counted, so a target above this
// bound is always unreachable.
func (s *Solver) losingTricksUpperBound(vs *VirtualState) int {
	seat := vs.NextToPlay()
	partner := seat.Partner()
	trump, hasTrump := vs.Trumps().Trump()
	for suit := Suit(0); suit < NumSuits; suit++ {
		if vs.state.HandOf(seat).IsVoidIn(suit) {
			continue
		}
		ours, _ := vs.state.HandOf(seat)[suit].Union(vs.state.HandOf(partner)[suit]).HighestRank()
		theirs, ok := vs.state.HandOf(seat.LHO())[suit].Union(vs.state.HandOf(seat.RHO())[suit]).HighestRank()
		partnerRuffs := hasTrump && suit != trump && vs.state.HandOf(partner).IsVoidIn(suit) && !vs.state.HandOf(partner).IsVoidIn(trump)
		if !ok || theirs < ours || partnerRuffs {
			return vs.TricksLeft()
		}
	}
	return vs.TricksLeft() - 1
}

// childSatisfies decides, after one move has been played from a position
// where mover was to play, whether that move achieves at least target
// tricks for mover's axis.
func (s *Solver) childSatisfies(vs *VirtualState, mover Seat, target int) bool {
	tm := vs.state.TrickManager()
	if tm.TrickComplete() {
		winner, _ := tm.LastTrickWinner()
		if winner.SameAxis(mover) {
			return s.scoreAtLeast(vs, target-1)
		}
		nc := vs.TricksLeft()
		return !s.scoreAtLeast(vs, nc-target+1)
	}
	nc := vs.TricksLeft()
	return !s.scoreAtLeast(vs, nc-target+1)
}

// estimatorsReachTarget consults the configured quick-tricks estimators
// as a cheap sufficient condition for the target, without recursing.
func (s *Solver) estimatorsReachTarget(vs *VirtualState, target int) bool {
	if vs.IsLeading() {
		return s.cfg.useQuickTricks && QuickTricksForLeader(vs) >= target
	}
	if s.cfg.useQuickTricksSecondHand && vs.state.TrickManager().CountCardsInCurrentTrick() == 1 {
		return QuickTricksForSecondHand(vs) >= target
	}
	return false
}
