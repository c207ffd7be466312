package dds

// Evaluator produces a cheap initial guess at the number of tricks the
// side on lead will take from a position, used only to pick a starting
// window for the binary search in [Solver.SolveInitialPosition]. A wrong
// guess costs search time, never correctness (spec §8).
type Evaluator interface {
	Estimate(vs *VirtualState) int
}

// QuickEvaluator is the default [Evaluator]: tricks already in hand
// (quick tricks), optionally refined by a share of the remaining tricks
// based on losing tricks, clamped to the tricks actually left to play.
type QuickEvaluator struct {
	// UseLosingTricks adds a losing-tricks-based share of the remaining
	// tricks on top of the raw quick-tricks count. Set by [WithLosingTricks].
	UseLosingTricks bool
}

// Estimate implements [Evaluator].
func (e QuickEvaluator) Estimate(vs *VirtualState) int {
	tricksLeft := vs.TricksLeft()
	quick := QuickTricksForLeader(vs)
	estimate := quick
	if e.UseLosingTricks {
		seat := vs.NextToPlay()
		partner := seat.Partner()
		ltc := LosingTricks(vs, seat) + LosingTricks(vs, partner)
		estimate = quick + (2*tricksLeft-ltc)/2
		if estimate < quick {
			estimate = quick
		}
	}
	if estimate < 0 {
		estimate = 0
	}
	if estimate > tricksLeft {
		estimate = tricksLeft
	}
	return estimate
}

// Config holds the Solver's optional refinements. The zero value runs a
// plain, correct negamax search with none of them; use [NewConfig] with
// the With* options to enable the ones that matter for performance.
type Config struct {
	useTranspositionTable    bool
	orderMoves               bool
	useQuickTricks           bool
	useQuickTricksSecondHand bool
	useLosingTricks          bool
	collectStatistics        bool
	preEstimate              Evaluator
}

// Option configures a [Config].
type Option func(*Config)

// WithTranspositionTable enables the transposition table (C9).
func WithTranspositionTable() Option {
	return func(c *Config) { c.useTranspositionTable = true }
}

// WithMoveOrdering enables move-ordering heuristics in move generation
// (C7), which only help the search converge faster and never change its
// result.
func WithMoveOrdering() Option {
	return func(c *Config) { c.orderMoves = true }
}

// WithQuickTricks enables the quick-tricks estimator (C8) as an
// additional pruning bound consulted at lead boundaries.
func WithQuickTricks() Option {
	return func(c *Config) { c.useQuickTricks = true }
}

// WithQuickTricksSecondHand enables the cheaper second-hand variant of
// the quick-tricks estimator.
func WithQuickTricksSecondHand() Option {
	return func(c *Config) { c.useQuickTricksSecondHand = true }
}

// WithLosingTricks enables the losing-tricks upper bound (C8) as a
// pruning shortcut at lead boundaries, and switches the default
// [QuickEvaluator] pre-estimate to use losing tricks. A custom
// [Evaluator] already set by [WithPreEstimate] is left unchanged; the
// in-search shortcut is enabled either way.
func WithLosingTricks() Option {
	return func(c *Config) {
		c.useLosingTricks = true
		if qe, ok := c.preEstimate.(QuickEvaluator); ok {
			qe.UseLosingTricks = true
			c.preEstimate = qe
		}
	}
}

// WithStatistics records a request for node-count and move-ordering
// statistics. The Solver collects them on every solve whether or not
// this option is set; see [Solver.Statistics].
func WithStatistics() Option {
	return func(c *Config) { c.collectStatistics = true }
}

// WithPreEstimate sets the [Evaluator] used to pick the initial search
// window. The default is [QuickEvaluator].
func WithPreEstimate(e Evaluator) Option {
	return func(c *Config) { c.preEstimate = e }
}

// NewConfig builds a [Config] with the transposition table, move ordering
// and both quick-tricks estimators enabled, losing tricks and statistics
// off, and [QuickEvaluator] as the pre-estimate, then applies opts.
func NewConfig(opts ...Option) Config {
	c := Config{
		useTranspositionTable:    true,
		orderMoves:               true,
		useQuickTricks:           true,
		useQuickTricksSecondHand: true,
		useLosingTricks:          false,
		preEstimate:              QuickEvaluator{},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
