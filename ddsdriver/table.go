// Package ddsdriver wraps the dds package's single-threaded, silent
// Solver with the things a host application actually wants around a
// double-dummy solve: structured logging, cancellation between solves,
// and concurrency across the independent strains of a full 5x4 result
// table. The dds package itself stays a pure computation (spec §5); this
// package is where that gets composed into something you'd run from a
// CLI or a service.
package ddsdriver

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/crai0n/bridge-buddy-sub000"
)

// Results is the full 5 (strain) x 4 (declarer) double-dummy result
// table: tricks taken by declarer's side, playing from the hand to
// declarer's left.
type Results [dds.NumStrains][dds.NumSeats]int

// Stats aggregates [dds.Statistics] across every strain of a solve.
type Stats struct {
	NodesVisited      int
	TranspositionHits int
	TranspositionSize int
}

// Table solves every (strain, declarer) combination of a deal.
type Table struct {
	log        zerolog.Logger
	opts       []dds.Option
	concurrent bool
}

// NewTable builds a Table that logs to log and configures each Solver
// with opts.
func NewTable(log zerolog.Logger, opts ...dds.Option) *Table {
	return &Table{log: log, opts: opts}
}

// WithConcurrency runs the five strains on separate goroutines (each
// strain gets its own Solver and transposition table, since a table is
// only valid within one strain). Safe because dds.VirtualState and
// dds.Solver hold no shared mutable state across instances.
func (t *Table) WithConcurrency(on bool) *Table {
	t.concurrent = on
	return t
}

// Solve computes the full result table for deal. ctx is checked between
// strains (sequential mode) or at the start of each strain's goroutine
// (concurrent mode); it is never checked inside a single strain's search,
// matching spec §5's "single synchronous computation" contract for the
// core solve itself.
func (t *Table) Solve(ctx context.Context, deal dds.Deal) (Results, Stats, error) {
	hands := deal.Trackers()
	n := deal.CardsPerHand()

	var results Results
	var mu sync.Mutex
	var agg Stats

	if !t.concurrent {
		for strain := dds.Strain(0); strain < dds.NumStrains; strain++ {
			if err := ctx.Err(); err != nil {
				return results, agg, err
			}
			if err := t.solveStrain(ctx, strain, hands, n, &results, &mu, &agg); err != nil {
				return results, agg, err
			}
		}
		return results, agg, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for strain := dds.Strain(0); strain < dds.NumStrains; strain++ {
		strain := strain
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return t.solveStrain(gctx, strain, hands, n, &results, &mu, &agg)
		})
	}
	if err := g.Wait(); err != nil {
		return results, agg, err
	}
	return results, agg, nil
}

// solveStrain solves all four initial positions of one strain. Per
// spec §10, cancellation is only safe to check between solves, never
// inside one (a mid-recursion abort would leave the solver's
// transposition table in an inconsistent state), so ctx is checked
// between declarers here, not just between strains in Solve.
func (t *Table) solveStrain(ctx context.Context, strain dds.Strain, hands [dds.NumSeats]dds.CardTracker, n int, results *Results, mu *sync.Mutex, agg *Stats) error {
	solver := dds.NewSolver(t.opts...)
	t.log.Debug().Stringer("strain", strain).Msg("solving strain")
	for _, declarer := range dds.Seats {
		if err := ctx.Err(); err != nil {
			return err
		}
		leader := declarer.LHO()
		vs := dds.NewVirtualState(hands, leader, strain)
		leaderTricks := solver.SolveInitialPosition(vs)
		declarerTricks := n - leaderTricks
		results[strain][declarer] = declarerTricks
	}
	stats := solver.Statistics()
	t.log.Debug().
		Stringer("strain", strain).
		Int("nodes", stats.NodesVisited).
		Int("tt-hits", stats.TranspositionHit).
		Int("tt-entries", solver.TranspositionTableLen()).
		Msg("strain solved")

	mu.Lock()
	agg.NodesVisited += stats.NodesVisited
	agg.TranspositionHits += stats.TranspositionHit
	agg.TranspositionSize += solver.TranspositionTableLen()
	mu.Unlock()
	return nil
}

// String renders the table in the usual NT/S/H/D/C by N/E/S/W grid.
func (r Results) String() string {
	out := "     N  E  S  W\n"
	for strain := dds.Strain(0); strain < dds.NumStrains; strain++ {
		out += fmt.Sprintf("%-4s", strain.String())
		for _, seat := range dds.Seats {
			out += fmt.Sprintf(" %2d", r[strain][seat])
		}
		out += "\n"
	}
	return out
}
