// Command ddsctl solves contract bridge double-dummy problems from the
// command line: given a deal, it prints the number of tricks each seat
// can guarantee as declarer in each strain.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/crai0n/bridge-buddy-sub000"
	"github.com/crai0n/bridge-buddy-sub000/ddsdriver"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "ddsctl:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("ddsctl", flag.ContinueOnError)
	dealStr := fs.String("deal", "", `PBN-style deal, e.g. "N:AK..K.Q E:.AQ.Q.K S:.KT.A.A W:Q.2.2.2"`)
	seed := fs.Int64("seed", 0, "deal n random cards per hand instead of -deal, seeded by this value")
	cards := fs.Int("cards", 13, "cards per hand when dealing randomly (-seed)")
	verbose := fs.Bool("v", false, "log solve progress")
	concurrent := fs.Bool("concurrent", true, "solve strains concurrently")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if !*verbose {
		logger = logger.Level(zerolog.Disabled)
	}

	deal, err := resolveDeal(*dealStr, *seed, *cards)
	if err != nil {
		return err
	}

	table := ddsdriver.NewTable(logger, dds.WithTranspositionTable(), dds.WithMoveOrdering(),
		dds.WithQuickTricks(), dds.WithQuickTricksSecondHand()).WithConcurrency(*concurrent)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	results, stats, err := table.Solve(ctx, deal)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	fmt.Print(results.String())
	p := message.NewPrinter(language.English)
	p.Printf("%d nodes visited, %d transposition hits, %d positions cached\n",
		stats.NodesVisited, stats.TranspositionHits, stats.TranspositionSize)
	return nil
}

func resolveDeal(dealStr string, seed int64, cards int) (dds.Deal, error) {
	if dealStr != "" {
		return dds.ParseDeal(dealStr)
	}
	rng := rand.New(rand.NewSource(seed))
	return dds.NewDealFromRNG(rng, cards)
}
