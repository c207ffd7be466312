package dds

import "testing"

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig()
	if !c.useTranspositionTable || !c.orderMoves || !c.useQuickTricks || !c.useQuickTricksSecondHand {
		t.Errorf("NewConfig() defaults = %+v, want every heuristic but losing-tricks enabled", c)
	}
	if c.useLosingTricks {
		t.Errorf("NewConfig() should default losing-tricks off")
	}
	if _, ok := c.preEstimate.(QuickEvaluator); !ok {
		t.Errorf("NewConfig() preEstimate = %T, want QuickEvaluator", c.preEstimate)
	}
}

func TestWithLosingTricksFlipsDefaultEvaluator(t *testing.T) {
	c := NewConfig(WithLosingTricks())
	if !c.useLosingTricks {
		t.Errorf("WithLosingTricks() did not set useLosingTricks")
	}
	qe, ok := c.preEstimate.(QuickEvaluator)
	if !ok {
		t.Fatalf("preEstimate = %T, want QuickEvaluator", c.preEstimate)
	}
	if !qe.UseLosingTricks {
		t.Errorf("WithLosingTricks() did not flip QuickEvaluator.UseLosingTricks")
	}
}

// customEvaluator is a stand-in Evaluator to confirm WithPreEstimate wins
// over the default and that WithLosingTricks leaves a custom evaluator
// alone.
type customEvaluator struct{}

func (customEvaluator) Estimate(vs *VirtualState) int { return 0 }

func TestWithLosingTricksLeavesCustomEvaluatorAlone(t *testing.T) {
	c := NewConfig(WithPreEstimate(customEvaluator{}), WithLosingTricks())
	if !c.useLosingTricks {
		t.Errorf("WithLosingTricks() did not set useLosingTricks")
	}
	if _, ok := c.preEstimate.(customEvaluator); !ok {
		t.Errorf("preEstimate = %T, want customEvaluator unchanged", c.preEstimate)
	}
}

func TestQuickEvaluatorClampsToTricksLeft(t *testing.T) {
	hands := handsFromSuits(t, "SA SK", "H2 H3", "D2 D3", "C2 C3")
	vs := NewVirtualState(hands, North, NoTrump)
	e := QuickEvaluator{}
	if got, want := e.Estimate(vs), 2; got != want {
		t.Errorf("Estimate() = %d, want %d (clamped to tricks left)", got, want)
	}
}
