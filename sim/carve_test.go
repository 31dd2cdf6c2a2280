package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// driveCarve holds the given steer for a number of ticks.
func driveCarve(s *Simulator, state *RiderState, steer float32, ticks int) {
	for i := 0; i < ticks; i++ {
		s.Simulate(state, InputState{Steer: steer}, testDt)
	}
}

// TestCleanCarveIncrementsChain rides a deep, held carve at speed and checks
// the terminating transition classifies it clean, incrementing the chain by
// exactly one.
func TestCleanCarveIncrementsChain(t *testing.T) {
	opts := DefaultOptions()
	// Disable the catch draw so the flip always completes; the tunable
	// exists exactly for this.
	opts.EdgeCatchRiskThreshold = 1
	s, _ := newTestSim(opts, 1)
	state := groundedState(mgl32.Vec3{0, 0, 15})

	driveCarve(s, state, 0.7, 36) // ~0.6s hold, peak edge ~0.8 rad
	if state.PeakEdgeAngle <= 0.5 {
		t.Fatalf("test setup: peak edge %v never exceeded the clean threshold", state.PeakEdgeAngle)
	}
	if state.CarveHoldTime <= 0.3 {
		t.Fatalf("test setup: hold time %v too short to classify", state.CarveHoldTime)
	}

	driveCarve(s, state, -0.7, 10)
	if state.CarveChainCount != 1 {
		t.Fatalf("expected chain count 1 after a clean transition, got %d", state.CarveChainCount)
	}
	if state.CarveEnergy <= 0 {
		t.Fatalf("clean carve banked no energy")
	}
	if state.PeakEdgeAngle >= 0.5 {
		t.Fatalf("per-carve accumulators not reset at transition, peak %v", state.PeakEdgeAngle)
	}
}

func TestSloppyCarveDecrementsChain(t *testing.T) {
	opts := DefaultOptions()
	opts.EdgeCatchRiskThreshold = 1
	s, _ := newTestSim(opts, 1)
	state := groundedState(mgl32.Vec3{0, 0, 15})
	state.CarveChainCount = 3

	// Flip before any hold time accumulates: too short to be clean.
	driveCarve(s, state, 0.7, 8)
	driveCarve(s, state, -0.7, 20)
	if state.CarveChainCount != 2 {
		t.Fatalf("expected sloppy transition to cost one chain, got %d", state.CarveChainCount)
	}
}

// TestCommitmentBailout aborts a deep carve mid-arc by releasing steer and
// expects the one-shot speed and chain penalty.
func TestCommitmentBailout(t *testing.T) {
	opts := DefaultOptions()
	opts.EdgeCatchRiskThreshold = 1
	s, _ := newTestSim(opts, 1)
	state := groundedState(mgl32.Vec3{0, 0, 15})
	state.CarveChainCount = 5

	driveCarve(s, state, 0.7, 20)
	// Force the bailout shape: committed deep but barely into the arc.
	state.CarveCommitment = 0.9
	state.CarveArcProgress = 0.1
	before := state.HzSpeed()

	driveCarve(s, state, 0, 30)
	if state.CarveChainCount != 3 {
		t.Fatalf("expected bailout to cost %d chain, got %d", BailoutChainPenalty, state.CarveChainCount)
	}
	if state.HzSpeed() >= before*(1-BailoutSpeedPenalty/2) {
		t.Fatalf("expected a one-shot speed penalty, %v -> %v", before, state.HzSpeed())
	}
}

func TestTransitionBoostDecays(t *testing.T) {
	opts := DefaultOptions()
	opts.EdgeCatchRiskThreshold = 1
	s, _ := newTestSim(opts, 1)
	state := groundedState(mgl32.Vec3{0, 0, 15})

	driveCarve(s, state, 0.7, 36)
	driveCarve(s, state, -0.7, 8)
	boost := state.EdgeTransitionBoost
	if boost <= 0 {
		t.Fatalf("expected a transition boost after a clean flip")
	}
	driveCarve(s, state, -0.7, 20)
	if state.EdgeTransitionBoost >= boost {
		t.Fatalf("transition boost did not decay: %v -> %v", boost, state.EdgeTransitionBoost)
	}
}
