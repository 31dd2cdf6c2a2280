package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// TestWashOutAtLowSpeedDeepEdge buries the edge at crawling speed, which puts
// the rider far past the supportable band and must wash out. The wash-out has
// to decay back out on its own, zero the chain and hand off to recovery.
func TestWashOutAtLowSpeedDeepEdge(t *testing.T) {
	s, _ := newTestSim(DefaultOptions(), 5)
	state := groundedState(mgl32.Vec3{0, 0, 3})
	state.CarveChainCount = 4

	washTick := -1
	for tick := 0; tick < 120; tick++ {
		s.Simulate(state, InputState{Steer: 1}, testDt)
		if state.WashingOut {
			washTick = tick
			break
		}
	}
	if washTick < 0 {
		t.Fatalf("deep edge at speed 3 never washed out")
	}
	if state.WashOutIntensity <= 0 || state.WashOutIntensity > 1 {
		t.Fatalf("wash-out intensity %v outside (0, 1]", state.WashOutIntensity)
	}
	if state.WashOutDirection != 1 {
		t.Fatalf("expected wash-out to follow the edge sign, direction %v", state.WashOutDirection)
	}

	for tick := 0; tick < 120 && state.WashingOut; tick++ {
		s.Simulate(state, InputState{Steer: 1}, testDt)
	}
	if state.WashingOut {
		t.Fatalf("wash-out never decayed out")
	}
	if !state.Recovering {
		t.Fatalf("expected a recovery window after the wash-out")
	}
	if state.CarveChainCount != 0 {
		t.Fatalf("wash-out must zero the carve chain, got %d", state.CarveChainCount)
	}

	// The steer is still buried, but recovery blocks a re-trigger.
	for tick := 0; tick < 20; tick++ {
		s.Simulate(state, InputState{Steer: 1}, testDt)
		if state.FailureActive() {
			t.Fatalf("tick %d: failure re-triggered inside the recovery window", tick)
		}
	}
}

// TestEdgeCatchOnViolentFlip scales the draw up far enough that a violent
// transition at speed is a certain catch, then checks the catch override and
// its expiry into recovery.
func TestEdgeCatchOnViolentFlip(t *testing.T) {
	opts := DefaultOptions()
	opts.EdgeCatchRiskThreshold = 0.01
	opts.EdgeCatchDrawScale = 10
	s, _ := newTestSim(opts, 9)
	state := groundedState(mgl32.Vec3{0, 0, 20})

	driveCarve(s, state, 1, 20)
	before := state.HzSpeed()

	caught := false
	for tick := 0; tick < 30; tick++ {
		s.Simulate(state, InputState{Steer: -1}, testDt)
		if state.EdgeCaught {
			caught = true
			break
		}
	}
	if !caught {
		t.Fatalf("violent flip at speed 20 never caught with a x10 draw scale")
	}
	if state.EdgeCatchSeverity <= 0 || state.EdgeCatchSeverity > 1 {
		t.Fatalf("catch severity %v outside (0, 1]", state.EdgeCatchSeverity)
	}
	if state.EdgeCatchTime <= 0 {
		t.Fatalf("catch entered with no duration")
	}

	for tick := 0; tick < 120 && state.EdgeCaught; tick++ {
		s.Simulate(state, InputState{}, testDt)
	}
	if state.EdgeCaught {
		t.Fatalf("edge catch never expired")
	}
	if !state.Recovering {
		t.Fatalf("expected a recovery window after the catch")
	}
	if state.HzSpeed() >= before {
		t.Fatalf("catch braking did not bleed speed, %v -> %v", before, state.HzSpeed())
	}
}
