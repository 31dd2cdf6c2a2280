package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// airborneState places a falling rider just above the test ground plane so the
// next tick is the touchdown tick.
func airborneState(vel mgl32.Vec3, airTime float32) *RiderState {
	state := NewRiderState(mgl32.Vec3{0, 0.2, 0})
	state.SetVel(vel)
	state.OnGround = false
	state.AirTime = airTime
	return state
}

func TestAirborneGravityAndSpin(t *testing.T) {
	s, _ := newTestSim(DefaultOptions(), 1)
	state := NewRiderState(mgl32.Vec3{0, 10, 0})
	state.SetVel(mgl32.Vec3{0, 0, 5})
	state.OnGround = false

	for tick := 0; tick < 30; tick++ {
		s.Simulate(state, InputState{Steer: 1}, testDt)
	}
	if state.OnGround {
		t.Fatalf("rider grounded ten units above the plane")
	}
	if state.AirTime <= 0.4 {
		t.Fatalf("air time did not accumulate, got %v", state.AirTime)
	}
	if state.Vel.Y() >= 0 {
		t.Fatalf("gravity never pulled the rider down, vel %v", state.Vel)
	}
	if state.SpinVel <= 0 || state.Heading <= 0 {
		t.Fatalf("steer in the air should spin the rider, spin %v heading %v", state.SpinVel, state.Heading)
	}
}

// TestJumpCycle charges and releases a jump on flat ground and follows the
// whole flight: the release tick must leave the ground, the rider must stay
// airborne for real flight time, and the touchdown must publish a landing.
func TestJumpCycle(t *testing.T) {
	s, _ := newTestSim(DefaultOptions(), 1)
	state := groundedState(mgl32.Vec3{0, 0, 10})
	s.Simulate(state, InputState{}, testDt)

	for tick := 0; tick < 36; tick++ {
		s.Simulate(state, InputState{JumpHeld: true}, testDt)
	}
	if !state.JumpCharging || state.JumpCharge != 1 {
		t.Fatalf("full hold did not reach full charge, got %v", state.JumpCharge)
	}

	release := s.Simulate(state, InputState{}, testDt)
	if release.Jump == nil {
		t.Fatalf("release tick published no jump event")
	}
	if release.OnGround || state.Vel.Y() <= 0 {
		t.Fatalf("rider still grounded on the release tick, velY=%v", state.Vel.Y())
	}

	airTicks := 0
	var landing *LandingEvent
	for tick := 0; tick < 300 && landing == nil; tick++ {
		r := s.Simulate(state, InputState{}, testDt)
		if !r.OnGround {
			airTicks++
		}
		landing = r.Landing
	}
	if landing == nil {
		t.Fatalf("jump never came back down")
	}
	if airTicks < 10 {
		t.Fatalf("only %d airborne ticks after a full-power jump", airTicks)
	}
	if landing.AirTime <= StompMinAirTime {
		t.Fatalf("landing reported only %vs of air for a full jump", landing.AirTime)
	}
}

// TestStompLanding lands flat, aligned and fast after a long air and expects
// the stomp: full quality and a forward boost instead of a speed bleed.
func TestStompLanding(t *testing.T) {
	s, _ := newTestSim(DefaultOptions(), 1)
	state := airborneState(mgl32.Vec3{0, -18, 10}, 1.0)

	result := s.Simulate(state, InputState{}, testDt)
	if result.Landing == nil {
		t.Fatalf("touchdown tick produced no landing event")
	}
	if result.Landing.Quality <= StompMinQuality {
		t.Fatalf("flat aligned landing scored %v", result.Landing.Quality)
	}
	if !result.Landing.Stomped {
		t.Fatalf("fast clean landing after %vs of air did not stomp", result.Landing.AirTime)
	}
	if !result.OnGround {
		t.Fatalf("rider not grounded after landing")
	}
	if state.CompressionVel <= 0 {
		t.Fatalf("impact did not drive the compression spring")
	}
}

// TestPitchedLandingPenalty comes down nose-heavy and expects the exact
// over-limit penalty, no stomp, and the air rotation fully cleared.
func TestPitchedLandingPenalty(t *testing.T) {
	s, _ := newTestSim(DefaultOptions(), 1)
	state := airborneState(mgl32.Vec3{0, -18, 10}, 1.0)
	state.Pitch = 0.9
	state.SpinVel = 2

	result := s.Simulate(state, InputState{}, testDt)
	if result.Landing == nil {
		t.Fatalf("touchdown tick produced no landing event")
	}
	// 1 - (0.9 - 0.5) * 0.8
	if result.Landing.Quality < 0.67 || result.Landing.Quality > 0.69 {
		t.Fatalf("expected quality 0.68 for a 0.9 rad pitch, got %v", result.Landing.Quality)
	}
	if result.Landing.Stomped {
		t.Fatalf("a 0.68 landing must not stomp")
	}
	if state.Pitch != 0 || state.Roll != 0 || state.SpinVel != 0 || state.AirTime != 0 {
		t.Fatalf("air rotation state not cleared on landing: %+v", state)
	}
}

// TestHardCrookedLandingBleedsSpeed slams down misaligned and checks the
// impact bleed scales with the poor quality.
func TestHardCrookedLandingBleedsSpeed(t *testing.T) {
	s, _ := newTestSim(DefaultOptions(), 1)
	state := airborneState(mgl32.Vec3{0, -18, 10}, 1.0)
	state.Pitch = 1.2
	before := state.HzSpeed()

	result := s.Simulate(state, InputState{}, testDt)
	if result.Landing == nil {
		t.Fatalf("touchdown tick produced no landing event")
	}
	if state.HzSpeed() >= before {
		t.Fatalf("hard crooked landing kept all its speed, %v -> %v", before, state.HzSpeed())
	}
}
