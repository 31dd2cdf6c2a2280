package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/powdersim/carve/course"
	"github.com/powdersim/carve/game"
)

// RiderState holds the complete mutable state of a single rider. It is owned
// exclusively by the Simulator and mutated once per fixed tick; consumers
// only ever see TickResult snapshots.
type RiderState struct {
	Pos, LastPos mgl32.Vec3
	Vel, LastVel mgl32.Vec3

	Heading, LastHeading float32
	HeadingVel           float32

	EdgeAngle, LastEdgeAngle float32
	TargetEdgeAngle          float32
	// EdgeSign is the last committed edge side (-1, 0 or 1); a transition is
	// the committed sign flipping, however many ticks the crossing takes.
	EdgeSign          float32
	WeightForward     float32
	WeightSide        float32
	EffectivePressure float32
	Grip              float32

	CarveRailStrength   float32
	CarveHoldTime       float32
	CarveChainCount     int
	CarvePerfection     float32
	PeakEdgeAngle       float32
	CarveCommitment     float32
	CarveArcProgress    float32
	CarveEnergy         float32
	EdgeTransitionBoost float32

	RiskLevel    float32
	WobbleAmount float32

	Recovering   bool
	RecoveryTime float32

	WashingOut       bool
	WashOutIntensity float32
	WashOutDirection float32

	EdgeCaught        bool
	EdgeCatchSeverity float32
	EdgeCatchTime     float32

	Compression       float32
	CompressionVel    float32
	TargetCompression float32
	JumpCharging      bool
	JumpCharge        float32

	AirTime  float32
	Pitch    float32
	Roll     float32
	PitchVel float32
	RollVel  float32
	SpinVel  float32

	Grinding      bool
	GrindRail     course.RailHandle
	GrindProgress float32
	GrindBalance  float32
	GrindTime     float32

	GroundNormal mgl32.Vec3
	GroundHeight float32
	OnGround     bool
	WasGrounded  bool
}

// NewRiderState returns a rider state at spawn defaults.
func NewRiderState(spawn mgl32.Vec3) *RiderState {
	s := &RiderState{}
	s.init(spawn)
	return s
}

func (s *RiderState) init(spawn mgl32.Vec3) {
	*s = RiderState{
		Pos:          spawn,
		LastPos:      spawn,
		GroundNormal: mgl32.Vec3{0, 1, 0},
		GrindRail:    course.NoRail,
	}
}

// Reset restores every field to its spawn default. It is idempotent and
// carries nothing over; this is the only "cancellation" the model has.
func (s *RiderState) Reset(spawn mgl32.Vec3) {
	s.init(spawn)
}

// SetPos sets the position of the rider state.
func (s *RiderState) SetPos(newPos mgl32.Vec3) {
	s.LastPos = s.Pos
	s.Pos = newPos
}

// SetVel sets the velocity of the rider state.
func (s *RiderState) SetVel(newVel mgl32.Vec3) {
	s.LastVel = s.Vel
	s.Vel = newVel
}

// SetHeading sets the heading of the rider state, wrapped into (-pi, pi].
func (s *RiderState) SetHeading(newHeading float32) {
	s.LastHeading = s.Heading
	s.Heading = game.WrapAngle(newHeading)
}

// SetEdgeAngle sets the edge angle of the rider state, clamped to the given bound.
func (s *RiderState) SetEdgeAngle(newAngle, maxEdge float32) {
	s.LastEdgeAngle = s.EdgeAngle
	s.EdgeAngle = game.Clamp32(newAngle, -maxEdge, maxEdge)
}

// HzSpeed returns the current 2D (horizontal) speed.
func (s *RiderState) HzSpeed() float32 {
	return game.Vec3HzDist(s.Vel)
}

// Speed returns the full 3D speed.
func (s *RiderState) Speed() float32 {
	return s.Vel.Len()
}

// FailureActive returns true while either failure mode is overriding the
// rider. WashingOut and EdgeCaught are mutually exclusive by construction;
// this is the single place that reads them together.
func (s *RiderState) FailureActive() bool {
	return s.WashingOut || s.EdgeCaught
}

// sanitize substitutes any non-finite kinematic value with its last-known
// good counterpart (or zero), so upstream NaN/Inf can never persist across a
// tick and corrupt downstream state.
func (s *RiderState) sanitize() {
	s.Pos = game.SanitizeVec(s.Pos, s.LastPos)
	s.Vel = game.SanitizeVec(s.Vel, mgl32.Vec3{})
	s.Heading = game.SanitizeFloat(s.Heading, s.LastHeading)
	s.HeadingVel = game.SanitizeFloat(s.HeadingVel, 0)
	s.EdgeAngle = game.SanitizeFloat(s.EdgeAngle, 0)
	if !game.IsFinite32(s.GroundNormal[0]) || !game.IsFinite32(s.GroundNormal[1]) || !game.IsFinite32(s.GroundNormal[2]) {
		s.GroundNormal = mgl32.Vec3{0, 1, 0}
	}
	s.GrindBalance = game.SanitizeFloat(s.GrindBalance, 0)
	s.Pitch = game.SanitizeFloat(s.Pitch, 0)
	s.Roll = game.SanitizeFloat(s.Roll, 0)
}
