package sim

import "github.com/go-gl/mathgl/mgl32"

// TickOutcome describes which path the simulator took for the current tick.
type TickOutcome uint8

const (
	TickOutcomeNormal TickOutcome = iota
	TickOutcomeGrinding
	TickOutcomeReset
)

// LandingEvent is published on the single tick the rider touches down.
type LandingEvent struct {
	Quality     float32
	ImpactSpeed float32
	AirTime     float32
	Stomped     bool
}

// JumpEvent is published on the single tick a charged jump releases.
type JumpEvent struct {
	Power  float32
	Charge float32
}

// GrindEndEvent is published on the single tick a grind ends.
type GrindEndEvent struct {
	Success  bool
	Duration float32
	Progress float32
}

// TickResult is the read-only snapshot published after every tick for the
// scoring, audio and camera consumers. Event pointers are nil except on the
// tick their event fired.
type TickResult struct {
	Position      mgl32.Vec3
	PositionDelta mgl32.Vec3
	Velocity      mgl32.Vec3
	Heading       float32
	EdgeAngle     float32
	Pitch, Roll   float32
	Compression   float32
	Speed         float32
	OnGround      bool

	Grip              float32
	GForce            float32
	CarveRailStrength float32
	CarvePerfection   float32
	CarveChainCount   int
	CarveEnergy       float32

	RiskLevel         float32
	WobbleAmount      float32
	WashingOut        bool
	WashOutIntensity  float32
	EdgeCaught        bool
	EdgeCatchSeverity float32
	Recovering        bool

	Grinding      bool
	GrindProgress float32
	GrindBalance  float32

	EdgeTransitionBoost float32

	Landing  *LandingEvent
	Jump     *JumpEvent
	GrindEnd *GrindEndEvent

	Outcome TickOutcome
}

func (s *Simulator) resultFromState(state *RiderState, ctx *tickCtx, outcome TickOutcome) TickResult {
	return TickResult{
		Position:      state.Pos,
		PositionDelta: state.Pos.Sub(state.LastPos),
		Velocity:      state.Vel,
		Heading:       state.Heading,
		EdgeAngle:     state.EdgeAngle,
		Pitch:         state.Pitch,
		Roll:          state.Roll,
		Compression:   state.Compression,
		Speed:         state.HzSpeed(),
		OnGround:      state.OnGround,

		Grip:              state.Grip,
		GForce:            ctx.gForce,
		CarveRailStrength: state.CarveRailStrength,
		CarvePerfection:   state.CarvePerfection,
		CarveChainCount:   state.CarveChainCount,
		CarveEnergy:       state.CarveEnergy,

		RiskLevel:         state.RiskLevel,
		WobbleAmount:      state.WobbleAmount,
		WashingOut:        state.WashingOut,
		WashOutIntensity:  state.WashOutIntensity,
		EdgeCaught:        state.EdgeCaught,
		EdgeCatchSeverity: state.EdgeCatchSeverity,
		Recovering:        state.Recovering,

		Grinding:      state.Grinding,
		GrindProgress: state.GrindProgress,
		GrindBalance:  state.GrindBalance,

		EdgeTransitionBoost: state.EdgeTransitionBoost,

		Landing:  ctx.landing,
		Jump:     ctx.jump,
		GrindEnd: ctx.grindEnd,

		Outcome: outcome,
	}
}
