package sim

import (
	"github.com/chewxy/math32"

	"github.com/powdersim/carve/game"
)

// updateCompression picks the contextual compression target, advances the
// spring toward it, and runs the jump charge/release cycle.
func (s *Simulator) updateCompression(state *RiderState, ctx *tickCtx) {
	s.updateJumpCharge(state, ctx)
	state.TargetCompression = s.compressionTarget(state, ctx)
	s.stepSpring(state, ctx.dt)
}

// compressionTarget resolves the precedence of the contexts that drive the
// rider's stance, from hard failures down to the neutral crouch.
func (s *Simulator) compressionTarget(state *RiderState, ctx *tickCtx) float32 {
	switch {
	case state.EdgeCaught:
		return CatchCompression
	case state.WashingOut:
		return game.Clamp32(0.3+0.3*state.WashOutIntensity, 0, MaxCompression)
	case ctx.popTransition:
		// Extension pop on a fresh edge switch; banked carve energy deepens
		// the extension.
		return math32.Max(MinCompression, -(PopBaseExtension + state.CarveEnergy*PopEnergyScale))
	case state.JumpCharging:
		return ChargeCrouchBase + ChargeCrouchScale*state.JumpCharge
	case state.OnGround && math32.Abs(state.EdgeAngle) > RailEdgeThreshold:
		return game.Clamp32(GCompressionBase+ctx.gForce*GCompressionScale, 0, MaxCompression)
	default:
		return NeutralCompression
	}
}

// stepSpring advances compression along a damped spring toward its target,
// clamped to the physical stance range.
func (s *Simulator) stepSpring(state *RiderState, dt float32) {
	accel := s.Options.CompressionSpring*(state.TargetCompression-state.Compression) -
		s.Options.CompressionDamping*state.CompressionVel
	state.CompressionVel += accel * dt
	state.Compression += state.CompressionVel * dt

	if state.Compression < MinCompression {
		state.Compression = MinCompression
		state.CompressionVel = 0
	} else if state.Compression > MaxCompression {
		state.Compression = MaxCompression
		state.CompressionVel = 0
	}
}

// updateJumpCharge accumulates charge while the jump input is held on the
// ground and fires the jump on release.
func (s *Simulator) updateJumpCharge(state *RiderState, ctx *tickCtx) {
	if ctx.input.JumpHeld && state.OnGround && !state.FailureActive() {
		if !state.JumpCharging {
			state.JumpCharging = true
			state.JumpCharge = 0
		}
		state.JumpCharge = math32.Min(state.JumpCharge+ctx.dt/s.Options.JumpChargeWindow, 1)
		return
	}

	if state.JumpCharging && !ctx.input.JumpHeld && state.OnGround && !state.FailureActive() {
		s.fireJump(state, ctx)
	}
	if !ctx.input.JumpHeld {
		state.JumpCharging = false
	}
}

// fireJump converts charge, stance, speed and banked carve energy into
// upward velocity. Carve energy is fully spent on the jump.
func (s *Simulator) fireJump(state *RiderState, ctx *tickCtx) {
	tailPress := math32.Max(0, -state.WeightForward)
	power := JumpBasePower +
		state.JumpCharge*JumpChargeBonus +
		tailPress*JumpTailBonus +
		ctx.hzSpeed*JumpSpeedFactor +
		state.CarveEnergy*JumpEnergyFactor +
		math32.Max(0, state.Compression)*JumpExtensionSnap

	vel := state.Vel
	vel[1] = power
	state.SetVel(vel)

	ctx.jump = &JumpEvent{Power: power, Charge: state.JumpCharge}
	s.Options.debugf("jump: power=%.2f charge=%.2f energy=%.2f", power, state.JumpCharge, state.CarveEnergy)

	state.CarveEnergy = 0
	state.JumpCharging = false
	state.JumpCharge = 0
	state.OnGround = false
	state.AirTime = 0
	state.SpinVel = state.HeadingVel
}
