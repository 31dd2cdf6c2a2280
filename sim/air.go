package sim

import (
	"github.com/chewxy/math32"

	"github.com/powdersim/carve/game"
)

// updateAirborne integrates rotation and gravity while the rider is off the
// ground. Gravity ramps from a floaty base toward its cap as air time grows.
func (s *Simulator) updateAirborne(state *RiderState, ctx *tickCtx) {
	if state.WasGrounded {
		// Takeoff: air rotation starts from the ground spin.
		state.AirTime = 0
		state.SpinVel = state.HeadingVel
	}
	state.AirTime += ctx.dt

	gravity := math32.Min(BaseAirGravity+state.AirTime*AirGravityRamp, MaxAirGravity)
	vel := state.Vel
	vel[1] -= gravity * ctx.dt
	state.SetVel(vel)

	// Tucking (positive compression) amplifies spin authority.
	authority := SpinAccel * (1 + math32.Max(0, state.Compression))
	state.SpinVel += (ctx.input.Steer*authority - state.SpinVel*SpinDamping) * ctx.dt
	state.SetHeading(state.Heading + state.SpinVel*ctx.dt)
	state.HeadingVel = state.SpinVel

	// Forward lean pitches the nose down into a flip.
	state.PitchVel += ctx.input.Lean * PitchAccel * ctx.dt
	state.Pitch += state.PitchVel * ctx.dt

	// Roll is a style pose following steer; it also cosmetically tilts the
	// board edge while airborne.
	rollTarget := ctx.input.Steer * MaxAirRoll
	state.RollVel = (rollTarget - state.Roll) * AirRollRate
	state.Roll += state.RollVel * ctx.dt
	state.SetEdgeAngle(state.Roll*AirRollEdgeFactor, s.Options.MaxEdgeAngle)
}

// land scores the touchdown and applies its effects: speed bleed on hard
// slams, a stomp boost on clean fast landings, wobble on sketchy ones, and a
// compression impulse from the impact. All air rotation state resets.
func (s *Simulator) land(state *RiderState, ctx *tickCtx) {
	impact := state.Speed()
	hzSpeed := ctx.hzSpeed

	quality := float32(1)
	quality -= math32.Max(0, math32.Abs(state.Pitch)-LandPitchLimit) * PitchPenaltyScale
	quality -= math32.Max(0, math32.Abs(state.Roll)-LandRollLimit) * RollPenaltyScale
	if hzSpeed > LandHeadingMinSpeed {
		misalign := math32.Abs(game.AngleDelta(game.HeadingFromVec(state.Vel), state.Heading))
		quality -= math32.Max(0, misalign-LandHeadingLimit) * AlignPenaltyScale
	}
	quality = game.Clamp32(quality, 0, 1)

	vel := state.Vel
	if impact > HardImpactSpeed {
		bleed := game.Clamp32((impact-HardImpactSpeed)*(2-quality)*ImpactBleedScale, 0, MaxImpactBleed)
		vel[0] *= 1 - bleed
		vel[2] *= 1 - bleed
	}

	stomped := false
	if quality > StompMinQuality && hzSpeed > StompMinSpeed && state.AirTime > StompMinAirTime {
		fwd := game.HeadingVec(state.Heading)
		vel = vel.Add(fwd.Mul(StompBoost * quality))
		stomped = true
	}
	if quality < SketchyQuality {
		state.WobbleAmount += (SketchyQuality - quality) * SketchyWobble
		state.SetHeading(state.Heading + s.randSigned()*state.WobbleAmount*0.1)
	}

	// The impact drives the stance down through the spring; clean landings
	// absorb it with half the shove and recover faster.
	impulse := impact * ImpactCompressionRate
	if quality > StompMinQuality {
		impulse *= 0.5
	}
	state.CompressionVel += impulse

	vel[1] = 0
	state.SetVel(vel)

	ctx.landing = &LandingEvent{
		Quality:     quality,
		ImpactSpeed: impact,
		AirTime:     state.AirTime,
		Stomped:     stomped,
	}
	s.Options.debugf("landing: quality=%.2f impact=%.1f air=%.2fs", quality, impact, state.AirTime)

	state.HeadingVel = state.SpinVel * 0.5
	state.Pitch = 0
	state.Roll = 0
	state.PitchVel = 0
	state.RollVel = 0
	state.SpinVel = 0
	state.AirTime = 0
}
