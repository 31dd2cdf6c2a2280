package sim

import (
	"github.com/chewxy/math32"

	"github.com/powdersim/carve/game"
)

// updateFailure advances the failure state machine for a grounded tick:
// risk accrual, wash-out and edge-catch triggers, the per-tick overrides of
// an active failure, recovery, and the commitment bailout penalty.
//
// WashingOut and EdgeCaught are mutually exclusive; every trigger below
// checks FailureActive before entering either state.
func (s *Simulator) updateFailure(state *RiderState, ctx *tickCtx) {
	if s.Options.Profile == ProfileClassic {
		return
	}

	if state.Recovering {
		state.RecoveryTime -= ctx.dt
		if state.RecoveryTime <= 0 {
			state.Recovering = false
			state.RecoveryTime = 0
		}
	}

	s.accrueRisk(state, ctx)

	switch {
	case state.WashingOut:
		s.tickWashOut(state, ctx)
	case state.EdgeCaught:
		s.tickEdgeCatch(state, ctx)
	default:
		if ctx.edgeFlipped {
			s.tryEdgeCatch(state, ctx)
		}
		if !state.FailureActive() {
			s.tryWashOut(state, ctx)
		}
		if !state.FailureActive() {
			s.checkBailout(state, ctx)
		}
	}
}

// accrueRisk lerps the risk level toward a weighted blend of speed, edge
// depth, grip deficit and band mismatch, and injects wobble once it climbs
// past the warning threshold. Risk above the near-miss level with no failure
// active forces a recovery window instead of a crash.
func (s *Simulator) accrueRisk(state *RiderState, ctx *tickCtx) {
	speedFactor := game.Clamp32((ctx.hzSpeed-RiskSpeedFloor)/RiskSpeedRange, 0, 1)
	edgeDepth := math32.Abs(state.EdgeAngle) / s.Options.MaxEdgeAngle
	gripDeficit := 1 - state.Grip
	mismatch := game.Clamp32(ctx.edgeExcess+ctx.edgeLack, 0, 1)

	target := game.Clamp32(0.35*speedFactor+0.25*edgeDepth+0.2*gripDeficit+0.3*mismatch, 0, 1)
	if state.Recovering {
		target *= RecoveryRiskDamping
	}
	state.RiskLevel = game.Lerp32(state.RiskLevel, target, game.Clamp32(RiskLerpRate*ctx.dt, 0, 1))

	if state.RiskLevel > WobbleRiskThreshold && !state.FailureActive() {
		state.WobbleAmount = (state.RiskLevel - WobbleRiskThreshold) * WobbleScale
		state.SetHeading(state.Heading + s.randSigned()*state.WobbleAmount*ctx.dt)
	} else {
		state.WobbleAmount = math32.Max(0, state.WobbleAmount-2*ctx.dt)
	}

	if state.RiskLevel > NearMissRiskLevel && !state.FailureActive() && !state.Recovering {
		// The near-miss save: ride it out instead of crashing.
		state.Recovering = true
		state.RecoveryTime = NearMissRecoveryTime
		state.RiskLevel *= 0.5
		s.Options.debugf("near-miss save at speed %.1f", ctx.hzSpeed)
	}
}

// tryWashOut enters WashingOut when the speed-edge band deficit exceeds the
// threshold. Intensity scales with the deficit; direction follows the edge
// sign with a random tie-break when riding flat.
func (s *Simulator) tryWashOut(state *RiderState, ctx *tickCtx) {
	if state.Recovering {
		return
	}
	deficit := math32.Max(ctx.edgeExcess, ctx.edgeLack)
	if deficit <= WashOutDeficitThreshold {
		return
	}

	state.WashingOut = true
	state.WashOutIntensity = math32.Min(deficit*WashOutIntensityScale, 1)
	state.WashOutDirection = game.Sign32(state.EdgeAngle)
	if state.WashOutDirection == 0 {
		state.WashOutDirection = game.Sign32(s.randSigned())
		if state.WashOutDirection == 0 {
			state.WashOutDirection = 1
		}
	}
	s.Options.debugf("wash-out: deficit=%.2f intensity=%.2f", deficit, state.WashOutIntensity)
}

// tickWashOut applies the wash-out override: lateral slide, heading
// perturbation, forced flat edge and speed bleed, with the intensity decaying
// linearly until the rider recovers.
func (s *Simulator) tickWashOut(state *RiderState, ctx *tickCtx) {
	intensity := state.WashOutIntensity

	side := game.HeadingRight(state.Heading).Mul(state.WashOutDirection)
	vel := state.Vel
	vel = vel.Add(side.Mul(WashOutSlideForce * intensity * ctx.dt))

	perturb := state.WashOutDirection * WashOutHeadingPerturb * intensity
	state.SetHeading(state.Heading + (perturb+s.randSigned()*0.4*intensity)*ctx.dt)

	state.SetEdgeAngle(game.Approach(state.EdgeAngle, 0, WashOutEdgeFlattenRate*ctx.dt), s.Options.MaxEdgeAngle)

	bleed := game.Clamp32(WashOutSpeedBleed*intensity*ctx.dt, 0, 1)
	vel[0] *= 1 - bleed
	vel[2] *= 1 - bleed
	state.SetVel(vel)

	state.WashOutIntensity -= WashOutDecayRate * ctx.dt
	if state.WashOutIntensity <= WashOutExitIntensity {
		state.WashingOut = false
		state.WashOutIntensity = 0
		state.WashOutDirection = 0
		state.CarveChainCount = 0
		state.Recovering = true
		state.RecoveryTime = RecoveryDuration
	}
}

// tryEdgeCatch runs the single Bernoulli draw for a catch at an edge
// transition. Risk blends transition violence, heading/velocity misalignment
// and prior carve commitment, scaled by speed; the injected RNG decides.
func (s *Simulator) tryEdgeCatch(state *RiderState, ctx *tickCtx) {
	if state.Recovering || ctx.hzSpeed < EdgeCatchSpeedFloor {
		return
	}

	violence := game.Clamp32(math32.Abs(ctx.edgeRate)/EdgeCatchViolenceNorm, 0, 1)
	misalign := game.Clamp32(math32.Abs(game.AngleDelta(game.HeadingFromVec(state.Vel), state.Heading)), 0, 1)
	speedScale := game.Clamp32(ctx.hzSpeed/20, 0, 1.3)

	risk := (EdgeCatchViolenceWeight*violence +
		EdgeCatchMisalignWeight*misalign +
		EdgeCatchCommitWeight*state.CarveCommitment) * speedScale

	if risk <= s.Options.EdgeCatchRiskThreshold {
		return
	}
	if s.rng.Float32() >= risk*s.Options.EdgeCatchDrawScale {
		return
	}

	state.EdgeCaught = true
	state.EdgeCatchSeverity = game.Clamp32(risk*1.2, 0, 1)
	state.EdgeCatchTime = EdgeCatchBaseDuration + EdgeCatchDurationScale*state.EdgeCatchSeverity
	s.Options.debugf("edge catch: risk=%.2f severity=%.2f", risk, state.EdgeCatchSeverity)
}

// tickEdgeCatch applies the catch override: heavy braking, lateral stumble,
// fast edge flattening. Expiry hands off to the recovery window during which
// risk accrual is damped and no new failure may trigger.
func (s *Simulator) tickEdgeCatch(state *RiderState, ctx *tickCtx) {
	vel := state.Vel
	brake := game.Clamp32(EdgeCatchBrake*ctx.dt, 0, 1)
	vel[0] *= 1 - brake
	vel[2] *= 1 - brake

	side := game.HeadingRight(state.Heading)
	vel = vel.Add(side.Mul(s.randSigned() * state.EdgeCatchSeverity * EdgeCatchStumbleForce * ctx.dt))
	state.SetVel(vel)

	state.SetEdgeAngle(game.Approach(state.EdgeAngle, 0, EdgeCatchFlattenRate*ctx.dt), s.Options.MaxEdgeAngle)

	state.EdgeCatchTime -= ctx.dt
	if state.EdgeCatchTime <= 0 {
		state.EdgeCaught = false
		state.EdgeCatchSeverity = 0
		state.EdgeCatchTime = 0
		state.Recovering = true
		state.RecoveryTime = RecoveryDuration
	}
}

// checkBailout applies the one-shot penalty for aborting a deep carve: high
// commitment with little arc progress when the edge returns to flat costs
// speed and chain.
func (s *Simulator) checkBailout(state *RiderState, ctx *tickCtx) {
	// Passing through flat on the way to the other edge is a transition, not
	// a bailout; the penalty only applies when the steer is actually let go.
	returnedFlat := math32.Abs(state.EdgeAngle) < FlatEdgeEpsilon && math32.Abs(state.LastEdgeAngle) >= FlatEdgeEpsilon
	if !returnedFlat || math32.Abs(state.TargetEdgeAngle) >= FlatEdgeEpsilon*2 {
		return
	}
	if state.CarveCommitment < BailoutCommitment || state.CarveArcProgress >= CleanMinArc {
		state.CarveCommitment = 0
		state.CarveArcProgress = 0
		return
	}

	vel := state.Vel
	vel[0] *= 1 - BailoutSpeedPenalty
	vel[2] *= 1 - BailoutSpeedPenalty
	state.SetVel(vel)
	state.CarveChainCount = max(state.CarveChainCount-BailoutChainPenalty, 0)
	state.CarveCommitment = 0
	state.CarveArcProgress = 0
	s.Options.debugf("commitment bailout: chain=%d", state.CarveChainCount)
}
