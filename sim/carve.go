package sim

import (
	"github.com/chewxy/math32"

	"github.com/powdersim/carve/game"
)

// updateCarveQuality accumulates rail engagement, hold time, commitment, arc
// progress and perfection while the rider is locked into a carve.
func (s *Simulator) updateCarveQuality(state *RiderState, ctx *tickCtx) {
	absEdge := math32.Abs(state.EdgeAngle)
	engaged := absEdge > RailEdgeThreshold && ctx.hzSpeed > CarveSpeedFloor && !state.FailureActive()

	if !engaged {
		state.CarveRailStrength = math32.Max(0, state.CarveRailStrength-RailDecayRate*ctx.dt)
		return
	}

	state.CarveHoldTime += ctx.dt
	state.PeakEdgeAngle = math32.Max(state.PeakEdgeAngle, absEdge)

	railTarget := game.Clamp32((absEdge-RailEdgeThreshold)/(s.Options.MaxEdgeAngle-RailEdgeThreshold), 0, 1)
	state.CarveRailStrength = game.Lerp32(state.CarveRailStrength, railTarget, game.Clamp32(RailRampRate*ctx.dt, 0, 1))

	// Perfection is a smoothed measure of how steadily the edge tracks its
	// target through the arc.
	stability := 1 - game.Clamp32(math32.Abs(state.EdgeAngle-state.TargetEdgeAngle)*PerfectionK, 0, 1)
	state.CarvePerfection = game.Lerp32(state.CarvePerfection, stability, game.Clamp32(PerfectionLerpRate*ctx.dt, 0, 1))

	state.CarveCommitment = game.Clamp32(state.CarveCommitment+CommitmentRate*ctx.dt, 0, 1)
	state.CarveArcProgress += math32.Abs(state.HeadingVel) * ctx.dt / FullArcRadians
}

// classifyTransition resolves a completed carve on its terminating edge
// flip. Clean carves grow the chain and bank energy plus a transition boost;
// sloppy ones shrink the chain. Either way the per-carve accumulators reset
// for the next arc.
func (s *Simulator) classifyTransition(state *RiderState, ctx *tickCtx) {
	if s.Options.Profile == ProfileClassic {
		s.resetCarve(state)
		return
	}
	if state.FailureActive() || ctx.hzSpeed <= CarveSpeedFloor {
		s.resetCarve(state)
		return
	}

	clean := state.PeakEdgeAngle > CleanMinPeakEdge &&
		state.CarveHoldTime > CleanMinHoldTime &&
		state.CarveArcProgress > CleanMinArc

	if clean {
		if state.CarveChainCount < MaxChainCount {
			state.CarveChainCount++
		}
		gained := state.PeakEdgeAngle * math32.Max(state.CarvePerfection, 0.2) * CarveEnergyGain * state.EffectivePressure * 0.5
		state.CarveEnergy = math32.Min(state.CarveEnergy+gained, MaxCarveEnergy)

		chainMult := 1 + ChainMultiplier*float32(state.CarveChainCount)
		boost := math32.Abs(ctx.edgeRate) * BoostViolenceScale * chainMult
		state.EdgeTransitionBoost = math32.Min(state.EdgeTransitionBoost+boost, MaxTransitionBoost)
		ctx.popTransition = true
		s.Options.debugf("clean carve: chain=%d energy=%.2f boost=%.2f", state.CarveChainCount, state.CarveEnergy, state.EdgeTransitionBoost)
	} else if state.CarveChainCount > 0 {
		state.CarveChainCount--
	}

	s.resetCarve(state)
}

// resetCarve clears the per-carve accumulators at a transition. Chain count
// and banked energy survive; they belong to the run, not the single arc.
func (s *Simulator) resetCarve(state *RiderState) {
	state.PeakEdgeAngle = 0
	state.CarveHoldTime = 0
	state.CarveRailStrength = 0
	state.CarveCommitment = 0
	state.CarveArcProgress = 0
}
