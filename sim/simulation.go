package sim

import (
	"github.com/powdersim/carve/game"
)

// Simulate runs one fixed simulation tick and returns the resulting snapshot.
// The state is mutated in place; dt is clamped against host loop jitter.
func (s *Simulator) Simulate(state *RiderState, input InputState, dt float32) TickResult {
	if state == nil {
		return TickResult{}
	}

	state.sanitize()
	dt = game.Clamp32(game.SanitizeFloat(dt, 0), 0, MaxTickDelta)

	ctx := &tickCtx{
		dt:    dt,
		input: input.sanitized(),
	}
	if dt == 0 {
		return s.resultFromState(state, ctx, TickOutcomeNormal)
	}

	if state.Pos.Y() < s.Options.WorldFloorY {
		s.Options.debugf("rider fell below world floor at %v, resetting", state.Pos)
		state.Reset(s.Options.SpawnPos)
		return s.resultFromState(state, ctx, TickOutcomeReset)
	}

	ctx.snow = s.conditionsAt(state.Pos.X(), state.Pos.Z())
	ctx.hzSpeed = state.HzSpeed()
	state.WasGrounded = state.OnGround

	if state.Grinding {
		s.updateGrind(state, ctx)
		s.updateCompression(state, ctx)
		s.requestTranslation(state)
		// The tick a grind ends on reports a normal outcome, matching the
		// cleared Grinding flag in the snapshot.
		outcome := TickOutcomeGrinding
		if ctx.grindEnd != nil {
			outcome = TickOutcomeNormal
		}
		return s.resultFromState(state, ctx, outcome)
	}

	s.sampleGround(state, ctx)

	if state.OnGround && !state.WasGrounded {
		s.land(state, ctx)
	}

	if state.OnGround {
		s.updateEdge(state, ctx)
		s.updateCarveQuality(state, ctx)
		s.updateFailure(state, ctx)
		if ctx.edgeFlipped {
			s.classifyTransition(state, ctx)
		}
		s.applyTurn(state, ctx)
	} else {
		if s.tryAttachRail(state, ctx) {
			s.requestTranslation(state)
			return s.resultFromState(state, ctx, TickOutcomeGrinding)
		}
		s.updateAirborne(state, ctx)
	}

	s.updateCompression(state, ctx)

	s.integrate(state, ctx)
	s.requestTranslation(state)

	return s.resultFromState(state, ctx, TickOutcomeNormal)
}

// integrate advances the rider position from its velocity. Grounded ticks
// snap to the sampled ground height; airborne ticks integrate freely.
func (s *Simulator) integrate(state *RiderState, ctx *tickCtx) {
	newPos := state.Pos.Add(state.Vel.Mul(ctx.dt))
	if state.OnGround {
		newPos[1] = state.GroundHeight
	}
	state.SetPos(newPos)
}

// requestTranslation hands the body proxy its single per-tick kinematic
// translation target.
func (s *Simulator) requestTranslation(state *RiderState) {
	if s.Body != nil {
		s.Body.RequestTranslation(state.Pos)
	}
}
