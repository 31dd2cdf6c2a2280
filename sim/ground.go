package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/powdersim/carve/game"
)

var rayDown = mgl32.Vec3{0, -1, 0}

// sampleGround casts the center ground ray to resolve grounded state and
// ground height, and while grounded casts three more offset rays to build a
// smoothed surface normal. It mutates only the terrain-link slice of the
// state, never velocity.
func (s *Simulator) sampleGround(state *RiderState, ctx *tickCtx) {
	if s.Body == nil {
		state.OnGround = false
		return
	}

	origin := state.Pos.Add(mgl32.Vec3{0, GroundRayLift, 0})
	dist, hit := s.Body.CastRay(origin, rayDown, GroundRayRange)
	if !hit {
		state.OnGround = false
		return
	}

	state.GroundHeight = origin.Y() - dist
	feetGap := state.Pos.Y() - state.GroundHeight

	// A rising rider is airborne no matter how close the surface still is;
	// snapping here would swallow the first tick of every jump.
	if state.Vel.Y() > 0 {
		state.OnGround = false
		return
	}

	// Grounded when within snap range, or when this tick's fall would carry
	// the rider through the surface.
	crossing := state.Vel.Y() < 0 && state.Pos.Y()+state.Vel.Y()*ctx.dt <= state.GroundHeight
	state.OnGround = feetGap <= GroundSnapDistance || crossing
	if !state.OnGround {
		return
	}

	s.sampleNormal(state, ctx)
}

// sampleNormal builds the ground normal from three heading-relative sample
// rays and exponentially smooths it. The sample offset widens and the blend
// slows with speed to avoid jitter at pace.
func (s *Simulator) sampleNormal(state *RiderState, ctx *tickCtx) {
	offset := game.Clamp32(NormalOffsetMin+ctx.hzSpeed*0.02, NormalOffsetMin, NormalOffsetMax)
	forward := game.HeadingVec(state.Heading).Mul(offset)
	side := game.HeadingRight(state.Heading).Mul(offset)

	front, okF := s.sampleHeight(state.Pos.Add(forward))
	back, okB := s.sampleHeight(state.Pos.Sub(forward))
	right, okS := s.sampleHeight(state.Pos.Add(side))
	if !okF || !okB || !okS {
		return
	}

	pFront := mgl32.Vec3{state.Pos.X() + forward.X(), front, state.Pos.Z() + forward.Z()}
	pBack := mgl32.Vec3{state.Pos.X() - forward.X(), back, state.Pos.Z() - forward.Z()}
	pSide := mgl32.Vec3{state.Pos.X() + side.X(), right, state.Pos.Z() + side.Z()}
	center := mgl32.Vec3{state.Pos.X(), state.GroundHeight, state.Pos.Z()}

	raw := pFront.Sub(pBack).Cross(pSide.Sub(center))
	if raw.LenSqr() < 1e-8 {
		return
	}
	raw = raw.Normalize()
	if raw.Y() < 0 {
		raw = raw.Mul(-1)
	}

	// Faster riders get a slower blend toward the raw normal.
	rate := game.Clamp32(10-ctx.hzSpeed*0.15, 3, 10)
	blended := state.GroundNormal.Add(raw.Sub(state.GroundNormal).Mul(game.Clamp32(rate*ctx.dt, 0, 1)))
	if blended.LenSqr() > 1e-8 {
		state.GroundNormal = blended.Normalize()
	}
}

func (s *Simulator) sampleHeight(at mgl32.Vec3) (float32, bool) {
	origin := mgl32.Vec3{at.X(), at.Y() + GroundRayLift, at.Z()}
	dist, hit := s.Body.CastRay(origin, rayDown, GroundRayRange)
	if !hit {
		return 0, false
	}
	return origin.Y() - dist, true
}
