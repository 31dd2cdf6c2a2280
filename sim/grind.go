package sim

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/powdersim/carve/assert"
	"github.com/powdersim/carve/course"
	"github.com/powdersim/carve/game"
)

// tryAttachRail checks the course collaborator for a rail in range while the
// rider is airborne and descending, and snaps onto it if one is found.
func (s *Simulator) tryAttachRail(state *RiderState, ctx *tickCtx) bool {
	if s.Options.Profile == ProfileClassic || s.Course == nil {
		return false
	}
	if state.Vel.Y() > 0 || state.FailureActive() {
		return false
	}
	rail, handle, ok := s.Course.NearestRail(state.Pos)
	if !ok {
		return false
	}
	if state.Pos.Y() < rail.Pos.Y()+rail.Height-GrindAttachMaxRise {
		return false
	}
	s.attachRail(state, ctx, rail, handle)
	return true
}

// attachRail snaps heading to the rail's angle (flipped if approaching
// against it, half-blended otherwise), converts velocity into rail-aligned
// velocity, and clears air rotation.
func (s *Simulator) attachRail(state *RiderState, ctx *tickCtx, rail course.Rail, handle course.RailHandle) {
	// Rails are validated on registration; a degenerate one here is a bug in
	// the course provider.
	assert.IsTrue(rail.Length > 0, "attached to a degenerate rail %v", rail)

	diff := game.AngleDelta(state.Heading, rail.Angle)
	if math32.Abs(diff) > math.Pi/2 {
		state.SetHeading(rail.Angle + math.Pi)
	} else {
		state.SetHeading(state.Heading + diff*0.5)
	}

	dir := rail.Dir()
	along := state.Vel.X()*dir.X() + state.Vel.Z()*dir.Z()
	sign := game.Sign32(along)
	if sign == 0 {
		sign = 1
	}
	state.SetVel(dir.Mul(ctx.hzSpeed * sign))

	state.Pitch, state.Roll = 0, 0
	state.PitchVel, state.RollVel, state.SpinVel = 0, 0, 0
	state.AirTime = 0

	state.Grinding = true
	state.GrindRail = handle
	state.GrindBalance = 0
	state.GrindTime = 0
	state.GrindProgress = game.Clamp32(rail.Progress(state.Pos), 0, 1)
	snapped := rail.PointAt(state.GrindProgress)
	state.SetPos(snapped)
	s.Options.debugf("grind attach: rail=%d progress=%.2f", handle, state.GrindProgress)
}

// updateGrind runs one tick of the grinding mode: balance drift against
// steer correction, rail-aligned velocity with friction and slope boost, and
// the two exits (balance fail, end-of-rail success).
func (s *Simulator) updateGrind(state *RiderState, ctx *tickCtx) {
	rail, ok := s.railFor(state)
	if !ok {
		// The rail vanished out from under us; bail without a kick.
		s.endGrind(state, ctx, false)
		return
	}

	state.GrindTime += ctx.dt

	// Balance drifts randomly, wobbles harder with speed, and is pulled back
	// by steer input. Edge angle just visualizes the lean.
	state.GrindBalance += s.randSigned() * GrindDriftScale * ctx.dt
	state.GrindBalance += s.randSigned() * ctx.hzSpeed * GrindSpeedWobble * ctx.dt
	state.GrindBalance -= ctx.input.Steer * GrindBalanceCorrection * ctx.dt
	state.SetEdgeAngle(state.GrindBalance*GrindEdgeVisualFactor, s.Options.MaxEdgeAngle)

	if math32.Abs(state.GrindBalance) > GrindBalanceLimit {
		overshoot := game.Sign32(state.GrindBalance)
		side := game.HeadingRight(rail.Angle).Mul(overshoot)
		vel := state.Vel.Add(side.Mul(GrindFailKick))
		vel[1] += GrindFailPop
		state.SetVel(vel)
		s.endGrind(state, ctx, false)
		return
	}

	dir := rail.Dir()
	along := state.Vel.X()*dir.X() + state.Vel.Z()*dir.Z()
	along *= 1 - game.Clamp32(GrindFriction*ctx.dt, 0, 1)
	along += game.Sign32(along) * GrindSlopeBoost * ctx.dt
	state.SetVel(dir.Mul(along))

	next := state.Pos.Add(state.Vel.Mul(ctx.dt))
	progress := rail.Progress(next)
	if progress < 0 || progress > 1 {
		vel := state.Vel
		vel[1] += GrindSuccessPop
		state.SetVel(vel)
		state.SetPos(mgl32.Vec3{next.X(), rail.Pos.Y() + rail.Height, next.Z()})
		s.endGrind(state, ctx, true)
		return
	}

	state.GrindProgress = progress
	state.SetPos(rail.PointAt(progress))
}

// endGrind clears the grind sub-state. Exit always clears the rail link; the
// event reports whether the rail was ridden out.
func (s *Simulator) endGrind(state *RiderState, ctx *tickCtx, success bool) {
	ctx.grindEnd = &GrindEndEvent{
		Success:  success,
		Duration: state.GrindTime,
		Progress: state.GrindProgress,
	}
	s.Options.debugf("grind end: success=%v duration=%.2fs", success, state.GrindTime)

	state.Grinding = false
	state.GrindRail = course.NoRail
	state.GrindProgress = 0
	state.GrindBalance = 0
	state.GrindTime = 0
	state.OnGround = false
}

func (s *Simulator) railFor(state *RiderState) (course.Rail, bool) {
	if s.Course == nil || state.GrindRail == course.NoRail {
		return course.Rail{}, false
	}
	return s.Course.Rail(state.GrindRail)
}
