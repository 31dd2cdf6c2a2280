package sim

import (
	"github.com/chewxy/math32"

	"github.com/powdersim/carve/game"
)

// updateEdge maps {steer, lean, speed} onto edge angle, weight distribution,
// effective pressure and grip, and derives the supportable/required speed-edge
// band the failure machine reads.
func (s *Simulator) updateEdge(state *RiderState, ctx *tickCtx) {
	maxEdge := s.Options.MaxEdgeAngle
	state.TargetEdgeAngle = ctx.input.Steer * maxEdge

	// Rail engagement stabilizes the edge: the approach rate drops with
	// carve rail strength so a locked-in carve resists twitchy input.
	rate := EdgeApproachRate * (1 - RailStabilization*state.CarveRailStrength)
	blend := game.Clamp32(rate*ctx.dt, 0, 1)
	state.SetEdgeAngle(game.Lerp32(state.EdgeAngle, state.TargetEdgeAngle, blend), maxEdge)

	if ctx.dt > 0 {
		ctx.edgeRate = (state.EdgeAngle - state.LastEdgeAngle) / ctx.dt
	}
	if math32.Abs(state.EdgeAngle) >= FlatEdgeEpsilon {
		sign := game.Sign32(state.EdgeAngle)
		ctx.edgeFlipped = state.EdgeSign != 0 && sign != state.EdgeSign
		state.EdgeSign = sign
	}

	shift := game.Clamp32(WeightShiftRate*ctx.dt, 0, 1)
	state.WeightForward = game.Lerp32(state.WeightForward, ctx.input.Lean, shift)
	sideTarget := game.Sign32(state.EdgeAngle) * math32.Abs(state.EdgeAngle) / maxEdge
	state.WeightSide = game.Lerp32(state.WeightSide, sideTarget, shift)
	state.EffectivePressure = game.Clamp32(
		1+0.4*math32.Abs(state.WeightSide)+0.5*math32.Max(0, state.Compression), 0, 2)

	speed := ctx.hzSpeed
	absEdge := math32.Abs(state.EdgeAngle)

	// The speed-edge coupling band: an edge is only supportable up to
	// speed/MinSpeedPerRadian and only required above the grace speed, up to
	// speed/MaxSpeedPerRadian. Deficits on either side degrade the coupling
	// term toward its floor and feed the failure machine.
	ctx.supportableEdge = speed / s.Options.MinSpeedPerRadian
	ctx.requiredEdge = math32.Max(0, (speed-FlatBaseGraceSpeed)/s.Options.MaxSpeedPerRadian)
	ctx.edgeExcess = math32.Max(0, absEdge-ctx.supportableEdge)
	ctx.edgeLack = math32.Max(0, ctx.requiredEdge-absEdge)

	couple := 1 - game.Clamp32((ctx.edgeExcess+ctx.edgeLack)/CoupleFalloff, 0, 1)*(1-CoupleFloor)

	grip := (BaseGrip + EdgeGripBonus*absEdge/maxEdge + RailGripBonus*state.CarveRailStrength) * couple
	state.Grip = game.Clamp32(grip*ctx.snow.Grip, MinGrip, MaxGrip)
}

// applyTurn advances heading and redirects velocity from the carve geometry.
// While a failure state is active it yields entirely; the failure machine
// owns velocity and heading during that time.
func (s *Simulator) applyTurn(state *RiderState, ctx *tickCtx) {
	vel := state.Vel
	vel[1] = 0

	if state.FailureActive() {
		state.SetVel(vel)
		ctx.gForce = 0
		return
	}

	speed := game.Vec3HzDist(vel)
	if speed < PivotSpeedFloor {
		// Near standstill the radius model divides by nothing useful; turn
		// becomes direct pivot steering.
		state.SetHeading(state.Heading + ctx.input.Steer*PivotRate*ctx.dt)
		state.HeadingVel = 0
		state.SetVel(vel)
		ctx.gForce = 0
		return
	}

	targetHeadingVel := game.Sign32(state.EdgeAngle) * speed * math32.Sin(math32.Abs(state.EdgeAngle)) / SidecutRadius * state.Grip
	state.HeadingVel = game.Lerp32(state.HeadingVel, targetHeadingVel, game.Clamp32(TurnResponse*ctx.dt, 0, 1))
	state.SetHeading(state.Heading + state.HeadingVel*ctx.dt)

	ctx.gForce = speed * math32.Abs(state.HeadingVel) / GravityAccel

	// Rotate the velocity toward the heading at a grip-scaled rate; the part
	// that does not follow scrubs speed as skid.
	velHeading := game.HeadingFromVec(vel)
	misalign := game.AngleDelta(velHeading, state.Heading)
	follow := game.Clamp32(state.Grip*VelAlignRate*ctx.dt, 0, 1)
	newHeading := velHeading + misalign*follow
	speed *= 1 - game.Clamp32((1-state.Grip)*SkidScrub*math32.Abs(misalign)*ctx.dt, 0, 0.5)

	// Slope pull and drag, both scaled by the local snow conditions.
	dir := game.HeadingVec(newHeading)
	vel = dir.Mul(speed)
	grad := ctx.snow.Gradient
	vel[0] += grad.X() * SlopeAccel * ctx.snow.Speed * ctx.dt
	vel[2] += grad.Y() * SlopeAccel * ctx.snow.Speed * ctx.dt
	drag := game.Clamp32(BaseDrag*ctx.snow.Drag*ctx.dt, 0, 1)
	vel[0] *= 1 - drag
	vel[2] *= 1 - drag

	// Transition pop: a freshly banked boost acts as forward acceleration
	// and decays a fixed fraction every tick it is applied.
	if state.EdgeTransitionBoost > 0 {
		fwd := game.HeadingVec(state.Heading)
		vel = vel.Add(fwd.Mul(state.EdgeTransitionBoost * ctx.dt))
		state.EdgeTransitionBoost *= TransitionBoostDecay
		if state.EdgeTransitionBoost < 0.01 {
			state.EdgeTransitionBoost = 0
		}
	}

	state.SetVel(vel)
}
