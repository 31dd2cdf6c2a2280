package sim

import (
	"math/rand"

	"github.com/powdersim/carve/game"
)

// Simulator orchestrates the rider simulation using the provided collaborator
// adapters. It is single-threaded: exactly one Simulate call may be in flight
// at a time, invoked synchronously from the host game loop.
type Simulator struct {
	Body    BodyProxy
	Snow    SnowProvider
	Course  CourseProvider
	Options Options

	// rng is the injected pseudo-random source. Edge-catch draws, wobble and
	// grind balance drift come only from here, so a fixed seed reproduces a
	// session exactly.
	rng *rand.Rand
}

// NewSimulator creates a simulator with the given collaborators and a seeded
// random source.
func NewSimulator(body BodyProxy, snow SnowProvider, courseProv CourseProvider, opts Options, seed int64) *Simulator {
	return &Simulator{
		Body:    body,
		Snow:    snow,
		Course:  courseProv,
		Options: opts,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// randSigned returns a uniform draw in [-1, 1).
func (s *Simulator) randSigned() float32 {
	return s.rng.Float32()*2 - 1
}

// tickCtx carries per-tick derived values between the simulation phases. It
// lives for exactly one Simulate call.
type tickCtx struct {
	dt    float32
	input InputState
	snow  SnowConditions

	hzSpeed float32

	supportableEdge float32
	requiredEdge    float32
	edgeExcess      float32
	edgeLack        float32

	edgeFlipped bool
	edgeRate    float32
	// popTransition marks a clean edge switch this tick; the compression
	// model answers it with an extension pop.
	popTransition bool

	gForce float32

	landing  *LandingEvent
	jump     *JumpEvent
	grindEnd *GrindEndEvent
}

func (s *Simulator) conditionsAt(x, z float32) SnowConditions {
	if s.Snow == nil {
		return NeutralSnow
	}
	c := s.Snow.ConditionsAt(x, z)
	if !game.IsFinite32(c.Grip) || c.Grip <= 0 {
		c.Grip = 1
	}
	if !game.IsFinite32(c.Drag) || c.Drag <= 0 {
		c.Drag = 1
	}
	if !game.IsFinite32(c.Speed) || c.Speed <= 0 {
		c.Speed = 1
	}
	c.Gradient[0] = game.SanitizeFloat(c.Gradient[0], 0)
	c.Gradient[1] = game.SanitizeFloat(c.Gradient[1], 0)
	return c
}
