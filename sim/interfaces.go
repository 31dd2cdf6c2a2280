package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/powdersim/carve/course"
)

// BodyProxy bridges the external rigid-body engine. The simulator only ever
// requests ground raycasts from it and hands it one kinematic translation
// target per tick.
type BodyProxy interface {
	// CastRay casts a ray from origin along dir (unit vector) up to maxDist
	// and returns the hit distance, if any.
	CastRay(origin, dir mgl32.Vec3, maxDist float32) (dist float32, hit bool)
	// RequestTranslation sets the kinematic translation target for the next
	// physics step. Called exactly once per simulation tick.
	RequestTranslation(pos mgl32.Vec3)
}

// SnowConditions describe the surface under the rider at a point.
type SnowConditions struct {
	// Grip, Drag and Speed are multiplicative modifiers applied to the
	// respective parts of the model. 1.0 is neutral groomed snow.
	Grip  float32
	Drag  float32
	Speed float32
	// Gradient is the downhill direction and steepness of the terrain in
	// the XZ plane; a zero vector means flat ground.
	Gradient mgl32.Vec2
}

// NeutralSnow is the condition set used when no provider is configured.
var NeutralSnow = SnowConditions{Grip: 1, Drag: 1, Speed: 1}

// SnowProvider bridges the terrain collaborator's snow-condition lookup.
type SnowProvider interface {
	ConditionsAt(x, z float32) SnowConditions
}

// CourseProvider bridges the rail/course collaborator for grind entry and
// while-grinding rail lookups.
type CourseProvider interface {
	// NearestRail returns the rail the given position is in attachment range
	// of, if any.
	NearestRail(pos mgl32.Vec3) (course.Rail, course.RailHandle, bool)
	// Rail resolves a previously returned handle.
	Rail(handle course.RailHandle) (course.Rail, bool)
}
