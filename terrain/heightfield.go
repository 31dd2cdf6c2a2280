package terrain

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/powdersim/carve/game"
)

// rayStep is the march step for non-vertical rays against the heightfield.
const rayStep = float32(0.25)

// Heightfield is an analytic slope surface implementing the simulator's body
// proxy for the harness and tests: a plane falling along the field's
// gradient with a low-amplitude undulation on top. It records the kinematic
// translation target the simulator requests each tick.
type Heightfield struct {
	field *Field
	baseY float32

	// Requested is the last kinematic translation target received.
	Requested mgl32.Vec3
}

// NewHeightfield creates a heightfield at the given base elevation, sloped
// along the field's gradient.
func NewHeightfield(field *Field, baseY float32) *Heightfield {
	return &Heightfield{field: field, baseY: baseY}
}

// HeightAt returns the surface elevation at the given world coordinates.
func (h *Heightfield) HeightAt(x, z float32) float32 {
	g := h.field.Gradient
	undulation := math32.Sin(x*0.05)*0.4 + math32.Cos(z*0.07)*0.3
	return h.baseY - g.X()*x - g.Y()*z + undulation
}

// CastRay intersects a ray with the heightfield. Vertical rays resolve
// directly; anything else marches in fixed steps until it crosses the
// surface.
func (h *Heightfield) CastRay(origin, dir mgl32.Vec3, maxDist float32) (float32, bool) {
	if dir.X() == 0 && dir.Z() == 0 && dir.Y() < 0 {
		surface := h.HeightAt(origin.X(), origin.Z())
		dist := origin.Y() - surface
		if dist < 0 || dist > maxDist {
			return 0, false
		}
		return dist, true
	}

	for travelled := rayStep; travelled <= maxDist; travelled += rayStep {
		at := origin.Add(dir.Mul(travelled))
		if at.Y() <= h.HeightAt(at.X(), at.Z()) {
			// Split the difference of the last step.
			return game.Clamp32(travelled-rayStep*0.5, 0, maxDist), true
		}
	}
	return 0, false
}

// RequestTranslation stores the simulator's kinematic translation target for
// the host loop to consume.
func (h *Heightfield) RequestTranslation(pos mgl32.Vec3) {
	h.Requested = pos
}
