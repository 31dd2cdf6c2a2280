package course

import (
	"github.com/chewxy/math32"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// proximityMargin is how far outside a rail's bounding box a rider may be for
// the rail to still be considered a candidate for attachment.
const proximityMargin = float32(1.5)

// Registry owns all rail descriptors of a course. Rails are registered once
// during course setup and referenced by handle afterwards; the registry never
// removes rails mid-session, so handles stay valid for the session lifetime.
type Registry struct {
	rails  *orderedmap.OrderedMap[RailHandle, Rail]
	nextID RailHandle
}

// NewRegistry creates an empty rail registry.
func NewRegistry() *Registry {
	return &Registry{rails: orderedmap.NewOrderedMap[RailHandle, Rail]()}
}

// Add validates and registers a rail, returning its handle.
func (reg *Registry) Add(rail Rail) (RailHandle, error) {
	if err := rail.Validate(); err != nil {
		return NoRail, err
	}
	handle := reg.nextID
	reg.nextID++
	reg.rails.Set(handle, rail)
	return handle, nil
}

// Rail returns the rail stored under the given handle.
func (reg *Registry) Rail(handle RailHandle) (Rail, bool) {
	return reg.rails.Get(handle)
}

// Len returns the number of registered rails.
func (reg *Registry) Len() int {
	return reg.rails.Len()
}

// NearestRail returns the rail whose bounding box is closest to pos, provided
// pos is within the proximity margin of it. Registration order breaks ties so
// results are deterministic.
func (reg *Registry) NearestRail(pos mgl32.Vec3) (Rail, RailHandle, bool) {
	var (
		best       Rail
		bestHandle = NoRail
		bestDist   = float32(math32.MaxFloat32)
	)
	for el := reg.rails.Front(); el != nil; el = el.Next() {
		dist := bboxDistance(el.Value.BBox(proximityMargin), pos)
		if dist < bestDist {
			bestDist = dist
			best = el.Value
			bestHandle = el.Key
		}
	}
	if bestHandle == NoRail || bestDist > 0 {
		return Rail{}, NoRail, false
	}
	return best, bestHandle, true
}

// bboxDistance calculates the distance between a bounding box and a vector.
// A point inside the box has distance zero.
func bboxDistance(bb cube.BBox, v mgl32.Vec3) float32 {
	x := math32.Max(bb.Min().X()-v.X(), math32.Max(0, v.X()-bb.Max().X()))
	y := math32.Max(bb.Min().Y()-v.Y(), math32.Max(0, v.Y()-bb.Max().Y()))
	z := math32.Max(bb.Min().Z()-v.Z(), math32.Max(0, v.Z()-bb.Max().Z()))
	return math32.Sqrt(x*x + y*y + z*z)
}
