package course

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/powdersim/carve/game"
	"github.com/powdersim/carve/oerror"
)

// RailHandle identifies a rail inside a Registry. The simulation core keeps
// handles, never rail values, so rail data is owned in exactly one place.
type RailHandle int32

// NoRail is the handle value of a rider that is not attached to any rail.
const NoRail RailHandle = -1

// Rail describes a single grindable rail: a straight segment centered on Pos,
// rotated by Angle around the Y axis, spanning Length units at Height above
// the ground.
type Rail struct {
	Pos    mgl32.Vec3
	Angle  float32
	Length float32
	Height float32
}

// Validate rejects malformed descriptors before they can enter the registry.
func (r Rail) Validate() error {
	for i := 0; i < 3; i++ {
		if !game.IsFinite32(r.Pos[i]) {
			return oerror.New("rail position component %d is not finite", i)
		}
	}
	if !game.IsFinite32(r.Angle) {
		return oerror.New("rail angle is not finite")
	}
	if !game.IsFinite32(r.Length) || r.Length <= 0 {
		return oerror.New("rail length must be a positive finite value, got %v", r.Length)
	}
	if !game.IsFinite32(r.Height) || r.Height < 0 {
		return oerror.New("rail height must be a non-negative finite value, got %v", r.Height)
	}
	return nil
}

// Dir returns the horizontal unit vector along the rail.
func (r Rail) Dir() mgl32.Vec3 {
	return game.HeadingVec(r.Angle)
}

// Start returns the world position of the rail's starting end (progress 0).
func (r Rail) Start() mgl32.Vec3 {
	return r.Pos.Sub(r.Dir().Mul(r.Length * 0.5))
}

// End returns the world position of the rail's far end (progress 1).
func (r Rail) End() mgl32.Vec3 {
	return r.Pos.Add(r.Dir().Mul(r.Length * 0.5))
}

// Progress returns the linear fraction of pos along the rail. Values outside
// [0,1] mean pos has left the rail's extent.
func (r Rail) Progress(pos mgl32.Vec3) float32 {
	rel := pos.Sub(r.Start())
	return (rel.X()*r.Dir().X() + rel.Z()*r.Dir().Z()) / r.Length
}

// PointAt returns the world position on the rail at the given progress,
// at grind height.
func (r Rail) PointAt(progress float32) mgl32.Vec3 {
	p := r.Start().Add(r.Dir().Mul(progress * r.Length))
	p[1] = r.Pos.Y() + r.Height
	return p
}

// BBox returns the axis-aligned bounding box enclosing the rail segment,
// grown by margin on each horizontal side.
func (r Rail) BBox(margin float32) cube.BBox {
	start, end := r.Start(), r.End()
	minX, maxX := math32.Min(start.X(), end.X()), math32.Max(start.X(), end.X())
	minZ, maxZ := math32.Min(start.Z(), end.Z()), math32.Max(start.Z(), end.Z())
	return cube.Box(
		minX-margin, r.Pos.Y(), minZ-margin,
		maxX+margin, r.Pos.Y()+r.Height+margin, maxZ+margin,
	)
}
