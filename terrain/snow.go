package terrain

import (
	"encoding/binary"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeebo/xxh3"

	"github.com/powdersim/carve/sim"
)

// Surface is the snow surface class of a terrain cell.
type Surface uint8

const (
	SurfaceGroomed Surface = iota
	SurfacePowder
	SurfaceIce
)

// cellSize is the edge length of one condition cell in world units.
const cellSize = float32(8)

// Field is a deterministic snow-condition field: conditions are derived from
// a seeded hash of the containing grid cell and bilinearly blended between
// cell corners, so equal seeds always produce equal terrain.
type Field struct {
	seed uint64

	// Gradient is the base downhill pull of the slope in the XZ plane,
	// returned to the simulator along with the surface multipliers.
	Gradient mgl32.Vec2
}

// NewField creates a condition field for the given seed with a gentle
// constant downhill along +Z.
func NewField(seed uint64) *Field {
	return &Field{seed: seed, Gradient: mgl32.Vec2{0, 0.35}}
}

// ConditionsAt returns the snow conditions at the given world coordinates.
func (f *Field) ConditionsAt(x, z float32) sim.SnowConditions {
	cx, cz := math32.Floor(x/cellSize), math32.Floor(z/cellSize)
	tx, tz := x/cellSize-cx, z/cellSize-cz

	g00, d00, s00 := f.cellConditions(int32(cx), int32(cz))
	g10, d10, s10 := f.cellConditions(int32(cx)+1, int32(cz))
	g01, d01, s01 := f.cellConditions(int32(cx), int32(cz)+1)
	g11, d11, s11 := f.cellConditions(int32(cx)+1, int32(cz)+1)

	return sim.SnowConditions{
		Grip:     bilerp(g00, g10, g01, g11, tx, tz),
		Drag:     bilerp(d00, d10, d01, d11, tx, tz),
		Speed:    bilerp(s00, s10, s01, s11, tx, tz),
		Gradient: f.Gradient,
	}
}

// SurfaceAt returns the dominant surface class of the cell containing the
// given coordinates.
func (f *Field) SurfaceAt(x, z float32) Surface {
	h := f.cellHash(int32(math32.Floor(x/cellSize)), int32(math32.Floor(z/cellSize)))
	return surfaceFromHash(h)
}

// cellConditions derives the grip/drag/speed multipliers of one cell from
// its hash: a surface class plus a small per-cell jitter.
func (f *Field) cellConditions(cx, cz int32) (grip, drag, speed float32) {
	h := f.cellHash(cx, cz)
	jitter := float32(h>>32&0xffff)/0xffff*0.1 - 0.05

	switch surfaceFromHash(h) {
	case SurfacePowder:
		return 1.05 + jitter, 1.15 + jitter, 0.95
	case SurfaceIce:
		return 0.85 + jitter, 0.9, 1.05
	default:
		return 1.0 + jitter, 1.0 + jitter, 1.0
	}
}

func (f *Field) cellHash(cx, cz int32) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[0:], uint32(cx))
	binary.LittleEndian.PutUint32(buf[4:], uint32(cz))
	return xxh3.HashSeed(buf[:], f.seed)
}

func surfaceFromHash(h uint64) Surface {
	switch bucket := h % 10; {
	case bucket < 7:
		return SurfaceGroomed
	case bucket < 9:
		return SurfacePowder
	default:
		return SurfaceIce
	}
}

func bilerp(v00, v10, v01, v11, tx, tz float32) float32 {
	a := v00 + (v10-v00)*tx
	b := v01 + (v11-v01)*tx
	return a + (b-a)*tz
}
