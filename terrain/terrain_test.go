package terrain

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFieldDeterministicForSeed(t *testing.T) {
	a, b := NewField(1234), NewField(1234)
	other := NewField(99)

	differs := false
	for i := 0; i < 200; i++ {
		x := float32(i)*3.7 - 200
		z := float32(i)*5.1 - 350
		ca, cb := a.ConditionsAt(x, z), b.ConditionsAt(x, z)
		if ca != cb {
			t.Fatalf("same seed diverged at (%v, %v): %+v vs %+v", x, z, ca, cb)
		}
		if ca != other.ConditionsAt(x, z) {
			differs = true
		}
	}
	if !differs {
		t.Fatalf("different seeds produced identical terrain everywhere")
	}
}

func TestFieldMultiplierRanges(t *testing.T) {
	f := NewField(7)
	for i := 0; i < 400; i++ {
		x := float32(i%20) * 13.3
		z := float32(i/20) * 17.9
		c := f.ConditionsAt(x, z)
		if c.Grip < 0.7 || c.Grip > 1.3 {
			t.Fatalf("grip multiplier %v out of range at (%v, %v)", c.Grip, x, z)
		}
		if c.Drag < 0.7 || c.Drag > 1.3 {
			t.Fatalf("drag multiplier %v out of range at (%v, %v)", c.Drag, x, z)
		}
		if c.Speed < 0.7 || c.Speed > 1.3 {
			t.Fatalf("speed multiplier %v out of range at (%v, %v)", c.Speed, x, z)
		}
		if c.Gradient != f.Gradient {
			t.Fatalf("conditions lost the slope gradient")
		}
	}
}

func TestSurfaceAt(t *testing.T) {
	f := NewField(31)

	seen := map[Surface]bool{}
	for i := 0; i < 400; i++ {
		x := float32(i%20) * 11.1
		z := float32(i/20) * 9.7
		s := f.SurfaceAt(x, z)
		if s != SurfaceGroomed && s != SurfacePowder && s != SurfaceIce {
			t.Fatalf("unknown surface class %v at (%v, %v)", s, x, z)
		}
		if s != f.SurfaceAt(x, z) {
			t.Fatalf("surface class not stable at (%v, %v)", x, z)
		}
		seen[s] = true
	}
	if len(seen) < 2 {
		t.Fatalf("400 cells produced a single surface class, seen %v", seen)
	}
}

func TestHeightfieldVerticalRay(t *testing.T) {
	h := NewHeightfield(NewField(1), 20)

	surface := h.HeightAt(4, 9)
	origin := mgl32.Vec3{4, surface + 2, 9}
	dist, hit := h.CastRay(origin, mgl32.Vec3{0, -1, 0}, 5)
	if !hit {
		t.Fatalf("vertical ray above the surface missed")
	}
	if dist < 1.9 || dist > 2.1 {
		t.Fatalf("vertical ray distance %v, want ~2", dist)
	}

	if _, hit := h.CastRay(origin, mgl32.Vec3{0, -1, 0}, 1); hit {
		t.Fatalf("vertical ray hit beyond its max distance")
	}
	if _, hit := h.CastRay(mgl32.Vec3{4, surface - 1, 9}, mgl32.Vec3{0, -1, 0}, 5); hit {
		t.Fatalf("ray starting under the surface reported a hit")
	}
}

func TestHeightfieldMarchedRay(t *testing.T) {
	h := NewHeightfield(NewField(1), 20)

	surface := h.HeightAt(0, 0)
	origin := mgl32.Vec3{0, surface + 1, 0}
	dir := mgl32.Vec3{0, -1, 1}.Normalize()
	dist, hit := h.CastRay(origin, dir, 10)
	if !hit {
		t.Fatalf("angled ray toward a downhill slope missed")
	}
	if dist <= 0 || dist > 10 {
		t.Fatalf("angled ray distance %v outside (0, 10]", dist)
	}

	if _, hit := h.CastRay(origin, mgl32.Vec3{0, 1, 0}, 10); hit {
		t.Fatalf("upward ray reported a ground hit")
	}
}

func TestHeightfieldRecordsTranslation(t *testing.T) {
	h := NewHeightfield(NewField(1), 0)
	want := mgl32.Vec3{1, 2, 3}
	h.RequestTranslation(want)
	if h.Requested != want {
		t.Fatalf("translation target not recorded: %v", h.Requested)
	}
}
