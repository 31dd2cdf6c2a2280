package course

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestRailValidate(t *testing.T) {
	good := Rail{Pos: mgl32.Vec3{0, 1, 0}, Angle: 0.3, Length: 8, Height: 0.5}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid rail rejected: %v", err)
	}

	bad := []Rail{
		{Pos: mgl32.Vec3{math32.NaN(), 0, 0}, Length: 8, Height: 0.5},
		{Pos: mgl32.Vec3{0, 0, 0}, Angle: math32.Inf(1), Length: 8, Height: 0.5},
		{Length: 0, Height: 0.5},
		{Length: -3, Height: 0.5},
		{Length: 8, Height: -1},
		{Length: math32.NaN(), Height: 0.5},
	}
	for i, r := range bad {
		if err := r.Validate(); err == nil {
			t.Fatalf("malformed rail %d accepted: %+v", i, r)
		}
	}
}

func TestRailGeometry(t *testing.T) {
	r := Rail{Pos: mgl32.Vec3{2, 1, 4}, Angle: 0, Length: 10, Height: 0.5}

	if got := r.Start(); got != (mgl32.Vec3{2, 1, -1}) {
		t.Fatalf("start %v", got)
	}
	if got := r.End(); got != (mgl32.Vec3{2, 1, 9}) {
		t.Fatalf("end %v", got)
	}

	mid := r.PointAt(0.5)
	if mid != (mgl32.Vec3{2, 1.5, 4}) {
		t.Fatalf("midpoint %v", mid)
	}
	if got := r.Progress(mid); math32.Abs(got-0.5) > 1e-5 {
		t.Fatalf("progress of midpoint %v", got)
	}
	if got := r.Progress(mgl32.Vec3{2, 1, 14}); got <= 1 {
		t.Fatalf("point past the end should exceed progress 1, got %v", got)
	}
	if got := r.Progress(mgl32.Vec3{2, 1, -6}); got >= 0 {
		t.Fatalf("point before the start should be negative, got %v", got)
	}
}

func TestRegistryAddRejectsInvalid(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Add(Rail{Length: -1}); err == nil {
		t.Fatalf("registry accepted a malformed rail")
	}
	if reg.Len() != 0 {
		t.Fatalf("rejected rail still registered")
	}
}

func TestNearestRail(t *testing.T) {
	reg := NewRegistry()
	far, err := reg.Add(Rail{Pos: mgl32.Vec3{100, 0, 100}, Angle: 0, Length: 6, Height: 0.5})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	near, err := reg.Add(Rail{Pos: mgl32.Vec3{0, 0, 0}, Angle: float32(math.Pi / 2), Length: 6, Height: 0.5})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if far == near {
		t.Fatalf("registry reused a handle")
	}

	_, handle, ok := reg.NearestRail(mgl32.Vec3{1, 0.4, 0})
	if !ok || handle != near {
		t.Fatalf("expected the origin rail, got handle %v ok %v", handle, ok)
	}

	if _, _, ok := reg.NearestRail(mgl32.Vec3{50, 0, 50}); ok {
		t.Fatalf("found a rail in the middle of nowhere")
	}

	if _, ok := reg.Rail(near); !ok {
		t.Fatalf("handle did not resolve")
	}
	if _, ok := reg.Rail(NoRail); ok {
		t.Fatalf("NoRail resolved to a rail")
	}
}
