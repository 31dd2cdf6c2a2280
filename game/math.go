package game

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Clamp32 clamps the given value to the given range.
func Clamp32(val, min, max float32) float32 {
	if val < min {
		return min
	}
	return math32.Min(val, max)
}

// Lerp32 linearly interpolates from a to b by t.
func Lerp32(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Approach moves val toward target by at most step, never overshooting.
func Approach(val, target, step float32) float32 {
	if val < target {
		return math32.Min(val+step, target)
	}
	return math32.Max(val-step, target)
}

// WrapAngle wraps an angle in radians into (-pi, pi].
func WrapAngle(angle float32) float32 {
	wrapped := math32.Mod(angle, 2*math.Pi)
	if wrapped > math.Pi {
		wrapped -= 2 * math.Pi
	} else if wrapped <= -math.Pi {
		wrapped += 2 * math.Pi
	}
	return wrapped
}

// AngleDelta returns the shortest signed difference between two headings.
func AngleDelta(from, to float32) float32 {
	return WrapAngle(to - from)
}

// Sign32 returns -1, 0 or 1 depending on the sign of val.
func Sign32(val float32) float32 {
	if val < 0 {
		return -1
	} else if val > 0 {
		return 1
	}
	return 0
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// HeadingVec returns the horizontal unit vector pointing along the given
// heading in radians.
func HeadingVec(heading float32) mgl32.Vec3 {
	return mgl32.Vec3{math32.Sin(heading), 0, math32.Cos(heading)}
}

// HeadingRight returns the horizontal unit vector perpendicular to the given
// heading, pointing to the rider's right.
func HeadingRight(heading float32) mgl32.Vec3 {
	return mgl32.Vec3{math32.Cos(heading), 0, -math32.Sin(heading)}
}

// HeadingFromVec returns the heading in radians of the horizontal component
// of the given vector. Returns 0 for a vector with no horizontal component.
func HeadingFromVec(vec mgl32.Vec3) float32 {
	if vec.X() == 0 && vec.Z() == 0 {
		return 0
	}
	return math32.Atan2(vec.X(), vec.Z())
}

// Vec3HzDist returns the horizontal distance in a vector.
func Vec3HzDist(vec3 mgl32.Vec3) float32 {
	return math32.Hypot(vec3.X(), vec3.Z())
}

// IsFinite32 reports whether val is neither NaN nor infinite.
func IsFinite32(val float32) bool {
	return !math32.IsNaN(val) && !math32.IsInf(val, 0)
}

// SanitizeFloat returns val if it is finite and fallback otherwise.
func SanitizeFloat(val, fallback float32) float32 {
	if IsFinite32(val) {
		return val
	}
	return fallback
}

// SanitizeVec replaces any non-finite component of vec with the matching
// component of fallback.
func SanitizeVec(vec, fallback mgl32.Vec3) mgl32.Vec3 {
	for i := 0; i < 3; i++ {
		if !IsFinite32(vec[i]) {
			vec[i] = fallback[i]
		}
	}
	return vec
}
