package sim

import "github.com/go-gl/mathgl/mgl32"

// Profile selects which feature set of the rider model is active.
type Profile uint8

const (
	// ProfileFull enables the complete model: failure states, carve energy,
	// transition pop and grinding.
	ProfileFull Profile = iota
	// ProfileClassic is the reduced-feature configuration of the same model:
	// pure edge/turn physics with no failure states, no carve energy and no
	// grind attachment.
	ProfileClassic
)

// Options define simulator behavior and the tunable thresholds of the model.
type Options struct {
	Profile Profile

	// MaxEdgeAngle bounds |edgeAngle| in radians.
	MaxEdgeAngle float32

	// MinSpeedPerRadian and MaxSpeedPerRadian define the supportable/required
	// speed-edge band: an edge angle is supportable up to
	// speed/MinSpeedPerRadian and required up to speed/MaxSpeedPerRadian.
	MinSpeedPerRadian float32
	MaxSpeedPerRadian float32

	// EdgeCatchRiskThreshold and EdgeCatchDrawScale control the edge-catch
	// Bernoulli draw: a catch requires risk > threshold and a single RNG
	// draw below risk*scale.
	EdgeCatchRiskThreshold float32
	EdgeCatchDrawScale     float32

	// CompressionSpring and CompressionDamping parameterize the compression
	// spring toward its contextual target.
	CompressionSpring  float32
	CompressionDamping float32

	// JumpChargeWindow is the hold duration in seconds over which jump
	// charge ramps to full.
	JumpChargeWindow float32

	// WorldFloorY is the Y coordinate below which the rider is considered to
	// have fallen out of the world, forcing a full state reset.
	WorldFloorY float32

	// SpawnPos is the position the rider state is (re)initialized at.
	SpawnPos mgl32.Vec3

	// Debugf receives internal simulation trace logs for callers that need deep diagnostics.
	Debugf func(format string, args ...any)
}

// DefaultOptions returns the tuning the full model ships with.
func DefaultOptions() Options {
	return Options{
		Profile:                ProfileFull,
		MaxEdgeAngle:           DefaultMaxEdgeAngle,
		MinSpeedPerRadian:      8.0,
		MaxSpeedPerRadian:      40.0,
		EdgeCatchRiskThreshold: 0.25,
		EdgeCatchDrawScale:     0.8,
		CompressionSpring:      20.0,
		CompressionDamping:     8.0,
		JumpChargeWindow:       0.4,
		WorldFloorY:            -50.0,
	}
}

// ClassicOptions returns the reduced-feature v1-style tuning.
func ClassicOptions() Options {
	opts := DefaultOptions()
	opts.Profile = ProfileClassic
	opts.MaxEdgeAngle = ClassicMaxEdgeAngle
	return opts
}

func (o *Options) debugf(format string, args ...any) {
	if o.Debugf != nil {
		o.Debugf(format, args...)
	}
}
