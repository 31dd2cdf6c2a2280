package sim

import "github.com/powdersim/carve/game"

// InputState represents a single tick's rider input.
type InputState struct {
	// Steer is the edge/turn input in [-1, 1]; positive steers right.
	Steer float32
	// Lean is the fore/aft weight input in [-1, 1]; positive leans forward
	// (nose press), negative presses the tail.
	Lean float32
	// JumpHeld reports whether the jump input is currently held. Charge
	// accumulates while held on the ground; release triggers the jump.
	JumpHeld bool
}

// sanitized returns the input with non-finite values substituted and all
// axes clamped into their documented ranges. Upstream NaN must never reach
// the model.
func (in InputState) sanitized() InputState {
	in.Steer = game.Clamp32(game.SanitizeFloat(in.Steer, 0), -1, 1)
	in.Lean = game.Clamp32(game.SanitizeFloat(in.Lean, 0), -1, 1)
	return in
}
