package sim

// InputState is the current-state snapshot of the player's controls.
// Input adapters write it; the simulation only reads it.
type InputState struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Drift    bool
}

// OrbitInput carries the orbit-drag state for one tick. Deltas are already
// scaled to radians and world units by the adapter.
type OrbitInput struct {
	Held        bool
	AngleDelta  float64
	HeightDelta float64
}
