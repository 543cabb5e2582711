package sim

// Vehicle defaults. Velocity is in world units per tick; every factor below
// is applied once per tick, so the feel is tied to the host frame rate.
const (
	DefaultCarSpeed         = 0.01
	DefaultRotationSpeed    = 0.03
	DefaultDriftFactor      = 0.8
	DefaultDriftDecay       = 0.98
	DefaultTraction         = 0.95
	DefaultCollisionRebound = 0.5
	DefaultCarRadius        = 1.0

	driftTurnScale = 1.5
	// Speed above which a boundary hit counts as an impact.
	ImpactSpeed = 0.05
	// Below this length a velocity has no usable direction.
	zeroLength = 1e-9
)

// Default arena (world units).
const (
	DefaultArenaHalfSize = 50.0
)

// Smoke particles.
const (
	MaxParticles       = 100
	SmokeSpreadX       = 0.25
	SmokeLift          = 0.1
	SmokeSpreadZ       = 0.15
	SmokeMinDecay      = 0.02
	SmokeMaxDecay      = 0.05
	SmokeStartScale    = 0.3
	SmokeScaleGrowth   = 0.03
	SmokeMaxOpacity    = 1.0
	ImpactSmokeBurst   = 10
	DriftSmokeInterval = 2
)

// Camera rig.
const (
	OrbitDistance    = 5.0
	OrbitMinHeight   = 1.0
	OrbitMaxHeight   = 10.0
	OrbitStartHeight = 3.0
	FollowDistance   = 5.0
	FollowHeight     = 3.0
	FollowSmoothing  = 0.1
	LookAtHeight     = 1.0
)

// PhysicsParams are the per-run tuning constants of the vehicle.
// Values outside their documented ranges are a caller error and are not
// checked here.
type PhysicsParams struct {
	CarSpeed         float64 // acceleration per tick
	RotationSpeed    float64 // yaw change per tick, radians
	DriftFactor      float64 // [0,1] weight of the current heading while drifting
	DriftDecay       float64 // (0,1] velocity retention while drifting
	Traction         float64 // (0,1] velocity retention otherwise
	CollisionRebound float64 // [0,1] velocity kept after a wall hit
	CarRadius        float64 // > 0
}

func DefaultPhysics() PhysicsParams {
	return PhysicsParams{
		CarSpeed:         DefaultCarSpeed,
		RotationSpeed:    DefaultRotationSpeed,
		DriftFactor:      DefaultDriftFactor,
		DriftDecay:       DefaultDriftDecay,
		Traction:         DefaultTraction,
		CollisionRebound: DefaultCollisionRebound,
		CarRadius:        DefaultCarRadius,
	}
}

// Boundary is the axis-aligned arena on the XZ plane.
type Boundary struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

func DefaultBoundary() Boundary {
	return Boundary{
		MinX: -DefaultArenaHalfSize, MaxX: DefaultArenaHalfSize,
		MinZ: -DefaultArenaHalfSize, MaxZ: DefaultArenaHalfSize,
	}
}

// Contains reports whether (x, z) lies inside the boundary shrunk by inset.
func (b Boundary) Contains(x, z, inset float64) bool {
	return x >= b.MinX+inset && x <= b.MaxX-inset &&
		z >= b.MinZ+inset && z <= b.MaxZ-inset
}
