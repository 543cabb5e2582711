package sim

import "github.com/go-gl/mathgl/mgl64"

// VehicleState is the pose and motion of the player car. Velocity is a
// per-tick displacement.
type VehicleState struct {
	Position mgl64.Vec3
	Yaw      float64 // radians about +Y
	Velocity mgl64.Vec3
}

// StepResult reports what happened at the boundary during one tick.
type StepResult struct {
	Collided bool    // position was clamped on at least one axis
	Impact   bool    // collided fast enough to trigger effects
	Speed    float64 // |velocity| after the tick
}

// Orientation returns the yaw as a quaternion.
func (v *VehicleState) Orientation() mgl64.Quat {
	return yawQuat(v.Yaw)
}

// Forward returns the unit heading on the XZ plane.
func (v *VehicleState) Forward() mgl64.Vec3 {
	return v.Orientation().Rotate(axisForward)
}

func (v *VehicleState) Speed() float64 {
	return v.Velocity.Len()
}

// Step advances the vehicle by one tick.
func (v *VehicleState) Step(in InputState, p PhysicsParams, b Boundary) StepResult {
	forward := v.Forward()

	if in.Forward {
		dir := forward
		if in.Drift {
			dir = driftHeading(v.Velocity, forward, p.DriftFactor)
		}
		v.Velocity = v.Velocity.Add(dir.Mul(p.CarSpeed))
	}
	if in.Backward {
		v.Velocity = v.Velocity.Sub(forward.Mul(p.CarSpeed))
	}

	turn := p.RotationSpeed
	if in.Drift {
		turn *= driftTurnScale
	}
	if in.Left {
		v.Yaw += turn
	}
	if in.Right {
		v.Yaw -= turn
	}

	// Retention applies every tick, with or without throttle.
	if in.Drift {
		v.Velocity = v.Velocity.Mul(p.DriftDecay)
	} else {
		v.Velocity = v.Velocity.Mul(p.Traction)
	}

	next := v.Position.Add(v.Velocity)
	var res StepResult
	if v.collideAxis(0, next[0], b.MinX, b.MaxX, p) {
		res.Collided = true
	}
	if v.collideAxis(2, next[2], b.MinZ, b.MaxZ, p) {
		res.Collided = true
	}

	if !res.Collided {
		v.Position = next
	} else if v.Velocity.Len() > ImpactSpeed {
		v.Velocity = v.Velocity.Mul(0.5)
		res.Impact = true
	}
	res.Speed = v.Velocity.Len()
	return res
}

// collideAxis clamps one coordinate against [lo+r, hi-r] and reflects the
// matching velocity component. The clamped axis is written immediately; the
// other axis keeps its previous value for this tick.
func (v *VehicleState) collideAxis(axis int, next, lo, hi float64, p PhysicsParams) bool {
	switch {
	case next > hi-p.CarRadius:
		v.Position[axis] = hi - p.CarRadius
	case next < lo+p.CarRadius:
		v.Position[axis] = lo + p.CarRadius
	default:
		return false
	}
	v.Velocity[axis] = -v.Velocity[axis] * p.CollisionRebound
	return true
}

// driftHeading blends the current travel direction with the car's heading.
// A stationary car has no travel direction, so the heading is used as is.
func driftHeading(vel, forward mgl64.Vec3, factor float64) mgl64.Vec3 {
	if vel.Len() < zeroLength {
		return forward
	}
	blend := vel.Normalize().Mul(factor).Add(forward.Mul(1 - factor))
	if blend.Len() < zeroLength {
		return forward
	}
	return blend.Normalize()
}
