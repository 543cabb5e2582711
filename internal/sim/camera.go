package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type CameraMode uint8

const (
	CameraFollow CameraMode = iota
	CameraOrbit
)

func (m CameraMode) String() string {
	if m == CameraOrbit {
		return "orbit"
	}
	return "follow"
}

// CameraPose is what the renderer needs for one frame.
type CameraPose struct {
	Mode     CameraMode
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
}

// CameraRig places the camera either on a player-dragged orbit or on a
// smoothed chase position behind the car.
type CameraRig struct {
	Mode        CameraMode
	OrbitAngle  float64
	OrbitHeight float64
	Current     mgl64.Vec3 // smoothed follow position

	// Screen shake, in ticks.
	ShakeX, ShakeZ float64
	ShakeTicks     int
	ShakeTotal     int
	ShakeIntensity float64
	rng            *Rand
}

// NewCameraRig starts in follow mode, already settled behind v.
func NewCameraRig(v VehicleState, rng *Rand) *CameraRig {
	if rng == nil {
		rng = NewRand(1)
	}
	return &CameraRig{
		Mode:        CameraFollow,
		OrbitHeight: OrbitStartHeight,
		Current:     followTarget(v),
		rng:         rng,
	}
}

// Update selects the mode from in.Held and computes this tick's pose.
// Switching back to follow resumes smoothing from the last follow position.
func (c *CameraRig) Update(v VehicleState, in OrbitInput) CameraPose {
	var pose CameraPose
	if in.Held {
		c.Mode = CameraOrbit
		c.OrbitAngle += in.AngleDelta
		c.OrbitHeight = clampF(c.OrbitHeight-in.HeightDelta, OrbitMinHeight, OrbitMaxHeight)
		pose.Position = v.Position.Add(mgl64.Vec3{
			OrbitDistance * math.Sin(c.OrbitAngle),
			c.OrbitHeight,
			OrbitDistance * math.Cos(c.OrbitAngle),
		})
		pose.LookAt = v.Position
	} else {
		c.Mode = CameraFollow
		c.Current = lerpVec(c.Current, followTarget(v), FollowSmoothing)
		pose.Position = c.Current
		pose.LookAt = v.Position.Add(mgl64.Vec3{0, LookAtHeight, 0})
	}
	pose.Mode = c.Mode

	c.updateShake()
	pose.Position = pose.Position.Add(mgl64.Vec3{c.ShakeX, 0, c.ShakeZ})
	return pose
}

// Snap places the follow camera directly at its target for v.
func (c *CameraRig) Snap(v VehicleState) {
	c.Current = followTarget(v)
}

// AddShake triggers shake with given intensity and duration in ticks.
func (c *CameraRig) AddShake(intensity float64, ticks int) {
	if intensity <= 0 || ticks <= 0 {
		return
	}
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if ticks > c.ShakeTicks {
		c.ShakeTicks = ticks
		c.ShakeTotal = ticks
	}
}

func (c *CameraRig) updateShake() {
	if c.ShakeTicks <= 0 {
		c.ShakeX = 0
		c.ShakeZ = 0
		c.ShakeIntensity = 0
		return
	}
	mag := c.ShakeIntensity * float64(c.ShakeTicks) / float64(c.ShakeTotal)
	c.ShakeTicks--
	c.ShakeX = c.rng.RangeF(-mag, mag)
	c.ShakeZ = c.rng.RangeF(-mag, mag)
}

func followTarget(v VehicleState) mgl64.Vec3 {
	behind := v.Orientation().Rotate(axisBackward).Mul(FollowDistance)
	return v.Position.Add(behind).Add(mgl64.Vec3{0, FollowHeight, 0})
}
