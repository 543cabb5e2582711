package sim

import "github.com/go-gl/mathgl/mgl64"

var (
	axisUp       = mgl64.Vec3{0, 1, 0}
	axisForward  = mgl64.Vec3{0, 0, -1}
	axisBackward = mgl64.Vec3{0, 0, 1}
)

// yawQuat returns the rotation about +Y by yaw radians.
func yawQuat(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, axisUp)
}

func lerpVec(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Rand is a seeded splitmix64 stream. Each subsystem gets its own stream
// derived from the simulation seed so runs are reproducible.
type Rand struct {
	state uint64
}

func NewRand(seed uint64) *Rand { return &Rand{state: seed} }

func (r *Rand) NextU64() uint64 {
	r.state += 0x9e3779b97f4a7c15
	z := r.state
	z = (z ^ z>>30) * 0xbf58476d1ce4e5b9
	z = (z ^ z>>27) * 0x94d049bb133111eb
	return z ^ z>>31
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) / (1 << 53)
}

// RangeF returns a value in [lo, hi); lo when the range is empty.
func (r *Rand) RangeF(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + (hi-lo)*r.Float64()
}
