package sim

import "github.com/go-gl/mathgl/mgl64"

// SmokeParticle is one tire-smoke puff.
type SmokeParticle struct {
	Position  mgl64.Vec3
	Life      float64 // (0,1], removed at <= 0
	DecayRate float64 // life lost per tick
	Scale     float64
	Opacity   float64
	Seq       uint64 // spawn order
}

// ParticlePool holds at most Max particles ordered oldest first.
type ParticlePool struct {
	Max int
	P   []SmokeParticle
	rng *Rand
	seq uint64
}

func NewParticlePool(maxParticles int, rng *Rand) *ParticlePool {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	if rng == nil {
		rng = NewRand(1)
	}
	return &ParticlePool{
		Max: maxParticles,
		P:   make([]SmokeParticle, 0, maxParticles),
		rng: rng,
	}
}

func (ps *ParticlePool) Len() int { return len(ps.P) }

func (ps *ParticlePool) Clear() {
	ps.P = ps.P[:0]
}

// Add inserts p, evicting the oldest particle when the pool is full.
// Seq is assigned here.
func (ps *ParticlePool) Add(p SmokeParticle) {
	if len(ps.P) >= ps.Max {
		copy(ps.P, ps.P[1:])
		ps.P = ps.P[:len(ps.P)-1]
	}
	ps.seq++
	p.Seq = ps.seq
	ps.P = append(ps.P, p)
}

// SpawnAt adds one puff near origin. The jitter box is expressed in the
// emitter's local frame and rotated into world space by orientation.
func (ps *ParticlePool) SpawnAt(origin mgl64.Vec3, orientation mgl64.Quat) {
	offset := mgl64.Vec3{
		ps.rng.RangeF(-SmokeSpreadX, SmokeSpreadX),
		SmokeLift,
		ps.rng.RangeF(-SmokeSpreadZ, SmokeSpreadZ),
	}
	ps.Add(SmokeParticle{
		Position:  origin.Add(orientation.Rotate(offset)),
		Life:      1.0,
		DecayRate: ps.rng.RangeF(SmokeMinDecay, SmokeMaxDecay),
		Scale:     SmokeStartScale,
		Opacity:   SmokeMaxOpacity,
	})
}

// Tick ages every particle by one tick and drops the expired ones,
// keeping the survivors in spawn order.
func (ps *ParticlePool) Tick() {
	n := 0
	for i := range ps.P {
		p := ps.P[i]
		p.Life -= p.DecayRate
		if p.Life <= 0 {
			continue
		}
		p.Opacity = p.Life * SmokeMaxOpacity
		p.Scale += SmokeScaleGrowth
		ps.P[n] = p
		n++
	}
	ps.P = ps.P[:n]
}

func (ps *ParticlePool) ForEach(fn func(SmokeParticle)) {
	for _, p := range ps.P {
		fn(p)
	}
}

// RenderData appends the live particles to buf.
// Format: [x, y, z, scale, opacity] * N.
func (ps *ParticlePool) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for _, p := range ps.P {
		buf = append(buf,
			float32(p.Position[0]), float32(p.Position[1]), float32(p.Position[2]),
			float32(p.Scale), float32(p.Opacity))
	}
	return buf
}
