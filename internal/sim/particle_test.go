package sim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticlePool_CapacityFIFO(t *testing.T) {
	ps := NewParticlePool(MaxParticles, NewRand(42))
	for _i := 0; _i < 150; _i++ {
		ps.SpawnAt(mgl64.Vec3{}, mgl64.QuatIdent())
	}

	require.Equal(t, 100, ps.Len())
	for i, p := range ps.P {
		assert.Equal(t, uint64(51+i), p.Seq, "oldest 50 must be evicted in order")
	}
}

func TestParticlePool_DefaultCapacity(t *testing.T) {
	ps := NewParticlePool(0, nil)
	assert.Equal(t, MaxParticles, ps.Max)
}

func TestParticlePool_SpawnBounds(t *testing.T) {
	ps := NewParticlePool(MaxParticles, NewRand(7))
	origin := mgl64.Vec3{3, 0, -2}
	for _i := 0; _i < 100; _i++ {
		ps.SpawnAt(origin, mgl64.QuatIdent())
	}
	ps.ForEach(func(p SmokeParticle) {
		off := p.Position.Sub(origin)
		assert.LessOrEqual(t, math.Abs(off.X()), SmokeSpreadX)
		assert.InDelta(t, SmokeLift, off.Y(), eps)
		assert.LessOrEqual(t, math.Abs(off.Z()), SmokeSpreadZ)
		assert.Equal(t, 1.0, p.Life)
		assert.GreaterOrEqual(t, p.DecayRate, SmokeMinDecay)
		assert.LessOrEqual(t, p.DecayRate, SmokeMaxDecay)
	})
}

func TestParticlePool_SpawnRotatesOffset(t *testing.T) {
	ps := NewParticlePool(MaxParticles, NewRand(9))
	// Quarter turn about Y swaps the wide and narrow jitter axes.
	rot := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})
	for _i := 0; _i < 100; _i++ {
		ps.SpawnAt(mgl64.Vec3{}, rot)
	}
	ps.ForEach(func(p SmokeParticle) {
		assert.LessOrEqual(t, math.Abs(p.Position.X()), SmokeSpreadZ+eps)
		assert.LessOrEqual(t, math.Abs(p.Position.Z()), SmokeSpreadX+eps)
	})
}

func TestParticlePool_Lifecycle(t *testing.T) {
	ps := NewParticlePool(MaxParticles, nil)
	ps.Add(SmokeParticle{Life: 1, DecayRate: 0.05, Scale: SmokeStartScale})

	for _i := 0; _i < 19; _i++ {
		ps.Tick()
	}
	require.Equal(t, 1, ps.Len(), "still alive after 19 ticks")
	p := ps.P[0]
	assert.InDelta(t, 0.05, p.Life, 1e-9)
	assert.InDelta(t, p.Life*SmokeMaxOpacity, p.Opacity, 1e-12)
	assert.InDelta(t, SmokeStartScale+19*SmokeScaleGrowth, p.Scale, 1e-9)

	ps.Tick()
	ps.Tick()
	assert.Equal(t, 0, ps.Len(), "gone within one tick of 20")
}

func TestParticlePool_TickKeepsOrder(t *testing.T) {
	ps := NewParticlePool(MaxParticles, nil)
	rates := []float64{0.05, 0.5, 0.02, 0.6, 0.03}
	for _, r := range rates {
		ps.Add(SmokeParticle{Life: 1, DecayRate: r})
	}
	ps.Tick()
	ps.Tick()

	var seqs []uint64
	ps.ForEach(func(p SmokeParticle) { seqs = append(seqs, p.Seq) })
	assert.Equal(t, []uint64{1, 3, 5}, seqs)
}

func TestParticlePool_RenderData(t *testing.T) {
	ps := NewParticlePool(MaxParticles, nil)
	ps.Add(SmokeParticle{Position: mgl64.Vec3{1, 2, 3}, Life: 0.5, Scale: 0.4, Opacity: 0.5})

	buf := ps.RenderData(make([]float32, 10))
	assert.Equal(t, []float32{1, 2, 3, 0.4, 0.5}, buf)

	ps.Clear()
	assert.Empty(t, ps.RenderData(buf))
}
