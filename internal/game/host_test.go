package game

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drift/internal/config"
	"drift/internal/sim"
)

type fakeWindow struct {
	*fakeSource
	width, height int
}

func (w *fakeWindow) GetFramebufferSize() (int, int) { return w.width, w.height }

func newTestHost(t *testing.T) (*host, *fakeWindow) {
	t.Helper()
	world := sim.New(sim.Options{Seed: 7})
	win := &fakeWindow{fakeSource: newFakeSource(), width: 640, height: 360}
	return newHost(world, NewInput(config.InputConfig{}), zerolog.Nop()), win
}

func TestAdvanceTicksOncePerFrame(t *testing.T) {
	h, win := newTestHost(t)
	win.keys[glfw.KeyW] = true

	for i := 1; i <= 3; i++ {
		v, ok := h.advance(win)
		require.True(t, ok)
		assert.Equal(t, uint64(i), v.Frame.Tick)
		assert.Equal(t, 640, v.Width)
		assert.Equal(t, 360, v.Height)
	}
}

func TestAdvanceSkipsMinimizedWindow(t *testing.T) {
	h, win := newTestHost(t)
	win.keys[glfw.KeyW] = true
	h.advance(win)
	pos := h.world.Vehicle.Position

	win.width, win.height = 0, 0
	for _i := 0; _i < 100; _i++ {
		_, ok := h.advance(win)
		assert.False(t, ok)
	}
	assert.Equal(t, uint64(1), h.world.Tick(), "held keys must not fast-forward while minimized")
	assert.Equal(t, pos, h.world.Vehicle.Position)

	win.width, win.height = 640, 360
	v, ok := h.advance(win)
	require.True(t, ok)
	assert.Equal(t, uint64(2), v.Frame.Tick)
}

func TestAdvanceReportsSmoke(t *testing.T) {
	h, win := newTestHost(t)
	win.keys[glfw.KeyW] = true
	win.keys[glfw.KeySpace] = true

	var v view
	for _i := 0; _i < 10; _i++ {
		v, _ = h.advance(win)
	}
	assert.Equal(t, h.world.Particles.Len(), v.Smoke)
	assert.Positive(t, v.Smoke)
	assert.Greater(t, v.Opacity, 0.0)
	assert.LessOrEqual(t, v.Opacity, 1.0)
}

func TestAdvanceReset(t *testing.T) {
	h, win := newTestHost(t)
	win.keys[glfw.KeyW] = true
	for _i := 0; _i < 5; _i++ {
		h.advance(win)
	}

	win.keys[glfw.KeyW] = false
	win.keys[glfw.KeyR] = true
	v, ok := h.advance(win)
	require.True(t, ok)
	assert.Equal(t, uint64(6), v.Frame.Tick, "reset keeps the tick counter")
	assert.Equal(t, mgl64.Vec3{}, v.Frame.Vehicle.Position)
	assert.Equal(t, mgl64.Vec3{}, v.Frame.Vehicle.Velocity)
	assert.Equal(t, 0, v.Smoke)
}

func TestImpactFlashesBackdrop(t *testing.T) {
	h, _ := newTestHost(t)
	h.world.Events.Emit(sim.Event{Type: sim.EventImpact, Speed: 0.5})
	assert.Equal(t, 1.0, h.bg.flash)
}

func TestSmokeStats(t *testing.T) {
	n, op := smokeStats(nil)
	assert.Zero(t, n)
	assert.Zero(t, op)

	buf := []float32{
		0, 0, 0, 0.3, 1.0,
		1, 0, 1, 0.5, 0.5,
	}
	n, op = smokeStats(buf)
	assert.Equal(t, 2, n)
	assert.InDelta(t, 0.75, op, 1e-9)
}
