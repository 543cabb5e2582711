package game

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"drift/internal/config"
	"drift/internal/sim"
)

type fakeSource struct {
	keys   map[glfw.Key]bool
	right  bool
	cx, cy float64
}

func newFakeSource() *fakeSource { return &fakeSource{keys: make(map[glfw.Key]bool)} }

func (f *fakeSource) GetKey(key glfw.Key) glfw.Action {
	if f.keys[key] {
		return glfw.Press
	}
	return glfw.Release
}

func (f *fakeSource) GetMouseButton(button glfw.MouseButton) glfw.Action {
	if button == glfw.MouseButtonRight && f.right {
		return glfw.Press
	}
	return glfw.Release
}

func (f *fakeSource) GetCursorPos() (float64, float64) { return f.cx, f.cy }

func TestControls(t *testing.T) {
	tests := []struct {
		name string
		keys []glfw.Key
		want sim.InputState
	}{
		{"idle", nil, sim.InputState{}},
		{"wasd", []glfw.Key{glfw.KeyW, glfw.KeyA}, sim.InputState{Forward: true, Left: true}},
		{"arrows", []glfw.Key{glfw.KeyDown, glfw.KeyRight}, sim.InputState{Backward: true, Right: true}},
		{"drift", []glfw.Key{glfw.KeyUp, glfw.KeySpace}, sim.InputState{Forward: true, Drift: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newFakeSource()
			for _, k := range tt.keys {
				src.keys[k] = true
			}
			assert.Equal(t, tt.want, Controls(src))
		})
	}
}

func TestJustPressedFiresOnce(t *testing.T) {
	in := NewInput(config.InputConfig{})
	src := newFakeSource()

	assert.False(t, in.JustPressed(src, glfw.KeyR))
	src.keys[glfw.KeyR] = true
	assert.True(t, in.JustPressed(src, glfw.KeyR))
	assert.False(t, in.JustPressed(src, glfw.KeyR))
	src.keys[glfw.KeyR] = false
	assert.False(t, in.JustPressed(src, glfw.KeyR))
	src.keys[glfw.KeyR] = true
	assert.True(t, in.JustPressed(src, glfw.KeyR))
}

func TestOrbitDrag(t *testing.T) {
	in := NewInput(config.InputConfig{OrbitAngleSensitivity: 0.01, OrbitHeightSensitivity: 0.05})
	src := newFakeSource()
	src.cx, src.cy = 100, 100

	assert.Equal(t, sim.OrbitInput{}, in.Orbit(src))

	// First held frame has no previous cursor to diff against.
	src.right = true
	src.cx, src.cy = 120, 90
	assert.Equal(t, sim.OrbitInput{Held: true}, in.Orbit(src))

	src.cx, src.cy = 130, 110
	got := in.Orbit(src)
	assert.True(t, got.Held)
	assert.InDelta(t, -0.1, got.AngleDelta, 1e-12)
	assert.InDelta(t, 1.0, got.HeightDelta, 1e-12)

	src.right = false
	src.cx = 500
	assert.Equal(t, sim.OrbitInput{}, in.Orbit(src))
}
