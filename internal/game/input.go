package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"drift/internal/config"
	"drift/internal/sim"
)

// inputSource is the part of *glfw.Window the adapter polls.
type inputSource interface {
	GetKey(key glfw.Key) glfw.Action
	GetMouseButton(button glfw.MouseButton) glfw.Action
	GetCursorPos() (x, y float64)
}

var (
	keysForward  = []glfw.Key{glfw.KeyW, glfw.KeyUp}
	keysBackward = []glfw.Key{glfw.KeyS, glfw.KeyDown}
	keysLeft     = []glfw.Key{glfw.KeyA, glfw.KeyLeft}
	keysRight    = []glfw.Key{glfw.KeyD, glfw.KeyRight}
	keysDrift    = []glfw.Key{glfw.KeySpace}
)

const orbitButton = glfw.MouseButtonRight

// Input turns polled device state into simulation input. It keeps only
// what is needed for edge detection and drag deltas.
type Input struct {
	prevKeys map[glfw.Key]bool

	dragging     bool
	lastX, lastY float64

	angleSens  float64
	heightSens float64
}

func NewInput(cfg config.InputConfig) *Input {
	return &Input{
		prevKeys:   make(map[glfw.Key]bool),
		angleSens:  cfg.OrbitAngleSensitivity,
		heightSens: cfg.OrbitHeightSensitivity,
	}
}

func (in *Input) JustPressed(src inputSource, key glfw.Key) bool {
	down := src.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func anyDown(src inputSource, keys []glfw.Key) bool {
	for _, k := range keys {
		if src.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// Controls snapshots the driving keys.
func Controls(src inputSource) sim.InputState {
	return sim.InputState{
		Forward:  anyDown(src, keysForward),
		Backward: anyDown(src, keysBackward),
		Left:     anyDown(src, keysLeft),
		Right:    anyDown(src, keysRight),
		Drift:    anyDown(src, keysDrift),
	}
}

// Orbit reports the drag since the previous call while the orbit button is
// held. The first held frame only records the cursor.
func (in *Input) Orbit(src inputSource) sim.OrbitInput {
	held := src.GetMouseButton(orbitButton) == glfw.Press
	x, y := src.GetCursorPos()

	out := sim.OrbitInput{Held: held}
	if held && in.dragging {
		out.AngleDelta = -(x - in.lastX) * in.angleSens
		out.HeightDelta = (y - in.lastY) * in.heightSens
	}
	in.dragging = held
	in.lastX, in.lastY = x, y
	return out
}
