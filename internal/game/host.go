package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"drift/internal/sim"
)

// frameSource is the window as seen by one loop iteration.
type frameSource interface {
	inputSource
	GetFramebufferSize() (width, height int)
}

// host owns the per-frame glue between the window and the simulation.
type host struct {
	world *sim.Simulation
	input *Input
	bg    backdrop
	log   zerolog.Logger

	smokeBuf []float32
}

func newHost(world *sim.Simulation, input *Input, log zerolog.Logger) *host {
	h := &host{world: world, input: input, log: log}
	world.Events.Subscribe(sim.EventImpact, func(e sim.Event) {
		h.bg.Flash(e.Speed)
	})
	return h
}

// view is everything drawn for one displayed frame.
type view struct {
	Frame   sim.Frame
	Width   int
	Height  int
	Clear   RGB
	Smoke   int
	Opacity float64
}

// advance runs at most one simulation step. A zero-sized framebuffer
// (minimized window) is not a displayed frame: nothing ticks and ok is false.
func (h *host) advance(src frameSource) (v view, ok bool) {
	if h.input.JustPressed(src, glfw.KeyR) {
		h.world.Reset()
		h.log.Info().Msg("simulation reset")
	}

	w, ht := src.GetFramebufferSize()
	if w <= 0 || ht <= 0 {
		return view{}, false
	}

	frame := h.world.Step(Controls(src), h.input.Orbit(src))
	h.smokeBuf = h.world.Particles.RenderData(h.smokeBuf)
	n, opacity := smokeStats(h.smokeBuf)

	return view{
		Frame:   frame,
		Width:   w,
		Height:  ht,
		Clear:   h.bg.Next(frame.Drifting, opacity),
		Smoke:   n,
		Opacity: opacity,
	}, true
}

// smokeStats reads a packed [x, y, z, scale, opacity] buffer and returns
// the particle count and mean opacity.
func smokeStats(buf []float32) (int, float64) {
	const stride = 5
	n := len(buf) / stride
	if n == 0 {
		return 0, 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(buf[i*stride+4])
	}
	return n, sum / float64(n)
}
