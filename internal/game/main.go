//go:build !android

package game

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"drift/internal/audio"
	"drift/internal/config"
	"drift/internal/sim"
)

// RunDesktop opens the window and drives the simulation once per displayed
// frame until the window closes or Escape is pressed.
func RunDesktop(cfg *config.Config, log zerolog.Logger) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	var sfx *audio.System
	if cfg.Audio.Enabled {
		sfx, err = audio.Init(cfg.Audio.SFXVolume, log)
		if err != nil {
			log.Warn().Err(err).Msg("audio init failed, continuing without sound")
			sfx = nil
		}
	}
	defer sfx.Close()

	opts := cfg.SimOptions()
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	opts.Logger = &log
	world := sim.New(opts)
	sfx.Attach(world.Events)

	log.Info().
		Uint64("seed", opts.Seed).
		Int("particles", world.Particles.Max).
		Str("camera", world.Camera.Mode.String()).
		Msg("simulation started")

	h := newHost(world, NewInput(cfg.Input), log)
	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		v, ok := h.advance(window)
		if !ok {
			// Minimized: there is no swap to pace on, so wait for events.
			glfw.WaitEventsTimeout(0.1)
			continue
		}

		gl.Viewport(0, 0, int32(v.Width), int32(v.Height))
		r, g, b := v.Clear.Floats()
		gl.ClearColor(r, g, b, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if v.Frame.Tick%titleInterval == 0 {
			window.SetTitle(hudTitle(cfg.Window.Title, v))
			cam := v.Frame.Camera
			log.Trace().
				Uint64("tick", v.Frame.Tick).
				Float64("x", v.Frame.Vehicle.Position.X()).
				Float64("z", v.Frame.Vehicle.Position.Z()).
				Float64("speed", v.Frame.Result.Speed).
				Floats64("camera", cam.Position[:]).
				Floats64("lookAt", cam.LookAt[:]).
				Msg("frame")
		}

		window.SwapBuffers()
	}

	log.Info().Uint64("ticks", world.Tick()).Msg("window closed")
	return nil
}
