package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"drift/internal/sim"
)

const (
	fileName  = "drift"
	envPrefix = "DRIFT"
)

// Config is the fully resolved runtime configuration.
type Config struct {
	LogLevel string
	LogJSON  bool
	Seed     uint64

	Physics   sim.PhysicsParams
	Boundary  sim.Boundary
	Particles ParticleConfig
	Camera    CameraConfig
	Input     InputConfig
	Window    WindowConfig
	Audio     AudioConfig
}

type ParticleConfig struct {
	Capacity int
}

type CameraConfig struct {
	ShakeIntensity float64
	ShakeTicks     int
}

// InputConfig scales raw cursor deltas (pixels) into orbit deltas.
type InputConfig struct {
	OrbitAngleSensitivity  float64
	OrbitHeightSensitivity float64
}

type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

type AudioConfig struct {
	Enabled   bool
	SFXVolume float64
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logJSON", false)
	v.SetDefault("seed", 0)

	def := sim.DefaultPhysics()
	v.SetDefault("physics.carSpeed", def.CarSpeed)
	v.SetDefault("physics.rotationSpeed", def.RotationSpeed)
	v.SetDefault("physics.driftFactor", def.DriftFactor)
	v.SetDefault("physics.driftDecay", def.DriftDecay)
	v.SetDefault("physics.traction", def.Traction)
	v.SetDefault("physics.collisionRebound", def.CollisionRebound)
	v.SetDefault("physics.carRadius", def.CarRadius)

	b := sim.DefaultBoundary()
	v.SetDefault("boundary.minX", b.MinX)
	v.SetDefault("boundary.maxX", b.MaxX)
	v.SetDefault("boundary.minZ", b.MinZ)
	v.SetDefault("boundary.maxZ", b.MaxZ)

	v.SetDefault("particles.capacity", sim.MaxParticles)

	v.SetDefault("camera.shakeIntensity", 0.0)
	v.SetDefault("camera.shakeTicks", 12)

	v.SetDefault("input.orbitAngleSensitivity", 0.01)
	v.SetDefault("input.orbitHeightSensitivity", 0.05)

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "drift")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.sfxVolume", 0.6)
}

// Load reads drift.json from configDir (optional), applies DRIFT_* environment
// overrides and defaults, and validates the result.
func Load(configDir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(fileName)
	v.SetConfigType("json")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := decode(v)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func decode(v *viper.Viper) *Config {
	cfg := &Config{
		LogLevel: v.GetString("logLevel"),
		LogJSON:  v.GetBool("logJSON"),
		Seed:     v.GetUint64("seed"),
		Physics: sim.PhysicsParams{
			CarSpeed:         v.GetFloat64("physics.carSpeed"),
			RotationSpeed:    v.GetFloat64("physics.rotationSpeed"),
			DriftFactor:      v.GetFloat64("physics.driftFactor"),
			DriftDecay:       v.GetFloat64("physics.driftDecay"),
			Traction:         v.GetFloat64("physics.traction"),
			CollisionRebound: v.GetFloat64("physics.collisionRebound"),
			CarRadius:        v.GetFloat64("physics.carRadius"),
		},
		Boundary: sim.Boundary{
			MinX: v.GetFloat64("boundary.minX"),
			MaxX: v.GetFloat64("boundary.maxX"),
			MinZ: v.GetFloat64("boundary.minZ"),
			MaxZ: v.GetFloat64("boundary.maxZ"),
		},
		Particles: ParticleConfig{
			Capacity: v.GetInt("particles.capacity"),
		},
		Camera: CameraConfig{
			ShakeIntensity: v.GetFloat64("camera.shakeIntensity"),
			ShakeTicks:     v.GetInt("camera.shakeTicks"),
		},
		Input: InputConfig{
			OrbitAngleSensitivity:  v.GetFloat64("input.orbitAngleSensitivity"),
			OrbitHeightSensitivity: v.GetFloat64("input.orbitHeightSensitivity"),
		},
		Window: WindowConfig{
			Width:  v.GetInt("window.width"),
			Height: v.GetInt("window.height"),
			Title:  v.GetString("window.title"),
		},
		Audio: AudioConfig{
			Enabled:   v.GetBool("audio.enabled"),
			SFXVolume: v.GetFloat64("audio.sfxVolume"),
		},
	}
	return cfg
}

// Validate reports every parameter outside its allowed range.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	p := c.Physics
	check(p.CarSpeed > 0, "physics.carSpeed must be > 0, got %v", p.CarSpeed)
	check(p.RotationSpeed >= 0, "physics.rotationSpeed must be >= 0, got %v", p.RotationSpeed)
	check(p.DriftFactor >= 0 && p.DriftFactor <= 1, "physics.driftFactor must be in [0,1], got %v", p.DriftFactor)
	check(p.DriftDecay > 0 && p.DriftDecay <= 1, "physics.driftDecay must be in (0,1], got %v", p.DriftDecay)
	check(p.Traction > 0 && p.Traction <= 1, "physics.traction must be in (0,1], got %v", p.Traction)
	check(p.CollisionRebound >= 0 && p.CollisionRebound <= 1, "physics.collisionRebound must be in [0,1], got %v", p.CollisionRebound)
	check(p.CarRadius > 0, "physics.carRadius must be > 0, got %v", p.CarRadius)

	b := c.Boundary
	check(b.MinX < b.MaxX, "boundary.minX (%v) must be < boundary.maxX (%v)", b.MinX, b.MaxX)
	check(b.MinZ < b.MaxZ, "boundary.minZ (%v) must be < boundary.maxZ (%v)", b.MinZ, b.MaxZ)
	check(b.MaxX-b.MinX > 2*p.CarRadius && b.MaxZ-b.MinZ > 2*p.CarRadius,
		"boundary must be wider than the car (radius %v)", p.CarRadius)

	check(c.Particles.Capacity > 0, "particles.capacity must be > 0, got %d", c.Particles.Capacity)
	check(c.Camera.ShakeIntensity >= 0, "camera.shakeIntensity must be >= 0, got %v", c.Camera.ShakeIntensity)
	check(c.Window.Width > 0 && c.Window.Height > 0, "window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	check(c.Audio.SFXVolume >= 0 && c.Audio.SFXVolume <= 1, "audio.sfxVolume must be in [0,1], got %v", c.Audio.SFXVolume)

	return errors.Join(errs...)
}

// SimOptions maps the config onto simulation options.
func (c *Config) SimOptions() sim.Options {
	return sim.Options{
		Physics:        c.Physics,
		Boundary:       c.Boundary,
		MaxParticles:   c.Particles.Capacity,
		Seed:           c.Seed,
		ShakeIntensity: c.Camera.ShakeIntensity,
		ShakeTicks:     c.Camera.ShakeTicks,
	}
}
