package sim

import "github.com/rs/zerolog"

// Options configures a Simulation. Zero fields fall back to defaults, except
// ShakeIntensity where zero disables camera shake.
type Options struct {
	Physics      PhysicsParams
	Boundary     Boundary
	Spawn        VehicleState
	MaxParticles int
	Seed         uint64

	ShakeIntensity float64
	ShakeTicks     int

	Logger *zerolog.Logger
}

// Frame is the read-only result of one tick, handed to the renderer.
type Frame struct {
	Tick     uint64
	Vehicle  VehicleState
	Camera   CameraPose
	Result   StepResult
	Drifting bool
}

// Simulation wires the vehicle, the smoke pool and the camera rig together.
// It is not safe for concurrent use; call Step once per frame from one goroutine.
type Simulation struct {
	Params    PhysicsParams
	Bounds    Boundary
	Vehicle   VehicleState
	Particles *ParticlePool
	Camera    *CameraRig
	Events    *EventBus

	spawn          VehicleState
	tick           uint64
	drifting       bool
	shakeIntensity float64
	shakeTicks     int
	log            zerolog.Logger
}

func New(opts Options) *Simulation {
	if opts.Physics == (PhysicsParams{}) {
		opts.Physics = DefaultPhysics()
	}
	if opts.Boundary == (Boundary{}) {
		opts.Boundary = DefaultBoundary()
	}
	if opts.ShakeTicks <= 0 {
		opts.ShakeTicks = 12
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = opts.Logger.With().Str("component", "sim").Logger()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = 1
	}

	s := &Simulation{
		Params:         opts.Physics,
		Bounds:         opts.Boundary,
		Vehicle:        opts.Spawn,
		Particles:      NewParticlePool(opts.MaxParticles, NewRand(seed^0xBEAD)),
		Camera:         NewCameraRig(opts.Spawn, NewRand(seed^0xCA3E7A)),
		Events:         NewEventBus(),
		spawn:          opts.Spawn,
		shakeIntensity: opts.ShakeIntensity,
		shakeTicks:     opts.ShakeTicks,
		log:            log,
	}
	return s
}

func (s *Simulation) Tick() uint64 { return s.tick }

func (s *Simulation) Drifting() bool { return s.drifting }

// Reset puts the car back on its spawn pose and clears the smoke.
// The tick counter keeps running.
func (s *Simulation) Reset() {
	s.Vehicle = s.spawn
	s.Particles.Clear()
	s.Camera.Snap(s.Vehicle)
	s.log.Debug().Uint64("tick", s.tick).Msg("vehicle reset")
}

// Step runs one tick: physics, smoke, camera, then signals.
func (s *Simulation) Step(in InputState, orbit OrbitInput) Frame {
	s.tick++

	res := s.Vehicle.Step(in, s.Params, s.Bounds)

	s.Particles.Tick()
	if res.Impact {
		s.emitSmoke(ImpactSmokeBurst)
		s.Camera.AddShake(s.shakeIntensity, s.shakeTicks)
	}
	if in.Drift && (in.Forward || res.Speed > ImpactSpeed) && s.tick%DriftSmokeInterval == 0 {
		s.emitSmoke(1)
	}

	pose := s.Camera.Update(s.Vehicle, orbit)

	if res.Impact {
		s.log.Debug().Uint64("tick", s.tick).Float64("speed", res.Speed).Msg("impact")
		s.Events.Emit(Event{Type: EventImpact, Tick: s.tick, Position: s.Vehicle.Position, Speed: res.Speed})
	}
	if in.Drift != s.drifting {
		s.drifting = in.Drift
		t := EventDriftStop
		if in.Drift {
			t = EventDriftStart
		}
		s.log.Debug().Uint64("tick", s.tick).Stringer("event", t).Msg("drift")
		s.Events.Emit(Event{Type: t, Tick: s.tick, Position: s.Vehicle.Position, Speed: res.Speed})
	}

	return Frame{
		Tick:     s.tick,
		Vehicle:  s.Vehicle,
		Camera:   pose,
		Result:   res,
		Drifting: s.drifting,
	}
}

func (s *Simulation) emitSmoke(n int) {
	origin := s.Vehicle.Position
	rot := s.Vehicle.Orientation()
	for _i := 0; _i < n; _i++ {
		s.Particles.SpawnAt(origin, rot)
	}
}
