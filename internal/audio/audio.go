// Package audio plays the simulation's collision and drift signals through
// an oto context. A System that failed to start, or a nil *System, is silent.
package audio

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/rs/zerolog"

	"drift/internal/audio/synth"
	"drift/internal/sim"
)

const (
	// 32-bit float (oto.FormatFloat32LE)
	bitDepth = oto.FormatFloat32LE
	// More overlapping thuds than this clip the speaker.
	maxImpacts   = 2
	screechLevel = 0.55
)

// Player is the subset of oto.Player used here.
type Player interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	Close() error
}

// Backend creates players; *oto.Context satisfies it through otoBackend.
type Backend interface {
	NewPlayer(r io.Reader) Player
}

type otoBackend struct{ ctx *oto.Context }

func (b otoBackend) NewPlayer(r io.Reader) Player { return b.ctx.NewPlayer(r) }

type System struct {
	backend Backend
	ready   <-chan struct{}
	volume  float64
	log     zerolog.Logger
	done    chan struct{}

	mu        sync.Mutex
	screech   Player
	wantDrift bool
	closed    bool

	activeImpacts  int32
	impactVariants uint64
}

// Init opens the audio device. Callers should keep going without sound on
// error.
func Init(volume float64, log zerolog.Logger) (*System, error) {
	ctx, ready, err := oto.NewContext(synth.SampleRate, synth.ChannelCount, bitDepth)
	if err != nil {
		return nil, err
	}
	return New(otoBackend{ctx: ctx}, ready, volume, log), nil
}

// New builds a System on an existing backend. ready is closed once the
// backend can play. Impacts requested before that are dropped; the drift
// state is held and applied when the backend becomes ready.
func New(backend Backend, ready <-chan struct{}, volume float64, log zerolog.Logger) *System {
	s := &System{
		backend: backend,
		ready:   ready,
		volume:  volume,
		log:     log.With().Str("component", "audio").Logger(),
		done:    make(chan struct{}),
	}
	if backend != nil && ready != nil && !s.isReady() {
		go s.awaitReady()
	}
	return s
}

func (s *System) awaitReady() {
	select {
	case <-s.ready:
	case <-s.done:
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.log.Debug().Bool("drifting", s.wantDrift).Msg("audio ready")
	s.applyDriftLocked()
}

// Attach subscribes the system to the simulation's signals.
func (s *System) Attach(bus *sim.EventBus) {
	if s == nil || bus == nil {
		return
	}
	bus.Subscribe(sim.EventImpact, func(e sim.Event) { s.PlayImpact(e.Speed) })
	bus.Subscribe(sim.EventDriftStart, func(sim.Event) { s.SetDrifting(true) })
	bus.Subscribe(sim.EventDriftStop, func(sim.Event) { s.SetDrifting(false) })
}

func (s *System) isReady() bool {
	if s == nil || s.backend == nil {
		return false
	}
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// PlayImpact plays a one-shot thud scaled by the post-impact speed.
// It returns immediately; playback runs on its own goroutine.
func (s *System) PlayImpact(speed float64) {
	if !s.isReady() || s.volume <= 0 {
		return
	}
	if atomic.AddInt32(&s.activeImpacts, 1) > maxImpacts {
		atomic.AddInt32(&s.activeImpacts, -1)
		return
	}
	seed := atomic.AddUint64(&s.impactVariants, 1) ^ uint64(time.Now().UnixNano())
	samples := synth.Impact(speed, seed)
	player := s.backend.NewPlayer(&soundReader{data: samples})
	player.SetVolume(s.volume)
	player.Play()
	go func() {
		defer atomic.AddInt32(&s.activeImpacts, -1)
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			s.log.Debug().Err(err).Msg("close impact player")
		}
	}()
}

// SetDrifting starts or pauses the looping tire screech. Before the backend
// is ready only the requested state is recorded.
func (s *System) SetDrifting(on bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.wantDrift = on
	if s.isReady() {
		s.applyDriftLocked()
	}
}

func (s *System) applyDriftLocked() {
	if s.screech == nil {
		if !s.wantDrift {
			return
		}
		s.screech = s.backend.NewPlayer(synth.NewScreech(uint64(time.Now().UnixNano())))
		s.screech.SetVolume(s.volume * screechLevel)
	}
	if s.wantDrift {
		s.screech.Play()
	} else {
		s.screech.Pause()
	}
}

func (s *System) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
	if s.screech == nil {
		return
	}
	if err := s.screech.Close(); err != nil {
		s.log.Debug().Err(err).Msg("close screech player")
	}
	s.screech = nil
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
