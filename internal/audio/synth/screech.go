package synth

import "math"

// Screech is an endless tire-squeal stream. It implements io.Reader and
// never returns io.EOF; pause the player to silence it.
type Screech struct {
	src    noise
	t      float64
	phase  float64
	lp1    float64
	lp2    float64
	wobble float64
}

func NewScreech(seed uint64) *Screech {
	return &Screech{src: noise{state: seed}}
}

// Read fills p with whole stereo frames.
func (s *Screech) Read(p []byte) (int, error) {
	frames := len(p) / BytesPerFrame
	for i := 0; i < frames; i++ {
		s.t += 1.0 / SampleRate

		// Squeal partial with a slow, irregular pitch wander.
		s.wobble = s.wobble*0.9995 + s.src.next()*0.0005
		freq := 1650 + 140*math.Sin(2*math.Pi*3.1*s.t) + 900*s.wobble
		s.phase += 2 * math.Pi * freq / SampleRate
		if s.phase > 2*math.Pi {
			s.phase -= 2 * math.Pi
		}
		squeal := math.Sin(s.phase) * 0.18

		// Band-passed hiss for the rubber.
		raw := s.src.next()
		s.lp1 = s.lp1*0.55 + raw*0.45
		s.lp2 = s.lp2*0.92 + raw*0.08
		hiss := (s.lp1 - s.lp2) * 0.22

		writeFrame(p, i, saturate(squeal+hiss))
	}
	return frames * BytesPerFrame, nil
}
