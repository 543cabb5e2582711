// Package synth renders the car's sound effects procedurally as stereo
// float32 little-endian PCM, ready for an oto player.
package synth

import (
	"encoding/binary"
	"math"
)

const (
	SampleRate    = 44100
	ChannelCount  = 2
	BytesPerFrame = 8
)

// writeFrame stores sample in both channels of frame i.
func writeFrame(buf []byte, i int, sample float64) {
	bits := math.Float32bits(float32(sample))
	frame := buf[i*BytesPerFrame : (i+1)*BytesPerFrame]
	binary.LittleEndian.PutUint32(frame[0:4], bits)
	binary.LittleEndian.PutUint32(frame[4:8], bits)
}

// SampleAt decodes the left channel of frame i.
func SampleAt(buf []byte, i int) float64 {
	bits := binary.LittleEndian.Uint32(buf[i*BytesPerFrame:])
	return float64(math.Float32frombits(bits))
}

// saturate keeps mixed voices inside (-1, 1) without a hard clip.
func saturate(x float64) float64 { return math.Tanh(x) }

// envelope is an attack/decay/sustain/release shape over a sound's whole
// length. Stage lengths are fractions of that length.
type envelope struct {
	attack, decay, sustain, release float64
}

func (e envelope) at(p float64) float64 {
	releaseAt := 1 - e.release
	switch {
	case p < e.attack:
		return p / e.attack
	case p < e.attack+e.decay:
		k := (p - e.attack) / e.decay
		return 1 + (e.sustain-1)*k
	case p < releaseAt:
		return e.sustain
	default:
		return e.sustain * clampF((1-p)/e.release, 0, 1)
	}
}

// noise is a seeded white-noise source in [-1, 1).
type noise struct {
	state uint64
}

func (n *noise) next() float64 {
	n.state += 0x9e3779b97f4a7c15
	z := n.state
	z = (z ^ z>>30) * 0xbf58476d1ce4e5b9
	z = (z ^ z>>27) * 0x94d049bb133111eb
	z ^= z >> 31
	return float64(z>>11)/(1<<52) - 1
}

func makeBuf(frames int) []byte { return make([]byte, frames*BytesPerFrame) }

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
