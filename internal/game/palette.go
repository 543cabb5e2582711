package game

import "math"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Floats returns the colour as normalized GL components.
func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Asphalt RGB
	Drift   RGB
	Impact  RGB
	Smoke   RGB
}{
	Asphalt: RGB{R: 38, G: 40, B: 46},
	Drift:   RGB{R: 70, G: 58, B: 84},
	Impact:  RGB{R: 196, G: 72, B: 44},
	Smoke:   RGB{R: 150, G: 150, B: 156},
}

// Lerp blends c toward to by t, clamped to [0, 1], rounding each channel.
func (c RGB) Lerp(to RGB, t float64) RGB {
	t = math.Max(0, math.Min(1, t))
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return RGB{R: mix(c.R, to.R), G: mix(c.G, to.G), B: mix(c.B, to.B)}
}

// backdrop is the frame clear colour: tinted while drifting, hazed by live
// smoke and flashed on impacts. The flash fades per frame.
type backdrop struct {
	flash float64
	drift float64
}

const (
	flashDecay = 0.85
	driftBlend = 0.15
	flashSpeed = 0.5 // post-impact speed giving a full flash
	maxHaze    = 0.3
)

func (b *backdrop) Flash(speed float64) {
	f := speed / flashSpeed
	if f > 1 {
		f = 1
	}
	if f > b.flash {
		b.flash = f
	}
}

// Next advances one frame and returns the clear colour. smoke is the mean
// opacity of the live particles.
func (b *backdrop) Next(drifting bool, smoke float64) RGB {
	target := 0.0
	if drifting {
		target = 1
	}
	b.drift += (target - b.drift) * driftBlend
	col := Palette.Asphalt.Lerp(Palette.Drift, b.drift)
	col = col.Lerp(Palette.Smoke, smoke*maxHaze)
	col = col.Lerp(Palette.Impact, b.flash)
	b.flash *= flashDecay
	if b.flash < 0.01 {
		b.flash = 0
	}
	return col
}
