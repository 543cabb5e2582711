package synth

import "math"

// impactFullSpeed is the per-tick speed at which the thud reaches full weight.
const impactFullSpeed = 0.5

var impactBody = envelope{attack: 0.01, decay: 0.35, sustain: 0.2, release: 0.5}

// ImpactDuration returns the length of the impact sound for speed, in seconds.
func ImpactDuration(speed float64) float64 {
	return 0.16 + 0.24*impactNorm(speed)
}

func impactNorm(speed float64) float64 {
	return clampF(speed/impactFullSpeed, 0, 1)
}

// Impact renders a wall hit: a falling sub thump, a short noise crack and a
// band-passed body. Harder hits are longer, deeper and louder.
func Impact(speed float64, seed uint64) []byte {
	norm := impactNorm(speed)
	n := int(ImpactDuration(speed) * SampleRate)
	buf := makeBuf(n)
	src := noise{state: seed}
	gain := 0.45 + 0.45*norm
	lp1, lp2 := 0.0, 0.0
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)

		start := 140.0 - 50.0*norm
		end := 38.0 - 10.0*norm
		freq := start * math.Pow(end/start, p*1.8)
		phase += 2 * math.Pi * freq / SampleRate
		sub := math.Sin(phase) * math.Exp(-p*(8.0-3.0*norm)) * 0.6

		crack := 0.0
		if p < 0.03 {
			crack = src.next() * (1 - p/0.03) * 0.7
		}

		raw := src.next()
		lp1 = lp1*0.78 + raw*0.22
		lp2 = lp2*0.97 + raw*0.03
		body := (lp1 - lp2) * impactBody.at(p) * 0.35

		writeFrame(buf, i, saturate((sub+crack+body)*gain))
	}
	return buf
}
