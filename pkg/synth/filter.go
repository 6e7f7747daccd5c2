package synth

import (
	"math"

	"github.com/gopxl/beep"
)

// FilterType selects the biquad response.
type FilterType int

const (
	Lowpass FilterType = iota
	Highpass
	Bandpass
)

// coefficient refresh interval in samples
const filterUpdate = 32

// biquad is an RBJ cookbook filter with smoothed cutoff and Q. It filters
// the left channel and copies the result to the right, since every source in
// the graph is mono.
type biquad struct {
	in   beep.Streamer
	kind FilterType
	freq *param
	q    *param
	rate beep.SampleRate

	b0, b1, b2, a1, a2 float64
	x1, x2, y1, y2     float64
	countdown          int
}

func newBiquad(in beep.Streamer, kind FilterType, freq, q *param, rate beep.SampleRate) *biquad {
	f := &biquad{in: in, kind: kind, freq: freq, q: q, rate: rate}
	f.design(freq.value, q.value)
	return f
}

func (f *biquad) design(freq, q float64) {
	nyquist := float64(f.rate) / 2
	freq = math.Max(10, math.Min(freq, nyquist*0.99))
	q = math.Max(q, 1e-4)

	w0 := 2 * math.Pi * freq / float64(f.rate)
	cos, sin := math.Cos(w0), math.Sin(w0)
	alpha := sin / (2 * q)

	var b0, b1, b2 float64
	switch f.kind {
	case Highpass:
		b0 = (1 + cos) / 2
		b1 = -(1 + cos)
		b2 = (1 + cos) / 2
	case Bandpass:
		b0 = alpha
		b1 = 0
		b2 = -alpha
	default:
		b0 = (1 - cos) / 2
		b1 = 1 - cos
		b2 = (1 - cos) / 2
	}
	a0 := 1 + alpha
	f.b0, f.b1, f.b2 = b0/a0, b1/a0, b2/a0
	f.a1, f.a2 = -2*cos/a0, (1-alpha)/a0
}

func (f *biquad) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.in.Stream(samples)
	for i := range samples[:n] {
		freq, q := f.freq.next(), f.q.next()
		if f.countdown <= 0 {
			f.design(freq, q)
			f.countdown = filterUpdate
		}
		f.countdown--

		x := samples[i][0]
		y := f.b0*x + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2
		f.x2, f.x1 = f.x1, x
		f.y2, f.y1 = f.y1, y
		samples[i][0] = y
		samples[i][1] = y
	}
	return n, ok
}

func (f *biquad) Err() error { return f.in.Err() }
