package synth

import (
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/gopxl/beep"
)

// oscillator generates a periodic wave whose frequency follows a param
type oscillator struct {
	wave  WaveType
	freq  *param
	phase float64
	rate  beep.SampleRate
}

func newOscillator(wave WaveType, freq *param, rate beep.SampleRate) *oscillator {
	return &oscillator{wave: wave, freq: freq, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		f := o.freq.next()
		v := o.wave.sample(o.phase)
		samples[i][0] = v
		samples[i][1] = v
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// noise is uniform white noise from a private generator
type noise struct {
	rng *rand.Rand
}

func newNoise(seed int64) *noise {
	return &noise{rng: rand.New(rand.NewSource(seed))}
}

func (s *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := s.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (s *noise) Err() error { return nil }

// shaper applies a distortion table
type shaper struct {
	in    beep.Streamer
	curve []float64
}

func (s *shaper) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = s.in.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] = shape(s.curve, samples[i][0])
		samples[i][1] = shape(s.curve, samples[i][1])
	}
	return n, ok
}

func (s *shaper) Err() error { return s.in.Err() }

// gain scales its input by a smoothed param
type gain struct {
	in beep.Streamer
	g  *param
}

func (g *gain) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = g.in.Stream(samples)
	for i := range samples[:n] {
		v := g.g.next()
		samples[i][0] *= v
		samples[i][1] *= v
	}
	return n, ok
}

func (g *gain) Err() error { return g.in.Err() }

// tremolo modulates amplitude by 1 + depth*sin, the idle chug
type tremolo struct {
	in    beep.Streamer
	freq  *param
	depth *param
	phase float64
	rate  beep.SampleRate
}

func (t *tremolo) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = t.in.Stream(samples)
	for i := range samples[:n] {
		f := t.freq.next()
		m := 1 + t.depth.next()*math.Sin(2*math.Pi*t.phase)
		samples[i][0] *= m
		samples[i][1] *= m
		t.phase += f / float64(t.rate)
		t.phase -= math.Floor(t.phase)
	}
	return n, ok
}

func (t *tremolo) Err() error { return t.in.Err() }

// crackle emits random decaying pops at a rate in pops per second
type crackle struct {
	rng   *rand.Rand
	pops  *param
	env   float64
	sign  float64
	decay float64
	rate  beep.SampleRate
}

func newCrackle(seed int64, pops *param, rate beep.SampleRate) *crackle {
	return &crackle{
		rng:   rand.New(rand.NewSource(seed)),
		pops:  pops,
		sign:  1,
		decay: math.Exp(-1 / (0.004 * float64(rate))),
		rate:  rate,
	}
}

func (c *crackle) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		p := c.pops.next() / float64(c.rate)
		if c.rng.Float64() < p {
			c.env = 0.5 + c.rng.Float64()*0.5
			if c.rng.Intn(2) == 0 {
				c.sign = -c.sign
			}
		}
		v := c.sign * c.env * (0.6 + 0.4*c.rng.Float64())
		c.env *= c.decay
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (c *crackle) Err() error { return nil }

// release passes audio through until told to end, then lets a fixed number
// of samples out before reporting the stream drained.
type release struct {
	in        beep.Streamer
	remaining atomic.Int64 // -1 while running
}

func newRelease(in beep.Streamer) *release {
	r := &release{in: in}
	r.remaining.Store(-1)
	return r
}

// after schedules the end of the stream n samples from now.
func (r *release) after(n int) {
	r.remaining.CompareAndSwap(-1, int64(n))
}

func (r *release) Stream(samples [][2]float64) (n int, ok bool) {
	left := r.remaining.Load()
	if left == 0 {
		return 0, false
	}
	if left > 0 && int64(len(samples)) > left {
		samples = samples[:left]
	}
	n, ok = r.in.Stream(samples)
	if left > 0 {
		r.remaining.Store(left - int64(n))
	}
	return n, ok
}

func (r *release) Err() error { return r.in.Err() }

func (r *release) ended() bool {
	return r.remaining.Load() == 0
}
