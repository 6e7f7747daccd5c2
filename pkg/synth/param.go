package synth

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
)

// param is a continuously smoothed value. Targets are written from the
// game goroutine; value is only touched by the audio goroutine.
type param struct {
	value  float64
	target atomic.Uint64
	coef   atomic.Uint64
	rate   beep.SampleRate
}

func newParam(v float64, rate beep.SampleRate, tau time.Duration) *param {
	p := &param{value: v, rate: rate}
	p.target.Store(math.Float64bits(v))
	p.coef.Store(math.Float64bits(smoothing(rate, tau)))
	return p
}

// smoothing is the per-sample one-pole coefficient for time constant tau.
func smoothing(rate beep.SampleRate, tau time.Duration) float64 {
	if tau <= 0 || rate <= 0 {
		return 1
	}
	return 1 - math.Exp(-1/(tau.Seconds()*float64(rate)))
}

// set moves the target and the speed at which value follows it.
func (p *param) set(target float64, tau time.Duration) {
	p.coef.Store(math.Float64bits(smoothing(p.rate, tau)))
	p.target.Store(math.Float64bits(target))
}

func (p *param) goal() float64 {
	return math.Float64frombits(p.target.Load())
}

// next advances one sample and returns the smoothed value.
func (p *param) next() float64 {
	c := math.Float64frombits(p.coef.Load())
	p.value += (p.goal() - p.value) * c
	return p.value
}
