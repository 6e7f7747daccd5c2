package synth

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/rs/zerolog"
)

const (
	// SmoothTime is the time constant every parameter glides with.
	SmoothTime = 50 * time.Millisecond
	// FadeTime is the time constant of the fade to silence on Stop.
	FadeTime = 20 * time.Millisecond
	// ReleaseAfter is how long the faded graph keeps streaming.
	ReleaseAfter = 100 * time.Millisecond
)

// Sink plays a generated stream until it drains.
type Sink interface {
	Play(s beep.Streamer) error
}

// Engine is the procedural engine sound. Start, SetSpeed and Stop are
// called from the game goroutine once per tick at most; the audio backend
// pulls samples on its own goroutine.
type Engine struct {
	rate   beep.SampleRate
	sink   Sink
	log    zerolog.Logger
	preset Preset
	volume float64
	seed   int64

	voice *voice
}

// NewEngine creates a stopped engine using the fallback preset.
func NewEngine(rate beep.SampleRate, sink Sink, log zerolog.Logger) *Engine {
	p, _ := Lookup(Fallback)
	return &Engine{
		rate:   rate,
		sink:   sink,
		log:    log,
		preset: p,
		volume: 1,
		seed:   1,
	}
}

// Use selects a preset by name for the next Start. Unknown names fall back
// to the hot rod.
func (e *Engine) Use(name string) {
	p, ok := Lookup(name)
	if !ok {
		e.log.Debug().Str("preset", name).Str("fallback", p.Name).Msg("unknown engine preset")
	}
	e.preset = p
}

// Preset returns the active preset.
func (e *Engine) Preset() Preset {
	return e.preset
}

// SetVolume sets the output trim applied after the master gain.
func (e *Engine) SetVolume(v float64) {
	e.volume = v
}

// Running reports whether a graph is live.
func (e *Engine) Running() bool {
	return e.voice != nil
}

// Start builds a fresh graph at idle and hands it to the sink. It does
// nothing if already running.
func (e *Engine) Start() {
	if e.voice != nil {
		return
	}
	e.seed++
	e.voice = newVoice(e.preset, e.rate, e.seed)

	var out beep.Streamer = e.voice.out
	out = newVolume(out, e.volume)
	if e.sink != nil {
		if err := e.sink.Play(out); err != nil {
			e.log.Error().Err(err).Msg("engine audio playback failed")
		}
	}
	e.log.Debug().Str("preset", e.preset.Name).Msg("engine started")
}

// SetSpeed retargets every parameter for intensity in [0,1]. It does nothing
// while stopped.
func (e *Engine) SetSpeed(intensity float64) {
	if e.voice == nil {
		return
	}
	e.voice.retarget(e.preset.Targets(intensity), SmoothTime)
}

// Stop fades the graph out and releases it. It does nothing while stopped.
func (e *Engine) Stop() {
	if e.voice == nil {
		return
	}
	e.voice.master.set(0, FadeTime)
	e.voice.out.after(e.rate.N(ReleaseAfter))
	e.voice = nil
	e.log.Debug().Msg("engine stopped")
}

// voice is one live graph: fundamental, sub, two harmonics, scream, two
// noise bands and optional crackle, all amplitude-modulated, low-passed and
// scaled by the master gain.
type voice struct {
	fundamental, sub, harm2, harm3, scream *param
	screamBand, screamQ                    *param
	noiseBand, noiseQ                      *param
	hissCut, hissQ                         *param
	lfoRate, lfoDepth                      *param

	subGain, harm2Gain, harm3Gain, screamGain *param
	noiseGain, hissGain                       *param
	crackleRate, crackleGain                  *param

	lowpass, lowpassQ, master *param

	out *release
}

func newVoice(p Preset, rate beep.SampleRate, seed int64) *voice {
	t := p.Targets(0)
	mk := func(v float64) *param { return newParam(v, rate, SmoothTime) }

	v := &voice{
		fundamental: mk(t.Fundamental),
		sub:         mk(t.Sub),
		harm2:       mk(t.Harm2),
		harm3:       mk(t.Harm3),
		scream:      mk(t.Scream),
		screamBand:  mk(t.ScreamBand),
		screamQ:     mk(p.ScreamQ),
		noiseBand:   mk(t.NoiseBand),
		noiseQ:      mk(p.NoiseQ),
		hissCut:     mk(p.HissCutoff),
		hissQ:       mk(math.Sqrt2 / 2),
		lfoRate:     mk(t.LFORate),
		lfoDepth:    mk(t.LFODepth),

		subGain:     mk(t.SubGain),
		harm2Gain:   mk(t.Harm2Gain),
		harm3Gain:   mk(t.Harm3Gain),
		screamGain:  mk(t.ScreamGain),
		noiseGain:   mk(t.NoiseGain),
		hissGain:    mk(t.HissGain),
		crackleRate: mk(t.CrackleRate),
		crackleGain: mk(t.CrackleGain),

		lowpass:  mk(t.Lowpass),
		lowpassQ: mk(t.LowpassQ),
		master:   mk(t.Master),
	}

	exhaust := &shaper{
		in:    newOscillator(p.ExhaustWave, v.fundamental, rate),
		curve: DistortionCurve(p.Distortion),
	}
	sub := &gain{in: newOscillator(p.SubWave, v.sub, rate), g: v.subGain}
	harm2 := &gain{in: newOscillator(p.Harm2Wave, v.harm2, rate), g: v.harm2Gain}
	harm3 := &gain{in: newOscillator(p.Harm3Wave, v.harm3, rate), g: v.harm3Gain}
	scream := &gain{
		in: newBiquad(&shaper{
			in:    newOscillator(p.ScreamWave, v.scream, rate),
			curve: DistortionCurve(p.ScreamDistortion),
		}, Bandpass, v.screamBand, v.screamQ, rate),
		g: v.screamGain,
	}
	rumble := &gain{in: newBiquad(newNoise(seed), Bandpass, v.noiseBand, v.noiseQ, rate), g: v.noiseGain}
	hiss := &gain{in: newBiquad(newNoise(seed+1), Highpass, v.hissCut, v.hissQ, rate), g: v.hissGain}

	layers := []beep.Streamer{exhaust, sub, harm2, harm3, scream, rumble, hiss}
	if p.Crackle.Enabled {
		layers = append(layers, &gain{in: newCrackle(seed+2, v.crackleRate, rate), g: v.crackleGain})
	}

	mixed := &tremolo{in: beep.Mix(layers...), freq: v.lfoRate, depth: v.lfoDepth, rate: rate}
	toned := newBiquad(mixed, Lowpass, v.lowpass, v.lowpassQ, rate)
	v.out = newRelease(&gain{in: toned, g: v.master})
	return v
}

func (v *voice) retarget(t Targets, tau time.Duration) {
	v.fundamental.set(t.Fundamental, tau)
	v.sub.set(t.Sub, tau)
	v.harm2.set(t.Harm2, tau)
	v.harm3.set(t.Harm3, tau)
	v.scream.set(t.Scream, tau)
	v.screamBand.set(t.ScreamBand, tau)
	v.noiseBand.set(t.NoiseBand, tau)
	v.lfoRate.set(t.LFORate, tau)
	v.lfoDepth.set(t.LFODepth, tau)

	v.subGain.set(t.SubGain, tau)
	v.harm2Gain.set(t.Harm2Gain, tau)
	v.harm3Gain.set(t.Harm3Gain, tau)
	v.screamGain.set(t.ScreamGain, tau)
	v.noiseGain.set(t.NoiseGain, tau)
	v.hissGain.set(t.HissGain, tau)
	v.crackleRate.set(t.CrackleRate, tau)
	v.crackleGain.set(t.CrackleGain, tau)

	v.lowpass.set(t.Lowpass, tau)
	v.lowpassQ.set(t.LowpassQ, tau)
	v.master.set(t.Master, tau)
}

// math.Log2(0) is -Inf, so zero volume is handled as silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
