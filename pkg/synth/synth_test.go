package synth

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = beep.SampleRate(44100)

type captureSink struct {
	streams []beep.Streamer
}

func (c *captureSink) Play(s beep.Streamer) error {
	c.streams = append(c.streams, s)
	return nil
}

// pull streams n samples in 512-sample blocks, returning how many arrived
// and the last block.
func pull(t *testing.T, s beep.Streamer, n int) (int, [][2]float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	got := 0
	var last [][2]float64
	for got < n {
		want := len(buf)
		if n-got < want {
			want = n - got
		}
		k, ok := s.Stream(buf[:want])
		for _, v := range buf[:k] {
			require.False(t, math.IsNaN(v[0]) || math.IsInf(v[0], 0), "non-finite sample")
		}
		got += k
		if k > 0 {
			last = append([][2]float64(nil), buf[:k]...)
		}
		if !ok || k == 0 {
			break
		}
	}
	return got, last
}

func TestDistortionCurve(t *testing.T) {
	c := DistortionCurve(8)
	require.Len(t, c, CurveResolution)
	assert.InDelta(t, -1, c[0], 1e-12)
	assert.InDelta(t, 0, c[CurveResolution/2], 1e-12)
	for k := 1; k < CurveResolution/2; k++ {
		assert.InDelta(t, -c[CurveResolution/2-k], c[CurveResolution/2+k], 1e-12)
	}
	for i := 1; i < len(c); i++ {
		assert.Greater(t, c[i], c[i-1])
	}
	// the same formula regardless of amount: zero amount is the identity
	for i, v := range DistortionCurve(0) {
		assert.InDelta(t, float64(i)*2/CurveResolution-1, v, 1e-12)
	}
}

func TestShapeInterpolates(t *testing.T) {
	c := []float64{-1, 0, 1}
	assert.Equal(t, 0.5, shape(c, 0.5))
	assert.Equal(t, -1.0, shape(c, -3))
	assert.Equal(t, 1.0, shape(c, 2))
}

func TestCurveEval(t *testing.T) {
	c := FadeIn(0.35, 0.55, 2)
	assert.Equal(t, 0.0, c.Eval(0.55))
	assert.InDelta(t, 0.0875, c.Eval(0.775), 1e-12)
	assert.InDelta(t, 0.35, c.Eval(1), 1e-12)
	assert.InDelta(t, 0.35, c.Eval(7), 1e-12, "intensity is clamped")

	assert.Equal(t, 0.5, Flat(0.5).Eval(0.9))
	assert.InDelta(t, 131.0, Linear(22, 240).Eval(0.5), 1e-12)
}

func TestHotRodTargets(t *testing.T) {
	idle := HotRod.Targets(0)
	assert.Equal(t, 22.0, idle.Fundamental)
	assert.Equal(t, 11.0, idle.Sub)
	assert.Equal(t, 11.0, idle.LFORate)
	assert.Equal(t, 132.0, idle.NoiseBand)
	assert.Equal(t, 0.4, idle.LFODepth)
	assert.Equal(t, 800.0, idle.Lowpass)
	assert.Equal(t, 0.3, idle.Master)
	assert.Zero(t, idle.ScreamGain)
	assert.Zero(t, idle.CrackleGain)

	full := HotRod.Targets(1)
	assert.Equal(t, 240.0, full.Fundamental)
	assert.Equal(t, 1200.0, full.Scream)
	assert.Equal(t, 1200.0, full.ScreamBand)
	assert.InDelta(t, 6000, full.Lowpass, 1e-9)
	assert.InDelta(t, 3.7, full.LowpassQ, 1e-9)
	assert.InDelta(t, 0.45, full.Master, 1e-9)
	assert.InDelta(t, 0.35, full.ScreamGain, 1e-9)
	assert.InDelta(t, 0.08, full.LFODepth, 1e-9)
}

func TestThresholdLayers(t *testing.T) {
	for name, p := range presets {
		t.Run(name, func(t *testing.T) {
			layers := []struct {
				layer string
				curve Curve
				get   func(Targets) float64
			}{
				{"scream", p.ScreamGain, func(x Targets) float64 { return x.ScreamGain }},
				{"harm3", p.Harm3Gain, func(x Targets) float64 { return x.Harm3Gain }},
				{"hiss", p.HissGain, func(x Targets) float64 { return x.HissGain }},
			}
			for _, l := range layers {
				if l.curve.Threshold == 0 {
					continue
				}
				prev := 0.0
				for i := 0; i <= 1000; i++ {
					x := float64(i) / 1000
					v := l.get(p.Targets(x))
					if x <= l.curve.Threshold {
						require.Zero(t, v, "%s at %v", l.layer, x)
						continue
					}
					require.GreaterOrEqual(t, v, prev, "%s at %v", l.layer, x)
					prev = v
				}
			}
		})
	}
}

func TestScreamThresholdIsPointFiveFive(t *testing.T) {
	assert.Zero(t, HotRod.Targets(0.55).ScreamGain)
	assert.Greater(t, HotRod.Targets(0.5501).ScreamGain, 0.0)
}

func TestFrequencyTracksIntensity(t *testing.T) {
	for name, p := range presets {
		prev := -1.0
		for i := 0; i <= 100; i++ {
			x := p.Targets(float64(i) / 100)
			assert.Greater(t, x.Fundamental, prev, name)
			assert.Equal(t, x.Fundamental*p.NoiseRatio, x.NoiseBand, name)
			prev = x.Fundamental
		}
	}
}

func TestLookupFallback(t *testing.T) {
	p, ok := Lookup("jet turbine")
	assert.False(t, ok)
	assert.Equal(t, Fallback, p.Name)

	p, ok = Lookup("popcorn")
	assert.True(t, ok)
	assert.True(t, p.Crackle.Enabled)
	assert.Greater(t, p.Targets(0.5).CrackleGain, 0.0)
	assert.Zero(t, HotRod.Targets(0.5).CrackleRate)
}

func TestParamSmoothing(t *testing.T) {
	p := newParam(0, 1000, 50*time.Millisecond)
	p.set(1, 50*time.Millisecond)
	var v float64
	for i := 0; i < 50; i++ {
		v = p.next()
	}
	assert.InDelta(t, 1-math.Exp(-1), v, 1e-9, "one time constant")
	assert.Equal(t, 1.0, p.goal())
}

func TestEngineStartIsIdempotent(t *testing.T) {
	sink := &captureSink{}
	e := NewEngine(testRate, sink, zerolog.Nop())

	e.SetSpeed(0.8)
	assert.False(t, e.Running(), "SetSpeed never starts the engine")

	e.Start()
	e.Start()
	assert.True(t, e.Running())
	assert.Len(t, sink.streams, 1)

	e.Stop()
	e.Stop()
	assert.False(t, e.Running())

	e.Start()
	require.Len(t, sink.streams, 2, "a fresh graph after restart")
	assert.NotSame(t, sink.streams[0], sink.streams[1])
}

func TestEngineSmoothsTowardTargets(t *testing.T) {
	sink := &captureSink{}
	e := NewEngine(testRate, sink, zerolog.Nop())
	e.Start()
	v := e.voice
	stream := sink.streams[0]

	pull(t, stream, 512)
	e.SetSpeed(1)
	pull(t, stream, 64)
	assert.Less(t, v.fundamental.value, 200.0, "no instant jump")

	pull(t, stream, testRate.N(500*time.Millisecond))
	assert.InDelta(t, 240, v.fundamental.value, 0.1)
	assert.InDelta(t, 0.45, v.master.value, 1e-3)
	assert.InDelta(t, 0.35, v.screamGain.value, 1e-3)
}

func TestEngineStopFadesAndReleases(t *testing.T) {
	sink := &captureSink{}
	e := NewEngine(testRate, sink, zerolog.Nop())
	e.Start()
	e.SetSpeed(0.6)
	stream := sink.streams[0]
	pull(t, stream, testRate.N(200*time.Millisecond))

	e.Stop()
	got, last := pull(t, stream, testRate.N(time.Second))
	assert.Equal(t, testRate.N(ReleaseAfter), got)
	require.NotEmpty(t, last)
	assert.Less(t, math.Abs(last[len(last)-1][0]), 0.1, "faded close to silence")

	n, ok := stream.Stream(make([][2]float64, 16))
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestEngineCrackleLayer(t *testing.T) {
	sink := &captureSink{}
	e := NewEngine(testRate, sink, zerolog.Nop())
	e.Use("coffee")
	assert.Equal(t, "coffee", e.Preset().Name)
	e.Start()
	e.SetSpeed(1)
	got, _ := pull(t, sink.streams[0], testRate.N(100*time.Millisecond))
	assert.Equal(t, testRate.N(100*time.Millisecond), got)

	e.Use("no such thing")
	assert.Equal(t, Fallback, e.Preset().Name)
}

func TestZeroVolumeIsSilent(t *testing.T) {
	sink := &captureSink{}
	e := NewEngine(testRate, sink, zerolog.Nop())
	e.SetVolume(0)
	e.Start()
	_, last := pull(t, sink.streams[0], 1024)
	for _, s := range last {
		assert.Zero(t, s[0])
	}
}
