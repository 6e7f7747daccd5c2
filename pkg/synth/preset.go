package synth

// CrackleLayer is the optional pop and sputter layer.
type CrackleLayer struct {
	Enabled bool
	Rate    Curve // pops per second
	Gain    Curve
}

// Preset is one engine personality. Every preset drives the same graph;
// only the values differ.
type Preset struct {
	Name string

	// Fundamental frequency in Hz over intensity.
	Frequency Curve

	ExhaustWave WaveType
	SubWave     WaveType
	Harm2Wave   WaveType
	Harm3Wave   WaveType
	ScreamWave  WaveType

	// Multiples of the fundamental.
	SubRatio    float64
	ScreamRatio float64
	NoiseRatio  float64
	LFORatio    float64

	SubGain    Curve
	Harm2Gain  Curve
	Harm3Gain  Curve
	ScreamGain Curve
	NoiseGain  Curve
	HissGain   Curve

	ScreamQ    float64
	NoiseQ     float64
	HissCutoff float64 // Hz

	Lowpass  Curve // cutoff in Hz
	LowpassQ Curve

	Distortion       float64
	ScreamDistortion float64

	// Roughness is the idle amplitude wobble depth.
	Roughness Curve
	Volume    Curve

	Crackle CrackleLayer
}

// Targets are the parameter values a preset asks for at one intensity.
type Targets struct {
	Fundamental float64
	Sub         float64
	Harm2       float64
	Harm3       float64
	Scream      float64
	ScreamBand  float64
	NoiseBand   float64
	LFORate     float64

	SubGain    float64
	Harm2Gain  float64
	Harm3Gain  float64
	ScreamGain float64
	NoiseGain  float64
	HissGain   float64

	LFODepth float64
	Lowpass  float64
	LowpassQ float64
	Master   float64

	CrackleRate float64
	CrackleGain float64
}

// Targets computes every modulated parameter at intensity t in [0,1].
func (p Preset) Targets(t float64) Targets {
	t = clamp01(t)
	f := p.Frequency.Eval(t)
	out := Targets{
		Fundamental: f,
		Sub:         f * p.SubRatio,
		Harm2:       f * 2,
		Harm3:       f * 3,
		Scream:      f * p.ScreamRatio,
		ScreamBand:  f * p.ScreamRatio,
		NoiseBand:   f * p.NoiseRatio,
		LFORate:     f * p.LFORatio,

		SubGain:    p.SubGain.Eval(t),
		Harm2Gain:  p.Harm2Gain.Eval(t),
		Harm3Gain:  p.Harm3Gain.Eval(t),
		ScreamGain: p.ScreamGain.Eval(t),
		NoiseGain:  p.NoiseGain.Eval(t),
		HissGain:   p.HissGain.Eval(t),

		LFODepth: p.Roughness.Eval(t),
		Lowpass:  p.Lowpass.Eval(t),
		LowpassQ: p.LowpassQ.Eval(t),
		Master:   p.Volume.Eval(t),
	}
	if p.Crackle.Enabled {
		out.CrackleRate = p.Crackle.Rate.Eval(t)
		out.CrackleGain = p.Crackle.Gain.Eval(t)
	}
	return out
}

// Fallback is the canonical hot rod, used for unknown names.
const Fallback = "hotrod"

// HotRod is the reference tuning: gritty saw exhaust, a scream above 55%
// and hiss above 50%.
var HotRod = Preset{
	Name:        "hotrod",
	Frequency:   Linear(22, 240),
	ExhaustWave: WaveSaw,
	SubWave:     WaveSaw,
	Harm2Wave:   WaveSquare,
	Harm3Wave:   WaveSaw,
	ScreamWave:  WaveSaw,
	SubRatio:    0.5,
	ScreamRatio: 5,
	NoiseRatio:  6,
	LFORatio:    0.5,

	SubGain:    Flat(0.5),
	Harm2Gain:  Linear(0.15, 0.40),
	Harm3Gain:  FadeIn(0.3, 0.4, 1),
	ScreamGain: FadeIn(0.35, 0.55, 2),
	NoiseGain:  Linear(0.12, 0.32),
	HissGain:   FadeIn(0.15, 0.5, 1),

	ScreamQ:    2,
	NoiseQ:     1.5,
	HissCutoff: 3000,

	Lowpass:  Curve{Base: 800, Peak: 6000, Power: 2},
	LowpassQ: Linear(0.7, 3.7),

	Distortion:       8,
	ScreamDistortion: 20,

	Roughness: Linear(0.4, 0.08),
	Volume:    Linear(0.30, 0.45),
}

var presets = map[string]Preset{}

func init() {
	for _, p := range []Preset{HotRod, blower(), airConditioner(), coffee(), fan(), popcorn()} {
		presets[p.Name] = p
	}
}

// Lookup returns the named preset, or the fallback and false.
func Lookup(name string) (Preset, bool) {
	p, ok := presets[name]
	if !ok {
		return presets[Fallback], false
	}
	return p, true
}

// hair dryer: high, thin whine that is mostly hiss
func blower() Preset {
	p := HotRod
	p.Name = "blower"
	p.Frequency = Linear(90, 420)
	p.ExhaustWave = WaveTriangle
	p.SubGain = Flat(0.15)
	p.NoiseGain = Linear(0.25, 0.45)
	p.NoiseRatio = 9
	p.HissGain = FadeIn(0.3, 0.2, 1)
	p.ScreamGain = FadeIn(0.2, 0.7, 2)
	p.Distortion = 3
	p.Roughness = Linear(0.1, 0.02)
	p.Lowpass = Curve{Base: 2500, Peak: 9000, Power: 1}
	return p
}

// air conditioner: low compressor hum with a rattle
func airConditioner() Preset {
	p := HotRod
	p.Name = "airconditioner"
	p.Frequency = Linear(30, 160)
	p.ExhaustWave = WaveSquare
	p.Harm2Wave = WaveSine
	p.SubGain = Flat(0.6)
	p.NoiseGain = Linear(0.2, 0.3)
	p.NoiseRatio = 4
	p.Roughness = Linear(0.55, 0.3)
	p.Lowpass = Curve{Base: 500, Peak: 2500, Power: 2}
	p.Volume = Linear(0.28, 0.38)
	return p
}

// coffee maker: gurgling pops over a weak motor
func coffee() Preset {
	p := HotRod
	p.Name = "coffee"
	p.Frequency = Linear(18, 150)
	p.ExhaustWave = WaveSine
	p.Harm2Gain = Linear(0.05, 0.2)
	p.NoiseGain = Linear(0.18, 0.3)
	p.NoiseRatio = 3
	p.Roughness = Linear(0.6, 0.35)
	p.Crackle = CrackleLayer{Enabled: true, Rate: Linear(6, 40), Gain: Linear(0.2, 0.35)}
	return p
}

// ceiling fan: soft sine chop
func fan() Preset {
	p := HotRod
	p.Name = "fan"
	p.Frequency = Linear(12, 120)
	p.ExhaustWave = WaveSine
	p.SubWave = WaveSine
	p.Harm2Wave = WaveTriangle
	p.Harm2Gain = Linear(0.1, 0.25)
	p.ScreamGain = FadeIn(0.15, 0.8, 2)
	p.Distortion = 1
	p.Roughness = Linear(0.7, 0.5)
	p.LFORatio = 0.25
	p.Lowpass = Curve{Base: 600, Peak: 3000, Power: 2}
	return p
}

// popcorn popper: buzzy motor with kernels going off
func popcorn() Preset {
	p := HotRod
	p.Name = "popcorn"
	p.Frequency = Linear(40, 260)
	p.Harm3Gain = FadeIn(0.35, 0.3, 1)
	p.Crackle = CrackleLayer{Enabled: true, Rate: Curve{Base: 2, Peak: 60, Power: 2}, Gain: Linear(0.25, 0.5)}
	return p
}
