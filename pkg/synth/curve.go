package synth

import "math"

// CurveResolution is the number of points in every distortion table.
const CurveResolution = 256

// Curve maps intensity to a parameter value. Below a non-zero Threshold the
// value is exactly zero; above it the excess is normalised to [0,1], raised
// to Power and interpolated from Base to Peak.
type Curve struct {
	Base      float64
	Peak      float64
	Threshold float64
	Power     float64
}

// Flat is a curve that ignores intensity.
func Flat(v float64) Curve {
	return Curve{Base: v, Peak: v}
}

// Linear interpolates from base to peak.
func Linear(base, peak float64) Curve {
	return Curve{Base: base, Peak: peak}
}

// FadeIn is silent up to threshold and reaches peak at full intensity.
func FadeIn(peak, threshold, power float64) Curve {
	return Curve{Peak: peak, Threshold: threshold, Power: power}
}

// Eval returns the curve value at intensity t, clamped to [0,1].
func (c Curve) Eval(t float64) float64 {
	t = clamp01(t)
	if c.Threshold > 0 && t <= c.Threshold {
		return 0
	}
	u := t
	if c.Threshold > 0 {
		u = (t - c.Threshold) / (1 - c.Threshold)
	}
	p := c.Power
	if p == 0 {
		p = 1
	}
	return c.Base + (c.Peak-c.Base)*math.Pow(u, p)
}

// DistortionCurve samples the soft clipper
// y = (pi + amount) * x / (pi + amount * |x|) over x in [-1, 1].
func DistortionCurve(amount float64) []float64 {
	curve := make([]float64, CurveResolution)
	for i := range curve {
		x := float64(i)*2/CurveResolution - 1
		curve[i] = (math.Pi + amount) * x / (math.Pi + amount*math.Abs(x))
	}
	return curve
}

// shape looks x up in curve with linear interpolation, clamping outside
// [-1, 1].
func shape(curve []float64, x float64) float64 {
	n := len(curve)
	if n == 0 {
		return x
	}
	pos := (x + 1) / 2 * float64(n-1)
	if pos <= 0 {
		return curve[0]
	}
	if pos >= float64(n-1) {
		return curve[n-1]
	}
	i := int(pos)
	frac := pos - float64(i)
	return curve[i] + (curve[i+1]-curve[i])*frac
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
