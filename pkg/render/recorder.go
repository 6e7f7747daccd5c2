package render

import (
	"image/color"
)

// Op is one recorded draw call.
type Op struct {
	Kind string
	Name string
	Text string
	X, Y float64
	W, H float64
}

// Recorder is a Surface that remembers what was drawn.
type Recorder struct {
	Ops   []Op
	Sizes map[string][2]float64

	dx, dy float64
}

// NewRecorder creates a recorder reporting the given image sizes.
func NewRecorder(sizes map[string][2]float64) *Recorder {
	if sizes == nil {
		sizes = map[string][2]float64{}
	}
	return &Recorder{Sizes: sizes}
}

// Reset forgets recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.dx, r.dy = 0, 0
}

// Texts returns every string drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Images returns every image name drawn, in order.
func (r *Recorder) Images() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Name != "" {
			out = append(out, op.Name)
		}
	}
	return out
}

func (r *Recorder) add(op Op) {
	op.X += r.dx
	op.Y += r.dy
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) DrawImage(name string, x, y float64) {
	r.add(Op{Kind: "image", Name: name, X: x, Y: y})
}

func (r *Recorder) DrawImageScaled(name string, x, y, w, h, _ float64) {
	r.add(Op{Kind: "image", Name: name, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) DrawImageRotated(name string, cx, cy, _ float64) {
	r.add(Op{Kind: "rotated", Name: name, X: cx, Y: cy})
}

func (r *Recorder) DrawScrollLayer(name string, scroll, y float64) {
	r.add(Op{Kind: "scroll", Name: name, X: -scroll, Y: y})
}

func (r *Recorder) DrawText(s string, x, y float64, _ TextOptions) {
	r.add(Op{Kind: "text", Text: s, X: x, Y: y})
}

// MeasureText assumes a fixed six pixel advance.
func (r *Recorder) MeasureText(s string, scale float64) float64 {
	if scale == 0 {
		scale = 1
	}
	return float64(len(s)) * 6 * scale
}

func (r *Recorder) FillRect(x, y, w, h float64, _ color.Color) {
	r.add(Op{Kind: "fill", X: x, Y: y, W: w, H: h})
}

func (r *Recorder) StrokeRect(x, y, w, h, _ float64, _ color.Color) {
	r.add(Op{Kind: "stroke", X: x, Y: y, W: w, H: h})
}

func (r *Recorder) FillGradient(x, y, w, h float64, _, _ color.Color) {
	r.add(Op{Kind: "gradient", X: x, Y: y, W: w, H: h})
}

func (r *Recorder) FillPolygon(points []Point, _ color.Color) {
	if len(points) == 0 {
		return
	}
	r.add(Op{Kind: "polygon", X: points[0].X, Y: points[0].Y})
}

func (r *Recorder) DrawGauge(kind string, x, y, size float64) {
	r.add(Op{Kind: "gauge", Name: kind, X: x, Y: y, W: size, H: size})
}

func (r *Recorder) DrawNeedle(cx, cy, degrees float64) {
	r.add(Op{Kind: "needle", X: cx, Y: cy, W: degrees})
}

func (r *Recorder) ImageSize(name string) (float64, float64, bool) {
	s, ok := r.Sizes[name]
	return s[0], s[1], ok
}

func (r *Recorder) SetOffset(dx, dy float64) {
	r.dx, r.dy = dx, dy
}
