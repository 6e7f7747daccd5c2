package render

import "image/color"

// Align is horizontal text alignment about the anchor.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// TextOptions controls DrawText. The anchor's y is the line's middle.
type TextOptions struct {
	Align  Align
	Color  color.Color
	Scale  float64 // 0 means 1
	Shadow bool
}

// Point is a vertex in game space.
type Point struct {
	X, Y float64
}

// Surface is what state render callbacks draw on. Images are addressed by
// asset name; a name that is not loaded is skipped or drawn as a
// placeholder.
type Surface interface {
	DrawImage(name string, x, y float64)
	// DrawImageScaled stretches name into the box and multiplies its alpha.
	DrawImageScaled(name string, x, y, w, h, alpha float64)
	// DrawImageRotated draws name centred on (cx, cy), turned by radians.
	DrawImageRotated(name string, cx, cy, radians float64)
	// DrawScrollLayer tiles name horizontally, shifted left by scroll.
	DrawScrollLayer(name string, scroll, y float64)
	DrawText(s string, x, y float64, opts TextOptions)
	MeasureText(s string, scale float64) float64
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h, width float64, c color.Color)
	// FillGradient fills the box from top colour to bottom colour.
	FillGradient(x, y, w, h float64, top, bottom color.Color)
	FillPolygon(points []Point, c color.Color)
	// DrawGauge draws a dial face of the given kind, size pixels square.
	DrawGauge(kind string, x, y, size float64)
	// DrawNeedle draws a gauge needle pivoting at (cx, cy). Zero degrees
	// points right.
	DrawNeedle(cx, cy, degrees float64)
	ImageSize(name string) (w, h float64, ok bool)
	// SetOffset shifts every later draw call, for camera scrolling.
	SetOffset(dx, dy float64)
}
