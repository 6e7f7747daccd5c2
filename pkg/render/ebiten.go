package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSource resolves asset names to loaded bitmaps.
type ImageSource interface {
	Image(name string) (*ebiten.Image, bool)
}

// PlaceholderSource paints stand-ins for scenery that did not load.
type PlaceholderSource interface {
	Placeholder(name string) (*image.RGBA, bool)
}

type gaugeKey struct {
	kind string
	size int
}

// EbitenSurface draws onto an ebiten screen image. Bind it to the frame's
// screen before rendering.
type EbitenSurface struct {
	images       ImageSource
	placeholders PlaceholderSource

	screen *ebiten.Image
	dx, dy float64
	face   text.Face
	white  *ebiten.Image

	stand  map[string]*ebiten.Image
	gauges map[gaugeKey]*ebiten.Image
}

// NewEbitenSurface creates a surface. placeholders may be nil.
func NewEbitenSurface(images ImageSource, placeholders PlaceholderSource) *EbitenSurface {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &EbitenSurface{
		images:       images,
		placeholders: placeholders,
		face:         text.NewGoXFace(bitmapfont.Face),
		white:        white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		stand:        make(map[string]*ebiten.Image),
		gauges:       make(map[gaugeKey]*ebiten.Image),
	}
}

// Bind sets the image this frame draws to and clears the offset.
func (s *EbitenSurface) Bind(screen *ebiten.Image) {
	s.screen = screen
	s.dx, s.dy = 0, 0
}

func (s *EbitenSurface) lookup(name string) *ebiten.Image {
	if img, ok := s.images.Image(name); ok {
		return img
	}
	if img, ok := s.stand[name]; ok {
		return img
	}
	if s.placeholders == nil {
		return nil
	}
	rgba, ok := s.placeholders.Placeholder(name)
	if !ok {
		s.stand[name] = nil
		return nil
	}
	img := ebiten.NewImageFromImage(rgba)
	s.stand[name] = img
	return img
}

func (s *EbitenSurface) DrawImage(name string, x, y float64) {
	img := s.lookup(name)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x+s.dx, y+s.dy)
	s.screen.DrawImage(img, op)
}

func (s *EbitenSurface) DrawImageScaled(name string, x, y, w, h, alpha float64) {
	img := s.lookup(name)
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x+s.dx, y+s.dy)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	s.screen.DrawImage(img, op)
}

func (s *EbitenSurface) DrawImageRotated(name string, cx, cy, radians float64) {
	img := s.lookup(name)
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Rotate(radians)
	op.GeoM.Translate(cx+s.dx, cy+s.dy)
	s.screen.DrawImage(img, op)
}

func (s *EbitenSurface) DrawScrollLayer(name string, scroll, y float64) {
	img := s.lookup(name)
	if img == nil {
		return
	}
	w := float64(img.Bounds().Dx())
	screenW := float64(s.screen.Bounds().Dx())
	x := -math.Mod(scroll, w)
	if x > 0 {
		x -= w
	}
	for ; x < screenW; x += w {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x+s.dx, y+s.dy)
		s.screen.DrawImage(img, op)
	}
}

func (s *EbitenSurface) DrawText(str string, x, y float64, opts TextOptions) {
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	if opts.Shadow {
		s.text(str, x+1, y+1, scale, opts.Align, color.Black)
	}
	s.text(str, x, y, scale, opts.Align, clr)
}

func (s *EbitenSurface) text(str string, x, y, scale float64, align Align, clr color.Color) {
	op := &text.DrawOptions{}
	switch align {
	case AlignLeft:
		op.PrimaryAlign = text.AlignStart
	case AlignRight:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignCenter
	}
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x+s.dx, y+s.dy)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(s.screen, str, s.face, op)
}

func (s *EbitenSurface) MeasureText(str string, scale float64) float64 {
	if scale == 0 {
		scale = 1
	}
	return text.Advance(str, s.face) * scale
}

func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.screen, float32(x+s.dx), float32(y+s.dy), float32(w), float32(h), c, false)
}

func (s *EbitenSurface) StrokeRect(x, y, w, h, width float64, c color.Color) {
	vector.StrokeRect(s.screen, float32(x+s.dx), float32(y+s.dy), float32(w), float32(h), float32(width), c, false)
}

func (s *EbitenSurface) FillGradient(x, y, w, h float64, top, bottom color.Color) {
	x0, y0 := float32(x+s.dx), float32(y+s.dy)
	x1, y1 := x0+float32(w), y0+float32(h)
	vs := []ebiten.Vertex{
		vertex(x0, y0, top), vertex(x1, y0, top),
		vertex(x0, y1, bottom), vertex(x1, y1, bottom),
	}
	s.screen.DrawTriangles(vs, []uint16{0, 1, 2, 1, 2, 3}, s.white, &ebiten.DrawTrianglesOptions{})
}

func (s *EbitenSurface) FillPolygon(points []Point, c color.Color) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(points[0].X+s.dx), float32(points[0].Y+s.dy))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X+s.dx), float32(p.Y+s.dy))
	}
	path.Close()
	s.fillPath(&path, c)
}

func (s *EbitenSurface) fillPath(path *vector.Path, c color.Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.screen.DrawTriangles(vs, is, s.white, op)
}

// DrawGauge uses the loaded dial image when there is one, otherwise a
// painted face cached by kind and size.
func (s *EbitenSurface) DrawGauge(kind string, x, y, size float64) {
	if img, ok := s.images.Image(kind); ok {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x+s.dx, y+s.dy)
		s.screen.DrawImage(img, op)
		return
	}
	key := gaugeKey{kind, int(size)}
	face, ok := s.gauges[key]
	if !ok {
		face = paintGauge(key)
		s.gauges[key] = face
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x+s.dx, y+s.dy)
	s.screen.DrawImage(face, op)
}

func paintGauge(key gaugeKey) *ebiten.Image {
	n := key.size
	img := ebiten.NewImage(n, n)
	r := float32(n) / 2
	vector.DrawFilledCircle(img, r, r, r-1, color.RGBA{235, 230, 215, 255}, true)
	vector.StrokeCircle(img, r, r, r-2, 2, color.RGBA{40, 40, 40, 255}, true)

	// redline on the tachometer's last quarter
	ticks := 10
	for i := 0; i <= ticks; i++ {
		deg := 330 + float64(i)*270/float64(ticks) - 90
		rad := deg * math.Pi / 180
		c := color.RGBA{30, 30, 30, 255}
		if key.kind == "tachometer" && i >= ticks*3/4 {
			c = color.RGBA{200, 20, 20, 255}
		}
		cos, sin := float32(math.Cos(rad)), float32(math.Sin(rad))
		vector.StrokeLine(img, r+cos*(r-8), r+sin*(r-8), r+cos*(r-3), r+sin*(r-3), 1.5, c, true)
	}
	return img
}

func (s *EbitenSurface) DrawNeedle(cx, cy, degrees float64) {
	rad := (degrees - 90) * math.Pi / 180
	rot := func(x, y float64) Point {
		sin, cos := math.Sincos(rad)
		return Point{X: cx + x*cos - y*sin, Y: cy + x*sin + y*cos}
	}
	s.FillPolygon([]Point{rot(0, -28), rot(-2, -6), rot(2, -6)}, color.RGBA{224, 16, 16, 255})
	vector.DrawFilledCircle(s.screen, float32(cx+s.dx), float32(cy+s.dy), 5, color.RGBA{26, 26, 26, 255}, true)
}

func (s *EbitenSurface) ImageSize(name string) (float64, float64, bool) {
	img := s.lookup(name)
	if img == nil {
		return 0, 0, false
	}
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy()), true
}

func (s *EbitenSurface) SetOffset(dx, dy float64) {
	s.dx, s.dy = dx, dy
}

func vertex(x, y float32, c color.Color) ebiten.Vertex {
	r, g, b, a := c.RGBA()
	return ebiten.Vertex{
		DstX: x, DstY: y, SrcX: 1, SrcY: 1,
		ColorR: float32(r) / 0xffff,
		ColorG: float32(g) / 0xffff,
		ColorB: float32(b) / 0xffff,
		ColorA: float32(a) / 0xffff,
	}
}
