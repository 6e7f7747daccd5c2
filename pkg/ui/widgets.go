package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/golangdaddy/junkyard/pkg/input"
	"github.com/golangdaddy/junkyard/pkg/render"
)

// Palette
var (
	White  = color.RGBA{255, 255, 255, 255}
	Gold   = color.RGBA{255, 215, 0, 255}
	Green  = color.RGBA{0, 255, 0, 255}
	Yellow = color.RGBA{255, 255, 0, 255}
	Red    = color.RGBA{255, 68, 68, 255}
	Pink   = color.RGBA{255, 102, 102, 255}
	Orange = color.RGBA{255, 136, 0, 255}
	Grey   = color.RGBA{170, 170, 170, 255}
	Silver = color.RGBA{204, 204, 204, 255}
)

// Text scales
const (
	Small  = 0.85
	Normal = 1.0
	Bold   = 1.1
	Title  = 1.35
	Big    = 1.6
	Huge   = 2.0
)

// Frame is the size of the dialog frame image.
const (
	FrameW = 361
	FrameH = 225
)

// Button is a clickable box drawn with the button bitmap.
type Button struct {
	Label      string
	X, Y, W, H float64
}

// Hit reports a click inside the button this tick.
func (b Button) Hit(in *input.State) bool {
	return in.ClickedIn(b.X, b.Y, b.W, b.H)
}

// Draw draws the button, dimmed when disabled.
func (b Button) Draw(s render.Surface, enabled bool) {
	alpha := 1.0
	if !enabled {
		alpha = 0.4
	}
	s.DrawImageScaled("button", b.X, b.Y, b.W, b.H, alpha)
	clr := color.Color(White)
	if !enabled {
		clr = Grey
	}
	s.DrawText(b.Label, b.X+b.W/2, b.Y+b.H/2, render.TextOptions{Color: clr, Scale: Bold, Shadow: true})
}

// Text draws shadowed, centred text.
func Text(s render.Surface, str string, x, y float64, clr color.Color, scale float64) {
	s.DrawText(str, x, y, render.TextOptions{Color: clr, Scale: scale, Shadow: true})
}

// TextAligned draws shadowed text with the given alignment.
func TextAligned(s render.Surface, str string, x, y float64, clr color.Color, scale float64, align render.Align) {
	s.DrawText(str, x, y, render.TextOptions{Align: align, Color: clr, Scale: scale, Shadow: true})
}

// Wrapped breaks str into lines no wider than maxWidth and returns the y of
// the last line drawn.
func Wrapped(s render.Surface, str string, x, y, maxWidth, lineHeight float64, clr color.Color, scale float64) float64 {
	line := ""
	for _, word := range strings.Fields(str) {
		try := word
		if line != "" {
			try = line + " " + word
		}
		if line != "" && s.MeasureText(try, scale) > maxWidth {
			Text(s, line, x, y, clr, scale)
			line = word
			y += lineHeight
			continue
		}
		line = try
	}
	if line != "" {
		Text(s, line, x, y, clr, scale)
	}
	return y
}

// FrameOrigin returns the top-left of a dialog frame centred on screen.
func FrameOrigin(screenW, screenH float64) (float64, float64) {
	return (screenW - FrameW) / 2, (screenH - FrameH) / 2
}

// Money draws the player's cash in the top right corner.
func Money(s render.Surface, money int, screenW float64) {
	TextAligned(s, Dollars(money), screenW-10, 12, Green, Bold, render.AlignRight)
}

// Dollars formats whole dollars the way the game prints prices.
func Dollars(v int) string {
	return fmt.Sprintf("$%d.00", v)
}

// ProgressBar draws an outlined bar filled to frac.
func ProgressBar(s render.Surface, x, y, w, h, frac float64, clr color.Color) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	s.StrokeRect(x, y, w, h, 2, clr)
	s.FillRect(x+2, y+2, (w-4)*frac, h-4, clr)
}
