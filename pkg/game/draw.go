package game

import (
	"image/color"

	"github.com/golangdaddy/junkyard/pkg/models/part"
	"github.com/golangdaddy/junkyard/pkg/render"
	"github.com/golangdaddy/junkyard/pkg/ui"
)

var (
	darkBrown = color.RGBA{0x1a, 0x0a, 0x00, 0xff}
	shade75   = blackAlpha(0.75)
	shade70   = blackAlpha(0.7)

	skyTop    = color.RGBA{0xd4, 0x60, 0x0a, 0xff}
	skyMid    = color.RGBA{0xc4, 0x1a, 0x04, 0xff}
	skyBottom = color.RGBA{0x8b, 0x00, 0x00, 0xff}
	dirt      = color.RGBA{0x5c, 0x3d, 0x1e, 0xff}
	rampFill  = color.RGBA{0x8b, 0x69, 0x14, 0xff}
)

const (
	smallSuffix = "sm"
	smallScale  = 0.45
	skyHeight   = 150
)

// blackAlpha is black at opacity a, premultiplied.
func blackAlpha(a float64) color.Color {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{0, 0, 0, uint8(a*255 + 0.5)}
}

// drawCar draws the assembled vehicle centred on (cx, cy) with its wheels
// turned by rotation radians. Nothing is drawn until all three parts are
// chosen and their small sprites are loaded.
func drawCar(m *Machine, s render.Surface, cx, cy, rotation float64) {
	b := m.GS.Build
	if !b.Complete() {
		return
	}
	chassis, ok := m.catalog.Get(part.Chassis, b.Chassis)
	if !ok || chassis.Attachments == nil {
		return
	}
	chassisImg := b.Chassis + smallSuffix
	wheelImg := b.Wheels + smallSuffix
	engineImg := b.Engine + smallSuffix

	cw, ch, ok1 := s.ImageSize(chassisImg)
	ew, eh, ok2 := s.ImageSize(engineImg)
	_, _, ok3 := s.ImageSize(wheelImg)
	if !ok1 || !ok2 || !ok3 {
		return
	}

	at := chassis.Attachments
	s.DrawImage(engineImg, cx+at.Engine.X*smallScale-ew/2, cy+at.Engine.Y*smallScale-eh/2)
	s.DrawImage(chassisImg, cx-cw/2, cy-ch/2)
	for _, w := range []part.Offset{at.WheelLeft, at.WheelRight} {
		s.DrawImageRotated(wheelImg, cx+w.X*smallScale, cy+w.Y*smallScale, rotation)
	}
}

// drawSky fills the screen with the sunset, which holds its last colour
// below the horizon band.
func drawSky(m *Machine, s render.Surface) {
	w, h := m.screenW(), m.screenH()
	s.FillRect(0, 0, w, h, skyBottom)
	s.FillGradient(0, 0, w, skyHeight*0.7, skyTop, skyMid)
	s.FillGradient(0, skyHeight*0.7, w, skyHeight*0.3, skyMid, skyBottom)
}

func drawRoad(m *Machine, s render.Surface) {
	drawSky(m, s)
	sc := m.GS.Scroll
	s.DrawScrollLayer("city", sc.City, 49)
	s.DrawScrollLayer("fence", sc.Fence, 177)
	s.DrawScrollLayer("ground", sc.Ground, m.screenH()-62)
}

// drawDriver draws the car at the start line with the dog at the wheel.
func drawDriver(m *Machine, s render.Surface) {
	g := m.t.GroundY
	drawCar(m, s, 100, g-10, m.GS.Drive.WheelRotation)
	s.DrawImage("dog", 85, g-50)
}

// drawDialog draws the shared backdrop and frame and returns the frame's
// origin.
func drawDialog(m *Machine, s render.Surface) (float64, float64) {
	w, h := m.screenW(), m.screenH()
	s.DrawImageScaled("background", 0, 0, w, h, 1)
	fx, fy := ui.FrameOrigin(w, h)
	s.DrawImage("textframe", fx, fy)
	return fx, fy
}
