package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Poller copies ebiten's device state into a State once per frame. Cursor
// and touch positions are already in logical game space because ebiten
// applies the Layout scale.
type Poller struct {
	chars []rune
	touch []ebiten.TouchID
}

// NewPoller creates a poller.
func NewPoller() *Poller {
	return &Poller{}
}

// Poll refreshes levels and adds any new edges to s.
func (p *Poller) Poll(s *State) {
	s.Accelerate = ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsKeyPressed(ebiten.KeyArrowRight) ||
		ebiten.IsKeyPressed(ebiten.KeyArrowUp)

	cx, cy := ebiten.CursorPosition()
	s.PointerX, s.PointerY = float64(cx), float64(cy)

	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.Click(float64(cx), float64(cy))
		s.DownX, s.DownY = float64(cx), float64(cy)
	}

	p.touch = inpututil.AppendJustPressedTouchIDs(p.touch[:0])
	for _, id := range p.touch {
		tx, ty := ebiten.TouchPosition(id)
		s.Click(float64(tx), float64(ty))
		s.DownX, s.DownY = float64(tx), float64(ty)
		s.PointerX, s.PointerY = float64(tx), float64(ty)
	}
	if len(ebiten.AppendTouchIDs(nil)) > 0 {
		down = true
	}
	s.PointerDown = down
	// holding the pointer anywhere also works the throttle
	s.Accelerate = s.Accelerate || down

	p.chars = ebiten.AppendInputChars(p.chars[:0])
	s.Type(string(p.chars))
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.ClearKeys()
	}
}
