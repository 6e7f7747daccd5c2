package input

import "strings"

// MaxKeys bounds the developer shortcut buffer.
const MaxKeys = 32

// State is the per-tick input snapshot. Levels are refreshed every frame;
// the click is an edge held until a tick consumes it.
type State struct {
	Accelerate bool

	Clicked        bool
	ClickX, ClickY float64

	PointerX, PointerY float64
	PointerDown        bool
	DownX, DownY       float64

	// Keys holds recent lowercase keystrokes.
	Keys string
}

// Click records a primary click at logical coordinates.
func (s *State) Click(x, y float64) {
	s.Clicked = true
	s.ClickX, s.ClickY = x, y
}

// Type appends typed characters to the shortcut buffer.
func (s *State) Type(chars string) {
	if chars == "" {
		return
	}
	s.Keys += strings.ToLower(chars)
	if len(s.Keys) > MaxKeys {
		s.Keys = s.Keys[len(s.Keys)-MaxKeys:]
	}
}

// ClearKeys empties the shortcut buffer.
func (s *State) ClearKeys() {
	s.Keys = ""
}

// ConsumeShortcut reports whether the buffer ends with code, clearing it on a
// match.
func (s *State) ConsumeShortcut(code string) bool {
	if code == "" || !strings.HasSuffix(s.Keys, code) {
		return false
	}
	s.Keys = ""
	return true
}

// EndTick clears edges once every handler of the tick has run.
func (s *State) EndTick() {
	s.Clicked = false
}

// ClickedIn reports a click inside the box at (x, y) sized w by h.
func (s *State) ClickedIn(x, y, w, h float64) bool {
	return s.Clicked &&
		s.ClickX >= x && s.ClickX <= x+w &&
		s.ClickY >= y && s.ClickY <= y+h
}
