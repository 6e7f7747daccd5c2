package game

import (
	"strconv"

	"github.com/golangdaddy/junkyard/pkg/input"
	"github.com/golangdaddy/junkyard/pkg/render"
	"github.com/golangdaddy/junkyard/pkg/ui"
	"github.com/golangdaddy/junkyard/pkg/vehicle"
)

// howToBox is the HOW TO button painted on the splash art.
var howToBox = [4]float64{340, 205, 80, 40}

func loadingState() State {
	return State{
		Update: func(m *Machine, in *input.State) {
			if m.loader != nil {
				m.loader.Step(m.perTick)
				if !m.loader.Done() {
					return
				}
				if n := m.loader.Failures(); n > 0 {
					m.log.Warn().Int("missing", n).Msg("assets missing, using placeholders")
				}
			}
			m.SetState(StateSplash)
		},
		Render: func(m *Machine, s render.Surface) {
			w, h := m.screenW(), m.screenH()
			s.FillRect(0, 0, w, h, darkBrown)
			ui.Text(s, "LOADING...", w/2, h/2-20, ui.Gold, ui.Big)

			progress, missing := 1.0, 0
			if m.loader != nil {
				progress, missing = m.loader.Progress(), m.loader.Failures()
			}
			ui.ProgressBar(s, (w-200)/2, h/2+5, 200, 16, progress, ui.Gold)
			if missing > 0 {
				ui.Text(s, strconv.Itoa(missing)+" missing", w/2, h/2+40, ui.Red, ui.Small)
			}
		},
	}
}

func splashState() State {
	return State{
		Enter: func(m *Machine) {
			m.sounds.PlayLoop("bluesharp")
			m.clearKeys()
		},
		Update: func(m *Machine, in *input.State) {
			if m.shortcuts(in) {
				return
			}
			if !in.Clicked {
				return
			}
			if in.ClickedIn(howToBox[0], howToBox[1], howToBox[2], howToBox[3]) {
				m.SetState(StateHelp)
				return
			}
			// START, or a click anywhere else
			m.sounds.StopAll()
			m.newGame()
			m.SetState(StateChassis)
		},
		Render: func(m *Machine, s render.Surface) {
			w, h := m.screenW(), m.screenH()
			s.DrawImageScaled("splashpage", 0, 0, w, h, 1)
			if m.ticks/8%2 == 0 {
				ui.Text(s, "Click anywhere to start!", w/2, h-15, ui.Gold, ui.Small)
			}
		},
	}
}

var helpLines = []string{
	"1. Select parts from the conveyor belt:",
	"   chassis, wheels, and engine.",
	"2. Hold SPACEBAR to accelerate.",
	"   Don't redline the tachometer!",
	"3. Launch off the ramp and clear",
	"   the junk piles to land safely.",
	"4. Earn prize money for safe landings.",
	"5. Upgrade your vehicle between jumps.",
	"6. Clear 6 levels of junk to win!",
}

func helpState() State {
	return State{
		Update: func(m *Machine, in *input.State) {
			if in.Clicked {
				m.SetState(m.previous)
			}
		},
		Render: func(m *Machine, s render.Surface) {
			w, h := m.screenW(), m.screenH()
			s.DrawImageScaled("splashpage", 0, 0, w, h, 1)
			s.FillRect(0, 0, w, h, shade75)

			fx, fy := ui.FrameOrigin(w, h)
			s.DrawImage("textframe", fx, fy)
			ui.Text(s, "HOW TO PLAY", w/2, fy+25, ui.Gold, ui.Title)
			for i, line := range helpLines {
				ui.Text(s, line, w/2, fy+50+float64(i)*16, ui.White, ui.Small)
			}
			ui.Button{Label: "BACK", X: (w - 100) / 2, Y: fy + 195, W: 100, H: 25}.Draw(s, true)
		},
	}
}

// shortcuts handles the developer key codes. It reports true when one
// changed state.
func (m *Machine) shortcuts(in *input.State) bool {
	switch {
	case in.ConsumeShortcut("jumpbest"):
		m.log.Info().Msg("shortcut: best build")
		m.newGame()
		m.GS.Build = vehicle.Build{Chassis: "chair", Wheels: "wheel2", Engine: "blower"}
		m.GS.Economy.AdvanceRound()
		m.GS.PendingAdvance = false
		m.sounds.StopAll()
		m.SetState(StateCountdown)
		return true
	case in.ConsumeShortcut("win"):
		m.log.Info().Msg("shortcut: win")
		m.SetState(StateWin)
		return true
	case in.ConsumeShortcut("new"):
		m.log.Info().Msg("shortcut: new game")
		m.newGame()
		m.SetState(StateSplash)
		return true
	case in.ConsumeShortcut("money"):
		m.log.Info().Msg("shortcut: money")
		m.GS.Economy.Money = 100
	}
	return false
}
