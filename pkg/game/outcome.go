package game

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/junkyard/pkg/config"
	"github.com/golangdaddy/junkyard/pkg/input"
	"github.com/golangdaddy/junkyard/pkg/models/part"
	"github.com/golangdaddy/junkyard/pkg/render"
	"github.com/golangdaddy/junkyard/pkg/rng"
	"github.com/golangdaddy/junkyard/pkg/ui"
)

func safeButtons(m *Machine) (upgrade, next ui.Button) {
	w := m.screenW()
	_, fy := ui.FrameOrigin(w, m.screenH())
	upgrade = ui.Button{Label: "UPGRADE", X: w/2 - 130, Y: fy + 165, W: 120, H: 30}
	next = ui.Button{Label: "NEXT JUMP", X: w/2 + 10, Y: fy + 165, W: 120, H: 30}
	return upgrade, next
}

func safeState() State {
	return State{
		Enter: func(m *Machine) {
			m.log.Info().
				Int("round", m.GS.Economy.CompletedJumps).
				Int("prize", m.GS.Economy.PendingPrizeMoney).
				Msg("safe landing")
		},
		Update: func(m *Machine, in *input.State) {
			upgrade, next := safeButtons(m)
			switch {
			case upgrade.Hit(in):
				m.GS.Economy.AwardPrize()
				m.GS.PendingAdvance = true
				m.openUpgrade()
			case next.Hit(in):
				m.GS.Economy.AwardPrize()
				m.nextRound()
			}
		},
		Render: func(m *Machine, s render.Surface) {
			w := m.screenW()
			_, fy := drawDialog(m, s)
			e := m.GS.Economy

			ui.Text(s, "SAFE LANDING!", w/2, fy+25, ui.Green, ui.Big)
			ui.Text(s, "You earned "+ui.Dollars(e.PendingPrizeMoney)+"!", w/2, fy+55, ui.White, ui.Normal)
			ui.Text(s, fmt.Sprintf("Jumps completed: %d/%d", e.CompletedJumps, m.t.MaxRounds), w/2, fy+80, ui.Silver, ui.Normal)
			drawCar(m, s, w/2, fy+120, 0)

			upgrade, next := safeButtons(m)
			upgrade.Draw(s, true)
			next.Draw(s, true)
			ui.Money(s, e.Money, w)
		},
	}
}

// failure describes one of the three malfunction screens.
type failure struct {
	title      string
	colour     color.Color
	scale      float64
	scene      string
	awardPrize bool // the jump itself was cleared
	repair     func(config.Tuning) rng.Range
	afford     func(cost, money int) string
	broke      string
}

var (
	crashFailure = failure{
		title:  "YOU CRASHED!",
		colour: ui.Red,
		scale:  ui.Big,
		scene:  "crashscene",
		repair: func(t config.Tuning) rng.Range { return t.CrashRepair },
		afford: func(cost, money int) string {
			return fmt.Sprintf("Repairs will cost %s. You have %s.", ui.Dollars(cost), ui.Dollars(money))
		},
		broke: "You don't have enough money for repairs!",
	}
	missedFailure = failure{
		title:      "MISSED THE RAMP!",
		colour:     ui.Orange,
		scale:      ui.Title,
		awardPrize: true,
		repair:     func(t config.Tuning) rng.Range { return t.MissedRepair },
		afford: func(cost, _ int) string {
			return "You made the jump but missed the landing ramp. Repairs cost " + ui.Dollars(cost) + "."
		},
		broke: "Not enough money for repairs!",
	}
	blownFailure = failure{
		title:  "ENGINE BLOWN!",
		colour: ui.Red,
		scale:  ui.Big,
		repair: func(t config.Tuning) rng.Range { return t.BlownRepair },
		afford: func(cost, _ int) string {
			return "You blew your engine! Repairs cost " + ui.Dollars(cost) + "."
		},
		broke: "Not enough money for repairs!",
	}
)

func malfunctionButtons(m *Machine) (retry, upgrade, over ui.Button) {
	w := m.screenW()
	_, fy := ui.FrameOrigin(w, m.screenH())
	retry = ui.Button{Label: "RETRY", X: w/2 - 125, Y: fy + 170, W: 115, H: 30}
	upgrade = ui.Button{Label: "UPGRADE", X: w/2 + 10, Y: fy + 170, W: 115, H: 30}
	over = ui.Button{Label: "GAME OVER", X: (w - 120) / 2, Y: fy + 170, W: 120, H: 30}
	return retry, upgrade, over
}

// malfunctionState charges for repairs and offers a retry, an upgrade or,
// when the player is broke, the end of the game.
func malfunctionState(f failure) State {
	return State{
		Enter: func(m *Machine) {
			e := m.GS.Economy
			if f.awardPrize {
				e.AwardPrize()
			}
			e.PendingRepairCost = e.Roll(f.repair(m.t))
			m.log.Info().
				Str("malfunction", f.title).
				Int("repair", e.PendingRepairCost).
				Int("money", e.Money).
				Msg("repairs needed")
		},
		Update: func(m *Machine, in *input.State) {
			e := m.GS.Economy
			retry, upgrade, over := malfunctionButtons(m)
			if !e.CanAfford(e.PendingRepairCost) {
				if over.Hit(in) {
					m.SetState(StateGameOver)
				}
				return
			}
			switch {
			case retry.Hit(in):
				e.ChargeRepair(e.PendingRepairCost)
				m.SetState(StateCountdown)
			case upgrade.Hit(in):
				e.ChargeRepair(e.PendingRepairCost)
				m.openUpgrade()
			}
		},
		Render: func(m *Machine, s render.Surface) {
			w := m.screenW()
			_, fy := drawDialog(m, s)
			e := m.GS.Economy
			retry, upgrade, over := malfunctionButtons(m)

			ui.Text(s, f.title, w/2, fy+25, f.colour, f.scale)
			if e.CanAfford(e.PendingRepairCost) {
				ui.Wrapped(s, f.afford(e.PendingRepairCost, e.Money), w/2, fy+55, 300, 16, ui.White, ui.Normal)
				if f.scene != "" {
					s.DrawImage(f.scene, w/2-50, fy+100)
				}
				retry.Draw(s, true)
				upgrade.Draw(s, true)
			} else {
				ui.Wrapped(s, f.broke, w/2, fy+60, 300, 16, ui.Pink, ui.Normal)
				over.Draw(s, true)
			}
			ui.Money(s, e.Money, w)
		},
	}
}

type upgradeOption struct {
	cat   part.Category
	label string
	dy    float64
}

var upgradeOptions = []upgradeOption{
	{part.Chassis, "CHASSIS", 95},
	{part.Wheels, "WHEELS", 130},
	{part.Engine, "ENGINE", 165},
}

func (m *Machine) upgradeThreshold(cat part.Category) int {
	switch cat {
	case part.Chassis:
		return m.t.UpgradeChassis
	case part.Wheels:
		return m.t.UpgradeWheels
	default:
		return m.t.UpgradeEngine
	}
}

func upgradeButton(m *Machine, o upgradeOption) ui.Button {
	w := m.screenW()
	_, fy := ui.FrameOrigin(w, m.screenH())
	return ui.Button{Label: o.label, X: (w - 120) / 2, Y: fy + o.dy, W: 120, H: 28}
}

func skipButton(m *Machine) ui.Button {
	w := m.screenW()
	_, fy := ui.FrameOrigin(w, m.screenH())
	return ui.Button{Label: "SKIP", X: (w - 120) / 2, Y: fy + 200, W: 120, H: 22}
}

func upgradeState() State {
	return State{
		Update: func(m *Machine, in *input.State) {
			if !in.Clicked {
				return
			}
			for _, o := range upgradeOptions {
				if upgradeButton(m, o).Hit(in) && m.GS.Economy.CanAfford(m.upgradeThreshold(o.cat)) {
					m.GS.StartUpgrade(o.cat)
					m.SetState(selectionStateID(o.cat))
					return
				}
			}
			if skipButton(m).Hit(in) {
				m.nextRound()
			}
		},
		Render: func(m *Machine, s render.Surface) {
			w := m.screenW()
			_, fy := drawDialog(m, s)
			gs := m.GS

			ui.Text(s, "UPGRADE YOUR VEHICLE", w/2, fy+25, ui.Gold, ui.Title)
			ui.Text(s, "Choose a part to upgrade:", w/2, fy+50, ui.White, ui.Normal)
			rating := int(gs.Build.MaxSpeed(m.catalog, m.t.BaselineMaxSpeed))
			ui.Text(s, fmt.Sprintf("Current rating: %d", rating), w/2, fy+72, ui.Grey, ui.Small)

			for _, o := range upgradeOptions {
				upgradeButton(m, o).Draw(s, gs.Economy.CanAfford(m.upgradeThreshold(o.cat)))
			}
			skipButton(m).Draw(s, true)
			ui.Money(s, gs.Economy.Money, w)
		},
	}
}

func noMoneyButton(m *Machine) ui.Button {
	w := m.screenW()
	_, fy := ui.FrameOrigin(w, m.screenH())
	return ui.Button{Label: "NEXT JUMP", X: (w - 120) / 2, Y: fy + 130, W: 120, H: 30}
}

func noMoneyState() State {
	return State{
		Update: func(m *Machine, in *input.State) {
			if noMoneyButton(m).Hit(in) {
				m.nextRound()
			}
		},
		Render: func(m *Machine, s render.Surface) {
			w := m.screenW()
			_, fy := drawDialog(m, s)
			ui.Text(s, "NOT ENOUGH MONEY", w/2, fy+30, ui.Orange, ui.Title)
			ui.Text(s, "You can't afford any upgrades.", w/2, fy+60, ui.White, ui.Normal)
			noMoneyButton(m).Draw(s, true)
			ui.Money(s, m.GS.Economy.Money, w)
		},
	}
}

// stopEverything silences the samples and the engine.
func stopEverything(m *Machine) {
	m.sounds.StopAll()
	m.engine.Stop()
}

func gameOverButton(m *Machine) ui.Button {
	w := m.screenW()
	_, fy := ui.FrameOrigin(w, m.screenH())
	return ui.Button{Label: "PLAY AGAIN", X: (w - 130) / 2, Y: fy + 150, W: 130, H: 35}
}

func gameOverState() State {
	return State{
		Enter: func(m *Machine) {
			stopEverything(m)
			m.log.Info().Int("jumps", m.GS.Economy.CompletedJumps).Msg("game over")
		},
		Update: func(m *Machine, in *input.State) {
			if gameOverButton(m).Hit(in) {
				m.newGame()
				m.SetState(StateSplash)
			}
		},
		Render: func(m *Machine, s render.Surface) {
			w, h := m.screenW(), m.screenH()
			s.DrawImageScaled("background", 0, 0, w, h, 1)
			s.FillRect(0, 0, w, h, shade70)
			fx, fy := ui.FrameOrigin(w, h)
			s.DrawImage("textframe", fx, fy)

			ui.Text(s, "GAME OVER", w/2, fy+40, ui.Red, ui.Huge)
			ui.Text(s, "You ran out of money!", w/2, fy+75, ui.White, ui.Normal)
			cleared := max(0, m.GS.Economy.CompletedJumps-1)
			ui.Text(s, fmt.Sprintf("Jumps completed: %d", cleared), w/2, fy+100, ui.Silver, ui.Normal)
			gameOverButton(m).Draw(s, true)
		},
	}
}

func winButton(m *Machine) ui.Button {
	w, h := m.screenW(), m.screenH()
	return ui.Button{Label: "PLAY AGAIN", X: (w - 130) / 2, Y: h - 50, W: 130, H: 35}
}

func winState() State {
	return State{
		Enter: func(m *Machine) {
			stopEverything(m)
			m.log.Info().Int("money", m.GS.Economy.Money).Msg("game won")
		},
		Update: func(m *Machine, in *input.State) {
			if winButton(m).Hit(in) {
				m.newGame()
				m.SetState(StateSplash)
			}
		},
		Render: func(m *Machine, s render.Surface) {
			w, h := m.screenW(), m.screenH()
			s.DrawImageScaled("winscreen", 0, 0, w, h, 1)
			ui.Text(s, "YOU WIN!", w/2, 30, ui.Gold, ui.Huge)
			ui.Text(s, fmt.Sprintf("You cleared all %d junk piles!", m.t.MaxRounds), w/2, 60, ui.White, ui.Bold)
			winButton(m).Draw(s, true)
		},
	}
}
