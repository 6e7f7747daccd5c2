package game

import (
	"errors"
	"math"
	"strconv"

	"github.com/golangdaddy/junkyard/pkg/input"
	"github.com/golangdaddy/junkyard/pkg/models"
	"github.com/golangdaddy/junkyard/pkg/models/part"
	"github.com/golangdaddy/junkyard/pkg/render"
	"github.com/golangdaddy/junkyard/pkg/ui"
)

const beltY = 195

var (
	nextButton   = ui.Button{Label: "NEXT", X: 30, Y: 250, W: 100, H: 28}
	selectButton = ui.Button{Label: "SELECT", X: 160, Y: 250, W: 100, H: 28}

	dogHands = [models.DogFrames]string{"hand1", "hand2", "hand3", "hand2", "hand3", "hand2"}
)

type selectionText struct {
	title, prompt string
}

var selectionTexts = map[part.Category]selectionText{
	part.Chassis: {"CHASSIS SELECTION", "Select a chassis"},
	part.Wheels:  {"TIRE SELECTION", "Select tires"},
	part.Engine:  {"ENGINE SELECTION", "Select an engine"},
}

func selectionStateID(cat part.Category) StateID {
	switch cat {
	case part.Wheels:
		return StateWheels
	case part.Engine:
		return StateEngine
	default:
		return StateChassis
	}
}

// selectionState is one of the three conveyor screens. The belt, pricing
// and purchase rules are shared; only the category differs.
func selectionState(cat part.Category) State {
	return State{
		Enter: func(m *Machine) {
			gs := m.GS
			if _, upgrading := gs.UpgradingSlot(); upgrading || cat == part.Chassis {
				gs.Economy.ResetBuildCost()
			}
			gs.Conveyor.Load(cat, m.catalog.Ordered(cat, gs.Economy.Tier()))
			gs.LastRejection = nil
			m.sounds.PlayLoop("assembly")
		},
		Update: func(m *Machine, in *input.State) {
			if m.shortcuts(in) {
				return
			}
			belt := m.GS.Conveyor
			belt.Step()
			if !belt.Stopped || !in.Clicked {
				return
			}
			switch {
			case nextButton.Hit(in):
				belt.Next()
				m.GS.LastRejection = nil
				m.sounds.PlayOnce("sewing")
			case selectButton.Hit(in):
				m.buy(cat, belt.Current())
			}
		},
		Render: func(m *Machine, s render.Surface) {
			renderSelection(m, s, cat)
		},
	}
}

// buy attempts the purchase of the part on the belt.
func (m *Machine) buy(cat part.Category, id string) {
	gs := m.GS
	slot, upgrading := gs.UpgradingSlot()
	if !upgrading {
		if err := gs.Build.Accepts(cat); err != nil {
			gs.LastRejection = err
			m.log.Error().Err(err).Str("part", id).Msg("build out of order")
			return
		}
	}

	price, err := gs.Economy.Purchase(m.catalog, cat, id)
	if err != nil {
		gs.LastRejection = err
		result := "unaffordable"
		if errors.Is(err, models.ErrUnavailable) {
			result = "unavailable"
		}
		m.metrics.Purchase(result)
		m.log.Debug().Err(err).Stringer("category", cat).Str("part", id).Msg("purchase rejected")
		return
	}
	m.metrics.Purchase("ok")
	m.log.Debug().Stringer("category", cat).Str("part", id).Int("price", price).Int("money", gs.Economy.Money).Msg("part bought")
	gs.Conveyor.Bump()

	if upgrading {
		prev := gs.Build.Replace(slot, id)
		gs.Swap = &models.Swap{Category: slot, Previous: prev}
		gs.Upgrading = nil
		m.SetState(StateConfirm)
		return
	}

	if err := gs.Build.Add(cat, id); err != nil {
		m.log.Error().Err(err).Msg("build out of order")
		return
	}
	next, ok := gs.Build.Next()
	if !ok {
		m.SetState(StateConfirm)
		return
	}
	m.SetState(selectionStateID(next))
}

func renderSelection(m *Machine, s render.Surface, cat part.Category) {
	gs := m.GS
	belt := gs.Conveyor
	w, h := m.screenW(), m.screenH()
	texts := selectionTexts[cat]

	s.DrawImageScaled("background", 0, 0, w, h, 1)
	s.DrawScrollLayer("converyortop", belt.BeltOffset, beltY)
	for _, wx := range []float64{50, 210, 370} {
		s.DrawImageRotated("converyorwheel", wx, beltY+14, belt.WheelAngle)
	}

	item := belt.Current()
	if iw, ih, ok := s.ImageSize(item); ok {
		s.DrawImage(item, belt.ItemX-iw/2, beltY-ih)
	}

	s.DrawImage("dog", 380, 140)
	s.DrawImage(dogHands[belt.DogFrame], 355, 170)

	s.DrawImage("terminal", 15, 15)
	ui.Text(s, texts.title, 77, 40, ui.Green, ui.Small)

	if belt.Stopped {
		p, _ := m.catalog.Get(cat, item)
		name := p.Name
		if name == "" {
			name = item
		}
		ui.Text(s, name, 77, 70, ui.White, ui.Small)

		price, err := gs.Economy.Quote(m.catalog, cat, item)
		switch {
		case errors.Is(err, models.ErrUnavailable):
			ui.Text(s, "Not Yet Available", 77, 90, ui.Pink, ui.Small)
		case errors.Is(err, models.ErrUnaffordable):
			ui.Text(s, "Cost: $"+strconv.Itoa(price), 77, 90, ui.White, ui.Small)
			ui.Text(s, "Not Enough Money!", 77, 110, ui.Pink, ui.Small)
		default:
			ui.Text(s, "Cost: $"+strconv.Itoa(price), 77, 90, ui.Green, ui.Small)
		}
	} else {
		ui.Text(s, texts.prompt, 77, 70, ui.White, ui.Small)
	}

	if _, upgrading := gs.UpgradingSlot(); !upgrading {
		y := 120.0
		for _, c := range part.Categories[:gs.Build.Len()] {
			p, _ := m.catalog.Get(c, gs.Build.Slot(c))
			ui.Text(s, p.Name, 77, y, ui.Grey, ui.Small)
			y += 14
		}
	}

	if belt.Stopped {
		nextButton.Draw(s, true)
		selectButton.Draw(s, true)
	}
	ui.Money(s, gs.Economy.Money, w)
}

func confirmButtons(m *Machine) (yes, no ui.Button) {
	w := m.screenW()
	_, fy := ui.FrameOrigin(w, m.screenH())
	yes = ui.Button{Label: "YES", X: w/2 - 110, Y: fy + 175, W: 100, H: 30}
	no = ui.Button{Label: "NO", X: w/2 + 10, Y: fy + 175, W: 100, H: 30}
	return yes, no
}

func confirmState() State {
	return State{
		Enter: func(m *Machine) {
			m.sounds.StopAll()
		},
		Update: func(m *Machine, in *input.State) {
			yes, no := confirmButtons(m)
			gs := m.GS
			switch {
			case yes.Hit(in):
				gs.Swap = nil
				m.SetState(StateAssemble)
			case no.Hit(in):
				refund := gs.Economy.Refund()
				m.log.Debug().Int("refund", refund).Msg("build declined")
				if gs.Swap != nil {
					gs.Build.Replace(gs.Swap.Category, gs.Swap.Previous)
					gs.Swap = nil
					m.SetState(StateUpgrade)
					return
				}
				gs.Build.Clear()
				m.SetState(StateChassis)
			}
		},
		Render: func(m *Machine, s render.Surface) {
			gs := m.GS
			w := m.screenW()
			_, fy := drawDialog(m, s)

			ui.Text(s, "BUILD THIS JUMPER?", w/2, fy+25, ui.Gold, ui.Title)
			ui.Text(s, "Total cost: "+ui.Dollars(gs.Economy.TotalCostThisBuild), w/2, fy+50, ui.White, ui.Normal)

			y := fy + 75
			for _, c := range part.Categories[:gs.Build.Len()] {
				p, _ := m.catalog.Get(c, gs.Build.Slot(c))
				ui.Text(s, p.Name, w/2, y, ui.Silver, ui.Normal)
				y += 18
			}
			ui.Text(s, "Performance: "+strconv.Itoa(int(gs.Build.MaxSpeed(m.catalog, m.t.BaselineMaxSpeed))), w/2, y+5, ui.Gold, ui.Bold)

			yes, no := confirmButtons(m)
			yes.Draw(s, true)
			no.Draw(s, true)
			ui.Money(s, gs.Economy.Money, w)
		},
	}
}

func assembleState() State {
	return State{
		Enter: func(m *Machine) {
			m.GS.Timer = 0
			m.sounds.PlayLoop("fryer")
		},
		Update: func(m *Machine, in *input.State) {
			m.GS.Timer++
			if m.GS.Timer >= m.t.AssembleTicks {
				m.SetState(StateFade)
			}
		},
		Render: func(m *Machine, s render.Surface) {
			w, h := m.screenW(), m.screenH()
			s.DrawImageScaled("background", 0, 0, w, h, 1)

			// the fryer shakes while it works
			t := float64(m.GS.Timer)
			jx, jy := 3*math.Sin(t*2.3), 3*math.Cos(t*3.1)
			if fw, _, ok := s.ImageSize("fryer"); ok {
				s.DrawImage("fryer", (w-fw)/2+jx, 30+jy)
			}
			if m.GS.Timer > 20 {
				drawCar(m, s, w/2, 80, 0)
			}
			ui.Text(s, "ASSEMBLING...", w/2, h-30, ui.Gold, ui.Big)
			ui.Money(s, m.GS.Economy.Money, w)
		},
	}
}

func fadeState() State {
	return State{
		Enter: func(m *Machine) {
			m.GS.FadeTicks = 0
			m.sounds.StopAll()
		},
		Update: func(m *Machine, in *input.State) {
			m.GS.FadeTicks++
			if m.GS.FadeTicks < m.t.FadeTicks {
				return
			}
			if m.GS.PendingAdvance {
				m.nextRound()
				return
			}
			m.SetState(StateCountdown)
		},
		Render: func(m *Machine, s render.Surface) {
			w, h := m.screenW(), m.screenH()
			s.DrawImageScaled("background", 0, 0, w, h, 1)
			alpha := float64(m.GS.FadeTicks) / float64(max(m.t.FadeTicks, 1))
			s.FillRect(0, 0, w, h, blackAlpha(alpha))
		},
	}
}
