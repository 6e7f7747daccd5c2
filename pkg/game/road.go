package game

import (
	"math"
	"strconv"

	"github.com/golangdaddy/junkyard/pkg/input"
	"github.com/golangdaddy/junkyard/pkg/models"
	"github.com/golangdaddy/junkyard/pkg/physics"
	"github.com/golangdaddy/junkyard/pkg/render"
	"github.com/golangdaddy/junkyard/pkg/road"
	"github.com/golangdaddy/junkyard/pkg/ui"
)

var lightImages = [3]string{"lights1", "lights2", "lights3"}

func countdownState() State {
	return State{
		Enter: func(m *Machine) {
			m.mustHaveBuild(StateCountdown)
			gs := m.GS
			gs.Drive.Reset(m.t.RampDistance)
			gs.Scroll = models.Scroll{}
			gs.Timer = 0
			gs.LightPhase = 0
			gs.MaxSpeed = gs.Build.MaxSpeed(m.catalog, m.t.BaselineMaxSpeed)
		},
		Update: func(m *Machine, in *input.State) {
			gs := m.GS
			gs.Timer++
			phase := m.t.CountdownPhaseTicks
			switch {
			case gs.Timer >= 3*phase:
				m.engine.Use(gs.Build.Engine)
				m.engine.Start()
				m.SetState(StateDriving)
			case gs.Timer >= 2*phase:
				gs.LightPhase = 2
			case gs.Timer >= phase:
				gs.LightPhase = 1
			}
		},
		Render: func(m *Machine, s render.Surface) {
			w, h := m.screenW(), m.screenH()
			drawRoad(m, s)
			drawDriver(m, s)

			lx, ly := w/2, h/2-40
			s.DrawImage("light", lx-29, ly)
			s.DrawImage(lightImages[min(max(m.GS.LightPhase, 0), 2)], lx+5, ly+13)

			ui.Text(s, "Distance to Jump: "+strconv.Itoa(int(m.t.RampDistance)), w/2, 12, ui.Yellow, ui.Small)
			ui.Money(s, m.GS.Economy.Money, w)
			if m.GS.LightPhase < 2 {
				ui.Text(s, "GET READY!", w/2, h-20, ui.Gold, ui.Bold)
			} else {
				ui.Text(s, "HOLD SPACEBAR TO GO!", w/2, h-20, ui.Green, ui.Bold)
			}
		},
	}
}

func drivingState() State {
	return State{
		Update: func(m *Machine, in *input.State) {
			gs := m.GS
			ev := physics.StepDrive(&gs.Drive, m.drive, gs.MaxSpeed, in.Accelerate)
			gs.Scroll.Advance(gs.Drive.Speed, m.t.ScrollWrap)
			m.engine.SetSpeed(gs.Drive.Intensity(gs.MaxSpeed))

			switch ev {
			case physics.EngineBlown:
				m.engine.Stop()
				m.sounds.StopAll()
				m.sounds.PlayOnce("meltdown")
				m.metrics.Outcome("blown")
				m.log.Info().Int("round", gs.Economy.CompletedJumps).Msg("engine blown")
				m.SetState(StateBlown)
			case physics.Takeoff:
				m.sounds.StopAll()
				m.sounds.PlayOnce("ramp")
				m.SetState(StateJump)
			}
		},
		Render: func(m *Machine, s render.Surface) {
			w, h := m.screenW(), m.screenH()
			d := m.GS.Drive
			drawRoad(m, s)
			drawDriver(m, s)

			gx, gy := w-170, h-90
			s.DrawGauge("tachometer", gx, gy, gaugeSize)
			s.DrawGauge("speedometer", gx+85, gy, gaugeSize)
			s.DrawNeedle(gx+40, gy+40, d.TachAngle+330)
			s.DrawNeedle(gx+125, gy+40, d.Speed*3+270)

			left := int(math.Max(0, math.Floor(d.Distance)))
			ui.Text(s, "Distance to Jump: "+strconv.Itoa(left), w/2, 12, ui.Yellow, ui.Small)
			ui.Money(s, m.GS.Economy.Money, w)
			if d.Speed == 0 {
				ui.Text(s, "HOLD SPACEBAR", w/2, h-20, ui.Yellow, ui.Small)
			}
		},
	}
}

const gaugeSize = 80

func jumpState() State {
	return State{
		Enter: func(m *Machine) {
			m.mustHaveBuild(StateJump)
			gs := m.GS
			gs.Jump = physics.Launch(gs.Drive.Speed, m.t.GroundY, m.jump)
			gs.Jump.WheelRotation = gs.Drive.WheelRotation
			gs.Timer = 0
		},
		Update: func(m *Machine, in *input.State) {
			gs := m.GS
			j := &gs.Jump
			gs.Timer++

			course := road.ComputeLayout(gs.Economy.CompletedJumps, m.t.GroundY, m.layout)
			hitbox := m.carShape.Bounds(j.X, j.Y)
			switch out := road.Evaluate(hitbox, j.Y, j.Descending(), course, m.t.GroundY, m.t.MissTolerance); out {
			case road.Crashed:
				m.resolveJump(out, StateCrash, "crash")
			case road.Landed:
				m.resolveJump(out, StateSafe, "crowd")
			case road.Missed:
				m.resolveJump(out, StateMissed, "crash")
			default:
				j.Integrate(m.jump)
				m.engine.SetSpeed(gs.Drive.Intensity(gs.MaxSpeed))
			}
		},
		Render: func(m *Machine, s render.Surface) {
			w, h := m.screenW(), m.screenH()
			g := m.t.GroundY
			j := m.GS.Jump

			drawSky(m, s)
			s.FillRect(0, g, w, h-g, dirt)

			camera := math.Max(0, j.X-80)
			s.SetOffset(-camera, 0)
			s.FillPolygon([]render.Point{{X: 20, Y: g}, {X: 80, Y: g}, {X: 80, Y: g - 50}}, rampFill)
			course := road.ComputeLayout(m.GS.Economy.CompletedJumps, g, m.layout)
			for _, pile := range course.Obstacles {
				s.DrawImage("trashpile", pile.X, pile.Y)
			}
			s.DrawImage("bigtruck", course.Landing.X, course.Landing.Y)
			drawCar(m, s, j.X, j.Y, j.WheelRotation)
			s.DrawImage("dog", j.X-15, j.Y-40)
			s.SetOffset(0, 0)

			ui.Money(s, m.GS.Economy.Money, w)
			ui.Text(s, "JUMP!", w/2, 15, ui.Gold, ui.Big)
		},
	}
}

// resolveJump ends the flight with a sound and the matching screen.
func (m *Machine) resolveJump(out road.Outcome, next StateID, sound string) {
	m.engine.Stop()
	m.sounds.StopAll()
	m.sounds.PlayOnce(sound)
	m.metrics.Outcome(out.String())
	m.log.Info().
		Stringer("outcome", out).
		Int("round", m.GS.Economy.CompletedJumps).
		Float64("x", m.GS.Jump.X).
		Msg("jump resolved")
	m.SetState(next)
}
