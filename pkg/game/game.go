package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/junkyard/pkg/input"
	"github.com/golangdaddy/junkyard/pkg/loop"
	"github.com/golangdaddy/junkyard/pkg/render"
	"github.com/golangdaddy/junkyard/pkg/telemetry"
)

// Game implements the ebiten.Game interface. Ebiten calls Update at its own
// frame rate; the driver turns those frames into fixed machine ticks.
type Game struct {
	machine *Machine
	poller  *input.Poller
	input   input.State
	driver  *loop.Driver
	surface *render.EbitenSurface
	metrics *telemetry.Metrics
}

// NewGame wires the machine to ebiten's input and screen. clock may be nil
// for the system clock.
func NewGame(m *Machine, surface *render.EbitenSurface, clock loop.Clock, metrics *telemetry.Metrics) *Game {
	g := &Game{
		machine: m,
		poller:  input.NewPoller(),
		surface: surface,
		metrics: metrics,
	}
	g.driver = loop.NewDriver(m.t.TickRate, m.t.MaxCatchUp, clock, func() {
		g.machine.Tick(&g.input)
	})
	m.Start()
	return g
}

// Update polls input and runs however many ticks the elapsed time calls for.
func (g *Game) Update() error {
	g.poller.Poll(&g.input)
	ran, dropped := g.driver.Frame()
	g.metrics.Ticks(ran, dropped)
	if dropped > 0 {
		g.machine.log.Debug().Int("dropped", dropped).Msg("tick backlog capped")
	}
	return nil
}

// Draw renders the active state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.surface.Bind(screen)
	g.machine.Render(g.surface)
}

// Layout returns the game's logical screen size; ebiten scales it to the
// window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.machine.t.ScreenWidth, g.machine.t.ScreenHeight
}
