package game

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/junkyard/pkg/config"
	"github.com/golangdaddy/junkyard/pkg/input"
	"github.com/golangdaddy/junkyard/pkg/rng"
	"github.com/golangdaddy/junkyard/pkg/ui"
)

type recordingPlayer struct {
	loop  string
	loops []string
	once  []string
	stops int
}

func (p *recordingPlayer) PlayLoop(name string) {
	if p.loop == name {
		return
	}
	p.loop = name
	p.loops = append(p.loops, name)
}

func (p *recordingPlayer) PlayOnce(name string) { p.once = append(p.once, name) }

func (p *recordingPlayer) StopAll() {
	p.loop = ""
	p.stops++
}

type fakeEngine struct {
	preset  string
	running bool
	starts  int
	stops   int
	speeds  []float64
}

func (e *fakeEngine) Use(preset string) { e.preset = preset }
func (e *fakeEngine) Start()            { e.running = true; e.starts++ }
func (e *fakeEngine) Stop()             { e.running = false; e.stops++ }

func (e *fakeEngine) SetSpeed(v float64) {
	e.speeds = append(e.speeds, v)
}

type fakeLoader struct {
	total, done, failed int
}

func (l *fakeLoader) Step(n int) int {
	n = min(n, l.total-l.done)
	l.done += n
	return n
}

func (l *fakeLoader) Progress() float64 { return float64(l.done) / float64(l.total) }
func (l *fakeLoader) Done() bool        { return l.done >= l.total }
func (l *fakeLoader) Failures() int     { return l.failed }

// harness drives a machine with default tuning and scripted randomness.
// A sequence of zeros rolls the low end of every range.
type harness struct {
	t      *testing.T
	m      *Machine
	in     input.State
	sounds *recordingPlayer
	engine *fakeEngine
}

func newHarness(t *testing.T, values ...int) *harness {
	t.Helper()
	if len(values) == 0 {
		values = []int{0}
	}
	h := &harness{t: t, sounds: &recordingPlayer{}, engine: &fakeEngine{}}
	h.m = NewMachine(Deps{
		Tuning: config.DefaultTuning(),
		Rand:   rng.NewSequence(values...),
		Sounds: h.sounds,
		Engine: h.engine,
		Log:    zerolog.Nop(),
	})
	h.m.Start()
	return h
}

func (h *harness) tick() {
	h.m.Tick(&h.in)
}

func (h *harness) ticks(n int) {
	for i := 0; i < n; i++ {
		h.tick()
	}
}

func (h *harness) click(x, y float64) {
	h.in.Click(x, y)
	h.tick()
}

func (h *harness) press(b ui.Button) {
	h.click(b.X+b.W/2, b.Y+b.H/2)
}

func (h *harness) requireState(id StateID) {
	h.t.Helper()
	require.Equal(h.t, id, h.m.Current(), "expected %s, in %s", id, h.m.Current())
}

// waitBelt ticks until the part on the belt locks.
func (h *harness) waitBelt() {
	h.t.Helper()
	for i := 0; !h.m.GS.Conveyor.Stopped; i++ {
		require.Less(h.t, i, 100, "belt never stopped")
		h.tick()
	}
}

// pick cycles the belt to id and buys it.
func (h *harness) pick(id string) {
	h.t.Helper()
	for i := 0; ; i++ {
		require.Less(h.t, i, 10, "%s never came round", id)
		h.waitBelt()
		if h.m.GS.Conveyor.Current() == id {
			break
		}
		h.press(nextButton)
	}
	h.press(selectButton)
}

// toWorkshop goes from loading through the splash to chassis selection.
func (h *harness) toWorkshop() {
	h.t.Helper()
	h.tick()
	h.requireState(StateSplash)
	h.click(10, 10)
	h.requireState(StateChassis)
}

// buildStarter buys the cheapest roadworthy build: cart, go-cart tires and
// the coffee maker.
func (h *harness) buildStarter() {
	h.t.Helper()
	h.toWorkshop()
	h.pick("cart")
	h.requireState(StateWheels)
	h.pick("wheel1")
	h.requireState(StateEngine)
	h.pick("coffee")
	h.requireState(StateConfirm)
}

// toCountdown confirms the starter build and sits through assembly and
// the fade into round one.
func (h *harness) toCountdown() {
	h.t.Helper()
	h.buildStarter()
	yes, _ := confirmButtons(h.m)
	h.press(yes)
	h.requireState(StateAssemble)
	h.ticks(h.m.t.AssembleTicks)
	h.requireState(StateFade)
	h.ticks(h.m.t.FadeTicks)
	h.requireState(StateCountdown)
}

// jumpAt launches from the start of a round at the given takeoff speed and
// flies until the jump resolves.
func (h *harness) jumpAt(speed float64) {
	h.t.Helper()
	h.m.GS.Drive.Speed = speed
	h.m.SetState(StateJump)
	for i := 0; h.m.Current() == StateJump; i++ {
		require.Less(h.t, i, 500, "jump never resolved")
		h.tick()
	}
}
