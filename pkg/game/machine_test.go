package game

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/golangdaddy/junkyard/pkg/config"
	"github.com/golangdaddy/junkyard/pkg/input"
	"github.com/golangdaddy/junkyard/pkg/render"
)

func TestStateNames(t *testing.T) {
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "nomoney", StateNoMoney.String())
	assert.Equal(t, "win", StateWin.String())
	assert.Equal(t, "state(99)", StateID(99).String())
}

func TestEveryStateRegistered(t *testing.T) {
	h := newHarness(t)
	for id := StateLoading; id < numStates; id++ {
		st := h.m.states[id]
		assert.NotNil(t, st.Update, "%s has no update", id)
		assert.NotNil(t, st.Render, "%s has no render", id)
	}
}

func TestLoadingWaitsForLoader(t *testing.T) {
	loader := &fakeLoader{total: 10}
	m := NewMachine(Deps{Tuning: config.DefaultTuning(), Loader: loader, PerTick: 4, Log: zerolog.Nop()})
	m.Start()

	in := &input.State{}
	m.Tick(in)
	m.Tick(in)
	assert.Equal(t, StateLoading, m.Current())
	assert.InDelta(t, 0.8, loader.Progress(), 1e-9)

	m.Tick(in)
	assert.Equal(t, StateSplash, m.Current())
	assert.Equal(t, 3, m.Ticks())
}

func TestLoadingShowsMissingAssets(t *testing.T) {
	loader := &fakeLoader{total: 10, failed: 2}
	m := NewMachine(Deps{Tuning: config.DefaultTuning(), Loader: loader, PerTick: 4, Log: zerolog.Nop()})
	m.Start()
	m.Tick(&input.State{})

	rec := render.NewRecorder(nil)
	m.Render(rec)
	assert.Contains(t, rec.Texts(), "2 missing")

	loader.failed = 0
	rec.Reset()
	m.Render(rec)
	assert.NotContains(t, rec.Texts(), "2 missing")
	assert.Contains(t, rec.Texts(), "LOADING...")
}

func TestSetStateRecordsPrevious(t *testing.T) {
	h := newHarness(t)
	h.tick()
	h.requireState(StateSplash)
	assert.Equal(t, StateLoading, h.m.Previous())
	assert.Equal(t, "bluesharp", h.sounds.loop)
}

func TestTransitionFromEnterPanics(t *testing.T) {
	h := newHarness(t)
	h.m.states[StateHelp] = State{
		Enter: func(m *Machine) { m.SetState(StateSplash) },
	}
	assert.Panics(t, func() { h.m.SetState(StateHelp) })
}

func TestIncompleteBuildPanics(t *testing.T) {
	for _, id := range []StateID{StateCountdown, StateJump} {
		t.Run(id.String(), func(t *testing.T) {
			h := newHarness(t)
			h.toWorkshop()
			h.pick("cart")
			assert.Panics(t, func() { h.m.SetState(id) })
		})
	}
}

func TestHelpReturnsToSplash(t *testing.T) {
	h := newHarness(t)
	h.tick()
	h.click(howToBox[0]+5, howToBox[1]+5)
	h.requireState(StateHelp)

	h.click(10, 10)
	h.requireState(StateSplash)
}

func TestShortcuts(t *testing.T) {
	t.Run("jumpbest", func(t *testing.T) {
		h := newHarness(t)
		h.toWorkshop()
		h.in.Type("JumpBest")
		h.tick()
		h.requireState(StateCountdown)
		assert.Equal(t, "chair", h.m.GS.Build.Chassis)
		assert.Equal(t, "wheel2", h.m.GS.Build.Wheels)
		assert.Equal(t, "blower", h.m.GS.Build.Engine)
		assert.Equal(t, 1, h.m.GS.Economy.CompletedJumps)
		assert.False(t, h.m.GS.PendingAdvance)
		assert.Equal(t, 77.0, h.m.GS.MaxSpeed)
	})
	t.Run("money", func(t *testing.T) {
		h := newHarness(t)
		h.toWorkshop()
		h.in.Type("money")
		h.tick()
		h.requireState(StateChassis)
		assert.Equal(t, 100, h.m.GS.Economy.Money)
		assert.Empty(t, h.in.Keys)
	})
	t.Run("win", func(t *testing.T) {
		h := newHarness(t)
		h.tick()
		h.in.Type("win")
		h.tick()
		h.requireState(StateWin)
	})
	t.Run("new", func(t *testing.T) {
		h := newHarness(t)
		h.toWorkshop()
		h.pick("toilet")
		h.in.Type("new")
		h.tick()
		h.requireState(StateSplash)
		assert.Equal(t, 35, h.m.GS.Economy.Money)
		assert.Zero(t, h.m.GS.Build.Len())
	})
	t.Run("ignored while driving", func(t *testing.T) {
		h := newHarness(t)
		h.toCountdown()
		h.in.Type("win")
		h.tick()
		h.requireState(StateCountdown)
	})
}

func TestSplashClearsTypedKeys(t *testing.T) {
	h := newHarness(t)
	h.in.Type("jump")
	h.tick()
	h.requireState(StateSplash)
	assert.Empty(t, h.in.Keys)
}

func TestRenderDoesNotMutate(t *testing.T) {
	h := newHarness(t)
	h.toCountdown()
	h.ticks(20)

	before := *h.m.GS
	rec := render.NewRecorder(nil)
	h.m.Render(rec)
	h.m.Render(rec)
	assert.Equal(t, before.Drive, h.m.GS.Drive)
	assert.Equal(t, before.Timer, h.m.GS.Timer)
	assert.Equal(t, before.LightPhase, h.m.GS.LightPhase)
	assert.Contains(t, rec.Images(), "lights2")
}
