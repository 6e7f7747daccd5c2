package game

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/golangdaddy/junkyard/pkg/audio"
	"github.com/golangdaddy/junkyard/pkg/config"
	"github.com/golangdaddy/junkyard/pkg/input"
	"github.com/golangdaddy/junkyard/pkg/models"
	"github.com/golangdaddy/junkyard/pkg/models/part"
	"github.com/golangdaddy/junkyard/pkg/physics"
	"github.com/golangdaddy/junkyard/pkg/render"
	"github.com/golangdaddy/junkyard/pkg/rng"
	"github.com/golangdaddy/junkyard/pkg/road"
	"github.com/golangdaddy/junkyard/pkg/telemetry"
)

// StateID names a state of the game.
type StateID int

const (
	StateLoading StateID = iota
	StateSplash
	StateHelp
	StateChassis
	StateWheels
	StateEngine
	StateConfirm
	StateAssemble
	StateFade
	StateCountdown
	StateDriving
	StateJump
	StateSafe
	StateCrash
	StateMissed
	StateBlown
	StateUpgrade
	StateNoMoney
	StateGameOver
	StateWin
	numStates
)

var stateNames = [numStates]string{
	"loading", "splash", "help", "chassis", "wheels", "engine", "confirm",
	"assemble", "fade", "countdown", "driving", "jump", "safe", "crash",
	"missed", "blown", "upgrade", "nomoney", "gameover", "win",
}

func (id StateID) String() string {
	if id < 0 || id >= numStates {
		return fmt.Sprintf("state(%d)", int(id))
	}
	return stateNames[id]
}

// State is a set of optional callbacks. Render must not mutate anything.
type State struct {
	Enter  func(m *Machine)
	Update func(m *Machine, in *input.State)
	Render func(m *Machine, s render.Surface)
}

// EngineSound is the procedural engine the driving states rev.
type EngineSound interface {
	Use(preset string)
	Start()
	SetSpeed(intensity float64)
	Stop()
}

// AssetLoader is stepped by the loading state.
type AssetLoader interface {
	Step(n int) int
	Progress() float64
	Done() bool
	Failures() int
}

// Deps are the machine's collaborators. Nil Sounds, Engine and Loader are
// replaced with silent or already-finished stand-ins.
type Deps struct {
	Tuning  config.Tuning
	Catalog *part.Catalog
	Rand    rng.Source
	Sounds  audio.Player
	Engine  EngineSound
	Loader  AssetLoader
	PerTick int
	Metrics *telemetry.Metrics
	Log     zerolog.Logger
}

// Machine is the game's state machine. It owns the GameState and is driven
// one tick at a time from a single goroutine.
type Machine struct {
	GS *models.GameState

	t       config.Tuning
	catalog *part.Catalog
	sounds  audio.Player
	engine  EngineSound
	loader  AssetLoader
	perTick int
	metrics *telemetry.Metrics
	log     zerolog.Logger

	drive    physics.DriveParams
	jump     physics.JumpParams
	layout   road.LayoutParams
	carShape road.CarShape

	states   [numStates]State
	current  StateID
	previous StateID
	entering bool
	started  bool
	ticks    int
	in       *input.State
}

// NewMachine builds the machine in the loading state. Call Start before the
// first tick.
func NewMachine(d Deps) *Machine {
	t := d.Tuning
	if d.Catalog == nil {
		d.Catalog = part.DefaultCatalog()
	}
	if d.Rand == nil {
		d.Rand = rng.New(0)
	}
	if d.Sounds == nil {
		d.Sounds = audio.Nop{}
	}
	if d.Engine == nil {
		d.Engine = silentEngine{}
	}
	if d.PerTick <= 0 {
		d.PerTick = 4
	}

	economy := models.NewEconomy(models.Rules{
		StartingMoney: t.StartingMoney,
		MaxRounds:     t.MaxRounds,
		TierThreshold: t.TierThreshold,
		RoundRepair:   t.RoundRepair,
		RoundPrize:    t.RoundPrize,
	}, d.Rand)
	conveyor := models.NewConveyor(models.ConveyorParams{
		Speed:     t.ConveyorSpeed,
		StopX:     t.ConveyorStopX,
		StartX:    float64(t.ScreenWidth) + t.ConveyorStartPad,
		BeltWrap:  float64(t.ScreenWidth),
		WheelSpin: 0.3,
	})

	m := &Machine{
		GS:      models.NewGameState(economy, conveyor),
		t:       t,
		catalog: d.Catalog,
		sounds:  d.Sounds,
		engine:  d.Engine,
		loader:  d.Loader,
		perTick: d.PerTick,
		metrics: d.Metrics,
		log:     d.Log,
		drive: physics.DriveParams{
			Accel:          t.Accel,
			Decel:          t.Decel,
			TachMax:        t.TachMax,
			TachDrop:       t.TachDrop,
			BlownTicks:     t.BlownEngineTicks,
			MinLaunchSpeed: t.MinLaunchSpeed,
			WheelSpin:      t.DriveWheelSpin,
		},
		jump: physics.JumpParams{
			Gravity:      t.Gravity,
			LaunchVSpeed: t.JumpVSpeed,
			HSpeedFactor: t.JumpHSpeedFactor,
			StartX:       t.JumpStartX,
			StartRise:    t.JumpStartRise,
			WheelSpin:    t.JumpWheelSpin,
		},
		layout: road.LayoutParams{
			PileStartX:    t.PileStartX,
			PileSpacing:   t.PileSpacing,
			PileWidth:     t.PileWidth,
			PileHeight:    t.PileHeight,
			PileRise:      t.PileRise,
			PileExtent:    t.PileExtent,
			LandingGap:    t.LandingGap,
			LandingWidth:  t.LandingWidth,
			LandingHeight: t.LandingHeight,
		},
		carShape: road.CarShape{
			HalfWidth: t.CarHalfWidth,
			TopOffset: t.CarTopOffset,
			Width:     t.CarWidth,
			Height:    t.CarHeight,
		},
		current:  StateLoading,
		previous: StateLoading,
	}
	m.register()
	return m
}

// Start enters the loading state.
func (m *Machine) Start() {
	if m.started {
		return
	}
	m.started = true
	m.enter(StateLoading)
}

// Current is the active state.
func (m *Machine) Current() StateID {
	return m.current
}

// Previous is the state that was active before the last transition.
func (m *Machine) Previous() StateID {
	return m.previous
}

// Ticks counts the updates run so far.
func (m *Machine) Ticks() int {
	return m.ticks
}

// SetState switches immediately and runs the new state's Enter before
// returning. Requesting a transition from inside an Enter callback is a
// programming error.
func (m *Machine) SetState(id StateID) {
	if m.entering {
		panic(fmt.Sprintf("game: transition to %s requested while entering %s", id, m.current))
	}
	m.log.Debug().Stringer("from", m.current).Stringer("to", id).Msg("state transition")
	m.previous = m.current
	m.current = id
	m.metrics.Transition(id.String())
	m.enter(id)
}

func (m *Machine) enter(id StateID) {
	enter := m.states[id].Enter
	if enter == nil {
		return
	}
	m.entering = true
	defer func() { m.entering = false }()
	enter(m)
}

// Tick runs one update of the active state, then clears the input's edges.
func (m *Machine) Tick(in *input.State) {
	if !m.started {
		m.Start()
	}
	m.in = in
	if update := m.states[m.current].Update; update != nil {
		update(m, in)
	}
	in.EndTick()
	m.ticks++
}

// Render draws the active state.
func (m *Machine) Render(s render.Surface) {
	if draw := m.states[m.current].Render; draw != nil {
		draw(m, s)
	}
}

func (m *Machine) register() {
	m.states[StateLoading] = loadingState()
	m.states[StateSplash] = splashState()
	m.states[StateHelp] = helpState()
	m.states[StateChassis] = selectionState(part.Chassis)
	m.states[StateWheels] = selectionState(part.Wheels)
	m.states[StateEngine] = selectionState(part.Engine)
	m.states[StateConfirm] = confirmState()
	m.states[StateAssemble] = assembleState()
	m.states[StateFade] = fadeState()
	m.states[StateCountdown] = countdownState()
	m.states[StateDriving] = drivingState()
	m.states[StateJump] = jumpState()
	m.states[StateSafe] = safeState()
	m.states[StateCrash] = malfunctionState(crashFailure)
	m.states[StateMissed] = malfunctionState(missedFailure)
	m.states[StateBlown] = malfunctionState(blownFailure)
	m.states[StateUpgrade] = upgradeState()
	m.states[StateNoMoney] = noMoneyState()
	m.states[StateGameOver] = gameOverState()
	m.states[StateWin] = winState()
}

// newGame resets the record for a fresh game.
func (m *Machine) newGame() {
	m.engine.Stop()
	m.GS.Reset()
	m.log.Info().Int("money", m.GS.Economy.Money).Msg("new game")
}

// nextRound starts the following round, or the win screen after the last.
func (m *Machine) nextRound() {
	m.GS.PendingAdvance = false
	if m.GS.Economy.AdvanceRound() {
		m.SetState(StateWin)
		return
	}
	m.log.Info().
		Int("round", m.GS.Economy.CompletedJumps).
		Int("prize", m.GS.Economy.PendingPrizeMoney).
		Msg("round started")
	m.SetState(StateCountdown)
}

// openUpgrade shows the upgrade menu, or the no-money screen when nothing
// is affordable.
func (m *Machine) openUpgrade() {
	money := m.GS.Economy.Money
	if money < m.t.UpgradeChassis && money < m.t.UpgradeWheels && money < m.t.UpgradeEngine {
		m.SetState(StateNoMoney)
		return
	}
	m.SetState(StateUpgrade)
}

// mustHaveBuild guards the states that need a complete vehicle.
func (m *Machine) mustHaveBuild(where StateID) {
	if !m.GS.Build.Complete() {
		panic(fmt.Sprintf("game: %s entered with an incomplete build (%d of 3 parts)", where, m.GS.Build.Len()))
	}
}

func (m *Machine) clearKeys() {
	if m.in != nil {
		m.in.ClearKeys()
	}
}

func (m *Machine) screenW() float64 { return float64(m.t.ScreenWidth) }
func (m *Machine) screenH() float64 { return float64(m.t.ScreenHeight) }

type silentEngine struct{}

func (silentEngine) Use(string)       {}
func (silentEngine) Start()           {}
func (silentEngine) SetSpeed(float64) {}
func (silentEngine) Stop()            {}
