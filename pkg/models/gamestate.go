package models

import (
	"math"

	"github.com/golangdaddy/junkyard/pkg/models/part"
	"github.com/golangdaddy/junkyard/pkg/physics"
	"github.com/golangdaddy/junkyard/pkg/vehicle"
)

// Swap remembers the part an upgrade replaced so it can be put back.
type Swap struct {
	Category part.Category `json:"category"`
	Previous string        `json:"previous"`
}

// Scroll holds the parallax offsets of the driving scenery.
type Scroll struct {
	City   float64 `json:"city"`
	Fence  float64 `json:"fence"`
	Ground float64 `json:"ground"`
}

// Advance moves the layers for one tick at speed. The city drifts at a
// fifteenth of the road's pace; every layer wraps at wrap.
func (s *Scroll) Advance(speed, wrap float64) {
	s.City = modWrap(s.City+math.Abs(speed)/15, wrap)
	s.Fence = modWrap(s.Fence+speed, wrap)
	s.Ground = modWrap(s.Ground+speed, wrap)
}

// GameState is the single record the state machine mutates. Only the tick
// goroutine writes it; render callbacks read it.
type GameState struct {
	Economy  *Economy           `json:"economy"`
	Build    vehicle.Build      `json:"build"`
	MaxSpeed float64            `json:"max_speed"`
	Conveyor *Conveyor          `json:"conveyor"`
	Drive    physics.DriveState `json:"drive"`
	Jump     physics.JumpState  `json:"jump"`
	Scroll   Scroll             `json:"scroll"`

	// Upgrading is set while a mid-game swap of one slot is in progress.
	Upgrading *part.Category `json:"upgrading"`
	// Swap is the part the last upgrade purchase replaced.
	Swap *Swap `json:"swap"`
	// PendingAdvance makes the next fade start a new round.
	PendingAdvance bool `json:"pending_advance"`

	Timer      int `json:"timer"`
	FadeTicks  int `json:"fade_ticks"`
	LightPhase int `json:"light_phase"`

	// LastRejection is why the last purchase failed. It is shown on the
	// terminal until the belt moves again.
	LastRejection error `json:"-"`
}

// NewGameState creates the record for a fresh game.
func NewGameState(economy *Economy, conveyor *Conveyor) *GameState {
	gs := &GameState{Economy: economy, Conveyor: conveyor}
	gs.Reset()
	return gs
}

// Reset starts a new game. The first fade after it begins round one.
func (gs *GameState) Reset() {
	gs.Economy.Reset()
	gs.Build.Clear()
	gs.MaxSpeed = 0
	gs.Drive = physics.DriveState{}
	gs.Jump = physics.JumpState{}
	gs.Scroll = Scroll{}
	gs.Upgrading = nil
	gs.Swap = nil
	gs.PendingAdvance = true
	gs.Timer = 0
	gs.FadeTicks = 0
	gs.LightPhase = 0
	gs.LastRejection = nil
}

// StartUpgrade marks cat as the slot being swapped.
func (gs *GameState) StartUpgrade(cat part.Category) {
	gs.Upgrading = &cat
	gs.Swap = nil
}

// UpgradingSlot returns the slot being swapped, if any.
func (gs *GameState) UpgradingSlot() (part.Category, bool) {
	if gs.Upgrading == nil {
		return 0, false
	}
	return *gs.Upgrading, true
}
