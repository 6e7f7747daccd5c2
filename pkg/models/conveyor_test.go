package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/junkyard/pkg/models/part"
)

func testConveyor() *Conveyor {
	c := NewConveyor(ConveyorParams{Speed: 15, StopX: 278, StartX: 475, BeltWrap: 425, WheelSpin: 0.3})
	c.Load(part.Wheels, []string{"wheel1", "wheel4", "wheel3"})
	return c
}

func TestConveyorLocksAtStop(t *testing.T) {
	c := testConveyor()
	assert.Equal(t, "wheel1", c.Current())

	ticks := 0
	for !c.Step() {
		ticks++
		require.Less(t, ticks, 100)
	}
	// 475 -> 278 at 15 per tick locks on the 14th step
	assert.Equal(t, 13, ticks)
	assert.True(t, c.Stopped)
	assert.Equal(t, 278.0, c.ItemX)
	assert.Equal(t, 1, c.DogFrame)

	assert.False(t, c.Step())
	assert.Equal(t, 278.0, c.ItemX)
}

func TestConveyorNextWraps(t *testing.T) {
	c := testConveyor()
	for !c.Step() {
	}

	c.Next()
	assert.Equal(t, "wheel4", c.Current())
	assert.False(t, c.Stopped)
	assert.Equal(t, 475.0, c.ItemX)

	c.Next()
	c.Next()
	assert.Equal(t, "wheel1", c.Current())
}

func TestConveyorBeltWraps(t *testing.T) {
	c := testConveyor()
	for i := 0; i < 10; i++ {
		c.Step()
	}
	assert.GreaterOrEqual(t, c.BeltOffset, 0.0)
	assert.Less(t, c.BeltOffset, 425.0)
	assert.InDelta(t, -45.0, c.WheelAngle, 1e-9)
}

func TestDogFrameCycles(t *testing.T) {
	c := testConveyor()
	for i := 0; i < DogFrames; i++ {
		c.Bump()
	}
	assert.Zero(t, c.DogFrame)
}

func TestGameStateReset(t *testing.T) {
	gs := NewGameState(NewEconomy(testRules(), nil), testConveyor())
	gs.Build.Chassis = "cart"
	gs.StartUpgrade(part.Engine)
	gs.PendingAdvance = false

	gs.Reset()
	assert.Zero(t, gs.Build.Len())
	_, ok := gs.UpgradingSlot()
	assert.False(t, ok)
	assert.True(t, gs.PendingAdvance)
	assert.Equal(t, 35, gs.Economy.Money)
}

func TestScrollAdvanceWraps(t *testing.T) {
	var s Scroll
	s.Advance(30, 850)
	assert.InDelta(t, 2.0, s.City, 1e-9)
	assert.Equal(t, 30.0, s.Fence)

	s.Ground = 840
	s.Advance(30, 850)
	assert.InDelta(t, 20.0, s.Ground, 1e-9)
	assert.InDelta(t, 4.0, s.City, 1e-9)
}
