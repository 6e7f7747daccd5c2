package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func driveParams() DriveParams {
	return DriveParams{
		Accel:          1,
		Decel:          0.5,
		TachMax:        270,
		TachDrop:       15,
		BlownTicks:     17,
		MinLaunchSpeed: 5,
		WheelSpin:      0.1,
	}
}

func TestAccelerationReachesMaxSpeed(t *testing.T) {
	for _, maxSpeed := range []float64{43, 60, 75, 7.5} {
		p := driveParams()
		p.BlownTicks = 1 << 30
		var s DriveState
		s.Reset(1e9)

		want := int(math.Ceil(maxSpeed / p.Accel))
		ticks := 0
		for s.Speed < maxSpeed {
			StepDrive(&s, p, maxSpeed, true)
			ticks++
			require.LessOrEqual(t, s.Speed, maxSpeed)
			require.Less(t, ticks, 1000)
		}
		assert.Equal(t, want, ticks, "maxSpeed %v", maxSpeed)

		for i := 0; i < 10; i++ {
			StepDrive(&s, p, maxSpeed, true)
			assert.Equal(t, maxSpeed, s.Speed)
		}
	}
}

func TestDeceleration(t *testing.T) {
	p := driveParams()
	s := DriveState{Speed: 1, PrevSpeed: 1, Distance: 100}
	StepDrive(&s, p, 40, false)
	assert.Equal(t, 0.5, s.Speed)
	StepDrive(&s, p, 40, false)
	StepDrive(&s, p, 40, false)
	assert.Equal(t, 0.0, s.Speed)
}

func TestTachRisesWhileHoldingSpeed(t *testing.T) {
	p := driveParams()
	s := DriveState{Speed: 30, PrevSpeed: 30, Distance: 1e6}
	StepDrive(&s, p, 30, true)
	assert.Equal(t, 10.0, s.TachAngle, "equal speed still counts as revving")

	StepDrive(&s, p, 30, false)
	assert.Equal(t, 0.0, s.TachAngle, "drops by the fixed decrement, floored at zero")
}

func TestTachRounding(t *testing.T) {
	p := driveParams()
	s := DriveState{Speed: 0.5, Distance: 1e6}
	StepDrive(&s, p, 40, true)
	// speed 1.5, 1.5/3 = 0.5 rounds half up
	assert.Equal(t, 1.0, s.TachAngle)
}

func TestTachStaysInRange(t *testing.T) {
	p := driveParams()
	p.BlownTicks = 1 << 30
	var s DriveState
	s.Reset(1e9)
	pattern := []bool{true, true, true, false, true, false, false, true}
	for i := 0; i < 2000; i++ {
		StepDrive(&s, p, 80, pattern[i%len(pattern)] || i%97 < 60)
		require.GreaterOrEqual(t, s.TachAngle, 0.0)
		require.LessOrEqual(t, s.TachAngle, 270.0)
	}
}

func TestBlownEngineFiresOnThresholdTick(t *testing.T) {
	p := driveParams()
	s := DriveState{Speed: 60, PrevSpeed: 60, TachAngle: 270, Distance: 1e6}

	for i := 1; i < p.BlownTicks; i++ {
		ev := StepDrive(&s, p, 60, true)
		require.Equal(t, Cruising, ev, "tick %d fired early", i)
		require.Equal(t, i, s.MaxedTicks)
	}
	ev := StepDrive(&s, p, 60, true)
	assert.Equal(t, EngineBlown, ev)
	assert.Equal(t, 0.0, s.Speed)
}

func TestMaxedCounterResetsWhenNeedleDrops(t *testing.T) {
	p := driveParams()
	s := DriveState{Speed: 60, PrevSpeed: 60, TachAngle: 270, Distance: 1e6}
	for i := 0; i < 10; i++ {
		StepDrive(&s, p, 60, true)
	}
	require.Equal(t, 10, s.MaxedTicks)
	StepDrive(&s, p, 60, false)
	assert.Equal(t, 0, s.MaxedTicks)
}

func TestTakeoffNeedsDistanceAndSpeed(t *testing.T) {
	p := driveParams()

	slow := DriveState{Speed: 5.5, PrevSpeed: 5.5, Distance: 3}
	assert.Equal(t, Cruising, StepDrive(&slow, p, 40, false), "5.0 is not above the threshold")
	assert.Less(t, slow.Distance, 0.0, "keeps rolling past the ramp")

	fast := DriveState{Speed: 6, PrevSpeed: 6, Distance: 3}
	assert.Equal(t, Takeoff, StepDrive(&fast, p, 40, true))

	far := DriveState{Speed: 30, PrevSpeed: 30, Distance: 500}
	assert.Equal(t, Cruising, StepDrive(&far, p, 40, true))
}

func TestIntensity(t *testing.T) {
	s := DriveState{Speed: 20}
	assert.Equal(t, 0.5, s.Intensity(40))
	assert.Equal(t, 1.0, (&DriveState{Speed: 50}).Intensity(40))
	assert.Equal(t, 0.0, s.Intensity(0))
}

func TestLaunch(t *testing.T) {
	p := JumpParams{Gravity: 0.7, LaunchVSpeed: 15, HSpeedFactor: 0.2, StartX: 50, StartRise: 30}
	j := Launch(40, 228, p)
	assert.Equal(t, 50.0, j.X)
	assert.Equal(t, 198.0, j.Y)
	assert.Equal(t, 15.0, j.VSpeed)
	assert.Equal(t, 8.0, j.HSpeed)
	assert.True(t, j.Ascending)
}

func TestJumpFlipsOnSameTick(t *testing.T) {
	p := JumpParams{Gravity: 1, LaunchVSpeed: 2.5, HSpeedFactor: 1}
	j := JumpState{VSpeed: 2.5, HSpeed: 2, Ascending: true}

	j.Integrate(p)
	assert.True(t, j.Ascending)
	assert.Equal(t, -1.5, j.Y)

	j.Integrate(p)
	assert.True(t, j.Ascending)
	assert.Equal(t, -2.0, j.Y)

	// velocity computes to -0.5 here: flip and fall on this very tick
	j.Integrate(p)
	assert.False(t, j.Ascending)
	assert.Equal(t, 0.5, j.VSpeed)
	assert.Equal(t, -1.5, j.Y)

	j.Integrate(p)
	assert.Equal(t, 1.5, j.VSpeed)
	assert.Equal(t, 0.0, j.Y)
	assert.Equal(t, 8.0, j.X)
	assert.Equal(t, 4, j.Ticks)
}

func TestJumpFlipAtExactZero(t *testing.T) {
	p := JumpParams{Gravity: 1}
	j := JumpState{VSpeed: 1, Ascending: true}
	j.Integrate(p)
	assert.False(t, j.Ascending, "zero counts as the top of the arc")
	assert.Equal(t, 1.0, j.Y)
}
