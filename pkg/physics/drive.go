package physics

import "math"

// DriveParams are the longitudinal tunables.
type DriveParams struct {
	Accel          float64
	Decel          float64
	TachMax        float64
	TachDrop       float64
	BlownTicks     int
	MinLaunchSpeed float64
	WheelSpin      float64
}

// DriveState is reset at the start of every round.
type DriveState struct {
	Speed         float64
	PrevSpeed     float64
	TachAngle     float64
	Distance      float64
	MaxedTicks    int
	WheelRotation float64
}

// DriveEvent is what a drive step asks the caller to do next.
type DriveEvent int

const (
	Cruising DriveEvent = iota
	EngineBlown
	Takeoff
)

// Reset puts the vehicle at rest, distance from the ramp.
func (s *DriveState) Reset(distance float64) {
	*s = DriveState{Distance: distance}
}

// Intensity is speed as a fraction of maxSpeed, clamped to [0,1].
func (s *DriveState) Intensity(maxSpeed float64) float64 {
	if maxSpeed <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, s.Speed/maxSpeed))
}

// StepDrive advances one tick. A blown engine takes precedence over launch.
func StepDrive(s *DriveState, p DriveParams, maxSpeed float64, accelerate bool) DriveEvent {
	if accelerate {
		s.Speed = math.Min(s.Speed+p.Accel, maxSpeed)
	} else {
		s.Speed = math.Max(s.Speed-p.Decel, 0)
	}

	s.WheelRotation += s.Speed * p.WheelSpin
	s.Distance -= s.Speed

	// the needle climbs while holding speed, not only while gaining it
	if s.Speed >= s.PrevSpeed {
		s.TachAngle = math.Min(s.TachAngle+math.Floor(s.Speed/3+0.5), p.TachMax)
	} else {
		s.TachAngle = math.Max(s.TachAngle-p.TachDrop, 0)
	}
	s.PrevSpeed = s.Speed

	if s.TachAngle >= p.TachMax {
		s.MaxedTicks++
		if s.MaxedTicks >= p.BlownTicks {
			s.Speed = 0
			return EngineBlown
		}
	} else {
		s.MaxedTicks = 0
	}

	if s.Distance <= 0 && s.Speed > p.MinLaunchSpeed {
		return Takeoff
	}
	return Cruising
}
