package physics

// JumpParams are the ballistic tunables.
type JumpParams struct {
	Gravity      float64
	LaunchVSpeed float64
	HSpeedFactor float64
	StartX       float64
	StartRise    float64
	WheelSpin    float64
}

// JumpState is created at takeoff and dropped when the jump resolves.
type JumpState struct {
	X, Y          float64
	VSpeed        float64
	HSpeed        float64
	Ascending     bool
	WheelRotation float64
	Ticks         int
}

// Launch starts a jump from the ramp lip at groundY with the takeoff speed.
func Launch(speed, groundY float64, p JumpParams) JumpState {
	return JumpState{
		X:         p.StartX,
		Y:         groundY - p.StartRise,
		VSpeed:    p.LaunchVSpeed,
		HSpeed:    speed * p.HSpeedFactor,
		Ascending: true,
	}
}

// Descending reports whether the vehicle is falling.
func (j *JumpState) Descending() bool {
	return !j.Ascending
}

// Integrate advances one tick. The tick on which the rising velocity reaches
// zero already moves the vehicle with the falling branch.
func (j *JumpState) Integrate(p JumpParams) {
	if j.Ascending {
		j.VSpeed -= p.Gravity
		if j.VSpeed <= 0 {
			j.Ascending = false
		}
	}
	if j.Ascending {
		j.Y -= j.VSpeed
	} else {
		j.VSpeed += p.Gravity
		j.Y += j.VSpeed
	}
	j.X += j.HSpeed
	j.WheelRotation += j.HSpeed * p.WheelSpin
	j.Ticks++
}
