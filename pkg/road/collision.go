package road

// Outcome is how a jump tick resolved.
type Outcome int

const (
	InFlight Outcome = iota
	Crashed
	Landed
	Missed
)

func (o Outcome) String() string {
	switch o {
	case Crashed:
		return "crash"
	case Landed:
		return "safe"
	case Missed:
		return "missed"
	default:
		return "flight"
	}
}

// CarShape is the vehicle's hitbox relative to its anchor point.
type CarShape struct {
	HalfWidth float64
	TopOffset float64
	Width     float64
	Height    float64
}

// Bounds returns the hitbox of a vehicle anchored at (x, y).
func (c CarShape) Bounds(x, y float64) Rect {
	return Rect{X: x - c.HalfWidth, Y: y - c.TopOffset, W: c.Width, H: c.Height}
}

// Evaluate resolves one jump tick. Piles win over the landing zone, which
// only counts while falling; dropping more than tolerance below ground
// without landing is a miss.
func Evaluate(car Rect, carY float64, descending bool, l Layout, groundY, tolerance float64) Outcome {
	for _, o := range l.Obstacles {
		if Overlaps(car, o) {
			return Crashed
		}
	}
	if descending && Overlaps(car, l.Landing) {
		return Landed
	}
	if carY > groundY+tolerance {
		return Missed
	}
	return InFlight
}
