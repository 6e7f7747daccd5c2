package road

// LayoutParams positions the junk piles and the landing ramp.
type LayoutParams struct {
	PileStartX    float64
	PileSpacing   float64
	PileWidth     float64
	PileHeight    float64
	PileRise      float64 // pile top above ground
	PileExtent    float64 // where the last pile is considered to end
	LandingGap    float64
	LandingWidth  float64
	LandingHeight float64
}

// Layout is the course for one round.
type Layout struct {
	Obstacles []Rect
	Landing   Rect
}

// ComputeLayout places one junk pile per round and the landing zone after
// the last of them.
func ComputeLayout(round int, groundY float64, p LayoutParams) Layout {
	if round < 0 {
		round = 0
	}
	l := Layout{Obstacles: make([]Rect, 0, round)}
	for i := 0; i < round; i++ {
		l.Obstacles = append(l.Obstacles, Rect{
			X: p.PileStartX + float64(i)*p.PileSpacing,
			Y: groundY - p.PileRise,
			W: p.PileWidth,
			H: p.PileHeight,
		})
	}
	lastEnd := p.PileStartX + float64(round-1)*p.PileSpacing + p.PileExtent
	l.Landing = Rect{
		X: lastEnd + p.LandingGap,
		Y: groundY - p.LandingHeight,
		W: p.LandingWidth,
		H: p.LandingHeight,
	}
	return l
}
