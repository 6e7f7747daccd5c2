package road

// Rect is an axis-aligned box in game space, Y growing downwards.
type Rect struct {
	X, Y, W, H float64
}

// Right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Overlaps reports whether a and b share interior area. Touching edges do
// not count.
func Overlaps(a, b Rect) bool {
	return a.X < b.Right() && a.Right() > b.X &&
		a.Y < b.Bottom() && a.Bottom() > b.Y
}
