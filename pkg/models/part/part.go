package part

// Category is one of the three build slots.
type Category int

const (
	Chassis Category = iota
	Wheels
	Engine
)

// Categories lists the slots in build order.
var Categories = []Category{Chassis, Wheels, Engine}

func (c Category) String() string {
	switch c {
	case Chassis:
		return "chassis"
	case Wheels:
		return "wheels"
	case Engine:
		return "engine"
	default:
		return "unknown"
	}
}

// Offset is a point in the chassis sprite's local coordinates.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Attachments holds where wheels and engine are drawn on a chassis.
type Attachments struct {
	WheelLeft  Offset `json:"wheel_left"`
	WheelRight Offset `json:"wheel_right"`
	Engine     Offset `json:"engine"`
}

// Part represents one purchasable vehicle component
type Part struct {
	ID          string       `json:"id"`
	Category    Category     `json:"category"`
	Name        string       `json:"name"`
	Rating      int          `json:"rating"`       // contribution to max speed
	Prices      [2]*int      `json:"prices"`       // per tier, nil = not for sale yet
	Attachments *Attachments `json:"attachments"` // chassis only
}

// Price returns the part's price at tier, or false when it is not for sale.
func (p Part) Price(tier int) (int, bool) {
	if tier < 0 {
		tier = 0
	}
	if tier >= len(p.Prices) {
		tier = len(p.Prices) - 1
	}
	if p.Prices[tier] == nil {
		return 0, false
	}
	return *p.Prices[tier], true
}

func price(v int) *int {
	return &v
}
