package models

import (
	"github.com/golangdaddy/junkyard/pkg/models/part"
)

// DogFrames is the length of the dog's hand animation.
const DogFrames = 6

// ConveyorParams are the belt tunables.
type ConveyorParams struct {
	Speed     float64
	StopX     float64
	StartX    float64 // where a new item appears, off the right edge
	BeltWrap  float64
	WheelSpin float64
}

// Conveyor slides candidate parts in from the right until one locks at the
// stop position.
type Conveyor struct {
	Category   part.Category `json:"category"`
	Items      []string      `json:"items"`
	Index      int           `json:"index"`
	ItemX      float64       `json:"item_x"`
	Stopped    bool          `json:"stopped"`
	BeltOffset float64       `json:"belt_offset"`
	WheelAngle float64       `json:"wheel_angle"`
	DogFrame   int           `json:"dog_frame"`

	params ConveyorParams
}

// NewConveyor creates an empty belt.
func NewConveyor(p ConveyorParams) *Conveyor {
	return &Conveyor{params: p}
}

// Load puts items on the belt in order and starts the first one sliding.
func (c *Conveyor) Load(cat part.Category, items []string) {
	*c = Conveyor{Category: cat, Items: items, ItemX: c.params.StartX, params: c.params}
}

// Current is the item on the belt.
func (c *Conveyor) Current() string {
	if len(c.Items) == 0 {
		return ""
	}
	return c.Items[c.Index]
}

// Step moves the belt one tick. It reports true on the tick the item locks.
func (c *Conveyor) Step() bool {
	if c.Stopped {
		return false
	}
	c.ItemX -= c.params.Speed
	c.BeltOffset = modWrap(c.BeltOffset+c.params.Speed, c.params.BeltWrap)
	c.WheelAngle -= c.params.Speed * c.params.WheelSpin

	if c.ItemX <= c.params.StopX {
		c.ItemX = c.params.StopX
		c.Stopped = true
		c.Bump()
		return true
	}
	return false
}

// Next sends the following candidate sliding in, wrapping at the end.
func (c *Conveyor) Next() {
	if len(c.Items) == 0 {
		return
	}
	c.Index = (c.Index + 1) % len(c.Items)
	c.ItemX = c.params.StartX
	c.Stopped = false
	c.Bump()
}

// Bump advances the dog animation.
func (c *Conveyor) Bump() {
	c.DogFrame = (c.DogFrame + 1) % DogFrames
}

func modWrap(v, w float64) float64 {
	if w <= 0 {
		return v
	}
	for v >= w {
		v -= w
	}
	return v
}
