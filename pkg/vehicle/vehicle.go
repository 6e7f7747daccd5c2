package vehicle

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/junkyard/pkg/models/part"
)

var (
	ErrBuildComplete = errors.New("build already complete")
	ErrOutOfOrder    = errors.New("part out of build order")
)

// Build is the ordered chassis, wheels, engine triple assembled across the
// three selection states. Empty strings are unfilled slots.
type Build struct {
	Chassis string `json:"chassis"`
	Wheels  string `json:"wheels"`
	Engine  string `json:"engine"`
}

// Len returns how many slots are filled, counting in build order.
func (b Build) Len() int {
	switch {
	case b.Chassis == "":
		return 0
	case b.Wheels == "":
		return 1
	case b.Engine == "":
		return 2
	default:
		return 3
	}
}

// Complete reports whether all three slots are filled.
func (b Build) Complete() bool {
	return b.Len() == 3
}

// Next returns the category of the next empty slot.
func (b Build) Next() (part.Category, bool) {
	n := b.Len()
	if n >= len(part.Categories) {
		return 0, false
	}
	return part.Categories[n], true
}

// Slot returns the id in cat.
func (b Build) Slot(cat part.Category) string {
	switch cat {
	case part.Chassis:
		return b.Chassis
	case part.Wheels:
		return b.Wheels
	default:
		return b.Engine
	}
}

// Accepts reports whether cat is the next slot to fill.
func (b Build) Accepts(cat part.Category) error {
	next, ok := b.Next()
	if !ok {
		return ErrBuildComplete
	}
	if next != cat {
		return fmt.Errorf("expected %s next, got %s: %w", next, cat, ErrOutOfOrder)
	}
	return nil
}

// Add fills the next empty slot, which must be cat.
func (b *Build) Add(cat part.Category, id string) error {
	if err := b.Accepts(cat); err != nil {
		return err
	}
	b.set(cat, id)
	return nil
}

// Replace swaps the part in cat and returns the one it replaced.
func (b *Build) Replace(cat part.Category, id string) string {
	prev := b.Slot(cat)
	b.set(cat, id)
	return prev
}

// Clear empties every slot.
func (b *Build) Clear() {
	*b = Build{}
}

func (b *Build) set(cat part.Category, id string) {
	switch cat {
	case part.Chassis:
		b.Chassis = id
	case part.Wheels:
		b.Wheels = id
	default:
		b.Engine = id
	}
}

// MaxSpeed sums the parts' ratings, or returns baseline for an incomplete
// build.
func (b Build) MaxSpeed(c *part.Catalog, baseline float64) float64 {
	if !b.Complete() {
		return baseline
	}
	total := 0
	for _, cat := range part.Categories {
		p, ok := c.Get(cat, b.Slot(cat))
		if !ok {
			return baseline
		}
		total += p.Rating
	}
	return float64(total)
}
