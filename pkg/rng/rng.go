package rng

import (
	"math/rand"
	"time"
)

// Source is the single random source shared by the economy and the
// malfunction states. Implementations must be safe to use from the tick
// goroutine only.
type Source interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
}

// Range is an inclusive integer interval.
type Range struct {
	Min int `json:"min" mapstructure:"min"`
	Max int `json:"max" mapstructure:"max"`
}

// Roll draws a uniform value from r using src. A degenerate or inverted
// range returns Min.
func (r Range) Roll(src Source) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + src.Intn(r.Max-r.Min+1)
}

// Contains reports whether v lies inside r.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// New returns a seeded source. A zero seed uses the current time.
func New(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Sequence replays scripted values, cycling when exhausted. Each value is
// reduced modulo n so scripts stay valid for any range.
type Sequence struct {
	values []int
	next   int
}

// NewSequence creates a scripted source.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Intn(n int) int {
	if len(s.values) == 0 || n <= 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}
