package loop

import "time"

// Driver turns wall-clock frames into fixed simulation ticks. It is the
// only scheduler: Frame runs tick zero or more times, synchronously.
type Driver struct {
	step       time.Duration
	maxCatchUp int
	clock      Clock
	tick       func()

	last    time.Time
	started bool
	acc     time.Duration

	// Ticks is the total number of ticks run.
	Ticks uint64
}

// NewDriver runs tick at rate ticks per second, never more than maxCatchUp
// times per frame.
func NewDriver(rate, maxCatchUp int, clock Clock, tick func()) *Driver {
	if rate <= 0 {
		rate = 15
	}
	if maxCatchUp <= 0 {
		maxCatchUp = 1
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Driver{
		step:       time.Second / time.Duration(rate),
		maxCatchUp: maxCatchUp,
		clock:      clock,
		tick:       tick,
	}
}

// Step is the fixed tick duration.
func (d *Driver) Step() time.Duration {
	return d.step
}

// Frame samples the clock and advances by the time since the previous
// frame. The first frame only records the start time.
func (d *Driver) Frame() (ran, dropped int) {
	now := d.clock.Now()
	if !d.started {
		d.started = true
		d.last = now
		return 0, 0
	}
	elapsed := now.Sub(d.last)
	d.last = now
	return d.Advance(elapsed)
}

// Advance adds elapsed to the backlog and drains it in whole steps. Backlog
// beyond the catch-up cap is discarded and reported as dropped ticks.
func (d *Driver) Advance(elapsed time.Duration) (ran, dropped int) {
	if elapsed < 0 {
		elapsed = 0
	}
	d.acc += elapsed
	limit := time.Duration(d.maxCatchUp) * d.step
	if d.acc > limit {
		dropped = int((d.acc - limit) / d.step)
		d.acc = limit
	}
	for d.acc >= d.step {
		d.acc -= d.step
		d.tick()
		d.Ticks++
		ran++
	}
	return ran, dropped
}
