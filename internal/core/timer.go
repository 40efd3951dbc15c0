package core

import "time"

// FixedStep paces updates at a steady rate independent of the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep returns a pacer firing tps times per second. The first call
// to ShouldStep always fires. Non-positive rates select 60.
func NewFixedStep(tps int) *FixedStep {
	f := &FixedStep{now: time.Now}
	f.SetTPS(tps)
	f.accumulator = f.step
	return f
}

// SetTPS changes the rate.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether an update is due and consumes it. At most one
// update is reported per call; a backlog drains on later calls.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	return true
}
