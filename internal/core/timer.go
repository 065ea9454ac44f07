package core

import "time"

// maxBacklog bounds how many owed steps the accumulator may hold after a
// stall.
const maxBacklog = 4

// FixedStep paces simulation generations at a steady rate independent of the
// frame rate of the driver calling it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given number of
// steps per second. The first call to ShouldStep fires immediately.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	f.step = time.Second / time.Duration(rate)
}

// Rate returns the configured steps per second.
func (f *FixedStep) Rate() int {
	if f.step <= 0 {
		return 0
	}
	return int(time.Second / f.step)
}

// ShouldStep reports whether the simulation should advance by one step now.
func (f *FixedStep) ShouldStep() bool {
	return f.Tick(time.Now())
}

// Tick is ShouldStep with an explicit clock reading.
func (f *FixedStep) Tick(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	if limit := maxBacklog * f.step; f.accumulator > limit {
		f.accumulator = limit
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
