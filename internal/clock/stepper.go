// Package clock converts real elapsed time into a whole number of fixed
// simulation steps.
package clock

import "time"

// MaxCatchUp caps the steps reported by one Advance call. Time beyond the
// cap is dropped so a stalled shell does not replay seconds of simulation.
const MaxCatchUp = 8

// Stepper is a fixed-timestep accumulator.
type Stepper struct {
	step        time.Duration
	accumulator time.Duration
	total       uint64
}

// NewStepper creates a stepper for the given rate in steps per second.
// Non-positive rates fall back to 60.
func NewStepper(rate int) *Stepper {
	if rate <= 0 {
		rate = 60
	}
	return &Stepper{step: time.Second / time.Duration(rate)}
}

// Step returns the duration of one simulation step.
func (s *Stepper) Step() time.Duration {
	return s.step
}

// Advance adds elapsed time and returns how many steps are now due.
// The remainder is carried into the next call.
func (s *Stepper) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		s.accumulator += elapsed
	}

	due := int(s.accumulator / s.step)
	if due > MaxCatchUp {
		due = MaxCatchUp
		s.accumulator = 0
	} else {
		s.accumulator -= time.Duration(due) * s.step
	}

	s.total += uint64(due)
	return due
}

// Pending returns the carried time not yet converted into a step.
func (s *Stepper) Pending() time.Duration {
	return s.accumulator
}

// Total returns the number of steps reported since creation or Reset.
func (s *Stepper) Total() uint64 {
	return s.total
}

// Reset discards carried time and the step count.
func (s *Stepper) Reset() {
	s.accumulator = 0
	s.total = 0
}
