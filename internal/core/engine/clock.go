package engine

import "time"

// Clock provides the current time for the engine. The abstraction exists so
// tests can drive the state machine deterministically; production code uses
// SystemClock, whose readings carry Go's monotonic component and are therefore
// immune to wall-clock adjustments.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}
