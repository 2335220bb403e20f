package engine

import "time"

// Mode represents the current session kind. The string value doubles as the
// display label.
type Mode string

const (
	ModeStudy Mode = "study"
	ModeBreak Mode = "break"
)

// Status is a consistent snapshot of the engine for presentation. All fields
// are computed under one lock acquisition so the UI never mixes values from
// different ticks.
type Status struct {
	Mode      Mode
	Running   bool
	Paused    bool
	Remaining time.Duration
	Progress  float64

	Clock      string
	TotalShort string
	TotalLong  string
}
