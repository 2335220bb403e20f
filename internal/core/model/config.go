package model

import "time"

// Session length bounds enforced at the configuration surface. The engine
// itself tolerates any positive values.
const (
	MinStudyMinutes = 1
	MaxStudyMinutes = 180
	MinBreakMinutes = 1
	MaxBreakMinutes = 60
)

// Config contains session lengths for the timer engine.
type Config struct {
	StudyMinutes int
	BreakMinutes int
}

// DefaultConfig returns the default session lengths.
func DefaultConfig() Config {
	return Config{
		StudyMinutes: 30,
		BreakMinutes: 5,
	}
}

// Normalize clamps session lengths into their documented bounds.
func (config Config) Normalize() Config {
	config.StudyMinutes = clampInt(config.StudyMinutes, MinStudyMinutes, MaxStudyMinutes)
	config.BreakMinutes = clampInt(config.BreakMinutes, MinBreakMinutes, MaxBreakMinutes)
	return config
}

// StudyDuration returns the configured study session length.
func (config Config) StudyDuration() time.Duration {
	return time.Duration(config.StudyMinutes) * time.Minute
}

// BreakDuration returns the configured break session length.
func (config Config) BreakDuration() time.Duration {
	return time.Duration(config.BreakMinutes) * time.Minute
}

func clampInt(value, lower, upper int) int {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
