package engine

import (
	"sync"
	"time"

	"pomostudy/internal/core/model"
)

// Engine is the state machine behind the study timer. It alternates study and
// break sessions, accumulates total study time across runs, and is advanced by
// periodic Tick calls from the host.
//
// The countdown is derived from an absolute deadline rather than summed from
// per-tick deltas, so irregular polling cannot drift it. Study-time accounting
// is delta-based instead, because it must integrate exactly the time spent
// actively studying, including partial intervals at pause and mode-switch
// boundaries.
type Engine struct {
	mu     sync.Mutex
	clock  Clock
	config model.Config

	mode    Mode
	running bool
	paused  bool

	duration  time.Duration
	remaining time.Duration
	total     time.Duration

	// endTime is set iff the engine is actively counting down; lastTick is
	// set while running. The zero time means unset.
	endTime  time.Time
	lastTick time.Time
}

// New creates an engine seeded with the configured session lengths and the
// previously accumulated study total. A nil clock falls back to SystemClock.
func New(config model.Config, total time.Duration, clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock()
	}
	if total < 0 {
		total = 0
	}
	eng := &Engine{
		clock:  clock,
		config: config,
		mode:   ModeStudy,
		total:  total,
	}
	eng.duration = eng.sessionDurationLocked()
	eng.remaining = eng.duration
	return eng
}

// Start begins counting down, or resumes a paused session. It is idempotent
// while already running unpaused.
func (eng *Engine) Start() {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	eng.startLocked(eng.clock.Now())
}

// PauseToggle flips between paused and running. When the engine is stopped it
// behaves like Start.
func (eng *Engine) PauseToggle() {
	eng.mu.Lock()
	defer eng.mu.Unlock()

	now := eng.clock.Now()
	if !eng.running {
		eng.startLocked(now)
		return
	}

	if eng.paused {
		eng.paused = false
		eng.endTime = now.Add(eng.remaining)
		eng.lastTick = now
		return
	}

	eng.remaining = clampDuration(eng.endTime.Sub(now))
	eng.accrueStudyLocked(now)
	eng.endTime = time.Time{}
	eng.paused = true
}

// Reset stops the timer and restores the full duration for the current mode.
// Mode and accumulated study total are untouched.
func (eng *Engine) Reset() {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	eng.resetLocked()
}

// SetConfig replaces the session lengths and resets the current session. Any
// progress in the session in progress is discarded.
func (eng *Engine) SetConfig(studyMinutes, breakMinutes int) {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	eng.config = model.Config{
		StudyMinutes: studyMinutes,
		BreakMinutes: breakMinutes,
	}
	eng.resetLocked()
}

// Tick advances the engine to the given monotonic instant and reports whether
// the session completed and the mode switched. It is safe to call at any
// cadence with non-decreasing timestamps, and is a no-op while stopped or
// paused.
//
// A tick that crosses zero both flips the mode and starts the next session at
// the same instant, so from the caller's perspective the switch is atomic.
func (eng *Engine) Tick(now time.Time) bool {
	eng.mu.Lock()
	defer eng.mu.Unlock()

	if !eng.running || eng.paused {
		return false
	}

	eng.accrueStudyLocked(now)
	eng.remaining = clampDuration(eng.endTime.Sub(now))

	if eng.remaining <= 0 {
		eng.switchModeLocked()
		eng.startLocked(now)
		return true
	}
	return false
}

// Progress reports session completion in [0, 1].
func (eng *Engine) Progress() float64 {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return progressValue(eng.duration, eng.remaining)
}

// FormatRemaining renders the remaining session time as MM:SS.
func (eng *Engine) FormatRemaining() string {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return FormatClock(eng.remaining)
}

// FormatTotal renders the accumulated study total in short ("X.XX h") and
// long ("HH:MM:SS") forms.
func (eng *Engine) FormatTotal() (string, string) {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return FormatTotal(eng.total)
}

// ResetTotal clears the accumulated study total. Session state is unaffected.
func (eng *Engine) ResetTotal() {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	eng.total = 0
}

// Mode returns the current session kind.
func (eng *Engine) Mode() Mode {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return eng.mode
}

// Running reports whether the timer has been started and not reset.
func (eng *Engine) Running() bool {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return eng.running
}

// Paused reports whether a running timer is suspended.
func (eng *Engine) Paused() bool {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return eng.paused
}

// Remaining returns the time left in the current session.
func (eng *Engine) Remaining() time.Duration {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return eng.remaining
}

// Total returns the accumulated study time.
func (eng *Engine) Total() time.Duration {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return eng.total
}

// Config returns the configured session lengths.
func (eng *Engine) Config() model.Config {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return eng.config
}

// Snapshot returns a consistent view of the engine for one UI refresh.
func (eng *Engine) Snapshot() Status {
	eng.mu.Lock()
	defer eng.mu.Unlock()

	short, long := FormatTotal(eng.total)
	return Status{
		Mode:       eng.mode,
		Running:    eng.running,
		Paused:     eng.paused,
		Remaining:  eng.remaining,
		Progress:   progressValue(eng.duration, eng.remaining),
		Clock:      FormatClock(eng.remaining),
		TotalShort: short,
		TotalLong:  long,
	}
}

func (eng *Engine) startLocked(now time.Time) {
	if eng.running && !eng.paused {
		return
	}
	eng.running = true
	eng.paused = false
	eng.endTime = now.Add(eng.remaining)
	eng.lastTick = now
}

func (eng *Engine) resetLocked() {
	eng.running = false
	eng.paused = false
	eng.duration = eng.sessionDurationLocked()
	eng.remaining = eng.duration
	eng.endTime = time.Time{}
	eng.lastTick = time.Time{}
}

func (eng *Engine) switchModeLocked() {
	switch eng.mode {
	case ModeStudy:
		eng.mode = ModeBreak
	case ModeBreak:
		eng.mode = ModeStudy
	}
	eng.duration = eng.sessionDurationLocked()
	eng.remaining = eng.duration
	eng.running = false
	eng.paused = false
	eng.endTime = time.Time{}
}

// accrueStudyLocked is the single accounting path shared by Tick and the
// pause branch of PauseToggle. It always advances lastTick, even when the
// accrual condition does not hold, so no stale timestamp is reused later.
func (eng *Engine) accrueStudyLocked(now time.Time) {
	if eng.mode == ModeStudy && eng.running && !eng.paused && !eng.lastTick.IsZero() {
		eng.total += now.Sub(eng.lastTick)
	}
	eng.lastTick = now
}

func (eng *Engine) sessionDurationLocked() time.Duration {
	switch eng.mode {
	case ModeStudy:
		return eng.config.StudyDuration()
	case ModeBreak:
		return eng.config.BreakDuration()
	}
	return eng.config.StudyDuration()
}

func clampDuration(value time.Duration) time.Duration {
	if value < 0 {
		return 0
	}
	return value
}
