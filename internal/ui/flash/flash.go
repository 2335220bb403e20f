package flash

import (
	"context"
	"image/color"
	"sync"
	"time"
)

// Pulser briefly blends a surface color toward a highlight and back, calling
// apply for each frame. One pulse runs at a time; starting a new one cancels
// the previous.
type Pulser struct {
	mu       sync.Mutex
	apply    func(color.NRGBA)
	restore  func() color.NRGBA
	steps    int
	interval time.Duration
	cancel   context.CancelFunc
}

// New creates a pulser that renders frames through apply. The final frame is
// taken from restore rather than the starting color, so a surface whose base
// changed mid-pulse settles on the new value. Both callbacks are invoked from
// a background goroutine; callers marshal onto their UI thread themselves.
func New(apply func(color.NRGBA), restore func() color.NRGBA) *Pulser {
	return &Pulser{
		apply:    apply,
		restore:  restore,
		steps:    10,
		interval: 30 * time.Millisecond,
	}
}

// Pulse runs one blend cycle from base toward highlight and back, finishing on
// the restore color even when cancelled.
func (pulser *Pulser) Pulse(base, highlight color.NRGBA) {
	pulser.mu.Lock()
	if pulser.cancel != nil {
		pulser.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	pulser.cancel = cancel
	pulser.mu.Unlock()

	go pulser.run(ctx, base, highlight)
}

// Stop cancels any pulse in flight.
func (pulser *Pulser) Stop() {
	pulser.mu.Lock()
	defer pulser.mu.Unlock()
	if pulser.cancel != nil {
		pulser.cancel()
		pulser.cancel = nil
	}
}

func (pulser *Pulser) run(ctx context.Context, base, highlight color.NRGBA) {
	defer func() {
		final := base
		if pulser.restore != nil {
			final = pulser.restore()
		}
		pulser.apply(final)
	}()

	total := pulser.steps * 2
	for frame := 1; frame <= total; frame++ {
		fraction := float64(frame) / float64(pulser.steps)
		if frame > pulser.steps {
			fraction = float64(total-frame) / float64(pulser.steps)
		}
		pulser.apply(blend(base, highlight, fraction))
		if !sleepWithContext(ctx, pulser.interval) {
			return
		}
	}
}

func blend(from, to color.NRGBA, fraction float64) color.NRGBA {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*fraction)
	}
	return color.NRGBA{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: mix(from.A, to.A),
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
