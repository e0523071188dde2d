package sim

import (
	"context"
	"time"
)

// DefaultInterval is one frame of a 60 Hz display.
const DefaultInterval = time.Second / 60

// Scheduler drives a step function at a fixed interval without a display.
// The windowed build lets ebiten drive the frames instead.
type Scheduler struct {
	Interval  time.Duration
	MaxFrames uint64 // 0 runs until ctx is done
}

// Run calls step once per tick on the calling goroutine. It returns the
// number of completed frames, the first step error, or ctx.Err() when the
// context ends before MaxFrames is reached.
func (s Scheduler) Run(ctx context.Context, step func() error) (uint64, error) {
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var frames uint64
	for s.MaxFrames == 0 || frames < s.MaxFrames {
		select {
		case <-ctx.Done():
			return frames, ctx.Err()
		case <-ticker.C:
		}
		if err := step(); err != nil {
			return frames, err
		}
		frames++
	}
	return frames, nil
}
