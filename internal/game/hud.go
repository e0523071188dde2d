package game

import (
	"fmt"
	"time"

	"github.com/iburimskiy/bounce-visualization/internal/sim"
)

const helpText = "Drag the ball | Space: pause  Backspace: reset  R: reload  O: open config  Esc/Q: quit"

// statusLine is the HUD text for the current frame.
func statusLine(stats sim.Stats, uptime time.Duration, tps float64, paused bool, lastErr error) string {
	state := "running"
	if paused {
		state = "paused"
	}
	status := fmt.Sprintf("%s %s | balls %d  circles %d  particles %d | %.0f tps",
		state, formatDuration(uptime), stats.Balls, stats.Circles, stats.Particles, tps)
	if lastErr != nil {
		status += " | Error: " + lastErr.Error()
	}
	return status
}
