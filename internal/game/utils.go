package game

import (
	"fmt"
	"time"
)

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// atLeastOne keeps layout sizes positive while the window is minimised.
func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
