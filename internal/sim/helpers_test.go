package sim

import (
	"image/color"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/iburimskiy/bounce-visualization/internal/config"
)

var testStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type drawCall struct {
	kind         string
	x, y, rx, ry float64
	rotation     float64
	color        color.Color
}

// recordingCanvas keeps every draw call for inspection.
type recordingCanvas struct {
	cleared int
	calls   []drawCall
}

func (c *recordingCanvas) Clear(color.Color) { c.cleared++ }

func (c *recordingCanvas) FillCircle(x, y, r float64, col color.Color) {
	c.calls = append(c.calls, drawCall{kind: "circle", x: x, y: y, rx: r, ry: r, color: col})
}

func (c *recordingCanvas) FillEllipse(x, y, rx, ry, rotation float64, col color.Color) {
	c.calls = append(c.calls, drawCall{kind: "ellipse", x: x, y: y, rx: rx, ry: ry, rotation: rotation, color: col})
}

func (c *recordingCanvas) count(kind string) int {
	n := 0
	for _, call := range c.calls {
		if call.kind == kind {
			n++
		}
	}
	return n
}

// emptyConfig is the default configuration with no bodies.
func emptyConfig() *config.Config {
	cfg := config.Default()
	cfg.BallCount = 0
	cfg.CircleCount = 0
	return &cfg
}

func newTestWorld(t *testing.T, cfg *config.Config, width, height float64) (*World, *ManualClock) {
	t.Helper()
	clock := NewManualClock(testStart)
	w, err := NewWorld(cfg, width, height, clock, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w, clock
}

func testFrame(cfg *config.Config, bounds Bounds, now time.Time, events *[]ImpactEvent) *Frame {
	f := &Frame{Cfg: cfg, Bounds: bounds, Now: now}
	if events != nil {
		f.emit = func(ev ImpactEvent) { *events = append(*events, ev) }
	}
	return f
}
