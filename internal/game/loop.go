package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/bounce-visualization/internal/config"
	"github.com/iburimskiy/bounce-visualization/internal/sim"
)

// Loop is the display-driven frame scheduler: ebiten calls Update once per
// tick and Draw once per frame, on the same goroutine.
type Loop struct {
	store  *config.Store
	world  *sim.World
	canvas Canvas

	pointer pointerTracker

	// input edge detection
	prevKey map[ebiten.Key]bool

	// layout reported by ebiten, applied on the next Update
	width, height int

	started time.Time
	paused  bool
	lastErr error
}

func NewLoop(store *config.Store, world *sim.World) *Loop {
	b := world.Bounds()
	return &Loop{
		store:   store,
		world:   world,
		prevKey: map[ebiten.Key]bool{},
		width:   int(b.Width),
		height:  int(b.Height),
		started: time.Now(),
	}
}

// ApplyWindow pushes the window settings of cfg to ebiten.
func ApplyWindow(w config.Window) {
	ebiten.SetWindowSize(atLeastOne(w.Width), atLeastOne(w.Height))
	ebiten.SetWindowTitle(w.Title)
	if w.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	applyTPS(w.TPS)
}

func applyTPS(tps int) {
	if tps == 0 {
		ebiten.SetVsyncEnabled(true)
		ebiten.SetTPS(ebiten.SyncWithFPS)
		return
	}
	ebiten.SetTPS(tps)
}

func (l *Loop) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !l.prevKey[k]
		l.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace) {
		l.togglePause()
	}
	if justPressed(ebiten.KeyBackspace) {
		l.reset("manual reset")
	}
	if justPressed(ebiten.KeyR) {
		l.reload(l.store.Path())
	}
	if justPressed(ebiten.KeyO) {
		l.openConfigDialog()
	}

	if err := l.applyLayout(); err != nil {
		return err
	}

	l.pointer.poll(l.world)

	if !l.paused {
		l.world.Update()
	}
	return nil
}

func (l *Loop) Draw(screen *ebiten.Image) {
	l.canvas.Target(screen)
	l.world.Render(&l.canvas)

	status := statusLine(l.world.Stats(), time.Since(l.started), ebiten.ActualTPS(), l.paused, l.lastErr)
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
	ebitenutil.DebugPrintAt(screen, helpText, 12, 28)
}

// Layout follows the window size; the scene is rebuilt on the next Update
// when it changed.
func (l *Loop) Layout(outsideWidth, outsideHeight int) (int, int) {
	l.width, l.height = atLeastOne(outsideWidth), atLeastOne(outsideHeight)
	return l.width, l.height
}

func (l *Loop) applyLayout() error {
	b := l.world.Bounds()
	w, h := float64(l.width), float64(l.height)
	if w == b.Width && h == b.Height {
		return nil
	}
	if err := l.world.Resize(w, h); err != nil {
		return fmt.Errorf("resize to %dx%d: %w", l.width, l.height, err)
	}
	l.pointer.reset()
	log.Printf("resized to %dx%d, scene reset", l.width, l.height)
	return nil
}

func (l *Loop) togglePause() {
	l.paused = !l.paused
	log.Printf("paused=%v", l.paused)
}

func (l *Loop) reset(reason string) {
	if err := l.world.Reset(l.store.Current()); err != nil {
		l.fail(err)
		return
	}
	l.pointer.reset()
	stats := l.world.Stats()
	log.Printf("%s: %d balls, %d circles", reason, stats.Balls, stats.Circles)
}

// reload re-reads path into the store and rebuilds the scene. On failure
// the previous configuration stays in force.
func (l *Loop) reload(path string) {
	if err := l.store.LoadFrom(path); err != nil {
		l.fail(err)
		return
	}
	l.lastErr = nil
	applyTPS(l.store.Current().Window.TPS)
	if path == "" {
		path = "defaults"
	}
	l.reset("loaded " + path)
}

func (l *Loop) openConfigDialog() {
	path, err := selectConfigFile()
	if err != nil {
		l.fail(fmt.Errorf("open config dialog: %w", err))
		return
	}
	if path == "" {
		return
	}
	l.reload(path)
}

func (l *Loop) fail(err error) {
	l.lastErr = err
	log.Printf("error: %v", err)
	if !errors.Is(err, config.ErrInvalid) {
		showError(err)
		return
	}
	showError(fmt.Errorf("configuration rejected, keeping the previous one:\n%w", err))
}
