package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/bounce-visualization/internal/config"
	"github.com/iburimskiy/bounce-visualization/internal/game"
	"github.com/iburimskiy/bounce-visualization/internal/sim"
)

var (
	configFlag   = flag.String("config", "", "TOML config file (default $"+config.EnvPath+")")
	debugFlag    = flag.Bool("debug", false, "Enable logging")
	logFlag      = flag.String("log", "", "Write logs to this file instead of stderr (with -debug)")
	headlessFlag = flag.Bool("headless", false, "Run the simulation without a window")
	framesFlag   = flag.Uint64("frames", 0, "Stop after this many frames in headless mode (0 runs until interrupted)")
	seedFlag     = flag.Uint64("seed", 0, "Random seed, overrides window.seed (0 seeds from the clock)")
)

func main() {
	flag.Parse()

	closer, err := setupLogging(*debugFlag, *logFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := run(); err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "bounce: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}

func run() error {
	path := config.ResolvePath(*configFlag)
	store, err := config.NewStore(path)
	if err != nil {
		return err
	}
	cfg := store.Current()
	if path != "" {
		log.Printf("config loaded from %s", path)
	}

	seed := cfg.Window.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("seed %d", seed)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	world, err := sim.NewWorld(cfg, float64(cfg.Window.Width), float64(cfg.Window.Height), sim.SystemClock{}, rng)
	if err != nil {
		return err
	}

	if *headlessFlag {
		return runHeadless(world, *framesFlag)
	}

	game.ApplyWindow(cfg.Window)
	if err := ebiten.RunGame(game.NewLoop(store, world)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// runHeadless steps world at 60 Hz until frames are done or the process is
// interrupted, logging scene stats once per second.
func runHeadless(world *sim.World, frames uint64) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	perSecond := uint64(time.Second / sim.DefaultInterval)
	sched := sim.Scheduler{Interval: sim.DefaultInterval, MaxFrames: frames}
	n, err := sched.Run(ctx, func() error {
		world.Update()
		if s := world.Stats(); s.Frame%perSecond == 0 {
			log.Printf("frame %d: balls %d circles %d particles %d emitted %d",
				s.Frame, s.Balls, s.Circles, s.Particles, s.Emitted)
		}
		return nil
	})

	s := world.Stats()
	log.Printf("headless run stopped after %d frames, %d particles emitted", n, s.Emitted)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// setupLogging routes the standard logger. Without debug, logs are
// discarded; with debug they go to path, or stderr when path is empty.
func setupLogging(debug bool, path string) (io.Closer, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	log.SetFlags(log.Ltime | log.Lmicroseconds)
	log.SetPrefix("[bounce] ")
	if path == "" {
		log.SetOutput(os.Stderr)
		return nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
