package sim

import (
	"image/color"
	"testing"
	"time"
)

func TestBallFling(t *testing.T) {
	cfg := emptyConfig()
	clock := NewManualClock(testStart)
	ball := NewBall(Vec2{100, 100}, 50, color.White, clock.Now())

	if !ball.Grab(Vec2{100, 100}) {
		t.Fatal("Expected grab inside the ball to succeed")
	}
	if !ball.Held() || ball.Vel != (Vec2{}) {
		t.Fatalf("Expected held ball at rest, got state %d vel %v", ball.State, ball.Vel)
	}

	ball.Update(testFrame(cfg, bounds800, clock.Now(), nil))

	ball.Drag(Vec2{110, 100}, cfg.ThrowingPower)
	if ball.Pos != (Vec2{110, 100}) {
		t.Fatalf("Expected ball under pointer, got %v", ball.Pos)
	}

	clock.Advance(16 * time.Millisecond)
	ball.Update(testFrame(cfg, bounds800, clock.Now(), nil))

	ball.Release(cfg.ThrowingPower)

	if ball.Held() {
		t.Error("Expected ball to be free after release")
	}
	if ball.Vel.X != 3.125 || ball.Vel.Y != 0 {
		t.Errorf("Expected fling velocity (3.125, 0), got %v", ball.Vel)
	}
}

func TestBallGrabKeepsOffset(t *testing.T) {
	ball := NewBall(Vec2{100, 100}, 50, color.White, testStart)

	if !ball.Grab(Vec2{120, 90}) {
		t.Fatal("Expected grab to succeed")
	}
	if ball.Offset != (Vec2{20, -10}) {
		t.Errorf("Expected offset (20, -10), got %v", ball.Offset)
	}

	ball.Drag(Vec2{220, 190}, 5)
	if ball.Pos != (Vec2{200, 200}) {
		t.Errorf("Expected ball kept under grab point at (200, 200), got %v", ball.Pos)
	}
}

func TestBallGrabMiss(t *testing.T) {
	ball := NewBall(Vec2{100, 100}, 50, color.White, testStart)
	ball.Vel = Vec2{1, 1}

	if ball.Grab(Vec2{150, 100}) {
		t.Error("Expected grab on the rim to miss")
	}
	if ball.Held() || ball.Vel != (Vec2{1, 1}) {
		t.Error("Expected missed grab to leave the ball alone")
	}

	// Drag and release on a free ball are ignored
	ball.Drag(Vec2{0, 0}, 5)
	ball.Release(5)
	if ball.Pos != (Vec2{100, 100}) || ball.Vel != (Vec2{1, 1}) {
		t.Errorf("Expected free ball untouched, got pos %v vel %v", ball.Pos, ball.Vel)
	}
}

func TestBallReleaseWithoutElapsedTime(t *testing.T) {
	ball := NewBall(Vec2{100, 100}, 50, color.White, testStart)
	ball.Grab(Vec2{100, 100})
	ball.Drag(Vec2{140, 100}, 5)
	ball.Release(5)

	if ball.Vel != (Vec2{}) {
		t.Errorf("Expected zero velocity without a measured frame, got %v", ball.Vel)
	}
}

func TestHeldBallSkipsPhysics(t *testing.T) {
	cfg := emptyConfig()
	ball := NewBall(Vec2{100, 590}, 50, color.White, testStart)
	ball.Grab(Vec2{100, 590})

	var events []ImpactEvent
	for i := 1; i <= 10; i++ {
		ball.Update(testFrame(cfg, bounds800, testStart.Add(time.Duration(i)*16*time.Millisecond), &events))
	}

	if ball.Pos != (Vec2{100, 590}) || ball.Vel != (Vec2{}) {
		t.Errorf("Expected held ball frozen, got pos %v vel %v", ball.Pos, ball.Vel)
	}
	if len(events) != 0 {
		t.Errorf("Expected no impacts while held, got %d", len(events))
	}
}

func TestFreeBallFalls(t *testing.T) {
	cfg := emptyConfig()
	ball := NewBall(Vec2{100, 100}, 50, color.White, testStart)

	ball.Update(testFrame(cfg, bounds800, testStart, nil))

	if ball.Vel.Y != cfg.Gravity {
		t.Errorf("Expected vy %v, got %v", cfg.Gravity, ball.Vel.Y)
	}
	if ball.Pos.Y != 100+cfg.Gravity {
		t.Errorf("Expected y %v, got %v", 100+cfg.Gravity, ball.Pos.Y)
	}
}

func TestFreeBallStopsCreeping(t *testing.T) {
	cfg := emptyConfig()
	ball := NewBall(Vec2{100, 100}, 50, color.White, testStart)
	ball.Vel = Vec2{0.05, 0}

	ball.Update(testFrame(cfg, bounds800, testStart, nil))

	if ball.Vel.X != 0 || ball.Pos.X != 100 {
		t.Errorf("Expected creeping ball stopped, got vel %v pos %v", ball.Vel, ball.Pos)
	}
}

func TestFreeBallBounceEmitsImpact(t *testing.T) {
	cfg := emptyConfig()
	ball := NewBall(Vec2{400, 560}, 50, color.White, testStart)
	ball.Vel = Vec2{0, 10}
	ball.Speed = 20

	var events []ImpactEvent
	ball.Update(testFrame(cfg, bounds800, testStart, &events))

	if len(events) != 1 || events[0].Side != SideFloor || events[0].Speed != 20 {
		t.Fatalf("Expected one floor impact at speed 20, got %+v", events)
	}
	if ball.Vel.Y >= 0 {
		t.Errorf("Expected ball heading up after bounce, got vy %v", ball.Vel.Y)
	}
}

func TestBallDrawSquash(t *testing.T) {
	cfg := emptyConfig()
	ball := NewBall(Vec2{100, 100}, 50, color.White, testStart)

	testCases := []struct {
		speed float64
		want  float64
	}{
		{0, 50},
		{10, 40},
		{40, cfg.MinRadius},
	}

	for _, tc := range testCases {
		ball.Speed = tc.speed
		cv := &recordingCanvas{}
		ball.Draw(cv, cfg)

		if len(cv.calls) != 1 || cv.calls[0].kind != "ellipse" {
			t.Fatalf("Expected a single ellipse, got %+v", cv.calls)
		}
		if cv.calls[0].rx != 50 || cv.calls[0].ry != tc.want {
			t.Errorf("speed %v: expected radii (50, %v), got (%v, %v)", tc.speed, tc.want, cv.calls[0].rx, cv.calls[0].ry)
		}
	}
}
