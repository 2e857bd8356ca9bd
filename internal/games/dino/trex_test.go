package dino

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
)

func TestNewTRexStandsOnGround(t *testing.T) {
	tr := newTestTRex(t, core.NewRand(1))

	if tr.Y() != 518 || tr.GroundY() != 518 {
		t.Errorf("y = %g, ground = %g, expected 518", tr.Y(), tr.GroundY())
	}
	if tr.X() != 50 {
		t.Errorf("x = %g, expected 50", tr.X())
	}
	if tr.Status() != StatusWaiting {
		t.Errorf("status = %s, expected WAITING", tr.Status())
	}
}

func TestNewTRexRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.TRex.Width = 0

	_, err := NewTRex(cfg.TRex, testAtlas(), core.NewRand(1), cfg.World.Height, cfg.World.BottomPad)
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestFirstJumpFrame(t *testing.T) {
	tr := newTestTRex(t, core.NewRand(1))
	tr.Start()
	tr.StartJump(0)

	if tr.Velocity() != -10 {
		t.Fatalf("initial velocity = %g, expected -10", tr.Velocity())
	}

	tr.UpdateJump(frameMs)

	if tr.Y() != 508 {
		t.Errorf("y = %g, expected 508", tr.Y())
	}
	if math.Abs(tr.Velocity()-(-9.4)) > 1e-9 {
		t.Errorf("velocity = %g, expected -9.4", tr.Velocity())
	}
}

func TestJumpVelocityDependsOnSpeed(t *testing.T) {
	tr := newTestTRex(t, core.NewRand(1))
	tr.Start()
	tr.StartJump(6)

	if math.Abs(tr.Velocity()-(-10.6)) > 1e-9 {
		t.Errorf("velocity = %g, expected -10.6", tr.Velocity())
	}
}

func TestLandingSnapsToGround(t *testing.T) {
	deltas := []float64{1, frameMs, 33, 100, 250}
	speeds := []float64{0, 6, 13}

	for _, delta := range deltas {
		for _, speed := range speeds {
			tr := newTestTRex(t, core.NewRand(1))
			tr.Start()
			tr.StartJump(speed)

			for i := 0; i < 10000 && tr.Jumping(); i++ {
				tr.UpdateJump(delta)
			}

			if tr.Jumping() {
				t.Fatalf("delta=%g speed=%g: never landed", delta, speed)
			}
			if tr.Y() != tr.GroundY() {
				t.Errorf("delta=%g speed=%g: y = %g after landing, expected %g", delta, speed, tr.Y(), tr.GroundY())
			}
			if tr.Velocity() != 0 || tr.Status() != StatusRunning {
				t.Errorf("delta=%g speed=%g: velocity=%g status=%s", delta, speed, tr.Velocity(), tr.Status())
			}
			if tr.JumpCount() != 1 {
				t.Errorf("delta=%g speed=%g: jump count = %d", delta, speed, tr.JumpCount())
			}
		}
	}
}

// peak returns the smallest y reached when the jump is released after n frames.
func peak(t *testing.T, releaseAfter int) float64 {
	tr := newTestTRex(t, core.NewRand(1))
	tr.Start()
	tr.StartJump(6)

	top := tr.Y()
	for i := 0; tr.Jumping(); i++ {
		if i == releaseAfter {
			tr.EndJump()
		}
		tr.UpdateJump(frameMs)
		top = math.Min(top, tr.Y())
	}
	return top
}

func TestEarlierReleaseNeverJumpsHigher(t *testing.T) {
	held := peak(t, -1)
	for n := 0; n <= 40; n++ {
		if p := peak(t, n); p < held {
			t.Errorf("release after %d frames peaked at %g, above the held jump (%g)", n, p, held)
		}
	}
}

func TestReleaseBeforeMinHeightIsIgnored(t *testing.T) {
	held := peak(t, -1)
	if p := peak(t, 0); p != held {
		t.Errorf("release on the first frame peaked at %g, expected the held peak %g", p, held)
	}

	// Once the minimum height is reached, a later release climbs at least as high.
	tr := newTestTRex(t, core.NewRand(1))
	tr.Start()
	tr.StartJump(6)
	first := -1
	for i := 0; tr.Jumping(); i++ {
		if tr.ReachedMinHeight() {
			first = i
			break
		}
		tr.UpdateJump(frameMs)
	}
	if first < 0 {
		t.Fatal("jump never reached the minimum height")
	}
	prev := peak(t, first)
	for n := first + 1; n <= 40; n++ {
		p := peak(t, n)
		if p > prev {
			t.Errorf("release after %d frames peaked at %g, lower than release after %d (%g)", n, p, n-1, prev)
		}
		prev = p
	}
}

func TestMaxJumpHeightIsCeiling(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.TRex.MaxJumpHeight = 480
	tr, err := NewTRex(cfg.TRex, testAtlas(), core.NewRand(1), cfg.World.Height, cfg.World.BottomPad)
	if err != nil {
		t.Fatal(err)
	}
	tr.Start()
	tr.StartJump(6)

	for tr.Jumping() {
		tr.UpdateJump(frameMs)
		if tr.Y() < 480 && tr.Velocity() < cfg.TRex.DropVelocity {
			t.Fatalf("above the ceiling at y=%g with velocity %g", tr.Y(), tr.Velocity())
		}
	}
}

func TestSpeedDrop(t *testing.T) {
	tr := newTestTRex(t, core.NewRand(1))
	tr.Start()

	tr.SetSpeedDrop()
	if tr.SpeedDrop() {
		t.Fatal("speed drop must be ignored on the ground")
	}

	tr.StartJump(6)
	for i := 0; i < 5; i++ {
		tr.UpdateJump(frameMs)
	}
	tr.SetSpeedDrop()
	if !tr.SpeedDrop() || tr.Velocity() != 1 {
		t.Fatalf("speedDrop=%v velocity=%g, expected true and 1", tr.SpeedDrop(), tr.Velocity())
	}

	frames := 0
	for tr.Jumping() {
		tr.UpdateJump(frameMs)
		frames++
	}
	if frames > 10 {
		t.Errorf("speed drop took %d frames to land", frames)
	}
	if tr.SpeedDrop() {
		t.Error("landing should clear the speed drop")
	}
}

func TestDuckOnlyOnGround(t *testing.T) {
	tr := newTestTRex(t, core.NewRand(1))

	tr.SetDuck(true)
	if tr.Ducking() {
		t.Fatal("must not duck while waiting")
	}

	tr.Start()
	tr.SetDuck(true)
	if !tr.Ducking() || tr.Status() != StatusDucking {
		t.Fatalf("ducking=%v status=%s", tr.Ducking(), tr.Status())
	}
	if len(tr.CollisionBoxes()) != 1 {
		t.Errorf("ducking posture should use 1 box, got %d", len(tr.CollisionBoxes()))
	}

	tr.SetDuck(false)
	if tr.Ducking() || len(tr.CollisionBoxes()) != 6 {
		t.Errorf("standing up: ducking=%v boxes=%d", tr.Ducking(), len(tr.CollisionBoxes()))
	}

	tr.StartJump(6)
	tr.SetDuck(true)
	if tr.Ducking() {
		t.Error("must not duck while jumping")
	}
}

func TestStartJumpIgnoredWhileAirborne(t *testing.T) {
	tr := newTestTRex(t, core.NewRand(1))
	tr.Start()
	tr.StartJump(6)
	tr.UpdateJump(frameMs)
	v := tr.Velocity()

	tr.StartJump(13)
	if tr.Velocity() != v {
		t.Errorf("second jump changed velocity from %g to %g", v, tr.Velocity())
	}
}

func TestCrashedCannotJump(t *testing.T) {
	tr := newTestTRex(t, core.NewRand(1))
	tr.Start()
	tr.Crash()
	tr.StartJump(6)

	if tr.Jumping() || tr.Status() != StatusCrashed {
		t.Errorf("jumping=%v status=%s", tr.Jumping(), tr.Status())
	}
}

func TestResetMatchesFreshRunner(t *testing.T) {
	sequences := map[string]func(tr *TRex){
		"mid jump": func(tr *TRex) {
			tr.StartJump(6)
			for i := 0; i < 7; i++ {
				tr.UpdateJump(frameMs)
			}
		},
		"ducking": func(tr *TRex) {
			tr.SetDuck(true)
			tr.Update(300)
		},
		"speed drop": func(tr *TRex) {
			tr.StartJump(9)
			tr.UpdateJump(frameMs)
			tr.SetSpeedDrop()
			tr.UpdateJump(frameMs)
		},
		"crashed after landing": func(tr *TRex) {
			tr.StartJump(6)
			for tr.Jumping() {
				tr.UpdateJump(frameMs)
			}
			tr.Update(200)
			tr.Crash()
		},
	}

	for name, seq := range sequences {
		t.Run(name, func(t *testing.T) {
			fresh := newTestTRex(t, core.NewRand(1))
			fresh.Start()

			tr := newTestTRex(t, core.NewRand(1))
			tr.Start()
			seq(tr)
			tr.Reset()

			if tr.State() != fresh.State() {
				t.Errorf("after Reset:\n got  %+v\n want %+v", tr.State(), fresh.State())
			}
		})
	}
}

func TestRunningAnimationAdvances(t *testing.T) {
	tr := newTestTRex(t, core.NewRand(1))
	tr.Start()

	tr.Update(50)
	if tr.Frame() != 0 {
		t.Fatalf("frame = %d before ms_per_frame elapsed", tr.Frame())
	}
	tr.Update(50)
	if tr.Frame() != 1 {
		t.Errorf("frame = %d, expected 1", tr.Frame())
	}
	tr.Update(90)
	if tr.Frame() != 0 {
		t.Errorf("frame = %d, expected wrap to 0", tr.Frame())
	}
}

func TestBlinkWhileWaiting(t *testing.T) {
	tr := newTestTRex(t, fixedRand{f: 0.5})

	for i := 0; i < 60; i++ {
		tr.Update(frameMs)
		if tr.Frame() != 0 {
			t.Fatalf("eyes closed after %d ms, blink delay is 3500", i)
		}
	}

	for i := 0; i < 600; i++ {
		tr.Update(frameMs)
	}
	if tr.BlinkCount() == 0 {
		t.Error("expected at least one blink in 10 s")
	}
}

func TestCoarseBoxFollowsPosture(t *testing.T) {
	tr := newTestTRex(t, core.NewRand(1))
	tr.Start()

	if got := tr.CoarseBox(); got != core.NewBox(51, 519, 42, 45) {
		t.Errorf("running coarse box = %+v", got)
	}
	tr.SetDuck(true)
	if got := tr.CoarseBox().W; got != 57 {
		t.Errorf("ducking coarse width = %g, expected 57", got)
	}
}
