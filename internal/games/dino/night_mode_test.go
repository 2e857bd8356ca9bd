package dino

import (
	"math"
	"testing"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
)

func newTestNight(t *testing.T) *NightMode {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	return newNightMode(cfg.NightMode, testAtlas(), core.NewRand(1), cfg.World.Width, cfg.World.Height, cfg.World.FPS)
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-5 }

func TestNightFadesInAndOut(t *testing.T) {
	n := newTestNight(t)

	n.update(0, true)
	if n.Phase() != 1 {
		t.Errorf("phase = %d, expected 1 after activating", n.Phase())
	}
	if n.Opacity() != 0 {
		t.Errorf("opacity = %g before any time passed", n.Opacity())
	}

	n.update(238, true)
	if !near(n.Opacity(), 0.5) {
		t.Errorf("opacity = %g halfway, expected 0.5", n.Opacity())
	}
	n.update(238, true)
	if n.Opacity() != 1 {
		t.Errorf("opacity = %g after the fade, expected 1", n.Opacity())
	}

	n.update(100, false)
	if !near(n.Opacity(), 1-100.0/476) {
		t.Errorf("opacity = %g while fading out", n.Opacity())
	}
	n.update(1000, false)
	if n.Opacity() != 0 {
		t.Errorf("opacity = %g, expected 0", n.Opacity())
	}
}

func TestMoonPhaseOnlyChangesWhenTransparent(t *testing.T) {
	n := newTestNight(t)

	n.update(frameMs, true)
	n.update(200, true)
	n.update(frameMs, false)
	// Reactivated before fully transparent.
	n.update(frameMs, true)
	if n.Phase() != 1 {
		t.Errorf("phase = %d, a visible moon must not change phase", n.Phase())
	}

	n.update(1000, false)
	n.update(frameMs, true)
	if n.Phase() != 2 {
		t.Errorf("phase = %d, expected 2", n.Phase())
	}
}

func TestMoonPhaseWraps(t *testing.T) {
	n := newTestNight(t)
	for i := 0; i < 7; i++ {
		n.update(frameMs, true)
		n.update(1000, false)
	}
	if n.Phase() != 0 {
		t.Errorf("phase = %d after 7 nights, expected 0", n.Phase())
	}
}

func TestMoonDriftsWhileVisible(t *testing.T) {
	n := newTestNight(t)
	x := n.MoonX()

	n.update(frameMs, false)
	if n.MoonX() != x {
		t.Fatal("moon moved while invisible")
	}

	n.update(frameMs, true)
	n.update(frameMs, true)
	if n.MoonX() >= x {
		t.Errorf("moon x = %g, expected less than %g", n.MoonX(), x)
	}
}

func TestStarsStayInSegments(t *testing.T) {
	n := newTestNight(t)
	for i := 0; i < 20; i++ {
		n.update(frameMs, false)
		for j, s := range n.Stars() {
			if s.X < float64(300*j) || s.X > float64(300*(j+1)) {
				t.Fatalf("star %d at x=%g outside its segment", j, s.X)
			}
			if s.Y < 191 || s.Y > 261 {
				t.Fatalf("star %d at y=%g outside the sky band", j, s.Y)
			}
		}
	}
}

func TestNightDrawsFullMoonWide(t *testing.T) {
	n := newTestNight(t)
	for n.Phase() != 2 {
		n.update(frameMs, true)
		n.update(1000, false)
	}
	// The next night shows the full moon.
	n.update(frameMs, true)
	n.update(1000, true)

	var moon *RenderRequest
	stars := 0
	n.draw(RendererFunc(func(req RenderRequest) {
		switch req.Kind {
		case EntityMoon:
			moon = &req
		case EntityStar:
			stars++
		}
	}))

	if moon == nil {
		t.Fatal("no moon drawn")
	}
	if moon.Dest.W != 40 {
		t.Errorf("full moon width = %g, expected 40", moon.Dest.W)
	}
	if moon.Source.X != 484+60 {
		t.Errorf("moon source x = %g, expected 544", moon.Source.X)
	}
	if stars != 2 {
		t.Errorf("stars drawn = %d, expected 2", stars)
	}
}

func TestNightDrawsNothingWhenTransparent(t *testing.T) {
	n := newTestNight(t)
	n.update(frameMs, false)

	drawn := 0
	n.draw(RendererFunc(func(RenderRequest) { drawn++ }))
	if drawn != 0 {
		t.Errorf("drew %d requests at opacity 0", drawn)
	}
}

func TestNightReset(t *testing.T) {
	n := newTestNight(t)
	n.update(frameMs, true)
	n.update(200, true)

	n.reset()
	if n.Phase() != 0 || n.Opacity() != 0 {
		t.Errorf("phase=%d opacity=%g after reset", n.Phase(), n.Opacity())
	}
}
