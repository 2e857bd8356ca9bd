package dino

import (
	"testing"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
)

const frameMs = 1000.0 / 60

// fixedRand returns the same values on every draw.
type fixedRand struct {
	f float64
	n int // Intn returns min(n, bound-1)
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) Intn(bound int) int {
	if r.n >= bound {
		return bound - 1
	}
	return r.n
}

func testAtlas() *Atlas {
	return NewAtlas(config.DefaultRunnerConfig().Sprites)
}

func newTestTRex(t *testing.T, rng core.Rand) *TRex {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	tr, err := NewTRex(cfg.TRex, testAtlas(), rng, cfg.World.Height, cfg.World.BottomPad)
	if err != nil {
		t.Fatalf("NewTRex() failed: %v", err)
	}
	return tr
}

func newTestHorizon(t *testing.T, cfg config.RunnerConfig, rng core.Rand) *Horizon {
	t.Helper()
	h, err := NewHorizon(cfg, testAtlas(), rng, cfg.Game.GapCoefficient)
	if err != nil {
		t.Fatalf("NewHorizon() failed: %v", err)
	}
	return h
}

func newTestGame(t *testing.T, cfg config.RunnerConfig, opts ...Option) *Game {
	t.Helper()
	g, err := NewGame(cfg, append([]Option{WithSeed(1)}, opts...)...)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	return g
}

// steps runs n frames with the same input and returns the last result.
func steps(g *Game, n int, in core.InputFrame) core.StepResult {
	var res core.StepResult
	for i := 0; i < n; i++ {
		res = g.Step(in)
	}
	return res
}

func hasSound(sounds []core.Sound, s core.Sound) bool {
	for _, x := range sounds {
		if x == s {
			return true
		}
	}
	return false
}

// tableType returns the lookup table row for kind built from the default config.
func tableType(t *testing.T, kind ObstacleKind) *obstacleType {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	table, err := newObstacleTable(cfg.Obstacles, cfg.World.Height)
	if err != nil {
		t.Fatalf("newObstacleTable() failed: %v", err)
	}
	for i := range table {
		if table[i].kind == kind {
			return &table[i]
		}
	}
	t.Fatalf("no table row for %s", kind)
	return nil
}

func defaultSpawnParams() spawnParams {
	cfg := config.DefaultRunnerConfig()
	return spawnParams{
		worldWidth:        float64(cfg.World.Width),
		fps:               cfg.World.FPS,
		gapCoefficient:    cfg.Game.GapCoefficient,
		maxGapCoefficient: cfg.Horizon.MaxGapCoefficient,
		maxLength:         cfg.Horizon.MaxObstacleLength,
	}
}
