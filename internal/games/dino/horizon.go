package dino

import (
	"fmt"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
)

// Horizon owns the scrolling background and spawns obstacles.
// Obstacles and clouds are kept in spawn order, oldest first.
type Horizon struct {
	cfg      config.HorizonConfig
	cloudCfg config.CloudConfig
	atlas    *Atlas
	rng      core.Rand

	worldWidth  int
	worldHeight int
	params      spawnParams
	table       []obstacleType

	obstacles []*Obstacle
	history   []ObstacleKind // most recent first, at most MaxObstacleDuplication long
	clouds    []*Cloud

	line  *HorizonLine
	night *NightMode
}

// NewHorizon creates the spawner with one cloud and no obstacles.
func NewHorizon(cfg config.RunnerConfig, atlas *Atlas, rng core.Rand, gapCoefficient float64) (*Horizon, error) {
	for _, err := range []error{
		cfg.World.Validate(),
		cfg.Horizon.Validate(),
		cfg.Cloud.Validate(),
		cfg.HorizonLine.Validate(),
		cfg.NightMode.Validate(),
	} {
		if err != nil {
			return nil, fmt.Errorf("dino: horizon: %w", err)
		}
	}
	if gapCoefficient <= 0 {
		return nil, fmt.Errorf("dino: horizon: %w: gap coefficient must be positive, got %g",
			config.ErrInvalidConfig, gapCoefficient)
	}
	table, err := newObstacleTable(cfg.Obstacles, cfg.World.Height)
	if err != nil {
		return nil, err
	}

	h := &Horizon{
		cfg:         cfg.Horizon,
		cloudCfg:    cfg.Cloud,
		atlas:       atlas,
		rng:         rng,
		worldWidth:  cfg.World.Width,
		worldHeight: cfg.World.Height,
		params: spawnParams{
			worldWidth:        float64(cfg.World.Width),
			fps:               cfg.World.FPS,
			gapCoefficient:    gapCoefficient,
			maxGapCoefficient: cfg.Horizon.MaxGapCoefficient,
			maxLength:         cfg.Horizon.MaxObstacleLength,
		},
		table: table,
		line:  newHorizonLine(cfg.HorizonLine, atlas, rng, cfg.World.Height, cfg.World.BottomPad, cfg.World.FPS),
		night: newNightMode(cfg.NightMode, atlas, rng, cfg.World.Width, cfg.World.Height, cfg.World.FPS),
	}
	h.addCloud()
	return h, nil
}

// Update advances the background and, when enabled, the obstacles.
func (h *Horizon) Update(deltaMs, speed float64, updateObstacles, showNightMode bool) {
	h.line.update(deltaMs, speed)
	h.night.update(deltaMs, showNightMode)
	h.updateClouds(deltaMs, speed)
	if updateObstacles {
		h.updateObstacles(deltaMs, speed)
	}
}

func (h *Horizon) updateClouds(deltaMs, speed float64) {
	h.clouds = purgeClouds(h.clouds)
	if len(h.clouds) == 0 {
		h.addCloud()
		return
	}

	cloudSpeed := h.cfg.BgCloudSpeed / 1000 * deltaMs * speed
	for _, c := range h.clouds {
		c.update(cloudSpeed)
	}

	last := h.clouds[len(h.clouds)-1]
	if len(h.clouds) < h.cfg.MaxClouds &&
		float64(h.worldWidth)-last.x > float64(last.gap) &&
		h.cfg.CloudFrequency > h.rng.Float64() {
		h.addCloud()
	}
}

func (h *Horizon) addCloud() {
	h.clouds = append(h.clouds, newCloud(h.cloudCfg, h.atlas, h.rng, h.worldWidth, h.worldHeight))
}

func (h *Horizon) updateObstacles(deltaMs, speed float64) {
	h.obstacles = purgeObstacles(h.obstacles)
	for _, o := range h.obstacles {
		o.update(deltaMs, speed)
	}

	if len(h.obstacles) == 0 {
		h.addObstacle(speed)
		return
	}

	last := h.obstacles[len(h.obstacles)-1]
	if !last.followingObstacleCreated && last.visible() &&
		last.x+last.width+float64(last.gap) < float64(h.worldWidth) {
		if h.addObstacle(speed) {
			last.followingObstacleCreated = true
		}
	}
}

// addObstacle spawns an obstacle of an eligible type. It reports false when no
// type is eligible at this speed, in which case nothing spawns this frame.
func (h *Horizon) addObstacle(speed float64) bool {
	typ, ok := h.pickType(speed)
	if !ok {
		return false
	}
	h.obstacles = append(h.obstacles, newObstacle(typ, h.atlas, h.rng, speed, h.params))

	h.history = append([]ObstacleKind{typ.kind}, h.history...)
	if len(h.history) > h.cfg.MaxObstacleDuplication {
		h.history = h.history[:h.cfg.MaxObstacleDuplication]
	}
	return true
}

// pickType samples the table uniformly, retrying a bounded number of times,
// then falls back to the first eligible row in table order.
func (h *Horizon) pickType(speed float64) (*obstacleType, bool) {
	for i := 0; i < h.cfg.SpawnRetries; i++ {
		t := &h.table[h.rng.Intn(len(h.table))]
		if h.eligible(t, speed) {
			return t, true
		}
	}
	for i := range h.table {
		if h.eligible(&h.table[i], speed) {
			return &h.table[i], true
		}
	}
	return nil, false
}

func (h *Horizon) eligible(t *obstacleType, speed float64) bool {
	return speed >= t.minSpeed && !h.duplicate(t.kind)
}

// duplicate reports whether spawning kind would exceed the allowed run of
// identical obstacles.
func (h *Horizon) duplicate(kind ObstacleKind) bool {
	run := 0
	for _, k := range h.history {
		if k != kind {
			break
		}
		run++
	}
	return run >= h.cfg.MaxObstacleDuplication
}

// Reset clears obstacles and the spawn history and rewinds the ground and the night.
// Clouds carry over into the next run.
func (h *Horizon) Reset() {
	h.obstacles = nil
	h.history = nil
	h.line.reset()
	h.night.reset()
}

func (h *Horizon) Obstacles() []*Obstacle { return h.obstacles }
func (h *Horizon) Clouds() []*Cloud       { return h.clouds }
func (h *Horizon) Line() *HorizonLine     { return h.line }
func (h *Horizon) Night() *NightMode      { return h.night }

// History returns the most recently spawned obstacle kinds, newest first.
func (h *Horizon) History() []ObstacleKind {
	return append([]ObstacleKind(nil), h.history...)
}

// Head returns the oldest live obstacle, the only one that can be hit.
func (h *Horizon) Head() (*Obstacle, bool) {
	for _, o := range h.obstacles {
		if !o.remove {
			return o, true
		}
	}
	return nil, false
}

func (h *Horizon) draw(r Renderer) {
	h.night.draw(r)
	for i, c := range h.clouds {
		if !c.remove {
			c.draw(r, i)
		}
	}
	h.line.draw(r)
	for i, o := range h.obstacles {
		if !o.remove {
			o.draw(r, i)
		}
	}
}

func purgeObstacles(os []*Obstacle) []*Obstacle {
	kept := os[:0]
	for _, o := range os {
		if !o.remove {
			kept = append(kept, o)
		}
	}
	return kept
}

func purgeClouds(cs []*Cloud) []*Cloud {
	kept := cs[:0]
	for _, c := range cs {
		if !c.remove {
			kept = append(kept, c)
		}
	}
	return kept
}
