package dino

import (
	"math"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
)

// Cloud is a background decoration drifting slower than the ground.
type Cloud struct {
	cfg    config.CloudConfig
	atlas  *Atlas
	x, y   float64
	gap    int
	remove bool
}

// newCloud places a cloud at the right edge, somewhere in the sky band.
func newCloud(cfg config.CloudConfig, atlas *Atlas, rng core.Rand, worldWidth, worldHeight int) *Cloud {
	sky := worldHeight / 3
	c := &Cloud{
		cfg:   cfg,
		atlas: atlas,
		x:     float64(worldWidth),
	}
	c.gap = randRange(rng, cfg.MinGap, cfg.MaxGap)
	c.y = float64(randRange(rng, sky+cfg.MinSkyLevel, sky+cfg.MaxSkyLevel))
	return c
}

func (c *Cloud) update(speed float64) {
	if c.remove {
		return
	}
	c.x -= math.Ceil(speed)
	if c.x+float64(c.cfg.Width) <= 0 {
		c.remove = true
	}
}

func (c *Cloud) X() float64    { return c.x }
func (c *Cloud) Y() float64    { return c.y }
func (c *Cloud) Gap() int      { return c.gap }
func (c *Cloud) Removed() bool { return c.remove }

func (c *Cloud) draw(r Renderer, index int) {
	w, h := float64(c.cfg.Width), float64(c.cfg.Height)
	r.Draw(RenderRequest{
		Kind:    EntityCloud,
		Index:   index,
		Source:  c.atlas.Region(SpriteCloud, 0, 0, w, h),
		Dest:    core.NewBox(c.x, c.y, w, h),
		Opacity: 1,
	})
}
