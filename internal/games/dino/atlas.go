package dino

import (
	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
)

// Sprite identifies a sprite group in the atlas image.
type Sprite int

const (
	SpriteTRex Sprite = iota
	SpriteCactusSmall
	SpriteCactusLarge
	SpritePterodactyl
	SpriteCloud
	SpriteHorizon
	SpriteMoon
	SpriteStar
	SpriteText
	SpriteRestart
)

// Atlas is a read-only handle on the sprite sheet layout.
// It is shared by every entity of a session and never mutated.
type Atlas struct {
	origins map[Sprite]core.Box
}

// NewAtlas builds an atlas from the sprite section of the configuration.
func NewAtlas(cfg config.SpriteConfig) *Atlas {
	at := func(p config.Point) core.Box {
		return core.NewBox(float64(p.X), float64(p.Y), 0, 0)
	}
	return &Atlas{
		origins: map[Sprite]core.Box{
			SpriteTRex:        at(cfg.TRex),
			SpriteCactusSmall: at(cfg.CactusSmall),
			SpriteCactusLarge: at(cfg.CactusLarge),
			SpritePterodactyl: at(cfg.Pterodactyl),
			SpriteCloud:       at(cfg.Cloud),
			SpriteHorizon:     at(cfg.Horizon),
			SpriteMoon:        at(cfg.Moon),
			SpriteStar:        at(cfg.Star),
			SpriteText:        at(cfg.Text),
			SpriteRestart:     at(cfg.Restart),
		},
	}
}

// Region returns the source rectangle of a sprite, offset from its origin.
func (a *Atlas) Region(s Sprite, dx, dy, w, h float64) core.Box {
	o := a.origins[s]
	return core.NewBox(o.X+dx, o.Y+dy, w, h)
}
