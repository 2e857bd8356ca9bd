package dino

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
)

// Star is a point of light drawn during the night.
type Star struct {
	X, Y    float64
	sourceY float64
}

// NightMode draws the moon and stars, fading them in while the session is inverted.
type NightMode struct {
	cfg         config.NightModeConfig
	atlas       *Atlas
	rng         core.Rand
	worldWidth  int
	worldHeight int
	msPerFrame  float64

	moonX, moonY float64
	phase        int

	opacity float64
	target  float64
	fade    *gween.Tween

	stars     []Star
	drawStars bool
}

func newNightMode(cfg config.NightModeConfig, atlas *Atlas, rng core.Rand, worldWidth, worldHeight int, fps float64) *NightMode {
	n := &NightMode{
		cfg:         cfg,
		atlas:       atlas,
		rng:         rng,
		worldWidth:  worldWidth,
		worldHeight: worldHeight,
		msPerFrame:  1000 / fps,
		moonX:       float64(worldWidth - cfg.MoonOffsetX),
		moonY:       float64(worldHeight/3 + cfg.MoonOffsetY),
		stars:       make([]Star, cfg.NumStars),
	}
	n.placeStars()
	return n
}

// update fades towards the activation state and drifts the sky while visible.
func (n *NightMode) update(deltaMs float64, activated bool) {
	target := 0.0
	if activated {
		target = 1
	}

	// A new moon phase only while nothing is on screen.
	if activated && n.opacity == 0 && n.target == 0 {
		n.phase = (n.phase + 1) % len(n.cfg.Phases)
	}
	if target != n.target {
		n.startFade(target)
	}
	if n.fade != nil {
		v, done := n.fade.Update(float32(deltaMs))
		n.opacity = float64(v)
		if done {
			n.opacity = n.target
			n.fade = nil
		}
	}

	if n.opacity > 0 {
		if deltaMs > 0 {
			frames := deltaMs / n.msPerFrame
			n.moonX = n.drift(n.moonX, n.cfg.MoonSpeed*frames)
			if n.drawStars {
				for i := range n.stars {
					n.stars[i].X = n.drift(n.stars[i].X, n.cfg.StarSpeed*frames)
				}
			}
		}
	} else {
		n.opacity = 0
		n.placeStars()
	}
	n.drawStars = true
}

// startFade tweens linearly to target; a full 0 to 1 fade lasts FadeDuration.
func (n *NightMode) startFade(target float64) {
	n.target = target
	d := math.Abs(target-n.opacity) * n.cfg.FadeDuration
	n.fade = gween.New(float32(n.opacity), float32(target), float32(d), ease.Linear)
}

// drift moves x left by step and wraps it to the right edge once it has left the screen.
func (n *NightMode) drift(x, step float64) float64 {
	if x < -float64(n.cfg.MoonWidth) {
		return float64(n.worldWidth)
	}
	return x - step
}

func (n *NightMode) placeStars() {
	if len(n.stars) == 0 {
		return
	}
	segment := int(math.Round(float64(n.worldWidth) / float64(len(n.stars))))
	for i := range n.stars {
		n.stars[i] = Star{
			X:       float64(randRange(n.rng, segment*i, segment*(i+1))),
			Y:       float64(n.worldHeight/3 + randRange(n.rng, 0, n.cfg.StarMaxY)),
			sourceY: float64(n.cfg.StarSize * i),
		}
	}
}

func (n *NightMode) reset() {
	n.phase = 0
	n.opacity = 0
	n.target = 0
	n.fade = nil
	n.update(0, false)
}

func (n *NightMode) Opacity() float64 { return n.opacity }
func (n *NightMode) Phase() int       { return n.phase }
func (n *NightMode) MoonX() float64   { return n.moonX }
func (n *NightMode) Stars() []Star    { return n.stars }

func (n *NightMode) draw(r Renderer) {
	if n.opacity <= 0 {
		return
	}
	size := float64(n.cfg.StarSize)
	if n.drawStars {
		for i, s := range n.stars {
			r.Draw(RenderRequest{
				Kind:    EntityStar,
				Index:   i,
				Source:  n.atlas.Region(SpriteStar, 0, s.sourceY, size, size),
				Dest:    core.NewBox(math.Round(s.X), s.Y, size, size),
				Opacity: n.opacity,
			})
		}
	}

	w := float64(n.cfg.MoonWidth)
	if n.phase == 3 {
		// Full moon is twice as wide in the sheet.
		w *= 2
	}
	h := float64(n.cfg.MoonHeight)
	r.Draw(RenderRequest{
		Kind:    EntityMoon,
		Source:  n.atlas.Region(SpriteMoon, float64(n.cfg.Phases[n.phase]), 0, w, h),
		Dest:    core.NewBox(math.Round(n.moonX), n.moonY, w, h),
		Frame:   n.phase,
		Opacity: n.opacity,
	})
}
