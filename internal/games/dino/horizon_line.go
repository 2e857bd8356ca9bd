package dino

import (
	"math"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
)

// HorizonLine is the ground strip, made of two segments scrolled end to end.
// A segment that wraps around picks a flat or bumpy texture at random.
type HorizonLine struct {
	cfg   config.HorizonLineConfig
	atlas *Atlas
	rng   core.Rand
	fps   float64

	y       float64
	x       [2]float64
	sourceX [2]float64 // offset into the horizon sprite: 0 is flat, width is bumpy
}

func newHorizonLine(cfg config.HorizonLineConfig, atlas *Atlas, rng core.Rand, worldHeight, bottomPad int, fps float64) *HorizonLine {
	l := &HorizonLine{
		cfg:   cfg,
		atlas: atlas,
		rng:   rng,
		fps:   fps,
		y:     float64(worldHeight - bottomPad - cfg.Height),
	}
	w := float64(cfg.Width)
	l.sourceX = [2]float64{0, w}
	l.reset()
	return l
}

func (l *HorizonLine) update(deltaMs, speed float64) {
	increment := math.Floor(speed*l.fps/1000*deltaMs + 0.5)
	if l.x[0] <= 0 {
		l.scroll(0, increment)
	} else {
		l.scroll(1, increment)
	}
}

// scroll moves the leading segment and keeps the other attached behind it.
func (l *HorizonLine) scroll(lead int, increment float64) {
	w := float64(l.cfg.Width)
	trail := 1 - lead

	l.x[lead] -= increment
	l.x[trail] = l.x[lead] + w

	if l.x[lead] <= -w {
		l.x[lead] += 2 * w
		l.x[trail] = l.x[lead] - w
		l.sourceX[lead] = l.randomType()
	}
}

func (l *HorizonLine) randomType() float64 {
	if l.rng.Float64() > l.cfg.BumpThreshold {
		return float64(l.cfg.Width)
	}
	return 0
}

func (l *HorizonLine) reset() {
	l.x = [2]float64{0, float64(l.cfg.Width)}
}

// Segments returns the x offset of both segments.
func (l *HorizonLine) Segments() [2]float64 { return l.x }

// Bumpy reports whether segment i shows the bumpy texture.
func (l *HorizonLine) Bumpy(i int) bool { return l.sourceX[i] > 0 }

// Y returns the top of the strip.
func (l *HorizonLine) Y() float64 { return l.y }

func (l *HorizonLine) draw(r Renderer) {
	w, h := float64(l.cfg.Width), float64(l.cfg.Height)
	for i := range l.x {
		frame := 0
		if l.Bumpy(i) {
			frame = 1
		}
		r.Draw(RenderRequest{
			Kind:    EntityHorizonLine,
			Index:   i,
			Source:  l.atlas.Region(SpriteHorizon, l.sourceX[i], 0, w, h),
			Dest:    core.NewBox(l.x[i], l.y, w, h),
			Frame:   frame,
			Opacity: 1,
		})
	}
}
