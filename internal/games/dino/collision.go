package dino

import "github.com/vovakirdan/trex-runner/internal/core"

// Collision is the first pair of fine boxes found overlapping, in world pixels.
type Collision struct {
	TRex     core.Box
	Obstacle core.Box
}

// CheckForCollision tests the character against one obstacle.
// The fine boxes are only compared once the coarse boxes overlap.
func CheckForCollision(o *Obstacle, t *TRex) (Collision, bool) {
	tBox := t.CoarseBox()
	oBox := o.CoarseBox()
	if !tBox.Intersects(oBox) {
		return Collision{}, false
	}

	for _, tb := range t.CollisionBoxes() {
		a := tb.Translate(tBox.X, tBox.Y)
		for _, ob := range o.Boxes() {
			b := ob.Translate(oBox.X, oBox.Y)
			if a.Intersects(b) {
				return Collision{TRex: a, Obstacle: b}, true
			}
		}
	}
	return Collision{}, false
}
