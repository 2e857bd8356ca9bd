package dino

import (
	"math"

	"github.com/vovakirdan/trex-runner/internal/core"
)

// Observation is a read-only view of a session, enough to play it.
type Observation struct {
	Activated bool
	Playing   bool
	Crashed   bool
	Speed     float64
	TRex      TRexState
	TRexBox   core.Box // coarse box while running upright
	DuckTop   float64  // highest world y the ducking pose can be hit at
	Obstacles []ObstacleView
}

// ObstacleView describes one live obstacle in world pixels.
type ObstacleView struct {
	Kind ObstacleKind
	Box  core.Box
	// Bottom is the lowest edge of the fine boxes. Fine boxes hang from the
	// inset coarse origin, so Bottom can sit up to 2px below Box.Bottom().
	Bottom float64
}

// Observe captures the current frame for an automated player.
func (g *Game) Observe() Observation {
	obs := Observation{
		Activated: g.activated,
		Playing:   g.playing,
		Crashed:   g.crashed,
		Speed:     g.currentSpeed,
		TRex:      g.trex.State(),
		TRexBox:   core.NewBox(g.trex.X(), g.trex.Y(), float64(g.cfg.TRex.Width), float64(g.cfg.TRex.Height)).Inset(1),
	}

	duckTop := math.Inf(1)
	for _, b := range g.trex.duckingBoxes {
		duckTop = math.Min(duckTop, b.Y)
	}
	obs.DuckTop = g.trex.GroundY() + 1 + duckTop

	for _, o := range g.horizon.Obstacles() {
		if o.Removed() {
			continue
		}
		box := o.CoarseBox()
		bottom := box.Y
		for _, b := range o.Boxes() {
			bottom = math.Max(bottom, box.Y+b.Bottom())
		}
		obs.Obstacles = append(obs.Obstacles, ObstacleView{Kind: o.Kind(), Box: box, Bottom: bottom})
	}
	return obs
}

// Autopilot plays the game from observations. It jumps over anything low,
// ducks under pterodactyls flying at head height and starts or restarts runs.
type Autopilot struct {
	prev core.InputFrame

	// LeadFrames and LeadPx set how early a jump starts: when the gap to the
	// next obstacle drops below speed*LeadFrames + LeadPx.
	LeadFrames float64
	LeadPx     float64
}

// NewAutopilot returns an autopilot tuned for the default physics.
func NewAutopilot() *Autopilot {
	return &Autopilot{LeadFrames: 8, LeadPx: 5}
}

// Next returns the input for the frame described by obs.
func (a *Autopilot) Next(obs Observation) core.InputFrame {
	var f core.InputFrame
	switch {
	case !obs.Activated || obs.Crashed:
		// Confirm is edge triggered, so press it every other frame.
		if !a.prev.Has(core.ActionConfirm) {
			f.Set(core.ActionConfirm)
		}
	case obs.Playing:
		a.steer(obs, &f)
	}
	a.prev = f
	return f
}

func (a *Autopilot) steer(obs Observation, f *core.InputFrame) {
	t := obs.TRex
	if t.Jumping {
		// Hold the jump on the way up for full height.
		if t.Velocity < 0 && a.prev.Has(core.ActionJump) {
			f.Set(core.ActionJump)
		}
		return
	}

	o, ok := nextObstacle(obs)
	if !ok {
		return
	}
	gap := o.Box.X - obs.TRexBox.Right()
	if gap > obs.Speed*a.LeadFrames+a.LeadPx {
		return
	}

	switch {
	case o.Bottom <= obs.TRexBox.Y:
		// Passes overhead.
	case o.Bottom <= obs.DuckTop:
		f.Set(core.ActionDuck)
	case !a.prev.Has(core.ActionJump):
		f.Set(core.ActionJump)
	}
}

// nextObstacle returns the first obstacle that has not yet passed the character.
func nextObstacle(obs Observation) (ObstacleView, bool) {
	for _, o := range obs.Obstacles {
		if o.Box.Right() > obs.TRexBox.X {
			return o, true
		}
	}
	return ObstacleView{}, false
}
