// Package dino implements the T-Rex runner: a character jumps and ducks past
// procedurally spawned cacti and pterodactyls while the ground, clouds and a
// day/night cycle scroll by.
//
// The simulation works in world pixels and is driven one frame at a time by
// Step. Drawing is a side effect of Frame, which emits one RenderRequest per
// visible entity; Render maps those onto a terminal screen.
package dino

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
)

// SoundPlayer plays sound effects. Calls must not block.
type SoundPlayer interface {
	Play(s core.Sound)
}

type noSound struct{}

func (noSound) Play(core.Sound) {}

// Option customizes a Game.
type Option func(*Game)

// WithClock sets the clock deltas are derived from. Defaults to a 60 Hz stepped clock.
func WithClock(c core.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithSeed seeds the random source. Ignored when WithRand is given.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.seed = seed }
}

// WithRand sets the random source shared by every entity.
func WithRand(r core.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithLogger sets the logger for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithSoundPlayer sets where sound effects go. Sounds are also returned by Step.
func WithSoundPlayer(p SoundPlayer) Option {
	return func(g *Game) { g.sounds = p }
}

// Game is one runner session. It is not safe for concurrent use.
type Game struct {
	cfg    config.RunnerConfig
	clock  core.Clock
	rng    core.Rand
	seed   int64
	logger *log.Logger
	sounds SoundPlayer

	atlas   *Atlas
	trex    *TRex
	horizon *Horizon
	meter   *DistanceMeter

	msPerFrame float64
	lastTime   float64
	ticked     bool
	prev       core.InputFrame

	activated bool
	playing   bool
	crashed   bool
	paused    bool
	inverted  bool

	distanceRan  float64
	currentSpeed float64
	highestScore float64
	runningTime  float64
	invertTimer  float64
	playCount    int
	gameOverTime float64

	collided      bool
	lastCollision Collision
	pending       []core.Sound
}

// NewGame creates a session waiting for the player to start.
func NewGame(cfg config.RunnerConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dino: %w", err)
	}
	g := &Game{
		cfg:        cfg.Clone(),
		msPerFrame: 1000 / cfg.World.FPS,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.clock == nil {
		g.clock = core.NewSteppedClock(g.msPerFrame)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.sounds == nil {
		g.sounds = noSound{}
	}
	if g.rng == nil {
		g.rng = core.NewRand(g.seed)
	}
	if err := g.build(); err != nil {
		return nil, err
	}
	return g, nil
}

// build creates the entities of a fresh session from the current random source.
func (g *Game) build() error {
	g.atlas = NewAtlas(g.cfg.Sprites)

	horizon, err := NewHorizon(g.cfg, g.atlas, g.rng, g.cfg.Game.GapCoefficient)
	if err != nil {
		return err
	}
	meter, err := NewDistanceMeter(g.cfg.DistanceMeter, g.atlas, g.cfg.World.Width)
	if err != nil {
		return err
	}
	trex, err := NewTRex(g.cfg.TRex, g.atlas, g.rng, g.cfg.World.Height, g.cfg.World.BottomPad)
	if err != nil {
		return err
	}

	g.horizon = horizon
	g.meter = meter
	g.trex = trex
	g.currentSpeed = g.cfg.Game.Speed
	if g.highestScore > 0 {
		g.meter.SetHighScore(g.highestScore)
	}
	return nil
}

// Reset starts over from the waiting screen with a new seed.
// The high score survives.
func (g *Game) Reset(seed int64) error {
	g.seed = seed
	g.rng = core.NewRand(seed)
	g.ticked = false
	g.prev = core.InputFrame{}
	g.activated, g.playing, g.crashed, g.paused, g.inverted = false, false, false, false, false
	g.distanceRan, g.runningTime, g.invertTimer = 0, 0, 0
	g.playCount = 0
	g.collided = false
	g.pending = nil
	return g.build()
}

// Step reads the clock, applies the input and advances the session by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	now := g.clock.Now()
	delta := 0.0
	if g.ticked {
		delta = math.Max(now-g.lastTime, 0)
	}
	g.lastTime = now
	g.ticked = true
	g.collided = false

	if g.handleInput(in, now) {
		// A restart starts the clock over.
		delta = 0
	}
	g.prev = in.Clone()

	if !g.paused {
		g.update(delta, now)
	}

	return core.StepResult{
		State:     g.State(),
		Sounds:    g.takeSounds(),
		Collision: g.collided,
		Distance:  g.distanceRan,
		Quit:      in.Has(core.ActionQuit),
	}
}

func (g *Game) pressed(in core.InputFrame, a core.Action) bool {
	return in.Has(a) && !g.prev.Has(a)
}

func (g *Game) released(in core.InputFrame, a core.Action) bool {
	return !in.Has(a) && g.prev.Has(a)
}

// handleInput turns this frame's input into character commands.
// It reports whether the session restarted.
func (g *Game) handleInput(in core.InputFrame, now float64) bool {
	start := g.pressed(in, core.ActionConfirm) || g.pressed(in, core.ActionRestart)
	jumpDown := g.pressed(in, core.ActionJump)

	if g.pressed(in, core.ActionPause) && g.playing {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused)
	}
	if g.paused {
		return false
	}

	switch {
	case !g.activated:
		if start || jumpDown {
			g.startGame()
		}
	case g.crashed:
		if start || (jumpDown && now-g.gameOverTime >= g.cfg.Game.GameOverClearTime) {
			g.restart(now)
			return true
		}
	case g.playing:
		if jumpDown && !g.trex.Jumping() && !g.trex.Ducking() {
			g.play(core.SoundJump)
			g.trex.StartJump(g.currentSpeed)
		}
		if in.Has(core.ActionDuck) {
			if g.trex.Jumping() {
				if g.pressed(in, core.ActionDuck) {
					g.trex.SetSpeedDrop()
				}
			} else if !g.trex.Ducking() {
				g.trex.SetDuck(true)
			}
		}
		if g.released(in, core.ActionJump) {
			g.trex.EndJump()
		}
		if g.released(in, core.ActionDuck) {
			g.trex.SetDuck(false)
		}
	}
	return false
}

func (g *Game) startGame() {
	g.activated = true
	g.playing = true
	g.runningTime = 0
	g.playCount++
	g.trex.Start()
	g.trex.StartJump(g.currentSpeed)
	g.play(core.SoundJump)
	g.logger.Debug("run started", "play", g.playCount)
}

// update runs one frame: background, obstacles, collision, character, meter, night.
func (g *Game) update(delta, now float64) {
	if g.playing {
		if g.trex.Jumping() {
			g.trex.UpdateJump(delta)
		}
		g.runningTime += delta
		hasObstacles := g.runningTime > g.cfg.Game.ClearTime

		g.horizon.Update(delta, g.currentSpeed, hasObstacles, g.inverted)

		var (
			hit bool
			c   Collision
		)
		if hasObstacles {
			if o, ok := g.horizon.Head(); ok {
				c, hit = CheckForCollision(o, g.trex)
			}
		}
		if hit {
			g.gameOver(now, c)
		} else {
			g.distanceRan += g.currentSpeed * delta / g.msPerFrame
			if g.currentSpeed < g.cfg.Game.MaxSpeed {
				g.currentSpeed += g.cfg.Game.Acceleration
			}
		}

		if g.meter.Update(delta, math.Ceil(g.distanceRan)) {
			g.play(core.SoundMilestone)
		}
		g.updateInvert(delta)
	}

	if g.playing || g.trex.BlinkCount() < g.cfg.Game.MaxBlinkCount {
		g.trex.Update(delta)
	}

	if g.crashed {
		g.horizon.Update(0, g.currentSpeed, true, g.inverted)
		g.meter.Update(delta, math.Ceil(g.distanceRan))
	}
}

// updateInvert turns the night on at every invert distance and off again after
// the invert duration.
func (g *Game) updateInvert(delta float64) {
	switch {
	case g.invertTimer > g.cfg.Game.InvertFadeDuration:
		g.invertTimer = 0
		g.inverted = false
		g.logger.Debug("night over")
	case g.invertTimer > 0:
		g.invertTimer += delta
	default:
		actual := g.meter.ActualDistance(g.distanceRan)
		if actual > 0 && actual%g.cfg.Game.InvertDistance == 0 {
			g.invertTimer += delta
			if !g.inverted {
				g.logger.Debug("night started", "distance", actual)
			}
			g.inverted = true
		}
	}
}

func (g *Game) gameOver(now float64, c Collision) {
	g.play(core.SoundCrash)
	g.playing = false
	g.crashed = true
	g.collided = true
	g.lastCollision = c
	g.gameOverTime = now
	g.meter.clearAchievement()
	g.trex.Crash()

	if g.distanceRan > g.highestScore {
		g.highestScore = math.Ceil(g.distanceRan)
		g.meter.SetHighScore(g.highestScore)
	}
	g.logger.Debug("crashed",
		"score", g.meter.ActualDistance(g.distanceRan),
		"speed", g.currentSpeed,
		"play", g.playCount,
	)
}

func (g *Game) restart(now float64) {
	g.playCount++
	g.runningTime = 0
	g.playing = true
	g.crashed = false
	g.distanceRan = 0
	g.currentSpeed = g.cfg.Game.Speed
	g.lastTime = now
	g.meter.Reset()
	g.horizon.Reset()
	g.trex.Reset()
	g.play(core.SoundJump)
	g.inverted = false
	g.invertTimer = 0
	g.logger.Debug("run restarted", "play", g.playCount)
}

func (g *Game) play(s core.Sound) {
	g.sounds.Play(s)
	g.pending = append(g.pending, s)
}

func (g *Game) takeSounds() []core.Sound {
	s := g.pending
	g.pending = nil
	return s
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.meter.ActualDistance(g.distanceRan),
		HighScore: g.meter.ActualDistance(g.highestScore),
		Playing:   g.playing,
		GameOver:  g.crashed,
		Paused:    g.paused,
		Inverted:  g.inverted,
	}
}

// HighScore returns the best distance of this process, in world pixels.
func (g *Game) HighScore() float64 { return g.highestScore }

// LastCollision returns the box pair of the most recent crash.
func (g *Game) LastCollision() Collision { return g.lastCollision }

func (g *Game) Config() config.RunnerConfig { return g.cfg }
func (g *Game) TRex() *TRex                 { return g.trex }
func (g *Game) Horizon() *Horizon           { return g.horizon }
func (g *Game) Meter() *DistanceMeter       { return g.meter }
func (g *Game) Speed() float64              { return g.currentSpeed }
func (g *Game) Distance() float64           { return g.distanceRan }
func (g *Game) RunningTime() float64        { return g.runningTime }
func (g *Game) PlayCount() int              { return g.playCount }
func (g *Game) Activated() bool             { return g.activated }
func (g *Game) Crashed() bool               { return g.crashed }
func (g *Game) Seed() int64                 { return g.seed }

// Frame emits the render requests of the current frame, back to front.
func (g *Game) Frame(r Renderer) {
	g.horizon.draw(r)
	g.meter.draw(r)
	g.trex.draw(r)
	if g.crashed {
		g.drawGameOverPanel(r)
	}
}

func (g *Game) drawGameOverPanel(r Renderer) {
	p := g.cfg.GameOver
	w, h := float64(g.cfg.World.Width), float64(g.cfg.World.Height)
	tw, th := float64(p.TextWidth), float64(p.TextHeight)
	r.Draw(RenderRequest{
		Kind:    EntityGameOverText,
		Source:  g.atlas.Region(SpriteText, float64(p.TextX), float64(p.TextY), tw, th),
		Dest:    core.NewBox(math.Round(w/2-tw/2), math.Round((h-25)/3), tw, th),
		Opacity: 1,
	})
	rw, rh := float64(p.RestartWidth), float64(p.RestartHeight)
	r.Draw(RenderRequest{
		Kind:    EntityRestartIcon,
		Source:  g.atlas.Region(SpriteRestart, 0, 0, rw, rh),
		Dest:    core.NewBox(math.Round(w/2-rw/2), math.Round(h/2), rw, rh),
		Opacity: 1,
	})
}

// Render draws the current frame onto a terminal screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.Frame(newCellRenderer(dst, g.cfg.World.Width, g.cfg.World.Height))

	// HUD
	hud := g.scoreText()
	if hi := glyphText(g.meter.HighScoreDigits()); hi != "" {
		hud = hi + "  " + hud
	}
	dst.DrawText(dst.Width()-len(hud)-1, 0, hud)

	switch {
	case !g.activated:
		drawCenteredMessage(dst, "T-REX RUNNER", "Press SPACE or ENTER to start")
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.crashed:
		drawCenteredMessage(dst, "G A M E  O V E R",
			fmt.Sprintf("Score: %d  |  Press ENTER to restart", g.State().Score))
	}
}

// scoreText returns the meter digits, blanked while an achievement flashes.
func (g *Game) scoreText() string {
	s := glyphText(g.meter.Digits())
	if !g.meter.Visible() {
		return fmt.Sprintf("%*s", len(s), "")
	}
	return s
}

func glyphText(glyphs []int) string {
	out := make([]rune, len(glyphs))
	for i, d := range glyphs {
		switch d {
		case GlyphH:
			out[i] = 'H'
		case GlyphI:
			out[i] = 'I'
		case GlyphBlank:
			out[i] = ' '
		default:
			out[i] = rune('0' + d)
		}
	}
	return string(out)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 3

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
