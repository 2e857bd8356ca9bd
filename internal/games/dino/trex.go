package dino

import (
	"fmt"
	"math"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
)

// TRexStatus is the character's animation state.
type TRexStatus int

const (
	StatusWaiting TRexStatus = iota
	StatusRunning
	StatusJumping
	StatusCrashed
	StatusDucking
)

// String returns a human-readable name for the status.
func (s TRexStatus) String() string {
	switch s {
	case StatusWaiting:
		return "WAITING"
	case StatusRunning:
		return "RUNNING"
	case StatusJumping:
		return "JUMPING"
	case StatusCrashed:
		return "CRASHED"
	case StatusDucking:
		return "DUCKING"
	default:
		return "UNKNOWN"
	}
}

// TRexState is a snapshot of the character's physics and posture.
// Blink bookkeeping is not part of it.
type TRexState struct {
	X, Y             float64
	Velocity         float64
	Jumping          bool
	Ducking          bool
	SpeedDrop        bool
	ReachedMinHeight bool
	JumpCount        int
	Status           TRexStatus
	Frame            int
}

// TRex is the player-controlled runner.
type TRex struct {
	cfg   config.TRexConfig
	atlas *Atlas
	rng   core.Rand

	x, y          float64
	groundY       float64
	minJumpHeight float64 // y the character must rise above before a jump may be cut short

	jumpVelocity     float64
	jumping          bool
	ducking          bool
	speedDrop        bool
	reachedMinHeight bool
	jumpCount        int

	status       TRexStatus
	frames       []int
	msPerFrame   float64
	currentFrame int
	timer        float64

	blinkDelay float64
	blinkTimer float64
	blinkDue   bool
	blinkCount int

	runningBoxes []core.Box
	duckingBoxes []core.Box
}

// NewTRex creates a waiting character standing on the ground.
func NewTRex(cfg config.TRexConfig, atlas *Atlas, rng core.Rand, worldHeight, bottomPad int) (*TRex, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dino: trex: %w", err)
	}
	groundY := worldHeight - cfg.Height - bottomPad
	if groundY <= cfg.MaxJumpHeight {
		return nil, fmt.Errorf("dino: trex: %w: ground y %d is above max_jump_height %d",
			config.ErrInvalidConfig, groundY, cfg.MaxJumpHeight)
	}

	t := &TRex{
		cfg:           cfg,
		atlas:         atlas,
		rng:           rng,
		x:             float64(cfg.StartX),
		y:             float64(groundY),
		groundY:       float64(groundY),
		minJumpHeight: float64(groundY - cfg.MinJumpHeight),
		runningBoxes:  boxesFromConfig(cfg.RunningBoxes),
		duckingBoxes:  boxesFromConfig(cfg.DuckingBoxes),
	}
	t.setStatus(StatusWaiting)
	return t, nil
}

func boxesFromConfig(bs []config.BoxConfig) []core.Box {
	out := make([]core.Box, len(bs))
	for i, b := range bs {
		out[i] = core.NewBox(b.X, b.Y, b.W, b.H)
	}
	return out
}

func (t *TRex) animation(s TRexStatus) config.AnimationConfig {
	switch s {
	case StatusWaiting:
		return t.cfg.Animations.Waiting
	case StatusJumping:
		return t.cfg.Animations.Jumping
	case StatusCrashed:
		return t.cfg.Animations.Crashed
	case StatusDucking:
		return t.cfg.Animations.Ducking
	default:
		return t.cfg.Animations.Running
	}
}

// setStatus switches the animation and restarts it from the first frame.
func (t *TRex) setStatus(s TRexStatus) {
	anim := t.animation(s)
	t.status = s
	t.currentFrame = 0
	t.frames = anim.Frames
	t.msPerFrame = anim.MsPerFrame
	if s == StatusWaiting {
		t.blinkTimer = 0
		t.blinkDue = false
		t.setBlinkDelay()
	}
}

func (t *TRex) setBlinkDelay() {
	t.blinkDelay = math.Ceil(t.rng.Float64() * t.cfg.BlinkTiming)
}

// Update advances the animation by deltaMs.
func (t *TRex) Update(deltaMs float64) {
	t.timer += deltaMs

	if t.status == StatusWaiting {
		t.blink(deltaMs)
	}

	if t.timer >= t.msPerFrame {
		t.currentFrame = (t.currentFrame + 1) % len(t.frames)
		t.timer = 0
	}
}

// blink shows the eyes-closed frame once the randomized delay has passed.
func (t *TRex) blink(deltaMs float64) {
	t.blinkTimer += deltaMs
	t.blinkDue = t.blinkTimer >= t.blinkDelay
	if t.blinkDue && t.currentFrame == 1 {
		t.setBlinkDelay()
		t.blinkTimer = 0
		t.blinkCount++
	}
}

// Start leaves the waiting pose.
func (t *TRex) Start() {
	if t.status == StatusWaiting {
		t.setStatus(StatusRunning)
	}
}

// StartJump launches a jump unless one is already in progress.
// Faster runs launch with a stronger initial velocity.
func (t *TRex) StartJump(speed float64) {
	if t.jumping || t.status == StatusCrashed {
		return
	}
	t.setStatus(StatusJumping)
	t.ducking = false
	t.jumpVelocity = t.cfg.InitialJumpVelocity - speed/10
	t.jumping = true
	t.reachedMinHeight = false
	t.speedDrop = false
}

// EndJump cuts the ascent short once the minimum height was reached.
func (t *TRex) EndJump() {
	if t.reachedMinHeight && t.jumpVelocity < t.cfg.DropVelocity {
		t.jumpVelocity = t.cfg.DropVelocity
	}
}

// UpdateJump integrates the jump over deltaMs. It does not advance the animation.
func (t *TRex) UpdateJump(deltaMs float64) {
	if !t.jumping {
		return
	}
	framesElapsed := deltaMs / t.msPerFrame

	step := t.jumpVelocity * framesElapsed
	if t.speedDrop {
		step *= t.cfg.SpeedDropCoefficient
	}
	t.y += math.Floor(step + 0.5)
	t.jumpVelocity += t.cfg.Gravity * framesElapsed

	if t.y < t.minJumpHeight || t.speedDrop {
		t.reachedMinHeight = true
	}
	if t.y < float64(t.cfg.MaxJumpHeight) || t.speedDrop {
		t.EndJump()
	}
	if t.y > t.groundY {
		t.land()
		t.jumpCount++
	}
}

// land snaps the character back onto the ground in the running pose.
func (t *TRex) land() {
	t.y = t.groundY
	t.jumpVelocity = 0
	t.jumping = false
	t.ducking = false
	t.speedDrop = false
	t.reachedMinHeight = false
	t.setStatus(StatusRunning)
}

// SetSpeedDrop turns the rest of the current jump into a fast fall.
// It stays in effect until the character lands.
func (t *TRex) SetSpeedDrop() {
	if !t.jumping {
		return
	}
	t.speedDrop = true
	t.jumpVelocity = 1
}

// SetDuck enters or leaves the ducking pose. Only legal while grounded.
func (t *TRex) SetDuck(ducking bool) {
	if t.jumping || t.status == StatusCrashed || t.status == StatusWaiting {
		return
	}
	if ducking && t.status != StatusDucking {
		t.setStatus(StatusDucking)
		t.ducking = true
	} else if !ducking && t.status == StatusDucking {
		t.setStatus(StatusRunning)
		t.ducking = false
	}
}

// Crash freezes the character on the crash frame.
func (t *TRex) Crash() {
	t.setStatus(StatusCrashed)
}

// Reset puts the character back on the ground, running, as at the start of a run.
func (t *TRex) Reset() {
	t.land()
	t.jumpCount = 0
	t.timer = 0
}

// CollisionBoxes returns the fine boxes of the current posture, relative to the coarse box.
func (t *TRex) CollisionBoxes() []core.Box {
	if t.ducking {
		return t.duckingBoxes
	}
	return t.runningBoxes
}

// CoarseBox returns the character's bounds shrunk by one pixel on each side.
func (t *TRex) CoarseBox() core.Box {
	return core.NewBox(t.x, t.y, t.width(), float64(t.cfg.Height)).Inset(1)
}

func (t *TRex) width() float64 {
	if t.ducking && t.status != StatusCrashed {
		return float64(t.cfg.WidthDuck)
	}
	return float64(t.cfg.Width)
}

// State returns a snapshot of the character.
func (t *TRex) State() TRexState {
	return TRexState{
		X:                t.x,
		Y:                t.y,
		Velocity:         t.jumpVelocity,
		Jumping:          t.jumping,
		Ducking:          t.ducking,
		SpeedDrop:        t.speedDrop,
		ReachedMinHeight: t.reachedMinHeight,
		JumpCount:        t.jumpCount,
		Status:           t.status,
		Frame:            t.currentFrame,
	}
}

// Frame returns the index of the animation frame on screen.
// While waiting the eyes stay open until a blink is due.
func (t *TRex) Frame() int {
	if t.status == StatusWaiting && !t.blinkDue {
		return 0
	}
	return t.currentFrame
}

func (t *TRex) X() float64             { return t.x }
func (t *TRex) Y() float64             { return t.y }
func (t *TRex) GroundY() float64       { return t.groundY }
func (t *TRex) Velocity() float64      { return t.jumpVelocity }
func (t *TRex) Jumping() bool          { return t.jumping }
func (t *TRex) Ducking() bool          { return t.ducking }
func (t *TRex) SpeedDrop() bool        { return t.speedDrop }
func (t *TRex) ReachedMinHeight() bool { return t.reachedMinHeight }
func (t *TRex) JumpCount() int         { return t.jumpCount }
func (t *TRex) BlinkCount() int        { return t.blinkCount }
func (t *TRex) Status() TRexStatus     { return t.status }

func (t *TRex) draw(r Renderer) {
	w := t.width()
	h := float64(t.cfg.Height)
	r.Draw(RenderRequest{
		Kind:    EntityTRex,
		Source:  t.atlas.Region(SpriteTRex, float64(t.frames[t.Frame()]), 0, w, h),
		Dest:    core.NewBox(t.x, t.y, w, h),
		Frame:   t.Frame(),
		Opacity: 1,
		Status:  t.status,
	})
}
