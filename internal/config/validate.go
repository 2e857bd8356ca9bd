package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// validator collects problems so a single pass reports all of them.
type validator struct {
	errs []error
}

func (v *validator) check(ok bool, format string, args ...any) {
	if !ok {
		v.errs = append(v.errs, fmt.Errorf(format, args...))
	}
}

func (v *validator) err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(v.errs...))
}

func run(fn func(v *validator)) error {
	v := &validator{}
	fn(v)
	return v.err()
}

// Validate reports every invalid value in the configuration.
// Values are never clamped; a nil result means the config can be used as is.
func (c RunnerConfig) Validate() error {
	return run(func(v *validator) {
		c.World.validate(v)
		c.Game.validate(v)
		c.TRex.validate(v)
		c.Horizon.validate(v)
		c.Cloud.validate(v)
		c.HorizonLine.validate(v)
		c.NightMode.validate(v)
		c.DistanceMeter.validate(v)
		c.GameOver.validate(v)

		if c.World.Height > 0 {
			v.check(c.GroundY() > c.TRex.MaxJumpHeight,
				"trex does not fit: ground y %d is above max_jump_height %d", c.GroundY(), c.TRex.MaxJumpHeight)
		}
		c.validateObstacles(v)
	})
}

// Validate reports invalid world values.
func (w WorldConfig) Validate() error { return run(w.validate) }

func (w WorldConfig) validate(v *validator) {
	v.check(w.Width > 0, "world.width must be positive, got %d", w.Width)
	v.check(w.Height > 0, "world.height must be positive, got %d", w.Height)
	v.check(w.BottomPad >= 0, "world.bottom_pad must not be negative, got %d", w.BottomPad)
	v.check(w.FPS > 0, "world.fps must be positive, got %g", w.FPS)
}

// Validate reports invalid pacing values.
func (g GameConfig) Validate() error { return run(g.validate) }

func (g GameConfig) validate(v *validator) {
	v.check(g.Speed > 0, "game.speed must be positive, got %g", g.Speed)
	v.check(g.MaxSpeed >= g.Speed, "game.max_speed %g is below game.speed %g", g.MaxSpeed, g.Speed)
	v.check(g.Acceleration >= 0, "game.acceleration must not be negative, got %g", g.Acceleration)
	v.check(g.GapCoefficient > 0, "game.gap_coefficient must be positive, got %g", g.GapCoefficient)
	v.check(g.ClearTime >= 0, "game.clear_time must not be negative, got %g", g.ClearTime)
	v.check(g.GameOverClearTime >= 0, "game.gameover_clear_time must not be negative, got %g", g.GameOverClearTime)
	v.check(g.InvertFadeDuration > 0, "game.invert_fade_duration must be positive, got %g", g.InvertFadeDuration)
	v.check(g.InvertDistance > 0, "game.invert_distance must be positive, got %d", g.InvertDistance)
	v.check(g.MaxBlinkCount >= 0, "game.max_blink_count must not be negative, got %d", g.MaxBlinkCount)
}

// Validate reports invalid character values.
func (t TRexConfig) Validate() error { return run(t.validate) }

func (t TRexConfig) validate(v *validator) {
	v.check(t.Width > 0 && t.Height > 0, "trex size must be positive, got %dx%d", t.Width, t.Height)
	v.check(t.WidthDuck > 0 && t.HeightDuck > 0, "trex duck size must be positive, got %dx%d", t.WidthDuck, t.HeightDuck)
	v.check(t.StartX >= 0, "trex.start_x must not be negative, got %d", t.StartX)
	v.check(t.Gravity > 0, "trex.gravity must be positive, got %g", t.Gravity)
	v.check(t.InitialJumpVelocity < 0, "trex.initial_jump_velocity must be negative (upwards), got %g", t.InitialJumpVelocity)
	v.check(t.DropVelocity < 0, "trex.drop_velocity must be negative, got %g", t.DropVelocity)
	v.check(t.SpeedDropCoefficient >= 1, "trex.speed_drop_coefficient must be at least 1, got %g", t.SpeedDropCoefficient)
	v.check(t.MinJumpHeight >= 0, "trex.min_jump_height must not be negative, got %d", t.MinJumpHeight)
	v.check(t.MaxJumpHeight >= 0, "trex.max_jump_height must not be negative, got %d", t.MaxJumpHeight)
	v.check(t.BlinkTiming > 0, "trex.blink_timing must be positive, got %g", t.BlinkTiming)
	v.check(t.IntroDuration >= 0, "trex.intro_duration must not be negative, got %g", t.IntroDuration)

	anims := []struct {
		name string
		a    AnimationConfig
	}{
		{"waiting", t.Animations.Waiting},
		{"running", t.Animations.Running},
		{"crashed", t.Animations.Crashed},
		{"jumping", t.Animations.Jumping},
		{"ducking", t.Animations.Ducking},
	}
	for _, an := range anims {
		v.check(len(an.a.Frames) > 0, "trex.animations.%s needs at least one frame", an.name)
		v.check(an.a.MsPerFrame > 0, "trex.animations.%s.ms_per_frame must be positive, got %g", an.name, an.a.MsPerFrame)
	}
	v.check(len(t.Animations.Waiting.Frames) >= 2, "trex.animations.waiting needs a blink frame")

	v.check(len(t.RunningBoxes) > 0, "trex.running_boxes must not be empty")
	v.check(len(t.DuckingBoxes) > 0, "trex.ducking_boxes must not be empty")
	validateBoxes(v, "trex.running_boxes", t.RunningBoxes)
	validateBoxes(v, "trex.ducking_boxes", t.DuckingBoxes)
}

// Validate reports invalid spawner values.
func (h HorizonConfig) Validate() error { return run(h.validate) }

func (h HorizonConfig) validate(v *validator) {
	v.check(h.BgCloudSpeed >= 0, "horizon.bg_cloud_speed must not be negative, got %g", h.BgCloudSpeed)
	v.check(h.CloudFrequency >= 0 && h.CloudFrequency <= 1, "horizon.cloud_frequency must be within [0, 1], got %g", h.CloudFrequency)
	v.check(h.MaxClouds >= 0, "horizon.max_clouds must not be negative, got %d", h.MaxClouds)
	v.check(h.MaxObstacleDuplication >= 1, "horizon.max_obstacle_duplication must be at least 1, got %d", h.MaxObstacleDuplication)
	v.check(h.MaxObstacleLength >= 1, "horizon.max_obstacle_length must be at least 1, got %d", h.MaxObstacleLength)
	v.check(h.MaxGapCoefficient >= 1, "horizon.max_gap_coefficient must be at least 1, got %g", h.MaxGapCoefficient)
	v.check(h.SpawnRetries >= 1, "horizon.spawn_retries must be at least 1, got %d", h.SpawnRetries)
}

// Validate reports invalid values of a single obstacle type.
// worldHeight bounds the candidate y positions.
func (o ObstacleTypeConfig) Validate(worldHeight int) error {
	return run(func(v *validator) { o.validate(v, "obstacle "+o.Type, worldHeight) })
}

func (o ObstacleTypeConfig) validate(v *validator, name string, worldHeight int) {
	switch o.Type {
	case ObstacleCactusSmall, ObstacleCactusLarge, ObstaclePterodactyl:
	default:
		v.check(false, "%s.type %q is unknown", name, o.Type)
	}
	v.check(o.Width > 0 && o.Height > 0, "%s size must be positive, got %dx%d", name, o.Width, o.Height)
	v.check(len(o.YFromBottom) > 0, "%s.y_from_bottom must not be empty", name)
	for _, y := range o.YFromBottom {
		v.check(y >= o.Height && y <= worldHeight, "%s.y_from_bottom %d places it outside the world", name, y)
	}
	v.check(o.MinGap >= 0, "%s.min_gap must not be negative, got %g", name, o.MinGap)
	v.check(o.MinSpeed >= 0, "%s.min_speed must not be negative, got %g", name, o.MinSpeed)
	v.check(o.MultipleSpeed >= 0, "%s.multiple_speed must not be negative, got %g", name, o.MultipleSpeed)
	v.check(len(o.Boxes) > 0, "%s.boxes must not be empty", name)
	validateBoxes(v, name+".boxes", o.Boxes)
	v.check(o.Frames >= 1, "%s.frames must be at least 1, got %d", name, o.Frames)
	if o.Frames > 1 {
		v.check(o.FrameRate > 0, "%s.frame_rate must be positive when animated, got %g", name, o.FrameRate)
	}
	v.check(o.SpeedOffset >= 0, "%s.speed_offset must not be negative, got %g", name, o.SpeedOffset)
}

func (c RunnerConfig) validateObstacles(v *validator) {
	v.check(len(c.Obstacles) > 0, "obstacles must not be empty")

	seen := make(map[string]bool, len(c.Obstacles))
	eligible := false
	for i, o := range c.Obstacles {
		name := fmt.Sprintf("obstacles[%d]", i)
		o.validate(v, name, c.World.Height)

		v.check(!seen[o.Type], "%s.type %q is listed twice", name, o.Type)
		seen[o.Type] = true

		if c.Horizon.MaxObstacleLength > 1 && o.MultipleSpeed <= c.Game.MaxSpeed {
			// Groups stretch the middle box and shift the last one.
			v.check(len(o.Boxes) >= 3, "%s can form groups and needs at least 3 boxes, got %d", name, len(o.Boxes))
		}
		if o.MinSpeed <= c.Game.Speed {
			eligible = true
		}
	}

	// Nothing would ever spawn at the starting speed.
	v.check(len(c.Obstacles) == 0 || eligible, "no obstacle type is eligible at game.speed %g", c.Game.Speed)
}

// Validate reports invalid cloud values.
func (cl CloudConfig) Validate() error { return run(cl.validate) }

func (cl CloudConfig) validate(v *validator) {
	v.check(cl.Width > 0 && cl.Height > 0, "cloud size must be positive, got %dx%d", cl.Width, cl.Height)
	v.check(cl.MinGap >= 0 && cl.MinGap <= cl.MaxGap, "cloud gap range [%d, %d] is invalid", cl.MinGap, cl.MaxGap)
	v.check(cl.MinSkyLevel <= cl.MaxSkyLevel, "cloud sky range [%d, %d] is invalid", cl.MinSkyLevel, cl.MaxSkyLevel)
}

// Validate reports invalid horizon line values.
func (hl HorizonLineConfig) Validate() error { return run(hl.validate) }

func (hl HorizonLineConfig) validate(v *validator) {
	v.check(hl.Width > 0 && hl.Height > 0, "horizon_line size must be positive, got %dx%d", hl.Width, hl.Height)
	v.check(hl.BumpThreshold >= 0 && hl.BumpThreshold <= 1, "horizon_line.bump_threshold must be within [0, 1], got %g", hl.BumpThreshold)
}

// Validate reports invalid night mode values.
func (n NightModeConfig) Validate() error { return run(n.validate) }

func (n NightModeConfig) validate(v *validator) {
	v.check(n.FadeDuration > 0, "night_mode.fade_duration must be positive, got %g", n.FadeDuration)
	v.check(n.MoonWidth > 0 && n.MoonHeight > 0, "night_mode moon size must be positive, got %dx%d", n.MoonWidth, n.MoonHeight)
	v.check(n.MoonSpeed >= 0 && n.StarSpeed >= 0, "night_mode speeds must not be negative")
	v.check(len(n.Phases) > 0, "night_mode.phases must not be empty")
	v.check(n.NumStars >= 0, "night_mode.num_stars must not be negative, got %d", n.NumStars)
	v.check(n.StarSize > 0, "night_mode.star_size must be positive, got %d", n.StarSize)
	v.check(n.StarMaxY >= 0, "night_mode.star_max_y must not be negative, got %d", n.StarMaxY)
}

// Validate reports invalid distance meter values.
func (dm DistanceMeterConfig) Validate() error { return run(dm.validate) }

func (dm DistanceMeterConfig) validate(v *validator) {
	v.check(dm.Coefficient > 0, "distance_meter.coefficient must be positive, got %g", dm.Coefficient)
	v.check(dm.AchievementDistance > 0, "distance_meter.achievement_distance must be positive, got %d", dm.AchievementDistance)
	v.check(dm.MaxDistanceUnits > 0, "distance_meter.max_distance_units must be positive, got %d", dm.MaxDistanceUnits)
	v.check(dm.FlashDuration > 0, "distance_meter.flash_duration must be positive, got %g", dm.FlashDuration)
	v.check(dm.FlashIterations >= 0, "distance_meter.flash_iterations must not be negative, got %d", dm.FlashIterations)
	v.check(dm.DigitWidth > 0 && dm.DigitHeight > 0, "distance_meter digit size must be positive")
	v.check(dm.DestWidth >= dm.DigitWidth, "distance_meter.dest_width %d is narrower than a digit", dm.DestWidth)
}

// Validate reports invalid game-over panel values.
func (g GameOverConfig) Validate() error { return run(g.validate) }

func (g GameOverConfig) validate(v *validator) {
	v.check(g.TextWidth > 0 && g.TextHeight > 0, "game_over text size must be positive")
	v.check(g.RestartWidth > 0 && g.RestartHeight > 0, "game_over restart size must be positive")
}

func validateBoxes(v *validator, name string, boxes []BoxConfig) {
	for i, b := range boxes {
		v.check(b.W > 0 && b.H > 0, "%s[%d] size must be positive, got %gx%g", name, i, b.W, b.H)
	}
}
