// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the runner.
package config

// Known obstacle type names accepted in the obstacles section.
const (
	ObstacleCactusSmall = "CACTUS_SMALL"
	ObstacleCactusLarge = "CACTUS_LARGE"
	ObstaclePterodactyl = "PTERODACTYL"
)

// RunnerConfig contains every tunable of a runner session.
// World coordinates are pixels with the origin at the top-left corner.
type RunnerConfig struct {
	World         WorldConfig          `yaml:"world"`
	Game          GameConfig           `yaml:"game"`
	TRex          TRexConfig           `yaml:"trex"`
	Horizon       HorizonConfig        `yaml:"horizon"`
	Obstacles     []ObstacleTypeConfig `yaml:"obstacles"`
	Cloud         CloudConfig          `yaml:"cloud"`
	HorizonLine   HorizonLineConfig    `yaml:"horizon_line"`
	NightMode     NightModeConfig      `yaml:"night_mode"`
	DistanceMeter DistanceMeterConfig  `yaml:"distance_meter"`
	Sprites       SpriteConfig         `yaml:"sprites"`
	GameOver      GameOverConfig       `yaml:"game_over"`
}

// WorldConfig defines the fixed world layout of a session.
type WorldConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	BottomPad int     `yaml:"bottom_pad"`
	FPS       float64 `yaml:"fps"` // Reference frame rate for per-frame constants
}

// GameConfig defines the session pacing.
type GameConfig struct {
	Speed              float64 `yaml:"speed"`
	MaxSpeed           float64 `yaml:"max_speed"`
	Acceleration       float64 `yaml:"acceleration"`
	GapCoefficient     float64 `yaml:"gap_coefficient"`
	ClearTime          float64 `yaml:"clear_time"`           // ms before obstacles appear
	GameOverClearTime  float64 `yaml:"gameover_clear_time"`  // ms before jump may restart
	InvertFadeDuration float64 `yaml:"invert_fade_duration"` // ms of night per inversion
	InvertDistance     int     `yaml:"invert_distance"`
	MaxBlinkCount      int     `yaml:"max_blink_count"`
}

// TRexConfig defines the character dimensions, physics and animations.
type TRexConfig struct {
	Width                int            `yaml:"width"`
	Height               int            `yaml:"height"`
	WidthDuck            int            `yaml:"width_duck"`
	HeightDuck           int            `yaml:"height_duck"`
	StartX               int            `yaml:"start_x"`
	Gravity              float64        `yaml:"gravity"`
	InitialJumpVelocity  float64        `yaml:"initial_jump_velocity"`
	DropVelocity         float64        `yaml:"drop_velocity"`
	SpeedDropCoefficient float64        `yaml:"speed_drop_coefficient"`
	MaxJumpHeight        int            `yaml:"max_jump_height"` // Absolute y ceiling
	MinJumpHeight        int            `yaml:"min_jump_height"` // Relative to the ground
	IntroDuration        float64        `yaml:"intro_duration"`
	BlinkTiming          float64        `yaml:"blink_timing"`
	Animations           TRexAnimations `yaml:"animations"`
	RunningBoxes         []BoxConfig    `yaml:"running_boxes"`
	DuckingBoxes         []BoxConfig    `yaml:"ducking_boxes"`
}

// TRexAnimations holds one animation per character status.
type TRexAnimations struct {
	Waiting AnimationConfig `yaml:"waiting"`
	Running AnimationConfig `yaml:"running"`
	Crashed AnimationConfig `yaml:"crashed"`
	Jumping AnimationConfig `yaml:"jumping"`
	Ducking AnimationConfig `yaml:"ducking"`
}

// AnimationConfig lists sprite x offsets and the time each frame is shown.
type AnimationConfig struct {
	Frames     []int   `yaml:"frames,flow"`
	MsPerFrame float64 `yaml:"ms_per_frame"`
}

// BoxConfig is a rectangle relative to its owner's origin.
type BoxConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// HorizonConfig defines the spawner tunables.
type HorizonConfig struct {
	BgCloudSpeed           float64 `yaml:"bg_cloud_speed"`
	CloudFrequency         float64 `yaml:"cloud_frequency"`
	MaxClouds              int     `yaml:"max_clouds"`
	MaxObstacleDuplication int     `yaml:"max_obstacle_duplication"`
	MaxObstacleLength      int     `yaml:"max_obstacle_length"`
	MaxGapCoefficient      float64 `yaml:"max_gap_coefficient"`
	SpawnRetries           int     `yaml:"spawn_retries"`
}

// ObstacleTypeConfig is one row of the obstacle lookup table.
type ObstacleTypeConfig struct {
	Type          string      `yaml:"type"`
	Width         int         `yaml:"width"`
	Height        int         `yaml:"height"`
	YFromBottom   []int       `yaml:"y_from_bottom,flow"` // Candidate y positions, measured up from the world bottom
	MultipleSpeed float64     `yaml:"multiple_speed"`
	MinGap        float64     `yaml:"min_gap"`
	MinSpeed      float64     `yaml:"min_speed"`
	Boxes         []BoxConfig `yaml:"boxes"`
	Frames        int         `yaml:"frames"`
	FrameRate     float64     `yaml:"frame_rate"` // ms per frame
	SpeedOffset   float64     `yaml:"speed_offset"`
}

// CloudConfig defines background clouds.
type CloudConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	MinGap      int `yaml:"min_gap"`
	MaxGap      int `yaml:"max_gap"`
	MinSkyLevel int `yaml:"min_sky_level"` // Offset below world_height/3
	MaxSkyLevel int `yaml:"max_sky_level"`
}

// HorizonLineConfig defines the scrolling ground line.
type HorizonLineConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	BumpThreshold float64 `yaml:"bump_threshold"`
}

// NightModeConfig defines the moon, stars and the fade.
type NightModeConfig struct {
	FadeDuration float64 `yaml:"fade_duration"` // ms for a full 0 to 1 fade
	MoonWidth    int     `yaml:"moon_width"`
	MoonHeight   int     `yaml:"moon_height"`
	MoonSpeed    float64 `yaml:"moon_speed"`
	MoonOffsetX  int     `yaml:"moon_offset_x"` // Distance from the right edge
	MoonOffsetY  int     `yaml:"moon_offset_y"` // Offset below world_height/3
	Phases       []int   `yaml:"phases,flow"`
	NumStars     int     `yaml:"num_stars"`
	StarSize     int     `yaml:"star_size"`
	StarSpeed    float64 `yaml:"star_speed"`
	StarMaxY     int     `yaml:"star_max_y"`
}

// DistanceMeterConfig defines the score display.
type DistanceMeterConfig struct {
	Coefficient         float64 `yaml:"coefficient"`
	AchievementDistance int     `yaml:"achievement_distance"`
	MaxDistanceUnits    int     `yaml:"max_distance_units"`
	FlashDuration       float64 `yaml:"flash_duration"`
	FlashIterations     int     `yaml:"flash_iterations"`
	DigitWidth          int     `yaml:"digit_width"`
	DigitHeight         int     `yaml:"digit_height"`
	DestWidth           int     `yaml:"dest_width"`
}

// Point is a position in the sprite atlas.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SpriteConfig locates every sprite group in the atlas image.
type SpriteConfig struct {
	CactusLarge Point `yaml:"cactus_large"`
	CactusSmall Point `yaml:"cactus_small"`
	Cloud       Point `yaml:"cloud"`
	Horizon     Point `yaml:"horizon"`
	Moon        Point `yaml:"moon"`
	Pterodactyl Point `yaml:"pterodactyl"`
	Restart     Point `yaml:"restart"`
	Text        Point `yaml:"text"`
	TRex        Point `yaml:"trex"`
	Star        Point `yaml:"star"`
}

// GameOverConfig defines the game-over panel layout.
type GameOverConfig struct {
	TextX         int `yaml:"text_x"`
	TextY         int `yaml:"text_y"`
	TextWidth     int `yaml:"text_width"`
	TextHeight    int `yaml:"text_height"`
	RestartWidth  int `yaml:"restart_width"`
	RestartHeight int `yaml:"restart_height"`
}

// GroundY returns the y of the character's top edge while standing.
func (c RunnerConfig) GroundY() int {
	return c.World.Height - c.TRex.Height - c.World.BottomPad
}

// ObstacleType returns the lookup table row with the given name.
func (c RunnerConfig) ObstacleType(name string) (ObstacleTypeConfig, bool) {
	for _, o := range c.Obstacles {
		if o.Type == name {
			return o, true
		}
	}
	return ObstacleTypeConfig{}, false
}

// Clone returns a deep copy so callers can adjust presets freely.
func (c RunnerConfig) Clone() RunnerConfig {
	out := c
	out.TRex.Animations.Waiting.Frames = append([]int(nil), c.TRex.Animations.Waiting.Frames...)
	out.TRex.Animations.Running.Frames = append([]int(nil), c.TRex.Animations.Running.Frames...)
	out.TRex.Animations.Crashed.Frames = append([]int(nil), c.TRex.Animations.Crashed.Frames...)
	out.TRex.Animations.Jumping.Frames = append([]int(nil), c.TRex.Animations.Jumping.Frames...)
	out.TRex.Animations.Ducking.Frames = append([]int(nil), c.TRex.Animations.Ducking.Frames...)
	out.TRex.RunningBoxes = append([]BoxConfig(nil), c.TRex.RunningBoxes...)
	out.TRex.DuckingBoxes = append([]BoxConfig(nil), c.TRex.DuckingBoxes...)
	out.NightMode.Phases = append([]int(nil), c.NightMode.Phases...)
	out.Obstacles = make([]ObstacleTypeConfig, len(c.Obstacles))
	for i, o := range c.Obstacles {
		o.YFromBottom = append([]int(nil), o.YFromBottom...)
		o.Boxes = append([]BoxConfig(nil), o.Boxes...)
		out.Obstacles[i] = o
	}
	return out
}
