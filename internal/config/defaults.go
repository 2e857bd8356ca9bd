package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:     600,
			Height:    575,
			BottomPad: 10,
			FPS:       60,
		},
		Game: GameConfig{
			Speed:              6,
			MaxSpeed:           13,
			Acceleration:       0.001,
			GapCoefficient:     0.6,
			ClearTime:          3000,
			GameOverClearTime:  750,
			InvertFadeDuration: 12000,
			InvertDistance:     700,
			MaxBlinkCount:      3,
		},
		TRex: TRexConfig{
			Width:                44,
			Height:               47,
			WidthDuck:            59,
			HeightDuck:           25,
			StartX:               50,
			Gravity:              0.6,
			InitialJumpVelocity:  -10,
			DropVelocity:         -5,
			SpeedDropCoefficient: 3,
			MaxJumpHeight:        30,
			MinJumpHeight:        30,
			IntroDuration:        1500,
			BlinkTiming:          7000,
			Animations: TRexAnimations{
				Waiting: AnimationConfig{Frames: []int{44, 0}, MsPerFrame: 1000.0 / 3},
				Running: AnimationConfig{Frames: []int{88, 132}, MsPerFrame: 1000.0 / 12},
				Crashed: AnimationConfig{Frames: []int{220}, MsPerFrame: 1000.0 / 60},
				Jumping: AnimationConfig{Frames: []int{0}, MsPerFrame: 1000.0 / 60},
				Ducking: AnimationConfig{Frames: []int{264, 323}, MsPerFrame: 1000.0 / 8},
			},
			RunningBoxes: []BoxConfig{
				{X: 22, Y: 0, W: 17, H: 16},
				{X: 1, Y: 18, W: 30, H: 9},
				{X: 10, Y: 35, W: 14, H: 8},
				{X: 1, Y: 24, W: 29, H: 5},
				{X: 5, Y: 30, W: 21, H: 4},
				{X: 9, Y: 34, W: 15, H: 4},
			},
			DuckingBoxes: []BoxConfig{
				{X: 1, Y: 18, W: 55, H: 25},
			},
		},
		Horizon: HorizonConfig{
			BgCloudSpeed:           0.2,
			CloudFrequency:         0.5,
			MaxClouds:              6,
			MaxObstacleDuplication: 2,
			MaxObstacleLength:      3,
			MaxGapCoefficient:      1.5,
			SpawnRetries:           10,
		},
		Obstacles: []ObstacleTypeConfig{
			{
				Type:          ObstacleCactusSmall,
				Width:         17,
				Height:        35,
				YFromBottom:   []int{45},
				MultipleSpeed: 4,
				MinGap:        120,
				MinSpeed:      0,
				Boxes: []BoxConfig{
					{X: 0, Y: 7, W: 5, H: 27},
					{X: 4, Y: 0, W: 6, H: 34},
					{X: 10, Y: 4, W: 7, H: 14},
				},
				Frames: 1,
			},
			{
				Type:          ObstacleCactusLarge,
				Width:         25,
				Height:        50,
				YFromBottom:   []int{60},
				MultipleSpeed: 7,
				MinGap:        120,
				MinSpeed:      0,
				Boxes: []BoxConfig{
					{X: 0, Y: 12, W: 7, H: 38},
					{X: 8, Y: 0, W: 7, H: 49},
					{X: 13, Y: 10, W: 10, H: 38},
				},
				Frames: 1,
			},
			{
				Type:          ObstaclePterodactyl,
				Width:         46,
				Height:        40,
				YFromBottom:   []int{50, 75, 100},
				MultipleSpeed: 999,
				MinGap:        150,
				MinSpeed:      8.5,
				Boxes: []BoxConfig{
					{X: 15, Y: 15, W: 16, H: 5},
					{X: 18, Y: 21, W: 24, H: 6},
					{X: 2, Y: 14, W: 4, H: 3},
					{X: 6, Y: 10, W: 4, H: 7},
					{X: 10, Y: 8, W: 6, H: 9},
				},
				Frames:      2,
				FrameRate:   1000.0 / 6,
				SpeedOffset: 0.8,
			},
		},
		Cloud: CloudConfig{
			Width:       46,
			Height:      14,
			MinGap:      100,
			MaxGap:      400,
			MinSkyLevel: 30,
			MaxSkyLevel: 71,
		},
		HorizonLine: HorizonLineConfig{
			Width:         600,
			Height:        12,
			BumpThreshold: 0.5,
		},
		NightMode: NightModeConfig{
			FadeDuration: 476,
			MoonWidth:    20,
			MoonHeight:   40,
			MoonSpeed:    0.25,
			MoonOffsetX:  50,
			MoonOffsetY:  30,
			Phases:       []int{140, 120, 100, 60, 40, 20, 0},
			NumStars:     2,
			StarSize:     9,
			StarSpeed:    0.3,
			StarMaxY:     70,
		},
		DistanceMeter: DistanceMeterConfig{
			Coefficient:         0.025,
			AchievementDistance: 100,
			MaxDistanceUnits:    5,
			FlashDuration:       250,
			FlashIterations:     3,
			DigitWidth:          10,
			DigitHeight:         13,
			DestWidth:           11,
		},
		Sprites: SpriteConfig{
			CactusLarge: Point{X: 332, Y: 2},
			CactusSmall: Point{X: 228, Y: 2},
			Cloud:       Point{X: 86, Y: 2},
			Horizon:     Point{X: 2, Y: 54},
			Moon:        Point{X: 484, Y: 2},
			Pterodactyl: Point{X: 134, Y: 2},
			Restart:     Point{X: 2, Y: 2},
			Text:        Point{X: 655, Y: 2},
			TRex:        Point{X: 848, Y: 2},
			Star:        Point{X: 645, Y: 2},
		},
		GameOver: GameOverConfig{
			TextX:         0,
			TextY:         13,
			TextWidth:     191,
			TextHeight:    11,
			RestartWidth:  36,
			RestartHeight: 32,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
