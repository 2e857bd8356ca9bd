package dino

import (
	"fmt"
	"math"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
)

// Glyphs past the digits in the text sprite, used by the high score.
const (
	GlyphH     = 10
	GlyphI     = 11
	GlyphBlank = 12
)

// DistanceMeter converts distance ran into the score shown in the corner.
// Every achievement distance it flashes the score and asks for the milestone sound.
type DistanceMeter struct {
	cfg   config.DistanceMeterConfig
	atlas *Atlas

	worldWidth int
	x, y       float64
	units      int
	maxScore   int

	digits    []int
	highScore []int

	achievement     bool
	flashTimer      float64
	flashIterations int
	visible         bool
}

// NewDistanceMeter creates a meter showing zeros.
func NewDistanceMeter(cfg config.DistanceMeterConfig, atlas *Atlas, worldWidth int) (*DistanceMeter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dino: distance meter: %w", err)
	}
	m := &DistanceMeter{
		cfg:        cfg,
		atlas:      atlas,
		worldWidth: worldWidth,
		y:          5,
	}
	m.setUnits(cfg.MaxDistanceUnits)
	m.Reset()
	return m, nil
}

func (m *DistanceMeter) setUnits(units int) {
	m.units = units
	m.maxScore = int(math.Pow10(units)) - 1
	m.x = float64(m.worldWidth - m.cfg.DestWidth*(units+1))
}

// ActualDistance converts world pixels into meter units.
func (m *DistanceMeter) ActualDistance(px float64) int {
	if px <= 0 {
		return 0
	}
	return int(math.Floor(px*m.cfg.Coefficient + 0.5))
}

// Update refreshes the digits for distance, or runs the flash while an
// achievement is showing. It returns true on the frame an achievement is reached.
func (m *DistanceMeter) Update(deltaMs, distance float64) bool {
	m.visible = true
	if m.achievement {
		m.flash(deltaMs)
		return false
	}

	actual := m.ActualDistance(distance)
	if actual > m.maxScore && m.units == m.cfg.MaxDistanceUnits {
		m.setUnits(m.units + 1)
	}

	reached := false
	if actual > 0 && actual%m.cfg.AchievementDistance == 0 {
		m.achievement = true
		m.flashTimer = 0
		reached = true
	}
	m.digits = padDigits(actual, m.units)
	return reached
}

// flash hides the digits for the first half of every cycle.
func (m *DistanceMeter) flash(deltaMs float64) {
	if m.flashIterations >= m.cfg.FlashIterations {
		m.achievement = false
		m.flashIterations = 0
		m.flashTimer = 0
		return
	}
	m.flashTimer += deltaMs
	if m.flashTimer < m.cfg.FlashDuration {
		m.visible = false
	} else if m.flashTimer > m.cfg.FlashDuration*2 {
		m.flashTimer = 0
		m.flashIterations++
	}
}

// SetHighScore shows "HI" followed by the score for px.
func (m *DistanceMeter) SetHighScore(px float64) {
	m.highScore = append([]int{GlyphH, GlyphI, GlyphBlank}, padDigits(m.ActualDistance(px), m.units)...)
}

// Reset shows zeros and cancels any flash. The high score is kept.
func (m *DistanceMeter) Reset() {
	m.achievement = false
	m.flashIterations = 0
	m.flashTimer = 0
	m.Update(0, 0)
}

// Digits returns the current score, one digit per element.
func (m *DistanceMeter) Digits() []int { return m.digits }

// HighScoreDigits returns the high score glyphs, or nil before the first crash.
func (m *DistanceMeter) HighScoreDigits() []int { return m.highScore }

// Visible reports whether the score is painted this frame.
func (m *DistanceMeter) Visible() bool { return m.visible }

// Achievement reports whether a milestone flash is in progress.
func (m *DistanceMeter) Achievement() bool { return m.achievement }

func (m *DistanceMeter) clearAchievement() {
	m.achievement = false
	m.flashIterations = 0
	m.flashTimer = 0
	m.visible = true
}

func (m *DistanceMeter) draw(r Renderer) {
	if m.visible {
		m.drawDigits(r, EntityDigit, m.digits, m.x)
	}
	if len(m.highScore) > 0 {
		m.drawDigits(r, EntityHighScoreDigit, m.highScore, m.x-float64(m.units*2*m.cfg.DigitWidth))
	}
}

func (m *DistanceMeter) drawDigits(r Renderer, kind EntityKind, digits []int, x float64) {
	w, h := float64(m.cfg.DigitWidth), float64(m.cfg.DigitHeight)
	dw := float64(m.cfg.DestWidth)
	for i, d := range digits {
		r.Draw(RenderRequest{
			Kind:    kind,
			Index:   i,
			Source:  m.atlas.Region(SpriteText, w*float64(d), 0, w, h),
			Dest:    core.NewBox(x+dw*float64(i), m.y, w, h),
			Opacity: 1,
			Digit:   d,
		})
	}
}

// padDigits returns the last units digits of n, zero padded.
func padDigits(n, units int) []int {
	s := fmt.Sprintf("%0*d", units, n)
	s = s[len(s)-units:]
	out := make([]int, units)
	for i := range s {
		out[i] = int(s[i] - '0')
	}
	return out
}
