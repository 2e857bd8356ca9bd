package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/trex-runner/internal/core"
)

// dayStyles maps core.Color to lipgloss styles.
var dayStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// nightStyles is the inverted palette: light sky, dark sprites.
var nightStyles = invert(dayStyles)

func invert(styles map[core.Color]lipgloss.Style) map[core.Color]lipgloss.Style {
	sky := lipgloss.Color("254")
	out := make(map[core.Color]lipgloss.Style, len(styles))
	for c := range styles {
		fg := lipgloss.Color("235")
		switch c {
		case core.ColorGray:
			fg = lipgloss.Color("245")
		case core.ColorBrightYellow, core.ColorBrightWhite:
			// Moon and stars fade out during the day; keep them dim on the light sky.
			fg = lipgloss.Color("240")
		case core.ColorRed:
			fg = lipgloss.Color("124")
		case core.ColorGreen:
			fg = lipgloss.Color("22")
		case core.ColorOrange:
			fg = lipgloss.Color("130")
		}
		out[c] = lipgloss.NewStyle().Foreground(fg).Background(sky)
	}
	return out
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	return renderWith(s, dayStyles)
}

// RenderScreenInverted renders with the night palette.
func RenderScreenInverted(s *core.Screen) string {
	return renderWith(s, nightStyles)
}

// renderWith groups adjacent cells with the same color to minimize ANSI escape sequences.
func renderWith(s *core.Screen, styles map[core.Color]lipgloss.Style) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
