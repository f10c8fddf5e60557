package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sandbox/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// styleKey identifies the style of a run of cells.
type styleKey struct {
	color core.Color
	rgb   string
}

func keyOf(c core.Cell) styleKey {
	if c.RGB != nil {
		return styleKey{rgb: c.RGB.Hex()}
	}
	return styleKey{color: c.Color}
}

func (k styleKey) style() lipgloss.Style {
	if k.rgb != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(k.rgb))
	}
	style, ok := colorStyles[k.color]
	if !ok {
		return colorStyles[core.ColorDefault]
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Truecolor cells take precedence over palette colors. Adjacent cells with
// the same style are grouped to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := keyOf(s.GetCell(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if keyOf(cell) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(start.style().Render(run.String()))
		}
	}
	return sb.String()
}
