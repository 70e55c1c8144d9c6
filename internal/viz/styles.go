package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#41b6c4"))

	DiagramStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7fcdbb"))

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#225ea8")).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(12)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c7e9b4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	HintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688")).
			Italic(true)

	barFilled = lipgloss.NewStyle().Foreground(lipgloss.Color("#1d91c0"))
	barEmpty  = lipgloss.NewStyle().Foreground(lipgloss.Color("#444466"))
)

// Spinner returns the animation frame for a tick count.
func Spinner(frame int) string {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	if frame < 0 {
		frame = -frame
	}
	return frames[frame%len(frames)]
}

// ProgressBar renders a bar of the given width filled to percent (0..1).
func ProgressBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return barFilled.Render(strings.Repeat("█", filled)) +
		barEmpty.Render(strings.Repeat("░", width-filled))
}

// Field renders an aligned "label value" line.
func Field(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}

// Panel frames body in a rounded border with a title line above it.
func Panel(title, body string) string {
	return TitleStyle.Render(title) + "\n" + PanelStyle.Render(strings.TrimRight(body, "\n"))
}
