package formatter

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	trackFilled = "━"
	trackEmpty  = "─"
	thumbIdle   = "●"
	thumbActive = "◉"

	// MinTrackWidth keeps the thumb distinguishable on narrow terminals.
	MinTrackWidth = 10
)

// ThumbIndex returns the cell the thumb occupies for position p on a track
// of the given width.
func ThumbIndex(p float64, width int) int {
	width = max(width, MinTrackWidth)
	p = math.Min(math.Max(p, 0), 1)
	return int(math.Round(p * float64(width-1)))
}

// PositionAt is the inverse of ThumbIndex: the position of cell x.
func PositionAt(x, width int) float64 {
	width = max(width, MinTrackWidth)
	x = min(max(x, 0), width-1)
	return float64(x) / float64(width-1)
}

// RenderTrack draws an interactive slider track. The active thumb is drawn
// larger and bold while the user drags it.
func RenderTrack(p float64, width int, accent lipgloss.Color, active bool) string {
	width = max(width, MinTrackWidth)
	idx := ThumbIndex(p, width)

	fill := lipgloss.NewStyle().Foreground(accent)
	thumbStyle := lipgloss.NewStyle().Foreground(accent)
	thumb := thumbIdle
	if active {
		thumb = thumbActive
		thumbStyle = thumbStyle.Bold(true)
	}

	return fill.Render(strings.Repeat(trackFilled, idx)) +
		thumbStyle.Render(thumb) +
		StyleTrack.Render(strings.Repeat(trackEmpty, width-idx-1))
}

// RenderStaticTrack draws a non-interactive track used on example slides.
func RenderStaticTrack(fraction float64, width int, accent lipgloss.Color) string {
	return RenderTrack(fraction, width, accent, false)
}
