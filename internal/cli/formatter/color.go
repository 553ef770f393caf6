package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rickshaw/internal/pricing"
	"github.com/alexanderramin/rickshaw/internal/scenario"
	"github.com/charmbracelet/lipgloss"
)

// Palette follows the estimator's track colors.
var (
	ColorPurple  = lipgloss.Color("#8B5CF6")
	ColorBlue    = lipgloss.Color("#3B82F6")
	ColorEmerald = lipgloss.Color("#10B981")
	ColorYellow  = lipgloss.Color("#FACC15")
	ColorRed     = lipgloss.Color("#EF4444")
	ColorTrack   = lipgloss.Color("#374151")
	ColorDim     = lipgloss.Color("#9CA3AF")
	ColorFg      = lipgloss.Color("#F3F4F6")
	ColorHeader  = lipgloss.Color("#D1D5DB")
)

var (
	StylePurple  = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleBlue    = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleEmerald = lipgloss.NewStyle().Foreground(ColorEmerald)
	StyleYellow  = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed     = lipgloss.NewStyle().Foreground(ColorRed)
	StyleTrack   = lipgloss.NewStyle().Foreground(ColorTrack)
	StyleDim     = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg      = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader  = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold    = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// BandColor returns the accent for a region of the repayment curve.
func BandColor(b pricing.Band) lipgloss.Color {
	switch b {
	case pricing.BandFloor:
		return ColorPurple
	case pricing.BandLinear:
		return ColorBlue
	case pricing.BandCeiling:
		return ColorEmerald
	default:
		return ColorDim
	}
}

// BandStyle renders text in the band's accent.
func BandStyle(b pricing.Band) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(BandColor(b))
}

// ToneColor returns the accent used for a scenario slide.
func ToneColor(t scenario.Tone) lipgloss.Color {
	switch t {
	case scenario.ToneFloor:
		return ColorYellow
	case scenario.ToneMid:
		return ColorBlue
	case scenario.ToneCeiling:
		return ColorEmerald
	default:
		return ColorDim
	}
}

// BandLabel returns a short human label for a band.
func BandLabel(b pricing.Band) string {
	switch b {
	case pricing.BandFloor:
		return "● minimum"
	case pricing.BandLinear:
		return "● per km"
	case pricing.BandCeiling:
		return "● capped"
	default:
		return "●"
	}
}

// Header renders an upper-cased section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
