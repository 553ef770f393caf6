package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rickshaw/internal/i18n"
	"github.com/alexanderramin/rickshaw/internal/pricing"
	"github.com/charmbracelet/lipgloss"
)

// Locale bundles the language and digit strategy used for display.
type Locale struct {
	Lang    i18n.Language
	Numbers i18n.NumberFormatter
}

func (l Locale) T() i18n.Translations { return i18n.Get(l.Lang) }

func (l Locale) Number(n int) string { return l.Numbers.Format(n, l.Lang) }

// Kilometers renders "1,000 km" in the locale.
func (l Locale) Kilometers(n int) string {
	return l.Number(n) + " " + l.T().KmSuffix
}

// Money renders "18,000 Rs" in the locale.
func (l Locale) Money(n int) string {
	return l.Number(n) + " " + l.T().CurrencySuffix
}

// RepaymentHint fills the hint with the tariff's cap and ceiling distance.
func (l Locale) RepaymentHint(t pricing.Tariff) string {
	return i18n.FillHint(l.T().RepaymentHint, l.Number(t.MaxRepayment), l.Number(t.CeilingBreakpoint()))
}

// EstimateView is a snapshot of the estimator for rendering.
type EstimateView struct {
	Distance     int
	Repayment    int
	MaxDistance  int
	Position     float64
	Band         pricing.Band
	Tariff       pricing.Tariff
	SliderActive bool
	TrackWidth   int
}

// TrackRow renders "0 ━━━●─── 3,800" and returns the column where the track
// begins, relative to the start of the row.
func TrackRow(v EstimateView, loc Locale) (row string, trackStart int) {
	left := StyleDim.Render(loc.Number(0))
	right := StyleDim.Render(loc.Number(v.MaxDistance))
	track := RenderTrack(v.Position, v.TrackWidth, BandColor(v.Band), v.SliderActive)
	return left + " " + track + " " + right, lipgloss.Width(left) + 1
}

// FormatEstimate renders the one-shot estimate printed by the CLI.
func FormatEstimate(v EstimateView, loc Locale) string {
	t := loc.T()
	accent := BandStyle(v.Band).Bold(true)
	if v.TrackWidth == 0 {
		v.TrackWidth = 40
	}

	var b strings.Builder
	b.WriteString(Header(t.Title) + "\n\n")
	b.WriteString("  " + accent.Render(loc.Kilometers(v.Distance)) + "  " + Dim(t.MonthlyKilometersA11y) + "\n")
	row, _ := TrackRow(v, loc)
	b.WriteString("  " + row + "\n\n")
	b.WriteString("  " + StyleHeader.Render(t.EstimatedRepayment) + "\n")
	b.WriteString(fmt.Sprintf("  %s %s  %s\n",
		accent.Render(loc.Money(v.Repayment)),
		Dim(t.PerMonthSuffix),
		BandStyle(v.Band).Render(BandLabel(v.Band)),
	))
	b.WriteString("\n  " + Dim(loc.RepaymentHint(v.Tariff)) + "\n")
	return b.String()
}

// TariffView describes the pricing and control constants.
type TariffView struct {
	Tariff      pricing.Tariff
	MaxDistance int
	LowRange    int
	Quantum     int
}

// FormatTariff renders the tariff constants and curve breakpoints.
func FormatTariff(v TariffView, loc Locale) string {
	t := loc.T()
	tb := Table{Headers: []string{t.SettingHeader, t.ValueHeader}, RightAlign: map[int]bool{1: true}}
	rows := [][]string{
		{t.FixedFeeLabel, loc.Money(v.Tariff.FixedFee)},
		{t.RatePerKmLabel, loc.Money(v.Tariff.RatePerKm)},
		{t.MinRepaymentLabel, loc.Money(v.Tariff.MinRepayment)},
		{t.MaxRepaymentLabel, loc.Money(v.Tariff.MaxRepayment)},
		{t.FloorUntilLabel, BandStyle(pricing.BandFloor).Render(loc.Kilometers(v.Tariff.FloorBreakpoint()))},
		{t.CappedFromLabel, BandStyle(pricing.BandCeiling).Render(loc.Kilometers(v.Tariff.CeilingBreakpoint()))},
		{t.SliderMaxLabel, loc.Kilometers(v.MaxDistance)},
		{t.SliderMidLabel, loc.Kilometers(v.LowRange)},
		{t.StepLabel, loc.Kilometers(v.Quantum)},
	}
	return Header(t.TariffTitle) + "\n" + tb.Render(rows)
}
