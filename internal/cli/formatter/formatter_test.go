package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/rickshaw/internal/i18n"
	"github.com/alexanderramin/rickshaw/internal/pricing"
	"github.com/alexanderramin/rickshaw/internal/scenario"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var english = Locale{Lang: i18n.English, Numbers: i18n.NumberFormatter{NativeDigits: true}}

func TestThumbIndexAndPositionAt(t *testing.T) {
	assert.Equal(t, 0, ThumbIndex(0, 21))
	assert.Equal(t, 10, ThumbIndex(0.5, 21))
	assert.Equal(t, 20, ThumbIndex(1, 21))
	assert.Equal(t, 20, ThumbIndex(7, 21))

	assert.Equal(t, 0.0, PositionAt(-3, 21))
	assert.Equal(t, 0.5, PositionAt(10, 21))
	assert.Equal(t, 1.0, PositionAt(99, 21))
}

func TestThumbIndex_NarrowTrackUsesMinimumWidth(t *testing.T) {
	assert.Equal(t, MinTrackWidth-1, ThumbIndex(1, 3))
}

func TestRenderTrack_Width(t *testing.T) {
	for _, p := range []float64{0, 0.3, 1} {
		got := RenderTrack(p, 30, ColorBlue, false)
		assert.Equal(t, 30, lipgloss.Width(got))
	}
	assert.Contains(t, RenderTrack(0.5, 30, ColorBlue, true), thumbActive)
	assert.Contains(t, RenderStaticTrack(0.5, 30, ColorBlue), thumbIdle)
}

func TestTable_AlignsColumns(t *testing.T) {
	tb := Table{Headers: []string{"Name", "Amount"}, RightAlign: map[int]bool{1: true}}
	out := tb.Render([][]string{{"floor", "10,000"}, {"cap", "40,000"}, {"x", "5"}})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasSuffix(lines[4], "     5"))
	assert.Equal(t, lipgloss.Width(lines[2]), lipgloss.Width(lines[4]))
}

func TestTable_NoHeaders(t *testing.T) {
	assert.Empty(t, Table{}.Render([][]string{{"a"}}))
}

func TestLocale(t *testing.T) {
	assert.Equal(t, "1,000 km", english.Kilometers(1000))
	assert.Equal(t, "18,000 Rs", english.Money(18000))

	urdu := Locale{Lang: i18n.Urdu, Numbers: i18n.NumberFormatter{NativeDigits: false}}
	assert.Equal(t, "18,000 روپے", urdu.Money(18000))
}

func TestFormatEstimate(t *testing.T) {
	out := FormatEstimate(EstimateView{
		Distance:    1000,
		Repayment:   18000,
		MaxDistance: 3800,
		Position:    0.5,
		Band:        pricing.BandLinear,
		Tariff:      pricing.DefaultTariff(),
	}, english)

	assert.Contains(t, out, "1,000 km")
	assert.Contains(t, out, "18,000 Rs")
	assert.Contains(t, out, "3,800")
	assert.Contains(t, out, "Estimated Repayment")
	assert.Contains(t, out, "per km")
	assert.Contains(t, out, "caps at 40,000 Rs (3,200 km)")
}

func TestFormatEstimate_HintFollowsTariff(t *testing.T) {
	tariff := pricing.Tariff{FixedFee: 8000, RatePerKm: 10, MinRepayment: 10000, MaxRepayment: 30000}
	require.NoError(t, tariff.Validate())

	out := FormatEstimate(EstimateView{Distance: 2500, Repayment: 30000, MaxDistance: 3800, Position: 0.8, Band: pricing.BandCeiling, Tariff: tariff}, english)
	assert.Contains(t, out, "caps at 30,000 Rs (2,200 km)")
	assert.NotContains(t, out, "40,000")

	urdu := Locale{Lang: i18n.Urdu, Numbers: i18n.NumberFormatter{NativeDigits: false}}
	out = FormatEstimate(EstimateView{MaxDistance: 3800, Tariff: tariff}, urdu)
	assert.Contains(t, out, "30,000 روپے (2,200 کلومیٹر)")
	assert.NotContains(t, out, i18n.PaymentPlaceholder)
}

func TestTrackRow_ReportsTrackStart(t *testing.T) {
	row, start := TrackRow(EstimateView{MaxDistance: 3800, TrackWidth: 20, Band: pricing.BandFloor}, english)
	assert.Equal(t, 2, start)
	assert.Equal(t, 1+1+20+1+5, lipgloss.Width(row))
}

func TestFormatTariff(t *testing.T) {
	out := FormatTariff(TariffView{Tariff: pricing.DefaultTariff(), MaxDistance: 3800, LowRange: 1000, Quantum: 5}, english)
	assert.Contains(t, out, "8,000 Rs")
	assert.Contains(t, out, "200 km")
	assert.Contains(t, out, "3,200 km")
	assert.Contains(t, out, "5 km")
	assert.Contains(t, out, "Fixed fee")
}

func TestFormatTariff_Urdu(t *testing.T) {
	urdu := Locale{Lang: i18n.Urdu, Numbers: i18n.NumberFormatter{NativeDigits: false}}
	out := FormatTariff(TariffView{Tariff: pricing.DefaultTariff(), MaxDistance: 3800, LowRange: 1000, Quantum: 5}, urdu)
	tr := i18n.Get(i18n.Urdu)
	for _, label := range []string{
		tr.TariffTitle, tr.SettingHeader, tr.ValueHeader, tr.FixedFeeLabel, tr.RatePerKmLabel,
		tr.MinRepaymentLabel, tr.MaxRepaymentLabel, tr.FloorUntilLabel, tr.CappedFromLabel,
		tr.SliderMaxLabel, tr.SliderMidLabel, tr.StepLabel,
	} {
		assert.Contains(t, out, label)
	}
	for _, english := range []string{"Setting", "Value", "Fixed fee", "Capped from", "Step", "Tariff"} {
		assert.NotContains(t, out, english)
	}
}

func TestScenarioTable_MarksClosest(t *testing.T) {
	cat := scenario.DefaultCatalog()
	out := ScenarioTable(cat, pricing.DefaultTariff(), english, cat.FindClosest(21000))

	var marked []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "▸") {
			marked = append(marked, line)
		}
	}
	require.Len(t, marked, 1)
	assert.Contains(t, marked[0], "17,500")
	assert.Contains(t, marked[0], "950")
}

func TestScenarioTable_ShowsDivergence(t *testing.T) {
	cat, err := scenario.NewCatalog([]scenario.Entry{{Payment: 9000, DurationMonths: 60}})
	require.NoError(t, err)
	out := ScenarioTable(cat, pricing.DefaultTariff(), english, -1)
	assert.Contains(t, out, "+1000")
	assert.NotContains(t, out, "▸")
}

func TestScenarioTable_MonthsHeaderTranslated(t *testing.T) {
	cat := scenario.DefaultCatalog()
	assert.Contains(t, ScenarioTable(cat, pricing.DefaultTariff(), english, -1), "Months")

	urdu := Locale{Lang: i18n.Urdu, Numbers: i18n.NumberFormatter{NativeDigits: false}}
	out := ScenarioTable(cat, pricing.DefaultTariff(), urdu, -1)
	assert.Contains(t, out, i18n.Get(i18n.Urdu).MonthsHeader)
	assert.NotContains(t, out, "Months")
}

func TestRenderSlide(t *testing.T) {
	tariff := pricing.DefaultTariff()
	intro := RenderSlide(SlideView{Tariff: tariff}, english)
	assert.Contains(t, intro, "See Examples")

	e := scenario.DefaultCatalog().At(1)
	out := RenderSlide(SlideView{Entry: &e, Tariff: tariff, Closest: true}, english)
	// The slide text wraps at the slide width.
	assert.Contains(t, out, "17,500")
	assert.Contains(t, out, "28 months.")
	assert.Contains(t, out, "Rs. 10,000")
	assert.Contains(t, out, "Rs. 40,000")
	assert.Contains(t, out, "950 km")
	assert.Contains(t, out, "◆")
}

func TestRenderBox(t *testing.T) {
	plain := RenderBox("", "body")
	lines := strings.Split(plain, "\n")
	require.Len(t, lines, 5, "border and one row of padding above and below")
	assert.Contains(t, lines[2], "body")
	assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(lines[2]))

	titled := RenderBox("examples", "body")
	assert.Contains(t, titled, "EXAMPLES")
	assert.Contains(t, titled, "body")
}
