package formatter

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/rickshaw/internal/i18n"
	"github.com/alexanderramin/rickshaw/internal/pricing"
	"github.com/alexanderramin/rickshaw/internal/scenario"
	"github.com/charmbracelet/lipgloss"
)

// SlideWidth is the column width of one example slide.
const SlideWidth = 48

// ScenarioTable renders the catalog with implied distances. Closest marks
// the row nearest to a target payment; pass -1 for none.
func ScenarioTable(cat scenario.Catalog, tariff pricing.Tariff, loc Locale, closest int) string {
	t := loc.T()
	tb := Table{
		Headers:    []string{"", "#", t.CurrencySuffix + " / " + t.PerMonthSuffix, t.MonthsHeader, t.KmSuffix, "Δ"},
		RightAlign: map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true},
	}
	rows := make([][]string, 0, cat.Len())
	for i, e := range cat.Entries() {
		marker := ""
		if i == closest {
			marker = StyleEmerald.Render("▸")
		}
		divergence := Dim("—")
		if d := scenario.Divergence(e, tariff); d != 0 {
			divergence = StyleYellow.Render(fmt.Sprintf("%+d", d))
		}
		tone := lipgloss.NewStyle().Foreground(ToneColor(scenario.ToneFor(e, tariff)))
		rows = append(rows, []string{
			marker,
			strconv.Itoa(i + 1),
			tone.Render(loc.Number(e.Payment)),
			loc.Number(e.DurationMonths),
			loc.Number(scenario.ImpliedDistance(e, tariff)),
			divergence,
		})
	}
	return Header(t.SeeExamples) + "\n" + tb.Render(rows)
}

// SlideView describes one page of the examples overlay. Entry is nil for
// the introductory page.
type SlideView struct {
	Entry   *scenario.Entry
	Tariff  pricing.Tariff
	Closest bool
	Width   int
}

// RenderSlide renders one example page.
func RenderSlide(v SlideView, loc Locale) string {
	t := loc.T()
	width := v.Width
	if width <= 0 {
		width = SlideWidth
	}
	text := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if v.Entry == nil {
		return text.Render(StyleBold.Render(t.SeeExamples)) + "\n\n" + text.Render(t.IntroSlideText)
	}

	e := *v.Entry
	accent := ToneColor(scenario.ToneFor(e, v.Tariff))
	body := i18n.FillSlide(t.InfoSlideText, loc.Number(e.Payment), loc.Number(e.DurationMonths))

	out := text.Render(body) + "\n\n"
	out += RenderStaticTrack(scenario.Fraction(e, v.Tariff), width, accent) + "\n"
	minLabel := "Rs. " + loc.Number(v.Tariff.MinRepayment)
	maxLabel := "Rs. " + loc.Number(v.Tariff.MaxRepayment)
	gap := max(width-lipgloss.Width(minLabel)-lipgloss.Width(maxLabel), 1)
	out += Dim(minLabel) + fmt.Sprintf("%*s", gap, "") + Dim(maxLabel) + "\n\n"
	out += text.Render(Dim("≈ " + loc.Kilometers(scenario.ImpliedDistance(e, v.Tariff)) + " " + t.PerMonthSuffix))
	if v.Closest {
		out += "\n" + text.Render(StyleEmerald.Render("◆"))
	}
	return out
}
