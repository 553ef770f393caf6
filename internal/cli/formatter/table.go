package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// Table renders aligned columns with a header rule. Widths are measured
// with lipgloss so styled cells and Urdu digits pad correctly.
type Table struct {
	Headers []string
	// RightAlign marks numeric columns by index.
	RightAlign map[int]bool
}

func (t Table) Render(rows [][]string) string {
	cols := len(t.Headers)
	if cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	header := make([]string, cols)
	rule := make([]string, cols)
	for i, h := range t.Headers {
		header[i] = t.pad(i, StyleHeader.Render(h), widths[i])
		rule[i] = StyleDim.Render(strings.Repeat("─", widths[i]))
	}
	writeRow(&b, header)
	writeRow(&b, rule)

	for _, row := range rows {
		cells := make([]string, cols)
		for i := range cells {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = t.pad(i, cell, widths[i])
		}
		writeRow(&b, cells)
	}
	return b.String()
}

func (t Table) pad(col int, cell string, width int) string {
	gap := strings.Repeat(" ", max(width-lipgloss.Width(cell), 0))
	if t.RightAlign[col] {
		return gap + cell
	}
	return cell + gap
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString(strings.TrimRight(strings.Join(cells, strings.Repeat(" ", colGap)), " "))
	b.WriteString("\n")
}
