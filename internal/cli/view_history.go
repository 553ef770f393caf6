package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/rickshaw/internal/cli/formatter"
	"github.com/alexanderramin/rickshaw/internal/domain"
	"github.com/alexanderramin/rickshaw/internal/pricing"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// quotesLoadedMsg signals that the session quote log has been loaded.
type quotesLoadedMsg struct {
	quotes []*domain.Quote
	err    error
}

// historyView lists quotes pinned during this run, newest first.
type historyView struct {
	state   *SharedState
	quotes  []*domain.Quote
	cursor  int
	loading bool
	err     error
}

func newHistoryView(state *SharedState) *historyView {
	return &historyView{state: state, loading: true}
}

func (v *historyView) ID() ViewID    { return ViewHistory }
func (v *historyView) Title() string { return v.state.T().HistoryTitle }

func (v *historyView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "restore")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
	}
}

func (v *historyView) Init() tea.Cmd {
	return v.loadQuotes()
}

func (v *historyView) loadQuotes() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		if app.Quotes == nil {
			return quotesLoadedMsg{}
		}
		quotes, err := app.Quotes.List(context.Background())
		return quotesLoadedMsg{quotes: quotes, err: err}
	}
}

func (v *historyView) deleteSelected() tea.Cmd {
	if v.cursor >= len(v.quotes) {
		return nil
	}
	app := v.state.App
	id := v.quotes[v.cursor].ID
	reload := v.loadQuotes()
	return func() tea.Msg {
		if err := app.Quotes.Delete(context.Background(), id); err != nil {
			return quotesLoadedMsg{err: err}
		}
		return reload()
	}
}

func (v *historyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case quotesLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.quotes = msg.quotes
		}
		v.cursor = min(v.cursor, max(len(v.quotes)-1, 0))
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.quotes)-1 {
				v.cursor++
			}
		case "x":
			return v, v.deleteSelected()
		case "enter":
			if v.cursor < len(v.quotes) {
				v.state.Estimator.SetDistance(v.quotes[v.cursor].Distance)
				return v, popView()
			}
		}
	}
	return v, nil
}

func (v *historyView) View() string {
	t := v.state.T()
	loc := v.state.Locale()

	switch {
	case v.loading:
		return "\n  " + formatter.Dim(t.LoadingLabel)
	case v.err != nil:
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	case len(v.quotes) == 0:
		return "\n  " + formatter.Dim(t.HistoryEmpty)
	}

	tb := formatter.Table{
		Headers:    []string{"", t.TimeHeader, t.KmSuffix, t.CurrencySuffix, "", ""},
		RightAlign: map[int]bool{2: true, 3: true},
	}
	rows := make([][]string, 0, len(v.quotes))
	for i, q := range v.quotes {
		cursor := " "
		if i == v.cursor {
			cursor = formatter.StylePurple.Render("▸")
		}
		band := pricing.Band(q.Band)
		rows = append(rows, []string{
			cursor,
			q.CreatedAt.Local().Format("15:04:05"),
			loc.Number(q.Distance),
			formatter.BandStyle(band).Render(loc.Number(q.Repayment)),
			formatter.Dim(q.Language),
			formatter.BandStyle(band).Render(formatter.BandLabel(band)),
		})
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, line := range strings.Split(tb.Render(rows), "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString(fmt.Sprintf("\n  %s", formatter.Dim(fmt.Sprintf("%d pinned", len(v.quotes)))))
	return b.String()
}
