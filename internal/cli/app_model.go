package cli

import (
	"strings"

	"github.com/alexanderramin/rickshaw/internal/cli/formatter"
	"github.com/alexanderramin/rickshaw/internal/estimator"
	"github.com/alexanderramin/rickshaw/internal/i18n"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// headerHeight is the number of lines above the active view: title and
// separator. Mouse rows are shifted by it before reaching a view.
const headerHeight = 2

// appModel is the root bubbletea Model. The estimator sits at the bottom of
// the view stack; overlays and forms are pushed above it.
type appModel struct {
	state     *SharedState
	viewStack []View
	notice    string
	quitting  bool
}

func newAppModel(app *App, lang i18n.Language) (appModel, error) {
	catalog := app.Config.Catalog()
	state := &SharedState{
		App:     app,
		Catalog: catalog,
		// One introductory slide precedes the scenarios.
		Session: estimator.NewSession(lang, catalog.Len()+1),
	}

	ctrl, err := estimator.New(app.Config.EstimatorOptions(), func(distance, repayment int) {
		app.observe("estimate.changed", map[string]any{
			"distance":  distance,
			"repayment": repayment,
		})
	})
	if err != nil {
		return appModel{}, err
	}
	state.Estimator = ctrl

	m := appModel{state: state}
	m.viewStack = []View{newEstimatorView(state)}
	return m, nil
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// popView removes the top view, keeping the estimator at the bottom.
func (m *appModel) popView() {
	if len(m.viewStack) <= 1 {
		return
	}
	if c, ok := m.activeView().(closer); ok {
		c.Close()
	}
	m.viewStack = m.viewStack[:len(m.viewStack)-1]
}

func (m *appModel) forward(msg tea.Msg) tea.Cmd {
	v := m.activeView()
	if v == nil {
		return nil
	}
	updated, cmd := v.Update(msg)
	m.setActiveView(updated.(View))
	return cmd
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		msg.Y -= headerHeight
		return m, m.forward(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		m.popView()
		return m, nil

	case noticeMsg:
		m.notice = msg.text
		return m, nil

	case wizardCompleteMsg:
		// Pop the form first so the follow-up reaches the view beneath it.
		m.popView()
		return m, msg.nextCmd
	}

	return m, m.forward(msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	m.notice = ""

	// Forms receive every key, including the global shortcuts.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		return m, m.forward(msg)
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "l":
		m.toggleLanguage()
		return m, nil

	case "esc":
		m.popView()
		return m, nil
	}

	return m, m.forward(msg)
}

func (m *appModel) toggleLanguage() {
	from := m.state.Session.Language
	m.state.Session = m.state.Session.ToggleLanguage()
	m.state.App.observe("language.toggled", map[string]any{
		"from": string(from),
		"to":   string(m.state.Session.Language),
	})
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.notice, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Fill the screen so rows left over from a taller view are overwritten.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	t := m.state.T()
	title := formatter.StylePurple.Bold(true).Render(t.Title)

	var crumbs []string
	for _, v := range m.viewStack {
		if s := v.Title(); s != "" {
			crumbs = append(crumbs, s)
		}
	}
	if len(crumbs) > 0 {
		title += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	toggle := formatter.Dim("[l]") + " " + formatter.Bold(t.ToggleLabel)

	// Right-to-left layouts put the title on the right edge.
	left, right := title, toggle
	if m.state.Session.Language.RTL() {
		left, right = toggle, title
	}
	width := m.state.ContentWidth()
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 2)
	header := left + strings.Repeat(" ", gap) + right

	sep := formatter.Dim(strings.Repeat("─", max(width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if v := m.activeView(); v == nil || !viewCapturesInput(v) {
		if len(m.viewStack) > 1 {
			hints = append(hints, formatter.Dim("esc: back"))
		}
		hints = append(hints, formatter.Dim("l: "+m.state.T().ToggleLanguageA11y), formatter.Dim("q: quit"))
	}

	bar := strings.Join(hints, "  ")
	sep := formatter.StyleTrack.Render(strings.Repeat("─", max(m.state.ContentWidth(), 20)))
	return sep + "\n" + bar
}

// viewCapturesInput reports whether the view owns a text input and must
// receive every key.
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	return v.ID() == ViewForm
}
