package cli

import (
	"github.com/alexanderramin/rickshaw/internal/cli/formatter"
	"github.com/alexanderramin/rickshaw/internal/scenario"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// examplesView pages through an introduction and one slide per scenario.
// The paginator owns keyboard paging; the session mirrors the active slide.
type examplesView struct {
	state *SharedState
	pager paginator.Model

	swiping   bool
	swipeFrom int
}

func newExamplesView(state *SharedState) *examplesView {
	state.Session = state.Session.OpenExamples()

	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.SetTotalPages(state.Session.SlideCount)
	p.ActiveDot = formatter.StyleFg.Render("●")
	p.InactiveDot = formatter.StyleTrack.Render("○")
	// Arrow keys only; the default map also claims h and l.
	p.KeyMap = paginator.KeyMap{
		PrevPage: key.NewBinding(key.WithKeys("left", "pgup")),
		NextPage: key.NewBinding(key.WithKeys("right", "pgdown")),
	}

	return &examplesView{state: state, pager: p}
}

func (v *examplesView) ID() ViewID    { return ViewExamples }
func (v *examplesView) Title() string { return v.state.T().SeeExamples }

func (v *examplesView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "page")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "try it")),
	}
}

func (v *examplesView) Init() tea.Cmd { return nil }

// Close records that the overlay was dismissed.
func (v *examplesView) Close() {
	v.state.Session = v.state.Session.CloseExamples()
}

func (v *examplesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			return v, v.applyScenario()
		}
		var cmd tea.Cmd
		v.pager, cmd = v.pager.Update(msg)
		v.state.Session = v.state.Session.GoToSlide(v.pager.Page)
		return v, cmd

	case tea.MouseMsg:
		v.handleMouse(msg)
	}
	return v, nil
}

// handleMouse pages on the wheel and on horizontal swipes. A swipe is
// resolved like a scroll view settling: the release offset snaps to the
// nearest page.
func (v *examplesView) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		v.state.Session = v.state.Session.NextSlide()
		v.pager.Page = v.state.Session.ActiveSlide
		return
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		v.state.Session = v.state.Session.PrevSlide()
		v.pager.Page = v.state.Session.ActiveSlide
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			v.swiping = true
			v.swipeFrom = msg.X
		}
	case tea.MouseActionRelease:
		if !v.swiping {
			return
		}
		v.swiping = false
		offset := v.pager.Page*formatter.SlideWidth + v.swipeFrom - msg.X
		v.state.Session = v.state.Session.ScrollTo(float64(offset), formatter.SlideWidth)
		v.pager.Page = v.state.Session.ActiveSlide
	}
}

// applyScenario moves the estimator to the distance that produces the
// slide's payment and closes the overlay.
func (v *examplesView) applyScenario() tea.Cmd {
	entry, ok := v.entry()
	if !ok {
		return nil
	}
	ctrl := v.state.Estimator
	ctrl.SetDistance(scenario.ImpliedDistance(entry, ctrl.Tariff()))

	loc := v.state.Locale()
	return tea.Batch(
		popView(),
		noticeCmd(estimatorIndent+formatter.Dim("→ ")+loc.Kilometers(ctrl.Distance())),
	)
}

// entry returns the scenario on the current slide. The first slide is the
// introduction and has none.
func (v *examplesView) entry() (scenario.Entry, bool) {
	i := v.pager.Page - 1
	if i < 0 || i >= v.state.Catalog.Len() {
		return scenario.Entry{}, false
	}
	return v.state.Catalog.At(i), true
}

func (v *examplesView) View() string {
	ctrl := v.state.Estimator
	sv := formatter.SlideView{Tariff: ctrl.Tariff(), Width: formatter.SlideWidth}
	if e, ok := v.entry(); ok {
		sv.Entry = &e
		sv.Closest = v.pager.Page-1 == v.state.Catalog.FindClosest(ctrl.Repayment())
	}

	slide := formatter.RenderSlide(sv, v.state.Locale())
	dots := lipgloss.PlaceHorizontal(formatter.SlideWidth, lipgloss.Center, v.pager.View())
	card := formatter.RenderBox("", lipgloss.JoinVertical(lipgloss.Left, slide, "", dots))
	return "\n" + lipgloss.PlaceHorizontal(v.state.ContentWidth(), lipgloss.Center, card)
}
