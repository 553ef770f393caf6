package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/rickshaw/internal/cli/formatter"
	"github.com/alexanderramin/rickshaw/internal/service"
	"github.com/alexanderramin/rickshaw/internal/slider"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	estimatorIndent = "  "

	// estimatorTrackLine is the content row holding the slider track.
	estimatorTrackLine = 3

	// coarseNudge moves the thumb by one percent of the track.
	coarseNudge = 0.01
)

// estimatorView is the home screen: distance, slider and repayment.
type estimatorView struct {
	state *SharedState
}

func newEstimatorView(state *SharedState) *estimatorView {
	return &estimatorView{state: state}
}

func (v *estimatorView) ID() ViewID    { return ViewEstimator }
func (v *estimatorView) Title() string { return "" }

func (v *estimatorView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("+/-", "step")),
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "slide")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "distance")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "examples")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pin")),
		key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
	}
}

func (v *estimatorView) Init() tea.Cmd { return nil }

func (v *estimatorView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctrl := v.state.Estimator

	switch msg := msg.(type) {
	case distanceSubmittedMsg:
		ctrl.SetDistance(msg.distance)
		return v, nil

	case tea.MouseMsg:
		v.handleMouse(msg)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "+", "=":
			ctrl.Increment()
		case "-", "_":
			ctrl.Decrement()
		case "right":
			ctrl.NudgePosition(coarseNudge)
		case "left":
			ctrl.NudgePosition(-coarseNudge)
		case "shift+right":
			ctrl.NudgePosition(slider.Step)
		case "shift+left":
			ctrl.NudgePosition(-slider.Step)
		case "home":
			ctrl.SetDistance(0)
		case "end":
			ctrl.SetDistance(ctrl.MaxDistance())
		case "e":
			return v, pushView(newExamplesView(v.state))
		case "d":
			return v, pushView(newDistanceFormView(v.state))
		case "h":
			return v, pushView(newHistoryView(v.state))
		case "p":
			return v, v.pinQuote()
		}
	}
	return v, nil
}

// trackGeometry returns the column where the track starts and its width
// for the current terminal size.
func (v *estimatorView) trackGeometry() (start, width int) {
	loc := v.state.Locale()
	ctrl := v.state.Estimator
	labels := lipgloss.Width(loc.Number(0)) + lipgloss.Width(loc.Number(ctrl.MaxDistance()))
	width = max(v.state.ContentWidth()-2*len(estimatorIndent)-labels-2, formatter.MinTrackWidth)

	_, offset := formatter.TrackRow(snapshot(ctrl, width), loc)
	return len(estimatorIndent) + offset, width
}

// handleMouse maps press, motion and release on the track row to a drag.
func (v *estimatorView) handleMouse(msg tea.MouseMsg) {
	ctrl := v.state.Estimator
	start, width := v.trackGeometry()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y != estimatorTrackLine {
			return
		}
		if msg.X < start || msg.X >= start+width {
			return
		}
		ctrl.DragStart()
		ctrl.SetPosition(formatter.PositionAt(msg.X-start, width))
	case tea.MouseActionMotion:
		if ctrl.SliderActive() {
			ctrl.SetPosition(formatter.PositionAt(msg.X-start, width))
		}
	case tea.MouseActionRelease:
		if ctrl.SliderActive() {
			ctrl.DragEnd()
		}
	}
}

func (v *estimatorView) pinQuote() tea.Cmd {
	app := v.state.App
	loc := v.state.Locale()
	req := service.PinRequest{
		Distance: v.state.Estimator.Distance(),
		Language: string(v.state.Session.Language),
	}
	return func() tea.Msg {
		if app.Quotes == nil {
			return noticeMsg{text: formatter.StyleRed.Render("quote log unavailable")}
		}
		q, err := app.Quotes.Pin(context.Background(), req)
		if err != nil {
			return noticeMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
		}
		return noticeMsg{text: estimatorIndent + formatter.StyleEmerald.Render("✔ "+loc.T().PinnedLabel) +
			"  " + loc.Kilometers(q.Distance) + " → " + loc.Money(q.Repayment)}
	}
}

func (v *estimatorView) View() string {
	loc := v.state.Locale()
	t := loc.T()
	ctrl := v.state.Estimator

	_, width := v.trackGeometry()
	snap := snapshot(ctrl, width)
	accent := formatter.BandStyle(snap.Band).Bold(true)
	row, _ := formatter.TrackRow(snap, loc)

	lines := []string{
		"",
		estimatorIndent + accent.Render(loc.Kilometers(snap.Distance)) + "  " + formatter.Dim(t.MonthlyKilometersA11y),
		"",
		estimatorIndent + row,
		"",
		estimatorIndent + formatter.StyleHeader.Render(t.EstimatedRepayment),
		estimatorIndent + accent.Render(loc.Money(snap.Repayment)) + " " + formatter.Dim(t.PerMonthSuffix) +
			"  " + formatter.BandStyle(snap.Band).Render(formatter.BandLabel(snap.Band)),
		"",
		estimatorIndent + formatter.Dim(loc.RepaymentHint(snap.Tariff)),
		"",
		estimatorIndent + formatter.Dim("[e]") + " " + formatter.Bold(t.SeeExamples),
	}
	return strings.Join(lines, "\n")
}
