package cli

import (
	"testing"

	"github.com/alexanderramin/rickshaw/internal/estimator"
	"github.com/alexanderramin/rickshaw/internal/teatest"
	"github.com/stretchr/testify/require"
)

// TestDriver wraps teatest.Driver with access to appModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the app model for app at 100x30 and drains Init.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	m, err := newAppModel(app, app.Config.Language)
	require.NoError(t, err)

	d := teatest.New(t, m, teatest.WithSize(100, 30))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

func (d *TestDriver) Estimator() *estimator.Controller {
	return d.State().Estimator
}

func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

func (d *TestDriver) Notice() string {
	return d.appModel().notice
}

// Track returns the screen row and column span of the estimator slider.
func (d *TestDriver) Track() (row, start, width int) {
	ev := d.appModel().viewStack[0].(*estimatorView)
	start, width = ev.trackGeometry()
	return headerHeight + estimatorTrackLine, start, width
}

// SetDistance jumps the estimator the way the distance form does.
func (d *TestDriver) SetDistance(km int) {
	d.Send(distanceSubmittedMsg{distance: km})
}
