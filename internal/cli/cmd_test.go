package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/alexanderramin/rickshaw/internal/config"
	"github.com/alexanderramin/rickshaw/internal/i18n"
	"github.com/alexanderramin/rickshaw/internal/repository"
	"github.com/alexanderramin/rickshaw/internal/service"
	"github.com/alexanderramin/rickshaw/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds an English App backed by an in-memory quote log.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	cfg := config.DefaultConfig()
	cfg.Language = i18n.English

	return &App{
		Config: cfg,
		Quotes: service.NewQuoteService(
			repository.NewSQLiteQuoteRepo(database),
			testutil.NewTestUoW(database),
			cfg.Tariff,
		),
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	events []service.UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e service.UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) named(name string) []service.UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []service.UseCaseEvent
	for _, e := range r.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func lineContaining(out, marker string) string {
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, marker) {
			return line
		}
	}
	return ""
}

// --- estimate ---

func TestEstimateCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"exact distance", []string{"--km", "1000"}, []string{"1,000 km", "18,000 Rs", "per km"}},
		{"floor", []string{"--km", "150"}, []string{"150 km", "10,000 Rs", "minimum"}},
		{"clamped to slider maximum", []string{"--km", "9999"}, []string{"3,800 km", "40,000 Rs", "capped"}},
		{"negative clamps to zero", []string{"--km=-20"}, []string{"0 km", "10,000 Rs"}},
		{"slider position", []string{"--position", "0.75"}, []string{"2,400 km", "32,000 Rs"}},
		{"breakpoint position", []string{"--position", "0.5"}, []string{"1,000 km", "18,000 Rs"}},
		{"no input outside a terminal", nil, []string{"0 km", "10,000 Rs"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCmd(t, testApp(t), append([]string{"estimate"}, tt.args...)...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestEstimateCmd_KmAndPositionAreExclusive(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "estimate", "--km", "5", "--position", "0.1")
	assert.Error(t, err)
}

func TestEstimateCmd_UrduDigits(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "estimate", "--km", "1000", "--lang", "ur")
	require.NoError(t, err)
	assert.Contains(t, out, "\u2067۱۸٬۰۰۰\u2069 روپے")
	assert.Contains(t, out, "ماہانہ")
}

func TestEstimateCmd_UrduASCIIDigits(t *testing.T) {
	app := testApp(t)
	app.Config.NativeDigits = false

	out, err := executeCmd(t, app, "estimate", "--km", "1000", "--lang", "ur")
	require.NoError(t, err)
	assert.Contains(t, out, "18,000 روپے")
}

func TestRootCmd_RejectsUnknownLanguage(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "estimate", "--lang", "fr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}

func TestLanguageFlag(t *testing.T) {
	f := newLanguageFlag("klingon")
	assert.Equal(t, "ur", f.String(), "invalid default falls back to Urdu")
	assert.Equal(t, "language", f.Type())

	require.NoError(t, f.Set(" EN "))
	assert.Equal(t, i18n.English, f.Language())

	assert.Error(t, f.Set("de"))
	assert.Equal(t, i18n.English, f.Language(), "rejected value leaves the flag unchanged")
}

// --- scenarios ---

func TestScenariosCmd_ListsCatalog(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "scenarios")
	require.NoError(t, err)

	for _, payment := range []string{"10,000", "17,500", "25,000", "32,500", "40,000"} {
		assert.Contains(t, out, payment)
	}
	assert.Contains(t, out, "3,200", "implied distance of the top plan")
	assert.NotContains(t, out, "▸")
}

func TestScenariosCmd_MarksClosestToTarget(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "scenarios", "--target", "21000")
	require.NoError(t, err)
	assert.Contains(t, lineContaining(out, "▸"), "17,500")
}

func TestScenariosCmd_MarksClosestToDistance(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "scenarios", "--km", "3200")
	require.NoError(t, err)
	assert.Contains(t, lineContaining(out, "▸"), "40,000")
}

// --- tariff ---

func TestTariffCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "tariff")
	require.NoError(t, err)
	assert.Contains(t, out, "8,000 Rs")
	assert.Contains(t, out, "10 Rs")
	assert.Contains(t, lineContaining(out, "Floor until"), "200 km")
	assert.Contains(t, lineContaining(out, "Capped from"), "3,200 km")
	assert.Contains(t, lineContaining(out, "Slider maximum"), "3,800 km")
}

func TestTariffCmd_Urdu(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "--lang", "ur", "tariff")
	require.NoError(t, err)
	tr := i18n.Get(i18n.Urdu)
	assert.Contains(t, out, tr.TariffTitle)
	assert.Contains(t, out, tr.SettingHeader)
	assert.NotEmpty(t, lineContaining(out, tr.CappedFromLabel))
	assert.NotContains(t, out, "Capped from")
	assert.NotContains(t, out, "Fixed fee")
}

// --- root / tui ---

func TestRootCmd_PrintsHelpWithoutTerminal(t *testing.T) {
	out, err := executeCmd(t, testApp(t))
	require.NoError(t, err)
	assert.Contains(t, out, "estimate")
	assert.Contains(t, out, "scenarios")
}

func TestTUICmd_RequiresTerminal(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "tui")
	assert.ErrorIs(t, err, errNotInteractive)
}
