package cli

import (
	"github.com/alexanderramin/rickshaw/internal/cli/formatter"
	"github.com/alexanderramin/rickshaw/internal/estimator"
	"github.com/alexanderramin/rickshaw/internal/i18n"
	"github.com/alexanderramin/rickshaw/internal/scenario"
)

// defaultWidth is used before the first WindowSizeMsg arrives.
const defaultWidth = 80

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	Estimator *estimator.Controller
	Session   estimator.Session
	Catalog   scenario.Catalog

	// Terminal dimensions
	Width  int
	Height int
}

// Locale returns the display locale for the current session language.
func (s *SharedState) Locale() formatter.Locale {
	return s.App.locale(s.Session.Language)
}

// T returns the dictionary for the current session language.
func (s *SharedState) T() i18n.Translations {
	return i18n.Get(s.Session.Language)
}

// ContentWidth returns the terminal width, or a default before the first
// resize.
func (s *SharedState) ContentWidth() int {
	if s.Width <= 0 {
		return defaultWidth
	}
	return s.Width
}
