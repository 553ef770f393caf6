package cli

import (
	"errors"

	"github.com/alexanderramin/rickshaw/internal/i18n"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("the interactive estimator needs a terminal; try 'rickshaw estimate --km N'")

func newTUICmd(app *App, lang *languageFlag) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive estimator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}
			return runTUI(app, lang.Language())
		},
	}
}

func runTUI(app *App, lang i18n.Language) error {
	m, err := newAppModel(app, lang)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
