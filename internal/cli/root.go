package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "rickshaw" command. Without a
// subcommand it opens the interactive estimator when attached to a
// terminal and prints help otherwise.
func NewRootCmd(app *App) *cobra.Command {
	lang := newLanguageFlag(app.Config.Language)

	root := &cobra.Command{
		Use:           "rickshaw",
		Short:         "Rickshaw financing repayment estimator",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runTUI(app, lang.Language())
		},
	}

	root.PersistentFlags().Var(lang, "lang", "Display language: en or ur")

	root.AddCommand(
		newEstimateCmd(app, lang),
		newScenariosCmd(app, lang),
		newTariffCmd(app, lang),
		newTUICmd(app, lang),
	)

	return root
}
