package cli

import (
	"fmt"

	"github.com/alexanderramin/rickshaw/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTariffCmd(app *App, lang *languageFlag) *cobra.Command {
	return &cobra.Command{
		Use:   "tariff",
		Short: "Show the pricing constants and curve breakpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config
			view := formatter.TariffView{
				Tariff:      cfg.Tariff,
				MaxDistance: cfg.Slider.MaxDistance,
				LowRange:    cfg.Slider.LowRange,
				Quantum:     cfg.Slider.Quantum,
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTariff(view, app.locale(lang.Language())))
			return nil
		},
	}
}
