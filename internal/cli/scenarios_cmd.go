package cli

import (
	"fmt"

	"github.com/alexanderramin/rickshaw/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newScenariosCmd(app *App, lang *languageFlag) *cobra.Command {
	var (
		target int
		km     int
	)

	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List the example repayment plans",
		Long: `List the example repayment plans with the distance each payment implies.

--target marks the plan whose payment is closest to an amount; --km marks
the plan closest to the repayment for a distance.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := app.Config.Catalog()
			tariff := app.Config.Tariff

			closest := -1
			switch {
			case cmd.Flags().Changed("target"):
				closest = cat.FindClosest(target)
			case cmd.Flags().Changed("km"):
				closest = cat.FindClosest(tariff.ComputeRepayment(km))
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.ScenarioTable(cat, tariff, app.locale(lang.Language()), closest))
			return nil
		},
	}

	cmd.Flags().IntVar(&target, "target", 0, "Mark the plan closest to this monthly payment")
	cmd.Flags().IntVar(&km, "km", 0, "Mark the plan closest to the repayment for this distance")
	cmd.MarkFlagsMutuallyExclusive("target", "km")

	return cmd
}
