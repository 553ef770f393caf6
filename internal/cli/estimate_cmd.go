package cli

import (
	"fmt"

	"github.com/alexanderramin/rickshaw/internal/cli/formatter"
	"github.com/alexanderramin/rickshaw/internal/estimator"
	"github.com/spf13/cobra"
)

func newEstimateCmd(app *App, lang *languageFlag) *cobra.Command {
	var (
		km       int
		position float64
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the monthly repayment for a monthly distance",
		Long: `Estimate the monthly repayment for a monthly distance.

Pass --km for an exact distance or --position for a slider position
between 0 and 1. With neither flag the distance is asked for
interactively.`,
		Example: `  rickshaw estimate --km 1200
  rickshaw estimate --position 0.5 --lang en`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := estimator.New(app.Config.EstimatorOptions(), nil)
			if err != nil {
				return err
			}
			loc := app.locale(lang.Language())

			switch {
			case cmd.Flags().Changed("km"):
				ctrl.SetDistance(km)
			case cmd.Flags().Changed("position"):
				ctrl.SetPosition(position)
			case app.interactive():
				var answer string
				form := distanceForm(loc.T().EnterDistance, ctrl.Distance(), ctrl.MaxDistance(), &answer)
				if err := form.Run(); err != nil {
					return fmt.Errorf("reading distance: %w", err)
				}
				ctrl.SetDistance(parseNonNegativeInt(answer, ctrl.Distance()))
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEstimate(snapshot(ctrl, 0), loc))
			return nil
		},
	}

	cmd.Flags().IntVar(&km, "km", 0, "Kilometers driven per month")
	cmd.Flags().Float64Var(&position, "position", 0, "Slider position between 0 and 1")
	cmd.MarkFlagsMutuallyExclusive("km", "position")

	return cmd
}
