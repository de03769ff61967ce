package fitguide

import (
	"database/sql"
	"fmt"

	"github.com/saadjs/fitguide-cli/internal/api"
	"github.com/saadjs/fitguide-cli/internal/metrics"
	"github.com/spf13/cobra"
)

var dashboardJSON bool

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Today's calories, macros, and recent meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(db *sql.DB, client *api.Client) error {
			summary, err := client.DashboardSummary(cmd.Context())
			if err != nil {
				return err
			}
			if dashboardJSON {
				return printJSON(cmd, summary)
			}
			out := cmd.OutOrStdout()

			pct := metrics.ProgressPercent(summary.ConsumedCalories, summary.TargetCalories)
			remaining := metrics.RemainingCalories(summary.TargetCalories, summary.ConsumedCalories)
			fmt.Fprintf(out, "Today: %d / %.0f kcal (%d%%)\n", summary.ConsumedCalories, summary.TargetCalories, pct)
			fmt.Fprintf(out, "  %s\n", progressLine(summary.ConsumedCalories, int(summary.TargetCalories), 40))
			fmt.Fprintf(out, "  Remaining: %.0f kcal\n", remaining)

			targets := metrics.MacroTargetsFor(summary.TargetCalories)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Macros (eaten / target):")
			fmt.Fprintf(out, "  Protein  %4.0fg / %dg  %s\n", summary.Macros.Protein, targets.ProteinG,
				progressLine(int(summary.Macros.Protein), targets.ProteinG, 20))
			fmt.Fprintf(out, "  Carbs    %4.0fg / %dg  %s\n", summary.Macros.Carbs, targets.CarbsG,
				progressLine(int(summary.Macros.Carbs), targets.CarbsG, 20))
			fmt.Fprintf(out, "  Fats     %4.0fg / %dg  %s\n", summary.Macros.Fats, targets.FatsG,
				progressLine(int(summary.Macros.Fats), targets.FatsG, 20))

			fmt.Fprintln(out)
			if len(summary.RecentLogs) == 0 {
				fmt.Fprintln(out, "No meals logged today. Try `fitguide food log`.")
				return nil
			}
			fmt.Fprintln(out, "Recent meals:")
			for _, log := range summary.RecentLogs {
				fmt.Fprintf(out, "  [%d] %-10s %-24s %5d kcal  P%.0f C%.0f F%.0f\n",
					log.ID, log.MealType, log.FoodName, log.Calories, log.Protein, log.Carbs, log.Fats)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().BoolVar(&dashboardJSON, "json", false, "Print the raw summary as JSON")
}
