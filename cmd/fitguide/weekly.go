package fitguide

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/saadjs/fitguide-cli/internal/api"
	"github.com/saadjs/fitguide-cli/internal/metrics"
	"github.com/spf13/cobra"
)

var weeklyJSON bool

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Last seven days of calories against target",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(db *sql.DB, client *api.Client) error {
			stats, err := client.WeeklyStats(cmd.Context())
			if err != nil {
				return err
			}
			profile, err := client.GetProfile(cmd.Context())
			if err != nil {
				return err
			}
			if weeklyJSON {
				return printJSON(cmd, stats)
			}
			out := cmd.OutOrStdout()
			target := profile.DailyCalorieTarget
			fmt.Fprintf(out, "Weekly calories (target %.0f kcal/day)\n\n", target)

			maxCal := int(target)
			for _, d := range stats.DailyStats {
				if d.Calories > maxCal {
					maxCal = d.Calories
				}
			}
			today := time.Now().Format("2006-01-02")
			for _, d := range stats.DailyStats {
				status := metrics.DayBarStatus(d.Calories, target)
				marker := " "
				if d.Date == today && d.Calories > 0 {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-9s %-24s %5d kcal  %s\n",
					marker, d.DayName, horizontalBar(d.Calories, maxCal, 24), d.Calories, statusLabel(status))
			}
			fmt.Fprintln(out)
			if stats.Streak > 0 {
				fmt.Fprintf(out, "Streak: %d day(s) of logging\n", stats.Streak)
			} else {
				fmt.Fprintln(out, "No streak yet. Log a meal today to start one.")
			}
			return nil
		})
	},
}

func statusLabel(s metrics.DayStatus) string {
	switch s {
	case metrics.StatusOnTarget:
		return "on target"
	case metrics.StatusUnder:
		return "under"
	case metrics.StatusOver:
		return "over"
	default:
		return "-"
	}
}

func init() {
	rootCmd.AddCommand(weeklyCmd)
	weeklyCmd.Flags().BoolVar(&weeklyJSON, "json", false, "Print the raw stats as JSON")
}
