package fitguide

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/saadjs/fitguide-cli/internal/api"
	"github.com/spf13/cobra"
)

var monthlyJSON bool

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "This month's adherence, weight change, and insights",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(db *sql.DB, client *api.Client) error {
			stats, err := client.MonthlyStats(cmd.Context())
			if err != nil {
				return err
			}
			if monthlyJSON {
				return printJSON(cmd, stats)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s report for %s\n\n", stats.MonthName, stats.UserProfile.Name)

			a := stats.Adherence
			fmt.Fprintf(out, "Adherence: %d of %d logged day(s) on target (%.0f%%)\n", a.MetTargetDays, a.LoggedDays, a.Percentage)
			fmt.Fprintf(out, "Streak:    %d day(s)\n", a.Streak)
			fmt.Fprintf(out, "Weight:    %+.1f kg this month (%.1f -> %.1f)\n",
				stats.WeightChange, stats.UserProfile.StartWeight, stats.UserProfile.EndWeight)
			fmt.Fprintf(out, "BMI:       %.1f (%s)\n", stats.UserProfile.BMI, stats.UserProfile.BMICategory)

			if len(stats.DailyStats) > 0 {
				values := make([]float64, len(stats.DailyStats))
				for i, d := range stats.DailyStats {
					values[i] = float64(d.Calories)
				}
				fmt.Fprintln(out)
				fmt.Fprintf(out, "Calories:  %s\n", sparkline(values))
			}

			if len(stats.Insights) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Insights:")
				for _, insight := range stats.Insights {
					fmt.Fprintf(out, "  - %s\n", insight)
				}
			}
			return nil
		})
	},
}

var monthlyExportOut string

var monthlyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Save the monthly report PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(db *sql.DB, client *api.Client) error {
			pdf, err := client.MonthlyReportPDF(cmd.Context())
			if err != nil {
				return err
			}
			path := monthlyExportOut
			if path == "" {
				stats, err := client.MonthlyStats(cmd.Context())
				if err != nil {
					return err
				}
				month := strings.ReplaceAll(stats.MonthName, " ", "_")
				if month == "" {
					month = "Report"
				}
				path = fmt.Sprintf("Monthly_Report_%s.pdf", month)
			}
			if err := os.WriteFile(path, pdf, 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved monthly report to %s (%d bytes)\n", path, len(pdf))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(monthlyCmd)
	monthlyCmd.AddCommand(monthlyExportCmd)

	monthlyCmd.Flags().BoolVar(&monthlyJSON, "json", false, "Print the raw stats as JSON")
	monthlyExportCmd.Flags().StringVar(&monthlyExportOut, "out", "", "Output path (default Monthly_Report_<Month>.pdf)")
}
