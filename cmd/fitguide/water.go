package fitguide

import (
	"database/sql"
	"fmt"

	"github.com/saadjs/fitguide-cli/internal/api"
	"github.com/spf13/cobra"
)

// Quick-add default matching one glass of water.
const defaultWaterMl = 250

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track daily water intake",
}

var waterShowJSON bool

var waterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Today's intake, goal progress, and the weekly chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(db *sql.DB, client *api.Client) error {
			summary, err := client.WaterIntake(cmd.Context())
			if err != nil {
				return err
			}
			if waterShowJSON {
				return printJSON(cmd, summary)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Water: %d / %d ml\n", summary.ConsumedMl, summary.GoalMl)
			fmt.Fprintf(out, "  %s\n", progressLine(summary.ConsumedMl, summary.GoalMl, 40))
			fmt.Fprintf(out, "  Remaining: %d ml\n", summary.RemainingMl)

			if len(summary.WeeklyChart) > 0 {
				maxMl := summary.GoalMl
				for _, d := range summary.WeeklyChart {
					if d.AmountMl > maxMl {
						maxMl = d.AmountMl
					}
				}
				fmt.Fprintln(out)
				fmt.Fprintln(out, "This week:")
				for _, d := range summary.WeeklyChart {
					fmt.Fprintf(out, "  %-9s %-20s %5d ml\n", d.DayName, horizontalBar(d.AmountMl, maxMl, 20), d.AmountMl)
				}
			}
			if len(summary.Logs) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Today's entries:")
				for _, log := range summary.Logs {
					fmt.Fprintf(out, "  [%d] %d ml\n", log.ID, log.AmountMl)
				}
			}
			return nil
		})
	},
}

var waterAddCmd = &cobra.Command{
	Use:   "add [ml]",
	Short: "Log water in ml (defaults to one 250 ml glass)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount := int64(defaultWaterMl)
		if len(args) == 1 {
			var err error
			amount, err = parseInt64Arg("amount", args[0])
			if err != nil {
				return err
			}
		}
		return withClient(func(db *sql.DB, client *api.Client) error {
			log, err := client.LogWater(cmd.Context(), int(amount))
			if err != nil {
				return fmt.Errorf("log water: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged [%d] %d ml\n", log.ID, log.AmountMl)
			return nil
		})
	},
}

var waterDeleteYes bool

var waterDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a water entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("log id", args[0])
		if err != nil {
			return err
		}
		ok, err := confirm(cmd, waterDeleteYes, fmt.Sprintf("Delete water entry %d?", id))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		return withClient(func(db *sql.DB, client *api.Client) error {
			if err := client.DeleteWaterLog(cmd.Context(), id); err != nil {
				return fmt.Errorf("delete water entry: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted water entry %d\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(waterCmd)
	waterCmd.AddCommand(waterShowCmd)
	waterCmd.AddCommand(waterAddCmd)
	waterCmd.AddCommand(waterDeleteCmd)

	waterShowCmd.Flags().BoolVar(&waterShowJSON, "json", false, "Print the raw summary as JSON")
	waterDeleteCmd.Flags().BoolVarP(&waterDeleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
