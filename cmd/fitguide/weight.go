package fitguide

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/saadjs/fitguide-cli/internal/api"
	"github.com/spf13/cobra"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track body weight over time",
}

var weightShowJSON bool

var weightShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Weight history with trend and overall change",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(db *sql.DB, client *api.Client) error {
			summary, err := client.WeightHistory(cmd.Context())
			if err != nil {
				return err
			}
			if weightShowJSON {
				return printJSON(cmd, summary)
			}
			out := cmd.OutOrStdout()
			if len(summary.Logs) == 0 {
				fmt.Fprintln(out, "No weight entries yet. Add one with `fitguide weight add <kg>`.")
				return nil
			}
			fmt.Fprintf(out, "Start:   %.1f kg\n", summary.StartWeight)
			fmt.Fprintf(out, "Current: %.1f kg\n", summary.CurrentWeight)
			fmt.Fprintf(out, "Change:  %+.1f kg\n", summary.Change)
			if summary.Plateau {
				fmt.Fprintln(out, "Plateau: weight has barely moved in recent entries. Consider adjusting your calorie target.")
			}

			values := make([]float64, len(summary.Logs))
			for i, log := range summary.Logs {
				values[i] = log.WeightKg
			}
			fmt.Fprintf(out, "Trend:   %s\n", sparkline(values))
			fmt.Fprintln(out)
			for _, log := range summary.Logs {
				fmt.Fprintf(out, "  [%d] %s  %.1f kg\n", log.ID, log.Date, log.WeightKg)
			}
			return nil
		})
	},
}

var weightAddCmd = &cobra.Command{
	Use:   "add <kg>",
	Short: "Record today's weight",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kg, err := strconv.ParseFloat(args[0], 64)
		if err != nil || kg <= 0 {
			return fmt.Errorf("invalid weight %q", args[0])
		}
		return withClient(func(db *sql.DB, client *api.Client) error {
			log, err := client.LogWeight(cmd.Context(), kg)
			if err != nil {
				return fmt.Errorf("log weight: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged [%d] %.1f kg on %s\n", log.ID, log.WeightKg, log.Date)
			return nil
		})
	},
}

var weightDeleteYes bool

var weightDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a weight entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("log id", args[0])
		if err != nil {
			return err
		}
		ok, err := confirm(cmd, weightDeleteYes, fmt.Sprintf("Delete weight entry %d?", id))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		return withClient(func(db *sql.DB, client *api.Client) error {
			if err := client.DeleteWeightLog(cmd.Context(), id); err != nil {
				return fmt.Errorf("delete weight entry: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted weight entry %d\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightShowCmd)
	weightCmd.AddCommand(weightAddCmd)
	weightCmd.AddCommand(weightDeleteCmd)

	weightShowCmd.Flags().BoolVar(&weightShowJSON, "json", false, "Print the raw history as JSON")
	weightDeleteCmd.Flags().BoolVarP(&weightDeleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
