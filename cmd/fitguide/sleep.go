package fitguide

import (
	"database/sql"
	"fmt"

	"github.com/saadjs/fitguide-cli/internal/api"
	"github.com/saadjs/fitguide-cli/internal/metrics"
	"github.com/spf13/cobra"
)

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Track sleep duration, quality, and stages",
}

var sleepShowJSON bool

var sleepShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Recent nights with averages and stage breakdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(db *sql.DB, client *api.Client) error {
			logs, err := client.SleepLogs(cmd.Context())
			if err != nil {
				return err
			}
			if sleepShowJSON {
				return printJSON(cmd, logs)
			}
			out := cmd.OutOrStdout()
			if len(logs) == 0 {
				fmt.Fprintln(out, "No sleep logged yet. Add a night with `fitguide sleep add`.")
				return nil
			}

			var totalMinutes, totalQuality int
			durations := make([]float64, len(logs))
			for i, log := range logs {
				totalMinutes += log.DurationMinutes
				totalQuality += log.QualityScore
				durations[i] = float64(log.DurationMinutes)
			}
			n := len(logs)
			fmt.Fprintf(out, "Average: %s over %d night(s), quality %d/100\n",
				formatMinutes(totalMinutes/n), n, totalQuality/n)
			fmt.Fprintf(out, "Trend:   %s\n", sparkline(durations))
			fmt.Fprintln(out)
			for _, log := range logs {
				fmt.Fprintf(out, "  [%d] %s  %s -> %s  %s  quality %d\n",
					log.ID, log.Date, log.Bedtime, log.WakeTime, formatMinutes(log.DurationMinutes), log.QualityScore)
				if log.DeepSleepMinutes+log.LightSleepMinutes+log.RemSleepMinutes+log.AwakeMinutes > 0 {
					fmt.Fprintf(out, "       deep %s  light %s  rem %s  awake %s\n",
						formatMinutes(log.DeepSleepMinutes), formatMinutes(log.LightSleepMinutes),
						formatMinutes(log.RemSleepMinutes), formatMinutes(log.AwakeMinutes))
				}
			}
			return nil
		})
	},
}

var (
	sleepAddBedtime  string
	sleepAddWakeTime string
	sleepAddQuality  int
	sleepAddDeep     int
	sleepAddLight    int
	sleepAddRem      int
	sleepAddAwake    int
)

var sleepAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a night of sleep from bed and wake times",
	RunE: func(cmd *cobra.Command, args []string) error {
		duration, err := metrics.SleepDuration(sleepAddBedtime, sleepAddWakeTime)
		if err != nil {
			return err
		}
		if sleepAddQuality < 0 || sleepAddQuality > 100 {
			return fmt.Errorf("--quality must be between 0 and 100")
		}
		return withClient(func(db *sql.DB, client *api.Client) error {
			log, err := client.LogSleep(cmd.Context(), api.SleepInput{
				Bedtime:           sleepAddBedtime,
				WakeTime:          sleepAddWakeTime,
				DurationMinutes:   duration,
				QualityScore:      sleepAddQuality,
				DeepSleepMinutes:  sleepAddDeep,
				LightSleepMinutes: sleepAddLight,
				RemSleepMinutes:   sleepAddRem,
				AwakeMinutes:      sleepAddAwake,
			})
			if err != nil {
				return fmt.Errorf("log sleep: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged [%d] %s -> %s (%s)\n",
				log.ID, log.Bedtime, log.WakeTime, formatMinutes(log.DurationMinutes))
			return nil
		})
	},
}

var sleepDeleteYes bool

var sleepDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a sleep entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("log id", args[0])
		if err != nil {
			return err
		}
		ok, err := confirm(cmd, sleepDeleteYes, fmt.Sprintf("Delete sleep entry %d?", id))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		return withClient(func(db *sql.DB, client *api.Client) error {
			if err := client.DeleteSleepLog(cmd.Context(), id); err != nil {
				return fmt.Errorf("delete sleep entry: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted sleep entry %d\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(sleepCmd)
	sleepCmd.AddCommand(sleepShowCmd)
	sleepCmd.AddCommand(sleepAddCmd)
	sleepCmd.AddCommand(sleepDeleteCmd)

	sleepShowCmd.Flags().BoolVar(&sleepShowJSON, "json", false, "Print the raw logs as JSON")

	sleepAddCmd.Flags().StringVar(&sleepAddBedtime, "bed", "", "Bedtime as HH:MM (24h)")
	sleepAddCmd.Flags().StringVar(&sleepAddWakeTime, "wake", "", "Wake time as HH:MM (24h)")
	sleepAddCmd.Flags().IntVar(&sleepAddQuality, "quality", 0, "Quality score 0-100")
	sleepAddCmd.Flags().IntVar(&sleepAddDeep, "deep", 0, "Deep sleep minutes")
	sleepAddCmd.Flags().IntVar(&sleepAddLight, "light", 0, "Light sleep minutes")
	sleepAddCmd.Flags().IntVar(&sleepAddRem, "rem", 0, "REM sleep minutes")
	sleepAddCmd.Flags().IntVar(&sleepAddAwake, "awake", 0, "Awake minutes")

	sleepDeleteCmd.Flags().BoolVarP(&sleepDeleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
