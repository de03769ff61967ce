package fitguide

import (
	"database/sql"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/saadjs/fitguide-cli/internal/api"
	"github.com/saadjs/fitguide-cli/internal/reminder"
	"github.com/saadjs/fitguide-cli/internal/state"
	"github.com/spf13/cobra"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Meal log reminders",
}

var remindRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the reminder loop until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(db *sql.DB, client *api.Client) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			sched := &reminder.Scheduler{
				DB:       db,
				Client:   client,
				Notifier: reminder.TerminalNotifier{Out: cmd.OutOrStdout()},
			}
			next := sched.NextFire(time.Now())
			fmt.Fprintf(cmd.OutOrStdout(), "Reminder loop running. Next check at %s. Ctrl-C to stop.\n",
				next.Format("15:04 Mon Jan 2"))
			if err := sched.Run(ctx); err != nil {
				return fmt.Errorf("reminder loop: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Reminder loop stopped.")
			return nil
		})
	},
}

var remindStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show reminder settings and the next check time",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(db *sql.DB, client *api.Client) error {
			profile, err := client.GetProfile(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Reminders: %s\n", onOff(profile.RemindersEnabled))

			sched := &reminder.Scheduler{}
			fmt.Fprintf(out, "Next check: %s\n", sched.NextFire(time.Now()).Format("15:04 Mon Jan 2"))

			last, ok, err := state.Get(db, state.KeyLastReminder)
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintf(out, "Last fired: %s\n", last)
			} else {
				fmt.Fprintln(out, "Last fired: never")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(remindCmd)
	remindCmd.AddCommand(remindRunCmd)
	remindCmd.AddCommand(remindStatusCmd)
}
