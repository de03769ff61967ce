package fitguide

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/saadjs/fitguide-cli/internal/api"
	"github.com/saadjs/fitguide-cli/internal/metrics"
	"github.com/saadjs/fitguide-cli/internal/model"
	"github.com/spf13/cobra"
)

var exerciseChoices = []string{"Cardio", "Strength", "Yoga", "Other"}

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Track workouts and calories burned",
}

var activityShowJSON bool

var activityShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Today's workouts against the burn goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(db *sql.DB, client *api.Client) error {
			// Exercises, profile, and weekly stats are independent reads;
			// fetch them concurrently and fail the whole view on any error.
			var (
				wg      sync.WaitGroup
				summary model.ExerciseSummary
				profile model.Profile
				weekly  model.WeeklyStats

				summaryErr, profileErr, weeklyErr error
			)
			wg.Add(3)
			go func() {
				defer wg.Done()
				summary, summaryErr = client.Exercises(cmd.Context())
			}()
			go func() {
				defer wg.Done()
				profile, profileErr = client.GetProfile(cmd.Context())
			}()
			go func() {
				defer wg.Done()
				weekly, weeklyErr = client.WeeklyStats(cmd.Context())
			}()
			wg.Wait()
			for _, err := range []error{summaryErr, profileErr, weeklyErr} {
				if err != nil {
					return err
				}
			}
			if activityShowJSON {
				return printJSON(cmd, summary)
			}

			out := cmd.OutOrStdout()
			multiplier, _ := strconv.ParseFloat(profile.ActivityLevel, 64)
			goal := metrics.ActiveCalorieGoal(profile.Gender, profile.WeightKg, profile.HeightCm, profile.Age, multiplier)
			fmt.Fprintf(out, "Burned today: %d / %d kcal\n", summary.TotalCalories, goal)
			fmt.Fprintf(out, "  %s\n", progressLine(summary.TotalCalories, goal, 40))

			if len(summary.Logs) == 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "No workouts logged today.")
			} else {
				fmt.Fprintln(out)
				for _, log := range summary.Logs {
					desc := log.Description
					if desc != "" {
						desc = " " + desc
					}
					fmt.Fprintf(out, "  [%d] %-9s %3d min  %4d kcal%s\n",
						log.ID, log.ExerciseType, log.DurationMinutes, log.CaloriesBurned, desc)
				}
			}

			if weekly.Streak > 0 {
				fmt.Fprintln(out)
				fmt.Fprintf(out, "Logging streak: %d day(s)\n", weekly.Streak)
			}
			return nil
		})
	},
}

var (
	activityAddType        string
	activityAddDuration    int
	activityAddDescription string
)

var activityAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a workout (calories burned are estimated server-side)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !validChoice(activityAddType, exerciseChoices) {
			return fmt.Errorf("--type must be one of %s", strings.Join(exerciseChoices, ", "))
		}
		if activityAddDuration <= 0 {
			return fmt.Errorf("--duration must be > 0 minutes")
		}
		return withClient(func(db *sql.DB, client *api.Client) error {
			log, err := client.LogExercise(cmd.Context(), api.ExerciseInput{
				ExerciseType:    activityAddType,
				DurationMinutes: activityAddDuration,
				Description:     strings.TrimSpace(activityAddDescription),
			})
			if err != nil {
				return fmt.Errorf("log exercise: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged [%d] %s, %d min, ~%d kcal burned\n",
				log.ID, log.ExerciseType, log.DurationMinutes, log.CaloriesBurned)
			return nil
		})
	},
}

var activityDeleteYes bool

var activityDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a workout entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("log id", args[0])
		if err != nil {
			return err
		}
		ok, err := confirm(cmd, activityDeleteYes, fmt.Sprintf("Delete workout %d?", id))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		return withClient(func(db *sql.DB, client *api.Client) error {
			if err := client.DeleteExerciseLog(cmd.Context(), id); err != nil {
				return fmt.Errorf("delete workout: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted workout %d\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(activityCmd)
	activityCmd.AddCommand(activityShowCmd)
	activityCmd.AddCommand(activityAddCmd)
	activityCmd.AddCommand(activityDeleteCmd)

	activityShowCmd.Flags().BoolVar(&activityShowJSON, "json", false, "Print the raw summary as JSON")

	activityAddCmd.Flags().StringVar(&activityAddType, "type", "", "Cardio, Strength, Yoga, or Other")
	activityAddCmd.Flags().IntVar(&activityAddDuration, "duration", 0, "Duration in minutes")
	activityAddCmd.Flags().StringVar(&activityAddDescription, "desc", "", "What you did (improves the burn estimate)")

	activityDeleteCmd.Flags().BoolVarP(&activityDeleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
