package fitguide

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/saadjs/fitguide-cli/internal/api"
	"github.com/saadjs/fitguide-cli/internal/metrics"
	"github.com/saadjs/fitguide-cli/internal/model"
	"github.com/saadjs/fitguide-cli/internal/state"
	"github.com/spf13/cobra"
)

// Choice sets accepted by the API. Activity levels are stored as their
// TDEE multiplier.
var (
	genderChoices   = []string{"Male", "Female"}
	activityChoices = []string{"1.2", "1.375", "1.55", "1.725", "1.9"}
	goalChoices     = []string{"Lose", "Maintain", "Gain"}
)

var activityLabels = map[string]string{
	"1.2":   "Sedentary",
	"1.375": "Lightly Active",
	"1.55":  "Moderately Active",
	"1.725": "Very Active",
	"1.9":   "Super Active",
}

func validChoice(value string, choices []string) bool {
	for _, c := range choices {
		if value == c {
			return true
		}
	}
	return false
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your body profile",
}

var profileShowJSON bool

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show profile and derived daily targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(db *sql.DB, client *api.Client) error {
			p, err := client.GetProfile(cmd.Context())
			if err != nil {
				return err
			}
			if profileShowJSON {
				return printJSON(cmd, p)
			}
			printProfile(cmd, p)
			return nil
		})
	},
}

func printProfile(cmd *cobra.Command, p model.Profile) {
	out := cmd.OutOrStdout()
	activity := p.ActivityLevel
	if label, ok := activityLabels[activity]; ok {
		activity = fmt.Sprintf("%s (%s)", label, activity)
	}
	fmt.Fprintf(out, "Profile for %s\n", p.Username)
	fmt.Fprintf(out, "  Gender:     %s\n", p.Gender)
	fmt.Fprintf(out, "  Age:        %d\n", p.Age)
	fmt.Fprintf(out, "  Height:     %.1f cm\n", p.HeightCm)
	fmt.Fprintf(out, "  Weight:     %.1f kg\n", p.WeightKg)
	fmt.Fprintf(out, "  Activity:   %s\n", activity)
	fmt.Fprintf(out, "  Goal:       %s\n", p.Goal)

	bmi := metrics.BMI(p.WeightKg, p.HeightCm)
	bmr := metrics.BMR(p.Gender, p.WeightKg, p.HeightCm, p.Age)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  BMI:        %.1f (%s)\n", bmi, metrics.BMICategory(bmi))
	fmt.Fprintf(out, "  BMR:        %.0f kcal\n", bmr)
	fmt.Fprintf(out, "  TDEE:       %.0f kcal\n", metrics.TDEE(p.TDEE, bmr))
	fmt.Fprintf(out, "  Target:     %.0f kcal/day\n", p.DailyCalorieTarget)
	fmt.Fprintf(out, "  Reminders:  %s\n", onOff(p.RemindersEnabled))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

var profileSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create or replace the profile interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(db *sql.DB, client *api.Client) error {
			gender, err := promptLine(cmd, "Gender (Male/Female)")
			if err != nil {
				return err
			}
			if !validChoice(gender, genderChoices) {
				return fmt.Errorf("gender must be one of %s", strings.Join(genderChoices, ", "))
			}
			ageStr, err := promptLine(cmd, "Age")
			if err != nil {
				return err
			}
			age, err := strconv.Atoi(ageStr)
			if err != nil || age <= 0 {
				return fmt.Errorf("invalid age %q", ageStr)
			}
			heightStr, err := promptLine(cmd, "Height (cm)")
			if err != nil {
				return err
			}
			height, err := strconv.ParseFloat(heightStr, 64)
			if err != nil || height <= 0 {
				return fmt.Errorf("invalid height %q", heightStr)
			}
			weightStr, err := promptLine(cmd, "Weight (kg)")
			if err != nil {
				return err
			}
			weight, err := strconv.ParseFloat(weightStr, 64)
			if err != nil || weight <= 0 {
				return fmt.Errorf("invalid weight %q", weightStr)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Activity levels:")
			for _, c := range activityChoices {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-5s %s\n", c, activityLabels[c])
			}
			activity, err := promptLine(cmd, "Activity level")
			if err != nil {
				return err
			}
			if !validChoice(activity, activityChoices) {
				return fmt.Errorf("activity level must be one of %s", strings.Join(activityChoices, ", "))
			}
			goal, err := promptLine(cmd, "Goal (Lose/Maintain/Gain)")
			if err != nil {
				return err
			}
			if !validChoice(goal, goalChoices) {
				return fmt.Errorf("goal must be one of %s", strings.Join(goalChoices, ", "))
			}

			p, err := client.UpdateProfile(cmd.Context(), api.ProfileUpdate{
				Gender:        &gender,
				Age:           &age,
				HeightCm:      &height,
				WeightKg:      &weight,
				ActivityLevel: &activity,
				Goal:          &goal,
			})
			if err != nil {
				return fmt.Errorf("save profile: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile saved.")
			printProfile(cmd, p)
			return nil
		})
	},
}

var (
	updateGender   string
	updateAge      int
	updateHeight   float64
	updateWeight   float64
	updateActivity string
	updateGoal     string
)

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Change individual profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		var in api.ProfileUpdate
		if cmd.Flags().Changed("gender") {
			if !validChoice(updateGender, genderChoices) {
				return fmt.Errorf("gender must be one of %s", strings.Join(genderChoices, ", "))
			}
			in.Gender = &updateGender
		}
		if cmd.Flags().Changed("age") {
			if updateAge <= 0 {
				return fmt.Errorf("age must be > 0")
			}
			in.Age = &updateAge
		}
		if cmd.Flags().Changed("height") {
			if updateHeight <= 0 {
				return fmt.Errorf("height must be > 0")
			}
			in.HeightCm = &updateHeight
		}
		if cmd.Flags().Changed("weight") {
			if updateWeight <= 0 {
				return fmt.Errorf("weight must be > 0")
			}
			in.WeightKg = &updateWeight
		}
		if cmd.Flags().Changed("activity") {
			if !validChoice(updateActivity, activityChoices) {
				return fmt.Errorf("activity level must be one of %s", strings.Join(activityChoices, ", "))
			}
			in.ActivityLevel = &updateActivity
		}
		if cmd.Flags().Changed("goal") {
			if !validChoice(updateGoal, goalChoices) {
				return fmt.Errorf("goal must be one of %s", strings.Join(goalChoices, ", "))
			}
			in.Goal = &updateGoal
		}
		if in == (api.ProfileUpdate{}) {
			return fmt.Errorf("nothing to update (see --help for flags)")
		}
		return withClient(func(db *sql.DB, client *api.Client) error {
			p, err := client.UpdateProfile(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("update profile: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated.")
			printProfile(cmd, p)
			return nil
		})
	},
}

var profileStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show BMI, BMR, TDEE, and macro targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(db *sql.DB, client *api.Client) error {
			p, err := client.GetProfile(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			bmi := metrics.BMI(p.WeightKg, p.HeightCm)
			bmr := metrics.BMR(p.Gender, p.WeightKg, p.HeightCm, p.Age)
			tdee := metrics.TDEE(p.TDEE, bmr)
			targets := metrics.MacroTargetsFor(p.DailyCalorieTarget)
			fmt.Fprintf(out, "BMI:    %.1f (%s)\n", bmi, metrics.BMICategory(bmi))
			fmt.Fprintf(out, "BMR:    %.0f kcal\n", bmr)
			fmt.Fprintf(out, "TDEE:   %.0f kcal\n", tdee)
			fmt.Fprintf(out, "Target: %.0f kcal/day (P %dg / C %dg / F %dg)\n",
				p.DailyCalorieTarget, targets.ProteinG, targets.CarbsG, targets.FatsG)
			return nil
		})
	},
}

var profileRemindersCmd = &cobra.Command{
	Use:       "reminders on|off",
	Short:     "Toggle meal log reminders",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var enabled bool
		switch args[0] {
		case "on":
			enabled = true
		case "off":
			enabled = false
		default:
			return fmt.Errorf("argument must be on or off")
		}
		return withClient(func(db *sql.DB, client *api.Client) error {
			// Local flag flips immediately so `remind run` picks it up,
			// and rolls back if the server rejects the write.
			err := state.OptimisticSet(db, state.KeyRemindersEnabled, strconv.FormatBool(enabled), func() error {
				_, err := client.UpdateProfile(cmd.Context(), api.ProfileUpdate{RemindersEnabled: &enabled})
				return err
			})
			if err != nil {
				return fmt.Errorf("toggle reminders: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Meal reminders %s.\n", onOff(enabled))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetupCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileCmd.AddCommand(profileStatsCmd)
	profileCmd.AddCommand(profileRemindersCmd)

	profileShowCmd.Flags().BoolVar(&profileShowJSON, "json", false, "Print the raw profile as JSON")

	profileUpdateCmd.Flags().StringVar(&updateGender, "gender", "", "Male or Female")
	profileUpdateCmd.Flags().IntVar(&updateAge, "age", 0, "Age in years")
	profileUpdateCmd.Flags().Float64Var(&updateHeight, "height", 0, "Height in cm")
	profileUpdateCmd.Flags().Float64Var(&updateWeight, "weight", 0, "Weight in kg")
	profileUpdateCmd.Flags().StringVar(&updateActivity, "activity", "", "Activity multiplier (1.2, 1.375, 1.55, 1.725, 1.9)")
	profileUpdateCmd.Flags().StringVar(&updateGoal, "goal", "", "Lose, Maintain, or Gain")
}
