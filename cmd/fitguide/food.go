package fitguide

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/saadjs/fitguide-cli/internal/api"
	"github.com/spf13/cobra"
)

var mealChoices = []string{"Breakfast", "Lunch", "Dinner", "Snack"}

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Search, log, and review meals",
}

var foodSearchCmd = &cobra.Command{
	Use:   "search <description>",
	Short: "Estimate calories and macros for a meal description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		return withClient(func(db *sql.DB, client *api.Client) error {
			est, err := client.SearchFood(cmd.Context(), query)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", est.FoodName)
			fmt.Fprintf(out, "  Calories: %d kcal\n", est.EstimatedCalories)
			fmt.Fprintf(out, "  Protein:  %.1f g\n", est.ProteinG)
			fmt.Fprintf(out, "  Carbs:    %.1f g\n", est.CarbsG)
			fmt.Fprintf(out, "  Fats:     %.1f g\n", est.FatsG)
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Log it with: fitguide food log %q --meal <type>\n", query)
			return nil
		})
	},
}

var (
	foodLogMeal     string
	foodLogYes      bool
	foodLogCalories int
	foodLogProtein  float64
	foodLogCarbs    float64
	foodLogFats     float64
)

var foodLogCmd = &cobra.Command{
	Use:   "log <description>",
	Short: "Log a meal, estimating macros unless given explicitly",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !validChoice(foodLogMeal, mealChoices) {
			return fmt.Errorf("--meal must be one of %s", strings.Join(mealChoices, ", "))
		}
		query := strings.Join(args, " ")
		return withClient(func(db *sql.DB, client *api.Client) error {
			in := api.FoodLogInput{
				FoodName: query,
				MealType: foodLogMeal,
				Calories: foodLogCalories,
				Protein:  foodLogProtein,
				Carbs:    foodLogCarbs,
				Fats:     foodLogFats,
			}
			// Without explicit calories the AI estimate fills the entry.
			if !cmd.Flags().Changed("calories") {
				est, err := client.SearchFood(cmd.Context(), query)
				if err != nil {
					return err
				}
				in.FoodName = est.FoodName
				in.Calories = est.EstimatedCalories
				in.Protein = est.ProteinG
				in.Carbs = est.CarbsG
				in.Fats = est.FatsG

				prompt := fmt.Sprintf("Log %s (%d kcal) as %s?", est.FoodName, est.EstimatedCalories, foodLogMeal)
				ok, err := confirm(cmd, foodLogYes, prompt)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}
			log, err := client.LogFood(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("log food: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged [%d] %s: %d kcal (%s)\n", log.ID, log.FoodName, log.Calories, log.MealType)
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's food log",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(db *sql.DB, client *api.Client) error {
			logs, err := client.FoodLogs(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(logs) == 0 {
				fmt.Fprintln(out, "No meals logged today.")
				return nil
			}
			total := 0
			for _, log := range logs {
				fmt.Fprintf(out, "[%d] %-10s %-24s %5d kcal  P%.0f C%.0f F%.0f\n",
					log.ID, log.MealType, log.FoodName, log.Calories, log.Protein, log.Carbs, log.Fats)
				total += log.Calories
			}
			fmt.Fprintf(out, "Total: %d kcal\n", total)
			return nil
		})
	},
}

var foodDeleteYes bool

var foodDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a food log entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("log id", args[0])
		if err != nil {
			return err
		}
		ok, err := confirm(cmd, foodDeleteYes, fmt.Sprintf("Delete food log %d?", id))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		return withClient(func(db *sql.DB, client *api.Client) error {
			if err := client.DeleteFoodLog(cmd.Context(), id); err != nil {
				return fmt.Errorf("delete food log: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted food log %d\n", id)
			return nil
		})
	},
}

var foodSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Meal ideas that fit today's remaining calories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(db *sql.DB, client *api.Client) error {
			suggestions, err := client.DietSuggestions(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(suggestions) == 0 {
				fmt.Fprintln(out, "No suggestions right now.")
				return nil
			}
			for i, s := range suggestions {
				fmt.Fprintf(out, "%d. %s (%d kcal, P%.0f C%.0f F%.0f)\n", i+1, s.FoodName, s.Calories, s.Protein, s.Carbs, s.Fats)
				if s.Reason != "" {
					fmt.Fprintf(out, "   %s\n", s.Reason)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodSearchCmd)
	foodCmd.AddCommand(foodLogCmd)
	foodCmd.AddCommand(foodListCmd)
	foodCmd.AddCommand(foodDeleteCmd)
	foodCmd.AddCommand(foodSuggestCmd)

	foodLogCmd.Flags().StringVar(&foodLogMeal, "meal", "Snack", "Breakfast, Lunch, Dinner, or Snack")
	foodLogCmd.Flags().BoolVarP(&foodLogYes, "yes", "y", false, "Log the estimate without confirming")
	foodLogCmd.Flags().IntVar(&foodLogCalories, "calories", 0, "Skip the estimate and log these calories")
	foodLogCmd.Flags().Float64Var(&foodLogProtein, "protein", 0, "Protein grams (with --calories)")
	foodLogCmd.Flags().Float64Var(&foodLogCarbs, "carbs", 0, "Carb grams (with --calories)")
	foodLogCmd.Flags().Float64Var(&foodLogFats, "fats", 0, "Fat grams (with --calories)")

	foodDeleteCmd.Flags().BoolVarP(&foodDeleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
