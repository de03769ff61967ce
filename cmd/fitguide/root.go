package fitguide

import (
	"fmt"
	"os"

	"github.com/saadjs/fitguide-cli/internal/config"
	"github.com/saadjs/fitguide-cli/internal/logger"
	"github.com/spf13/cobra"
)

var (
	apiURL    string
	statePath string
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "fitguide",
	Short: "fitguide tracks meals, water, weight, workouts, and sleep from your terminal",
	Long:  "fitguide is a terminal client for the Fit Guide nutrition API: log what you eat with AI food search, track water, weight, activity, and sleep, and view daily, weekly, and monthly progress.",
}

func Execute() {
	cfg = config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFile)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Fit Guide API base URL (default $FITGUIDE_API_URL)")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "Path to local state database")
}
