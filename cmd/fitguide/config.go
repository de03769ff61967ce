package fitguide

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/saadjs/fitguide-cli/internal/state"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Local preferences",
}

var configThemeCmd = &cobra.Command{
	Use:       "theme [light|dark]",
	Short:     "Get or set the display theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(db *sql.DB) error {
			if len(args) == 0 {
				theme, ok, err := state.Get(db, state.KeyTheme)
				if err != nil {
					return err
				}
				if !ok {
					theme = "light"
				}
				fmt.Fprintln(cmd.OutOrStdout(), theme)
				return nil
			}
			theme := args[0]
			if theme != "light" && theme != "dark" {
				return fmt.Errorf("theme must be light or dark")
			}
			if err := state.Set(db, state.KeyTheme, theme); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", theme)
			return nil
		})
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Dump stored local state (token redacted)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(db *sql.DB) error {
			entries, err := state.List(db)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(entries))
			for k := range entries {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			out := cmd.OutOrStdout()
			if len(keys) == 0 {
				fmt.Fprintln(out, "No local state.")
				return nil
			}
			for _, k := range keys {
				v := entries[k]
				if k == state.KeyToken {
					v = "<redacted>"
				}
				fmt.Fprintf(out, "%s=%s\n", k, v)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configThemeCmd)
	configCmd.AddCommand(configShowCmd)
}
