package fitguide

import (
	"bufio"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/saadjs/fitguide-cli/internal/api"
	"github.com/saadjs/fitguide-cli/internal/app"
	"github.com/saadjs/fitguide-cli/internal/state"
	"github.com/spf13/cobra"
)

func resolveStatePath() (string, error) {
	if statePath != "" {
		return statePath, nil
	}
	if cfg.StatePath != "" {
		return cfg.StatePath, nil
	}
	return app.DefaultStatePath()
}

func resolveAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if cfg.APIBaseURL != "" {
		return cfg.APIBaseURL
	}
	return api.DefaultBaseURL
}

func withState(run func(*sql.DB) error) error {
	path, err := resolveStatePath()
	if err != nil {
		return err
	}
	if err := app.EnsureStateDir(path); err != nil {
		return err
	}
	db, err := state.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := state.ApplyMigrations(db); err != nil {
		return err
	}
	return run(db)
}

// withClient is the auth gate: every protected command resolves the stored
// session first and refuses to proceed without one.
func withClient(run func(*sql.DB, *api.Client) error) error {
	return withState(func(db *sql.DB) error {
		sess, ok, err := state.CurrentSession(db)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("not logged in (run `fitguide login`)")
		}
		return run(db, api.New(resolveAPIURL(), sess.Token))
	})
}

func publicClient() *api.Client {
	return api.New(resolveAPIURL(), "")
}

// confirm asks before destructive actions unless the command's --yes flag
// already answered.
func confirm(cmd *cobra.Command, assumeYes bool, prompt string) (bool, error) {
	if assumeYes {
		return true, nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func promptLine(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ", label)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read %s: %w", label, err)
	}
	return strings.TrimSpace(line), nil
}

func parseInt64Arg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
