package fitguide

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/saadjs/fitguide-cli/internal/api"
	"github.com/saadjs/fitguide-cli/internal/state"
	"github.com/spf13/cobra"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		username := strings.TrimSpace(loginUsername)
		if username == "" {
			var err error
			username, err = promptLine(cmd, "Username")
			if err != nil {
				return err
			}
		}
		password := loginPassword
		if password == "" {
			var err error
			password, err = promptLine(cmd, "Password")
			if err != nil {
				return err
			}
		}
		if username == "" || password == "" {
			return fmt.Errorf("username and password are required")
		}

		sess, err := publicClient().Login(cmd.Context(), username, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		return withState(func(db *sql.DB) error {
			if err := state.SaveSession(db, sess.Token, sess.Username); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", sess.Username)
			return nil
		})
	},
}

var (
	registerUsername string
	registerEmail    string
	registerPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		username := strings.TrimSpace(registerUsername)
		if username == "" {
			var err error
			username, err = promptLine(cmd, "Username")
			if err != nil {
				return err
			}
		}
		password := registerPassword
		if password == "" {
			var err error
			password, err = promptLine(cmd, "Password")
			if err != nil {
				return err
			}
		}
		if username == "" || password == "" {
			return fmt.Errorf("username and password are required")
		}

		sess, err := publicClient().Register(cmd.Context(), username, strings.TrimSpace(registerEmail), password)
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}
		return withState(func(db *sql.DB) error {
			if err := state.SaveSession(db, sess.Token, sess.Username); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account created. Logged in as %s\n", sess.Username)
			fmt.Fprintln(cmd.OutOrStdout(), "Next: run `fitguide profile setup` to unlock tracking.")
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Invalidate the session and clear all local state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(func(db *sql.DB) error {
			sess, ok, err := state.CurrentSession(db)
			if err != nil {
				return err
			}
			if ok {
				// Best effort: server-side token delete may fail, local
				// state is cleared either way.
				if err := api.New(resolveAPIURL(), sess.Token).Logout(cmd.Context()); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: remote logout failed: %v\n", err)
				}
			}
			if err := state.ClearAll(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)

	loginCmd.Flags().StringVar(&loginUsername, "username", "", "Account username")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")

	registerCmd.Flags().StringVar(&registerUsername, "username", "", "Account username")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email for password resets (optional)")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password (prompted when omitted)")
}
