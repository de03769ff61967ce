package fitguide

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Password reset flows",
}

var passwdRequestEmail string

var passwdRequestCmd = &cobra.Command{
	Use:   "request",
	Short: "Email a password reset link",
	RunE: func(cmd *cobra.Command, args []string) error {
		email := strings.TrimSpace(passwdRequestEmail)
		if email == "" {
			var err error
			email, err = promptLine(cmd, "Email")
			if err != nil {
				return err
			}
		}
		if email == "" {
			return fmt.Errorf("email is required")
		}
		msg, err := publicClient().RequestPasswordReset(cmd.Context(), email)
		if err != nil {
			return fmt.Errorf("request password reset: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

var (
	passwdConfirmUID   string
	passwdConfirmToken string
)

var passwdConfirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Set a new password using the emailed uid and token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if passwdConfirmUID == "" || passwdConfirmToken == "" {
			return fmt.Errorf("--uid and --token from the reset email are required")
		}
		newPassword, err := promptLine(cmd, "New password")
		if err != nil {
			return err
		}
		confirmPassword, err := promptLine(cmd, "Confirm password")
		if err != nil {
			return err
		}
		if newPassword == "" {
			return fmt.Errorf("password is required")
		}
		if newPassword != confirmPassword {
			return fmt.Errorf("passwords do not match")
		}
		msg, err := publicClient().ConfirmPasswordReset(cmd.Context(), passwdConfirmUID, passwdConfirmToken, newPassword, confirmPassword)
		if err != nil {
			return fmt.Errorf("confirm password reset: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(passwdCmd)
	passwdCmd.AddCommand(passwdRequestCmd)
	passwdCmd.AddCommand(passwdConfirmCmd)

	passwdRequestCmd.Flags().StringVar(&passwdRequestEmail, "email", "", "Account email")
	passwdConfirmCmd.Flags().StringVar(&passwdConfirmUID, "uid", "", "Uid from the reset link")
	passwdConfirmCmd.Flags().StringVar(&passwdConfirmToken, "token", "", "Token from the reset link")
}
