package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-task-tracker/internal/session"
	"github.com/Tiliavir/trivial-task-tracker/internal/validate"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Record a login without opening the UI",
	Args:  cobra.NoArgs,
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password (at least 8 characters)")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	e := mustOpenEnv()
	code := login(cmd.Context(), os.Stdout, os.Stderr, e.gate, loginEmail, loginPassword)
	e.Close()
	if code != 0 {
		os.Exit(code)
	}
	return nil
}

// login validates the credentials like the auth screen does and records the
// login. It returns the process exit code. Failing to store the record is a
// warning only.
func login(ctx context.Context, stdout, stderr io.Writer, gate *session.Gate, email, password string) int {
	if !validate.LoginForm(email, password) {
		if !validate.Email(email) {
			fmt.Fprintln(stderr, validate.EmailMessage)
		}
		if !validate.Password(password) {
			fmt.Fprintln(stderr, validate.PasswordMessage)
		}
		return 1
	}

	if err := gate.RecordLogin(ctx, email, password); err != nil {
		fmt.Fprintln(stderr, "warning: login not saved:", err)
	}
	fmt.Fprintf(stdout, "Logged in as %s.\n", email)
	return 0
}
