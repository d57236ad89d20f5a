package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-task-tracker/internal/session"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a login has been recorded",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	e := mustOpenEnv()
	defer e.Close()

	printStatus(cmd.Context(), os.Stdout, os.Stderr, e.gate)
	return nil
}

// printStatus writes the login state. A storage failure is reported on
// stderr and counts as not logged in.
func printStatus(ctx context.Context, stdout, stderr io.Writer, gate *session.Gate) {
	ok, err := gate.Check(ctx)
	if err != nil {
		fmt.Fprintln(stderr, "warning:", err)
	}
	if ok {
		fmt.Fprintln(stdout, "Logged in.")
		return
	}
	fmt.Fprintln(stdout, "Not logged in.")
}
