package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-task-tracker/internal/taskstore"
	"github.com/Tiliavir/trivial-task-tracker/internal/timecalc"
	"github.com/Tiliavir/trivial-task-tracker/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "ttk",
	Short: "Trivial Task Tracker – a minimal terminal task tracker",
	Long: `ttk is a single-binary terminal task tracker.
Tasks live in memory for the lifetime of the program; only the login
flag is persisted, in ~/.ttk/.`,
	Args: cobra.NoArgs,
	RunE: runUI,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(loginCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	e := mustOpenEnv()
	defer e.Close()

	m := ui.New(ui.Deps{
		Gate:   e.gate,
		Store:  taskstore.New(),
		IDs:    timecalc.NewIDSource(),
		Logger: e.logger,
	})
	defer m.Close()

	e.logger.Info("starting", "backend", e.cfg.Storage.Backend, "path", e.cfg.Storage.Path)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		e.logger.Error("ui stopped", "err", err)
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
