package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/Tiliavir/trivial-task-tracker/internal/config"
	"github.com/Tiliavir/trivial-task-tracker/internal/kv"
	"github.com/Tiliavir/trivial-task-tracker/internal/logging"
	"github.com/Tiliavir/trivial-task-tracker/internal/session"
)

// env bundles what every command needs: config, logger and the session gate.
type env struct {
	cfg     config.Config
	logger  *log.Logger
	logFile *os.File
	store   kv.Store
	gate    *session.Gate
}

// mustOpenEnv loads the config and opens logging and storage, exiting with
// status 2 when that is impossible. A broken config file only warns.
func mustOpenEnv() *env {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	e, err := openEnv(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return e
}

func openEnv(cfg config.Config) (*env, error) {
	f, err := logging.OpenFile(cfg.Log.Path)
	if err != nil {
		return nil, err
	}
	logger := logging.New(logging.Options{Writer: f, Level: cfg.Log.Level})

	store, err := kv.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		logger.Error("failed storage open", "backend", cfg.Storage.Backend, "err", err)
		_ = f.Close()
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	return &env{
		cfg:     cfg,
		logger:  logger,
		logFile: f,
		store:   store,
		gate:    session.NewGate(store, logger),
	}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.logger.Warn("closing storage", "err", err)
	}
	_ = e.logFile.Close()
}
