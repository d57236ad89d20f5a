package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/Tiliavir/trivial-task-tracker/internal/kv"
)

// Config is the root configuration for ttk, stored in ~/.ttk/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	Storage StorageConfig `json:"storage"`
	Log     LogConfig     `json:"log"`
}

// StorageConfig selects where the session flag is persisted.
type StorageConfig struct {
	// Backend is "file" (JSON file) or "sqlite".
	Backend string `json:"backend"`
	// Path is the data file. Empty = backend default inside ~/.ttk.
	Path string `json:"path"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `json:"level"`
	Path  string `json:"path"`
}

const (
	DefaultBackend  = kv.BackendFile
	DefaultLogLevel = "WARN"
)

// Environment variables; they win over both the env file and config.json.
const (
	EnvStorageBackend = "TTK_STORAGE_BACKEND"
	EnvStoragePath    = "TTK_STORAGE_PATH"
	EnvLogLevel       = "TTK_LOG_LEVEL"
	EnvLogPath        = "TTK_LOG_PATH"
)

const (
	configFileName = "config.json"
	envFileName    = "ttk.env"
	logFileName    = "ttk.log"
)

// defaultConfig returns a Config pre-filled with defaults for base.
func defaultConfig(base string) Config {
	return Config{
		Storage: StorageConfig{
			Backend: DefaultBackend,
			Path:    kv.DefaultPath(base, DefaultBackend),
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
			Path:  filepath.Join(base, logFileName),
		},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// ttk configuration – ~/.ttk/config.json
//
// All settings are optional. Environment variables (TTK_STORAGE_BACKEND,
// TTK_STORAGE_PATH, TTK_LOG_LEVEL, TTK_LOG_PATH) and ~/.ttk/ttk.env override
// the values below.
{
  // ── Login storage ────────────────────────────────────────────────────────
  "storage": {
    // "file"   – a JSON file, ~/.ttk/storage.json (default)
    // "sqlite" – a SQLite database, ~/.ttk/ttk.db
    "backend": "file",

    // Data file location. Leave empty for the backend default.
    "path": ""
  },

  // ── Logging ──────────────────────────────────────────────────────────────
  "log": {
    // DEBUG, INFO, WARN or ERROR.
    "level": "WARN",

    // Leave empty for ~/.ttk/ttk.log.
    "path": ""
  }
}
`

// BaseDir returns the directory holding config and data (~/.ttk).
func BaseDir() (string, error) {
	return kv.BaseDir()
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.ttk/config.json. See LoadFrom.
func Load() (Config, error) {
	base, err := BaseDir()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(base)
}

// LoadFrom reads base/config.json, creating it with annotated defaults on
// first run, then applies base/ttk.env and the process environment on top.
// When config.json cannot be read or parsed, the error is returned together
// with the defaults overlaid by the env file and the environment.
func LoadFrom(base string) (Config, error) {
	path := filepath.Join(base, configFileName)
	defaults := defaultConfig(base)

	// A broken config file is reported but the env file and the environment
	// still apply on top of the defaults.
	cfg := Config{}
	var fileErr error
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
	case err != nil:
		fileErr = fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := json.Unmarshal(stripLineComments(data), &cfg); err != nil {
			cfg = Config{}
			fileErr = fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
		}
	}

	envFile, err := readEnvFile(filepath.Join(base, envFileName))
	if err != nil {
		return defaults, err
	}
	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return envFile[key]
	}

	cfg.Storage.Backend = coalesce(lookup(EnvStorageBackend), cfg.Storage.Backend, DefaultBackend)
	cfg.Storage.Path = coalesce(lookup(EnvStoragePath), cfg.Storage.Path, kv.DefaultPath(base, cfg.Storage.Backend))
	cfg.Log.Level = coalesce(lookup(EnvLogLevel), cfg.Log.Level, defaults.Log.Level)
	cfg.Log.Path = coalesce(lookup(EnvLogPath), cfg.Log.Path, defaults.Log.Path)

	return cfg, fileErr
}

// readEnvFile parses an optional KEY=value file without touching the
// process environment.
func readEnvFile(path string) (map[string]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	vals, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return vals, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

func coalesce(args ...string) string {
	for _, s := range args {
		if s != "" {
			return s
		}
	}
	return ""
}
