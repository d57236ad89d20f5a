package logging

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew_Level(t *testing.T) {
	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"WARN", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.InfoLevel},
		{"chatty", log.InfoLevel},
	}
	for _, tt := range tests {
		l := New(Options{Writer: &bytes.Buffer{}, Level: tt.level})
		if got := l.GetLevel(); got != tt.want {
			t.Errorf("New(level=%q).GetLevel() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestNew_WritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Writer: &buf, Level: "info"})

	l.Warn("storage unavailable", "key", "userData")
	l.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "storage unavailable") || !strings.Contains(out, "key=userData") {
		t.Errorf("log output = %q, want message and key=userData", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ttk.log")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()
	if _, err := f.WriteString("line\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
}
