package kv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tiliavir/trivial-task-tracker/internal/kv"
)

func TestFileStoreGetMissing(t *testing.T) {
	s := kv.NewFileStore(filepath.Join(t.TempDir(), "storage.json"))
	v, ok, err := s.Get(context.Background(), "userData")
	if err != nil {
		t.Fatalf("Get on missing file: %v", err)
	}
	if ok || v != nil {
		t.Errorf("Get = (%q, %v), want (nil, false)", v, ok)
	}
}

func TestFileStoreSetAndGet(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "nested", "storage.json")
	s := kv.NewFileStore(path)
	ctx := context.Background()

	if err := s.Set(ctx, "userData", []byte(`{"email":"a@b.com"}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "other", []byte("x")); err != nil {
		t.Fatalf("Set other: %v", err)
	}
	if err := s.Set(ctx, "userData", []byte(`{"email":"c@d.com"}`)); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}

	// A fresh store reads what the first one wrote.
	reopened := kv.NewFileStore(path)
	v, ok, err := reopened.Get(ctx, "userData")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || string(v) != `{"email":"c@d.com"}` {
		t.Errorf("Get = (%q, %v), want overwritten value", v, ok)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after atomic write")
	}
}

func TestFileStoreCorruptBackup(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "storage.json")
	if err := os.WriteFile(path, []byte("{bad json"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := kv.NewFileStore(path)
	if _, _, err := s.Get(context.Background(), "userData"); err == nil {
		t.Fatal("expected error for corrupt JSON, got nil")
	}
	if _, err := os.Stat(path + ".corrupt"); os.IsNotExist(err) {
		t.Error("expected backup file to exist after corrupt JSON")
	}
}

func TestFileStoreCancelledContext(t *testing.T) {
	s := kv.NewFileStore(filepath.Join(t.TempDir(), "storage.json"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Set(ctx, "k", []byte("v")); err == nil {
		t.Error("Set with cancelled context: expected error")
	}
	if _, _, err := s.Get(ctx, "k"); err == nil {
		t.Error("Get with cancelled context: expected error")
	}
}

func TestSQLiteStoreSetAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ttk.db")
	ctx := context.Background()

	s, err := kv.OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}

	if _, ok, err := s.Get(ctx, "userData"); err != nil || ok {
		t.Fatalf("Get on empty db = (ok=%v, err=%v), want (false, nil)", ok, err)
	}
	if err := s.Set(ctx, "userData", []byte("first")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "userData", []byte("second")); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopening runs migrations again without error and keeps the data.
	s, err = kv.OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	v, ok, err := s.Get(ctx, "userData")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || string(v) != "second" {
		t.Errorf("Get = (%q, %v), want (%q, true)", v, ok, "second")
	}
}

func TestOpen(t *testing.T) {
	base := t.TempDir()
	tests := []struct {
		backend string
		wantErr bool
	}{
		{"", false},
		{kv.BackendFile, false},
		{kv.BackendSQLite, false},
		{"redis", true},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			s, err := kv.Open(tt.backend, kv.DefaultPath(base, tt.backend))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Open(%q): expected error", tt.backend)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open(%q): %v", tt.backend, err)
			}
			defer s.Close()
			if err := s.Set(context.Background(), "k", []byte("v")); err != nil {
				t.Errorf("Set: %v", err)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	if got := kv.DefaultPath("/x", kv.BackendSQLite); got != filepath.Join("/x", "ttk.db") {
		t.Errorf("DefaultPath(sqlite) = %q", got)
	}
	if got := kv.DefaultPath("/x", kv.BackendFile); got != filepath.Join("/x", "storage.json") {
		t.Errorf("DefaultPath(file) = %q", got)
	}
}
