// ABOUTME: Tests for config loading, environment overrides, and the storage factory
// ABOUTME: Redirects XDG directories into temp dirs so no real config is touched

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/harper/hobbies/internal/storage"
)

func isolate(t *testing.T) (configHome, dataHome string) {
	t.Helper()
	configHome = t.TempDir()
	dataHome = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("HOBBIES_BACKEND", "")
	t.Setenv("HOBBIES_DATA_DIR", "")
	return configHome, dataHome
}

func TestLoadCreatesDefaultConfig(t *testing.T) {
	configHome, dataHome := isolate(t)

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GetBackend() != BackendSQLite {
		t.Errorf("expected sqlite default, got %s", cfg.GetBackend())
	}
	if cfg.GetDataDir() != filepath.Join(dataHome, "hobbies") {
		t.Errorf("unexpected data dir %s", cfg.GetDataDir())
	}
	if _, err := os.Stat(filepath.Join(configHome, "hobbies", "config.json")); err != nil {
		t.Errorf("expected config file to be written: %v", err)
	}
}

func TestLoadLogsUnsavableDefault(t *testing.T) {
	configHome, _ := isolate(t)
	// A file where the config directory should be makes Save fail.
	if err := os.WriteFile(filepath.Join(configHome, "hobbies"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	cfg, err := Load(zerolog.New(&buf))
	if err != nil {
		t.Fatalf("Load should not fail when the default cannot be saved: %v", err)
	}
	if cfg.GetBackend() != BackendSQLite {
		t.Errorf("expected sqlite default, got %s", cfg.GetBackend())
	}
	if !strings.Contains(buf.String(), `"level":"warn"`) || !strings.Contains(buf.String(), "could not save default config") {
		t.Errorf("expected a warning in the log, got %q", buf.String())
	}
}

func TestFirstRunKeepsExistingFileCatalogs(t *testing.T) {
	_, dataHome := isolate(t)
	dir := filepath.Join(dataHome, "hobbies")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "books.json"), []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GetBackend() != BackendFile {
		t.Errorf("expected file backend for existing catalogs, got %s", cfg.GetBackend())
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	isolate(t)
	cfg := &Config{Backend: BackendFile, DataDir: "/tmp/somewhere"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Backend != BackendFile || loaded.DataDir != "/tmp/somewhere" {
		t.Errorf("unexpected config %+v", loaded)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)
	if err := (&Config{Backend: BackendSQLite}).Save(); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOBBIES_BACKEND", "memory")
	t.Setenv("HOBBIES_DATA_DIR", "/srv/hobbies")

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GetBackend() != BackendMemory {
		t.Errorf("expected env backend, got %s", cfg.GetBackend())
	}
	if cfg.GetDataDir() != "/srv/hobbies" {
		t.Errorf("expected env data dir, got %s", cfg.GetDataDir())
	}
}

func TestLoadRejectsCorruptConfig(t *testing.T) {
	configHome, _ := isolate(t)
	path := filepath.Join(configHome, "hobbies", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(zerolog.Nop()); err == nil {
		t.Error("expected parse error")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/abs/path", "/abs/path"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpenStorage(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		backend string
		check   func(storage.KV) bool
	}{
		{BackendSQLite, func(kv storage.KV) bool { _, ok := kv.(*storage.SQLiteStore); return ok }},
		{BackendFile, func(kv storage.KV) bool { _, ok := kv.(*storage.FileStore); return ok }},
		{BackendMemory, func(kv storage.KV) bool { _, ok := kv.(*storage.MemoryStore); return ok }},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			cfg := &Config{Backend: tt.backend, DataDir: dir}
			kv, err := cfg.OpenStorage()
			if err != nil {
				t.Fatalf("OpenStorage failed: %v", err)
			}
			defer kv.Close()
			if !tt.check(kv) {
				t.Errorf("unexpected store type %T", kv)
			}
		})
	}

	if _, err := (&Config{Backend: "postgres"}).OpenStorage(); err == nil {
		t.Error("expected error for unknown backend")
	}
}
