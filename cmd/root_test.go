package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// withConfig points HOME at a temp dir holding the given config.yaml.
func withConfig(t *testing.T, content string) string {
	t.Helper()
	home := t.TempDir()
	dir := filepath.Join(home, ".config", "bm")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv("HOME", home)

	logger := slog.Default()
	t.Cleanup(func() { slog.SetDefault(logger) })
	return home
}

func TestOpenStore_MalformedConfig(t *testing.T) {
	withConfig(t, "storage: [unterminated\n")

	if _, err := openStore(); err == nil {
		t.Error("openStore() error = nil, want config parse error")
	}
}

func TestOpenStore_StoragePath(t *testing.T) {
	home := withConfig(t, "storage: ~/marks.json\n")

	s, err := openStore()
	if err != nil {
		t.Fatalf("openStore() error = %v", err)
	}
	if want := filepath.Join(home, "marks.json"); s.Path() != want {
		t.Errorf("Path() = %v, want %v", s.Path(), want)
	}

	fileFlag = filepath.Join(home, "flag.json")
	t.Cleanup(func() { fileFlag = "" })

	s, err = openStore()
	if err != nil {
		t.Fatalf("openStore() error = %v", err)
	}
	if s.Path() != fileFlag {
		t.Errorf("Path() = %v, want %v", s.Path(), fileFlag)
	}
}

func TestCommandsWithoutStore_IgnoreMalformedConfig(t *testing.T) {
	withConfig(t, "log_level: loud\n")
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	for _, args := range [][]string{{"version"}, {"shell", "bash"}} {
		rootCmd.SetArgs(args)
		if err := rootCmd.Execute(); err != nil {
			t.Errorf("Execute(%v) error = %v", args, err)
		}
	}
}
