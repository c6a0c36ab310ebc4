package config

import (
	"os"
	"path/filepath"
	"testing"
)

func withTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	t.Cleanup(func() { os.Setenv("HOME", oldHome) })
	os.Setenv("HOME", home)
	return home
}

func TestLoadDefaults(t *testing.T) {
	withTempHome(t)
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Delimiter != "," {
		t.Fatalf("delimiter = %q, want %q", c.Delimiter, ",")
	}
	if c.Precision != 4 {
		t.Fatalf("precision = %d, want 4", c.Precision)
	}
	if c.WorkspacesDir != "" {
		t.Fatalf("workspaces_dir = %q, want empty", c.WorkspacesDir)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	withTempHome(t)
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	want := &Global{Delimiter: ";", Precision: 2, WorkspacesDir: "/tmp/ws"}
	if err := Save(want, cfgFile); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Delimiter != ";" || got.Precision != 2 || got.WorkspacesDir != "/tmp/ws" {
		t.Fatalf("round trip mismatch: %#v", got)
	}
}

func TestEnvOverridesDefaults(t *testing.T) {
	withTempHome(t)
	t.Setenv("COLSTAT_PRECISION", "6")
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Precision != 6 {
		t.Fatalf("precision = %d, want 6 from env", c.Precision)
	}
}
