package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// inTempDir moves the test into an empty directory with a throwaway HOME
// so no real config files leak in.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
	t.Setenv("HOME", filepath.Join(dir, "home"))
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("APPDATA", "")
	return dir
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestLoadDefaults(t *testing.T) {
	inTempDir(t)

	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Output: got %q, want %q", cfg.Output, DefaultOutput)
	}
	if cfg.MaxAnomalyRatio != DefaultMaxAnomalyRatio {
		t.Errorf("MaxAnomalyRatio: got %v, want %v", cfg.MaxAnomalyRatio, DefaultMaxAnomalyRatio)
	}
	if cfg.Verbose || cfg.ValidateOutput || cfg.KeepDeleted || cfg.DryRun {
		t.Errorf("boolean defaults should be false: %+v", cfg)
	}
}

func TestLoadProjectConfigFile(t *testing.T) {
	dir := inTempDir(t)

	content := "output = \"from-file.json\"\nverbose = true\nmax_anomaly_ratio = 0.5\n"
	if err := os.WriteFile(filepath.Join(dir, "gt2sp.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output != "from-file.json" {
		t.Errorf("Output: got %q, want from-file.json", cfg.Output)
	}
	if !cfg.Verbose {
		t.Error("Verbose should come from the file")
	}
	if cfg.MaxAnomalyRatio != 0.5 {
		t.Errorf("MaxAnomalyRatio: got %v, want 0.5", cfg.MaxAnomalyRatio)
	}
}

func TestLoadHiddenProjectConfigFile(t *testing.T) {
	dir := inTempDir(t)

	if err := os.WriteFile(filepath.Join(dir, ".gt2sp.toml"), []byte("output = \"hidden.json\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output != "hidden.json" {
		t.Errorf("Output: got %q, want hidden.json", cfg.Output)
	}
}

func TestLoadUserConfigFile(t *testing.T) {
	dir := inTempDir(t)

	userDir := filepath.Join(dir, "home", ".gt2sp")
	if err := os.MkdirAll(userDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "gt2sp.toml"), []byte("theme_color = \"#ff0000\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ThemeColor != "#ff0000" {
		t.Errorf("ThemeColor: got %q, want #ff0000", cfg.ThemeColor)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := inTempDir(t)

	if err := os.WriteFile(filepath.Join(dir, "gt2sp.toml"), []byte("output = \"from-file.json\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GT2SP_OUTPUT", "from-env.json")
	t.Setenv("GT2SP_KEEP_DELETED", "yes")
	t.Setenv("GT2SP_MAX_ANOMALY_RATIO", "0.25")

	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output != "from-env.json" {
		t.Errorf("Output: got %q, want from-env.json", cfg.Output)
	}
	if !cfg.KeepDeleted {
		t.Error("KeepDeleted should come from the environment")
	}
	if cfg.MaxAnomalyRatio != 0.25 {
		t.Errorf("MaxAnomalyRatio: got %v, want 0.25", cfg.MaxAnomalyRatio)
	}
}

func TestFlagsOverrideEverything(t *testing.T) {
	dir := inTempDir(t)

	if err := os.WriteFile(filepath.Join(dir, "gt2sp.toml"), []byte("output = \"from-file.json\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GT2SP_OUTPUT", "from-env.json")

	cfg, err := Load(newFlagSet(), []string{"-o", "from-flag.json", "-verbose", "-max-anomaly-ratio", "0.9"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output != "from-flag.json" {
		t.Errorf("Output: got %q, want from-flag.json", cfg.Output)
	}
	if !cfg.Verbose {
		t.Error("Verbose flag should be set")
	}
	if cfg.MaxAnomalyRatio != 0.9 {
		t.Errorf("MaxAnomalyRatio: got %v, want 0.9", cfg.MaxAnomalyRatio)
	}
}

func TestLoadRejectsMalformedConfigFile(t *testing.T) {
	dir := inTempDir(t)

	if err := os.WriteFile(filepath.Join(dir, "gt2sp.toml"), []byte("output = [broken\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(newFlagSet(), nil); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestBoolFromString(t *testing.T) {
	truthy := []string{"1", "true", "TRUE", " yes ", "on"}
	for _, s := range truthy {
		if !boolFromString(s) {
			t.Errorf("boolFromString(%q) = false, want true", s)
		}
	}
	falsy := []string{"0", "false", "no", "off", "", "maybe"}
	for _, s := range falsy {
		if boolFromString(s) {
			t.Errorf("boolFromString(%q) = true, want false", s)
		}
	}
}
