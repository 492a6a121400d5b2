package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/j57n-3co-x-5735/GoogleTasksToSuperProductivity/internal/convert"
	"github.com/j57n-3co-x-5735/GoogleTasksToSuperProductivity/internal/sp"
)

const testExport = `{
  "kind": "tasks#taskLists",
  "items": [
    {
      "id": "list-1",
      "title": "Groceries",
      "items": [
        {"id": "1", "title": "Milk", "status": "needsAction", "updated": "2024-01-02T08:30:00.000Z"},
        {"id": "2", "title": "Eggs", "status": "completed", "completed": "2024-01-01T10:00:00.000Z", "updated": "2024-01-02T08:30:00.000Z"}
      ]
    }
  ]
}`

// setup moves the test into an empty directory with a throwaway HOME and
// writes a Takeout fixture there.
func setup(t *testing.T) {
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
	if err := os.WriteFile("Tasks.json", []byte(testExport), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func readBackup(t *testing.T, path string) *sp.Backup {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var b sp.Backup
	if err := json.Unmarshal(raw, &b); err != nil {
		t.Fatalf("parse output: %v", err)
	}
	return &b
}

func TestRunConvert(t *testing.T) {
	setup(t)

	err := Run(context.Background(), []string{"convert", "Tasks.json", "-o", "out.json", "-validate"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	b := readBackup(t, "out.json")
	if b.CrossModelVersion != sp.CrossModelVersion {
		t.Errorf("crossModelVersion: got %v, want %v", b.CrossModelVersion, sp.CrossModelVersion)
	}
	if len(b.Data.Project.IDs) != 1 {
		t.Errorf("projects: got %d, want 1", len(b.Data.Project.IDs))
	}
	if len(b.Data.Task.IDs) != 2 {
		t.Errorf("tasks: got %d, want 2", len(b.Data.Task.IDs))
	}
	if errs := sp.Check(b); len(errs) != 0 {
		t.Errorf("output consistency: %v", errs)
	}
}

func TestRunDefaultCommandIsConvert(t *testing.T) {
	setup(t)

	// A bare file path converts with the default output name.
	if err := Run(context.Background(), []string{"Tasks.json"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat("super_productivity_import.json"); err != nil {
		t.Errorf("default output file missing: %v", err)
	}
}

func TestRunFlagsAfterPositional(t *testing.T) {
	setup(t)

	if err := Run(context.Background(), []string{"convert", "Tasks.json", "-o", "late.json"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat("late.json"); err != nil {
		t.Errorf("flag after positional ignored: %v", err)
	}
}

func TestRunDryRun(t *testing.T) {
	setup(t)

	if err := Run(context.Background(), []string{"convert", "Tasks.json", "-dry-run", "-o", "out.json"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat("out.json"); !os.IsNotExist(err) {
		t.Error("dry run must not write output")
	}
}

func TestRunValidate(t *testing.T) {
	setup(t)

	if err := Run(context.Background(), []string{"validate", "Tasks.json"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat("super_productivity_import.json"); !os.IsNotExist(err) {
		t.Error("validate must not write output")
	}
}

func TestRunAnomalyThreshold(t *testing.T) {
	setup(t)

	messy := `{"items": [{"id": "l", "title": "L", "items": [
		{"id": "a", "title": "a", "parent": "ghost"},
		{"id": "b", "title": "b"}
	]}]}`
	if err := os.WriteFile("Messy.json", []byte(messy), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	err := Run(context.Background(), []string{"convert", "Messy.json", "-max-anomaly-ratio", "0.1"})
	if !errors.Is(err, convert.ErrTooManyAnomalies) {
		t.Fatalf("expected ErrTooManyAnomalies, got %v", err)
	}

	// Degrades gracefully at the default threshold.
	if err := Run(context.Background(), []string{"convert", "Messy.json", "-o", "messy-out.json"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat("messy-out.json"); err != nil {
		t.Errorf("output missing: %v", err)
	}
}

func TestRunMissingInput(t *testing.T) {
	setup(t)

	err := Run(context.Background(), []string{"convert"})
	if err == nil || !strings.Contains(err.Error(), "missing input file") {
		t.Fatalf("expected missing input error, got %v", err)
	}
}

func TestRunMalformedInput(t *testing.T) {
	setup(t)

	if err := os.WriteFile("Broken.json", []byte(`{"items": 5}`), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := Run(context.Background(), []string{"convert", "Broken.json"}); err == nil {
		t.Fatal("expected error for malformed input")
	}
}

func TestRunUnknownCommand(t *testing.T) {
	setup(t)

	err := Run(context.Background(), []string{"frobnicate"})
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestRunVersionAndHelp(t *testing.T) {
	setup(t)

	if err := Run(context.Background(), []string{"version"}); err != nil {
		t.Errorf("version: %v", err)
	}
	if err := Run(context.Background(), []string{"-version"}); err != nil {
		t.Errorf("-version: %v", err)
	}
	if err := Run(context.Background(), []string{"help"}); err != nil {
		t.Errorf("help: %v", err)
	}
	if err := Run(context.Background(), []string{"-h"}); err != nil {
		t.Errorf("-h: %v", err)
	}
}
