package gtasks

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleExport = `{
  "kind": "tasks#taskLists",
  "items": [
    {
      "kind": "tasks#taskList",
      "id": "list-1",
      "title": "Groceries",
      "items": [
        {"kind": "tasks#task", "id": "1", "title": "Milk", "status": "needsAction", "updated": "2024-01-02T08:30:00.000Z"},
        {"id": "2", "title": "", "status": "completed", "completed": "2024-01-01T10:00:00Z", "due": "2024-01-05T00:00:00Z", "updated": "2024-01-02T08:30:00Z"}
      ]
    }
  ]
}`

func TestParse(t *testing.T) {
	export, err := Parse([]byte(sampleExport))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if export.Kind != ExportKind {
		t.Errorf("Kind: got %q, want %q", export.Kind, ExportKind)
	}
	if len(export.Items) != 1 {
		t.Fatalf("lists: got %d, want 1", len(export.Items))
	}
	list := export.Items[0]
	if list.Title != "Groceries" {
		t.Errorf("list title: got %q, want Groceries", list.Title)
	}
	if len(list.Items) != 2 {
		t.Fatalf("tasks: got %d, want 2", len(list.Items))
	}
	if list.Items[0].Status != StatusNeedsAction {
		t.Errorf("status: got %q, want %q", list.Items[0].Status, StatusNeedsAction)
	}
	if !list.Items[1].IsDone() {
		t.Error("second task should be done")
	}
	if export.TaskCount() != 2 {
		t.Errorf("TaskCount: got %d, want 2", export.TaskCount())
	}
}

func TestParseStructuralErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "top-level array", input: `[]`},
		{name: "missing items", input: `{"kind": "tasks#taskLists"}`},
		{name: "items not an array", input: `{"items": 5}`},
		{name: "list missing id", input: `{"items": [{"title": "x"}]}`},
		{name: "list tasks not an array", input: `{"items": [{"id": "l", "items": {}}]}`},
		{name: "task missing id", input: `{"items": [{"id": "l", "items": [{"title": "x"}]}]}`},
		{name: "task id not a string", input: `{"items": [{"id": "l", "items": [{"id": 5}]}]}`},
		{name: "invalid json", input: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var se *StructuralError
			if !errors.As(err, &se) {
				t.Errorf("expected StructuralError, got %T: %v", err, err)
			}
		})
	}
}

func TestParseContentAnomaliesAreNotFatal(t *testing.T) {
	// Unknown statuses, garbage dates and dangling parents are findings,
	// not structural failures.
	input := `{"items": [{"id": "l", "items": [
		{"id": "a", "title": "x", "status": "wat", "due": "garbage", "parent": "missing"}
	]}]}`
	if _, err := Parse([]byte(input)); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
}

func TestCheckStructureMinimalFallback(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: sampleExport, wantErr: false},
		{name: "top-level array", input: `[]`, wantErr: true},
		{name: "missing items", input: `{}`, wantErr: true},
		{name: "task id not a string", input: `{"items": [{"id": "l", "items": [{"id": 5}]}]}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc interface{}
			if err := json.Unmarshal([]byte(tt.input), &doc); err != nil {
				t.Fatalf("bad fixture: %v", err)
			}
			err := checkStructureMinimal(doc)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkStructureMinimal: got %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "Tasks.json")
	if err := os.WriteFile(path, []byte(sampleExport), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	export, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(export.Items) != 1 {
		t.Errorf("lists: got %d, want 1", len(export.Items))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	// A read failure is not a validation failure.
	var se *StructuralError
	if errors.As(err, &se) {
		t.Errorf("read failure should not be a StructuralError: %v", err)
	}
}
