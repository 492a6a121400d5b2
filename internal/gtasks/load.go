package gtasks

import (
	"encoding/json"
	"fmt"
	"os"
)

// Parse decodes and structurally validates a Takeout export.
// The returned error is a *StructuralError for shape problems; content
// findings are left to Validate.
func Parse(data []byte) (*Export, error) {
	if err := CheckStructure(data); err != nil {
		return nil, err
	}

	var e Export
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, &StructuralError{Path: "$", Err: err}
	}
	return &e, nil
}

// Load reads and parses a Takeout export file. Read failures are
// surfaced as plain wrapped errors, distinct from structural validation
// failures.
func Load(path string) (*Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export file: %w", err)
	}
	e, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse export file %s: %w", path, err)
	}
	return e, nil
}
