package gtasks

import "fmt"

// StructuralError reports input that is not shaped like a task-list
// collection. It is the only fatal input condition: per-record anomalies
// (duplicates, orphans, cycles) are reported, never raised.
type StructuralError struct {
	Path string // JSON path to the offending key or value
	Err  error  // Underlying error
}

func (e *StructuralError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed export: %v", e.Err)
	}
	return fmt.Sprintf("malformed export at %s: %v", e.Path, e.Err)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}
