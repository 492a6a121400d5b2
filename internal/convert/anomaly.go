package convert

import "errors"

// ErrTooManyAnomalies is returned when the share of anomalous tasks
// exceeds the configured threshold and the run is aborted instead of
// degrading.
var ErrTooManyAnomalies = errors.New("too many anomalies")

// AnomalyKind classifies a non-fatal conversion finding.
type AnomalyKind string

const (
	// AnomalyDuplicateID marks a source task identifier seen before in
	// the same list. The task still converts under a fresh identifier;
	// parent references resolve to the first occurrence.
	AnomalyDuplicateID AnomalyKind = "duplicate-id"

	// AnomalyOrphanParent marks a parent reference that resolves to no
	// task in the same list. The task becomes top-level.
	AnomalyOrphanParent AnomalyKind = "orphan-parent"

	// AnomalyBadDate marks a date field that could not be parsed. The
	// field is dropped (or substituted with the run time for updated).
	AnomalyBadDate AnomalyKind = "bad-date"

	// AnomalyCycleBroken marks a task whose parent reference was cleared
	// to break a parent-chain cycle.
	AnomalyCycleBroken AnomalyKind = "cycle-broken"
)

// Anomaly is a single degrade-gracefully decision made during a run.
// Accumulation is deterministic: the same input always yields the same
// anomalies in the same order.
type Anomaly struct {
	Kind   AnomalyKind
	ListID string
	TaskID string
	Field  string
	Detail string
}

// Result summarizes a conversion run.
type Result struct {
	Projects  int
	Tasks     int
	Completed int
	Subtasks  int
	Skipped   int // deleted or hidden records left out
	Anomalies []Anomaly
}

// anomalousTasks counts distinct tasks with at least one anomaly.
func (r *Result) anomalousTasks() int {
	type key struct{ list, task string }
	seen := make(map[key]bool)
	for _, a := range r.Anomalies {
		seen[key{a.ListID, a.TaskID}] = true
	}
	return len(seen)
}
