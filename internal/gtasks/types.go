// Package gtasks parses, validates, and inspects Google Tasks Takeout exports.
package gtasks

// ExportKind is the "kind" discriminator Google Takeout puts on the
// top-level object of a tasks export.
const ExportKind = "tasks#taskLists"

// Status represents a Google Tasks task status.
type Status string

const (
	StatusNeedsAction Status = "needsAction"
	StatusCompleted   Status = "completed"
)

// Task represents a single task record from a Takeout export.
// Identifiers are not guaranteed unique across the export.
type Task struct {
	Kind      string `json:"kind,omitempty"`
	ID        string `json:"id"`
	Title     string `json:"title"`
	Notes     string `json:"notes,omitempty"`
	Status    Status `json:"status,omitempty"`
	Due       string `json:"due,omitempty"`
	Completed string `json:"completed,omitempty"`
	Updated   string `json:"updated,omitempty"`
	Parent    string `json:"parent,omitempty"`
	Position  string `json:"position,omitempty"`
	Deleted   bool   `json:"deleted,omitempty"`
	Hidden    bool   `json:"hidden,omitempty"`
}

// IsDone returns true if the task status is "completed".
// Unrecognized or missing statuses count as not done.
func (t *Task) IsDone() bool {
	return t.Status == StatusCompleted
}

// TaskList represents a named grouping of tasks (a list in Google Tasks).
type TaskList struct {
	Kind    string `json:"kind,omitempty"`
	ID      string `json:"id"`
	Title   string `json:"title"`
	Updated string `json:"updated,omitempty"`
	Items   []Task `json:"items"`
}

// Export is the top-level structure of a Google Tasks Takeout file.
type Export struct {
	Kind  string     `json:"kind,omitempty"`
	Items []TaskList `json:"items"`
}

// TaskCount returns the total number of task records across all lists.
func (e *Export) TaskCount() int {
	n := 0
	for i := range e.Items {
		n += len(e.Items[i].Items)
	}
	return n
}
