// Package convert transforms a Google Tasks export into a Super
// Productivity import document.
package convert

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/j57n-3co-x-5735/GoogleTasksToSuperProductivity/internal/gtasks"
	"github.com/j57n-3co-x-5735/GoogleTasksToSuperProductivity/internal/sp"
)

// UntitledTask replaces empty or whitespace-only titles.
const UntitledTask = "Untitled Task"

// DefaultThemeColor is Google blue, used for converted project themes.
const DefaultThemeColor = "#4285f4"

// Options configures a single conversion run. The identifier generator
// and clock are per-run state passed in explicitly; there is no
// process-wide counter, so concurrent runs cannot leak identifier state
// into each other's documents.
type Options struct {
	// NewID generates a fresh entity identifier. Defaults to random UUIDs.
	NewID func() string

	// Now supplies the run timestamp. Defaults to time.Now.
	Now func() time.Time

	// MaxAnomalyRatio aborts the run with ErrTooManyAnomalies when the
	// share of anomalous tasks exceeds it. Values <= 0 mean no threshold
	// (always degrade gracefully, never abort).
	MaxAnomalyRatio float64

	// KeepDeleted converts deleted and hidden records instead of
	// skipping them.
	KeepDeleted bool

	// ThemeColor overrides the project theme primary color.
	ThemeColor string

	// Report optionally carries a prior validation pass. When set and a
	// threshold is configured, the run fails fast before any conversion
	// work if the report alone already exceeds it.
	Report *gtasks.Report
}

func (o Options) withDefaults() Options {
	if o.NewID == nil {
		o.NewID = func() string { return uuid.New().String() }
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.MaxAnomalyRatio <= 0 {
		o.MaxAnomalyRatio = 1
	}
	if o.ThemeColor == "" {
		o.ThemeColor = DefaultThemeColor
	}
	return o
}

// record ties a source task to its converted counterpart and the
// identifier mapping of its list.
type record struct {
	listID  string
	source  *gtasks.Task
	out     *sp.Task
	mapping map[string]string
}

// Convert maps a validated export into a complete import document.
// Per-record anomalies degrade gracefully and are accumulated into the
// returned Result; the only hard failures are a nil export and the
// anomaly threshold.
func Convert(export *gtasks.Export, opts Options) (*sp.Backup, *Result, error) {
	if export == nil {
		return nil, nil, &gtasks.StructuralError{Path: "$", Err: errors.New("nil export")}
	}
	opts = opts.withDefaults()

	result := &Result{Anomalies: []Anomaly{}}

	// Fail fast on a prior validation report when a threshold is set.
	if opts.Report != nil && opts.MaxAnomalyRatio < 1 && opts.Report.Tasks > 0 {
		ratio := float64(opts.Report.Findings()) / float64(opts.Report.Tasks)
		if ratio > opts.MaxAnomalyRatio {
			return nil, result, fmt.Errorf("validation reported %d findings across %d tasks: %w",
				opts.Report.Findings(), opts.Report.Tasks, ErrTooManyAnomalies)
		}
	}

	backup := sp.NewBackup(opts.Now())
	nowMillis := backup.Timestamp

	var records []record
	taskByID := make(map[string]*sp.Task)
	listByTaskID := make(map[string]string)

	// First pass: assign fresh identifiers in input order and derive
	// every field that does not depend on other tasks.
	for li := range export.Items {
		list := &export.Items[li]
		projectID := opts.NewID()

		project := &sp.Project{
			ID:             projectID,
			Title:          sanitizeTitle(list.Title),
			TaskIDs:        []string{},
			BacklogTaskIDs: []string{},
			NoteIDs:        []string{},
			Theme: sp.ProjectTheme{
				Primary:        opts.ThemeColor,
				IsAutoContrast: true,
			},
			AdvancedCfg: sp.AdvancedCfg{
				WorklogExportSettings: sp.DefaultWorklogExportSettings(),
			},
		}

		// Parent lookups are scoped to this list so identical source
		// identifiers in different lists cannot collide.
		mapping := make(map[string]string, len(list.Items))

		for ti := range list.Items {
			task := &list.Items[ti]

			if (task.Deleted || task.Hidden) && !opts.KeepDeleted {
				result.Skipped++
				continue
			}

			assigned := opts.NewID()
			if task.ID != "" {
				if _, dup := mapping[task.ID]; dup {
					result.Anomalies = append(result.Anomalies, Anomaly{
						Kind:   AnomalyDuplicateID,
						ListID: list.ID,
						TaskID: task.ID,
						Detail: "duplicate source identifier; parent references resolve to the first occurrence",
					})
				} else {
					mapping[task.ID] = assigned
				}
			}

			out := &sp.Task{
				ID:                   assigned,
				Title:                sanitizeTitle(task.Title),
				Notes:                task.Notes,
				ProjectID:            projectID,
				IsDone:               task.IsDone(),
				SubTaskIDs:           []string{},
				TagIDs:               []string{},
				TimeSpentOnDay:       map[string]int64{},
				Attachments:          []any{},
				OriginalGoogleTaskID: task.ID,
			}
			deriveDates(task, out, list.ID, nowMillis, result)

			if out.IsDone {
				result.Completed++
			}
			result.Tasks++

			project.TaskIDs = append(project.TaskIDs, assigned)
			taskByID[assigned] = out
			listByTaskID[assigned] = list.ID
			records = append(records, record{
				listID:  list.ID,
				source:  task,
				out:     out,
				mapping: mapping,
			})
			backup.Data.Task.IDs = append(backup.Data.Task.IDs, assigned)
			backup.Data.Task.Entities[assigned] = out
		}

		result.Projects++
		backup.Data.Project.IDs = append(backup.Data.Project.IDs, projectID)
		backup.Data.Project.Entities[projectID] = project
	}

	// Second pass: resolve parent references now that every identifier
	// in every list is assigned.
	for _, rec := range records {
		parent := rec.source.Parent
		if parent == "" {
			continue
		}
		newParent, ok := rec.mapping[parent]
		if !ok {
			result.Anomalies = append(result.Anomalies, Anomaly{
				Kind:   AnomalyOrphanParent,
				ListID: rec.listID,
				TaskID: rec.source.ID,
				Field:  "parent",
				Detail: fmt.Sprintf("parent %q not found in list; task kept as top-level", parent),
			})
			continue
		}
		if newParent == rec.out.ID {
			// Self-parenting is a one-task cycle.
			result.Anomalies = append(result.Anomalies, Anomaly{
				Kind:   AnomalyCycleBroken,
				ListID: rec.listID,
				TaskID: rec.source.ID,
				Field:  "parent",
				Detail: "task is its own parent; reference dropped",
			})
			continue
		}
		rec.out.ParentID = &newParent
		parentOut := taskByID[newParent]
		parentOut.SubTaskIDs = append(parentOut.SubTaskIDs, rec.out.ID)
		result.Subtasks++
	}

	breakCycles(records, taskByID, listByTaskID, result)

	// Projects list only top-level tasks.
	for _, projectID := range backup.Data.Project.IDs {
		project := backup.Data.Project.Entities[projectID]
		topLevel := project.TaskIDs[:0]
		for _, id := range project.TaskIDs {
			if taskByID[id].ParentID == nil {
				topLevel = append(topLevel, id)
			}
		}
		project.TaskIDs = topLevel
	}

	total := result.Tasks + result.Skipped
	if opts.MaxAnomalyRatio < 1 && total > 0 {
		anomalous := result.anomalousTasks()
		if float64(anomalous)/float64(total) > opts.MaxAnomalyRatio {
			return nil, result, fmt.Errorf("%d of %d tasks anomalous: %w", anomalous, total, ErrTooManyAnomalies)
		}
	}

	return backup, result, nil
}

// deriveDates fills the timestamp fields of out from the source task,
// recording an anomaly for every value that fails to parse.
func deriveDates(task *gtasks.Task, out *sp.Task, listID string, nowMillis int64, result *Result) {
	badDate := func(field, value string) {
		result.Anomalies = append(result.Anomalies, Anomaly{
			Kind:   AnomalyBadDate,
			ListID: listID,
			TaskID: task.ID,
			Field:  field,
			Detail: fmt.Sprintf("unparseable value %q", value),
		})
	}

	if task.Completed != "" {
		if ms, err := parseUnixMillis(task.Completed); err == nil {
			out.DoneOn = &ms
		} else {
			badDate("completed", task.Completed)
		}
	}

	if task.Due != "" {
		if day, err := parseCalendarDay(task.Due); err == nil {
			out.DueDay = &day
		} else {
			badDate("due", task.Due)
		}
	}

	updated := nowMillis
	if task.Updated != "" {
		if ms, err := parseUnixMillis(task.Updated); err == nil {
			updated = ms
		} else {
			badDate("updated", task.Updated)
		}
	}
	out.Created = updated
	out.Updated = updated
}

// breakCycles walks every task's parent chain in the output document and
// clears the parent reference of the first node proven to sit on a loop.
// The walk is iterative and memoizes settled tasks, so adversarial input
// cannot cause unbounded work.
func breakCycles(records []record, taskByID map[string]*sp.Task, listByTaskID map[string]string, result *Result) {
	acyclic := make(map[string]bool, len(records))

	for _, rec := range records {
		for {
			visited := make(map[string]bool)
			var chain []string
			cur := rec.out.ID
			broke := false

			for {
				if acyclic[cur] {
					break
				}
				if visited[cur] {
					unparent(cur, taskByID)
					result.Subtasks--
					result.Anomalies = append(result.Anomalies, Anomaly{
						Kind:   AnomalyCycleBroken,
						ListID: listByTaskID[cur],
						TaskID: taskByID[cur].OriginalGoogleTaskID,
						Field:  "parent",
						Detail: "parent chain loops; reference dropped",
					})
					broke = true
					break
				}
				visited[cur] = true
				chain = append(chain, cur)
				task := taskByID[cur]
				if task.ParentID == nil {
					break
				}
				cur = *task.ParentID
			}

			if broke {
				// Re-walk from the same start: the chain now terminates.
				continue
			}
			for _, id := range chain {
				acyclic[id] = true
			}
			break
		}
	}
}

// unparent clears a task's parent reference and removes it from the
// parent's subtask list.
func unparent(id string, taskByID map[string]*sp.Task) {
	task := taskByID[id]
	parent := taskByID[*task.ParentID]
	task.ParentID = nil
	for i, subID := range parent.SubTaskIDs {
		if subID == id {
			parent.SubTaskIDs = append(parent.SubTaskIDs[:i], parent.SubTaskIDs[i+1:]...)
			break
		}
	}
}

// sanitizeTitle trims whitespace and substitutes the placeholder for
// empty titles.
func sanitizeTitle(title string) string {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return UntitledTask
	}
	return trimmed
}
