package sp

import (
	"fmt"
	"sort"
)

// Check verifies the internal consistency of a backup document and
// returns every problem found. A converter-produced document is expected
// to come back clean; the check exists so the -validate flag can prove
// that before the file is handed to the application.
func Check(b *Backup) []error {
	var errs []error

	if b.Data == nil {
		return []error{fmt.Errorf("missing data section")}
	}
	if b.CrossModelVersion == 0 {
		errs = append(errs, fmt.Errorf("missing crossModelVersion"))
	}
	if b.Timestamp == 0 {
		errs = append(errs, fmt.Errorf("missing timestamp"))
	}
	if b.LastUpdate == 0 {
		errs = append(errs, fmt.Errorf("missing lastUpdate"))
	}

	data := b.Data
	tasks := data.Task.Entities
	projects := data.Project.Entities

	// Task ID uniqueness and ids/entities agreement.
	seen := make(map[string]bool, len(data.Task.IDs))
	for _, id := range data.Task.IDs {
		if seen[id] {
			errs = append(errs, fmt.Errorf("duplicate task id %q", id))
		}
		seen[id] = true
		if _, ok := tasks[id]; !ok {
			errs = append(errs, fmt.Errorf("task id %q in ids list but not in entities", id))
		}
	}

	taskIDs := sortedKeys(tasks)

	for _, id := range taskIDs {
		task := tasks[id]
		if task.ProjectID != "" {
			if _, ok := projects[task.ProjectID]; !ok {
				errs = append(errs, fmt.Errorf("task %q references non-existent project %q", id, task.ProjectID))
			}
		}
	}

	// Parent references and circular chains.
	for _, id := range taskIDs {
		task := tasks[id]
		if task.ParentID == nil {
			continue
		}
		parentID := *task.ParentID
		if _, ok := tasks[parentID]; !ok {
			errs = append(errs, fmt.Errorf("task %q references non-existent parent %q", id, parentID))
			continue
		}
		if parentID == id {
			errs = append(errs, fmt.Errorf("task %q is its own parent", id))
			continue
		}
		visited := map[string]bool{id: true}
		current := parentID
		for current != "" {
			if visited[current] {
				errs = append(errs, fmt.Errorf("circular parent reference involving task %q", id))
				break
			}
			visited[current] = true
			next, ok := tasks[current]
			if !ok || next.ParentID == nil {
				break
			}
			current = *next.ParentID
		}
	}

	// subTaskIds must agree with the children's parentId.
	for _, id := range taskIDs {
		task := tasks[id]
		for _, subID := range task.SubTaskIDs {
			sub, ok := tasks[subID]
			if !ok {
				errs = append(errs, fmt.Errorf("task %q lists non-existent subtask %q", id, subID))
				continue
			}
			if sub.ParentID == nil || *sub.ParentID != id {
				errs = append(errs, fmt.Errorf("subtask %q does not reference parent %q", subID, id))
			}
		}
	}

	// Project taskIds must list only existing top-level tasks.
	for _, projectID := range sortedKeys(projects) {
		project := projects[projectID]
		for _, taskID := range project.TaskIDs {
			task, ok := tasks[taskID]
			if !ok {
				errs = append(errs, fmt.Errorf("project %q lists non-existent task %q", projectID, taskID))
				continue
			}
			if task.ParentID != nil {
				errs = append(errs, fmt.Errorf("project %q lists subtask %q (should only list top-level tasks)", projectID, taskID))
			}
		}
	}

	return errs
}

func sortedKeys[T any](m map[string]*T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
