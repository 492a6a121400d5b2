package gtasks

import "sort"

// OrphanRef records a parent reference that does not resolve to any
// task identifier within the same list.
type OrphanRef struct {
	ListID string
	TaskID string
	Parent string
}

// Report is the result of a validation pass. All findings are
// informational: the Converter reassigns identifiers and degrades
// gracefully, so nothing here is fatal.
type Report struct {
	TaskLists int
	Tasks     int
	Deleted   int
	Hidden    int

	// DuplicateIDs holds input task identifiers that occur more than
	// once anywhere in the export, sorted.
	DuplicateIDs []string

	// Orphans holds unresolved parent references, sorted by list then task.
	Orphans []OrphanRef

	// Cycles holds identifiers participating in a parent-reference
	// cycle, sorted.
	Cycles []string
}

// Clean returns true if the report contains no findings.
func (r *Report) Clean() bool {
	return len(r.DuplicateIDs) == 0 && len(r.Orphans) == 0 && len(r.Cycles) == 0
}

// Findings returns the total number of findings in the report.
func (r *Report) Findings() int {
	return len(r.DuplicateIDs) + len(r.Orphans) + len(r.Cycles)
}

// Validate inspects an export for structural integrity findings without
// mutating it. Running it twice on the same input yields an identical
// report.
func Validate(e *Export) *Report {
	report := &Report{
		TaskLists:    len(e.Items),
		DuplicateIDs: []string{},
		Orphans:      []OrphanRef{},
		Cycles:       []string{},
	}

	seen := make(map[string]int)
	for li := range e.Items {
		list := &e.Items[li]
		report.Tasks += len(list.Items)

		byID := make(map[string]*Task, len(list.Items))
		for ti := range list.Items {
			task := &list.Items[ti]
			if task.Deleted {
				report.Deleted++
			}
			if task.Hidden {
				report.Hidden++
			}
			seen[task.ID]++
			if _, ok := byID[task.ID]; !ok {
				byID[task.ID] = task
			}
		}

		for ti := range list.Items {
			task := &list.Items[ti]
			if task.Parent == "" {
				continue
			}
			if _, ok := byID[task.Parent]; !ok {
				report.Orphans = append(report.Orphans, OrphanRef{
					ListID: list.ID,
					TaskID: task.ID,
					Parent: task.Parent,
				})
			}
		}

		for _, id := range detectCycles(list, byID) {
			report.Cycles = append(report.Cycles, id)
		}
	}

	for id, count := range seen {
		if count > 1 {
			report.DuplicateIDs = append(report.DuplicateIDs, id)
		}
	}

	sort.Strings(report.DuplicateIDs)
	sort.Strings(report.Cycles)
	sort.Slice(report.Orphans, func(i, j int) bool {
		a, b := report.Orphans[i], report.Orphans[j]
		if a.ListID != b.ListID {
			return a.ListID < b.ListID
		}
		return a.TaskID < b.TaskID
	})

	return report
}

// detectCycles walks every task's parent chain within a list and returns
// the identifiers that sit on a cycle. The walk is iterative with a
// visited set and a depth bound equal to the list size; identifiers whose
// ancestry is already settled are memoized to avoid quadratic re-walks.
func detectCycles(list *TaskList, byID map[string]*Task) []string {
	settled := make(map[string]bool, len(list.Items))
	onCycle := make(map[string]bool)
	maxDepth := len(list.Items)

	for ti := range list.Items {
		start := &list.Items[ti]
		if settled[start.ID] {
			continue
		}

		visited := make(map[string]bool)
		chain := []string{}
		cur := start.ID

		for depth := 0; ; depth++ {
			task, ok := byID[cur]
			if !ok || settled[cur] {
				// Chain ends at a root, an orphaned reference, or a
				// task whose ancestry is already known.
				break
			}
			if visited[cur] || depth > maxDepth {
				// Revisited an identifier: everything from its first
				// occurrence in the chain onward forms the loop.
				loopStart := 0
				for i, id := range chain {
					if id == cur {
						loopStart = i
						break
					}
				}
				for _, id := range chain[loopStart:] {
					onCycle[id] = true
				}
				break
			}
			visited[cur] = true
			chain = append(chain, cur)
			if task.Parent == "" {
				break
			}
			cur = task.Parent
		}

		for _, id := range chain {
			settled[id] = true
		}
	}

	ids := make([]string, 0, len(onCycle))
	for id := range onCycle {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
