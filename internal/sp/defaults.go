package sp

import "time"

// UnixMillis converts a time to Unix epoch milliseconds.
func UnixMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func newArchive() Archive {
	var a Archive
	a.Task.IDs = []string{}
	a.Task.Entities = map[string]*Task{}
	a.TimeTracking = newTimeTrackingState()
	return a
}

func newTimeTrackingState() TimeTrackingState {
	return TimeTrackingState{
		Project: map[string]any{},
		Tag:     map[string]any{},
	}
}

func newEntityState() EntityState {
	return EntityState{
		IDs:      []string{},
		Entities: map[string]any{},
	}
}

// DefaultWorklogExportSettings returns the worklog export defaults every
// converted project carries.
func DefaultWorklogExportSettings() WorklogExportSettings {
	return WorklogExportSettings{
		Cols:            []string{"DATE", "START", "END", "TIME_CLOCK", "TITLES_INCLUDING_SUB"},
		SeparateTasksBy: "\n",
		GroupBy:         "DATE",
	}
}

// NewBackup builds an empty CompleteBackup document with every section
// the importer requires, populated with defaults. Sections the converter
// fills later start empty, never nil: the importer distinguishes a
// missing key from an empty collection.
func NewBackup(now time.Time) *Backup {
	ts := UnixMillis(now)

	data := &AppData{
		Project: ProjectState{
			IDs:      []string{},
			Entities: map[string]*Project{},
		},
		Task: TaskState{
			IDs:          []string{},
			Entities:     map[string]*Task{},
			IsDataLoaded: true,
		},
		Tag:           newEntityState(),
		GlobalConfig:  DefaultGlobalConfig(),
		Reminders:     []any{},
		Planner:       Planner{Days: map[string][]string{}},
		Boards:        Boards{BoardCfgs: []any{}},
		Note: NoteState{
			IDs:        []string{},
			Entities:   map[string]any{},
			TodayOrder: []string{},
		},
		IssueProvider: newEntityState(),
		Metric:        newEntityState(),
		Improvement: ImprovementState{
			IDs:                          []string{},
			Entities:                     map[string]any{},
			HiddenImprovementBannerItems: []string{},
		},
		Obstruction:    newEntityState(),
		SimpleCounter:  newEntityState(),
		TaskRepeatCfg:  newEntityState(),
		MenuTree:       MenuTree{ProjectTree: []any{}, TagTree: []any{}},
		TimeTracking:   newTimeTrackingState(),
		ArchiveYoung:   newArchive(),
		ArchiveOld:     newArchive(),
		PluginUserData: []any{},
		PluginMetadata: []any{},
	}

	return &Backup{
		Timestamp:         ts,
		LastUpdate:        ts,
		CrossModelVersion: CrossModelVersion,
		Data:              data,
	}
}
