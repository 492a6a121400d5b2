// Package sp models the Super Productivity import document.
//
// The shapes here mirror the CompleteBackup format the application
// accepts on import. Sections this converter never populates are still
// emitted with their documented empty defaults: the importer rejects a
// document missing required top-level keys.
package sp

// CrossModelVersion identifies the revision of the Super Productivity
// schema this document conforms to.
const CrossModelVersion = 4.4

// Backup is the top-level CompleteBackup wrapper.
type Backup struct {
	Timestamp         int64    `json:"timestamp"`
	LastUpdate        int64    `json:"lastUpdate"`
	CrossModelVersion float64  `json:"crossModelVersion"`
	Data              *AppData `json:"data"`
}

// AppData holds all model data inside a backup.
type AppData struct {
	Project        ProjectState     `json:"project"`
	Task           TaskState        `json:"task"`
	Tag            EntityState      `json:"tag"`
	GlobalConfig   *GlobalConfig    `json:"globalConfig"`
	Reminders      []any            `json:"reminders"`
	Planner        Planner          `json:"planner"`
	Boards         Boards           `json:"boards"`
	Note           NoteState        `json:"note"`
	IssueProvider  EntityState      `json:"issueProvider"`
	Metric         EntityState      `json:"metric"`
	Improvement    ImprovementState `json:"improvement"`
	Obstruction    EntityState      `json:"obstruction"`
	SimpleCounter  EntityState      `json:"simpleCounter"`
	TaskRepeatCfg  EntityState      `json:"taskRepeatCfg"`
	MenuTree       MenuTree         `json:"menuTree"`
	TimeTracking   TimeTrackingState `json:"timeTracking"`
	ArchiveYoung   Archive          `json:"archiveYoung"`
	ArchiveOld     Archive          `json:"archiveOld"`
	PluginUserData []any            `json:"pluginUserData"`
	PluginMetadata []any            `json:"pluginMetadata"`
}

// ProjectState is the project entity collection.
type ProjectState struct {
	IDs      []string            `json:"ids"`
	Entities map[string]*Project `json:"entities"`
}

// TaskState is the task entity collection plus UI bookkeeping fields the
// importer expects to be present.
type TaskState struct {
	IDs                   []string         `json:"ids"`
	Entities              map[string]*Task `json:"entities"`
	CurrentTaskID         *string          `json:"currentTaskId"`
	SelectedTaskID        *string          `json:"selectedTaskId"`
	TaskDetailTargetPanel *string          `json:"taskDetailTargetPanel"`
	LastCurrentTaskID     *string          `json:"lastCurrentTaskId"`
	IsDataLoaded          bool             `json:"isDataLoaded"`
}

// EntityState is an empty-default entity collection for sections this
// converter never populates.
type EntityState struct {
	IDs      []string       `json:"ids"`
	Entities map[string]any `json:"entities"`
}

// NoteState is the note entity collection.
type NoteState struct {
	IDs        []string       `json:"ids"`
	Entities   map[string]any `json:"entities"`
	TodayOrder []string       `json:"todayOrder"`
}

// ImprovementState is the improvement entity collection.
type ImprovementState struct {
	IDs                          []string       `json:"ids"`
	Entities                     map[string]any `json:"entities"`
	HiddenImprovementBannerItems []string       `json:"hiddenImprovementBannerItems"`
}

// Planner holds per-day planning state.
type Planner struct {
	Days map[string][]string `json:"days"`
}

// Boards holds board configurations.
type Boards struct {
	BoardCfgs []any `json:"boardCfgs"`
}

// MenuTree holds the sidebar tree layout.
type MenuTree struct {
	ProjectTree []any `json:"projectTree"`
	TagTree     []any `json:"tagTree"`
}

// TimeTrackingState holds per-project and per-tag tracked time.
type TimeTrackingState struct {
	Project map[string]any `json:"project"`
	Tag     map[string]any `json:"tag"`
}

// Archive is an archived-task store (young or old generation).
type Archive struct {
	Task struct {
		IDs      []string         `json:"ids"`
		Entities map[string]*Task `json:"entities"`
	} `json:"task"`
	TimeTracking          TimeTrackingState `json:"timeTracking"`
	LastTimeTrackingFlush int64             `json:"lastTimeTrackingFlush"`
}

// Project is a Super Productivity project. Task lists map onto projects.
type Project struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	TaskIDs          []string     `json:"taskIds"`
	BacklogTaskIDs   []string     `json:"backlogTaskIds"`
	NoteIDs          []string     `json:"noteIds"`
	Theme            ProjectTheme `json:"theme"`
	IsArchived       bool         `json:"isArchived"`
	IsEnableBacklog  bool         `json:"isEnableBacklog"`
	IsHiddenFromMenu bool         `json:"isHiddenFromMenu"`
	Icon             *string      `json:"icon"`
	AdvancedCfg      AdvancedCfg  `json:"advancedCfg"`
}

// ProjectTheme holds project display colors.
type ProjectTheme struct {
	Primary        string `json:"primary"`
	IsAutoContrast bool   `json:"isAutoContrast"`
}

// AdvancedCfg holds per-project advanced settings.
type AdvancedCfg struct {
	WorklogExportSettings WorklogExportSettings `json:"worklogExportSettings"`
}

// WorklogExportSettings configures worklog exports for a project.
type WorklogExportSettings struct {
	Cols             []string `json:"cols"`
	RoundWorkTimeTo  *string  `json:"roundWorkTimeTo"`
	RoundStartTimeTo *string  `json:"roundStartTimeTo"`
	RoundEndTimeTo   *string  `json:"roundEndTimeTo"`
	SeparateTasksBy  string   `json:"separateTasksBy"`
	GroupBy          string   `json:"groupBy"`
}

// Task is a Super Productivity task. Optional fields use pointers with
// omitempty because the importer expects them absent rather than null.
type Task struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Notes          string           `json:"notes"`
	ProjectID      string           `json:"projectId"`
	IsDone         bool             `json:"isDone"`
	DoneOn         *int64           `json:"doneOn,omitempty"`
	DueDay         *string          `json:"dueDay,omitempty"`
	ParentID       *string          `json:"parentId,omitempty"`
	SubTaskIDs     []string         `json:"subTaskIds"`
	TagIDs         []string         `json:"tagIds"`
	TimeSpent      int64            `json:"timeSpent"`
	TimeEstimate   int64            `json:"timeEstimate"`
	TimeSpentOnDay map[string]int64 `json:"timeSpentOnDay"`
	Created        int64            `json:"created"`
	Updated        int64            `json:"updated"`
	Attachments    []any            `json:"attachments"`

	// OriginalGoogleTaskID keeps the source identifier for traceability.
	OriginalGoogleTaskID string `json:"_originalGoogleTaskId,omitempty"`
}
