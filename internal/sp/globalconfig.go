package sp

// GlobalConfig is the application-wide configuration section. The
// importer requires it to be present; the converter only ever emits the
// defaults below. Nullable fields are pointers without omitempty so they
// serialize as explicit nulls, which is what the application exports.
type GlobalConfig struct {
	AppFeatures  AppFeaturesConfig  `json:"appFeatures"`
	Localization LocalizationConfig `json:"localization"`
	Misc         MiscConfig         `json:"misc"`
	ShortSyntax  ShortSyntaxConfig  `json:"shortSyntax"`
	Evaluation   EvaluationConfig   `json:"evaluation"`
	Idle         IdleConfig         `json:"idle"`
	TakeABreak   TakeABreakConfig   `json:"takeABreak"`
	DominaMode   DominaModeConfig   `json:"dominaMode"`
	FocusMode    FocusModeConfig    `json:"focusMode"`
	Pomodoro     PomodoroConfig     `json:"pomodoro"`
	Keyboard     KeyboardConfig     `json:"keyboard"`
	LocalBackup  LocalBackupConfig  `json:"localBackup"`
	Sound        SoundConfig        `json:"sound"`
	TimeTracking TimeTrackingConfig `json:"timeTracking"`
	Reminder     ReminderConfig     `json:"reminder"`
	Schedule     ScheduleConfig     `json:"schedule"`
	Sync         SyncConfig         `json:"sync"`
}

type AppFeaturesConfig struct {
	IsTimeTrackingEnabled     bool `json:"isTimeTrackingEnabled"`
	IsFocusModeEnabled        bool `json:"isFocusModeEnabled"`
	IsSchedulerEnabled        bool `json:"isSchedulerEnabled"`
	IsPlannerEnabled          bool `json:"isPlannerEnabled"`
	IsBoardsEnabled           bool `json:"isBoardsEnabled"`
	IsScheduleDayPanelEnabled bool `json:"isScheduleDayPanelEnabled"`
	IsIssuesPanelEnabled      bool `json:"isIssuesPanelEnabled"`
	IsProjectNotesEnabled     bool `json:"isProjectNotesEnabled"`
	IsSyncIconEnabled         bool `json:"isSyncIconEnabled"`
	IsDonatePageEnabled       bool `json:"isDonatePageEnabled"`
	IsEnableUserProfiles      bool `json:"isEnableUserProfiles"`
}

type LocalizationConfig struct {
	Lng            *string `json:"lng"`
	DateTimeLocale *string `json:"dateTimeLocale"`
	FirstDayOfWeek *int    `json:"firstDayOfWeek"`
}

type MiscConfig struct {
	IsConfirmBeforeExit                 bool    `json:"isConfirmBeforeExit"`
	IsConfirmBeforeExitWithoutFinishDay bool    `json:"isConfirmBeforeExitWithoutFinishDay"`
	IsConfirmBeforeTaskDelete           bool    `json:"isConfirmBeforeTaskDelete"`
	IsAutMarkParentAsDone               bool    `json:"isAutMarkParentAsDone"`
	IsTurnOffMarkdown                   bool    `json:"isTurnOffMarkdown"`
	IsAutoAddWorkedOnToToday            bool    `json:"isAutoAddWorkedOnToToday"`
	IsMinimizeToTray                    bool    `json:"isMinimizeToTray"`
	IsTrayShowCurrentTask               bool    `json:"isTrayShowCurrentTask"`
	IsTrayShowCurrentCountdown          bool    `json:"isTrayShowCurrentCountdown"`
	DefaultProjectID                    *string `json:"defaultProjectId"`
	StartOfNextDay                      int     `json:"startOfNextDay"`
	IsDisableAnimations                 bool    `json:"isDisableAnimations"`
	IsDisableCelebration                bool    `json:"isDisableCelebration"`
	IsShowProductivityTipLonger         bool    `json:"isShowProductivityTipLonger"`
	TaskNotesTpl                        string  `json:"taskNotesTpl"`
	IsOverlayIndicatorEnabled           bool    `json:"isOverlayIndicatorEnabled"`
	CustomTheme                         string  `json:"customTheme"`
	DefaultStartPage                    int     `json:"defaultStartPage"`
}

type ShortSyntaxConfig struct {
	IsEnableProject bool `json:"isEnableProject"`
	IsEnableDue     bool `json:"isEnableDue"`
	IsEnableTag     bool `json:"isEnableTag"`
}

type EvaluationConfig struct {
	IsHideEvaluationSheet bool `json:"isHideEvaluationSheet"`
}

type IdleConfig struct {
	IsOnlyOpenIdleWhenCurrentTask bool  `json:"isOnlyOpenIdleWhenCurrentTask"`
	IsEnableIdleTimeTracking      bool  `json:"isEnableIdleTimeTracking"`
	MinIdleTime                   int64 `json:"minIdleTime"`
}

type TakeABreakConfig struct {
	IsTakeABreakEnabled            bool     `json:"isTakeABreakEnabled"`
	IsLockScreen                   bool     `json:"isLockScreen"`
	IsTimedFullScreenBlocker       bool     `json:"isTimedFullScreenBlocker"`
	TimedFullScreenBlockerDuration int64    `json:"timedFullScreenBlockerDuration"`
	IsFocusWindow                  bool     `json:"isFocusWindow"`
	TakeABreakMessage              string   `json:"takeABreakMessage"`
	TakeABreakMinWorkingTime       int64    `json:"takeABreakMinWorkingTime"`
	TakeABreakSnoozeTime           int64    `json:"takeABreakSnoozeTime"`
	MotivationalImgs               []string `json:"motivationalImgs"`
}

type DominaModeConfig struct {
	IsEnabled bool    `json:"isEnabled"`
	Interval  int64   `json:"interval"`
	Volume    int     `json:"volume"`
	Text      string  `json:"text"`
	Voice     *string `json:"voice"`
}

type FocusModeConfig struct {
	IsSkipPreparation           bool `json:"isSkipPreparation"`
	IsPlayTick                  bool `json:"isPlayTick"`
	IsPauseTrackingDuringBreak  bool `json:"isPauseTrackingDuringBreak"`
	IsSyncSessionWithTracking   bool `json:"isSyncSessionWithTracking"`
	IsStartInBackground         bool `json:"isStartInBackground"`
}

type PomodoroConfig struct {
	Duration                int64 `json:"duration"`
	BreakDuration           int64 `json:"breakDuration"`
	LongerBreakDuration     int64 `json:"longerBreakDuration"`
	CyclesBeforeLongerBreak int   `json:"cyclesBeforeLongerBreak"`
}

type KeyboardConfig struct {
	GlobalShowHide                *string `json:"globalShowHide"`
	GlobalToggleTaskStart         *string `json:"globalToggleTaskStart"`
	GlobalAddNote                 *string `json:"globalAddNote"`
	GlobalAddTask                 *string `json:"globalAddTask"`
	AddNewTask                    *string `json:"addNewTask"`
	AddNewProject                 *string `json:"addNewProject"`
	AddNewNote                    *string `json:"addNewNote"`
	OpenProjectNotes              *string `json:"openProjectNotes"`
	ToggleTaskViewCustomizerPanel *string `json:"toggleTaskViewCustomizerPanel"`
	ToggleIssuePanel              *string `json:"toggleIssuePanel"`
	FocusSideNav                  *string `json:"focusSideNav"`
	ShowHelp                      *string `json:"showHelp"`
	ShowSearchBar                 *string `json:"showSearchBar"`
	ToggleBacklog                 *string `json:"toggleBacklog"`
	GoToFocusMode                 *string `json:"goToFocusMode"`
	GoToWorkView                  *string `json:"goToWorkView"`
	GoToScheduledView             *string `json:"goToScheduledView"`
	GoToTimeline                  *string `json:"goToTimeline"`
	GoToSettings                  *string `json:"goToSettings"`
	ZoomIn                        *string `json:"zoomIn"`
	ZoomOut                       *string `json:"zoomOut"`
	ZoomDefault                   *string `json:"zoomDefault"`
	SaveNote                      *string `json:"saveNote"`
	TriggerSync                   *string `json:"triggerSync"`
	TaskEditTitle                 *string `json:"taskEditTitle"`
	TaskToggleDetailPanelOpen     *string `json:"taskToggleDetailPanelOpen"`
	TaskOpenEstimationDialog      *string `json:"taskOpenEstimationDialog"`
	TaskSchedule                  *string `json:"taskSchedule"`
	TaskToggleDone                *string `json:"taskToggleDone"`
	TaskAddSubTask                *string `json:"taskAddSubTask"`
	TaskAddAttachment             *string `json:"taskAddAttachment"`
	TaskDelete                    *string `json:"taskDelete"`
	TaskMoveToProject             *string `json:"taskMoveToProject"`
	TaskOpenContextMenu           *string `json:"taskOpenContextMenu"`
	SelectPreviousTask            *string `json:"selectPreviousTask"`
	SelectNextTask                *string `json:"selectNextTask"`
	MoveTaskUp                    *string `json:"moveTaskUp"`
	MoveTaskDown                  *string `json:"moveTaskDown"`
	MoveTaskToTop                 *string `json:"moveTaskToTop"`
	MoveTaskToBottom              *string `json:"moveTaskToBottom"`
	MoveToBacklog                 *string `json:"moveToBacklog"`
	MoveToTodaysTasks             *string `json:"moveToTodaysTasks"`
	ExpandSubTasks                *string `json:"expandSubTasks"`
	CollapseSubTasks              *string `json:"collapseSubTasks"`
	TogglePlay                    *string `json:"togglePlay"`
	TaskEditTags                  *string `json:"taskEditTags"`
}

type LocalBackupConfig struct {
	IsEnabled bool `json:"isEnabled"`
}

type SoundConfig struct {
	Volume                   int     `json:"volume"`
	IsIncreaseDoneSoundPitch bool    `json:"isIncreaseDoneSoundPitch"`
	DoneSound                string  `json:"doneSound"`
	BreakReminderSound       *string `json:"breakReminderSound"`
	TrackTimeSound           *string `json:"trackTimeSound"`
}

type TimeTrackingConfig struct {
	TrackingInterval                 int64 `json:"trackingInterval"`
	DefaultEstimate                  int64 `json:"defaultEstimate"`
	DefaultEstimateSubTasks          int64 `json:"defaultEstimateSubTasks"`
	IsNotifyWhenTimeEstimateExceeded bool  `json:"isNotifyWhenTimeEstimateExceeded"`
	IsAutoStartNextTask              bool  `json:"isAutoStartNextTask"`
	IsTrackingReminderEnabled        bool  `json:"isTrackingReminderEnabled"`
	IsTrackingReminderShowOnMobile   bool  `json:"isTrackingReminderShowOnMobile"`
	TrackingReminderMinTime          int64 `json:"trackingReminderMinTime"`
	IsTrackingReminderNotify         bool  `json:"isTrackingReminderNotify"`
	IsTrackingReminderFocusWindow    bool  `json:"isTrackingReminderFocusWindow"`
}

type ReminderConfig struct {
	IsCountdownBannerEnabled bool   `json:"isCountdownBannerEnabled"`
	CountdownDuration        int64  `json:"countdownDuration"`
	DefaultTaskRemindOption  string `json:"defaultTaskRemindOption"`
	IsFocusWindow            bool   `json:"isFocusWindow"`
}

type ScheduleConfig struct {
	IsWorkStartEndEnabled bool   `json:"isWorkStartEndEnabled"`
	WorkStart             string `json:"workStart"`
	WorkEnd               string `json:"workEnd"`
	IsLunchBreakEnabled   bool   `json:"isLunchBreakEnabled"`
	LunchBreakStart       string `json:"lunchBreakStart"`
	LunchBreakEnd         string `json:"lunchBreakEnd"`
}

type SyncConfig struct {
	IsEnabled            bool              `json:"isEnabled"`
	IsCompressionEnabled bool              `json:"isCompressionEnabled"`
	IsEncryptionEnabled  bool              `json:"isEncryptionEnabled"`
	EncryptKey           *string           `json:"encryptKey"`
	SyncProvider         *string           `json:"syncProvider"`
	SyncInterval         int64             `json:"syncInterval"`
	WebDav               WebDavConfig      `json:"webDav"`
	LocalFileSync        LocalFileSyncConfig `json:"localFileSync"`
}

type WebDavConfig struct {
	BaseURL        *string `json:"baseUrl"`
	UserName       *string `json:"userName"`
	Password       *string `json:"password"`
	SyncFolderPath string  `json:"syncFolderPath"`
}

type LocalFileSyncConfig struct {
	SyncFolderPath string `json:"syncFolderPath"`
}

const minute = int64(60 * 1000)

func strPtr(s string) *string { return &s }

// DefaultGlobalConfig returns the default global configuration emitted
// into every converted document. Values match what a fresh Super
// Productivity install exports.
func DefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		AppFeatures: AppFeaturesConfig{
			IsTimeTrackingEnabled:     true,
			IsFocusModeEnabled:        true,
			IsSchedulerEnabled:        true,
			IsPlannerEnabled:          true,
			IsBoardsEnabled:           true,
			IsScheduleDayPanelEnabled: true,
			IsIssuesPanelEnabled:      true,
			IsProjectNotesEnabled:     true,
			IsSyncIconEnabled:         true,
			IsDonatePageEnabled:       true,
			IsEnableUserProfiles:      false,
		},
		Misc: MiscConfig{
			IsConfirmBeforeExitWithoutFinishDay: true,
			IsConfirmBeforeTaskDelete:           true,
			IsAutoAddWorkedOnToToday:            true,
			IsTrayShowCurrentTask:               true,
			IsTrayShowCurrentCountdown:          true,
			TaskNotesTpl:                        "**How can I best achieve it now?**\n\n**What do I want?**\n\n**Why do I want it?**\n",
			CustomTheme:                         "default",
		},
		ShortSyntax: ShortSyntaxConfig{
			IsEnableProject: true,
			IsEnableDue:     true,
			IsEnableTag:     true,
		},
		Idle: IdleConfig{
			IsEnableIdleTimeTracking: true,
			MinIdleTime:              5 * minute,
		},
		TakeABreak: TakeABreakConfig{
			IsTakeABreakEnabled:            true,
			TimedFullScreenBlockerDuration: 8000,
			TakeABreakMessage:              "You have been working for ${duration} without one. Go away from the computer! Take a short walk! Makes you more productive in the long run!",
			TakeABreakMinWorkingTime:       60 * minute,
			TakeABreakSnoozeTime:           15 * minute,
			MotivationalImgs:               []string{},
		},
		DominaMode: DominaModeConfig{
			Interval: 5 * minute,
			Volume:   75,
			Text:     "Your current task is: ${currentTaskTitle}",
		},
		Pomodoro: PomodoroConfig{
			Duration:                25 * minute,
			BreakDuration:           5 * minute,
			LongerBreakDuration:     15 * minute,
			CyclesBeforeLongerBreak: 4,
		},
		Keyboard: KeyboardConfig{
			GlobalShowHide:                strPtr("Ctrl+Shift+X"),
			AddNewTask:                    strPtr("Shift+A"),
			AddNewProject:                 strPtr("Shift+P"),
			AddNewNote:                    strPtr("N"),
			OpenProjectNotes:              strPtr("Shift+N"),
			ToggleTaskViewCustomizerPanel: strPtr("C"),
			ToggleIssuePanel:              strPtr("P"),
			FocusSideNav:                  strPtr("Shift+D"),
			ShowHelp:                      strPtr("?"),
			ShowSearchBar:                 strPtr("Shift+F"),
			ToggleBacklog:                 strPtr("B"),
			GoToFocusMode:                 strPtr("F"),
			GoToWorkView:                  strPtr("W"),
			GoToScheduledView:             strPtr("Shift+S"),
			GoToTimeline:                  strPtr("Shift+T"),
			ZoomIn:                        strPtr("Ctrl++"),
			ZoomOut:                       strPtr("Ctrl+-"),
			ZoomDefault:                   strPtr("Ctrl+0"),
			SaveNote:                      strPtr("Ctrl+S"),
			TriggerSync:                   strPtr("Ctrl+S"),
			TaskToggleDetailPanelOpen:     strPtr("I"),
			TaskOpenEstimationDialog:      strPtr("T"),
			TaskSchedule:                  strPtr("S"),
			TaskToggleDone:                strPtr("D"),
			TaskAddSubTask:                strPtr("A"),
			TaskAddAttachment:             strPtr("L"),
			TaskDelete:                    strPtr("Backspace"),
			TaskMoveToProject:             strPtr("E"),
			TaskOpenContextMenu:           strPtr("Q"),
			SelectPreviousTask:            strPtr("K"),
			SelectNextTask:                strPtr("J"),
			MoveTaskUp:                    strPtr("Ctrl+Shift+ArrowUp"),
			MoveTaskDown:                  strPtr("Ctrl+Shift+ArrowDown"),
			MoveTaskToTop:                 strPtr("Ctrl+Alt+ArrowUp"),
			MoveTaskToBottom:              strPtr("Ctrl+Alt+ArrowDown"),
			MoveToBacklog:                 strPtr("Shift+B"),
			MoveToTodaysTasks:             strPtr("Shift+T"),
			TogglePlay:                    strPtr("Y"),
			TaskEditTags:                  strPtr("G"),
		},
		LocalBackup: LocalBackupConfig{
			IsEnabled: true,
		},
		Sound: SoundConfig{
			Volume:                   75,
			IsIncreaseDoneSoundPitch: true,
			DoneSound:                "ding-small-bell.mp3",
		},
		TimeTracking: TimeTrackingConfig{
			TrackingInterval:                 1000,
			IsNotifyWhenTimeEstimateExceeded: true,
			TrackingReminderMinTime:          5 * minute,
		},
		Reminder: ReminderConfig{
			IsCountdownBannerEnabled: true,
			CountdownDuration:        10 * minute,
			DefaultTaskRemindOption:  "AtStart",
		},
		Schedule: ScheduleConfig{
			IsWorkStartEndEnabled: true,
			WorkStart:             "9:00",
			WorkEnd:               "17:00",
			LunchBreakStart:       "13:00",
			LunchBreakEnd:         "14:00",
		},
		Sync: SyncConfig{
			SyncInterval: minute,
			WebDav: WebDavConfig{
				SyncFolderPath: "super-productivity",
			},
		},
	}
}
