package constants

import "time"

// TaskPriority represents the urgency bucket of a task.
type TaskPriority string

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

// HabitStatus reflects whether a habit has been completed today.
type HabitStatus string

// MealType represents a diet recommendation category.
type MealType string

const (
	AppName           = "jivana"
	DefaultConfigPath = "~/.config/jivana/jivana.json"
	Version           = "v0.3.0"

	// Keyring entries
	KeyringUserConnection = "database-connection"
	KeyringUserContentKey = "content-api-key"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "jivana-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "app.jivana.tray"

	// Task priorities
	PriorityHigh   TaskPriority = "High"
	PriorityMedium TaskPriority = "Medium"
	PriorityLow    TaskPriority = "Low"

	// Task statuses
	TaskTodo      TaskStatus = "todo"
	TaskCompleted TaskStatus = "completed"

	// Habit statuses
	HabitActive HabitStatus = "active"
	HabitDone   HabitStatus = "done"

	// Meal types
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnacks    MealType = "Snacks"

	// TempIDPrefix marks locally-minted ids that have not been acknowledged
	// by the remote store yet.
	TempIDPrefix = "temp-"

	// HistoryWindowDays caps the progress history series.
	HistoryWindowDays = 30

	// StatsSyncQuietPeriod is how long the debounced stats writer waits for
	// further changes before issuing the remote upsert.
	StatsSyncQuietPeriod = 300 * time.Millisecond
)

// MealTypes lists the diet categories in display order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnacks}
