package constants

const (
	// Notification Settings
	SettingNotificationsEnabled = "notifications_enabled"
	SettingDailyDigestTime      = "daily_digest_time"
	SettingTimezone             = "timezone"

	// Module inclusion flags for the daily digest
	ModuleTasks     = "tasks"
	ModuleHabits    = "habits"
	ModuleWisdom    = "wisdom"
	ModuleDiet      = "diet"
	ModuleLifestyle = "lifestyle"
	ModuleWords     = "words"

	// Default Settings Values
	DefaultNotificationsEnabled = false
	DefaultDailyDigestTime      = "08:00"
	DefaultTimezone             = "Local" // Use system local timezone by default

	// Per-feature reminder frequencies (persisted but not wired to a
	// scheduler yet, kept for forward compatibility with stored settings).
	DefaultWorkoutReminders       = 3
	DefaultSocialMediaBreaks      = 4
	DefaultDailyQuotesWisdom      = 2
	DefaultJobReminders           = 1
	DefaultHealthyFoodSuggestions = 2
	DefaultWeeklyProgressReport   = 1
	DefaultEnglishVocabulary      = 2
)
