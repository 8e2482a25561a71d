package constants

// Local mirror store keys. These mirror the collection names used by the
// hosted backend so a hydrate can overwrite a key wholesale.
const (
	KeyTasks                = "jivana-tasks"
	KeyHabits               = "jivana-habits"
	KeyJobs                 = "jivana-jobs"
	KeyNotepad              = "jivana-notepad"
	KeyUserWords            = "jivana-user-words"
	KeyUserLifestyle        = "jivana-user-lifestyle"
	KeyStatsHistory         = "jivana-stats-history"
	KeyNotificationSettings = "jivana-notification-settings"
	KeyWallet               = "jivana-wallet"
	KeyDeviceID             = "jivana-device-id"

	// Per-day cache keys. The stored pick carries its date; a mismatch with
	// today forces a reroll.
	KeyDailyWord   = "jivana-daily-word"
	KeyDailyWisdom = "jivana-daily-wisdom"
	KeyDailyDiet   = "jivana-daily-diet"

	// Cached AI-refreshed content, retained across failed refreshes.
	KeyLifestyleTips = "jivana-lifestyle-tips"
	KeyDietLists     = "jivana-diet-lists"
)
