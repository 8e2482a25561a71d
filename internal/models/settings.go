package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/jivana-app/jivana/internal/constants"
)

// IncludeModules selects which content modules contribute a clause to the
// daily digest.
type IncludeModules struct {
	Tasks     bool `json:"tasks"`
	Habits    bool `json:"habits"`
	Wisdom    bool `json:"wisdom"`
	Diet      bool `json:"diet"`
	Lifestyle bool `json:"lifestyle"`
	Words     bool `json:"words"`
}

// NotificationSettings is the process-wide notification configuration,
// persisted entirely in the local mirror store and never synced remotely.
type NotificationSettings struct {
	NotificationsEnabled bool           `json:"notificationsEnabled"`
	DailyDigestTime      string         `json:"dailyDigestTime"` // HH:MM
	Timezone             string         `json:"timezone"`
	IncludeModules       IncludeModules `json:"includeModules"`

	// Per-feature frequencies: persisted but not wired to any scheduler.
	WorkoutReminders       int `json:"workoutReminders"`
	SocialMediaBreaks      int `json:"socialMediaBreaks"`
	DailyQuotesWisdom      int `json:"dailyQuotesWisdom"`
	JobReminders           int `json:"jobReminders"`
	HealthyFoodSuggestions int `json:"healthyFoodSuggestions"`
	WeeklyProgressReport   int `json:"weeklyProgressReport"`
	EnglishVocabulary      int `json:"englishVocabulary"`
}

func (s NotificationSettings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.DailyDigestTime, validation.Required, validation.Date(constants.TimeFormat)),
	)
}

// DefaultNotificationSettings returns the hardcoded defaults used when
// nothing (or something unreadable) is stored.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
		DailyDigestTime:      constants.DefaultDailyDigestTime,
		Timezone:             constants.DefaultTimezone,
		IncludeModules: IncludeModules{
			Tasks:     true,
			Habits:    true,
			Wisdom:    true,
			Diet:      true,
			Lifestyle: true,
			Words:     true,
		},
		WorkoutReminders:       constants.DefaultWorkoutReminders,
		SocialMediaBreaks:      constants.DefaultSocialMediaBreaks,
		DailyQuotesWisdom:      constants.DefaultDailyQuotesWisdom,
		JobReminders:           constants.DefaultJobReminders,
		HealthyFoodSuggestions: constants.DefaultHealthyFoodSuggestions,
		WeeklyProgressReport:   constants.DefaultWeeklyProgressReport,
		EnglishVocabulary:      constants.DefaultEnglishVocabulary,
	}
}
