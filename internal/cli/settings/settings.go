// Package settings implements the notification settings command.
package settings

import (
	"fmt"

	"github.com/jivana-app/jivana/internal/cli"
	"github.com/jivana-app/jivana/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	NotificationsEnabled *bool   `help:"Enable or disable the daily digest."`
	DigestTime           *string `help:"Daily digest time (HH:MM)."`
	Timezone             *string `help:"IANA timezone name, or 'Local'."`

	IncludeTasks     *bool `help:"Include pending tasks in the digest."`
	IncludeHabits    *bool `help:"Include remaining habits in the digest."`
	IncludeWisdom    *bool `help:"Include a wisdom quote in the digest."`
	IncludeDiet      *bool `help:"Include a meal idea in the digest."`
	IncludeWords     *bool `help:"Include a vocabulary word in the digest."`
	IncludeLifestyle *bool `help:"Include a lifestyle tip in the digest."`

	WorkoutReminders  *int `help:"Workout reminders per day."`
	SocialMediaBreaks *int `help:"Social media break nudges per day."`
	EnglishVocabulary *int `help:"Vocabulary prompts per day."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings := ctx.Settings()

	if c.List {
		fmt.Println("Notification Settings:")
		fmt.Printf("  Enabled:           %v\n", settings.NotificationsEnabled)
		fmt.Printf("  Digest Time:       %s\n", settings.DailyDigestTime)
		fmt.Printf("  Timezone:          %s\n", settings.Timezone)
		fmt.Println("\nDigest Modules:")
		fmt.Printf("  Tasks:             %v\n", settings.IncludeModules.Tasks)
		fmt.Printf("  Habits:            %v\n", settings.IncludeModules.Habits)
		fmt.Printf("  Wisdom:            %v\n", settings.IncludeModules.Wisdom)
		fmt.Printf("  Diet:              %v\n", settings.IncludeModules.Diet)
		fmt.Printf("  Words:             %v\n", settings.IncludeModules.Words)
		fmt.Printf("  Lifestyle:         %v\n", settings.IncludeModules.Lifestyle)
		fmt.Println("\nFrequencies:")
		fmt.Printf("  Workout Reminders:   %d\n", settings.WorkoutReminders)
		fmt.Printf("  Social Media Breaks: %d\n", settings.SocialMediaBreaks)
		fmt.Printf("  English Vocabulary:  %d\n", settings.EnglishVocabulary)
		return nil
	}

	updated := false
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.DigestTime != nil {
		if !utils.ValidateTimeFormat(*c.DigestTime) {
			return fmt.Errorf("invalid digest time %q (expected HH:MM)", *c.DigestTime)
		}
		settings.DailyDigestTime = *c.DigestTime
		updated = true
	}
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("unknown timezone %q", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.IncludeTasks != nil {
		settings.IncludeModules.Tasks = *c.IncludeTasks
		updated = true
	}
	if c.IncludeHabits != nil {
		settings.IncludeModules.Habits = *c.IncludeHabits
		updated = true
	}
	if c.IncludeWisdom != nil {
		settings.IncludeModules.Wisdom = *c.IncludeWisdom
		updated = true
	}
	if c.IncludeDiet != nil {
		settings.IncludeModules.Diet = *c.IncludeDiet
		updated = true
	}
	if c.IncludeWords != nil {
		settings.IncludeModules.Words = *c.IncludeWords
		updated = true
	}
	if c.IncludeLifestyle != nil {
		settings.IncludeModules.Lifestyle = *c.IncludeLifestyle
		updated = true
	}
	if c.WorkoutReminders != nil {
		settings.WorkoutReminders = *c.WorkoutReminders
		updated = true
	}
	if c.SocialMediaBreaks != nil {
		settings.SocialMediaBreaks = *c.SocialMediaBreaks
		updated = true
	}
	if c.EnglishVocabulary != nil {
		settings.EnglishVocabulary = *c.EnglishVocabulary
		updated = true
	}

	if updated {
		if err := ctx.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
