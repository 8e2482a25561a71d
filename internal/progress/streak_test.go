package progress

import (
	"testing"
	"time"

	"github.com/jivana-app/jivana/internal/constants"
)

var testToday = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func day(offset int) string {
	return testToday.AddDate(0, 0, offset).Format(constants.DateFormat)
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name      string
		dates     []string
		startDate string
		want      int
	}{
		{
			name: "empty set is zero regardless of start date",
			want: 0,
		},
		{
			name:      "today only",
			dates:     []string{day(0)},
			startDate: day(-3),
			want:      1,
		},
		{
			name:      "yesterday and today",
			dates:     []string{day(-1), day(0)},
			startDate: day(-3),
			want:      2,
		},
		{
			name:      "pending today anchors at yesterday",
			dates:     []string{day(-2), day(-1)},
			startDate: day(-10),
			want:      2,
		},
		{
			name:      "gap breaks the walk",
			dates:     []string{day(-3), day(-1), day(0)},
			startDate: day(-10),
			want:      2,
		},
		{
			name:      "stops before start date",
			dates:     []string{day(-2), day(-1), day(0)},
			startDate: day(-1),
			want:      2,
		},
		{
			name:      "stale completions two days back count nothing",
			dates:     []string{day(-4), day(-3)},
			startDate: day(-10),
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streak(tt.dates, tt.startDate, testToday); got != tt.want {
				t.Errorf("Streak(%v, %q) = %d, want %d", tt.dates, tt.startDate, got, tt.want)
			}
		})
	}
}

func TestStreakAddingTodayNeverDecreases(t *testing.T) {
	dates := []string{day(-2), day(-1)}
	before := Streak(dates, day(-10), testToday)
	after := Streak(append(dates, day(0)), day(-10), testToday)
	if after < before {
		t.Errorf("streak decreased from %d to %d after adding today", before, after)
	}
}

func TestStreakToggleOffToday(t *testing.T) {
	if got := Streak([]string{day(0)}, day(-3), testToday); got != 1 {
		t.Fatalf("Streak with today only = %d, want 1", got)
	}
	if got := Streak(nil, day(-3), testToday); got != 0 {
		t.Errorf("Streak after removing today = %d, want 0", got)
	}
}
