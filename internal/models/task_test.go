package models

import (
	"sort"
	"testing"

	"github.com/jivana-app/jivana/internal/constants"
)

func TestTaskValidate(t *testing.T) {
	tests := []struct {
		name    string
		task    Task
		wantErr bool
	}{
		{"valid", Task{Title: "Read", Priority: constants.PriorityHigh, Status: constants.TaskTodo}, false},
		{"missing title", Task{Priority: constants.PriorityHigh, Status: constants.TaskTodo}, true},
		{"bad priority", Task{Title: "Read", Priority: "urgent", Status: constants.TaskTodo}, true},
		{"bad status", Task{Title: "Read", Priority: constants.PriorityLow, Status: "paused"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestJobOrdering(t *testing.T) {
	jobs := []Job{
		{ID: "c", Date: "2026-09-02", Time: "09:00"},
		{ID: "a", Date: "2026-09-01", Time: "14:00"},
		{ID: "b", Date: "2026-09-02", Time: "08:30"},
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Before(jobs[j]) })

	got := jobs[0].ID + jobs[1].ID + jobs[2].ID
	if got != "abc" {
		t.Errorf("order = %q, want abc", got)
	}
}

func TestJobValidate(t *testing.T) {
	valid := Job{Title: "Standup", Date: "2026-09-01", Time: "09:30"}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid job rejected: %v", err)
	}
	if err := (Job{Title: "Standup", Date: "2026-09-01", Time: "9am"}).Validate(); err == nil {
		t.Error("expected error for malformed time")
	}
}

func TestDefaultNotificationSettings(t *testing.T) {
	s := DefaultNotificationSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
	if !s.IncludeModules.Tasks || !s.IncludeModules.Words {
		t.Error("defaults should enable every digest module")
	}
	if s.DailyDigestTime != constants.DefaultDailyDigestTime {
		t.Errorf("digest time = %q, want %q", s.DailyDigestTime, constants.DefaultDailyDigestTime)
	}
}
