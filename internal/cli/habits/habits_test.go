package habits

import (
	"path/filepath"
	"testing"

	"github.com/jivana-app/jivana/internal/cli"
	"github.com/jivana-app/jivana/internal/constants"
	"github.com/jivana-app/jivana/internal/storage"
)

func newContext(t *testing.T) *cli.Context {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "jivana.json"))
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	return &cli.Context{Store: store}
}

func TestHabitAddDefaults(t *testing.T) {
	ctx := newContext(t)
	if err := (&HabitAddCmd{Name: "Morning run", Frequency: "5 days/week"}).Run(ctx); err != nil {
		t.Fatalf("add: %v", err)
	}

	habits := ctx.Habits().LoadLocal()
	if len(habits) != 1 {
		t.Fatalf("got %d habits, want 1", len(habits))
	}
	h := habits[0]
	if h.Status != constants.HabitActive {
		t.Errorf("status = %q, want active", h.Status)
	}
	if h.StartDate != ctx.Today() {
		t.Errorf("start date = %q, want today %q", h.StartDate, ctx.Today())
	}
}

func TestHabitToggleRoundTrip(t *testing.T) {
	ctx := newContext(t)
	if err := (&HabitAddCmd{Name: "Hydrate", Frequency: "7 days/week"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	id := ctx.Habits().LoadLocal()[0].ID

	if err := (&HabitToggleCmd{ID: id}).Run(ctx); err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	h := ctx.Habits().LoadLocal()[0]
	if !h.CompletedOn(ctx.Today()) {
		t.Error("habit not marked complete for today")
	}
	if h.Streak != 1 {
		t.Errorf("streak = %d, want 1", h.Streak)
	}
	if h.Status != constants.HabitDone {
		t.Errorf("status = %q, want done", h.Status)
	}

	if err := (&HabitToggleCmd{ID: id}).Run(ctx); err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	h = ctx.Habits().LoadLocal()[0]
	if h.CompletedOn(ctx.Today()) {
		t.Error("habit still marked complete after toggle off")
	}
	if h.Streak != 0 {
		t.Errorf("streak = %d, want 0 after clearing today", h.Streak)
	}
	if h.Status != constants.HabitActive {
		t.Errorf("status = %q, want active", h.Status)
	}
}

func TestHabitToggleExplicitDate(t *testing.T) {
	ctx := newContext(t)
	if err := (&HabitAddCmd{Name: "Stretch", Frequency: "7 days/week"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	id := ctx.Habits().LoadLocal()[0].ID

	if err := (&HabitToggleCmd{ID: id, Date: "2026-01-05"}).Run(ctx); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !ctx.Habits().LoadLocal()[0].CompletedOn("2026-01-05") {
		t.Error("explicit date not recorded")
	}
}

func TestHabitToggleRejectsMalformedDate(t *testing.T) {
	ctx := newContext(t)
	if err := (&HabitAddCmd{Name: "Stretch", Frequency: "7 days/week"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	id := ctx.Habits().LoadLocal()[0].ID

	if err := (&HabitToggleCmd{ID: id, Date: "05/01/2026"}).Run(ctx); err == nil {
		t.Error("expected error for malformed date")
	}
	if len(ctx.Habits().LoadLocal()[0].CompletionDates) != 0 {
		t.Error("malformed date was recorded")
	}
}

func TestHabitToggleUnknownID(t *testing.T) {
	ctx := newContext(t)
	if err := (&HabitToggleCmd{ID: "missing"}).Run(ctx); err == nil {
		t.Error("expected error for unknown id")
	}
}
