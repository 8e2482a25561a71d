package sync

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jivana-app/jivana/internal/constants"
	"github.com/jivana-app/jivana/internal/models"
	"github.com/jivana-app/jivana/internal/storage"
)

func newStore(t *testing.T) storage.Provider {
	t.Helper()
	s := storage.NewJSONStore(filepath.Join(t.TempDir(), "jivana.json"))
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	return s
}

func taskCollection(store storage.Provider, wallet string) *Collection[models.Task] {
	return &Collection[models.Task]{
		Store:  store,
		Key:    constants.KeyTasks,
		Wallet: func() string { return wallet },
		WithID: func(t models.Task, id string) models.Task { t.ID = id; return t },
	}
}

func TestCreateWithoutWalletKeepsTempID(t *testing.T) {
	c := taskCollection(newStore(t), "")

	created, err := c.Create(context.Background(), models.Task{Title: "stretch", Priority: constants.PriorityLow, Status: constants.TaskTodo})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !IsTempID(created.ID) {
		t.Errorf("Create() id = %q, want temp token", created.ID)
	}
	if got := c.LoadLocal(); len(got) != 1 || got[0].ID != created.ID {
		t.Errorf("LoadLocal() = %v, want the created task", got)
	}
}

func TestCreateSwapsTempIDOnRemoteSuccess(t *testing.T) {
	c := taskCollection(newStore(t), "wallet-1")
	c.InsertRemote = func(ctx context.Context, walletID string, e models.Task) (string, error) {
		return "101", nil
	}

	created, err := c.Create(context.Background(), models.Task{Title: "meditate", Priority: constants.PriorityHigh, Status: constants.TaskTodo})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID != "101" {
		t.Errorf("Create() id = %q, want store-assigned 101", created.ID)
	}
	if got := c.LoadLocal(); len(got) != 1 || got[0].ID != "101" {
		t.Errorf("LoadLocal() = %v, want re-persisted id 101", got)
	}
}

func TestCreateKeepsTempIDOnRemoteFailure(t *testing.T) {
	c := taskCollection(newStore(t), "wallet-1")
	c.InsertRemote = func(ctx context.Context, walletID string, e models.Task) (string, error) {
		return "", errors.New("connection refused")
	}

	created, err := c.Create(context.Background(), models.Task{Title: "journal", Priority: constants.PriorityMedium, Status: constants.TaskTodo})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !IsTempID(created.ID) {
		t.Errorf("Create() id = %q, want temp token after remote failure", created.ID)
	}
	if got := c.LoadLocal(); len(got) != 1 || got[0].ID != created.ID {
		t.Errorf("LoadLocal() = %v, local write must survive remote failure", got)
	}
}

func TestUpdateIgnoresDeletedEntity(t *testing.T) {
	c := taskCollection(newStore(t), "")

	created, err := c.Create(context.Background(), models.Task{Title: "read", Priority: constants.PriorityLow, Status: constants.TaskTodo})
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Delete(context.Background(), created.ID); err != nil {
		t.Fatal(err)
	}

	created.Status = constants.TaskCompleted
	if err := c.Update(context.Background(), created); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got := c.LoadLocal(); len(got) != 0 {
		t.Errorf("LoadLocal() = %v, update must not resurrect a deleted task", got)
	}
}

func TestUpdateSkipsRemoteForTempID(t *testing.T) {
	c := taskCollection(newStore(t), "wallet-1")
	var remoteCalls atomic.Int32
	c.UpdateRemote = func(ctx context.Context, walletID string, e models.Task) error {
		remoteCalls.Add(1)
		return nil
	}

	temp := models.Task{ID: NextTempID(), Title: "walk", Priority: constants.PriorityLow, Status: constants.TaskTodo}
	if err := c.Update(context.Background(), temp); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if remoteCalls.Load() != 0 {
		t.Error("Update() issued remote call for temp id")
	}

	real := models.Task{ID: "7", Title: "walk", Priority: constants.PriorityLow, Status: constants.TaskCompleted}
	if err := c.Update(context.Background(), real); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if remoteCalls.Load() != 1 {
		t.Errorf("Update() remote calls = %d, want 1", remoteCalls.Load())
	}
}

func TestDeleteRemovesLocallyDespiteRemoteFailure(t *testing.T) {
	c := taskCollection(newStore(t), "wallet-1")
	c.DeleteRemote = func(ctx context.Context, walletID, id string) error {
		return errors.New("connection refused")
	}

	if err := storage.SetItem(c.Store, c.Key, []models.Task{{ID: "5", Title: "read"}}); err != nil {
		t.Fatal(err)
	}
	if err := c.Delete(context.Background(), "5"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got := c.LoadLocal(); len(got) != 0 {
		t.Errorf("LoadLocal() = %v, want empty after delete", got)
	}
}

func TestHydrateReplacesLocalAndRewritesMirror(t *testing.T) {
	c := taskCollection(newStore(t), "wallet-1")
	c.SelectRemote = func(ctx context.Context, walletID string) ([]models.Task, error) {
		return []models.Task{{ID: "1", Title: "remote truth"}}, nil
	}

	if err := storage.SetItem(c.Store, c.Key, []models.Task{{ID: "temp-9", Title: "stale"}}); err != nil {
		t.Fatal(err)
	}

	got := c.Hydrate(context.Background())
	if len(got) != 1 || got[0].Title != "remote truth" {
		t.Errorf("Hydrate() = %v, want remote rows", got)
	}
	if local := c.LoadLocal(); len(local) != 1 || local[0].ID != "1" {
		t.Errorf("LoadLocal() = %v, mirror not rewritten", local)
	}
}

func TestHydrateKeepsLocalOnRemoteFailure(t *testing.T) {
	c := taskCollection(newStore(t), "wallet-1")
	c.SelectRemote = func(ctx context.Context, walletID string) ([]models.Task, error) {
		return nil, errors.New("connection refused")
	}

	if err := storage.SetItem(c.Store, c.Key, []models.Task{{ID: "1", Title: "local"}}); err != nil {
		t.Fatal(err)
	}
	got := c.Hydrate(context.Background())
	if len(got) != 1 || got[0].Title != "local" {
		t.Errorf("Hydrate() = %v, want local view kept", got)
	}
}

func TestHydratePreservesHabitCompletionDates(t *testing.T) {
	store := newStore(t)
	c := &Collection[models.Habit]{
		Store:  store,
		Key:    constants.KeyHabits,
		Wallet: func() string { return "wallet-1" },
		WithID: func(h models.Habit, id string) models.Habit { h.ID = id; return h },
		Merge: func(local, remote models.Habit) models.Habit {
			remote.CompletionDates = local.CompletionDates
			return remote
		},
		SelectRemote: func(ctx context.Context, walletID string) ([]models.Habit, error) {
			return []models.Habit{{ID: "3", Name: "yoga", Streak: 4}}, nil
		},
	}

	local := []models.Habit{{ID: "3", Name: "yoga", CompletionDates: []string{"2026-08-28", "2026-08-29"}}}
	if err := storage.SetItem(store, constants.KeyHabits, local); err != nil {
		t.Fatal(err)
	}

	got := c.Hydrate(context.Background())
	if len(got) != 1 {
		t.Fatalf("Hydrate() returned %d habits, want 1", len(got))
	}
	if got[0].Streak != 4 {
		t.Errorf("Hydrate() streak = %d, want remote value 4", got[0].Streak)
	}
	if len(got[0].CompletionDates) != 2 {
		t.Errorf("Hydrate() completion dates = %v, want local history preserved", got[0].CompletionDates)
	}
}

func TestNextTempIDUniqueAndRecognized(t *testing.T) {
	a, b := NextTempID(), NextTempID()
	if a == b {
		t.Errorf("NextTempID() returned duplicate %q", a)
	}
	if !IsTempID(a) || IsTempID("42") {
		t.Error("IsTempID() misclassified ids")
	}
}

func TestDebouncerCoalescesAndCancels(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(20 * time.Millisecond)

	for i := 0; i < 5; i++ {
		d.Trigger(func() { calls.Add(1) })
	}
	time.Sleep(60 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("Trigger() fired %d times, want 1", got)
	}

	d.Trigger(func() { calls.Add(1) })
	d.Cancel()
	time.Sleep(60 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("Cancel() did not stop pending call, fired %d times", got)
	}
}
