package sync

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jivana-app/jivana/internal/constants"
	"github.com/jivana-app/jivana/internal/models"
	"github.com/jivana-app/jivana/internal/storage"
)

func TestStatsSyncerRecompute(t *testing.T) {
	store := newStore(t)
	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	s := NewStatsSyncer(store, func() string { return "" }, nil)

	tasks := []models.Task{
		{Status: constants.TaskCompleted},
		{Status: constants.TaskTodo},
	}
	row := s.Recompute(tasks, nil, today)

	if row.OverallProgress != 50 {
		t.Errorf("OverallProgress = %v, want 50", row.OverallProgress)
	}
	if row.TaskCompletion != 50 {
		t.Errorf("TaskCompletion = %v, want 50", row.TaskCompletion)
	}
	if len(row.ProgressOverTime) != 1 || row.ProgressOverTime[0].Date != "2026-08-30" {
		t.Errorf("ProgressOverTime = %v, want single point for today", row.ProgressOverTime)
	}

	history := storage.GetItem(store, constants.KeyStatsHistory, []models.HistoryPoint(nil))
	if len(history) != 1 {
		t.Errorf("persisted history = %v, want one point", history)
	}
}

func TestStatsSyncerDebouncesUpserts(t *testing.T) {
	store := newStore(t)
	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	var upserts atomic.Int32
	s := NewStatsSyncer(store, func() string { return "wallet-1" }, func(ctx context.Context, row models.StatsRow) error {
		upserts.Add(1)
		return nil
	})

	for i := 0; i < 5; i++ {
		s.Recompute([]models.Task{{Status: constants.TaskCompleted}}, nil, today)
	}
	time.Sleep(constants.StatsSyncQuietPeriod + 200*time.Millisecond)

	if got := upserts.Load(); got != 1 {
		t.Errorf("upserts = %d, want burst coalesced to 1", got)
	}
}

func TestStatsSyncerFlushPushesImmediately(t *testing.T) {
	store := newStore(t)
	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	var upserts atomic.Int32
	s := NewStatsSyncer(store, func() string { return "wallet-1" }, func(ctx context.Context, row models.StatsRow) error {
		upserts.Add(1)
		return nil
	})

	s.Recompute([]models.Task{{Status: constants.TaskCompleted}}, nil, today)
	s.Flush(context.Background())

	if got := upserts.Load(); got != 1 {
		t.Errorf("upserts = %d, want immediate flush", got)
	}

	// A second flush with nothing pending is a no-op.
	s.Flush(context.Background())
	if got := upserts.Load(); got != 1 {
		t.Errorf("upserts = %d, want no duplicate write", got)
	}
}

func TestStatsSyncerShutdownCancelsPending(t *testing.T) {
	store := newStore(t)
	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	var upserts atomic.Int32
	s := NewStatsSyncer(store, func() string { return "wallet-1" }, func(ctx context.Context, row models.StatsRow) error {
		upserts.Add(1)
		return nil
	})

	s.Recompute([]models.Task{{Status: constants.TaskTodo}}, nil, today)
	s.Shutdown()
	time.Sleep(constants.StatsSyncQuietPeriod + 200*time.Millisecond)

	if got := upserts.Load(); got != 0 {
		t.Errorf("upserts = %d, want pending write cancelled", got)
	}
}
