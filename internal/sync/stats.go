package sync

import (
	"context"
	gosync "sync"
	"time"

	"github.com/jivana-app/jivana/internal/constants"
	"github.com/jivana-app/jivana/internal/logger"
	"github.com/jivana-app/jivana/internal/models"
	"github.com/jivana-app/jivana/internal/progress"
	"github.com/jivana-app/jivana/internal/storage"
)

// StatsSyncer recomputes the stats row whenever tasks or habits change and
// pushes it to the remote store behind a debouncer, so a burst of edits
// coalesces into a single upsert.
type StatsSyncer struct {
	Store  storage.Provider
	Wallet func() string
	Upsert func(ctx context.Context, row models.StatsRow) error

	debouncer *Debouncer

	mu      gosync.Mutex
	pending *models.StatsRow
}

func NewStatsSyncer(store storage.Provider, wallet func() string, upsert func(context.Context, models.StatsRow) error) *StatsSyncer {
	return &StatsSyncer{
		Store:     store,
		Wallet:    wallet,
		Upsert:    upsert,
		debouncer: NewDebouncer(constants.StatsSyncQuietPeriod),
	}
}

// Recompute derives the stats row from the current collections, folds
// today's value into the local history series, and schedules the remote
// upsert. The returned row reflects the local state immediately.
func (s *StatsSyncer) Recompute(tasks []models.Task, habits []models.Habit, today time.Time) models.StatsRow {
	overall := progress.OverallProgress(tasks, habits)

	history := storage.GetItem(s.Store, constants.KeyStatsHistory, []models.HistoryPoint(nil))
	history = progress.RollingHistory(history, overall, today)
	if err := storage.SetItem(s.Store, constants.KeyStatsHistory, history); err != nil {
		logger.Warn("Failed to persist stats history", "error", err)
	}

	row := models.StatsRow{
		WalletID:         s.Wallet(),
		OverallProgress:  overall,
		WeeklyCompletion: progress.WeeklyCompletion(history, today),
		TaskCompletion:   progress.TaskCompletion(tasks),
		ProgressOverTime: history,
	}

	if row.WalletID != "" && s.Upsert != nil {
		s.schedule(row)
	}
	return row
}

// MergeRemoteHistory folds a hydrated remote series into the local one,
// local values winning per date.
func (s *StatsSyncer) MergeRemoteHistory(remote []models.HistoryPoint) []models.HistoryPoint {
	local := storage.GetItem(s.Store, constants.KeyStatsHistory, []models.HistoryPoint(nil))
	merged := progress.MergeHistory(local, remote)
	if err := storage.SetItem(s.Store, constants.KeyStatsHistory, merged); err != nil {
		logger.Warn("Failed to persist merged stats history", "error", err)
	}
	return merged
}

func (s *StatsSyncer) schedule(row models.StatsRow) {
	s.mu.Lock()
	s.pending = &row
	s.mu.Unlock()

	s.debouncer.Trigger(func() {
		s.mu.Lock()
		pending := s.pending
		s.pending = nil
		s.mu.Unlock()
		if pending == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Upsert(ctx, *pending); err != nil {
			logger.Warn("Remote stats upsert failed", "error", err)
		}
	})
}

// Flush pushes any pending upsert immediately. One-shot commands call it
// before exit so the debounce window cannot outlive the process.
func (s *StatsSyncer) Flush(ctx context.Context) {
	s.debouncer.Cancel()

	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	if pending == nil || s.Upsert == nil {
		return
	}
	if err := s.Upsert(ctx, *pending); err != nil {
		logger.Warn("Remote stats upsert failed", "error", err)
	}
}

// Shutdown drops any pending upsert.
func (s *StatsSyncer) Shutdown() {
	s.debouncer.Cancel()
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
}
