package remote

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jivana-app/jivana/internal/models"
)

// UpsertStats writes the per-tenant stats singleton, keyed on the unique
// wallet_id constraint.
func (s *Store) UpsertStats(ctx context.Context, row models.StatsRow) error {
	history, err := json.Marshal(row.ProgressOverTime)
	if err != nil {
		return wrap("upsert", "stats", err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO stats (wallet_id, overall_progress, weekly_completion, task_completion, progress_over_time, updated_at)
VALUES ($1, $2, $3, $4, $5, now())
ON CONFLICT (wallet_id) DO UPDATE SET
    overall_progress   = excluded.overall_progress,
    weekly_completion  = excluded.weekly_completion,
    task_completion    = excluded.task_completion,
    progress_over_time = excluded.progress_over_time,
    updated_at         = now()`,
		row.WalletID, row.OverallProgress, row.WeeklyCompletion, row.TaskCompletion, history)
	return wrap("upsert", "stats", err)
}

// GetStats returns the tenant's stats row, or (zero, false) when none exists.
func (s *Store) GetStats(ctx context.Context, walletID string) (models.StatsRow, bool, error) {
	var row models.StatsRow
	var history []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT wallet_id, overall_progress, weekly_completion, task_completion, progress_over_time
		 FROM stats WHERE wallet_id = $1`, walletID).
		Scan(&row.WalletID, &row.OverallProgress, &row.WeeklyCompletion, &row.TaskCompletion, &history)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StatsRow{}, false, nil
	}
	if err != nil {
		return models.StatsRow{}, false, wrap("select", "stats", err)
	}
	if err := json.Unmarshal(history, &row.ProgressOverTime); err != nil {
		return models.StatsRow{}, false, wrap("select", "stats", err)
	}
	return row, true, nil
}
