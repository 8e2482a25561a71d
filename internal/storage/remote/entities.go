package remote

import (
	"context"
	"strconv"

	"github.com/jivana-app/jivana/internal/models"
)

// Ids are assigned by the store as bigints and surfaced as strings to match
// the temp-token scheme used before an insert is acknowledged.
func idString(id int64) string { return strconv.FormatInt(id, 10) }

func (s *Store) SelectTasks(ctx context.Context, walletID string) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, priority, status FROM tasks WHERE wallet_id = $1 ORDER BY created_at`, walletID)
	if err != nil {
		return nil, wrap("select", "tasks", err)
	}
	defer rows.Close()

	var out []models.Task
	for rows.Next() {
		var id int64
		var t models.Task
		if err := rows.Scan(&id, &t.Title, &t.Priority, &t.Status); err != nil {
			return nil, wrap("select", "tasks", err)
		}
		t.ID = idString(id)
		out = append(out, t)
	}
	return out, wrap("select", "tasks", rows.Err())
}

func (s *Store) InsertTask(ctx context.Context, walletID string, t models.Task) (string, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO tasks (wallet_id, title, priority, status) VALUES ($1, $2, $3, $4) RETURNING id`,
		walletID, t.Title, t.Priority, t.Status).Scan(&id)
	if err != nil {
		return "", wrap("insert", "tasks", err)
	}
	return idString(id), nil
}

func (s *Store) UpdateTask(ctx context.Context, walletID string, t models.Task) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET title = $1, priority = $2, status = $3 WHERE id = $4 AND wallet_id = $5`,
		t.Title, t.Priority, t.Status, t.ID, walletID)
	return wrap("update", "tasks", err)
}

func (s *Store) DeleteTask(ctx context.Context, walletID, id string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = $1 AND wallet_id = $2`, id, walletID)
	return wrap("delete", "tasks", err)
}

// Habit rows carry no completion history; completion dates live only in the
// local mirror and are preserved across hydration.
func (s *Store) SelectHabits(ctx context.Context, walletID string) ([]models.Habit, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, target_frequency, start_date, streak, status
		 FROM habits WHERE wallet_id = $1 ORDER BY created_at`, walletID)
	if err != nil {
		return nil, wrap("select", "habits", err)
	}
	defer rows.Close()

	var out []models.Habit
	for rows.Next() {
		var id int64
		var h models.Habit
		if err := rows.Scan(&id, &h.Name, &h.Description, &h.TargetFrequency, &h.StartDate, &h.Streak, &h.Status); err != nil {
			return nil, wrap("select", "habits", err)
		}
		h.ID = idString(id)
		out = append(out, h)
	}
	return out, wrap("select", "habits", rows.Err())
}

func (s *Store) InsertHabit(ctx context.Context, walletID string, h models.Habit) (string, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO habits (wallet_id, name, description, target_frequency, start_date, streak, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		walletID, h.Name, h.Description, h.TargetFrequency, h.StartDate, h.Streak, h.Status).Scan(&id)
	if err != nil {
		return "", wrap("insert", "habits", err)
	}
	return idString(id), nil
}

func (s *Store) UpdateHabit(ctx context.Context, walletID string, h models.Habit) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE habits SET name = $1, description = $2, target_frequency = $3, start_date = $4, streak = $5, status = $6
		 WHERE id = $7 AND wallet_id = $8`,
		h.Name, h.Description, h.TargetFrequency, h.StartDate, h.Streak, h.Status, h.ID, walletID)
	return wrap("update", "habits", err)
}

func (s *Store) DeleteHabit(ctx context.Context, walletID, id string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM habits WHERE id = $1 AND wallet_id = $2`, id, walletID)
	return wrap("delete", "habits", err)
}

func (s *Store) SelectJobs(ctx context.Context, walletID string) ([]models.Job, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, time, title FROM jobs WHERE wallet_id = $1 ORDER BY created_at`, walletID)
	if err != nil {
		return nil, wrap("select", "jobs", err)
	}
	defer rows.Close()

	var out []models.Job
	for rows.Next() {
		var id int64
		var j models.Job
		if err := rows.Scan(&id, &j.Date, &j.Time, &j.Title); err != nil {
			return nil, wrap("select", "jobs", err)
		}
		j.ID = idString(id)
		out = append(out, j)
	}
	return out, wrap("select", "jobs", rows.Err())
}

func (s *Store) InsertJob(ctx context.Context, walletID string, j models.Job) (string, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO jobs (wallet_id, date, time, title) VALUES ($1, $2, $3, $4) RETURNING id`,
		walletID, j.Date, j.Time, j.Title).Scan(&id)
	if err != nil {
		return "", wrap("insert", "jobs", err)
	}
	return idString(id), nil
}

func (s *Store) UpdateJob(ctx context.Context, walletID string, j models.Job) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET date = $1, time = $2, title = $3 WHERE id = $4 AND wallet_id = $5`,
		j.Date, j.Time, j.Title, j.ID, walletID)
	return wrap("update", "jobs", err)
}

func (s *Store) DeleteJob(ctx context.Context, walletID, id string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM jobs WHERE id = $1 AND wallet_id = $2`, id, walletID)
	return wrap("delete", "jobs", err)
}
