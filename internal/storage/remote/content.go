package remote

import (
	"context"

	pq "github.com/lib/pq"

	"github.com/jivana-app/jivana/internal/models"
)

// User-added vocabulary and lifestyle practices. Rows returned here are
// always marked user-added; built-in content never reaches the store.

func (s *Store) SelectWords(ctx context.Context, walletID string) ([]models.Word, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, word, phonetic, meaning, example FROM words WHERE wallet_id = $1 ORDER BY created_at`, walletID)
	if err != nil {
		return nil, wrap("select", "words", err)
	}
	defer rows.Close()

	var out []models.Word
	for rows.Next() {
		var id int64
		var w models.Word
		if err := rows.Scan(&id, &w.Word, &w.Phonetic, &w.Meaning, &w.Example); err != nil {
			return nil, wrap("select", "words", err)
		}
		w.ID = idString(id)
		w.IsUserAdded = true
		out = append(out, w)
	}
	return out, wrap("select", "words", rows.Err())
}

func (s *Store) InsertWord(ctx context.Context, walletID string, w models.Word) (string, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO words (wallet_id, word, phonetic, meaning, example) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		walletID, w.Word, w.Phonetic, w.Meaning, w.Example).Scan(&id)
	if err != nil {
		return "", wrap("insert", "words", err)
	}
	return idString(id), nil
}

func (s *Store) UpdateWord(ctx context.Context, walletID string, w models.Word) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE words SET word = $1, phonetic = $2, meaning = $3, example = $4 WHERE id = $5 AND wallet_id = $6`,
		w.Word, w.Phonetic, w.Meaning, w.Example, w.ID, walletID)
	return wrap("update", "words", err)
}

func (s *Store) DeleteWord(ctx context.Context, walletID, id string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM words WHERE id = $1 AND wallet_id = $2`, id, walletID)
	return wrap("delete", "words", err)
}

func (s *Store) SelectLifestyle(ctx context.Context, walletID string) ([]models.LifestylePractice, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category, title, description, benefits FROM lifestyle WHERE wallet_id = $1 ORDER BY created_at`, walletID)
	if err != nil {
		return nil, wrap("select", "lifestyle", err)
	}
	defer rows.Close()

	var out []models.LifestylePractice
	for rows.Next() {
		var id int64
		var p models.LifestylePractice
		if err := rows.Scan(&id, &p.Category, &p.Title, &p.Description, pq.Array(&p.Benefits)); err != nil {
			return nil, wrap("select", "lifestyle", err)
		}
		p.ID = idString(id)
		p.IsUserAdded = true
		out = append(out, p)
	}
	return out, wrap("select", "lifestyle", rows.Err())
}

func (s *Store) InsertLifestyle(ctx context.Context, walletID string, p models.LifestylePractice) (string, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO lifestyle (wallet_id, category, title, description, benefits) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		walletID, p.Category, p.Title, p.Description, pq.Array(p.Benefits)).Scan(&id)
	if err != nil {
		return "", wrap("insert", "lifestyle", err)
	}
	return idString(id), nil
}

func (s *Store) UpdateLifestyle(ctx context.Context, walletID string, p models.LifestylePractice) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE lifestyle SET category = $1, title = $2, description = $3, benefits = $4 WHERE id = $5 AND wallet_id = $6`,
		p.Category, p.Title, p.Description, pq.Array(p.Benefits), p.ID, walletID)
	return wrap("update", "lifestyle", err)
}

func (s *Store) DeleteLifestyle(ctx context.Context, walletID, id string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM lifestyle WHERE id = $1 AND wallet_id = $2`, id, walletID)
	return wrap("delete", "lifestyle", err)
}
