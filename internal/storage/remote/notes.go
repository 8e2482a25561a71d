package remote

import (
	"context"
	"database/sql"
	"errors"
)

// The notepad is a singleton with last-write-wins semantics: every save
// appends a row and reads return the newest one.

func (s *Store) AppendNote(ctx context.Context, walletID, content string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO notes (wallet_id, content) VALUES ($1, $2)`, walletID, content)
	return wrap("insert", "notes", err)
}

// LatestNote returns the newest note for the tenant, or ("", false) when no
// note has been saved yet.
func (s *Store) LatestNote(ctx context.Context, walletID string) (string, bool, error) {
	var content string
	err := s.db.QueryRowContext(ctx,
		`SELECT content FROM notes WHERE wallet_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1`,
		walletID).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrap("select", "notes", err)
	}
	return content, true, nil
}
