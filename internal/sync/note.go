package sync

import (
	"context"

	"github.com/jivana-app/jivana/internal/constants"
	"github.com/jivana-app/jivana/internal/logger"
	"github.com/jivana-app/jivana/internal/storage"
)

// NoteRemote is the remote surface for the notepad singleton.
type NoteRemote interface {
	AppendNote(ctx context.Context, walletID, content string) error
	LatestNote(ctx context.Context, walletID string) (string, bool, error)
}

// Note reconciles the notepad: a last-write-wins singleton. Saves append a
// remote row, reads return the newest one.
type Note struct {
	Store  storage.Provider
	Wallet func() string
	Remote NoteRemote
}

func (n *Note) LoadLocal() string {
	return storage.GetItem(n.Store, constants.KeyNotepad, "")
}

// Save writes the note locally, then appends it remotely best-effort.
func (n *Note) Save(ctx context.Context, content string) error {
	if err := storage.SetItem(n.Store, constants.KeyNotepad, content); err != nil {
		return err
	}

	walletID := ""
	if n.Wallet != nil {
		walletID = n.Wallet()
	}
	if walletID == "" || n.Remote == nil {
		return nil
	}
	if err := n.Remote.AppendNote(ctx, walletID, content); err != nil {
		logger.Warn("Remote note save failed", "error", err)
	}
	return nil
}

// Hydrate replaces the local note with the newest remote row, when one
// exists. Failures keep the local note.
func (n *Note) Hydrate(ctx context.Context) string {
	local := n.LoadLocal()

	walletID := ""
	if n.Wallet != nil {
		walletID = n.Wallet()
	}
	if walletID == "" || n.Remote == nil {
		return local
	}

	content, ok, err := n.Remote.LatestNote(ctx, walletID)
	if err != nil {
		logger.Warn("Remote note load failed, keeping local note", "error", err)
		return local
	}
	if !ok {
		return local
	}
	if err := storage.SetItem(n.Store, constants.KeyNotepad, content); err != nil {
		logger.Warn("Failed to rewrite local note after hydrate", "error", err)
	}
	return content
}
