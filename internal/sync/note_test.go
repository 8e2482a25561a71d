package sync

import (
	"context"
	"errors"
	"testing"
)

type fakeNoteRemote struct {
	appended []string
	latest   string
	hasNote  bool
	err      error
}

func (f *fakeNoteRemote) AppendNote(ctx context.Context, walletID, content string) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, content)
	return nil
}

func (f *fakeNoteRemote) LatestNote(ctx context.Context, walletID string) (string, bool, error) {
	return f.latest, f.hasNote, f.err
}

func TestNoteSaveAppendsRemotely(t *testing.T) {
	remote := &fakeNoteRemote{}
	n := &Note{Store: newStore(t), Wallet: func() string { return "wallet-1" }, Remote: remote}

	if err := n.Save(context.Background(), "first"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := n.Save(context.Background(), "second"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if n.LoadLocal() != "second" {
		t.Errorf("LoadLocal() = %q, want second", n.LoadLocal())
	}
	if len(remote.appended) != 2 {
		t.Errorf("remote appends = %d, want 2", len(remote.appended))
	}
}

func TestNoteSaveSurvivesRemoteFailure(t *testing.T) {
	remote := &fakeNoteRemote{err: errors.New("connection refused")}
	n := &Note{Store: newStore(t), Wallet: func() string { return "wallet-1" }, Remote: remote}

	if err := n.Save(context.Background(), "keep me"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if n.LoadLocal() != "keep me" {
		t.Errorf("LoadLocal() = %q, local write must survive remote failure", n.LoadLocal())
	}
}

func TestNoteHydrate(t *testing.T) {
	tests := []struct {
		name   string
		remote *fakeNoteRemote
		local  string
		want   string
	}{
		{"newest remote wins", &fakeNoteRemote{latest: "remote", hasNote: true}, "local", "remote"},
		{"no remote note keeps local", &fakeNoteRemote{}, "local", "local"},
		{"remote failure keeps local", &fakeNoteRemote{err: errors.New("boom")}, "local", "local"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &Note{Store: newStore(t), Wallet: func() string { return "wallet-1" }, Remote: tt.remote}
			if err := n.Save(context.Background(), tt.local); err != nil {
				t.Fatal(err)
			}
			if got := n.Hydrate(context.Background()); got != tt.want {
				t.Errorf("Hydrate() = %q, want %q", got, tt.want)
			}
		})
	}
}
