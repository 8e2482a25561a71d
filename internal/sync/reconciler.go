// Package sync reconciles the local mirror with the remote tenant store.
// Writes are local-first: the mirror is updated synchronously, then the
// remote operation runs best-effort. A remote failure is logged and never
// rolls back the local write.
package sync

import (
	"context"

	"github.com/jivana-app/jivana/internal/logger"
	"github.com/jivana-app/jivana/internal/storage"
)

// Entity is any record carried by a reconciled collection.
type Entity interface {
	GetID() string
}

// Collection reconciles one entity collection between the local mirror key
// and its remote table. The remote hooks are nil-safe func fields so tests
// can stub individual operations.
type Collection[E Entity] struct {
	Store  storage.Provider
	Key    string
	Wallet func() string

	SelectRemote func(ctx context.Context, walletID string) ([]E, error)
	InsertRemote func(ctx context.Context, walletID string, e E) (string, error)
	UpdateRemote func(ctx context.Context, walletID string, e E) error
	DeleteRemote func(ctx context.Context, walletID, id string) error

	// WithID returns a copy of e carrying the given id.
	WithID func(e E, id string) E
	// Merge, when set, folds local-only fields into the remote row during
	// hydration. Habits use it to preserve completion history.
	Merge func(local, remote E) E
}

func (c *Collection[E]) wallet() string {
	if c.Wallet == nil {
		return ""
	}
	return c.Wallet()
}

// LoadLocal returns the mirror's view of the collection. Missing or corrupt
// data yields an empty slice.
func (c *Collection[E]) LoadLocal() []E {
	return storage.GetItem(c.Store, c.Key, []E(nil))
}

func (c *Collection[E]) saveLocal(items []E) error {
	return storage.SetItem(c.Store, c.Key, items)
}

// Hydrate refreshes the collection from the remote store. Without a tenant
// id, or when the remote read fails, the local view is kept as-is.
func (c *Collection[E]) Hydrate(ctx context.Context) []E {
	local := c.LoadLocal()

	walletID := c.wallet()
	if walletID == "" || c.SelectRemote == nil {
		return local
	}

	remote, err := c.SelectRemote(ctx, walletID)
	if err != nil {
		logger.Warn("Remote load failed, keeping local view", "key", c.Key, "error", err)
		return local
	}

	if c.Merge != nil {
		byID := make(map[string]E, len(local))
		for _, e := range local {
			byID[e.GetID()] = e
		}
		for i, r := range remote {
			if l, ok := byID[r.GetID()]; ok {
				remote[i] = c.Merge(l, r)
			}
		}
	}

	if err := c.saveLocal(remote); err != nil {
		logger.Warn("Failed to rewrite local mirror after hydrate", "key", c.Key, "error", err)
	}
	return remote
}

// Create assigns a temp id, writes locally, then attempts the remote insert.
// On success the temp id is swapped for the store-assigned id and the mirror
// is re-persisted; on failure the entity keeps its temp id.
func (c *Collection[E]) Create(ctx context.Context, e E) (E, error) {
	tempID := NextTempID()
	e = c.WithID(e, tempID)

	items := append(c.LoadLocal(), e)
	if err := c.saveLocal(items); err != nil {
		return e, err
	}

	walletID := c.wallet()
	if walletID == "" || c.InsertRemote == nil {
		return e, nil
	}

	realID, err := c.InsertRemote(ctx, walletID, e)
	if err != nil {
		logger.Warn("Remote insert failed, keeping temp id", "key", c.Key, "id", tempID, "error", err)
		return e, nil
	}

	// Discard a late result if the entity vanished or the tenant changed
	// while the insert was in flight.
	if c.wallet() != walletID {
		return e, nil
	}
	items = c.LoadLocal()
	for i, it := range items {
		if it.GetID() == tempID {
			e = c.WithID(e, realID)
			items[i] = e
			if err := c.saveLocal(items); err != nil {
				return e, err
			}
			break
		}
	}
	return e, nil
}

// Update rewrites the entity locally, then remotely unless it still carries
// a temp id. An entity with no local match is ignored so a stale update
// cannot resurrect a deleted entity.
func (c *Collection[E]) Update(ctx context.Context, e E) error {
	items := c.LoadLocal()
	found := false
	for i, it := range items {
		if it.GetID() == e.GetID() {
			items[i] = e
			found = true
			break
		}
	}
	if !found {
		logger.Warn("Update target not found, ignoring", "key", c.Key, "id", e.GetID())
		return nil
	}
	if err := c.saveLocal(items); err != nil {
		return err
	}

	walletID := c.wallet()
	if walletID == "" || c.UpdateRemote == nil || IsTempID(e.GetID()) {
		return nil
	}
	if err := c.UpdateRemote(ctx, walletID, e); err != nil {
		logger.Warn("Remote update failed", "key", c.Key, "id", e.GetID(), "error", err)
	}
	return nil
}

// Delete removes the entity locally, then remotely unless it only ever
// existed under a temp id.
func (c *Collection[E]) Delete(ctx context.Context, id string) error {
	items := c.LoadLocal()
	kept := items[:0]
	for _, it := range items {
		if it.GetID() != id {
			kept = append(kept, it)
		}
	}
	if err := c.saveLocal(kept); err != nil {
		return err
	}

	walletID := c.wallet()
	if walletID == "" || c.DeleteRemote == nil || IsTempID(id) {
		return nil
	}
	if err := c.DeleteRemote(ctx, walletID, id); err != nil {
		logger.Warn("Remote delete failed", "key", c.Key, "id", id, "error", err)
	}
	return nil
}
