// Package cli holds the shared command context and output helpers.
package cli

import (
	"context"
	"os"
	gosync "sync"
	"time"

	"github.com/jivana-app/jivana/internal/constants"
	"github.com/jivana-app/jivana/internal/content"
	"github.com/jivana-app/jivana/internal/errors"
	"github.com/jivana-app/jivana/internal/keyring"
	"github.com/jivana-app/jivana/internal/logger"
	"github.com/jivana-app/jivana/internal/models"
	"github.com/jivana-app/jivana/internal/storage"
	"github.com/jivana-app/jivana/internal/storage/remote"
	"github.com/jivana-app/jivana/internal/sync"
	"github.com/jivana-app/jivana/internal/utils"
	"github.com/jivana-app/jivana/internal/wallet"
)

type Context struct {
	Store  storage.Provider
	Remote *remote.Store // nil when no connection string is configured
	Wallet *wallet.Manager

	remoteOnce   gosync.Once
	remoteFailed bool

	statsOnce gosync.Once
	stats     *sync.StatsSyncer
}

// WalletID returns the connected tenant id, or "" in local-only mode.
func (c *Context) WalletID() string {
	if c.Wallet == nil {
		return ""
	}
	return c.Wallet.Reconnect()
}

// remoteReady lazily opens the remote store. A connection failure degrades
// to local-only mode with a warning instead of failing the command.
func (c *Context) remoteReady() *remote.Store {
	if c.Remote == nil {
		return nil
	}
	c.remoteOnce.Do(func() {
		if err := c.Remote.Load(); err != nil {
			logger.Warn("Remote store unavailable, continuing local-only", "error", err)
			c.remoteFailed = true
		}
	})
	if c.remoteFailed {
		return nil
	}
	return c.Remote
}

// RemoteStore returns the remote store when configured and reachable, nil
// otherwise.
func (c *Context) RemoteStore() *remote.Store {
	return c.remoteReady()
}

func (c *Context) Tasks() *sync.Collection[models.Task] {
	col := &sync.Collection[models.Task]{
		Store:  c.Store,
		Key:    constants.KeyTasks,
		Wallet: c.WalletID,
		WithID: func(t models.Task, id string) models.Task { t.ID = id; return t },
	}
	if r := c.remoteReady(); r != nil {
		col.SelectRemote = r.SelectTasks
		col.InsertRemote = r.InsertTask
		col.UpdateRemote = r.UpdateTask
		col.DeleteRemote = r.DeleteTask
	}
	return col
}

func (c *Context) Habits() *sync.Collection[models.Habit] {
	col := &sync.Collection[models.Habit]{
		Store:  c.Store,
		Key:    constants.KeyHabits,
		Wallet: c.WalletID,
		WithID: func(h models.Habit, id string) models.Habit { h.ID = id; return h },
		// Completion history is local-only; a hydrate keeps it by id.
		Merge: func(local, remote models.Habit) models.Habit {
			remote.CompletionDates = local.CompletionDates
			return remote
		},
	}
	if r := c.remoteReady(); r != nil {
		col.SelectRemote = r.SelectHabits
		col.InsertRemote = r.InsertHabit
		col.UpdateRemote = r.UpdateHabit
		col.DeleteRemote = r.DeleteHabit
	}
	return col
}

func (c *Context) Jobs() *sync.Collection[models.Job] {
	col := &sync.Collection[models.Job]{
		Store:  c.Store,
		Key:    constants.KeyJobs,
		Wallet: c.WalletID,
		WithID: func(j models.Job, id string) models.Job { j.ID = id; return j },
	}
	if r := c.remoteReady(); r != nil {
		col.SelectRemote = r.SelectJobs
		col.InsertRemote = r.InsertJob
		col.UpdateRemote = r.UpdateJob
		col.DeleteRemote = r.DeleteJob
	}
	return col
}

func (c *Context) Words() *sync.Collection[models.Word] {
	col := &sync.Collection[models.Word]{
		Store:  c.Store,
		Key:    constants.KeyUserWords,
		Wallet: c.WalletID,
		WithID: func(w models.Word, id string) models.Word { w.ID = id; return w },
	}
	if r := c.remoteReady(); r != nil {
		col.SelectRemote = r.SelectWords
		col.InsertRemote = r.InsertWord
		col.UpdateRemote = r.UpdateWord
		col.DeleteRemote = r.DeleteWord
	}
	return col
}

func (c *Context) Lifestyle() *sync.Collection[models.LifestylePractice] {
	col := &sync.Collection[models.LifestylePractice]{
		Store:  c.Store,
		Key:    constants.KeyUserLifestyle,
		Wallet: c.WalletID,
		WithID: func(p models.LifestylePractice, id string) models.LifestylePractice { p.ID = id; return p },
	}
	if r := c.remoteReady(); r != nil {
		col.SelectRemote = r.SelectLifestyle
		col.InsertRemote = r.InsertLifestyle
		col.UpdateRemote = r.UpdateLifestyle
		col.DeleteRemote = r.DeleteLifestyle
	}
	return col
}

func (c *Context) Note() *sync.Note {
	n := &sync.Note{
		Store:  c.Store,
		Wallet: c.WalletID,
	}
	if r := c.remoteReady(); r != nil {
		n.Remote = r
	}
	return n
}

func (c *Context) Stats() *sync.StatsSyncer {
	c.statsOnce.Do(func() {
		var upsert func(context.Context, models.StatsRow) error
		if r := c.remoteReady(); r != nil {
			upsert = r.UpsertStats
		}
		c.stats = sync.NewStatsSyncer(c.Store, c.WalletID, upsert)
	})
	return c.stats
}

// SyncStats recomputes the stats row from the current collections and
// pushes it remotely, blocking past the debounce window so one-shot
// commands do not exit with the write pending.
func (c *Context) SyncStats(ctx context.Context) {
	s := c.Stats()
	s.Recompute(c.Tasks().LoadLocal(), c.Habits().LoadLocal(), c.Now())
	s.Flush(ctx)
}

// Settings returns the stored notification settings, falling back to
// defaults when nothing is stored.
func (c *Context) Settings() models.NotificationSettings {
	return storage.GetItem(c.Store, constants.KeyNotificationSettings, models.DefaultNotificationSettings())
}

func (c *Context) SaveSettings(s models.NotificationSettings) error {
	return storage.SetItem(c.Store, constants.KeyNotificationSettings, s)
}

// Now returns the current time in the configured timezone, falling back to
// local time when the stored timezone is invalid.
func (c *Context) Now() time.Time {
	now, err := utils.NowInTimezone(c.Settings().Timezone)
	if err != nil {
		return time.Now()
	}
	return now
}

// Today returns today's date in the configured timezone.
func (c *Context) Today() string {
	today, err := utils.GetTodayInTimezone(c.Settings().Timezone)
	if err != nil {
		return time.Now().Format(constants.DateFormat)
	}
	return today
}

// Content builds the content service client, resolving the API key from
// the keyring or the JIVANA_CONTENT_API_KEY environment variable.
func (c *Context) Content() (*content.Client, error) {
	key, err := keyring.GetContentAPIKey()
	if err != nil || key == "" {
		key = os.Getenv("JIVANA_CONTENT_API_KEY")
	}
	if key == "" {
		return nil, errors.Content("no API key configured, run 'jivana config set-key'", nil)
	}
	return content.NewClient(os.Getenv("JIVANA_CONTENT_BASE_URL"), os.Getenv("JIVANA_CONTENT_MODEL"), key), nil
}
