// Package digestcmd implements the digest commands: a one-shot send and
// the scheduler daemon.
package digestcmd

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jivana-app/jivana/internal/cli"
	"github.com/jivana-app/jivana/internal/digest"
	"github.com/jivana-app/jivana/internal/logger"
	"github.com/jivana-app/jivana/internal/notifier"
	"github.com/jivana-app/jivana/internal/scheduler"
	"github.com/jivana-app/jivana/internal/utils"
)

type DigestSendCmd struct {
	DryRun bool `help:"Print the digest instead of dispatching it."`
}

func (c *DigestSendCmd) Run(ctx *cli.Context) error {
	text := buildDigest(ctx)
	if c.DryRun {
		fmt.Println(text)
		return nil
	}
	dispatch(text)
	return nil
}

type DigestServeCmd struct{}

func (c *DigestServeCmd) Run(ctx *cli.Context) error {
	settings := ctx.Settings()
	if !settings.NotificationsEnabled {
		return fmt.Errorf("notifications are disabled, enable them with 'jivana settings --notifications-enabled'")
	}

	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return err
	}

	sched := scheduler.New(loc)
	err = sched.Schedule(settings.DailyDigestTime, func() {
		dispatch(buildDigest(ctx))
	})
	if err != nil {
		return err
	}

	sched.Start()
	fmt.Printf("Digest scheduler running (daily at %s %s). Ctrl+C to stop.\n", settings.DailyDigestTime, settings.Timezone)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	sched.Stop()
	ctx.Stats().Shutdown()
	fmt.Println("Stopped.")
	return nil
}

func buildDigest(ctx *cli.Context) string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return digest.Build(ctx.Settings(), ctx.Tasks().LoadLocal(), ctx.Habits().LoadLocal(), ctx.Now(), rng)
}

// dispatch tries the tray webhook and falls back to printing in-app.
func dispatch(text string) {
	if err := notifier.New().Notify(text); err != nil {
		logger.Warn("Tray notification failed, printing instead", "error", err)
		fmt.Println(text)
	}
}
