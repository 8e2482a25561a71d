// Package scheduler runs the daily digest job at the configured local
// time.
package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jivana-app/jivana/internal/constants"
	"github.com/jivana-app/jivana/internal/logger"
)

type Scheduler struct {
	cron *cron.Cron
}

func New(loc *time.Location) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(loc)),
	}
}

// CronSpec converts a HH:MM digest time into a daily cron expression.
func CronSpec(digestTime string) (string, error) {
	t, err := time.Parse(constants.TimeFormat, digestTime)
	if err != nil {
		return "", fmt.Errorf("invalid digest time %q: %w", digestTime, err)
	}
	return fmt.Sprintf("%d %d * * *", t.Minute(), t.Hour()), nil
}

// Schedule registers job to run daily at digestTime.
func (s *Scheduler) Schedule(digestTime string, job func()) error {
	spec, err := CronSpec(digestTime)
	if err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(spec, job); err != nil {
		return fmt.Errorf("failed to schedule digest job: %w", err)
	}
	logger.Info("Digest job scheduled", "time", digestTime)
	return nil
}

// Start runs the scheduler until Stop is called.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
