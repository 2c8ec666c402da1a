package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

type Backuper interface {
	Backup(suffix string) error
}

// BackupSuffix names a backup taken at t.
func BackupSuffix(t time.Time) string {
	return "bak-" + t.Format("20060102-150405")
}

// Scheduler runs the recurring jobs on standard five-field cron specs.
type Scheduler struct {
	cron *cron.Cron
	now  func() time.Time
	log  logrus.FieldLogger
}

func NewScheduler(log logrus.FieldLogger) *Scheduler {
	logger := cron.PrintfLogger(log)
	return &Scheduler{
		cron: cron.New(cron.WithLogger(logger), cron.WithChain(cron.Recover(logger))),
		now:  time.Now,
		log:  log,
	}
}

func (s *Scheduler) AddReminders(spec string, r *ReminderService) error {
	_, err := s.cron.AddFunc(spec, func() {
		r.SendReminders(s.now())
	})
	return errors.Wrapf(err, "reminder schedule %q", spec)
}

func (s *Scheduler) AddBackups(spec string, b Backuper) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.backup(b)
	})
	return errors.Wrapf(err, "backup schedule %q", spec)
}

func (s *Scheduler) backup(b Backuper) {
	suffix := BackupSuffix(s.now())
	if err := b.Backup(suffix); err != nil {
		s.log.WithError(err).Error("scheduled backup failed")
		return
	}
	s.log.WithField("suffix", suffix).Info("scheduled backup done")
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.WithField("jobs", len(s.cron.Entries())).Info("scheduler started")
}

// Stop stops the scheduler and returns a context that is done once
// running jobs have finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
