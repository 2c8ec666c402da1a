package store

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

// Option configures a Store. Options may be passed to New.
type Option func(s *Store) error

// WithPersister makes the store load from and save to p. Without it the
// store keeps its records in memory only.
func WithPersister(p Persister) Option {
	return func(s *Store) error {
		if p == nil {
			return errors.New("persister is nil")
		}
		s.persister = p
		return nil
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Store) error {
		s.log = l
		return nil
	}
}

// WithClock replaces time.Now for creation and payment timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) error {
		if now == nil {
			return errors.New("clock is nil")
		}
		s.now = now
		return nil
	}
}

// WithIDGenerator replaces the random UUID generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) error {
		if newID == nil {
			return errors.New("id generator is nil")
		}
		s.newID = newID
		return nil
	}
}
