// Package store holds the CRM records in memory and persists every change.
//
// The four collections (customers, appointments, services and invoices)
// are owned by a Store; nothing else mutates them. After each mutating
// call the whole data set is written through the configured Persister.
// A failed write is logged but never undoes the change: during a session
// the in-memory records are authoritative and the files are a backup.
//
// Lookups of unknown ids are not errors. Get-style methods report absence
// with a boolean and mutating methods return false.
package store

import (
	"detailcrm/flatfile"
	"detailcrm/models"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Persister reads and writes the full data set.
type Persister interface {
	Load() (models.Snapshot, flatfile.LoadReport)
	Save(snap models.Snapshot) error
	Backup(suffix string) error
}

var ErrNoPersister = errors.New("persistence is disabled")

type Store struct {
	// mu serializes callers; each public method runs to completion
	// before the next one starts.
	mu sync.Mutex

	customers    map[string]models.Customer
	appointments map[string]models.Appointment
	services     map[string]models.Service
	invoices     map[string]models.Invoice

	persister Persister
	log       logrus.FieldLogger
	now       func() time.Time
	newID     func() string
}

// New creates an empty store. Call Load to read the persisted records.
func New(opts ...Option) (*Store, error) {
	s := &Store{
		customers:    make(map[string]models.Customer),
		appointments: make(map[string]models.Appointment),
		services:     make(map[string]models.Service),
		invoices:     make(map[string]models.Invoice),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s, nil
}

// Load replaces the in-memory records with the persisted ones. When there
// is no services file the default catalog is installed and saved. Files
// that failed to parse are backed up with a "corrupt-" suffix before
// anything can overwrite them.
func (s *Store) Load() flatfile.LoadReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lr flatfile.LoadReport
	if s.persister != nil {
		var snap models.Snapshot
		snap, lr = s.persister.Load()
		s.replace(snap)
		logLoadReport(s.log, lr)
		s.keepUnreadable(lr)
	}
	if !lr.Services.Loaded && lr.Services.Err == nil {
		s.installDefaultServices()
		s.persist()
	}
	return lr
}

// corruptPrefix starts the suffix of backups taken of unreadable files.
const corruptPrefix = "corrupt-"

func (s *Store) keepUnreadable(lr flatfile.LoadReport) {
	for _, rep := range lr.Reports() {
		if rep.Err == nil {
			continue
		}
		suffix := corruptPrefix + s.stamp().Format("20060102-150405")
		if err := s.persister.Backup(suffix); err != nil {
			s.log.WithError(err).Error("failed to back up unreadable data files")
			return
		}
		s.log.WithField("suffix", suffix).Warn("backed up unreadable data files")
		return
	}
}

func logLoadReport(log logrus.FieldLogger, lr flatfile.LoadReport) {
	for _, rep := range lr.Reports() {
		l := log.WithFields(logrus.Fields{
			"kind":    rep.Kind,
			"path":    rep.Path,
			"records": rep.Records,
			"skipped": rep.Skipped,
		})
		switch {
		case rep.Err != nil:
			l.WithError(rep.Err).Error("failed to load collection")
		case !rep.Loaded:
			l.Info("no data file")
		default:
			l.Debug("collection loaded")
		}
		for _, w := range rep.Warnings {
			l.Warn("skipped record: " + w)
		}
	}
}

func (s *Store) replace(snap models.Snapshot) {
	clear(s.customers)
	clear(s.appointments)
	clear(s.services)
	clear(s.invoices)
	for _, c := range snap.Customers {
		s.customers[c.ID] = c
	}
	for _, a := range snap.Appointments {
		s.appointments[a.ID] = a.Clone()
	}
	for _, sv := range snap.Services {
		s.services[sv.ID] = sv
	}
	for _, inv := range snap.Invoices {
		s.invoices[inv.ID] = inv.Clone()
	}
}

// Snapshot returns a copy of all records.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) snapshot() models.Snapshot {
	return models.Snapshot{
		Customers:    s.allCustomers(),
		Appointments: s.allAppointments(),
		Services:     s.allServices(),
		Invoices:     s.allInvoices(),
	}
}

// persist writes everything. Errors are logged and otherwise ignored.
func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(s.snapshot()); err != nil {
		s.log.WithError(err).Error("failed to save data")
	}
}

// Save writes all records and reports the outcome to the caller.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.persister == nil {
		return ErrNoPersister
	}
	return s.persister.Save(s.snapshot())
}

// Backup copies the current data files to files with the given suffix.
func (s *Store) Backup(suffix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.persister == nil {
		return ErrNoPersister
	}
	if err := s.persister.Backup(suffix); err != nil {
		s.log.WithError(err).WithField("suffix", suffix).Error("backup failed")
		return err
	}
	s.log.WithField("suffix", suffix).Info("backup created")
	return nil
}

// stamp is the current time at the resolution of the data files.
func (s *Store) stamp() time.Time {
	return s.now().Truncate(time.Second)
}

func (s *Store) assignID(id string) string {
	if id != "" {
		return id
	}
	return s.newID()
}

func sortByTime[T any](items []T, key func(T) (time.Time, string)) {
	sort.Slice(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return idi < idj
	})
}
