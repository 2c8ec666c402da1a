package flatfile

import (
	"bytes"
	"detailcrm/models"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"
)

type Kind string

const (
	KindCustomers    Kind = "customers"
	KindAppointments Kind = "appointments"
	KindServices     Kind = "services"
	KindInvoices     Kind = "invoices"
)

// ErrInvalidSuffix is returned by Backup for an empty suffix or one that
// would leave the data directory.
var ErrInvalidSuffix = stderrors.New("invalid backup suffix")

// Kinds lists the files in the order they are loaded and saved.
var Kinds = []Kind{KindCustomers, KindAppointments, KindServices, KindInvoices}

func (k Kind) FileName() string {
	return string(k) + ".txt"
}

// LoadReport holds one Report per file.
type LoadReport struct {
	Customers    Report
	Appointments Report
	Services     Report
	Invoices     Report
}

func (lr LoadReport) Reports() []Report {
	return []Report{lr.Customers, lr.Appointments, lr.Services, lr.Invoices}
}

// Dir is a data directory holding one file per entity kind.
type Dir struct {
	path string
}

// OpenDir returns the data directory at path, creating it if needed.
func OpenDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating data directory %s", path)
	}
	return &Dir{path: path}, nil
}

func (d *Dir) Path() string {
	return d.path
}

func (d *Dir) FilePath(kind Kind) string {
	return filepath.Join(d.path, kind.FileName())
}

// Load reads all four files. A missing file leaves its collection empty
// and its report not loaded. A file that fails to parse is discarded as a
// whole; the cause is in its report's Err.
func (d *Dir) Load() (models.Snapshot, LoadReport) {
	var snap models.Snapshot
	var lr LoadReport
	snap.Customers, lr.Customers = loadFile(d.FilePath(KindCustomers), KindCustomers, ReadCustomers)
	snap.Appointments, lr.Appointments = loadFile(d.FilePath(KindAppointments), KindAppointments, ReadAppointments)
	snap.Services, lr.Services = loadFile(d.FilePath(KindServices), KindServices, ReadServices)
	snap.Invoices, lr.Invoices = loadFile(d.FilePath(KindInvoices), KindInvoices, ReadInvoices)
	return snap, lr
}

func loadFile[T any](path string, kind Kind, read func(io.Reader) ([]T, Report, error)) ([]T, Report) {
	f, err := os.Open(path)
	if err != nil {
		rep := Report{Kind: kind, Path: path}
		if !stderrors.Is(err, fs.ErrNotExist) {
			rep.Err = errors.Wrapf(err, "opening %s", path)
		}
		return nil, rep
	}
	defer f.Close()

	items, rep, err := read(f)
	rep.Path = path
	if err != nil {
		rep.Loaded = false
		rep.Records = 0
		rep.Err = errors.Wrapf(err, "reading %s", path)
		return nil, rep
	}
	return items, rep
}

// Save rewrites all four files from snap. Each file is replaced
// atomically. Every file is attempted even if an earlier one fails.
func (d *Dir) Save(snap models.Snapshot) error {
	var errs []error
	save := func(kind Kind, write func(io.Writer) error) {
		var buf bytes.Buffer
		if err := write(&buf); err != nil {
			errs = append(errs, errors.Wrapf(err, "encoding %s", kind))
			return
		}
		path := d.FilePath(kind)
		if err := renameio.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			errs = append(errs, errors.Wrapf(err, "writing %s", path))
		}
	}
	save(KindCustomers, func(w io.Writer) error { return WriteCustomers(w, snap.Customers) })
	save(KindAppointments, func(w io.Writer) error { return WriteAppointments(w, snap.Appointments) })
	save(KindServices, func(w io.Writer) error { return WriteServices(w, snap.Services) })
	save(KindInvoices, func(w io.Writer) error { return WriteInvoices(w, snap.Invoices) })
	return stderrors.Join(errs...)
}

// Backup copies each file to "<file>.<suffix>" next to it. Files that do
// not exist yet are skipped.
func (d *Dir) Backup(suffix string) error {
	if suffix == "" || strings.ContainsAny(suffix, `/\`) {
		return errors.Wrapf(ErrInvalidSuffix, "%q", suffix)
	}
	for _, kind := range Kinds {
		src := d.FilePath(kind)
		data, err := os.ReadFile(src)
		if stderrors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "reading %s", src)
		}
		dst := src + "." + suffix
		if err := renameio.WriteFile(dst, data, 0o644); err != nil {
			return errors.Wrapf(err, "writing backup %s", dst)
		}
	}
	return nil
}
