// Package mirror copies the records into PostgreSQL for reporting. The
// data files stay the system of record; the tables are overwritten on
// every sync.
package mirror

import (
	"detailcrm/models"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const batchSize = 200

func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("DB_URL is not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.Wrap(err, "connect database")
	}
	return db, nil
}

type Result struct {
	Customers    int
	Appointments int
	Services     int
	Invoices     int
}

// Sync replaces the contents of the mirror tables with snap in a single
// transaction.
func Sync(db *gorm.DB, snap models.Snapshot) (Result, error) {
	if err := db.AutoMigrate(&CustomerRow{}, &AppointmentRow{}, &ServiceRow{}, &InvoiceRow{}); err != nil {
		return Result{}, errors.Wrap(err, "migrate mirror tables")
	}

	rows := NewRows(snap)
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := replaceTable(tx, &CustomerRow{}, rows.Customers); err != nil {
			return errors.Wrap(err, "customers")
		}
		if err := replaceTable(tx, &AppointmentRow{}, rows.Appointments); err != nil {
			return errors.Wrap(err, "appointments")
		}
		if err := replaceTable(tx, &ServiceRow{}, rows.Services); err != nil {
			return errors.Wrap(err, "services")
		}
		if err := replaceTable(tx, &InvoiceRow{}, rows.Invoices); err != nil {
			return errors.Wrap(err, "invoices")
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return Result{
		Customers:    len(rows.Customers),
		Appointments: len(rows.Appointments),
		Services:     len(rows.Services),
		Invoices:     len(rows.Invoices),
	}, nil
}

func replaceTable[T any](tx *gorm.DB, model *T, rows []T) error {
	if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.CreateInBatches(rows, batchSize).Error
}
