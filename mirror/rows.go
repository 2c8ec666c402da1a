package mirror

import (
	"detailcrm/models"
	"strings"
	"time"
)

type CustomerRow struct {
	ID           string `gorm:"type:varchar(64);primary_key"`
	FirstName    string `gorm:"type:varchar(100)"`
	LastName     string `gorm:"type:varchar(100);index"`
	Email        string `gorm:"type:varchar(255)"`
	Phone        string `gorm:"type:varchar(32);index"`
	Address      string `gorm:"type:text"`
	VehicleMake  string `gorm:"type:varchar(64)"`
	VehicleModel string `gorm:"type:varchar(64)"`
	VehicleYear  string `gorm:"type:varchar(8)"`
	VehicleColor string `gorm:"type:varchar(32)"`
	Notes        string `gorm:"type:text"`
	CreatedAt    time.Time
}

func (CustomerRow) TableName() string { return "customers" }

type AppointmentRow struct {
	ID         string    `gorm:"type:varchar(64);primary_key"`
	CustomerID string    `gorm:"type:varchar(64);index"`
	DateTime   time.Time `gorm:"index"`
	Location   string    `gorm:"type:text"`
	ServiceIDs string    `gorm:"type:text"` // comma separated
	Status     string    `gorm:"type:varchar(20)"`
	Notes      string    `gorm:"type:text"`
}

func (AppointmentRow) TableName() string { return "appointments" }

type ServiceRow struct {
	ID          string  `gorm:"type:varchar(64);primary_key"`
	Code        string  `gorm:"type:varchar(32);index"`
	Name        string  `gorm:"type:varchar(100)"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"type:numeric(10,2)"`
}

func (ServiceRow) TableName() string { return "services" }

type InvoiceRow struct {
	ID            string  `gorm:"type:varchar(64);primary_key"`
	CustomerID    string  `gorm:"type:varchar(64);index"`
	AppointmentID *string `gorm:"type:varchar(64)"`
	ServiceIDs    string  `gorm:"type:text"` // comma separated
	TotalAmount   float64 `gorm:"type:numeric(10,2)"`
	Status        string  `gorm:"type:varchar(20);index"`
	CreationDate  time.Time
	PaymentDate   *time.Time
}

func (InvoiceRow) TableName() string { return "invoices" }

// Rows holds a snapshot converted to table rows.
type Rows struct {
	Customers    []CustomerRow
	Appointments []AppointmentRow
	Services     []ServiceRow
	Invoices     []InvoiceRow
}

func NewRows(snap models.Snapshot) Rows {
	var r Rows
	for _, c := range snap.Customers {
		r.Customers = append(r.Customers, CustomerRow{
			ID:           c.ID,
			FirstName:    c.FirstName,
			LastName:     c.LastName,
			Email:        c.Email,
			Phone:        c.Phone,
			Address:      c.Address,
			VehicleMake:  c.VehicleMake,
			VehicleModel: c.VehicleModel,
			VehicleYear:  c.VehicleYear,
			VehicleColor: c.VehicleColor,
			Notes:        c.Notes,
			CreatedAt:    c.CreatedAt,
		})
	}
	for _, a := range snap.Appointments {
		r.Appointments = append(r.Appointments, AppointmentRow{
			ID:         a.ID,
			CustomerID: a.CustomerID,
			DateTime:   a.DateTime,
			Location:   a.Location,
			ServiceIDs: strings.Join(a.ServiceIDs, ","),
			Status:     a.Status.String(),
			Notes:      a.Notes,
		})
	}
	for _, sv := range snap.Services {
		r.Services = append(r.Services, ServiceRow{
			ID:          sv.ID,
			Code:        sv.Code,
			Name:        sv.Name,
			Description: sv.Description,
			Price:       sv.Price,
		})
	}
	for _, inv := range snap.Invoices {
		row := InvoiceRow{
			ID:           inv.ID,
			CustomerID:   inv.CustomerID,
			ServiceIDs:   strings.Join(inv.ServiceIDs, ","),
			TotalAmount:  inv.TotalAmount,
			Status:       inv.Status.String(),
			CreationDate: inv.CreationDate,
			PaymentDate:  inv.PaymentDate,
		}
		if inv.AppointmentID != "" {
			id := inv.AppointmentID
			row.AppointmentID = &id
		}
		r.Invoices = append(r.Invoices, row)
	}
	return r
}
