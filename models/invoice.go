package models

import (
	"math"
	"time"
)

type Invoice struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	// AppointmentID is empty for invoices created without an appointment.
	AppointmentID string   `json:"appointmentId,omitempty"`
	ServiceIDs    []string `json:"serviceIds"`

	// TotalAmount is fixed when the invoice is created. Later price
	// changes in the catalog do not touch it.
	TotalAmount float64 `json:"totalAmount"`

	Status       InvoiceStatus `json:"status"`
	CreationDate time.Time     `json:"creationDate"`
	PaymentDate  *time.Time    `json:"paymentDate,omitempty"`
}

// Clone returns a copy that shares no memory with inv.
func (inv Invoice) Clone() Invoice {
	inv.ServiceIDs = cloneIDs(inv.ServiceIDs)
	if inv.PaymentDate != nil {
		paid := *inv.PaymentDate
		inv.PaymentDate = &paid
	}
	return inv
}

// RoundCents rounds a currency amount to two decimal places.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
