package models

// Snapshot is a point-in-time copy of all four collections.
type Snapshot struct {
	Customers    []Customer
	Appointments []Appointment
	Services     []Service
	Invoices     []Invoice
}
