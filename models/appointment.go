package models

import (
	"time"
)

type Appointment struct {
	ID         string            `json:"id"`
	CustomerID string            `json:"customerId"`
	DateTime   time.Time         `json:"dateTime"`
	Location   string            `json:"location"`
	ServiceIDs []string          `json:"serviceIds"`
	Status     AppointmentStatus `json:"status"`
	Notes      string            `json:"notes"`
}

func NewAppointment() Appointment {
	return Appointment{Status: AppointmentScheduled}
}

// Clone returns a copy that shares no memory with a.
func (a Appointment) Clone() Appointment {
	a.ServiceIDs = cloneIDs(a.ServiceIDs)
	return a
}

func cloneIDs(ids []string) []string {
	if ids == nil {
		return nil
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
