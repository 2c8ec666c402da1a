package store

import (
	"detailcrm/models"
	"time"
)

// UnknownName stands in for a customer or service that no longer exists.
const UnknownName = "Unknown"

// CustomerName returns the customer's full name, or UnknownName.
func (s *Store) CustomerName(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.customers[id]; ok {
		return c.FullName()
	}
	return UnknownName
}

// ServiceNames resolves service ids to names, keeping their order.
func (s *Store) ServiceNames(ids []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = UnknownName
		if sv, ok := s.services[id]; ok {
			names[i] = sv.Name
		}
	}
	return names
}

type Stats struct {
	Customers         int     `json:"customers"`
	AppointmentsToday int     `json:"appointmentsToday"`
	PendingInvoices   int     `json:"pendingInvoices"`
	Services          int     `json:"services"`
	PaidRevenue       float64 `json:"paidRevenue"`
	OutstandingAmount float64 `json:"outstandingAmount"`
}

// Stats summarizes the records as of now.
func (s *Store) Stats(now time.Time) Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Stats{
		Customers:         len(s.customers),
		AppointmentsToday: len(s.appointmentsOn(now)),
		Services:          len(s.services),
	}
	for _, inv := range s.invoices {
		switch inv.Status {
		case models.InvoicePending:
			st.PendingInvoices++
			st.OutstandingAmount += inv.TotalAmount
		case models.InvoicePaid:
			st.PaidRevenue += inv.TotalAmount
		}
	}
	st.PaidRevenue = models.RoundCents(st.PaidRevenue)
	st.OutstandingAmount = models.RoundCents(st.OutstandingAmount)
	return st
}
