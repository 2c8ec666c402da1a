package store

import (
	"detailcrm/models"
	"detailcrm/utils"
	"time"
)

// CreateInvoice bills the given services to a customer and returns the
// new invoice id. The total is the sum of the current prices of the
// services that exist; unknown service ids are dropped from the invoice.
// appointmentID may be empty.
func (s *Store) CreateInvoice(customerID string, serviceIDs []string, appointmentID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createInvoice(customerID, serviceIDs, appointmentID)
}

func (s *Store) createInvoice(customerID string, serviceIDs []string, appointmentID string) string {
	inv := models.Invoice{
		ID:            s.newID(),
		CustomerID:    customerID,
		AppointmentID: appointmentID,
		Status:        models.InvoicePending,
		CreationDate:  s.stamp(),
	}
	var total float64
	for _, id := range serviceIDs {
		sv, ok := s.services[id]
		if !ok {
			continue
		}
		inv.ServiceIDs = append(inv.ServiceIDs, id)
		total += sv.Price
	}
	inv.TotalAmount = models.RoundCents(total)
	s.invoices[inv.ID] = inv
	s.persist()
	return inv.ID
}

// UpdateInvoice replaces the stored invoice with the same id. The total
// is taken as given. An empty status becomes PENDING; any other unknown
// status is refused.
func (s *Store) UpdateInvoice(inv models.Invoice) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if inv.Status == "" {
		inv.Status = models.InvoicePending
	}
	if _, ok := s.invoices[inv.ID]; !ok || !inv.Status.Valid() {
		return false
	}
	s.invoices[inv.ID] = inv.Clone()
	s.persist()
	return true
}

// UpdateInvoiceStatus sets the status of an invoice. Moving to PAID
// stamps the payment date, every time it is called. Any transition is
// allowed; unknown ids and statuses return false.
func (s *Store) UpdateInvoiceStatus(id string, status models.InvoiceStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.invoices[id]
	if !ok || !status.Valid() {
		return false
	}
	inv.Status = status
	if status == models.InvoicePaid {
		paid := s.stamp()
		inv.PaymentDate = &paid
	}
	s.invoices[id] = inv
	s.persist()
	return true
}

func (s *Store) DeleteInvoice(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.invoices[id]; !ok {
		return false
	}
	delete(s.invoices, id)
	s.persist()
	return true
}

func (s *Store) Invoice(id string) (models.Invoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.invoices[id]
	return inv.Clone(), ok
}

// Invoices returns all invoices, oldest first.
func (s *Store) Invoices() []models.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allInvoices()
}

func (s *Store) allInvoices() []models.Invoice {
	return s.filterInvoices(func(models.Invoice) bool { return true })
}

func (s *Store) InvoicesForCustomer(customerID string) []models.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filterInvoices(func(inv models.Invoice) bool {
		return inv.CustomerID == customerID
	})
}

func (s *Store) PendingInvoices() []models.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filterInvoices(func(inv models.Invoice) bool {
		return inv.Status == models.InvoicePending
	})
}

// InvoiceFilter selects invoices. Zero fields match everything. The date
// window applies only when both From and To are set and includes both
// days.
type InvoiceFilter struct {
	Status models.InvoiceStatus
	From   time.Time
	To     time.Time
}

func (f InvoiceFilter) match(inv models.Invoice) bool {
	if f.Status != "" && inv.Status != f.Status {
		return false
	}
	if !f.From.IsZero() && !f.To.IsZero() {
		from := utils.BeginningOfDay(f.From)
		until := utils.BeginningOfDay(f.To).AddDate(0, 0, 1)
		if inv.CreationDate.Before(from) || !inv.CreationDate.Before(until) {
			return false
		}
	}
	return true
}

func (s *Store) FilterInvoices(f InvoiceFilter) []models.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filterInvoices(f.match)
}

func (s *Store) filterInvoices(keep func(models.Invoice) bool) []models.Invoice {
	out := make([]models.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		if keep(inv) {
			out = append(out, inv.Clone())
		}
	}
	sortByTime(out, func(inv models.Invoice) (time.Time, string) { return inv.CreationDate, inv.ID })
	return out
}
