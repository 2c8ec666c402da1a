package store

import (
	"detailcrm/models"
	"strings"
	"time"
)

// AddCustomer stores c, assigning an id when c has none, and returns the id.
func (s *Store) AddCustomer(c models.Customer) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addCustomer(c)
}

func (s *Store) addCustomer(c models.Customer) string {
	c.ID = s.assignID(c.ID)
	s.customers[c.ID] = c
	s.persist()
	return c.ID
}

// UpdateCustomer replaces the stored customer with the same id. It
// returns false if there is none.
func (s *Store) UpdateCustomer(c models.Customer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[c.ID]; !ok {
		return false
	}
	s.customers[c.ID] = c
	s.persist()
	return true
}

// DeleteCustomer removes the customer and all of its appointments.
// Invoices billed to the customer are kept.
func (s *Store) DeleteCustomer(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[id]; !ok {
		return false
	}
	delete(s.customers, id)
	for apptID, a := range s.appointments {
		if a.CustomerID == id {
			delete(s.appointments, apptID)
		}
	}
	s.persist()
	return true
}

func (s *Store) Customer(id string) (models.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[id]
	return c, ok
}

// Customers returns all customers, oldest first.
func (s *Store) Customers() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allCustomers()
}

func (s *Store) allCustomers() []models.Customer {
	return s.filterCustomers(func(models.Customer) bool { return true })
}

// SearchCustomers returns customers whose first name, last name, email or
// phone contains q, ignoring case.
func (s *Store) SearchCustomers(q string) []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	q = strings.ToLower(q)
	return s.filterCustomers(func(c models.Customer) bool {
		return strings.Contains(strings.ToLower(c.FirstName), q) ||
			strings.Contains(strings.ToLower(c.LastName), q) ||
			strings.Contains(strings.ToLower(c.Email), q) ||
			strings.Contains(strings.ToLower(c.Phone), q)
	})
}

func (s *Store) filterCustomers(keep func(models.Customer) bool) []models.Customer {
	out := make([]models.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		if keep(c) {
			out = append(out, c)
		}
	}
	sortByTime(out, func(c models.Customer) (time.Time, string) { return c.CreatedAt, c.ID })
	return out
}
