package store

import (
	"detailcrm/models"
	"sort"
)

func (s *Store) AddService(sv models.Service) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addService(sv)
}

func (s *Store) addService(sv models.Service) string {
	sv.ID = s.assignID(sv.ID)
	s.services[sv.ID] = sv
	s.persist()
	return sv.ID
}

// UpdateService replaces a catalog entry. Existing invoices keep the
// total computed when they were created.
func (s *Store) UpdateService(sv models.Service) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.services[sv.ID]; !ok {
		return false
	}
	s.services[sv.ID] = sv
	s.persist()
	return true
}

// DeleteService removes a catalog entry. Appointments and invoices that
// refer to it are left as they are.
func (s *Store) DeleteService(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.services[id]; !ok {
		return false
	}
	delete(s.services, id)
	s.persist()
	return true
}

func (s *Store) Service(id string) (models.Service, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sv, ok := s.services[id]
	return sv, ok
}

// ServiceByCode finds a catalog entry by its short code.
func (s *Store) ServiceByCode(code string) (models.Service, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.serviceByCode(code)
}

func (s *Store) serviceByCode(code string) (models.Service, bool) {
	for _, sv := range s.services {
		if sv.Code == code {
			return sv, true
		}
	}
	return models.Service{}, false
}

// Services returns the catalog, cheapest first.
func (s *Store) Services() []models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allServices()
}

func (s *Store) allServices() []models.Service {
	out := make([]models.Service, 0, len(s.services))
	for _, sv := range s.services {
		out = append(out, sv)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Price != out[j].Price {
			return out[i].Price < out[j].Price
		}
		return out[i].ID < out[j].ID
	})
	return out
}
