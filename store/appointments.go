package store

import (
	"detailcrm/models"
	"detailcrm/utils"
	"time"
)

// AddAppointment stores a, assigning an id when a has none, and returns
// the id. The customer is not required to exist. An empty status becomes
// SCHEDULED; any other unknown status is refused and "" is returned.
func (s *Store) AddAppointment(a models.Appointment) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addAppointment(a)
}

func (s *Store) addAppointment(a models.Appointment) string {
	if !normalizeAppointmentStatus(&a) {
		return ""
	}
	a.ID = s.assignID(a.ID)
	s.appointments[a.ID] = a.Clone()
	s.persist()
	return a.ID
}

// UpdateAppointment replaces the stored appointment with the same id.
// Status is handled as in AddAppointment.
func (s *Store) UpdateAppointment(a models.Appointment) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.appointments[a.ID]; !ok || !normalizeAppointmentStatus(&a) {
		return false
	}
	s.appointments[a.ID] = a.Clone()
	s.persist()
	return true
}

func normalizeAppointmentStatus(a *models.Appointment) bool {
	if a.Status == "" {
		a.Status = models.AppointmentScheduled
	}
	return a.Status.Valid()
}

func (s *Store) DeleteAppointment(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.appointments[id]; !ok {
		return false
	}
	delete(s.appointments, id)
	s.persist()
	return true
}

func (s *Store) Appointment(id string) (models.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[id]
	return a.Clone(), ok
}

// Appointments returns all appointments in date order.
func (s *Store) Appointments() []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allAppointments()
}

func (s *Store) allAppointments() []models.Appointment {
	return s.filterAppointments(func(models.Appointment) bool { return true })
}

// AppointmentsOn returns the appointments on the calendar day of date,
// whatever their time of day.
func (s *Store) AppointmentsOn(date time.Time) []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appointmentsOn(date)
}

func (s *Store) appointmentsOn(date time.Time) []models.Appointment {
	return s.filterAppointments(func(a models.Appointment) bool {
		return utils.SameDay(a.DateTime, date)
	})
}

func (s *Store) AppointmentsForCustomer(customerID string) []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filterAppointments(func(a models.Appointment) bool {
		return a.CustomerID == customerID
	})
}

// UpcomingAppointments returns appointments after now and before now plus
// the given number of days, soonest first.
func (s *Store) UpcomingAppointments(now time.Time, days int) []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	until := now.AddDate(0, 0, days)
	return s.filterAppointments(func(a models.Appointment) bool {
		return a.DateTime.After(now) && a.DateTime.Before(until)
	})
}

func (s *Store) filterAppointments(keep func(models.Appointment) bool) []models.Appointment {
	out := make([]models.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		if keep(a) {
			out = append(out, a.Clone())
		}
	}
	sortByTime(out, func(a models.Appointment) (time.Time, string) { return a.DateTime, a.ID })
	return out
}
