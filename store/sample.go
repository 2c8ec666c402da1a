package store

import (
	"detailcrm/models"
	"detailcrm/utils"
	"time"
)

// DefaultServices is the catalog installed when no services were loaded.
var DefaultServices = []models.Service{
	{Code: "BASIC_WASH", Name: "Basic Wash & Vacuum", Description: "Exterior wash and interior vacuum", Price: 49.99},
	{Code: "PREMIUM_WASH", Name: "Premium Wash", Description: "Exterior wash, wax, and interior detailing", Price: 89.99},
	{Code: "FULL_DETAIL", Name: "Full Detail Package", Description: "Complete interior and exterior detailing", Price: 149.99},
	{Code: "CLAY_POLISH", Name: "Clay Bar & Polish", Description: "Paint correction and polish", Price: 129.99},
	{Code: "CERAMIC_COAT", Name: "Ceramic Coating", Description: "Professional ceramic coating application", Price: 299.99},
}

func (s *Store) installDefaultServices() {
	for _, sv := range DefaultServices {
		sv.ID = s.newID()
		s.services[sv.ID] = sv
	}
	s.log.WithField("count", len(DefaultServices)).Info("installed default services")
}

// AddSampleData adds two customers with an appointment and an invoice
// each. Missing default services are installed first.
func (s *Store) AddSampleData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	serviceID := func(code string) string {
		if sv, ok := s.serviceByCode(code); ok {
			return sv.ID
		}
		for _, sv := range DefaultServices {
			if sv.Code == code {
				return s.addService(sv)
			}
		}
		return ""
	}

	created := s.stamp()
	john := models.Customer{
		FirstName:    "John",
		LastName:     "Smith",
		Email:        "john.smith@example.com",
		Phone:        "555-123-4567",
		Address:      "123 Main St, Anytown, USA",
		VehicleMake:  "Honda",
		VehicleModel: "Accord",
		VehicleYear:  "2019",
		VehicleColor: "Black",
		CreatedAt:    created,
	}
	emily := models.Customer{
		FirstName:    "Emily",
		LastName:     "Johnson",
		Email:        "emily.j@example.com",
		Phone:        "555-987-6543",
		Address:      "456 Oak Ave, Somewhere, USA",
		VehicleMake:  "Toyota",
		VehicleModel: "Camry",
		VehicleYear:  "2021",
		VehicleColor: "Silver",
		CreatedAt:    created,
	}
	johnID := s.addCustomer(john)
	emilyID := s.addCustomer(emily)

	today := utils.BeginningOfDay(s.now())
	a1 := models.NewAppointment()
	a1.CustomerID = johnID
	a1.DateTime = today.AddDate(0, 0, 2).Add(10 * time.Hour)
	a1.Location = john.Address
	a1.ServiceIDs = []string{serviceID("FULL_DETAIL")}
	a1ID := s.addAppointment(a1)

	a2 := models.NewAppointment()
	a2.CustomerID = emilyID
	a2.DateTime = today.AddDate(0, 0, 3).Add(14*time.Hour + 30*time.Minute)
	a2.Location = emily.Address
	a2.ServiceIDs = []string{serviceID("BASIC_WASH"), serviceID("CLAY_POLISH")}
	a2ID := s.addAppointment(a2)

	s.createInvoice(johnID, a1.ServiceIDs, a1ID)
	s.createInvoice(emilyID, a2.ServiceIDs, a2ID)
}
