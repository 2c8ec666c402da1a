package models

import (
	"time"
)

type Customer struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`

	// Vehicle details are free text, the year included.
	VehicleMake  string `json:"vehicleMake"`
	VehicleModel string `json:"vehicleModel"`
	VehicleYear  string `json:"vehicleYear"`
	VehicleColor string `json:"vehicleColor"`

	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewCustomer returns a customer stamped with its creation time. The
// stamp is truncated to whole seconds, the resolution of the data files.
func NewCustomer() Customer {
	return Customer{CreatedAt: time.Now().Truncate(time.Second)}
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
