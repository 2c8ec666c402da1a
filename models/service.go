package models

// Service is a catalog entry. Appointments and invoices refer to it by ID.
type Service struct {
	ID          string  `json:"id"`
	Code        string  `json:"code"` // e.g. BASIC_WASH
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}
