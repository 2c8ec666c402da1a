package flatfile

import (
	"detailcrm/models"
	"strconv"
	"strings"
)

// Minimum number of fields a line needs to be decoded. Shorter lines are
// skipped.
const (
	customerFields    = 12
	appointmentFields = 6
	serviceFields     = 5
	invoiceFields     = 7
)

func fieldError(field string, err error) error {
	return &ParseError{Field: field, Err: err}
}

func encodeCustomer(c models.Customer) string {
	return strings.Join([]string{
		escapeID(c.ID),
		escapeField(c.FirstName),
		escapeField(c.LastName),
		escapeField(c.Email),
		escapeField(c.Phone),
		escapeField(c.Address),
		escapeField(c.VehicleMake),
		escapeField(c.VehicleModel),
		escapeField(c.VehicleYear),
		escapeField(c.VehicleColor),
		escapeField(c.Notes),
		formatTime(c.CreatedAt),
	}, delimiter)
}

func decodeCustomer(f []string) (models.Customer, error) {
	createdAt, err := parseTime(f[11])
	if err != nil {
		return models.Customer{}, fieldError("createdAt", err)
	}
	return models.Customer{
		ID:           unescapeID(f[0]),
		FirstName:    unescapeField(f[1]),
		LastName:     unescapeField(f[2]),
		Email:        unescapeField(f[3]),
		Phone:        unescapeField(f[4]),
		Address:      unescapeField(f[5]),
		VehicleMake:  unescapeField(f[6]),
		VehicleModel: unescapeField(f[7]),
		VehicleYear:  unescapeField(f[8]),
		VehicleColor: unescapeField(f[9]),
		Notes:        unescapeField(f[10]),
		CreatedAt:    createdAt,
	}, nil
}

func encodeAppointment(a models.Appointment) string {
	return strings.Join([]string{
		escapeID(a.ID),
		escapeID(a.CustomerID),
		formatTime(a.DateTime),
		escapeField(a.Location),
		joinIDs(a.ServiceIDs),
		a.Status.String(),
		escapeField(a.Notes),
	}, delimiter)
}

func decodeAppointment(f []string) (models.Appointment, error) {
	dateTime, err := parseTime(f[2])
	if err != nil {
		return models.Appointment{}, fieldError("dateTime", err)
	}
	status, err := models.ParseAppointmentStatus(f[5])
	if err != nil {
		return models.Appointment{}, fieldError("status", err)
	}
	a := models.Appointment{
		ID:         unescapeID(f[0]),
		CustomerID: unescapeID(f[1]),
		DateTime:   dateTime,
		Location:   unescapeField(f[3]),
		ServiceIDs: splitIDs(f[4]),
		Status:     status,
	}
	if len(f) > 6 {
		a.Notes = unescapeField(f[6])
	}
	return a, nil
}

func encodeService(s models.Service) string {
	return strings.Join([]string{
		escapeID(s.ID),
		escapeField(s.Code),
		escapeField(s.Name),
		escapeField(s.Description),
		strconv.FormatFloat(s.Price, 'f', -1, 64),
	}, delimiter)
}

func decodeService(f []string) (models.Service, error) {
	price, err := strconv.ParseFloat(f[4], 64)
	if err != nil {
		return models.Service{}, fieldError("price", err)
	}
	return models.Service{
		ID:          unescapeID(f[0]),
		Code:        unescapeField(f[1]),
		Name:        unescapeField(f[2]),
		Description: unescapeField(f[3]),
		Price:       price,
	}, nil
}

func encodeInvoice(inv models.Invoice) string {
	paid := ""
	if inv.PaymentDate != nil {
		paid = formatTime(*inv.PaymentDate)
	}
	return strings.Join([]string{
		escapeID(inv.ID),
		escapeID(inv.CustomerID),
		escapeID(inv.AppointmentID),
		joinIDs(inv.ServiceIDs),
		strconv.FormatFloat(inv.TotalAmount, 'f', -1, 64),
		inv.Status.String(),
		formatTime(inv.CreationDate),
		paid,
	}, delimiter)
}

func decodeInvoice(f []string) (models.Invoice, error) {
	total, err := strconv.ParseFloat(f[4], 64)
	if err != nil {
		return models.Invoice{}, fieldError("totalAmount", err)
	}
	created, err := parseTime(f[6])
	if err != nil {
		return models.Invoice{}, fieldError("creationDate", err)
	}
	status, err := models.ParseInvoiceStatus(f[5])
	if err != nil {
		return models.Invoice{}, fieldError("status", err)
	}
	inv := models.Invoice{
		ID:           unescapeID(f[0]),
		CustomerID:   unescapeID(f[1]),
		ServiceIDs:   splitIDs(f[3]),
		TotalAmount:  total,
		Status:       status,
		CreationDate: created,
	}
	if optional(f[2]) {
		inv.AppointmentID = unescapeID(f[2])
	}
	if len(f) > 7 && optional(f[7]) {
		paid, err := parseTime(f[7])
		if err != nil {
			return models.Invoice{}, fieldError("paymentDate", err)
		}
		inv.PaymentDate = &paid
	}
	return inv, nil
}
