package controllers

import (
	"detailcrm/config"
	"detailcrm/models"
	"detailcrm/services"
	"detailcrm/store"
	"time"

	"github.com/sirupsen/logrus"
)

// Handler serves the HTTP API over a record store.
type Handler struct {
	store     *store.Store
	cfg       config.Config
	reminders *services.ReminderService
	log       logrus.FieldLogger
	now       func() time.Time
}

// NewHandler builds the API handlers. reminders may be nil when no
// message provider is configured.
func NewHandler(st *store.Store, cfg config.Config, reminders *services.ReminderService, log logrus.FieldLogger) *Handler {
	return &Handler{
		store:     st,
		cfg:       cfg,
		reminders: reminders,
		log:       log,
		now:       time.Now,
	}
}

// AppointmentView is an appointment with its references resolved for
// display.
type AppointmentView struct {
	models.Appointment
	CustomerName string   `json:"customerName"`
	ServiceNames []string `json:"serviceNames"`
}

type InvoiceView struct {
	models.Invoice
	CustomerName string   `json:"customerName"`
	ServiceNames []string `json:"serviceNames"`
}

func (h *Handler) appointmentView(a models.Appointment) AppointmentView {
	return AppointmentView{
		Appointment:  a,
		CustomerName: h.store.CustomerName(a.CustomerID),
		ServiceNames: h.store.ServiceNames(a.ServiceIDs),
	}
}

func (h *Handler) appointmentViews(list []models.Appointment) []AppointmentView {
	views := make([]AppointmentView, len(list))
	for i, a := range list {
		views[i] = h.appointmentView(a)
	}
	return views
}

func (h *Handler) invoiceView(inv models.Invoice) InvoiceView {
	return InvoiceView{
		Invoice:      inv,
		CustomerName: h.store.CustomerName(inv.CustomerID),
		ServiceNames: h.store.ServiceNames(inv.ServiceIDs),
	}
}

func (h *Handler) invoiceViews(list []models.Invoice) []InvoiceView {
	views := make([]InvoiceView, len(list))
	for i, inv := range list {
		views[i] = h.invoiceView(inv)
	}
	return views
}

// unknownServices returns the ids in ids that are not in the catalog.
func (h *Handler) unknownServices(ids []string) []string {
	var missing []string
	for _, id := range ids {
		if _, ok := h.store.Service(id); !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
