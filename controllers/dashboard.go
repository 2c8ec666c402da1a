package controllers

import (
	"detailcrm/store"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	Stats                store.Stats       `json:"stats"`
	TodayAppointments    []AppointmentView `json:"todayAppointments"`
	UpcomingAppointments []AppointmentView `json:"upcomingAppointments"`
	PendingInvoices      []InvoiceView     `json:"pendingInvoices"`
}

func (h *Handler) GetDashboardOverview(c *gin.Context) {
	now := h.now()
	c.JSON(http.StatusOK, DashboardOverview{
		Stats:                h.store.Stats(now),
		TodayAppointments:    h.appointmentViews(h.store.AppointmentsOn(now)),
		UpcomingAppointments: h.appointmentViews(h.store.UpcomingAppointments(now, defaultUpcomingDays)),
		PendingInvoices:      h.invoiceViews(h.store.PendingInvoices()),
	})
}
