package controllers

import (
	"detailcrm/models"
	"detailcrm/utils"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultUpcomingDays = 7

type AppointmentInput struct {
	CustomerID string    `json:"customerId" binding:"required"`
	DateTime   time.Time `json:"dateTime" binding:"required"`
	Location   string    `json:"location"`
	ServiceIDs []string  `json:"serviceIds"`
	Status     string    `json:"status"` // defaults to SCHEDULED on create
	Notes      string    `json:"notes"`
}

// bindAppointment reads the body into a. Status is left alone when the
// input has none.
func (h *Handler) bindAppointment(c *gin.Context, a *models.Appointment) bool {
	var input AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return false
	}
	if _, ok := h.store.Customer(input.CustomerID); !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown customer "+input.CustomerID)
		return false
	}
	if missing := h.unknownServices(input.ServiceIDs); len(missing) > 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown services: "+strings.Join(missing, ", "))
		return false
	}
	if input.Status != "" {
		status, err := models.ParseAppointmentStatus(input.Status)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return false
		}
		a.Status = status
	}

	a.CustomerID = input.CustomerID
	a.DateTime = input.DateTime.In(time.Local).Truncate(time.Second)
	a.Location = input.Location
	a.ServiceIDs = input.ServiceIDs
	a.Notes = input.Notes
	return true
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	appointment := models.NewAppointment()
	if !h.bindAppointment(c, &appointment) {
		return
	}
	appointment.ID = h.store.AddAppointment(appointment)

	c.JSON(http.StatusCreated, h.appointmentView(appointment))
}

// GetAppointments lists all appointments, or those on one day when the
// date query parameter (YYYY-MM-DD) is set.
func (h *Handler) GetAppointments(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusOK, h.appointmentViews(h.store.Appointments()))
		return
	}
	day, err := utils.ParseDate(date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, want YYYY-MM-DD")
		return
	}
	c.JSON(http.StatusOK, h.appointmentViews(h.store.AppointmentsOn(day)))
}

func (h *Handler) GetUpcomingAppointments(c *gin.Context) {
	days := defaultUpcomingDays
	if s := c.Query("days"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "days must be a positive number")
			return
		}
		days = n
	}
	c.JSON(http.StatusOK, h.appointmentViews(h.store.UpcomingAppointments(h.now(), days)))
}

func (h *Handler) GetAppointment(c *gin.Context) {
	appointment, ok := h.store.Appointment(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, h.appointmentView(appointment))
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	appointment, ok := h.store.Appointment(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}
	if !h.bindAppointment(c, &appointment) {
		return
	}
	if !h.store.UpdateAppointment(appointment) {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, h.appointmentView(appointment))
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	if !h.store.DeleteAppointment(c.Param("id")) {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
