package controllers

import (
	"detailcrm/models"
	"detailcrm/store"
	"detailcrm/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type CreateInvoiceInput struct {
	CustomerID    string   `json:"customerId" binding:"required"`
	AppointmentID string   `json:"appointmentId"`
	ServiceIDs    []string `json:"serviceIds" binding:"required,min=1"`
}

type UpdateInvoiceStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// CreateInvoice bills services at their current prices. Unknown service
// ids are left off the invoice.
func (h *Handler) CreateInvoice(c *gin.Context) {
	var input CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if _, ok := h.store.Customer(input.CustomerID); !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown customer "+input.CustomerID)
		return
	}
	if input.AppointmentID != "" {
		if _, ok := h.store.Appointment(input.AppointmentID); !ok {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown appointment "+input.AppointmentID)
			return
		}
	}

	id := h.store.CreateInvoice(input.CustomerID, input.ServiceIDs, input.AppointmentID)
	invoice, _ := h.store.Invoice(id)
	c.JSON(http.StatusCreated, h.invoiceView(invoice))
}

// GetInvoices lists invoices, optionally narrowed by status and by a
// from/to creation date window (YYYY-MM-DD, both days included).
func (h *Handler) GetInvoices(c *gin.Context) {
	var filter store.InvoiceFilter
	if s := c.Query("status"); s != "" {
		status, err := models.ParseInvoiceStatus(s)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		filter.Status = status
	}
	var ok bool
	if filter.From, ok = dateParam(c, "from"); !ok {
		return
	}
	if filter.To, ok = dateParam(c, "to"); !ok {
		return
	}

	c.JSON(http.StatusOK, h.invoiceViews(h.store.FilterInvoices(filter)))
}

func (h *Handler) GetInvoice(c *gin.Context) {
	invoice, ok := h.store.Invoice(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		return
	}
	c.JSON(http.StatusOK, h.invoiceView(invoice))
}

// UpdateInvoiceStatus moves an invoice to any status. Paying stamps the
// payment date.
func (h *Handler) UpdateInvoiceStatus(c *gin.Context) {
	var input UpdateInvoiceStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	status, err := models.ParseInvoiceStatus(input.Status)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	id := c.Param("id")
	if !h.store.UpdateInvoiceStatus(id, status) {
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		return
	}
	invoice, _ := h.store.Invoice(id)
	c.JSON(http.StatusOK, h.invoiceView(invoice))
}

func (h *Handler) DeleteInvoice(c *gin.Context) {
	if !h.store.DeleteInvoice(c.Param("id")) {
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}

// dateParam parses an optional YYYY-MM-DD query parameter. It responds
// with 400 and returns false when the value is malformed.
func dateParam(c *gin.Context, name string) (time.Time, bool) {
	s := c.Query(name)
	if s == "" {
		return time.Time{}, true
	}
	day, err := utils.ParseDate(s)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+name+" date, want YYYY-MM-DD")
		return time.Time{}, false
	}
	return day, true
}
