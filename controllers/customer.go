package controllers

import (
	"detailcrm/models"
	"detailcrm/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CustomerInput is the JSON body for creating or replacing a customer.
type CustomerInput struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	VehicleMake  string `json:"vehicleMake"`
	VehicleModel string `json:"vehicleModel"`
	VehicleYear  string `json:"vehicleYear"`
	VehicleColor string `json:"vehicleColor"`
	Notes        string `json:"notes"`
}

func (in CustomerInput) apply(c *models.Customer) {
	c.FirstName = strings.TrimSpace(in.FirstName)
	c.LastName = strings.TrimSpace(in.LastName)
	c.Email = strings.TrimSpace(in.Email)
	c.Phone = strings.TrimSpace(in.Phone)
	c.Address = in.Address
	c.VehicleMake = in.VehicleMake
	c.VehicleModel = in.VehicleModel
	c.VehicleYear = in.VehicleYear
	c.VehicleColor = in.VehicleColor
	c.Notes = in.Notes
}

func bindCustomer(c *gin.Context) (CustomerInput, bool) {
	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return input, false
	}
	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return input, false
	}
	return input, true
}

func (h *Handler) CreateCustomer(c *gin.Context) {
	input, ok := bindCustomer(c)
	if !ok {
		return
	}

	customer := models.NewCustomer()
	input.apply(&customer)
	customer.ID = h.store.AddCustomer(customer)

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers lists customers, filtered by the q query parameter when
// it is set.
func (h *Handler) GetCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.SearchCustomers(c.Query("q")))
}

func (h *Handler) GetCustomer(c *gin.Context) {
	customer, ok := h.store.Customer(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	customer, ok := h.store.Customer(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}
	input, ok := bindCustomer(c)
	if !ok {
		return
	}

	input.apply(&customer)
	if !h.store.UpdateCustomer(customer) {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes the customer and its appointments. Its invoices
// stay on file.
func (h *Handler) DeleteCustomer(c *gin.Context) {
	if !h.store.DeleteCustomer(c.Param("id")) {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

func (h *Handler) GetCustomerAppointments(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.Customer(id); !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, h.appointmentViews(h.store.AppointmentsForCustomer(id)))
}

// GetCustomerInvoices also answers for deleted customers, whose invoices
// are kept.
func (h *Handler) GetCustomerInvoices(c *gin.Context) {
	c.JSON(http.StatusOK, h.invoiceViews(h.store.InvoicesForCustomer(c.Param("id"))))
}
