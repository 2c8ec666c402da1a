package controllers

import (
	"detailcrm/models"
	"detailcrm/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type ServiceInput struct {
	Code        string  `json:"code" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
}

func (in ServiceInput) service(id string) models.Service {
	return models.Service{
		ID:          id,
		Code:        strings.ToUpper(strings.TrimSpace(in.Code)),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       models.RoundCents(in.Price),
	}
}

// codeTaken reports whether another service already uses code.
func (h *Handler) codeTaken(code, id string) bool {
	existing, ok := h.store.ServiceByCode(code)
	return ok && existing.ID != id
}

func (h *Handler) CreateService(c *gin.Context) {
	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := input.service("")
	if h.codeTaken(service.Code, "") {
		utils.RespondWithError(c, http.StatusConflict, "Service with this code already exists")
		return
	}
	service.ID = h.store.AddService(service)

	c.JSON(http.StatusCreated, service)
}

// GetServices lists the catalog, cheapest first.
func (h *Handler) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Services())
}

func (h *Handler) GetService(c *gin.Context) {
	service, ok := h.store.Service(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	c.JSON(http.StatusOK, service)
}

// UpdateService changes a catalog entry. Invoices already issued keep
// their totals.
func (h *Handler) UpdateService(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.Service(id); !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	service := input.service(id)
	if h.codeTaken(service.Code, id) {
		utils.RespondWithError(c, http.StatusConflict, "Service with this code already exists")
		return
	}
	if !h.store.UpdateService(service) {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *Handler) DeleteService(c *gin.Context) {
	if !h.store.DeleteService(c.Param("id")) {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
