package controllers

import (
	"detailcrm/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SendReminders messages tomorrow's customers now instead of waiting for
// the scheduled run.
func (h *Handler) SendReminders(c *gin.Context) {
	if h.reminders == nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Reminders are not configured")
		return
	}
	c.JSON(http.StatusOK, h.reminders.SendReminders(h.now()))
}
