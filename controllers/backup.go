package controllers

import (
	"detailcrm/flatfile"
	"detailcrm/services"
	"detailcrm/store"
	"detailcrm/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateBackup copies the data files. The suffix query parameter names
// the copies; it defaults to a timestamp.
func (h *Handler) CreateBackup(c *gin.Context) {
	suffix := c.DefaultQuery("suffix", services.BackupSuffix(h.now()))

	err := h.store.Backup(suffix)
	switch {
	case errors.Is(err, store.ErrNoPersister):
		utils.RespondWithError(c, http.StatusConflict, "Persistence is disabled")
	case errors.Is(err, flatfile.ErrInvalidSuffix):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case err != nil:
		utils.RespondWithError(c, http.StatusInternalServerError, "Backup failed")
	default:
		c.JSON(http.StatusCreated, gin.H{"suffix": suffix})
	}
}
