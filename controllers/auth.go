package controllers

import (
	"detailcrm/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges the owner's credentials for a token.
func (h *Handler) Login(c *gin.Context) {
	if !h.cfg.AuthEnabled() {
		utils.RespondWithError(c, http.StatusBadRequest, "Authentication is disabled")
		return
	}

	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !strings.EqualFold(input.Email, h.cfg.OwnerEmail) ||
		!utils.CheckPasswordHash(input.Password, h.cfg.OwnerPasswordHash) {
		h.log.WithField("email", input.Email).Warn("failed login")
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(h.cfg.OwnerEmail, h.cfg.JWTSecret, h.cfg.JWTExpiry())
	if err != nil {
		h.log.WithError(err).Error("failed to sign token")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(h.cfg.JWTExpiry().Seconds()),
	})
}

// Me returns the subject of the caller's token.
func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"email": c.GetString("userId")})
}
