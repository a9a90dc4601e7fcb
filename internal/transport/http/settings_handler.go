package handlers

import (
	"errors"
	"net/http"

	"learnplatform/internal/application/usecase"
	"learnplatform/internal/middleware"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settings *usecase.SettingsService
}

func NewSettingsHandler(settings *usecase.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GET /api/v1/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user id"})
		return
	}
	c.JSON(http.StatusOK, h.settings.Get(c, userID))
}

// PUT /api/v1/settings
func (h *SettingsHandler) Put(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user id"})
		return
	}

	var req usecase.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.settings.Set(c, userID, req); err != nil {
		if errors.Is(err, usecase.ErrBadSetting) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported language or theme"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings, try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
