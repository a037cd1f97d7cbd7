package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/imovia/api/internal/errors"
	"github.com/imovia/api/internal/middleware"
	"github.com/imovia/api/internal/models"
	"github.com/imovia/api/internal/services"
)

// SettingsHandler handles site-settings HTTP requests.
type SettingsHandler struct {
	service services.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler instance.
func NewSettingsHandler(service services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		service: service,
	}
}

// SettingsResponse wraps the settings record.
type SettingsResponse struct {
	Settings models.SiteSettings `json:"settings"`
}

// Get handles GET /api/v1/settings. Public.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.service.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Settings: settings})
}

// Update handles PUT /api/v1/settings.
// The record is replaced wholesale; missing fields become their zero
// values, which the client avoids by always sending the full record.
func (h *SettingsHandler) Update(c *gin.Context) {
	var settings models.SiteSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	actor := middleware.GetCurrentUser(c)
	if err := h.service.Update(c.Request.Context(), actor, settings); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Settings: settings})
}
