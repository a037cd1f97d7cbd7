package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/imovia/api/internal/middleware"
	"github.com/imovia/api/internal/services"
)

// DataHandler serves the aggregate bootstrap payload.
type DataHandler struct {
	service services.DataService
}

// NewDataHandler creates a new DataHandler instance.
func NewDataHandler(service services.DataService) *DataHandler {
	return &DataHandler{
		service: service,
	}
}

// Snapshot handles GET /api/v1/data.
// Runs behind optional auth: anonymous callers get properties and
// settings, admin-tier callers additionally get the user list.
func (h *DataHandler) Snapshot(c *gin.Context) {
	actor := middleware.GetCurrentUser(c)

	snapshot, err := h.service.Snapshot(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
