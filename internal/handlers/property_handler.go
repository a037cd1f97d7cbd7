package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	apierrors "github.com/imovia/api/internal/errors"
	"github.com/imovia/api/internal/middleware"
	"github.com/imovia/api/internal/models"
	"github.com/imovia/api/internal/services"
)

// PropertyHandler handles listing-related HTTP requests.
type PropertyHandler struct {
	service services.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler instance.
func NewPropertyHandler(service services.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		service: service,
	}
}

// PropertyRequest is the write payload for creating or replacing a
// listing. Identity, ownership and timestamps are server-managed.
type PropertyRequest struct {
	Name           string   `json:"name" binding:"required"`
	RealtorName    string   `json:"realtorName"`
	Address        string   `json:"address" binding:"required"`
	City           string   `json:"city" binding:"required"`
	State          string   `json:"state" binding:"required"`
	Neighborhood   string   `json:"neighborhood" binding:"required"`
	ZipCode        string   `json:"zipCode" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	Type           string   `json:"type" binding:"required,oneof=sale rental"`
	PropertyType   string   `json:"propertyType"`
	Status         string   `json:"status" binding:"required,oneof=new used launch"`
	PhotoURLs      []string `json:"photoUrls" binding:"required,min=1"`
	Photo360URL    string   `json:"photo360Url"`
	VideoEmbedCode string   `json:"videoEmbedCode"`
	MapEmbedCode   string   `json:"mapEmbedCode"`
	Price          float64  `json:"price" binding:"required,gt=0"`
	CondoFee       float64  `json:"condoFee" binding:"omitempty,gte=0"`
	IPTU           float64  `json:"iptu" binding:"omitempty,gte=0"`
	PrivateArea    float64  `json:"privateArea" binding:"omitempty,gte=0"`
	TotalArea      float64  `json:"totalArea" binding:"omitempty,gte=0"`
	Bedrooms       int      `json:"bedrooms" binding:"omitempty,gte=0"`
	Bathrooms      int      `json:"bathrooms" binding:"omitempty,gte=0"`
	GarageSpots    int      `json:"garageSpots" binding:"omitempty,gte=0"`
	YearBuilt      int      `json:"yearBuilt" binding:"omitempty,gte=0"`
	Featured       bool     `json:"featured"`
	ShowVideo      bool     `json:"showVideo"`
	HasPool        bool     `json:"hasPool"`
	HasGrill       bool     `json:"hasBarbecueGrill"`
	HasFireplace   bool     `json:"hasFireplace"`
	HasBalcony     bool     `json:"hasBalcony"`
	HasYard        bool     `json:"hasYard"`
	IsFurnished    bool     `json:"isFurnished"`
}

// toInput converts the request payload to the service input.
func (r *PropertyRequest) toInput() services.PropertyInput {
	return services.PropertyInput{
		Name:           r.Name,
		RealtorName:    r.RealtorName,
		Address:        r.Address,
		City:           r.City,
		State:          r.State,
		Neighborhood:   r.Neighborhood,
		ZipCode:        r.ZipCode,
		Description:    r.Description,
		ListingType:    models.ListingType(r.Type),
		PropertyType:   r.PropertyType,
		Status:         models.PropertyStatus(r.Status),
		PhotoURLs:      r.PhotoURLs,
		Photo360URL:    r.Photo360URL,
		VideoEmbedCode: r.VideoEmbedCode,
		MapEmbedCode:   r.MapEmbedCode,
		Price:          r.Price,
		CondoFee:       r.CondoFee,
		IPTU:           r.IPTU,
		PrivateArea:    r.PrivateArea,
		TotalArea:      r.TotalArea,
		Bedrooms:       r.Bedrooms,
		Bathrooms:      r.Bathrooms,
		GarageSpots:    r.GarageSpots,
		YearBuilt:      r.YearBuilt,
		Featured:       r.Featured,
		ShowVideo:      r.ShowVideo,
		HasPool:        r.HasPool,
		HasGrill:       r.HasGrill,
		HasFireplace:   r.HasFireplace,
		HasBalcony:     r.HasBalcony,
		HasYard:        r.HasYard,
		IsFurnished:    r.IsFurnished,
	}
}

// PropertiesResponse is the list payload.
type PropertiesResponse struct {
	Properties []models.Property `json:"properties"`
	Count      int               `json:"count"`
}

// PropertyResponse is the single-listing payload.
type PropertyResponse struct {
	Property *models.Property `json:"property"`
}

// Search handles GET /api/v1/properties.
// Public; applies the filter query parameters over the full collection.
func (h *PropertyHandler) Search(c *gin.Context) {
	var filter models.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	properties, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, PropertiesResponse{
		Properties: properties,
		Count:      len(properties),
	})
}

// Featured handles GET /api/v1/properties/featured.
func (h *PropertyHandler) Featured(c *gin.Context) {
	properties, err := h.service.Featured(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, PropertiesResponse{
		Properties: properties,
		Count:      len(properties),
	})
}

// Get handles GET /api/v1/properties/:id.
func (h *PropertyHandler) Get(c *gin.Context) {
	property, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, PropertyResponse{Property: property})
}

// AdminList handles GET /api/v1/admin/properties.
// The listing is scoped by ownership for collaborators.
func (h *PropertyHandler) AdminList(c *gin.Context) {
	actor := middleware.GetCurrentUser(c)

	properties, err := h.service.ListForActor(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, PropertiesResponse{
		Properties: properties,
		Count:      len(properties),
	})
}

// Create handles POST /api/v1/properties.
func (h *PropertyHandler) Create(c *gin.Context) {
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	actor := middleware.GetCurrentUser(c)
	property, err := h.service.Create(c.Request.Context(), actor, req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, PropertyResponse{Property: property})
}

// Update handles PUT /api/v1/properties/:id.
// Full-record replacement keyed by id.
func (h *PropertyHandler) Update(c *gin.Context) {
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	actor := middleware.GetCurrentUser(c)
	property, err := h.service.Update(c.Request.Context(), actor, c.Param("id"), req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, PropertyResponse{Property: property})
}

// Delete handles DELETE /api/v1/properties/:id.
func (h *PropertyHandler) Delete(c *gin.Context) {
	actor := middleware.GetCurrentUser(c)

	if err := h.service.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleFeatured handles POST /api/v1/properties/:id/feature.
func (h *PropertyHandler) ToggleFeatured(c *gin.Context) {
	actor := middleware.GetCurrentUser(c)

	property, err := h.service.ToggleFeatured(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, PropertyResponse{Property: property})
}
