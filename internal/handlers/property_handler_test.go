package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apierrors "github.com/imovia/api/internal/errors"
	"github.com/imovia/api/internal/middleware"
	"github.com/imovia/api/internal/models"
	"github.com/imovia/api/internal/services"
)

func setupPropertyTestRouter(service services.PropertyService, env *testAuthEnv) *gin.Engine {
	router := newTestRouter()
	handler := NewPropertyHandler(service)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/properties", handler.Search)
		v1.GET("/properties/featured", handler.Featured)
		v1.GET("/properties/:id", handler.Get)

		authed := v1.Group("")
		authed.Use(middleware.RequireAuth(env.issuer, env.loader))
		{
			authed.GET("/admin/properties", handler.AdminList)
			authed.POST("/properties", handler.Create)
			authed.DELETE("/properties/:id", handler.Delete)
			authed.POST("/properties/:id/feature", handler.ToggleFeatured)
		}
	}
	return router
}

const validPropertyBody = `{
	"name": "Garden Apartment",
	"address": "Rua das Flores 100",
	"city": "São Paulo",
	"state": "SP",
	"neighborhood": "Moema",
	"zipCode": "04077-000",
	"description": "Two bedroom apartment near the park",
	"type": "sale",
	"propertyType": "Apartment",
	"status": "used",
	"photoUrls": ["https://example.com/1.jpg"],
	"price": 450000,
	"bedrooms": 2,
	"bathrooms": 1
}`

func TestPropertySearch_AppliesQueryFilter(t *testing.T) {
	mockService := new(MockPropertyService)
	router := setupPropertyTestRouter(mockService, newTestAuthEnv())

	expected := models.Filter{
		ListingType: "sale",
		City:        "São Paulo",
		MinBedrooms: 2,
	}
	results := []models.Property{{ID: "p1"}}
	mockService.On("Search", mock.Anything, expected).Return(results, nil)

	req, err := http.NewRequest(http.MethodGet,
		"/api/v1/properties?type=sale&city=S%C3%A3o+Paulo&bedrooms=2", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response PropertiesResponse
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, 1, response.Count)
	assert.Equal(t, "p1", response.Properties[0].ID)
	mockService.AssertExpectations(t)
}

func TestPropertyGet_NotFound(t *testing.T) {
	mockService := new(MockPropertyService)
	router := setupPropertyTestRouter(mockService, newTestAuthEnv())

	mockService.On("Get", mock.Anything, "missing").Return(nil, services.ErrPropertyNotFound)

	req, err := http.NewRequest(http.MethodGet, "/api/v1/properties/missing", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response apierrors.ErrorResponse
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, apierrors.ErrNotFound, response.Error.Code)
}

func TestPropertyCreate_RequiresAuth(t *testing.T) {
	mockService := new(MockPropertyService)
	router := setupPropertyTestRouter(mockService, newTestAuthEnv())

	req, err := http.NewRequest(http.MethodPost, "/api/v1/properties", strings.NewReader(validPropertyBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestPropertyCreate_Success(t *testing.T) {
	actor := &models.User{ID: "u1", Role: models.RoleCollaborator}
	env := newTestAuthEnv(actor)
	mockService := new(MockPropertyService)
	router := setupPropertyTestRouter(mockService, env)

	created := &models.Property{ID: "p1", UserID: "u1", Name: "Garden Apartment"}
	mockService.On("Create", mock.Anything, actor, mock.AnythingOfType("services.PropertyInput")).
		Return(created, nil)

	req, err := http.NewRequest(http.MethodPost, "/api/v1/properties", strings.NewReader(validPropertyBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+env.tokenFor(actor))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response PropertyResponse
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "p1", response.Property.ID)
	mockService.AssertExpectations(t)
}

func TestPropertyCreate_BindingRejectsBadPayload(t *testing.T) {
	actor := &models.User{ID: "u1", Role: models.RoleAdmin}
	env := newTestAuthEnv(actor)
	mockService := new(MockPropertyService)
	router := setupPropertyTestRouter(mockService, env)

	// No photos and an unknown listing type
	body := `{"name":"X","address":"A","city":"C","state":"S","neighborhood":"N",
		"zipCode":"Z","description":"D","type":"lease","status":"used",
		"photoUrls":[],"price":100}`
	req, err := http.NewRequest(http.MethodPost, "/api/v1/properties", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+env.tokenFor(actor))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response apierrors.ErrorResponse
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, apierrors.ErrValidation, response.Error.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestPropertyDelete_ForbiddenMapsTo403(t *testing.T) {
	actor := &models.User{ID: "u2", Role: models.RoleCollaborator}
	env := newTestAuthEnv(actor)
	mockService := new(MockPropertyService)
	router := setupPropertyTestRouter(mockService, env)

	mockService.On("Delete", mock.Anything, actor, "p1").Return(services.ErrForbidden)

	req, err := http.NewRequest(http.MethodDelete, "/api/v1/properties/p1", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+env.tokenFor(actor))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var response apierrors.ErrorResponse
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, apierrors.ErrForbidden, response.Error.Code)
}

func TestPropertyDelete_Success(t *testing.T) {
	actor := &models.User{ID: "u1", Role: models.RoleAdmin}
	env := newTestAuthEnv(actor)
	mockService := new(MockPropertyService)
	router := setupPropertyTestRouter(mockService, env)

	mockService.On("Delete", mock.Anything, actor, "p1").Return(nil)

	req, err := http.NewRequest(http.MethodDelete, "/api/v1/properties/p1", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+env.tokenFor(actor))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestToggleFeatured_Success(t *testing.T) {
	actor := &models.User{ID: "u1", Role: models.RolePrincipalAdmin}
	env := newTestAuthEnv(actor)
	mockService := new(MockPropertyService)
	router := setupPropertyTestRouter(mockService, env)

	toggled := &models.Property{ID: "p1", Featured: true}
	mockService.On("ToggleFeatured", mock.Anything, actor, "p1").Return(toggled, nil)

	req, err := http.NewRequest(http.MethodPost, "/api/v1/properties/p1/feature", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+env.tokenFor(actor))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response PropertyResponse
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.True(t, response.Property.Featured)
}

func TestAdminList_DeletedAccountLosesAccess(t *testing.T) {
	// The token is valid but the account is gone from the loader.
	ghost := &models.User{ID: "ghost", Role: models.RoleAdmin}
	env := newTestAuthEnv()
	mockService := new(MockPropertyService)
	router := setupPropertyTestRouter(mockService, env)

	req, err := http.NewRequest(http.MethodGet, "/api/v1/admin/properties", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+env.tokenFor(ghost))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "ListForActor", mock.Anything, mock.Anything)
}
