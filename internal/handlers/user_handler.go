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

// UserHandler handles account-management HTTP requests.
type UserHandler struct {
	service services.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// CreateUserRequest is the payload for registering an account.
type CreateUserRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=admin collaborator"`
}

// UpdateUserRequest is the payload for editing an account. Password and
// role are optional; empty keeps the current value.
type UpdateUserRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"omitempty,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=admin collaborator"`
}

// UsersResponse is the list payload.
type UsersResponse struct {
	Users []models.User `json:"users"`
	Count int           `json:"count"`
}

// UserResponse is the single-account payload.
type UserResponse struct {
	User *models.User `json:"user"`
}

// DeleteUserResponse reports a deletion. LoggedOut tells the client to
// discard its session token because the actor removed their own account.
type DeleteUserResponse struct {
	LoggedOut bool `json:"logged_out"`
}

// List handles GET /api/v1/users.
func (h *UserHandler) List(c *gin.Context) {
	actor := middleware.GetCurrentUser(c)

	users, err := h.service.List(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, UsersResponse{
		Users: users,
		Count: len(users),
	})
}

// Create handles POST /api/v1/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	actor := middleware.GetCurrentUser(c)
	user, err := h.service.Create(c.Request.Context(), actor, services.UserInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		Username: req.Username,
		Password: req.Password,
		Role:     models.ParseRole(req.Role),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, UserResponse{User: user})
}

// Update handles PUT /api/v1/users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	actor := middleware.GetCurrentUser(c)
	user, err := h.service.Update(c.Request.Context(), actor, c.Param("id"), services.UserUpdateInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		Username: req.Username,
		Password: req.Password,
		Role:     models.ParseRole(req.Role),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{User: user})
}

// Delete handles DELETE /api/v1/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	actor := middleware.GetCurrentUser(c)

	result, err := h.service.Delete(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteUserResponse{LoggedOut: result.LoggedOut})
}

// FormCapabilities handles GET /api/v1/users/capabilities.
// The optional "target" query parameter names the account being edited;
// absent means the create form.
func (h *UserHandler) FormCapabilities(c *gin.Context) {
	actor := middleware.GetCurrentUser(c)

	caps, err := h.service.FormCapabilities(c.Request.Context(), actor, c.Query("target"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, caps)
}
