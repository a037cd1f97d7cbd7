package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	apierrors "github.com/imovia/api/internal/errors"
	"github.com/imovia/api/internal/services"
)

// respondServiceError maps service-level sentinel errors onto the shared
// error envelope. Anything unrecognized is a 500 with the detail kept out
// of the response.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		apierrors.BadRequest(c, "Validation failed for one or more fields", validationErr.Details())
		return
	}

	switch {
	case errors.Is(err, services.ErrForbidden):
		apierrors.Forbidden(c, "You do not have permission to perform this action")
	case errors.Is(err, services.ErrRoleNotAssignable):
		apierrors.Forbidden(c, "You cannot assign this role")
	case errors.Is(err, services.ErrPropertyNotFound):
		apierrors.NotFound(c, "Property not found")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, "This username is already in use")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, "Invalid username or password")
	default:
		apierrors.InternalServerError(c, "An unexpected error occurred", err)
	}
}
