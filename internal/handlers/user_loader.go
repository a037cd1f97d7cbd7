package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/imovia/api/internal/models"
	"github.com/imovia/api/internal/repository"
)

// UserLoader adapts the user repository to the auth middleware, resolving
// token subjects to live account records.
type UserLoader struct {
	repo repository.UserRepository
}

// NewUserLoader creates a new UserLoader.
func NewUserLoader(repo repository.UserRepository) *UserLoader {
	return &UserLoader{repo: repo}
}

// LoadUser returns the user with the given id, or nil when the account no
// longer exists.
func (l *UserLoader) LoadUser(c *gin.Context, id string) (*models.User, error) {
	return l.repo.FindByID(c.Request.Context(), id)
}
