package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/imovia/api/internal/auth"
	"github.com/imovia/api/internal/logger"
	"github.com/imovia/api/internal/models"
	"github.com/imovia/api/internal/policy"
	"github.com/imovia/api/internal/repository"
)

// UserInput carries the fields for creating a user.
type UserInput struct {
	FullName string
	Phone    string
	Username string
	Password string
	Role     models.Role
}

// UserUpdateInput carries the fields for editing a user. An empty
// Password keeps the current one; an empty Role keeps the current role.
type UserUpdateInput struct {
	FullName string
	Phone    string
	Username string
	Password string
	Role     models.Role
}

// DeleteResult reports the outcome of a user deletion.
type DeleteResult struct {
	// LoggedOut is set when the actor deleted their own account, which
	// terminates the session on the client.
	LoggedOut bool
}

// UserService defines the business logic for account management.
type UserService interface {
	// List returns every user. Only admin-tier actors reach user
	// management; everyone else gets ErrForbidden.
	List(ctx context.Context, actor *models.User) ([]models.User, error)

	// Get returns a single user, subject to the same gate as List,
	// except that any actor may fetch their own record.
	Get(ctx context.Context, actor *models.User, id string) (*models.User, error)

	// Create registers a new account with a role the actor may assign.
	Create(ctx context.Context, actor *models.User, input UserInput) (*models.User, error)

	// Update edits an account, policy permitting. Role changes are
	// restricted to the assignable set.
	Update(ctx context.Context, actor *models.User, id string, input UserUpdateInput) (*models.User, error)

	// Delete removes an account, policy permitting. The result reports
	// whether the actor removed themself.
	Delete(ctx context.Context, actor *models.User, id string) (DeleteResult, error)

	// FormCapabilities returns the capability set for the user form.
	FormCapabilities(ctx context.Context, actor *models.User, targetID string) (policy.FormCapabilities, error)
}

// userService is the concrete implementation of UserService.
type userService struct {
	repo repository.UserRepository
	log  *logger.Logger
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo repository.UserRepository, log *logger.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log,
	}
}

func (s *userService) List(ctx context.Context, actor *models.User) ([]models.User, error) {
	if !policy.CanManageUsers(actor) {
		return nil, ErrForbidden
	}

	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list users", err, nil)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) Get(ctx context.Context, actor *models.User, id string) (*models.User, error) {
	if actor == nil {
		return nil, ErrForbidden
	}
	if actor.ID != id && !policy.CanManageUsers(actor) {
		return nil, ErrForbidden
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// validateUserInput checks the required registration fields.
func validateUserInput(input UserInput) error {
	fields := map[string]string{}
	if input.FullName == "" {
		fields["fullName"] = "This field is required"
	}
	if input.Username == "" {
		fields["username"] = "This field is required"
	}
	if input.Password == "" {
		fields["password"] = "This field is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (s *userService) Create(ctx context.Context, actor *models.User, input UserInput) (*models.User, error) {
	if !policy.CanManageUsers(actor) {
		s.logDenied("create user", actor, "")
		return nil, ErrForbidden
	}
	if !policy.CanAssignRole(actor, input.Role) {
		s.logDenied("assign role "+input.Role.String(), actor, "")
		return nil, ErrRoleNotAssignable
	}
	if err := validateUserInput(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := models.User{
		ID:           uuid.NewString(),
		FullName:     input.FullName,
		Phone:        input.Phone,
		Username:     input.Username,
		PasswordHash: hash,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, &user); err != nil {
		s.log.Error("Failed to insert user", err, map[string]interface{}{
			"username": input.Username,
		})
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info("User created", map[string]interface{}{
		"user_id":  user.ID,
		"role":     user.Role.String(),
		"actor_id": actor.ID,
	})
	return &user, nil
}

func (s *userService) Update(ctx context.Context, actor *models.User, id string, input UserUpdateInput) (*models.User, error) {
	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	if !policy.CanEditUser(actor, *target) {
		s.logDenied("edit user", actor, id)
		return nil, ErrForbidden
	}

	if input.FullName == "" {
		return nil, &ValidationError{Fields: map[string]string{
			"fullName": "This field is required",
		}}
	}

	// Role changes go through the assignability matrix; keeping the
	// current role is always allowed.
	if input.Role != "" && input.Role != target.Role {
		caps := policy.UserFormCapabilities(actor, target)
		if !caps.CanEditRoleField || !policy.CanAssignRole(actor, input.Role) {
			s.logDenied("change role to "+input.Role.String(), actor, id)
			return nil, ErrRoleNotAssignable
		}
		target.Role = input.Role
	}

	if input.Username != "" && input.Username != target.Username {
		existing, err := s.repo.FindByUsername(ctx, input.Username)
		if err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		if existing != nil && existing.ID != target.ID {
			return nil, ErrUsernameTaken
		}
		target.Username = input.Username
	}

	if input.Password != "" {
		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		target.PasswordHash = hash
	}

	target.FullName = input.FullName
	target.Phone = input.Phone
	target.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, target); err != nil {
		s.log.Error("Failed to update user", err, map[string]interface{}{
			"user_id": id,
		})
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.log.Info("User updated", map[string]interface{}{
		"user_id":  id,
		"actor_id": actor.ID,
	})
	return target, nil
}

func (s *userService) Delete(ctx context.Context, actor *models.User, id string) (DeleteResult, error) {
	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("failed to load user: %w", err)
	}
	if target == nil {
		return DeleteResult{}, ErrUserNotFound
	}

	if !policy.CanDeleteUser(actor, *target) {
		s.logDenied("delete user", actor, id)
		return DeleteResult{}, ErrForbidden
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete user", err, map[string]interface{}{
			"user_id": id,
		})
		return DeleteResult{}, fmt.Errorf("failed to delete user: %w", err)
	}
	if !deleted {
		return DeleteResult{}, ErrUserNotFound
	}

	result := DeleteResult{LoggedOut: actor != nil && actor.ID == id}

	s.log.Info("User deleted", map[string]interface{}{
		"user_id":     id,
		"actor_id":    actor.ID,
		"self_delete": result.LoggedOut,
	})
	return result, nil
}

func (s *userService) FormCapabilities(ctx context.Context, actor *models.User, targetID string) (policy.FormCapabilities, error) {
	if !policy.CanManageUsers(actor) {
		return policy.FormCapabilities{}, ErrForbidden
	}

	var target *models.User
	if targetID != "" {
		var err error
		target, err = s.repo.FindByID(ctx, targetID)
		if err != nil {
			return policy.FormCapabilities{}, fmt.Errorf("failed to load user: %w", err)
		}
		if target == nil {
			return policy.FormCapabilities{}, ErrUserNotFound
		}
	}

	return policy.UserFormCapabilities(actor, target), nil
}

func (s *userService) logDenied(action string, actor *models.User, targetID string) {
	fields := map[string]interface{}{
		"action": action,
	}
	if targetID != "" {
		fields["target_id"] = targetID
	}
	if actor != nil {
		fields["actor_id"] = actor.ID
		fields["actor_role"] = actor.Role.String()
	}
	s.log.Warn("User action denied", fields)
}
