package services

import (
	"context"
	"fmt"

	"github.com/imovia/api/internal/logger"
	"github.com/imovia/api/internal/models"
	"github.com/imovia/api/internal/policy"
	"github.com/imovia/api/internal/repository"
)

// DataSnapshot is the bootstrap payload the web client loads on startup.
// Users appear only for admin-tier callers.
type DataSnapshot struct {
	Properties []models.Property   `json:"properties"`
	Users      []models.User       `json:"users,omitempty"`
	Settings   models.SiteSettings `json:"settings"`
}

// DataService assembles the aggregate bootstrap payload.
type DataService interface {
	// Snapshot returns properties and settings for any caller, plus the
	// user list when actor may manage users.
	Snapshot(ctx context.Context, actor *models.User) (DataSnapshot, error)
}

// dataService is the concrete implementation of DataService.
type dataService struct {
	properties repository.PropertyRepository
	users      repository.UserRepository
	settings   SettingsService
	log        *logger.Logger
}

// NewDataService creates a new instance of DataService.
func NewDataService(
	properties repository.PropertyRepository,
	users repository.UserRepository,
	settings SettingsService,
	log *logger.Logger,
) DataService {
	return &dataService{
		properties: properties,
		users:      users,
		settings:   settings,
		log:        log,
	}
}

func (s *dataService) Snapshot(ctx context.Context, actor *models.User) (DataSnapshot, error) {
	properties, err := s.properties.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load properties for snapshot", err, nil)
		return DataSnapshot{}, fmt.Errorf("failed to load properties: %w", err)
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return DataSnapshot{}, err
	}

	snapshot := DataSnapshot{
		Properties: properties,
		Settings:   settings,
	}

	if policy.CanManageUsers(actor) {
		users, err := s.users.FindAll(ctx)
		if err != nil {
			s.log.Error("Failed to load users for snapshot", err, nil)
			return DataSnapshot{}, fmt.Errorf("failed to load users: %w", err)
		}
		snapshot.Users = users
	}

	return snapshot, nil
}
