package services

import (
	"context"
	"fmt"

	"github.com/imovia/api/internal/logger"
	"github.com/imovia/api/internal/models"
	"github.com/imovia/api/internal/policy"
	"github.com/imovia/api/internal/repository"
)

// SettingsService manages the site-wide presentation record.
type SettingsService interface {
	// Get returns the current settings, falling back to defaults when
	// nothing has been saved yet.
	Get(ctx context.Context) (models.SiteSettings, error)

	// Update replaces the settings wholesale. Principal admin only.
	Update(ctx context.Context, actor *models.User, settings models.SiteSettings) error
}

// settingsService is the concrete implementation of SettingsService.
type settingsService struct {
	repo repository.SettingsRepository
	log  *logger.Logger
}

// NewSettingsService creates a new instance of SettingsService.
func NewSettingsService(repo repository.SettingsRepository, log *logger.Logger) SettingsService {
	return &settingsService{
		repo: repo,
		log:  log,
	}
}

func (s *settingsService) Get(ctx context.Context) (models.SiteSettings, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		s.log.Error("Failed to load site settings", err, nil)
		return models.SiteSettings{}, fmt.Errorf("failed to load site settings: %w", err)
	}
	if stored == nil {
		return models.DefaultSiteSettings(), nil
	}
	return *stored, nil
}

func (s *settingsService) Update(ctx context.Context, actor *models.User, settings models.SiteSettings) error {
	if !policy.CanEditSiteSettings(actor) {
		fields := map[string]interface{}{}
		if actor != nil {
			fields["actor_id"] = actor.ID
			fields["actor_role"] = actor.Role.String()
		}
		s.log.Warn("Settings update denied", fields)
		return ErrForbidden
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		s.log.Error("Failed to save site settings", err, nil)
		return fmt.Errorf("failed to save site settings: %w", err)
	}

	s.log.Info("Site settings updated", map[string]interface{}{
		"actor_id": actor.ID,
	})
	return nil
}
