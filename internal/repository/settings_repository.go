package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/imovia/api/internal/database"
	"github.com/imovia/api/internal/models"
)

// SettingsRepository persists the single site-settings record.
type SettingsRepository interface {
	// Get returns the stored settings.
	// Returns nil, nil if nothing has been saved yet (not an error).
	Get(ctx context.Context) (*models.SiteSettings, error)

	// Save replaces the stored settings wholesale.
	Save(ctx context.Context, s models.SiteSettings) error
}

// settingsRepository is the concrete implementation of SettingsRepository.
// The record lives in a single JSONB row so presentation fields can evolve
// without schema churn.
type settingsRepository struct {
	db *database.Database
}

// NewSettingsRepository creates a new instance of SettingsRepository.
func NewSettingsRepository(db *database.Database) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*models.SiteSettings, error) {
	var data []byte
	err := r.db.Pool.QueryRow(ctx, `SELECT data FROM site_settings WHERE id = 1`).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query site settings: %w", err)
	}

	var settings models.SiteSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to decode site settings: %w", err)
	}
	return &settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, s models.SiteSettings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode site settings: %w", err)
	}

	_, err = r.db.Pool.Exec(ctx, `
		INSERT INTO site_settings (id, data, updated_at)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		data, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save site settings: %w", err)
	}
	return nil
}
