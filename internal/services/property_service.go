package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/imovia/api/internal/catalog"
	"github.com/imovia/api/internal/logger"
	"github.com/imovia/api/internal/models"
	"github.com/imovia/api/internal/policy"
	"github.com/imovia/api/internal/repository"
)

// PropertyInput carries the settable fields of a listing. ID, owner and
// timestamps are managed by the service.
type PropertyInput struct {
	Name           string
	RealtorName    string
	Address        string
	City           string
	State          string
	Neighborhood   string
	ZipCode        string
	Description    string
	ListingType    models.ListingType
	PropertyType   string
	Status         models.PropertyStatus
	PhotoURLs      []string
	Photo360URL    string
	VideoEmbedCode string
	MapEmbedCode   string
	Price          float64
	CondoFee       float64
	IPTU           float64
	PrivateArea    float64
	TotalArea      float64
	Bedrooms       int
	Bathrooms      int
	GarageSpots    int
	YearBuilt      int
	Featured       bool
	ShowVideo      bool
	HasPool        bool
	HasGrill       bool
	HasFireplace   bool
	HasBalcony     bool
	HasYard        bool
	IsFurnished    bool
}

// PropertyService defines the business logic for listings.
type PropertyService interface {
	// Search returns properties matching the filter, public context,
	// collection order preserved.
	Search(ctx context.Context, f models.Filter) ([]models.Property, error)

	// Featured returns the promoted subset, order preserved.
	Featured(ctx context.Context) ([]models.Property, error)

	// Get returns a single listing.
	// Returns ErrPropertyNotFound when the id is unknown.
	Get(ctx context.Context, id string) (*models.Property, error)

	// ListForActor returns the administrative listing scoped by
	// ownership. Returns ErrForbidden for anonymous callers.
	ListForActor(ctx context.Context, actor *models.User) ([]models.Property, error)

	// Create validates and stores a new listing owned by actor.
	Create(ctx context.Context, actor *models.User, input PropertyInput) (*models.Property, error)

	// Update replaces the listing keyed by id. ID, owner and creation
	// time are preserved. Returns ErrForbidden when the policy denies.
	Update(ctx context.Context, actor *models.User, id string, input PropertyInput) (*models.Property, error)

	// Delete removes the listing keyed by id, policy permitting.
	Delete(ctx context.Context, actor *models.User, id string) error

	// ToggleFeatured flips the promotional flag, policy permitting.
	ToggleFeatured(ctx context.Context, actor *models.User, id string) (*models.Property, error)
}

// propertyService is the concrete implementation of PropertyService.
type propertyService struct {
	repo repository.PropertyRepository
	log  *logger.Logger
}

// NewPropertyService creates a new instance of PropertyService.
func NewPropertyService(repo repository.PropertyRepository, log *logger.Logger) PropertyService {
	return &propertyService{
		repo: repo,
		log:  log,
	}
}

func (s *propertyService) Search(ctx context.Context, f models.Filter) ([]models.Property, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load properties for search", err, nil)
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}

	results := catalog.Search(all, f)

	s.log.Debug("Property search evaluated", map[string]interface{}{
		"total":   len(all),
		"matched": len(results),
	})
	return results, nil
}

func (s *propertyService) Featured(ctx context.Context) ([]models.Property, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load properties for featured view", err, nil)
		return nil, fmt.Errorf("failed to load featured properties: %w", err)
	}
	return catalog.Featured(all), nil
}

func (s *propertyService) Get(ctx context.Context, id string) (*models.Property, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load property", err, map[string]interface{}{
			"property_id": id,
		})
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	if p == nil {
		return nil, ErrPropertyNotFound
	}
	return p, nil
}

func (s *propertyService) ListForActor(ctx context.Context, actor *models.User) ([]models.Property, error) {
	if actor == nil {
		return nil, ErrForbidden
	}

	all, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load properties for admin listing", err, nil)
		return nil, fmt.Errorf("failed to load properties: %w", err)
	}

	return catalog.VisibleTo(all, actor), nil
}

// validatePropertyInput enforces the creation/update requirements: the
// descriptive fields, a positive price and at least one photo.
func validatePropertyInput(input PropertyInput) error {
	fields := map[string]string{}

	required := map[string]string{
		"name":         input.Name,
		"address":      input.Address,
		"city":         input.City,
		"state":        input.State,
		"neighborhood": input.Neighborhood,
		"zipCode":      input.ZipCode,
		"description":  input.Description,
	}
	for name, value := range required {
		if value == "" {
			fields[name] = "This field is required"
		}
	}

	if input.Price <= 0 {
		fields["price"] = "Price must be greater than zero"
	}
	if len(input.PhotoURLs) == 0 {
		fields["photoUrls"] = "At least one photo is required"
	}
	if !input.ListingType.Valid() {
		fields["type"] = "Must be sale or rental"
	}
	if !input.Status.Valid() {
		fields["status"] = "Must be new, used or launch"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// propertyFromInput builds the stored record from validated input.
func propertyFromInput(input PropertyInput) models.Property {
	return models.Property{
		Name:           input.Name,
		RealtorName:    input.RealtorName,
		Address:        input.Address,
		City:           input.City,
		State:          input.State,
		Neighborhood:   input.Neighborhood,
		ZipCode:        input.ZipCode,
		Description:    input.Description,
		ListingType:    input.ListingType,
		PropertyType:   input.PropertyType,
		Status:         input.Status,
		PhotoURLs:      input.PhotoURLs,
		Photo360URL:    input.Photo360URL,
		VideoEmbedCode: input.VideoEmbedCode,
		MapEmbedCode:   input.MapEmbedCode,
		Price:          input.Price,
		CondoFee:       input.CondoFee,
		IPTU:           input.IPTU,
		PrivateArea:    input.PrivateArea,
		TotalArea:      input.TotalArea,
		Bedrooms:       input.Bedrooms,
		Bathrooms:      input.Bathrooms,
		GarageSpots:    input.GarageSpots,
		YearBuilt:      input.YearBuilt,
		Featured:       input.Featured,
		ShowVideo:      input.ShowVideo,
		HasPool:        input.HasPool,
		HasGrill:       input.HasGrill,
		HasFireplace:   input.HasFireplace,
		HasBalcony:     input.HasBalcony,
		HasYard:        input.HasYard,
		IsFurnished:    input.IsFurnished,
	}
}

func (s *propertyService) Create(ctx context.Context, actor *models.User, input PropertyInput) (*models.Property, error) {
	if actor == nil {
		return nil, ErrForbidden
	}

	if err := validatePropertyInput(input); err != nil {
		s.log.Warn("Property creation rejected", map[string]interface{}{
			"actor_id": actor.ID,
			"reason":   err.Error(),
		})
		return nil, err
	}

	now := time.Now()
	p := propertyFromInput(input)
	p.ID = uuid.NewString()
	p.UserID = actor.ID
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.repo.Insert(ctx, &p); err != nil {
		s.log.Error("Failed to insert property", err, map[string]interface{}{
			"property_id": p.ID,
		})
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	s.log.Info("Property created", map[string]interface{}{
		"property_id": p.ID,
		"actor_id":    actor.ID,
		"name":        p.Name,
	})
	return &p, nil
}

func (s *propertyService) Update(ctx context.Context, actor *models.User, id string, input PropertyInput) (*models.Property, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	if existing == nil {
		return nil, ErrPropertyNotFound
	}

	if !policy.CanEditProperty(actor, *existing) {
		s.logDenied("edit property", actor, id)
		return nil, ErrForbidden
	}

	if err := validatePropertyInput(input); err != nil {
		return nil, err
	}

	p := propertyFromInput(input)
	p.ID = existing.ID
	p.UserID = existing.UserID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, &p); err != nil {
		s.log.Error("Failed to update property", err, map[string]interface{}{
			"property_id": id,
		})
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	s.log.Info("Property updated", map[string]interface{}{
		"property_id": id,
		"actor_id":    actor.ID,
	})
	return &p, nil
}

func (s *propertyService) Delete(ctx context.Context, actor *models.User, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load property: %w", err)
	}
	if existing == nil {
		return ErrPropertyNotFound
	}

	if !policy.CanDeleteProperty(actor, *existing) {
		s.logDenied("delete property", actor, id)
		return ErrForbidden
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete property", err, map[string]interface{}{
			"property_id": id,
		})
		return fmt.Errorf("failed to delete property: %w", err)
	}
	if !deleted {
		return ErrPropertyNotFound
	}

	s.log.Info("Property deleted", map[string]interface{}{
		"property_id": id,
		"actor_id":    actor.ID,
	})
	return nil
}

func (s *propertyService) ToggleFeatured(ctx context.Context, actor *models.User, id string) (*models.Property, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	if existing == nil {
		return nil, ErrPropertyNotFound
	}

	if !policy.CanToggleFeatured(actor, *existing) {
		s.logDenied("toggle featured", actor, id)
		return nil, ErrForbidden
	}

	existing.Featured = !existing.Featured
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		s.log.Error("Failed to toggle featured flag", err, map[string]interface{}{
			"property_id": id,
		})
		return nil, fmt.Errorf("failed to toggle featured flag: %w", err)
	}

	s.log.Info("Featured flag toggled", map[string]interface{}{
		"property_id": id,
		"actor_id":    actor.ID,
		"featured":    existing.Featured,
	})
	return existing, nil
}

func (s *propertyService) logDenied(action string, actor *models.User, propertyID string) {
	fields := map[string]interface{}{
		"action":      action,
		"property_id": propertyID,
	}
	if actor != nil {
		fields["actor_id"] = actor.ID
		fields["actor_role"] = actor.Role.String()
	}
	s.log.Warn("Property action denied", fields)
}
