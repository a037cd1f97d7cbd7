package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/imovia/api/internal/database"
	"github.com/imovia/api/internal/models"
)

// propertyColumns is the select list shared by all property queries. The
// scan order in scanProperty must match.
const propertyColumns = `
	id, user_id, name, realtor_name, address, city, state, neighborhood,
	zip_code, description, listing_type, property_type, status, photo_urls,
	photo360_url, video_embed_code, map_embed_code, price, condo_fee, iptu,
	private_area, total_area, bedrooms, bathrooms, garage_spots, year_built,
	featured, show_video, has_pool, has_grill, has_fireplace, has_balcony,
	has_yard, is_furnished, created_at, updated_at`

// PropertyRepository defines the interface for property data access.
type PropertyRepository interface {
	// FindAll returns every property, newest first. New listings are
	// prepended to the visible collection, so reads preserve that order.
	FindAll(ctx context.Context) ([]models.Property, error)

	// FindByID returns the property with the given id.
	// Returns nil, nil if no property is found (not an error).
	FindByID(ctx context.Context, id string) (*models.Property, error)

	// Insert stores a new property.
	Insert(ctx context.Context, p *models.Property) error

	// Update replaces the stored record keyed by p.ID. ID, UserID and
	// CreatedAt are never rewritten.
	Update(ctx context.Context, p *models.Property) error

	// Delete removes the property with the given id. Returns whether a
	// row was actually deleted.
	Delete(ctx context.Context, id string) (bool, error)
}

// propertyRepository is the concrete implementation of PropertyRepository.
type propertyRepository struct {
	db *database.Database
}

// NewPropertyRepository creates a new instance of PropertyRepository.
func NewPropertyRepository(db *database.Database) PropertyRepository {
	return &propertyRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanProperty reads one row in propertyColumns order.
func scanProperty(row rowScanner) (*models.Property, error) {
	var p models.Property
	var listingType, status string

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.RealtorName,
		&p.Address,
		&p.City,
		&p.State,
		&p.Neighborhood,
		&p.ZipCode,
		&p.Description,
		&listingType,
		&p.PropertyType,
		&status,
		&p.PhotoURLs,
		&p.Photo360URL,
		&p.VideoEmbedCode,
		&p.MapEmbedCode,
		&p.Price,
		&p.CondoFee,
		&p.IPTU,
		&p.PrivateArea,
		&p.TotalArea,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.GarageSpots,
		&p.YearBuilt,
		&p.Featured,
		&p.ShowVideo,
		&p.HasPool,
		&p.HasGrill,
		&p.HasFireplace,
		&p.HasBalcony,
		&p.HasYard,
		&p.IsFurnished,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.ListingType = models.ListingType(listingType)
	p.Status = models.PropertyStatus(status)
	return &p, nil
}

func (r *propertyRepository) FindAll(ctx context.Context) ([]models.Property, error) {
	query := `SELECT` + propertyColumns + `
		FROM properties
		ORDER BY created_at DESC, id`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	properties := []models.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		properties = append(properties, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property rows: %w", err)
	}

	return properties, nil
}

func (r *propertyRepository) FindByID(ctx context.Context, id string) (*models.Property, error) {
	query := `SELECT` + propertyColumns + `
		FROM properties
		WHERE id = $1`

	p, err := scanProperty(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query property %s: %w", id, err)
	}
	return p, nil
}

func (r *propertyRepository) Insert(ctx context.Context, p *models.Property) error {
	query := `
		INSERT INTO properties (
			id, user_id, name, realtor_name, address, city, state, neighborhood,
			zip_code, description, listing_type, property_type, status, photo_urls,
			photo360_url, video_embed_code, map_embed_code, price, condo_fee, iptu,
			private_area, total_area, bedrooms, bathrooms, garage_spots, year_built,
			featured, show_video, has_pool, has_grill, has_fireplace, has_balcony,
			has_yard, is_furnished, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36
		)`

	_, err := r.db.Pool.Exec(ctx, query,
		p.ID, p.UserID, p.Name, p.RealtorName, p.Address, p.City, p.State,
		p.Neighborhood, p.ZipCode, p.Description, string(p.ListingType),
		p.PropertyType, string(p.Status), p.PhotoURLs, p.Photo360URL,
		p.VideoEmbedCode, p.MapEmbedCode, p.Price, p.CondoFee, p.IPTU,
		p.PrivateArea, p.TotalArea, p.Bedrooms, p.Bathrooms, p.GarageSpots,
		p.YearBuilt, p.Featured, p.ShowVideo, p.HasPool, p.HasGrill,
		p.HasFireplace, p.HasBalcony, p.HasYard, p.IsFurnished,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert property %s: %w", p.ID, err)
	}
	return nil
}

func (r *propertyRepository) Update(ctx context.Context, p *models.Property) error {
	query := `
		UPDATE properties SET
			name = $2, realtor_name = $3, address = $4, city = $5, state = $6,
			neighborhood = $7, zip_code = $8, description = $9, listing_type = $10,
			property_type = $11, status = $12, photo_urls = $13, photo360_url = $14,
			video_embed_code = $15, map_embed_code = $16, price = $17,
			condo_fee = $18, iptu = $19, private_area = $20, total_area = $21,
			bedrooms = $22, bathrooms = $23, garage_spots = $24, year_built = $25,
			featured = $26, show_video = $27, has_pool = $28, has_grill = $29,
			has_fireplace = $30, has_balcony = $31, has_yard = $32,
			is_furnished = $33, updated_at = $34
		WHERE id = $1`

	_, err := r.db.Pool.Exec(ctx, query,
		p.ID, p.Name, p.RealtorName, p.Address, p.City, p.State,
		p.Neighborhood, p.ZipCode, p.Description, string(p.ListingType),
		p.PropertyType, string(p.Status), p.PhotoURLs, p.Photo360URL,
		p.VideoEmbedCode, p.MapEmbedCode, p.Price, p.CondoFee, p.IPTU,
		p.PrivateArea, p.TotalArea, p.Bedrooms, p.Bathrooms, p.GarageSpots,
		p.YearBuilt, p.Featured, p.ShowVideo, p.HasPool, p.HasGrill,
		p.HasFireplace, p.HasBalcony, p.HasYard, p.IsFurnished, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update property %s: %w", p.ID, err)
	}
	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete property %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
