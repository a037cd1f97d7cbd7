// Package catalog contains the pure listing projections: the filter
// predicate and the visible/featured subsets. Everything here is a
// read-only, order-preserving computation over in-memory slices.
package catalog

import (
	"strings"

	"github.com/imovia/api/internal/models"
	"github.com/imovia/api/internal/policy"
)

// Matches reports whether p satisfies every set clause of f. Clauses at
// their unset sentinel always pass, so the zero Filter matches everything.
func Matches(p models.Property, f models.Filter) bool {
	if f.ListingType != "" && f.ListingType != models.FilterTypeAny {
		if string(p.ListingType) != f.ListingType {
			return false
		}
	}
	// Category values come from a fixed list, so the match is exact.
	if f.PropertyType != "" && p.PropertyType != f.PropertyType {
		return false
	}
	if !containsFold(p.City, f.City) {
		return false
	}
	if !containsFold(p.State, f.State) {
		return false
	}
	if !containsFold(p.Neighborhood, f.Neighborhood) {
		return false
	}
	if f.MinBedrooms > 0 && p.Bedrooms < f.MinBedrooms {
		return false
	}
	if f.MinBathrooms > 0 && p.Bathrooms < f.MinBathrooms {
		return false
	}
	if f.PriceMin > 0 && p.Price < f.PriceMin {
		return false
	}
	if f.PriceMax > 0 && p.Price > f.PriceMax {
		return false
	}
	return true
}

// containsFold is a case-insensitive substring check. An empty needle
// means the clause is unset and always passes.
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Search returns the properties matching f, preserving the order of all.
func Search(all []models.Property, f models.Filter) []models.Property {
	results := make([]models.Property, 0, len(all))
	for _, p := range all {
		if Matches(p, f) {
			results = append(results, p)
		}
	}
	return results
}

// Featured returns the promoted subset, preserving the order of all.
func Featured(all []models.Property) []models.Property {
	results := make([]models.Property, 0)
	for _, p := range all {
		if p.Featured {
			results = append(results, p)
		}
	}
	return results
}

// VisibleTo scopes the administrative listing for actor: admin-tier
// actors see everything, a collaborator sees only its own listings, and
// an anonymous caller sees none. The public browse pages bypass this and
// show the whole collection.
func VisibleTo(all []models.Property, actor *models.User) []models.Property {
	if actor == nil {
		return []models.Property{}
	}
	if policy.CanViewAllProperties(actor) {
		return all
	}
	if actor.Role != models.RoleCollaborator {
		return []models.Property{}
	}
	results := make([]models.Property, 0)
	for _, p := range all {
		if p.UserID != "" && p.UserID == actor.ID {
			results = append(results, p)
		}
	}
	return results
}
