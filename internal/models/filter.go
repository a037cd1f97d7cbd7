package models

// FilterTypeAny is the unset sentinel for the listing-type clause.
const FilterTypeAny = "any"

// Filter is a transient property query. Every field has an unset sentinel
// ("any"/empty string/zero) that makes its clause match everything; set
// fields are AND-combined by the catalog package.
type Filter struct {
	// ListingType is "any", "sale" or "rental".
	ListingType string `form:"type" json:"type"`
	// PropertyType is matched exactly, case-sensitive.
	PropertyType string `form:"propertyType" json:"propertyType"`
	// City, State and Neighborhood are case-insensitive substring matches.
	City         string `form:"city" json:"city"`
	State        string `form:"state" json:"state"`
	Neighborhood string `form:"neighborhood" json:"neighborhood"`
	// MinBedrooms and MinBathrooms are minimum thresholds, not exact counts.
	MinBedrooms  int `form:"bedrooms" json:"bedrooms"`
	MinBathrooms int `form:"bathrooms" json:"bathrooms"`
	// PriceMin and PriceMax bound the price range; 0 leaves that side open.
	PriceMin float64 `form:"priceMin" json:"priceMin"`
	PriceMax float64 `form:"priceMax" json:"priceMax"`
}
