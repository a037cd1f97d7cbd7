package models

import (
	"time"
)

// ListingType distinguishes sale listings from rentals.
type ListingType string

const (
	ListingSale   ListingType = "sale"
	ListingRental ListingType = "rental"
)

// Valid reports whether t is a recognized listing type.
func (t ListingType) Valid() bool {
	return t == ListingSale || t == ListingRental
}

// PropertyStatus describes the construction state of a listing.
type PropertyStatus string

const (
	StatusNew    PropertyStatus = "new"
	StatusUsed   PropertyStatus = "used"
	StatusLaunch PropertyStatus = "launch"
)

// Valid reports whether s is a recognized status.
func (s PropertyStatus) Valid() bool {
	return s == StatusNew || s == StatusUsed || s == StatusLaunch
}

// Property is a real-estate listing. ID is immutable once created and
// UserID records the creating account, which drives collaborator-level
// edit/delete rights. A property may outlive its creator; a dangling
// UserID is acceptable.
type Property struct {
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	ID             string         `json:"id"`
	UserID         string         `json:"userId,omitempty"`
	Name           string         `json:"name"`
	RealtorName    string         `json:"realtorName,omitempty"`
	Address        string         `json:"address"`
	City           string         `json:"city"`
	State          string         `json:"state"`
	Neighborhood   string         `json:"neighborhood"`
	ZipCode        string         `json:"zipCode"`
	Description    string         `json:"description"`
	ListingType    ListingType    `json:"type"`
	PropertyType   string         `json:"propertyType"`
	Status         PropertyStatus `json:"status"`
	PhotoURLs      []string       `json:"photoUrls"`
	Photo360URL    string         `json:"photo360Url,omitempty"`
	VideoEmbedCode string         `json:"videoEmbedCode,omitempty"`
	MapEmbedCode   string         `json:"mapEmbedCode,omitempty"`
	Price          float64        `json:"price"`
	CondoFee       float64        `json:"condoFee,omitempty"`
	IPTU           float64        `json:"iptu,omitempty"`
	PrivateArea    float64        `json:"privateArea"`
	TotalArea      float64        `json:"totalArea"`
	Bedrooms       int            `json:"bedrooms"`
	Bathrooms      int            `json:"bathrooms"`
	GarageSpots    int            `json:"garageSpots"`
	YearBuilt      int            `json:"yearBuilt,omitempty"`
	Featured       bool           `json:"featured"`
	ShowVideo      bool           `json:"showVideo"`
	HasPool        bool           `json:"hasPool"`
	HasGrill       bool           `json:"hasBarbecueGrill"`
	HasFireplace   bool           `json:"hasFireplace"`
	HasBalcony     bool           `json:"hasBalcony"`
	HasYard        bool           `json:"hasYard"`
	IsFurnished    bool           `json:"isFurnished"`
}
