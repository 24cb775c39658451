package domain

import "time"

type ListingType string

const (
	ListingTypeAgent ListingType = "AGENT"
	ListingTypeFSBO  ListingType = "FSBO"
)

// PropertySummary - карточка объекта в выдаче.
type PropertySummary struct {
	ID           string
	Title        string
	Price        float64
	Location     string
	PropertyType string
	ListingType  string
	Bedrooms     int
	Bathrooms    int
	AreaSqFt     float64
	MainImageURL string
	DateAdded    *time.Time
	Amenities    []string
	Status       string
}

type Lister struct {
	ID       string
	Username string
	Avatar   string
	Agency   string
	Phone    string
}

// PropertyDetail - полная информация об объекте.
type PropertyDetail struct {
	PropertySummary
	Description string
	Address     string
	Latitude    *float64
	Longitude   *float64
	ImageURLs   []string
	Lister      Lister
	// Geohash вычисляется по координатам для карты, пустой без координат.
	Geohash string
}

// PropertyInput - создание и редактирование объявления.
type PropertyInput struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Price        float64  `json:"price" validate:"gt=0"`
	Location     string   `json:"location" validate:"required"`
	Address      string   `json:"address" validate:"required"`
	Latitude     *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	PropertyType string   `json:"propertyType" validate:"required"`
	ListingType  string   `json:"listingType" validate:"required"`
	Bedrooms     int      `json:"bedrooms" validate:"gte=0"`
	Bathrooms    int      `json:"bathrooms" validate:"gte=0"`
	AreaSqFt     float64  `json:"areaSqFt" validate:"gt=0"`
	Amenities    []string `json:"amenities"`
	ImageURLs    []string `json:"imageUrls" validate:"dive,url"`
}

// FSBOListingInput - объявление собственника без агента.
type FSBOListingInput struct {
	PropertyInput
	ContactName  string `json:"contactName" validate:"required"`
	ContactPhone string `json:"contactPhone" validate:"required"`
	ContactEmail string `json:"contactEmail" validate:"required,email"`
}
