package model

// Listing sources.
const (
	SourceAPI     = "rapidapi"
	SourceScraper = "scraper"
)

// ListingPrice is the nightly rate and stay total reported by the source.
type ListingPrice struct {
	Rate     float64 `json:"rate"`
	Total    float64 `json:"total,omitempty"`
	Currency string  `json:"currency,omitempty"`
}

// Listing is a housing unit sourced from the listings API or a scraped page.
type Listing struct {
	ID           string       `json:"id"`
	Source       string       `json:"source"`
	Title        string       `json:"title"`
	URL          string       `json:"url"`
	Images       []string     `json:"images"`
	Price        ListingPrice `json:"price"`
	Rating       float64      `json:"rating,omitempty"`
	ReviewsCount int          `json:"reviews_count,omitempty"`
	City         string       `json:"city,omitempty"`
	Address      string       `json:"address,omitempty"`
	Location     *Coordinates `json:"location,omitempty"`
	PropertyType string       `json:"property_type,omitempty"`
	Persons      int          `json:"persons,omitempty"`
	Bedrooms     int          `json:"bedrooms,omitempty"`
	Bathrooms    float64      `json:"bathrooms,omitempty"`
	Beds         int          `json:"beds,omitempty"`
	AmenityIDs   []int        `json:"amenity_ids,omitempty"`
	Amenities    []string     `json:"amenities,omitempty"`
	Description  string       `json:"description,omitempty"`
}
