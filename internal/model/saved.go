package model

import "time"

// SavedListing is a listing a user bookmarked. The listing is stored as a
// snapshot so it survives the source removing or repricing it.
type SavedListing struct {
	UserID    string    `json:"user_id"`
	ListingID string    `json:"listing_id"`
	Listing   Listing   `json:"listing"`
	SavedAt   time.Time `json:"saved_at"`
}

// ListingInterest records that a user is interested in sharing a listing.
type ListingInterest struct {
	UserID    string    `json:"user_id"`
	ListingID string    `json:"listing_id"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
