package repository

import (
	"context"

	"github.com/TonAldo48/matematch-sub001/internal/model"
)

// InterestRepository tracks which users are interested in which listings.
type InterestRepository interface {
	// Add records interest. Adding an existing pair keeps the original
	// created_at and returns the stored record.
	Add(ctx context.Context, in *model.ListingInterest) (*model.ListingInterest, error)

	// Remove deletes the pair. Missing pairs return ErrNotFound.
	Remove(ctx context.Context, listingID, userID string) error

	// ListByListing returns interests oldest first.
	ListByListing(ctx context.Context, listingID string) ([]model.ListingInterest, error)

	CountByListing(ctx context.Context, listingID string) (int, error)

	// ListByUser returns interests newest first.
	ListByUser(ctx context.Context, userID string) ([]model.ListingInterest, error)
}
