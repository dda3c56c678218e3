package repository

import (
	"context"

	"github.com/TonAldo48/matematch-sub001/internal/model"
)

// SavedListingRepository stores listing bookmarks keyed by (user, listing).
type SavedListingRepository interface {
	// Save inserts or refreshes the snapshot for the pair.
	Save(ctx context.Context, s *model.SavedListing) (*model.SavedListing, error)

	// Delete removes the pair. Missing pairs return ErrNotFound.
	Delete(ctx context.Context, userID, listingID string) error

	// ListByUser returns the user's bookmarks, most recent first.
	ListByUser(ctx context.Context, userID string) ([]model.SavedListing, error)

	Exists(ctx context.Context, userID, listingID string) (bool, error)
}
