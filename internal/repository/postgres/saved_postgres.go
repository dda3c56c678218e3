package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/TonAldo48/matematch-sub001/internal/model"
	"github.com/TonAldo48/matematch-sub001/internal/repository"
)

// SavedListingPostgres is a PostgreSQL implementation of repository.SavedListingRepository.
// The listing snapshot is stored as JSONB.
type SavedListingPostgres struct {
	db *sql.DB
}

// NewSavedListingPostgres creates a new SavedListingPostgres repository.
func NewSavedListingPostgres(db *sql.DB) *SavedListingPostgres {
	return &SavedListingPostgres{db: db}
}

var _ repository.SavedListingRepository = (*SavedListingPostgres)(nil)

func scanSaved(row rowScanner) (*model.SavedListing, error) {
	var (
		s       model.SavedListing
		listing []byte
	)
	if err := row.Scan(&s.UserID, &s.ListingID, &listing, &s.SavedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(listing, &s.Listing); err != nil {
		return nil, fmt.Errorf("decode listing snapshot: %w", err)
	}
	return &s, nil
}

// Save upserts a bookmark, refreshing the snapshot and saved_at on conflict.
func (r *SavedListingPostgres) Save(ctx context.Context, s *model.SavedListing) (*model.SavedListing, error) {
	const q = `
		INSERT INTO saved_listings (user_id, listing_id, listing, saved_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, listing_id)
		DO UPDATE SET listing = EXCLUDED.listing, saved_at = EXCLUDED.saved_at
		RETURNING user_id, listing_id, listing, saved_at
	`
	listing, err := json.Marshal(s.Listing)
	if err != nil {
		return nil, fmt.Errorf("encode listing snapshot: %w", err)
	}
	out, err := scanSaved(r.db.QueryRowContext(ctx, q, s.UserID, s.ListingID, listing, s.SavedAt))
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// Delete removes a bookmark.
func (r *SavedListingPostgres) Delete(ctx context.Context, userID, listingID string) error {
	const q = `DELETE FROM saved_listings WHERE user_id = $1 AND listing_id = $2`
	res, err := r.db.ExecContext(ctx, q, userID, listingID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ListByUser returns all bookmarks for a user.
func (r *SavedListingPostgres) ListByUser(ctx context.Context, userID string) ([]model.SavedListing, error) {
	const q = `
		SELECT user_id, listing_id, listing, saved_at
		FROM saved_listings
		WHERE user_id = $1
		ORDER BY saved_at DESC, listing_id
	`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.SavedListing, 0)
	for rows.Next() {
		s, err := scanSaved(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	return items, rows.Err()
}

// Exists reports whether the user bookmarked the listing.
func (r *SavedListingPostgres) Exists(ctx context.Context, userID, listingID string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM saved_listings WHERE user_id = $1 AND listing_id = $2)`
	var ok bool
	if err := r.db.QueryRowContext(ctx, q, userID, listingID).Scan(&ok); err != nil {
		return false, translate(err)
	}
	return ok, nil
}
