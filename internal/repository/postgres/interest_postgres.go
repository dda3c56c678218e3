package postgres

import (
	"context"
	"database/sql"

	"github.com/TonAldo48/matematch-sub001/internal/model"
	"github.com/TonAldo48/matematch-sub001/internal/repository"
)

// InterestPostgres is a PostgreSQL implementation of repository.InterestRepository.
type InterestPostgres struct {
	db *sql.DB
}

// NewInterestPostgres creates a new InterestPostgres repository.
func NewInterestPostgres(db *sql.DB) *InterestPostgres {
	return &InterestPostgres{db: db}
}

var _ repository.InterestRepository = (*InterestPostgres)(nil)

func scanInterest(row rowScanner) (*model.ListingInterest, error) {
	var in model.ListingInterest
	if err := row.Scan(&in.ListingID, &in.UserID, &in.Note, &in.CreatedAt); err != nil {
		return nil, err
	}
	return &in, nil
}

// Add records interest. The no-op DO UPDATE makes RETURNING yield the existing row.
func (r *InterestPostgres) Add(ctx context.Context, in *model.ListingInterest) (*model.ListingInterest, error) {
	const q = `
		INSERT INTO listing_interests (listing_id, user_id, note, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (listing_id, user_id)
		DO UPDATE SET listing_id = EXCLUDED.listing_id
		RETURNING listing_id, user_id, note, created_at
	`
	out, err := scanInterest(r.db.QueryRowContext(ctx, q, in.ListingID, in.UserID, in.Note, in.CreatedAt))
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// Remove deletes an interest record.
func (r *InterestPostgres) Remove(ctx context.Context, listingID, userID string) error {
	const q = `DELETE FROM listing_interests WHERE listing_id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, q, listingID, userID)
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

func (r *InterestPostgres) list(ctx context.Context, q string, arg string) ([]model.ListingInterest, error) {
	rows, err := r.db.QueryContext(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ListingInterest, 0)
	for rows.Next() {
		in, err := scanInterest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *in)
	}
	return items, rows.Err()
}

// ListByListing returns every user interested in a listing.
func (r *InterestPostgres) ListByListing(ctx context.Context, listingID string) ([]model.ListingInterest, error) {
	const q = `
		SELECT listing_id, user_id, note, created_at
		FROM listing_interests
		WHERE listing_id = $1
		ORDER BY created_at ASC, user_id
	`
	return r.list(ctx, q, listingID)
}

// CountByListing returns how many users are interested in a listing.
func (r *InterestPostgres) CountByListing(ctx context.Context, listingID string) (int, error) {
	const q = `SELECT COUNT(*) FROM listing_interests WHERE listing_id = $1`
	var n int
	if err := r.db.QueryRowContext(ctx, q, listingID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// ListByUser returns every listing a user is interested in.
func (r *InterestPostgres) ListByUser(ctx context.Context, userID string) ([]model.ListingInterest, error) {
	const q = `
		SELECT listing_id, user_id, note, created_at
		FROM listing_interests
		WHERE user_id = $1
		ORDER BY created_at DESC, listing_id
	`
	return r.list(ctx, q, userID)
}
