package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/TonAldo48/matematch-sub001/internal/model"
	"github.com/TonAldo48/matematch-sub001/internal/repository"
)

var listingIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidListingID reports whether id can be addressed in a URL path segment.
func ValidListingID(id string) bool {
	return listingIDPattern.MatchString(id)
}

// SavedService manages a user's bookmarked listings.
type SavedService interface {
	// Save bookmarks the listing, refreshing the snapshot if already saved.
	Save(ctx context.Context, userID string, listing model.Listing) (*model.SavedListing, error)
	Unsave(ctx context.Context, userID, listingID string) error
	// IsSaved reports whether the user has bookmarked the listing.
	IsSaved(ctx context.Context, userID, listingID string) (bool, error)
	List(ctx context.Context, userID string) ([]model.SavedListing, error)
}

type savedService struct {
	profiles repository.ProfileRepository
	saved    repository.SavedListingRepository
}

// NewSavedService constructs a SavedService.
func NewSavedService(profiles repository.ProfileRepository, saved repository.SavedListingRepository) SavedService {
	return &savedService{profiles: profiles, saved: saved}
}

func (s *savedService) Save(ctx context.Context, userID string, listing model.Listing) (*model.SavedListing, error) {
	if err := requireUser(ctx, s.profiles, userID); err != nil {
		return nil, err
	}
	listing.ID = strings.TrimSpace(listing.ID)
	if listing.ID == "" {
		return nil, invalid("listing id is required")
	}
	if !ValidListingID(listing.ID) {
		return nil, invalid("listing id %q must be 1-64 letters, digits, '-' or '_'", listing.ID)
	}
	rec, err := s.saved.Save(ctx, &model.SavedListing{
		UserID:    userID,
		ListingID: listing.ID,
		Listing:   listing,
		SavedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, notFoundOr(err, "profile %s", userID)
	}
	return rec, nil
}

func (s *savedService) Unsave(ctx context.Context, userID, listingID string) error {
	if userID == "" || listingID == "" {
		return ErrIDRequired
	}
	if err := s.saved.Delete(ctx, userID, listingID); err != nil {
		return notFoundOr(err, "saved listing %s", listingID)
	}
	return nil
}

func (s *savedService) IsSaved(ctx context.Context, userID, listingID string) (bool, error) {
	if listingID == "" {
		return false, ErrIDRequired
	}
	if err := requireUser(ctx, s.profiles, userID); err != nil {
		return false, err
	}
	return s.saved.Exists(ctx, userID, listingID)
}

func (s *savedService) List(ctx context.Context, userID string) ([]model.SavedListing, error) {
	if err := requireUser(ctx, s.profiles, userID); err != nil {
		return nil, err
	}
	items, err := s.saved.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.SavedListing{}
	}
	return items, nil
}

func requireUser(ctx context.Context, profiles repository.ProfileRepository, userID string) error {
	if userID == "" {
		return ErrIDRequired
	}
	if _, err := profiles.FindByID(ctx, userID); err != nil {
		return notFoundOr(err, "profile %s", userID)
	}
	return nil
}

// notFoundOr maps repository.ErrNotFound to ErrNotFound with a description.
func notFoundOr(err error, format string, args ...any) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
	}
	return err
}
