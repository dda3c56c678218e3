package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/TonAldo48/matematch-sub001/internal/logging"
	"github.com/TonAldo48/matematch-sub001/internal/model"
	"github.com/TonAldo48/matematch-sub001/internal/repository"
)

const maxNoteLen = 500

// ListingInterestSummary lists who is interested in a listing, which is how
// prospective roommates find each other.
type ListingInterestSummary struct {
	ListingID  string                  `json:"listing_id"`
	Count      int                     `json:"count"`
	Interests  []model.ListingInterest `json:"interests"`
	Interested []model.Profile         `json:"interested"`
}

// InterestService tracks which users want to share which listings.
type InterestService interface {
	// Express records interest. Repeating it keeps the original timestamp.
	Express(ctx context.Context, listingID, userID, note string) (*model.ListingInterest, error)
	Withdraw(ctx context.Context, listingID, userID string) error
	ForListing(ctx context.Context, listingID string) (*ListingInterestSummary, error)
	ForUser(ctx context.Context, userID string) ([]model.ListingInterest, error)
}

type interestService struct {
	profiles  repository.ProfileRepository
	interests repository.InterestRepository
	log       *slog.Logger
}

// NewInterestService constructs an InterestService.
func NewInterestService(profiles repository.ProfileRepository, interests repository.InterestRepository, log *slog.Logger) InterestService {
	return &interestService{profiles: profiles, interests: interests, log: logging.Component(log, "interest_service")}
}

func (s *interestService) Express(ctx context.Context, listingID, userID, note string) (*model.ListingInterest, error) {
	listingID = strings.TrimSpace(listingID)
	if listingID == "" {
		return nil, ErrIDRequired
	}
	note = strings.TrimSpace(note)
	if len(note) > maxNoteLen {
		return nil, invalid("note must be at most %d characters", maxNoteLen)
	}
	if err := requireUser(ctx, s.profiles, userID); err != nil {
		return nil, err
	}
	rec, err := s.interests.Add(ctx, &model.ListingInterest{
		UserID:    userID,
		ListingID: listingID,
		Note:      note,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, notFoundOr(err, "profile %s", userID)
	}
	s.log.InfoContext(ctx, "interest_expressed", slog.String("listing_id", listingID), slog.String("user_id", userID))
	return rec, nil
}

func (s *interestService) Withdraw(ctx context.Context, listingID, userID string) error {
	if listingID == "" || userID == "" {
		return ErrIDRequired
	}
	if err := s.interests.Remove(ctx, listingID, userID); err != nil {
		return notFoundOr(err, "interest of %s in %s", userID, listingID)
	}
	return nil
}

func (s *interestService) ForListing(ctx context.Context, listingID string) (*ListingInterestSummary, error) {
	if listingID == "" {
		return nil, ErrIDRequired
	}
	count, err := s.interests.CountByListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	out := &ListingInterestSummary{
		ListingID:  listingID,
		Interests:  []model.ListingInterest{},
		Interested: []model.Profile{},
	}
	if count == 0 {
		return out, nil
	}

	items, err := s.interests.ListByListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	out.Count = len(items)
	out.Interests = append(out.Interests, items...)
	for _, in := range items {
		p, err := s.profiles.FindByID(ctx, in.UserID)
		if err != nil {
			// profile removed out from under the interest row
			s.log.WarnContext(ctx, "interest_profile_missing", slog.String("user_id", in.UserID), slog.String("error", err.Error()))
			continue
		}
		out.Interested = append(out.Interested, *p)
	}
	return out, nil
}

func (s *interestService) ForUser(ctx context.Context, userID string) ([]model.ListingInterest, error) {
	if err := requireUser(ctx, s.profiles, userID); err != nil {
		return nil, err
	}
	items, err := s.interests.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.ListingInterest{}
	}
	return items, nil
}
