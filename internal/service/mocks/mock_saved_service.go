package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/TonAldo48/matematch-sub001/internal/model"
	"github.com/TonAldo48/matematch-sub001/internal/service"
)

type MockSavedService struct {
	mock.Mock
}

func (m *MockSavedService) Save(ctx context.Context, userID string, listing model.Listing) (*model.SavedListing, error) {
	args := m.Called(ctx, userID, listing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SavedListing), args.Error(1)
}

func (m *MockSavedService) Unsave(ctx context.Context, userID, listingID string) error {
	args := m.Called(ctx, userID, listingID)
	return args.Error(0)
}

func (m *MockSavedService) IsSaved(ctx context.Context, userID, listingID string) (bool, error) {
	args := m.Called(ctx, userID, listingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSavedService) List(ctx context.Context, userID string) ([]model.SavedListing, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SavedListing), args.Error(1)
}

type MockInterestService struct {
	mock.Mock
}

func (m *MockInterestService) Express(ctx context.Context, listingID, userID, note string) (*model.ListingInterest, error) {
	args := m.Called(ctx, listingID, userID, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ListingInterest), args.Error(1)
}

func (m *MockInterestService) Withdraw(ctx context.Context, listingID, userID string) error {
	args := m.Called(ctx, listingID, userID)
	return args.Error(0)
}

func (m *MockInterestService) ForListing(ctx context.Context, listingID string) (*service.ListingInterestSummary, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListingInterestSummary), args.Error(1)
}

func (m *MockInterestService) ForUser(ctx context.Context, userID string) ([]model.ListingInterest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ListingInterest), args.Error(1)
}

var (
	_ service.ProfileService  = (*MockProfileService)(nil)
	_ service.ListingService  = (*MockListingService)(nil)
	_ service.DistanceService = (*MockDistanceService)(nil)
	_ service.SavedService    = (*MockSavedService)(nil)
	_ service.InterestService = (*MockInterestService)(nil)
)
