package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/TonAldo48/matematch-sub001/internal/model"
)

type MockSavedListingRepository struct {
	mock.Mock
}

func (m *MockSavedListingRepository) Save(ctx context.Context, s *model.SavedListing) (*model.SavedListing, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SavedListing), args.Error(1)
}

func (m *MockSavedListingRepository) Delete(ctx context.Context, userID, listingID string) error {
	args := m.Called(ctx, userID, listingID)
	return args.Error(0)
}

func (m *MockSavedListingRepository) ListByUser(ctx context.Context, userID string) ([]model.SavedListing, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SavedListing), args.Error(1)
}

func (m *MockSavedListingRepository) Exists(ctx context.Context, userID, listingID string) (bool, error) {
	args := m.Called(ctx, userID, listingID)
	return args.Bool(0), args.Error(1)
}
