package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/TonAldo48/matematch-sub001/internal/model"
)

type MockInterestRepository struct {
	mock.Mock
}

func (m *MockInterestRepository) Add(ctx context.Context, in *model.ListingInterest) (*model.ListingInterest, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ListingInterest), args.Error(1)
}

func (m *MockInterestRepository) Remove(ctx context.Context, listingID, userID string) error {
	args := m.Called(ctx, listingID, userID)
	return args.Error(0)
}

func (m *MockInterestRepository) ListByListing(ctx context.Context, listingID string) ([]model.ListingInterest, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ListingInterest), args.Error(1)
}

func (m *MockInterestRepository) CountByListing(ctx context.Context, listingID string) (int, error) {
	args := m.Called(ctx, listingID)
	return args.Int(0), args.Error(1)
}

func (m *MockInterestRepository) ListByUser(ctx context.Context, userID string) ([]model.ListingInterest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ListingInterest), args.Error(1)
}
