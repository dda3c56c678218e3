package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/TonAldo48/matematch-sub001/internal/listings"
	"github.com/TonAldo48/matematch-sub001/internal/service"
)

type MockListingService struct {
	mock.Mock
}

func (m *MockListingService) Search(ctx context.Context, p listings.SearchParams) (*service.ListingSearchResult, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListingSearchResult), args.Error(1)
}

func (m *MockListingService) Scrape(ctx context.Context, url string) (*service.ScrapeResult, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ScrapeResult), args.Error(1)
}
