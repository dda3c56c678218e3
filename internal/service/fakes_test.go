package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/TonAldo48/matematch-sub001/internal/listings"
	"github.com/TonAldo48/matematch-sub001/internal/model"
	"github.com/TonAldo48/matematch-sub001/internal/scraper"
)

type mockDistanceProvider struct {
	mock.Mock
}

func (m *mockDistanceProvider) Distance(ctx context.Context, origin, destination model.Coordinates, mode model.TravelMode) (*model.DistanceResult, error) {
	args := m.Called(ctx, origin, destination, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DistanceResult), args.Error(1)
}

func (m *mockDistanceProvider) Geocode(ctx context.Context, address string) ([]model.GeocodeResult, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GeocodeResult), args.Error(1)
}

type mockSearcher struct {
	mock.Mock
}

func (m *mockSearcher) Search(ctx context.Context, p listings.SearchParams) ([]model.Listing, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Listing), args.Error(1)
}

type mockScraper struct {
	mock.Mock
}

func (m *mockScraper) Scrape(ctx context.Context, url string) (*scraper.Result, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scraper.Result), args.Error(1)
}
