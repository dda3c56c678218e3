package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/TonAldo48/matematch-sub001/internal/model"
)

type MockDistanceService struct {
	mock.Mock
}

func (m *MockDistanceService) Distance(ctx context.Context, origin, destination model.Coordinates, mode model.TravelMode) (*model.DistanceResult, error) {
	args := m.Called(ctx, origin, destination, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DistanceResult), args.Error(1)
}

func (m *MockDistanceService) Commute(ctx context.Context, origin, destination model.Coordinates) (*model.CommuteResult, error) {
	args := m.Called(ctx, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CommuteResult), args.Error(1)
}

func (m *MockDistanceService) Geocode(ctx context.Context, address string) ([]model.GeocodeResult, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GeocodeResult), args.Error(1)
}
