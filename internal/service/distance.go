package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/TonAldo48/matematch-sub001/internal/cache"
	"github.com/TonAldo48/matematch-sub001/internal/logging"
	"github.com/TonAldo48/matematch-sub001/internal/model"
)

// DistanceProvider is satisfied by *maps.Client.
type DistanceProvider interface {
	Distance(ctx context.Context, origin, destination model.Coordinates, mode model.TravelMode) (*model.DistanceResult, error)
	Geocode(ctx context.Context, address string) ([]model.GeocodeResult, error)
}

// DistanceService answers distance, commute and geocoding lookups.
type DistanceService interface {
	// Distance serves from cache when possible. Only successful lookups are cached.
	Distance(ctx context.Context, origin, destination model.Coordinates, mode model.TravelMode) (*model.DistanceResult, error)

	// Commute looks up driving and transit concurrently. If only one mode
	// fails, its leg carries a fixed error message and no error is returned.
	Commute(ctx context.Context, origin, destination model.Coordinates) (*model.CommuteResult, error)

	Geocode(ctx context.Context, address string) ([]model.GeocodeResult, error)
}

type distanceService struct {
	maps  DistanceProvider
	cache *cache.DistanceCache
	log   *slog.Logger
}

// NewDistanceService constructs a DistanceService. A nil cache disables caching.
func NewDistanceService(maps DistanceProvider, c *cache.DistanceCache, log *slog.Logger) DistanceService {
	return &distanceService{maps: maps, cache: c, log: logging.Component(log, "distance_service")}
}

func (s *distanceService) Distance(ctx context.Context, origin, destination model.Coordinates, mode model.TravelMode) (*model.DistanceResult, error) {
	if !origin.Valid() || !destination.Valid() {
		return nil, invalid("coordinates out of range")
	}
	if mode == "" {
		mode = model.ModeDriving
	}
	if !mode.Valid() {
		return nil, invalid("unsupported travel mode %q", mode)
	}

	key := cache.NewKey(origin, destination, mode)
	if s.cache != nil {
		if hit, ok := s.cache.Get(key); ok {
			hit.Origin, hit.Destination = origin, destination
			hit.Cached = true
			return &hit, nil
		}
	}

	res, err := s.maps.Distance(ctx, origin, destination, mode)
	if err != nil {
		return nil, upstreamErr(err)
	}
	if s.cache != nil {
		s.cache.Set(key, *res)
	}
	out := *res
	out.Cached = false
	return &out, nil
}

func (s *distanceService) Commute(ctx context.Context, origin, destination model.Coordinates) (*model.CommuteResult, error) {
	if !origin.Valid() || !destination.Valid() {
		return nil, invalid("coordinates out of range")
	}

	var (
		wg                 sync.WaitGroup
		driving, transit   *model.DistanceResult
		drivingE, transitE error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		driving, drivingE = s.Distance(ctx, origin, destination, model.ModeDriving)
	}()
	go func() {
		defer wg.Done()
		transit, transitE = s.Distance(ctx, origin, destination, model.ModeTransit)
	}()
	wg.Wait()

	if drivingE != nil && transitE != nil {
		return nil, drivingE
	}

	out := &model.CommuteResult{
		Driving: model.CommuteLeg{Result: driving},
		Transit: model.CommuteLeg{Result: transit},
	}
	if drivingE != nil {
		out.Driving = model.CommuteLeg{Error: legError(drivingE)}
		s.log.WarnContext(ctx, "commute_leg_failed", slog.String("mode", string(model.ModeDriving)), slog.String("error", drivingE.Error()))
	}
	if transitE != nil {
		out.Transit = model.CommuteLeg{Error: legError(transitE)}
		s.log.WarnContext(ctx, "commute_leg_failed", slog.String("mode", string(model.ModeTransit)), slog.String("error", transitE.Error()))
	}
	return out, nil
}

func (s *distanceService) Geocode(ctx context.Context, address string) ([]model.GeocodeResult, error) {
	res, err := s.maps.Geocode(ctx, address)
	if err != nil {
		return nil, upstreamErr(err)
	}
	if res == nil {
		res = []model.GeocodeResult{}
	}
	return res, nil
}

// legError reports a failed commute leg without upstream detail.
func legError(err error) string {
	for _, known := range []error{ErrNoRoute, ErrUnavailable, ErrValidation, context.DeadlineExceeded, context.Canceled} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return ErrUpstream.Error()
}
