// Package maps is a client for the Google Maps Distance Matrix and Geocoding APIs.
package maps

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/TonAldo48/matematch-sub001/internal/config"
	"github.com/TonAldo48/matematch-sub001/internal/httpclient"
	"github.com/TonAldo48/matematch-sub001/internal/logging"
	"github.com/TonAldo48/matematch-sub001/internal/model"
)

const (
	distanceMatrixPath = "/maps/api/distancematrix/json"
	geocodePath        = "/maps/api/geocode/json"

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
	statusNotFound    = "NOT_FOUND"
)

var (
	ErrMissingAPIKey = errors.New("google maps api key is not configured")
	ErrInvalidMode   = errors.New("invalid travel mode")
	ErrUpstream      = errors.New("google maps request failed")
	ErrNoRoute       = errors.New("no route between origin and destination")
	ErrEmptyAddress  = errors.New("address is required")
)

// Client talks to the Maps web service APIs. It is safe for concurrent use.
type Client struct {
	http   *resty.Client
	apiKey string
	log    *slog.Logger
}

// New builds a Client from config. The resty client carries tracing and
// one retry on 429/5xx.
func New(cfg config.MapsConfig, log *slog.Logger) *Client {
	return NewWithClient(httpclient.New(httpclient.Options{
		Name:    "google-maps",
		BaseURL: cfg.BaseURL,
		Timeout: time.Duration(cfg.TimeoutSec) * time.Second,
		Retries: 1,
		Logger:  log,
	}), cfg.APIKey, log)
}

// NewWithClient wraps an existing resty client.
func NewWithClient(http *resty.Client, apiKey string, log *slog.Logger) *Client {
	return &Client{http: http, apiKey: apiKey, log: logging.Component(log, "maps")}
}

type textValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type distanceMatrixResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Rows         []struct {
		Elements []struct {
			Status   string    `json:"status"`
			Distance textValue `json:"distance"`
			Duration textValue `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress string `json:"formatted_address"`
		PlaceID          string `json:"place_id"`
		Geometry         struct {
			Location model.Coordinates `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Distance returns travel distance and duration for a single origin/destination pair.
func (c *Client) Distance(ctx context.Context, origin, destination model.Coordinates, mode model.TravelMode) (*model.DistanceResult, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	params := map[string]string{
		"origins":      origin.String(),
		"destinations": destination.String(),
		"mode":         string(mode),
		"units":        "metric",
		"key":          c.apiKey,
	}
	if mode == model.ModeTransit {
		params["departure_time"] = "now"
	}

	var out distanceMatrixResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&out).
		Get(distanceMatrixPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, httpclient.StripURL(err))
	}
	if res.IsError() {
		return nil, fmt.Errorf("%w: http %d", ErrUpstream, res.StatusCode())
	}
	if out.Status != statusOK {
		return nil, upstreamStatus(out.Status, out.ErrorMessage)
	}
	if len(out.Rows) == 0 || len(out.Rows[0].Elements) == 0 {
		return nil, ErrNoRoute
	}

	el := out.Rows[0].Elements[0]
	switch el.Status {
	case statusOK:
	case statusNotFound, statusZeroResults:
		return nil, ErrNoRoute
	default:
		return nil, upstreamStatus(el.Status, "")
	}

	c.log.DebugContext(ctx, "distance_lookup",
		slog.String("mode", string(mode)),
		slog.Int("distance_meters", el.Distance.Value),
		slog.Int("duration_seconds", el.Duration.Value),
	)

	return &model.DistanceResult{
		Origin:          origin,
		Destination:     destination,
		Mode:            mode,
		DistanceMeters:  el.Distance.Value,
		DistanceText:    el.Distance.Text,
		DurationSeconds: el.Duration.Value,
		DurationText:    el.Duration.Text,
	}, nil
}

// Geocode resolves a free-form address. No match yields an empty slice.
func (c *Client) Geocode(ctx context.Context, address string) ([]model.GeocodeResult, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrEmptyAddress
	}

	var out geocodeResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"address": address, "key": c.apiKey}).
		SetResult(&out).
		Get(geocodePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, httpclient.StripURL(err))
	}
	if res.IsError() {
		return nil, fmt.Errorf("%w: http %d", ErrUpstream, res.StatusCode())
	}

	switch out.Status {
	case statusOK:
	case statusZeroResults:
		return []model.GeocodeResult{}, nil
	default:
		return nil, upstreamStatus(out.Status, out.ErrorMessage)
	}

	results := make([]model.GeocodeResult, 0, len(out.Results))
	for _, r := range out.Results {
		results = append(results, model.GeocodeResult{
			FormattedAddress: r.FormattedAddress,
			PlaceID:          r.PlaceID,
			Location:         r.Geometry.Location,
		})
	}
	return results, nil
}

func upstreamStatus(status, msg string) error {
	if msg != "" {
		return fmt.Errorf("%w: status %s: %s", ErrUpstream, status, msg)
	}
	return fmt.Errorf("%w: status %s", ErrUpstream, status)
}
