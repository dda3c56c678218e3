// Package listings is a client for the RapidAPI Airbnb search endpoint.
package listings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/TonAldo48/matematch-sub001/internal/config"
	"github.com/TonAldo48/matematch-sub001/internal/httpclient"
	"github.com/TonAldo48/matematch-sub001/internal/logging"
	"github.com/TonAldo48/matematch-sub001/internal/model"
)

const searchPath = "/search-location"

const dateLayout = "2006-01-02"

var (
	ErrMissingAPIKey = errors.New("rapidapi key is not configured")
	ErrInvalidParams = errors.New("invalid search parameters")
	ErrUpstream      = errors.New("listings request failed")
)

// SearchParams are the query parameters of a location search.
// MinPrice, MaxPrice and MinBedrooms are applied to the results locally.
type SearchParams struct {
	Location    string
	Checkin     string // YYYY-MM-DD
	Checkout    string // YYYY-MM-DD
	Adults      int
	Children    int
	Infants     int
	Pets        int
	Page        int
	Currency    string
	MinPrice    float64
	MaxPrice    float64
	MinBedrooms int
}

// Normalize fills defaults and validates p.
func (p *SearchParams) Normalize() error {
	p.Location = strings.TrimSpace(p.Location)
	if p.Location == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidParams)
	}
	if p.Adults <= 0 {
		p.Adults = 1
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Currency == "" {
		p.Currency = "USD"
	}
	if p.Children < 0 || p.Infants < 0 || p.Pets < 0 {
		return fmt.Errorf("%w: guest counts must not be negative", ErrInvalidParams)
	}
	if p.MinPrice < 0 || p.MaxPrice < 0 || (p.MaxPrice > 0 && p.MinPrice > p.MaxPrice) {
		return fmt.Errorf("%w: invalid price range", ErrInvalidParams)
	}

	var in, out time.Time
	var err error
	if p.Checkin != "" {
		if in, err = time.Parse(dateLayout, p.Checkin); err != nil {
			return fmt.Errorf("%w: checkin must be YYYY-MM-DD", ErrInvalidParams)
		}
	}
	if p.Checkout != "" {
		if out, err = time.Parse(dateLayout, p.Checkout); err != nil {
			return fmt.Errorf("%w: checkout must be YYYY-MM-DD", ErrInvalidParams)
		}
	}
	if !in.IsZero() && !out.IsZero() && !out.After(in) {
		return fmt.Errorf("%w: checkout must be after checkin", ErrInvalidParams)
	}
	return nil
}

func (p SearchParams) query() map[string]string {
	q := map[string]string{
		"location": p.Location,
		"adults":   strconv.Itoa(p.Adults),
		"children": strconv.Itoa(p.Children),
		"infants":  strconv.Itoa(p.Infants),
		"pets":     strconv.Itoa(p.Pets),
		"page":     strconv.Itoa(p.Page),
		"currency": p.Currency,
	}
	if p.Checkin != "" {
		q["checkin"] = p.Checkin
	}
	if p.Checkout != "" {
		q["checkout"] = p.Checkout
	}
	return q
}

// Client is safe for concurrent use; all calls share one rate limiter.
type Client struct {
	http    *resty.Client
	apiKey  string
	host    string
	limiter *rate.Limiter
	log     *slog.Logger
}

// New builds a Client from config. A non-positive rate disables throttling.
func New(cfg config.ListingsConfig, log *slog.Logger) *Client {
	c := NewWithClient(httpclient.New(httpclient.Options{
		Name:    "rapidapi-airbnb",
		BaseURL: cfg.BaseURL,
		Timeout: time.Duration(cfg.TimeoutSec) * time.Second,
		Retries: 1,
		Logger:  log,
	}), cfg.APIKey, cfg.Host, log)
	if cfg.RatePerSec > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1)
	}
	return c
}

// NewWithClient wraps an existing resty client without throttling.
func NewWithClient(http *resty.Client, apiKey, host string, log *slog.Logger) *Client {
	return &Client{
		http:    http,
		apiKey:  apiKey,
		host:    host,
		limiter: rate.NewLimiter(rate.Inf, 0),
		log:     logging.Component(log, "listings"),
	}
}

// flexID accepts both numeric and string ids.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

type apiListing struct {
	ID           flexID   `json:"id"`
	URL          string   `json:"url"`
	Name         string   `json:"name"`
	City         string   `json:"city"`
	Address      string   `json:"address"`
	Images       []string `json:"images"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`
	Type         string   `json:"type"`
	Persons      int      `json:"persons"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    float64  `json:"bathrooms"`
	Beds         int      `json:"beds"`
	Rating       float64  `json:"rating"`
	ReviewsCount int      `json:"reviewsCount"`
	AmenityIDs   []int    `json:"amenityIds"`
	Preview      []string `json:"previewAmenities"`
	Price        struct {
		Rate     float64 `json:"rate"`
		Total    float64 `json:"total"`
		Currency string  `json:"currency"`
	} `json:"price"`
}

type searchResponse struct {
	Error   bool         `json:"error"`
	Message string       `json:"message"`
	Results []apiListing `json:"results"`
}

// Search runs a location search and returns listings passing the local filters.
func (c *Client) Search(ctx context.Context, p SearchParams) ([]model.Listing, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if err := p.Normalize(); err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var out searchResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-RapidAPI-Key", c.apiKey).
		SetHeader("X-RapidAPI-Host", c.host).
		SetQueryParams(p.query()).
		SetResult(&out).
		Get(searchPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, httpclient.StripURL(err))
	}
	if res.IsError() {
		return nil, fmt.Errorf("%w: http %d", ErrUpstream, res.StatusCode())
	}
	if out.Error {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, out.Message)
	}

	listings := make([]model.Listing, 0, len(out.Results))
	for _, r := range out.Results {
		l := toListing(r)
		if !p.matches(l) {
			continue
		}
		listings = append(listings, l)
	}

	c.log.InfoContext(ctx, "listing_search",
		slog.String("location", p.Location),
		slog.Int("page", p.Page),
		slog.Int("upstream_results", len(out.Results)),
		slog.Int("returned", len(listings)),
	)
	return listings, nil
}

func (p SearchParams) matches(l model.Listing) bool {
	if p.MinPrice > 0 && l.Price.Rate < p.MinPrice {
		return false
	}
	if p.MaxPrice > 0 && l.Price.Rate > p.MaxPrice {
		return false
	}
	if p.MinBedrooms > 0 && l.Bedrooms < p.MinBedrooms {
		return false
	}
	return true
}

func toListing(r apiListing) model.Listing {
	l := model.Listing{
		ID:           string(r.ID),
		Source:       model.SourceAPI,
		Title:        r.Name,
		URL:          r.URL,
		Images:       r.Images,
		Rating:       r.Rating,
		ReviewsCount: r.ReviewsCount,
		City:         r.City,
		Address:      r.Address,
		PropertyType: r.Type,
		Persons:      r.Persons,
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		Beds:         r.Beds,
		AmenityIDs:   r.AmenityIDs,
		Amenities:    r.Preview,
		Price: model.ListingPrice{
			Rate:     r.Price.Rate,
			Total:    r.Price.Total,
			Currency: r.Price.Currency,
		},
	}
	if l.Images == nil {
		l.Images = []string{}
	}
	if l.URL == "" && l.ID != "" {
		l.URL = "https://www.airbnb.com/rooms/" + l.ID
	}
	if r.Lat != nil && r.Lng != nil {
		l.Location = &model.Coordinates{Lat: *r.Lat, Lng: *r.Lng}
	}
	return l
}
