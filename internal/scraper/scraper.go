// Package scraper extracts a single listing from a listing page. It renders
// the page in headless Chrome and parses the HTML with one selector set; there
// is no pagination and no retry.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/TonAldo48/matematch-sub001/internal/logging"
	"github.com/TonAldo48/matematch-sub001/internal/model"
)

var (
	ErrInvalidURL = errors.New("invalid listing url")
	ErrNoListing  = errors.New("page does not contain a listing")
)

// Result is a parsed listing together with the HTML it came from.
type Result struct {
	Listing   *model.Listing
	HTML      string
	FetchedAt time.Time
}

// Scraper validates URLs, fetches pages and parses them.
type Scraper struct {
	fetcher      Fetcher
	allowedHosts map[string]bool
	log          *slog.Logger
	now          func() time.Time
}

// New returns a Scraper. An empty allowedHosts accepts any host.
func New(f Fetcher, allowedHosts []string, log *slog.Logger) *Scraper {
	hosts := make(map[string]bool, len(allowedHosts))
	for _, h := range allowedHosts {
		hosts[strings.ToLower(strings.TrimSpace(h))] = true
	}
	return &Scraper{
		fetcher:      f,
		allowedHosts: hosts,
		log:          logging.Component(log, "scraper"),
		now:          time.Now,
	}
}

// Validate checks that raw is an absolute http(s) URL on an allowed host and
// returns it with the query string and fragment stripped.
func (s *Scraper) Validate(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: scheme must be http or https", ErrInvalidURL)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: host is required", ErrInvalidURL)
	}
	if len(s.allowedHosts) > 0 && !s.allowedHosts[strings.ToLower(u.Hostname())] {
		return "", fmt.Errorf("%w: host %s is not allowed", ErrInvalidURL, u.Hostname())
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}

// Scrape fetches and parses a single listing page.
func (s *Scraper) Scrape(ctx context.Context, raw string) (*Result, error) {
	pageURL, err := s.Validate(raw)
	if err != nil {
		return nil, err
	}

	start := s.now()
	html, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		s.log.ErrorContext(ctx, "scrape_fetch_failed", slog.String("url", pageURL), slog.String("error", err.Error()))
		return nil, fmt.Errorf("fetch listing page: %w", err)
	}

	listing, err := Parse(pageURL, html)
	if err != nil {
		s.log.WarnContext(ctx, "scrape_parse_failed", slog.String("url", pageURL), slog.String("error", err.Error()))
		return nil, err
	}

	s.log.InfoContext(ctx, "scrape_success",
		slog.String("url", pageURL),
		slog.String("listing_id", listing.ID),
		slog.Int("images", len(listing.Images)),
		slog.Int64("duration_ms", s.now().Sub(start).Milliseconds()),
	)
	return &Result{Listing: listing, HTML: html, FetchedAt: start}, nil
}
