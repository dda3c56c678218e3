package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/TonAldo48/matematch-sub001/internal/listings"
	"github.com/TonAldo48/matematch-sub001/internal/logging"
	"github.com/TonAldo48/matematch-sub001/internal/model"
	"github.com/TonAldo48/matematch-sub001/internal/scraper"
	"github.com/TonAldo48/matematch-sub001/internal/storage"
)

// ListingSearcher is satisfied by *listings.Client.
type ListingSearcher interface {
	Search(ctx context.Context, p listings.SearchParams) ([]model.Listing, error)
}

// PageScraper is satisfied by *scraper.Scraper.
type PageScraper interface {
	Scrape(ctx context.Context, url string) (*scraper.Result, error)
}

// ListingSearchResult wraps a page of search results.
type ListingSearchResult struct {
	Items []model.Listing `json:"data"`
	Count int             `json:"count"`
	Page  int             `json:"page"`
}

// ScrapeResult is a scraped listing and, when archiving is enabled, the key
// of the stored HTML snapshot.
type ScrapeResult struct {
	Listing     *model.Listing `json:"listing"`
	SnapshotKey string         `json:"snapshot_key,omitempty"`
}

// ListingService finds housing listings.
type ListingService interface {
	Search(ctx context.Context, p listings.SearchParams) (*ListingSearchResult, error)

	// Scrape extracts a single listing page and archives its HTML. Archive
	// failures are logged and do not fail the call.
	Scrape(ctx context.Context, url string) (*ScrapeResult, error)
}

type listingService struct {
	searcher ListingSearcher
	scraper  PageScraper
	store    storage.Storage
	log      *slog.Logger
}

// NewListingService constructs a ListingService. store may be nil, which
// disables snapshot archiving.
func NewListingService(searcher ListingSearcher, scraper PageScraper, store storage.Storage, log *slog.Logger) ListingService {
	return &listingService{
		searcher: searcher,
		scraper:  scraper,
		store:    store,
		log:      logging.Component(log, "listing_service"),
	}
}

func (s *listingService) Search(ctx context.Context, p listings.SearchParams) (*ListingSearchResult, error) {
	items, err := s.searcher.Search(ctx, p)
	if err != nil {
		return nil, upstreamErr(err)
	}
	page := p.Page
	if page <= 0 {
		page = 1
	}
	return &ListingSearchResult{Items: items, Count: len(items), Page: page}, nil
}

func (s *listingService) Scrape(ctx context.Context, url string) (*ScrapeResult, error) {
	if strings.TrimSpace(url) == "" {
		return nil, invalid("url is required")
	}
	res, err := s.scraper.Scrape(ctx, url)
	if err != nil {
		return nil, upstreamErr(err)
	}

	out := &ScrapeResult{Listing: res.Listing}
	if s.store == nil {
		return out, nil
	}
	key := storage.SnapshotKey(res.Listing.ID, res.FetchedAt)
	_, err = s.store.Put(ctx, key, strings.NewReader(res.HTML), storage.PutObjectOptions{
		Size:        int64(len(res.HTML)),
		ContentType: "text/html; charset=utf-8",
		Metadata:    map[string]string{"source-url": res.Listing.URL},
	})
	if err != nil {
		s.log.WarnContext(ctx, "snapshot_archive_failed",
			slog.String("listing_id", res.Listing.ID),
			slog.String("error", err.Error()),
		)
		return out, nil
	}
	out.SnapshotKey = key
	return out, nil
}
