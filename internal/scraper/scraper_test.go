package scraper

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TonAldo48/matematch-sub001/internal/logging"
	"github.com/TonAldo48/matematch-sub001/internal/model"
)

const listingPage = `<!doctype html>
<html>
<head>
  <meta property="og:title" content="Fallback title">
  <meta property="og:image" content="https://a0.muscache.com/og.jpg">
  <meta name="description" content="Meta description">
</head>
<body>
  <h1>  Sunny room near
     Capitol Hill </h1>
  <div data-testid="price-availability-row"><span class="_tyxjp1">$1,250</span> <span>month</span></div>
  <picture><img src="https://a0.muscache.com/im/pictures/1.jpg"></picture>
  <picture><img src="https://a0.muscache.com/im/pictures/1.jpg"></picture>
  <img data-original-uri="/im/pictures/2.jpg" src="data:image/gif;base64,AAAA">
  <picture><img src="javascript:alert(1)"></picture>
  <div data-testid="pdp-reviews-highlight-banner-host-rating"><div aria-hidden="true">4.92</div></div>
  <span>87 reviews</span>
  <div data-section-id="LOCATION_DEFAULT"><h3>Seattle, Washington, United States</h3></div>
  <div data-section-id="AMENITIES_DEFAULT">
    <div id="pdp_v3_wifi-row-title">Wifi</div>
    <div id="pdp_v3_kitchen-row-title">Kitchen</div>
    <div id="pdp_v3_wifi2-row-title">Wifi</div>
  </div>
  <div data-section-id="DESCRIPTION_DEFAULT"><span>Quiet room, five minutes to transit.</span></div>
</body>
</html>`

type fakeFetcher struct {
	html  string
	err   error
	calls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, pageURL string) (string, error) {
	f.calls = append(f.calls, pageURL)
	return f.html, f.err
}

func TestParse(t *testing.T) {
	l, err := Parse("https://www.airbnb.com/rooms/12345678", listingPage)
	require.NoError(t, err)

	assert.Equal(t, "12345678", l.ID)
	assert.Equal(t, model.SourceScraper, l.Source)
	assert.Equal(t, "Sunny room near Capitol Hill", l.Title)
	assert.Equal(t, 1250.0, l.Price.Rate)
	assert.Equal(t, "USD", l.Price.Currency)
	assert.Equal(t, []string{
		"https://a0.muscache.com/im/pictures/1.jpg",
		"https://www.airbnb.com/im/pictures/2.jpg",
	}, l.Images)
	assert.Equal(t, "Seattle, Washington, United States", l.Address)
	assert.Equal(t, "Seattle", l.City)
	assert.Equal(t, 4.92, l.Rating)
	assert.Equal(t, 87, l.ReviewsCount)
	assert.Equal(t, []string{"Wifi", "Kitchen"}, l.Amenities)
	assert.Equal(t, "Quiet room, five minutes to transit.", l.Description)
}

func TestParse_Fallbacks(t *testing.T) {
	html := `<html><head>
<meta property="og:title" content="Loft">
<meta property="og:image" content="https://img.example.com/loft.jpg">
<meta name="description" content="A loft">
</head><body></body></html>`

	l, err := Parse("https://www.airbnb.com/rooms/plus/42?adults=1", html)
	require.NoError(t, err)
	assert.Equal(t, "42", l.ID)
	assert.Equal(t, "Loft", l.Title)
	assert.Equal(t, []string{"https://img.example.com/loft.jpg"}, l.Images)
	assert.Equal(t, "A loft", l.Description)
	assert.Zero(t, l.Price.Rate)
	assert.Empty(t, l.Amenities)
}

func TestParse_NoListing(t *testing.T) {
	_, err := Parse("https://www.airbnb.com/rooms/1", `<html><body><p>blocked</p></body></html>`)
	assert.ErrorIs(t, err, ErrNoListing)
}

func TestListingID(t *testing.T) {
	assert.Equal(t, "99", ListingID("https://www.airbnb.com/rooms/99"))
	assert.Equal(t, "", ListingID("https://www.airbnb.com/s/Seattle/homes"))
}

func TestScraper_Validate(t *testing.T) {
	s := New(&fakeFetcher{}, []string{"www.airbnb.com"}, logging.Discard())

	got, err := s.Validate("https://www.airbnb.com/rooms/1?check_in=2024-01-01#photos")
	require.NoError(t, err)
	assert.Equal(t, "https://www.airbnb.com/rooms/1", got)

	tests := []string{
		"ftp://www.airbnb.com/rooms/1",
		"/rooms/1",
		"https://evil.example.com/rooms/1",
		"http://%zz",
	}
	for _, raw := range tests {
		_, err := s.Validate(raw)
		assert.ErrorIs(t, err, ErrInvalidURL, raw)
	}

	open := New(&fakeFetcher{}, nil, logging.Discard())
	_, err = open.Validate("https://evil.example.com/rooms/1")
	assert.NoError(t, err)
}

func TestScraper_Scrape(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := &fakeFetcher{html: listingPage}
		s := New(f, []string{"www.airbnb.com"}, logging.Discard())

		res, err := s.Scrape(context.Background(), "https://www.airbnb.com/rooms/12345678?guests=2")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://www.airbnb.com/rooms/12345678"}, f.calls)
		assert.Equal(t, "12345678", res.Listing.ID)
		assert.Equal(t, listingPage, res.HTML)
		assert.False(t, res.FetchedAt.IsZero())
	})

	t.Run("invalid url skips fetch", func(t *testing.T) {
		f := &fakeFetcher{html: listingPage}
		s := New(f, []string{"www.airbnb.com"}, logging.Discard())

		_, err := s.Scrape(context.Background(), "https://example.com/rooms/1")
		assert.ErrorIs(t, err, ErrInvalidURL)
		assert.Empty(t, f.calls)
	})

	t.Run("fetch error", func(t *testing.T) {
		boom := errors.New("chrome crashed")
		s := New(&fakeFetcher{err: boom}, nil, logging.Discard())

		_, err := s.Scrape(context.Background(), "https://www.airbnb.com/rooms/1")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("no listing", func(t *testing.T) {
		s := New(&fakeFetcher{html: "<html></html>"}, nil, logging.Discard())

		_, err := s.Scrape(context.Background(), "https://www.airbnb.com/rooms/1")
		assert.ErrorIs(t, err, ErrNoListing)
	})
}
