package scraper

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/TonAldo48/matematch-sub001/internal/model"
)

const maxImages = 20

var (
	roomIDRe   = regexp.MustCompile(`/rooms/(?:plus/)?(\d+)`)
	moneyRe    = regexp.MustCompile(`([$€£])\s*([0-9][0-9,]*(?:\.[0-9]{1,2})?)`)
	ratingRe   = regexp.MustCompile(`\b([0-5](?:\.[0-9]{1,2})?)\b`)
	reviewsRe  = regexp.MustCompile(`([0-9][0-9,]*)\s+reviews?`)
	whitespace = regexp.MustCompile(`\s+`)
)

var (
	titleSelectors = []string{`h1`}
	priceSelectors = []string{
		`[data-testid="price-availability-row"] span._tyxjp1`,
		`[data-testid="price-availability-row"] span`,
		`span._tyxjp1`,
		`span._1y74zjx`,
	}
	locationSelectors = []string{
		`[data-section-id="LOCATION_DEFAULT"] h3`,
		`._9xiloll`,
		`[data-section-id="OVERVIEW_DEFAULT_V2"] h2`,
	}
	ratingSelectors = []string{
		`[data-testid="pdp-reviews-highlight-banner-host-rating"] div[aria-hidden="true"]`,
		`.rmtgcc3`,
		`[data-section-id="REVIEWS_DEFAULT"] h2`,
	}
	amenitySelectors = []string{
		`[data-section-id="AMENITIES_DEFAULT"] div[id$="-row-title"]`,
		`[data-section-id="AMENITIES_DEFAULT"] li`,
	}
	descriptionSelectors = []string{
		`[data-section-id="DESCRIPTION_DEFAULT"] span`,
	}
	imageSelectors = []string{
		`picture img`,
		`img[data-original-uri]`,
	}
)

var currencies = map[string]string{"$": "USD", "€": "EUR", "£": "GBP"}

// ListingID extracts the numeric room id from a listing URL.
func ListingID(pageURL string) string {
	if m := roomIDRe.FindStringSubmatch(pageURL); m != nil {
		return m[1]
	}
	return ""
}

// Parse extracts a listing from a rendered listing page. pageURL resolves
// relative image links and supplies the listing id.
func Parse(pageURL, html string) (*model.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	base, _ := url.Parse(pageURL)

	l := &model.Listing{
		ID:     ListingID(pageURL),
		Source: model.SourceScraper,
		URL:    pageURL,
	}

	l.Title = firstText(doc, titleSelectors)
	if l.Title == "" {
		l.Title = metaContent(doc, `meta[property="og:title"]`)
	}
	if l.Title == "" {
		return nil, ErrNoListing
	}

	if amount, currency, ok := parseMoney(firstText(doc, priceSelectors)); ok {
		l.Price = model.ListingPrice{Rate: amount, Currency: currency}
	}

	l.Address = firstText(doc, locationSelectors)
	if l.Address != "" {
		// "Seattle, Washington, United States" -> "Seattle"
		l.City = strings.TrimSpace(strings.Split(l.Address, ",")[0])
	}

	ratingText := firstText(doc, ratingSelectors)
	l.Rating = parseRating(ratingText)
	l.ReviewsCount = parseReviews(doc.Text())

	l.Amenities = collectTexts(doc, amenitySelectors)
	l.Description = firstText(doc, descriptionSelectors)
	if l.Description == "" {
		l.Description = metaContent(doc, `meta[name="description"]`)
	}

	l.Images = collectImages(doc, base)
	return l, nil
}

func clean(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

func firstText(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		var found string
		doc.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			found = clean(s.Text())
			return found == ""
		})
		if found != "" {
			return found
		}
	}
	return ""
}

func metaContent(doc *goquery.Document, sel string) string {
	v, _ := doc.Find(sel).First().Attr("content")
	return clean(v)
}

func collectTexts(doc *goquery.Document, selectors []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, sel := range selectors {
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			t := clean(s.Text())
			if t == "" || seen[t] || strings.HasPrefix(strings.ToLower(t), "show all") {
				return
			}
			seen[t] = true
			out = append(out, t)
		})
		if len(out) > 0 {
			return out
		}
	}
	return out
}

func collectImages(doc *goquery.Document, base *url.URL) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	add := func(raw string) {
		if len(out) >= maxImages {
			return
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return
		}
		u, err := url.Parse(raw)
		if err != nil {
			return
		}
		if base != nil {
			u = base.ResolveReference(u)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return
		}
		s := u.String()
		if seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	for _, sel := range imageSelectors {
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			if v, ok := s.Attr("data-original-uri"); ok {
				add(v)
				return
			}
			v, _ := s.Attr("src")
			add(v)
		})
	}
	if len(out) == 0 {
		add(metaContent(doc, `meta[property="og:image"]`))
	}
	return out
}

func parseMoney(s string) (float64, string, bool) {
	m := moneyRe.FindStringSubmatch(s)
	if m == nil {
		return 0, "", false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m[2], ",", ""), 64)
	if err != nil {
		return 0, "", false
	}
	return v, currencies[m[1]], true
}

func parseRating(s string) float64 {
	m := ratingRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	v, _ := strconv.ParseFloat(m[1], 64)
	return v
}

func parseReviews(s string) int {
	m := reviewsRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	return n
}
