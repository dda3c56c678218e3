package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TonAldo48/matematch-sub001/internal/service"
)

// Dependencies are the collaborators the routes are wired to. DB may be nil
// when the in-memory store is used; Metrics may be nil to skip /metrics.
type Dependencies struct {
	DB        Pinger
	Metrics   prometheus.Gatherer
	Profiles  service.ProfileService
	Listings  service.ListingService
	Distance  service.DistanceService
	Saved     service.SavedService
	Interests service.InterestService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Dependencies) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())
	if d.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Metrics, promhttp.HandlerOpts{})))
	}

	users := app.Group("/users")
	users.Post("/", CreateUser(d.Profiles))
	users.Get("/", ListUsers(d.Profiles))
	users.Get("/:id", GetUser(d.Profiles))
	users.Patch("/:id", UpdateUser(d.Profiles))
	users.Post("/:id/avatar", UploadAvatar(d.Profiles))
	users.Get("/:id/avatar", GetAvatar(d.Profiles))
	users.Get("/:id/avatar/raw", StreamAvatar(d.Profiles))
	users.Get("/:id/saved", ListSaved(d.Saved))
	users.Post("/:id/saved", SaveListing(d.Saved))
	users.Get("/:id/saved/:listingId", SavedStatus(d.Saved))
	users.Delete("/:id/saved/:listingId", UnsaveListing(d.Saved))
	users.Get("/:id/interests", ListUserInterests(d.Interests))

	// static segments before /:listingId
	listingsGroup := app.Group("/listings")
	listingsGroup.Get("/search", SearchListings(d.Listings))
	listingsGroup.Post("/scrape", ScrapeListing(d.Listings))
	listingsGroup.Get("/:listingId/interests", ListListingInterests(d.Interests))
	listingsGroup.Post("/:listingId/interests", ExpressInterest(d.Interests))
	listingsGroup.Delete("/:listingId/interests/:userId", WithdrawInterest(d.Interests))

	app.Get("/distance", GetDistance(d.Distance))
	app.Get("/commute", GetCommute(d.Distance))
	app.Get("/geocode", Geocode(d.Distance))
}
