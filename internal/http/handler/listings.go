package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TonAldo48/matematch-sub001/internal/listings"
	"github.com/TonAldo48/matematch-sub001/internal/service"
)

type scrapeRequest struct {
	URL string `json:"url"`
}

// SearchListings searches housing listings by location.
//
// @Summary Search listings
// @Tags listings
// @Produce json
// @Param location query string true "City or neighbourhood"
// @Param checkin query string false "YYYY-MM-DD"
// @Param checkout query string false "YYYY-MM-DD"
// @Param adults query int false "Adults" default(1)
// @Param children query int false "Children"
// @Param infants query int false "Infants"
// @Param pets query int false "Pets"
// @Param page query int false "Page" default(1)
// @Param currency query string false "Currency" default(USD)
// @Param min_price query number false "Minimum nightly rate"
// @Param max_price query number false "Maximum nightly rate"
// @Param min_bedrooms query int false "Minimum bedrooms"
// @Success 200 {object} service.ListingSearchResult
// @Failure 502 {object} errorPayload
// @Router /listings/search [get]
func SearchListings(svc service.ListingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := listings.SearchParams{
			Location: c.Query("location"),
			Checkin:  c.Query("checkin"),
			Checkout: c.Query("checkout"),
			Currency: c.Query("currency"),
		}
		ints := []struct {
			name string
			dst  *int
		}{
			{"adults", &p.Adults},
			{"children", &p.Children},
			{"infants", &p.Infants},
			{"pets", &p.Pets},
			{"page", &p.Page},
			{"min_bedrooms", &p.MinBedrooms},
		}
		for _, q := range ints {
			v, err := queryInt(c, q.name, 0)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_QUERY", "invalid "+q.name)
			}
			*q.dst = v
		}
		var err error
		if p.MinPrice, err = queryFloat(c, "min_price"); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_QUERY", "invalid min_price")
		}
		if p.MaxPrice, err = queryFloat(c, "max_price"); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_QUERY", "invalid max_price")
		}

		res, err := svc.Search(c.UserContext(), p)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// ScrapeListing extracts a single listing from its page URL.
//
// @Summary Scrape a listing page
// @Tags listings
// @Accept json
// @Produce json
// @Param body body scrapeRequest true "Listing URL"
// @Success 200 {object} service.ScrapeResult
// @Failure 422 {object} errorPayload
// @Router /listings/scrape [post]
func ScrapeListing(svc service.ListingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req scrapeRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res, err := svc.Scrape(c.UserContext(), req.URL)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}
