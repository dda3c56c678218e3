package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TonAldo48/matematch-sub001/internal/model"
	"github.com/TonAldo48/matematch-sub001/internal/service"
)

func endpoints(c *fiber.Ctx) (origin, destination model.Coordinates, ok bool) {
	var err error
	if origin, err = model.ParseCoordinates(c.Query("origin")); err != nil {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_ORIGIN", "origin must be lat,lng")
		return origin, destination, false
	}
	if destination, err = model.ParseCoordinates(c.Query("destination")); err != nil {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_DESTINATION", "destination must be lat,lng")
		return origin, destination, false
	}
	return origin, destination, true
}

// GetDistance returns travel distance and time for one mode.
//
// @Summary Distance between two points
// @Tags distance
// @Produce json
// @Param origin query string true "lat,lng"
// @Param destination query string true "lat,lng"
// @Param mode query string false "driving, transit, walking or bicycling" default(driving)
// @Success 200 {object} model.DistanceResult
// @Failure 422 {object} errorPayload
// @Router /distance [get]
func GetDistance(svc service.DistanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin, destination, ok := endpoints(c)
		if !ok {
			return nil
		}
		mode := model.TravelMode(c.Query("mode", string(model.ModeDriving)))
		if !mode.Valid() {
			return writeError(c, fiber.StatusBadRequest, "INVALID_MODE", "mode must be driving, transit, walking or bicycling")
		}
		res, err := svc.Distance(c.UserContext(), origin, destination, mode)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetCommute returns driving and transit legs side by side.
//
// @Summary Commute comparison
// @Tags distance
// @Produce json
// @Param origin query string true "lat,lng"
// @Param destination query string true "lat,lng"
// @Success 200 {object} model.CommuteResult
// @Router /commute [get]
func GetCommute(svc service.DistanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin, destination, ok := endpoints(c)
		if !ok {
			return nil
		}
		res, err := svc.Commute(c.UserContext(), origin, destination)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// Geocode resolves an address to coordinates.
//
// @Summary Geocode an address
// @Tags distance
// @Produce json
// @Param address query string true "Free-form address"
// @Success 200 {array} model.GeocodeResult
// @Router /geocode [get]
func Geocode(svc service.DistanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		address := c.Query("address")
		if address == "" {
			return writeError(c, fiber.StatusBadRequest, "ADDRESS_REQUIRED", "address is required")
		}
		res, err := svc.Geocode(c.UserContext(), address)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": res, "total": len(res)})
	}
}
