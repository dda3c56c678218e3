package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/TonAldo48/matematch-sub001/internal/service"
)

// userIDParam validates a UUID path parameter. ok is false once an error
// response has been written.
func userIDParam(c *fiber.Ctx, name string) (string, bool) {
	id := c.Params(name)
	if _, err := uuid.Parse(id); err != nil {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		return "", false
	}
	return id, true
}

func listingIDParam(c *fiber.Ctx) (string, bool) {
	id := c.Params("listingId")
	if !service.ValidListingID(id) {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_LISTING_ID", "invalid listing id")
		return "", false
	}
	return id, true
}

// queryInt parses an optional integer query parameter.
func queryInt(c *fiber.Ctx, name string, def int) (int, error) {
	v := c.Query(name)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func queryFloat(c *fiber.Ctx, name string) (float64, error) {
	v := c.Query(name)
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}
