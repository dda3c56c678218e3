package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TonAldo48/matematch-sub001/internal/model"
	"github.com/TonAldo48/matematch-sub001/internal/service"
)

type savedStatusResponse struct {
	ListingID string `json:"listing_id"`
	Saved     bool   `json:"saved"`
}

// ListSaved returns a user's saved listings.
//
// @Summary Saved listings
// @Tags saved
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} model.SavedListing
// @Router /users/{id}/saved [get]
func ListSaved(svc service.SavedService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := userIDParam(c, "id")
		if !ok {
			return nil
		}
		items, err := svc.List(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": items, "total": len(items)})
	}
}

// SaveListing bookmarks a listing. The body is the listing as returned by
// search or scrape and is stored as a snapshot.
//
// @Summary Save a listing
// @Tags saved
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body model.Listing true "Listing"
// @Success 201 {object} model.SavedListing
// @Router /users/{id}/saved [post]
func SaveListing(svc service.SavedService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := userIDParam(c, "id")
		if !ok {
			return nil
		}
		var l model.Listing
		if err := c.BodyParser(&l); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		rec, err := svc.Save(c.UserContext(), id, l)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// SavedStatus reports whether a listing is bookmarked by the user.
//
// @Summary Saved status of a listing
// @Tags saved
// @Produce json
// @Param id path string true "User ID"
// @Param listingId path string true "Listing ID"
// @Success 200 {object} savedStatusResponse
// @Router /users/{id}/saved/{listingId} [get]
func SavedStatus(svc service.SavedService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := userIDParam(c, "id")
		if !ok {
			return nil
		}
		listingID, ok := listingIDParam(c)
		if !ok {
			return nil
		}
		saved, err := svc.IsSaved(c.UserContext(), id, listingID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(savedStatusResponse{ListingID: listingID, Saved: saved})
	}
}

// UnsaveListing removes a bookmark.
//
// @Summary Remove a saved listing
// @Tags saved
// @Param id path string true "User ID"
// @Param listingId path string true "Listing ID"
// @Success 204
// @Router /users/{id}/saved/{listingId} [delete]
func UnsaveListing(svc service.SavedService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := userIDParam(c, "id")
		if !ok {
			return nil
		}
		listingID, ok := listingIDParam(c)
		if !ok {
			return nil
		}
		if err := svc.Unsave(c.UserContext(), id, listingID); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
