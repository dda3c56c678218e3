package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/TonAldo48/matematch-sub001/internal/service"
)

type expressInterestRequest struct {
	UserID string `json:"user_id"`
	Note   string `json:"note"`
}

// ListListingInterests returns the users interested in a listing.
//
// @Summary Interested users
// @Tags interests
// @Produce json
// @Param listingId path string true "Listing ID"
// @Success 200 {object} service.ListingInterestSummary
// @Router /listings/{listingId}/interests [get]
func ListListingInterests(svc service.InterestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		listingID, ok := listingIDParam(c)
		if !ok {
			return nil
		}
		sum, err := svc.ForListing(c.UserContext(), listingID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(sum)
	}
}

// ExpressInterest records that a user wants to share a listing.
//
// @Summary Express interest
// @Tags interests
// @Accept json
// @Produce json
// @Param listingId path string true "Listing ID"
// @Param body body expressInterestRequest true "Interested user"
// @Success 201 {object} model.ListingInterest
// @Router /listings/{listingId}/interests [post]
func ExpressInterest(svc service.InterestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		listingID, ok := listingIDParam(c)
		if !ok {
			return nil
		}
		var req expressInterestRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.UserID == "" {
			return writeError(c, fiber.StatusBadRequest, "ID_REQUIRED", "user_id is required")
		}
		if _, err := uuid.Parse(req.UserID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		rec, err := svc.Express(c.UserContext(), listingID, req.UserID, req.Note)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// WithdrawInterest removes a user's interest in a listing.
//
// @Summary Withdraw interest
// @Tags interests
// @Param listingId path string true "Listing ID"
// @Param userId path string true "User ID"
// @Success 204
// @Router /listings/{listingId}/interests/{userId} [delete]
func WithdrawInterest(svc service.InterestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		listingID, ok := listingIDParam(c)
		if !ok {
			return nil
		}
		userID, ok := userIDParam(c, "userId")
		if !ok {
			return nil
		}
		if err := svc.Withdraw(c.UserContext(), listingID, userID); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ListUserInterests returns the listings a user is interested in.
//
// @Summary A user's interests
// @Tags interests
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} model.ListingInterest
// @Router /users/{id}/interests [get]
func ListUserInterests(svc service.InterestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := userIDParam(c, "id")
		if !ok {
			return nil
		}
		items, err := svc.ForUser(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": items, "total": len(items)})
	}
}
