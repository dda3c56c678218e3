package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TonAldo48/matematch-sub001/internal/service"
)

// CreateUser onboards a new user.
//
// @Summary Onboard a user
// @Tags users
// @Accept json
// @Produce json
// @Param body body service.OnboardInput true "Onboarding form"
// @Success 201 {object} model.Profile
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /users [post]
func CreateUser(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.OnboardInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		p, err := svc.Onboard(c.UserContext(), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// ListUsers returns profiles with limit & offset.
//
// @Summary List users
// @Tags users
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.ProfileListResult
// @Router /users [get]
func ListUsers(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := queryInt(c, "limit", 10)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := queryInt(c, "offset", 0)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetUser returns a profile by ID.
//
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.Profile
// @Failure 404 {object} errorPayload
// @Router /users/{id} [get]
func GetUser(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := userIDParam(c, "id")
		if !ok {
			return nil
		}
		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(p)
	}
}

// UpdateUser applies a partial profile update.
//
// @Summary Edit a profile
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body service.ProfilePatch true "Fields to change"
// @Success 200 {object} model.Profile
// @Router /users/{id} [patch]
func UpdateUser(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := userIDParam(c, "id")
		if !ok {
			return nil
		}
		var patch service.ProfilePatch
		if err := c.BodyParser(&patch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		p, err := svc.Update(c.UserContext(), id, patch)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(p)
	}
}

// UploadAvatar stores a profile picture (multipart/form-data, field name: file).
//
// @Summary Upload avatar
// @Tags users
// @Accept mpfd
// @Produce json
// @Param id path string true "User ID"
// @Param file formData file true "Image"
// @Success 200 {object} model.Profile
// @Failure 415 {object} errorPayload
// @Router /users/{id}/avatar [post]
func UploadAvatar(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := userIDParam(c, "id")
		if !ok {
			return nil
		}
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		p, err := svc.UploadAvatar(c.UserContext(), id, f, ct, fh.Size)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(p)
	}
}

// GetAvatar returns a presigned avatar link, or redirects to it with ?redirect=true.
//
// @Summary Avatar link
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Param redirect query bool false "Redirect to the image"
// @Success 200 {object} map[string]any
// @Success 302
// @Router /users/{id}/avatar [get]
func GetAvatar(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := userIDParam(c, "id")
		if !ok {
			return nil
		}
		url, err := svc.AvatarURL(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		if c.QueryBool("redirect") {
			return c.Redirect(url, fiber.StatusFound)
		}
		return c.JSON(fiber.Map{
			"url":        url,
			"expires_in": int(service.AvatarURLExpiry.Seconds()),
		})
	}
}

// StreamAvatar proxies the avatar bytes from object storage.
//
// @Summary Avatar image
// @Tags users
// @Produce image/png,image/jpeg,image/webp,image/gif
// @Param id path string true "User ID"
// @Success 200 {file} binary
// @Failure 404 {object} errorPayload
// @Router /users/{id}/avatar/raw [get]
func StreamAvatar(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := userIDParam(c, "id")
		if !ok {
			return nil
		}
		rc, info, err := svc.OpenAvatar(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}

		ct := info.ContentType
		if ct == "" {
			ct = fiber.MIMEOctetStream
		}
		c.Set(fiber.HeaderContentType, ct)
		c.Set(fiber.HeaderCacheControl, "private, max-age=300")
		if info.ETag != "" {
			c.Set(fiber.HeaderETag, `"`+info.ETag+`"`)
		}
		size := -1
		if info.Size > 0 {
			size = int(info.Size)
		}
		// fasthttp closes rc once the body is written
		return c.SendStream(rc, size)
	}
}
