package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/TonAldo48/matematch-sub001/internal/listings"
	"github.com/TonAldo48/matematch-sub001/internal/maps"
	"github.com/TonAldo48/matematch-sub001/internal/scraper"
)

var (
	ErrIDRequired      = errors.New("id is required")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrEmailTaken      = errors.New("email is already registered")
	ErrReaderNil       = errors.New("reader is nil")
	ErrUnsupportedType = errors.New("unsupported content type")
	ErrStorageDisabled = errors.New("object storage is not configured")
	ErrUnavailable     = errors.New("upstream is not configured")
	ErrUpstream        = errors.New("upstream request failed")
	ErrNoRoute         = errors.New("no route found")
	ErrNoListing       = errors.New("no listing found on page")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// upstreamErr translates client errors into service errors, keeping the
// original in the chain.
func upstreamErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, maps.ErrMissingAPIKey), errors.Is(err, listings.ErrMissingAPIKey):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	case errors.Is(err, maps.ErrInvalidMode),
		errors.Is(err, maps.ErrEmptyAddress),
		errors.Is(err, listings.ErrInvalidParams),
		errors.Is(err, scraper.ErrInvalidURL):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	case errors.Is(err, maps.ErrNoRoute):
		return fmt.Errorf("%w: %w", ErrNoRoute, err)
	case errors.Is(err, scraper.ErrNoListing):
		return fmt.Errorf("%w: %w", ErrNoListing, err)
	default:
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}
}
