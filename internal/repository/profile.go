package repository

import (
	"context"

	"github.com/TonAldo48/matematch-sub001/internal/model"
)

// ProfileRepository defines persistence for user profiles.
type ProfileRepository interface {
	// Create inserts a profile. A duplicate email returns ErrConflict.
	Create(ctx context.Context, p *model.Profile) (*model.Profile, error)

	// FindByID returns ErrNotFound when no profile has the id.
	FindByID(ctx context.Context, id string) (*model.Profile, error)

	// Update replaces every mutable column of an existing profile.
	Update(ctx context.Context, p *model.Profile) (*model.Profile, error)

	// List returns profiles newest first.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Profile], error)
}
